package verify

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/habitlock/verify-server/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

// GenericCriteria is the instruction substituted when a custom habit carries
// no user-authored verification criteria. A deliberate default, not an error.
const GenericCriteria = "Verify that the action described by the habit name was actually performed."

// Dimension is one scoring axis of a rubric.
type Dimension struct {
	Name   string `yaml:"name"`
	Points int    `yaml:"points"`
}

// Rubric is the point-based scoring scheme the upstream model is instructed
// to apply before collapsing to a boolean.
type Rubric struct {
	Threshold  int         `yaml:"threshold"`
	Dimensions []Dimension `yaml:"dimensions"`
}

// MaxTotal returns the highest achievable rubric total.
func (r Rubric) MaxTotal() int {
	total := 0
	for _, d := range r.Dimensions {
		total += d.Points
	}
	return total
}

// Passes reports whether a rubric total meets the pass threshold.
func (r Rubric) Passes(total int) bool {
	return total >= r.Threshold
}

// Spec is one immutable catalog entry, selected by kind.
type Spec struct {
	Subject         string   `yaml:"subject"`
	Taxonomy        []string `yaml:"taxonomy"`
	MaxOutputTokens int      `yaml:"max_output_tokens"`
	Rubric          Rubric   `yaml:"rubric"`
	Instructions    string   `yaml:"instructions"`
}

// Params carries the per-request values interpolated into custom prompts.
// HabitName and Criteria are passed through verbatim; injected text can
// influence model behavior, which is an accepted risk of this design.
type Params struct {
	HabitName        string
	Criteria         string
	AllowScreenshots bool
	DurationSeconds  int
	FrameCount       int
}

// Catalog holds the full set of verification specs. Static after
// construction and shared across all requests.
type Catalog struct {
	specs map[Kind]*Spec
}

// NewCatalog loads and validates the embedded prompt specs for every kind.
func NewCatalog() (*Catalog, error) {
	specs := make(map[Kind]*Spec, len(Kinds()))
	for _, kind := range Kinds() {
		data, err := promptsFS.ReadFile("prompts/" + kind.String() + ".yml")
		if err != nil {
			return nil, fmt.Errorf("read prompt spec %s: %w", kind, err)
		}
		spec := &Spec{}
		if err := yaml.Unmarshal(data, spec); err != nil {
			return nil, fmt.Errorf("parse prompt spec %s: %w", kind, err)
		}
		if err := validateSpec(kind, spec); err != nil {
			return nil, err
		}
		specs[kind] = spec
	}
	return &Catalog{specs: specs}, nil
}

func validateSpec(kind Kind, spec *Spec) error {
	if strings.TrimSpace(spec.Instructions) == "" {
		return fmt.Errorf("prompt spec %s: empty instructions", kind)
	}
	if spec.MaxOutputTokens <= 0 {
		return fmt.Errorf("prompt spec %s: max_output_tokens must be positive", kind)
	}
	if spec.Rubric.Threshold <= 0 || spec.Rubric.Threshold > spec.Rubric.MaxTotal() {
		return fmt.Errorf(
			"prompt spec %s: threshold %d outside rubric range %d",
			kind, spec.Rubric.Threshold, spec.Rubric.MaxTotal(),
		)
	}
	if len(spec.Taxonomy) > 0 && strings.TrimSpace(spec.Subject) == "" {
		return fmt.Errorf("prompt spec %s: taxonomy without subject", kind)
	}
	return nil
}

// Spec returns the catalog entry for a kind.
func (c *Catalog) Spec(kind Kind) (*Spec, error) {
	spec, ok := c.specs[kind]
	if !ok {
		return nil, fmt.Errorf("no prompt spec for kind %q", kind)
	}
	return spec, nil
}

// MaxOutputTokens returns the kind's output-token budget.
func (c *Catalog) MaxOutputTokens(kind Kind) (int, error) {
	spec, err := c.Spec(kind)
	if err != nil {
		return 0, err
	}
	return spec.MaxOutputTokens, nil
}

// Render assembles the complete prompt text for one verification request:
// interpolated instructions, closed taxonomy, rubric with threshold, feedback
// rules, and the single-JSON-object mandate.
func (c *Catalog) Render(kind Kind, params Params) (string, error) {
	spec, err := c.Spec(kind)
	if err != nil {
		return "", err
	}
	schema, err := SchemaFor(kind)
	if err != nil {
		return "", err
	}

	instructions, err := prompt.FormatTemplate(spec.Instructions, templateValues(kind, params))
	if err != nil {
		return "", fmt.Errorf("render %s instructions: %w", kind, err)
	}

	sections := []string{strings.TrimSpace(instructions)}
	if len(spec.Taxonomy) > 0 {
		sections = append(sections, taxonomySection(spec, schema))
	}
	sections = append(sections,
		rubricSection(spec.Rubric, schema.PassField),
		feedbackSection(),
		mandateSection(schema),
	)

	return strings.Join(sections, "\n\n"), nil
}

func templateValues(kind Kind, params Params) map[string]string {
	switch kind {
	case KindCustomPhoto:
		return map[string]string{
			"habitName":        params.HabitName,
			"criteria":         criteriaOrDefault(params.Criteria),
			"screenshotPolicy": screenshotPolicy(params.AllowScreenshots),
		}
	case KindCustomVideo:
		return map[string]string{
			"habitName":  params.HabitName,
			"criteria":   criteriaOrDefault(params.Criteria),
			"frameCount": fmt.Sprintf("%d", params.FrameCount),
			"duration":   durationText(params.DurationSeconds),
		}
	default:
		return nil
	}
}

func criteriaOrDefault(criteria string) string {
	if strings.TrimSpace(criteria) == "" {
		return GenericCriteria
	}
	return criteria
}

func screenshotPolicy(allowed bool) string {
	if allowed {
		return "Screenshots of apps or device screens are acceptable evidence when they clearly show the habit was completed."
	}
	return "Screenshots, screen photos, and stock imagery are not acceptable evidence. If the image is one of these, fail the verification."
}

func durationText(seconds int) string {
	if seconds <= 0 {
		return "an unreported length"
	}
	return fmt.Sprintf("about %d seconds", seconds)
}

func taxonomySection(spec *Spec, schema Schema) string {
	var b strings.Builder
	b.WriteString("First, classify the main subject of the image. Set ")
	b.WriteString(schema.SubjectField)
	b.WriteString(" to exactly one of: ")
	b.WriteString(strings.Join(spec.Taxonomy, ", "))
	b.WriteString(".\n")
	fmt.Fprintf(&b,
		"If the subject is not %q, do not score the rubric: set %s to false and write feedback of the form \"I see <subject>, but I need to see %s!\".",
		spec.Taxonomy[0], schema.PassField, spec.Subject,
	)
	return b.String()
}

func rubricSection(rubric Rubric, passField string) string {
	var b strings.Builder
	b.WriteString("Otherwise, score the evidence against this rubric:\n")
	for _, d := range rubric.Dimensions {
		fmt.Fprintf(&b, "- %s (0-%d points)\n", d.Name, d.Points)
	}
	fmt.Fprintf(&b,
		"Add the points. If the total is %d or more out of %d, set %s to true; otherwise set it to false.",
		rubric.Threshold, rubric.MaxTotal(), passField,
	)
	return b.String()
}

func feedbackSection() string {
	return "Never mention points, scores, or the passing threshold in your feedback. " +
		"Keep feedback encouraging, specific to what you see, and at most two sentences."
}

func mandateSection(schema Schema) string {
	parts := make([]string, 0, 5)
	for _, field := range schema.Fields() {
		switch {
		case field == schema.PassField:
			parts = append(parts, fmt.Sprintf("%q: true|false", field))
		case field == "confidence":
			parts = append(parts, `"confidence": "high"|"medium"|"low"`)
		default:
			parts = append(parts, fmt.Sprintf("%q: \"<string>\"", field))
		}
	}
	return "Reply with a single well-formed JSON object and nothing else, no code fences, no commentary: {" +
		strings.Join(parts, ", ") + "}"
}
