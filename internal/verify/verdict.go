package verify

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Confidence levels the video schema accepts.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Verdict is the parsed, validated result of one verification attempt.
type Verdict struct {
	Passed          bool
	DetectedSubject string
	DetectedAction  string
	Feedback        string
	Confidence      string
}

// Schema describes the exact JSON fields a kind's model reply must carry.
type Schema struct {
	PassField    string
	SubjectField string
	ActionField  string
	Confidence   bool
}

var schemas = map[Kind]Schema{
	KindBed:         {PassField: "is_made", SubjectField: "detected_subject"},
	KindSunlight:    {PassField: "is_outside", SubjectField: "detected_subject"},
	KindHydration:   {PassField: "is_water", SubjectField: "detected_subject"},
	KindCustomPhoto: {PassField: "is_verified", SubjectField: "detected_subject"},
	KindCustomVideo: {PassField: "is_verified", ActionField: "detected_action", Confidence: true},
}

// SchemaFor returns the response schema for a kind.
func SchemaFor(kind Kind) (Schema, error) {
	schema, ok := schemas[kind]
	if !ok {
		return Schema{}, fmt.Errorf("no response schema for kind %q", kind)
	}
	return schema, nil
}

// Fields lists the required JSON field names in reply order.
func (s Schema) Fields() []string {
	fields := []string{s.PassField}
	if s.SubjectField != "" {
		fields = append(fields, s.SubjectField)
	}
	if s.ActionField != "" {
		fields = append(fields, s.ActionField)
	}
	if s.Confidence {
		fields = append(fields, "confidence")
	}
	return append(fields, "feedback")
}

// Parse deserializes an extracted JSON span and checks it against the kind's
// schema. Types must match exactly; a string "true" for a boolean field is a
// schema violation, not a pass. Missing required fields are never defaulted:
// the caller trusts the pass flag as a gate for real-world consequences.
func Parse(kind Kind, span string) (*Verdict, error) {
	schema, err := SchemaFor(kind)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	verdict := &Verdict{}

	passed, err := boolField(payload, schema.PassField)
	if err != nil {
		return nil, err
	}
	verdict.Passed = passed

	if schema.SubjectField != "" {
		subject, err := stringField(payload, schema.SubjectField)
		if err != nil {
			return nil, err
		}
		verdict.DetectedSubject = subject
	}

	if schema.ActionField != "" {
		action, err := stringField(payload, schema.ActionField)
		if err != nil {
			return nil, err
		}
		verdict.DetectedAction = action
	}

	if schema.Confidence {
		confidence, err := stringField(payload, "confidence")
		if err != nil {
			return nil, err
		}
		normalized := strings.ToLower(strings.TrimSpace(confidence))
		switch normalized {
		case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
			verdict.Confidence = normalized
		default:
			return nil, fmt.Errorf("%w: invalid confidence %q", ErrSchema, confidence)
		}
	}

	feedback, err := stringField(payload, "feedback")
	if err != nil {
		return nil, err
	}
	verdict.Feedback = feedback

	return verdict, nil
}

func boolField(payload map[string]any, field string) (bool, error) {
	raw, ok := payload[field]
	if !ok {
		return false, fmt.Errorf("%w: missing field %q", ErrSchema, field)
	}
	value, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %q is not a boolean", ErrSchema, field)
	}
	return value, nil
}

func stringField(payload map[string]any, field string) (string, error) {
	raw, ok := payload[field]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrSchema, field)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", ErrSchema, field)
	}
	return value, nil
}
