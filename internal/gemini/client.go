package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/habitlock/verify-server/internal/config"
	"github.com/habitlock/verify-server/internal/llm"
	"github.com/habitlock/verify-server/internal/metrics"
)

var (
	// ErrMissingAPIKey is returned when no Gemini API key is configured.
	ErrMissingAPIKey = errors.New("missing gemini api key")
	// ErrUpstream covers every upstream failure mode: non-success status,
	// transport failure, or a usable candidate missing from the envelope.
	// Callers get the sentinel; the wrapped detail is for logs only.
	ErrUpstream = errors.New("upstream inference call failed")
)

// Image is one encoded image part of a request, in request order. A non-empty
// Label is sent as a text part immediately before the image (frame indexing
// for video kinds).
type Image struct {
	Data  []byte
	MIME  string
	Label string
}

// Request is one multimodal completion call: images in order, then the
// rendered prompt as trailing text.
type Request struct {
	Images          []Image
	Prompt          string
	MaxOutputTokens int
}

// Client calls the Gemini API. It round-robins over the configured API keys
// and reuses one SDK client per key.
type Client struct {
	cfg       *config.Config
	metrics   *metrics.Store
	mu        sync.Mutex
	clients   map[string]*genai.Client
	apiKeys   []string
	apiKeyIdx int
}

// NewClient builds a Gemini client from injected configuration. No ambient
// credential lookups happen at request time.
func NewClient(cfg *config.Config, metricsStore *metrics.Store) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	return &Client{
		cfg:     cfg,
		metrics: metricsStore,
		clients: make(map[string]*genai.Client),
		apiKeys: cfg.Gemini.APIKeys,
	}, nil
}

// Verify performs exactly one upstream completion call and returns the raw
// reply text. No retries: the mobile client owns retry policy.
func (c *Client) Verify(ctx context.Context, req Request) (string, error) {
	start := time.Now()

	client, err := c.selectClient(ctx)
	if err != nil {
		c.metrics.RecordError(time.Since(start))
		return "", err
	}

	contents := []*genai.Content{genai.NewContentFromParts(buildParts(req), genai.RoleUser)}
	response, err := client.Models.GenerateContent(ctx, c.cfg.Gemini.Model, contents, c.generateConfig(req))
	if err != nil {
		c.metrics.RecordError(time.Since(start))
		return "", fmt.Errorf("%w: generate content: %v", ErrUpstream, err)
	}

	text := strings.TrimSpace(response.Text())
	if text == "" {
		c.metrics.RecordError(time.Since(start))
		return "", fmt.Errorf("%w: empty model response", ErrUpstream)
	}

	c.metrics.RecordSuccess(time.Since(start), extractUsage(response))
	return text, nil
}

func (c *Client) generateConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(c.cfg.Gemini.Temperature)),
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxOutputTokens)
	}
	return cfg
}

func (c *Client) selectClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.apiKeys) == 0 {
		return nil, ErrMissingAPIKey
	}

	key := c.apiKeys[c.apiKeyIdx%len(c.apiKeys)]
	c.apiKeyIdx++
	if client, ok := c.clients[key]; ok {
		return client, nil
	}

	timeout := time.Duration(c.cfg.Gemini.TimeoutSeconds) * time.Second
	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.clients[key] = client
	return client, nil
}

// buildParts lays out the request: per image an optional label text part then
// the image bytes, preserving request order, with the instruction text last.
func buildParts(req Request) []*genai.Part {
	parts := make([]*genai.Part, 0, len(req.Images)*2+1)
	for _, image := range req.Images {
		if image.Label != "" {
			parts = append(parts, genai.NewPartFromText(image.Label))
		}
		parts = append(parts, genai.NewPartFromBytes(image.Data, image.MIME))
	}
	return append(parts, genai.NewPartFromText(req.Prompt))
}

func extractUsage(response *genai.GenerateContentResponse) llm.Usage {
	if response == nil || response.UsageMetadata == nil {
		return llm.Usage{}
	}
	usage := response.UsageMetadata
	return llm.Usage{
		InputTokens:  int(usage.PromptTokenCount),
		OutputTokens: int(usage.CandidatesTokenCount),
		TotalTokens:  int(usage.TotalTokenCount),
	}
}
