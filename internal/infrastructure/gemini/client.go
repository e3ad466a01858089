package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/pricelens/backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Sampling temperatures per call. Extraction wants deterministic field
// reads; enrichment tolerates a little more variety in the narrative.
const (
	extractionTemperature = 0.2
	enrichmentTemperature = 0.4
)

// Gemini 2.5 Flash pricing (per million tokens)
const (
	inputPricePerMillion  = 0.30
	outputPricePerMillion = 2.50
)

// Config holds settings for the Gemini client.
type Config struct {
	APIKey string
	Model  string

	// RequestTimeout bounds each outbound call. Zero means wait
	// indefinitely, mirroring the original behavior.
	RequestTimeout time.Duration

	// RequestsPerMinute caps outbound calls. Zero disables the limiter.
	RequestsPerMinute int
}

// Client talks to the Gemini API and implements domain.ModelClient.
type Client struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	rateLimiter *rate.Limiter
}

// NewClient creates a Gemini client with API key auth.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}

	return &Client{
		client:      gc,
		model:       cfg.Model,
		timeout:     cfg.RequestTimeout,
		rateLimiter: limiter,
	}, nil
}

// GenerateFromImages sends the instruction plus every image inline and
// returns the raw text response. The JSON-only response type is requested
// but never trusted; callers validate the text themselves.
func (c *Client) GenerateFromImages(ctx context.Context, prompt string, images []domain.Image) (string, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, img := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType},
		})
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](extractionTemperature),
		ResponseMIMEType: "application/json",
	}

	return c.generate(ctx, "extraction", contents, config)
}

// GenerateText sends a system instruction and a user prompt and returns the
// raw text response.
func (c *Client) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](enrichmentTemperature),
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	return c.generate(ctx, "enrichment", contents, config)
}

func (c *Client) generate(ctx context.Context, call string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrModelCallFailed, err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrEmptyModelResponse
	}

	text := result.Text()

	if result.UsageMetadata != nil {
		in := int64(result.UsageMetadata.PromptTokenCount)
		out := int64(result.UsageMetadata.CandidatesTokenCount)
		log.Debug().
			Str("call", call).
			Int64("input_tokens", in).
			Int64("output_tokens", out).
			Float64("cost_usd", calculateCost(in, out)).
			Msg("gemini call completed")
	}

	return text, nil
}

// calculateCost converts token counts to an approximate USD cost.
func calculateCost(inputTokens, outputTokens int64) float64 {
	inputCost := float64(inputTokens) / 1_000_000 * inputPricePerMillion
	outputCost := float64(outputTokens) / 1_000_000 * outputPricePerMillion
	return inputCost + outputCost
}
