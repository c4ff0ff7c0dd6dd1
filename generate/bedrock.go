package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// BedrockGenerator implements Generator using AWS Bedrock.
type BedrockGenerator struct {
	client        *bedrockruntime.Client
	modelID       string
	maxTokens     int
	validationCfg *ValidationConfig
}

// NewBedrockGenerator creates a new Bedrock-based test generator.
func NewBedrockGenerator(ctx context.Context, region, modelID string, maxTokens int) (*BedrockGenerator, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &BedrockGenerator{
		client:        bedrockruntime.NewFromConfig(cfg),
		modelID:       modelID,
		maxTokens:     maxTokens,
		validationCfg: DefaultValidationConfig(),
	}, nil
}

// SetValidationConfig sets the validation configuration for the generator.
func (g *BedrockGenerator) SetValidationConfig(cfg *ValidationConfig) {
	g.validationCfg = cfg
}

// Generate creates browser test code using AWS Bedrock.
func (g *BedrockGenerator) Generate(ctx context.Context, req Request) ([]byte, error) {
	prompt, err := BuildPrompt(req, g.validationCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	// Anthropic messages payload; format depends on the model family.
	requestBody := map[string]interface{}{
		"anthropic_version": "bedrock-2023-05-31",
		"max_tokens":        g.maxTokens,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": prompt,
					},
				},
			},
		},
	}

	payloadBytes, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	output, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        payloadBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		StopReason string `json:"stop_reason"`
	}

	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(response.Content) == 0 {
		return nil, ErrEmptyResponse
	}

	code := StripCodeFences(response.Content[0].Text)
	if code == "" {
		return nil, ErrEmptyResponse
	}

	return []byte(code), nil
}

// StripCodeFences removes a surrounding markdown code fence from generated
// code. Models often include fences despite prompt instructions.
func StripCodeFences(code string) string {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, "```") {
		return code
	}
	// Drop the opening fence line (e.g. "```typescript\n" or "```\n")
	if idx := strings.Index(code, "\n"); idx != -1 {
		code = code[idx+1:]
	} else {
		return ""
	}
	code = strings.TrimSuffix(strings.TrimSpace(code), "```")
	return strings.TrimSpace(code)
}
