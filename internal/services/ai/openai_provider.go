// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

// NewOpenAIProvider builds the completion client. Callers must not
// construct a provider without a credential; the no-key short-circuit
// happens before the gateway is ever reached.
func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// GetCompletion sends a prompt and returns the raw reply text.
func (p *OpenAIProvider) GetCompletion(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.config.ChatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: p.config.Temperature,
			MaxTokens:   p.config.MaxTokens,
		},
	)

	if err != nil {
		return "", p.wrapCallError("completion", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
		}
	}

	return resp.Choices[0].Message.Content, nil
}

// GetVisionCompletion sends a prompt together with an inline image.
// The image is passed as a base64 data URL, the only inline form the
// chat completion API accepts.
func (p *OpenAIProvider) GetVisionCompletion(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	if len(imageData) == 0 {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "vision",
			Message:   "empty image payload",
		}
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.config.VisionModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: prompt,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    dataURL,
								Detail: openai.ImageURLDetailAuto,
							},
						},
					},
				},
			},
			Temperature: p.config.Temperature,
			MaxTokens:   p.config.MaxTokens,
		},
	)

	if err != nil {
		return "", p.wrapCallError("vision", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "vision",
			Message:   "empty vision response",
		}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) wrapCallError(operation string, err error) *AIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &AIError{
			Type:      ErrTypeTimeout,
			Operation: operation,
			Message:   "request timed out",
			Cause:     err,
		}
	}
	return NewProviderError(operation, "completion call failed", err)
}
