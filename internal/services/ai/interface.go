// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionProvider sends prompts to the external model and returns
// raw text. It does no parsing or validation of the reply.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, prompt string) (string, error)
	GetVisionCompletion(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
}
