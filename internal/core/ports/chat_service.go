package ports

import "context"

// ChatReply is the canned answer produced by the mock responder.
type ChatReply struct {
	Response  string
	ModelUsed string
}

// ChatService answers natural-language prompts about the catalog with
// hard-coded, keyword-driven responses. No model integration exists.
type ChatService interface {
	Respond(ctx context.Context, prompt string) (*ChatReply, error)
}
