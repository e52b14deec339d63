// Package playground implements the prompt/reply loop behind the live demo:
// an append-only transcript plus a two-state machine that admits at most one
// outstanding completion call.
package playground

import (
	"context"
	"fmt"
)

// Role tags who produced a transcript entry.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Label is the uppercase caption shown above a chat bubble.
func (r Role) Label() string {
	if r == RoleUser {
		return "USER"
	}
	return "MODEL"
}

// Message is a single transcript entry. IsError is only ever set on model
// entries that stand in for a failed completion.
type Message struct {
	Role    Role   `json:"role"`
	Text    string `json:"text"`
	IsError bool   `json:"isError,omitempty"`
}

// Model selects which hosted model serves a completion.
type Model int

const (
	ModelFast Model = iota
	ModelAdvanced
)

// String returns the config key for the model.
func (m Model) String() string {
	switch m {
	case ModelFast:
		return "fast"
	case ModelAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("model(%d)", int(m))
	}
}

// ParseModel maps "fast" / "advanced" to a Model.
func ParseModel(s string) (Model, error) {
	switch s {
	case "fast", "":
		return ModelFast, nil
	case "advanced":
		return ModelAdvanced, nil
	default:
		return ModelFast, fmt.Errorf("unknown model %q (want fast or advanced)", s)
	}
}

// Completer maps a prompt to generated text. Implementations make exactly one
// call per invocation.
type Completer interface {
	Complete(ctx context.Context, prompt string, model Model) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string, model Model) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string, model Model) (string, error) {
	return f(ctx, prompt, model)
}

// Messages holds the user-facing strings the session substitutes for replies.
type Messages struct {
	NoResponse string
	Failure    string
}

// DefaultMessages returns the built-in Chinese strings.
func DefaultMessages() Messages {
	return Messages{
		NoResponse: "未收到回复 (No response)",
		Failure:    "出错了：无法连接到 AI 模型。请稍后再试。",
	}
}
