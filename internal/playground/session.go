package playground

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrEmptyPrompt is returned for prompts that are blank after trimming.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrPending is returned when a completion is already outstanding.
	ErrPending = errors.New("a reply is still pending")
	// ErrNoPendingRequest is returned by Settle for a result that does not
	// belong to the outstanding request.
	ErrNoPendingRequest = errors.New("no matching pending request")
)

// State is the session's position in its Idle/AwaitingReply cycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingReply
)

func (s State) String() string {
	if s == StateAwaitingReply {
		return "awaiting-reply"
	}
	return "idle"
}

// Request identifies one admitted submission.
type Request struct {
	Seq    uint64
	Prompt string
	Model  Model
}

// Result is the settled outcome of a Request.
type Result struct {
	Request Request
	Text    string
	Err     error
}

// Session is a single playground conversation. Each submission is sent to the
// model on its own; earlier turns are never replayed.
type Session struct {
	mu         sync.Mutex
	id         string
	completer  Completer
	model      Model
	messages   Messages
	logger     *slog.Logger
	transcript []Message
	state      State
	seq        uint64
}

// Option configures a Session.
type Option func(*Session)

// WithModel sets the model used for every submission (default ModelFast).
func WithModel(m Model) Option {
	return func(s *Session) { s.model = m }
}

// WithMessages overrides the placeholder and failure texts. Empty fields keep
// their defaults.
func WithMessages(m Messages) Option {
	return func(s *Session) {
		if m.NoResponse != "" {
			s.messages.NoResponse = m.NoResponse
		}
		if m.Failure != "" {
			s.messages.Failure = m.Failure
		}
	}
}

// WithLogger sets the logger used for completion diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates an idle session with an empty transcript.
func NewSession(c Completer, opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		completer: c,
		model:     ModelFast,
		messages:  DefaultMessages(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session's log correlation id.
func (s *Session) ID() string { return s.id }

// Model returns the model used for submissions.
func (s *Session) Model() Model { return s.model }

// Begin admits a submission: it appends the user entry and moves the session
// to AwaitingReply. Blank prompts and submissions while a reply is pending
// are rejected without touching the transcript.
func (s *Session) Begin(prompt string) (Request, error) {
	if strings.TrimSpace(prompt) == "" {
		return Request{}, ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAwaitingReply {
		return Request{}, ErrPending
	}

	s.seq++
	s.state = StateAwaitingReply
	s.transcript = append(s.transcript, Message{Role: RoleUser, Text: prompt})

	req := Request{Seq: s.seq, Prompt: prompt, Model: s.model}
	s.logger.Debug("playground: submitted", "seq", req.Seq, "model", req.Model.String(), "chars", len(prompt))
	return req, nil
}

// Call runs the completion for req exactly once. It does not touch session
// state, so it is safe to run off the UI goroutine.
func (s *Session) Call(ctx context.Context, req Request) Result {
	if s.completer == nil {
		return Result{Request: req, Err: errors.New("no completer configured")}
	}
	text, err := s.completer.Complete(ctx, req.Prompt, req.Model)
	return Result{Request: req, Text: text, Err: err}
}

// Settle applies the result of the outstanding request: it appends the model
// entry (a placeholder for empty text, an error entry for failures) and
// returns the session to Idle.
func (s *Session) Settle(res Result) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingReply || res.Request.Seq != s.seq {
		return Message{}, ErrNoPendingRequest
	}

	var msg Message
	switch {
	case res.Err != nil:
		s.logger.Error("playground: completion failed", "seq", res.Request.Seq, "error", res.Err)
		msg = Message{Role: RoleModel, Text: s.messages.Failure, IsError: true}
	// Whitespace-only replies count as empty and get the placeholder too.
	case strings.TrimSpace(res.Text) == "":
		s.logger.Warn("playground: empty completion", "seq", res.Request.Seq)
		msg = Message{Role: RoleModel, Text: s.messages.NoResponse}
	default:
		s.logger.Debug("playground: reply received", "seq", res.Request.Seq, "chars", len(res.Text))
		msg = Message{Role: RoleModel, Text: res.Text}
	}

	s.transcript = append(s.transcript, msg)
	s.state = StateIdle
	return msg, nil
}

// Submit is Begin, Call and Settle in one blocking step. Only precondition
// failures are returned as errors; a failed completion comes back as an
// error entry.
func (s *Session) Submit(ctx context.Context, prompt string) (Message, error) {
	req, err := s.Begin(prompt)
	if err != nil {
		return Message{}, err
	}
	return s.Settle(s.Call(ctx, req))
}

// Transcript returns a copy of the entries in append order.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len returns the number of transcript entries.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending reports whether a completion is outstanding.
func (s *Session) Pending() bool {
	return s.State() == StateAwaitingReply
}
