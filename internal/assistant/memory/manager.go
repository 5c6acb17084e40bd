package memory

import (
	"context"
	"fmt"
	"strings"

	"deal-tracker/pkg/openai"
)

// Manager keeps a bounded rolling history for one conversation and answers each utterance with a
// summarize-then-ask pair of completion calls, so the answer prompt stays the same size no matter
// how long the conversation runs.
//
// A Manager is not safe for concurrent use. Callers serialize Ask per conversation; the
// assistant use case does this with one mutex per session.
type Manager struct {
	completer Completer
	model     string
	maxSlots  int

	history []Message
	summary string
}

// New creates a Manager whose history is seeded with the persona system message.
func New(completer Completer, cfg Config) *Manager {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxSlots <= 0 {
		cfg.MaxSlots = DefaultMaxSlots
	}
	if cfg.Persona == "" {
		cfg.Persona = DefaultPersona
	}

	m := &Manager{
		completer: completer,
		model:     cfg.Model,
		maxSlots:  cfg.MaxSlots,
		history:   make([]Message, 0, cfg.MaxSlots),
	}
	m.push(SystemMessage(cfg.Persona))
	return m
}

// Ask records utterance, refreshes the summary and returns the model's reply.
// An empty reply is not an error. Completion failures are returned as is and leave
// whatever state was already written in place.
func (m *Manager) Ask(ctx context.Context, utterance string) (string, error) {
	if err := m.summarize(ctx, utterance); err != nil {
		return "", err
	}

	resp, err := m.completer.CreateChatCompletion(ctx, &openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatMessage{
			SystemMessage(answerSystemPrompt).toChat(),
			UserMessage(m.summary).toChat(),
			UserMessage(utterance).toChat(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("memory: answer: %w", err)
	}

	return resp.FirstContent(), nil
}

// summarize appends utterance to the history and replaces the summary with a compression of the
// whole window.
func (m *Manager) summarize(ctx context.Context, utterance string) error {
	m.push(UserMessage(utterance))

	resp, err := m.completer.CreateChatCompletion(ctx, &openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: openai.Float64(SummaryTemperature),
		Messages: []openai.ChatMessage{
			SystemMessage(summarySystemPrompt).toChat(),
			UserMessage(m.summaryPrompt(utterance)).toChat(),
		},
	})
	if err != nil {
		return fmt.Errorf("memory: summarize: %w", err)
	}

	m.summary = resp.FirstContent()
	return nil
}

func (m *Manager) summaryPrompt(utterance string) string {
	var b strings.Builder
	b.WriteString(summaryInstruction)
	b.WriteString("\n")
	for _, msg := range m.history {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role.Label(), msg.Content)
	}
	b.WriteString(utterance)
	return b.String()
}

// push appends msg and drops the oldest entries beyond maxSlots.
func (m *Manager) push(msg Message) {
	m.history = append(m.history, msg)
	if over := len(m.history) - m.maxSlots; over > 0 {
		m.history = append(m.history[:0], m.history[over:]...)
	}
}

// History returns a copy of the current window, oldest first.
func (m *Manager) History() []Message {
	out := make([]Message, len(m.history))
	copy(out, m.history)
	return out
}

// Summary returns the summary produced by the most recent Ask.
func (m *Manager) Summary() string { return m.summary }

func (m *Manager) MaxSlots() int { return m.maxSlots }

func (m *Manager) Model() string { return m.model }
