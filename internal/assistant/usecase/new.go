package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"deal-tracker/internal/assistant"
	"deal-tracker/internal/assistant/memory"
	"deal-tracker/internal/deal"
	"deal-tracker/pkg/log"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 1000
)

// Config tunes the conversation registry and the memory of each conversation.
type Config struct {
	Memory      memory.Config
	SessionTTL  time.Duration
	MaxSessions int
}

type implUseCase struct {
	l         log.Logger
	completer memory.Completer
	deals     deal.UseCase
	memCfg    memory.Config

	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

// New creates the assistant use case. deals supplies the JSON context when a question carries none.
func New(l log.Logger, completer memory.Completer, deals deal.UseCase, cfg Config) assistant.UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	return &implUseCase{
		l:         l,
		completer: completer,
		deals:     deals,
		memCfg:    cfg.Memory,
		sessions:  expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
	}
}
