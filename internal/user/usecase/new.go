package usecase

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"deal-tracker/internal/user"
	"deal-tracker/internal/user/repository"
	"deal-tracker/pkg/log"
	"deal-tracker/pkg/scope"
)

// Config holds the account policy.
type Config struct {
	// AdminEmails are granted IsAdmin when their account is first created.
	AdminEmails []string
	// AccessPassword guards guest access. Empty disables it.
	AccessPassword string
}

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	scope  scope.Manager
	admins map[string]bool
	access string
	pick   func(n int) int
	newID  func() string
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger, scopeManager scope.Manager, cfg Config) *implUseCase {
	admins := make(map[string]bool, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins[e] = true
		}
	}
	return &implUseCase{
		repo:   repo,
		l:      l,
		scope:  scopeManager,
		admins: admins,
		access: cfg.AccessPassword,
		pick:   rand.IntN,
		newID:  uuid.NewString,
	}
}
