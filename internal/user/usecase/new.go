package usecase

import (
	"github.com/go-playground/validator/v10"

	"inventory-tracker/internal/user/repository"
	"inventory-tracker/pkg/log"
	"inventory-tracker/pkg/password"
	"inventory-tracker/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	hasher   password.Hasher
	policy   *password.Policy
	tokens   scope.Manager
	validate *validator.Validate
}

// New creates a new user UseCase implementation. A nil policy means
// password.DefaultPolicy().
func New(repo repository.Repository, l log.Logger, hasher password.Hasher, policy *password.Policy, tokens scope.Manager) *implUseCase {
	if policy == nil {
		policy = password.DefaultPolicy()
	}
	return &implUseCase{
		repo:     repo,
		l:        l,
		hasher:   hasher,
		policy:   policy,
		tokens:   tokens,
		validate: validator.New(),
	}
}
