package usecase

import (
	"context"
	"errors"
	"fmt"

	"inventory-tracker/internal/user"
	repo "inventory-tracker/internal/user/repository"
	pkgErrors "inventory-tracker/pkg/errors"
)

// Signup validates the payload, creates the account and issues a token pair.
func (uc *implUseCase) Signup(ctx context.Context, input user.SignupInput) (user.SignupOutput, error) {
	if v := uc.validateFields(input); v.HasErrors() {
		return user.SignupOutput{}, v
	}
	if v := uc.validatePasswords(input); v.HasErrors() {
		return user.SignupOutput{}, v
	}

	username := *input.Username
	v, err := uc.checkUnique(ctx, input.Email, username)
	if err != nil {
		return user.SignupOutput{}, err
	}
	if v.HasErrors() {
		return user.SignupOutput{}, v
	}

	hash, err := uc.hasher.Hash(*input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup Hash: %v", err)
		return user.SignupOutput{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Username:     username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
	})
	if errors.Is(err, repo.ErrDuplicateKey) {
		// Lost a race with a concurrent signup; report it like the pre-check.
		return user.SignupOutput{}, uc.duplicateError(ctx, input.Email, username)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup CreateUser: %v", err)
		return user.SignupOutput{}, err
	}

	tokens, err := uc.tokens.IssuePair(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup IssuePair: %v", err)
		return user.SignupOutput{}, err
	}

	uc.l.Infof(ctx, "user %d signed up", u.ID)
	return user.SignupOutput{User: u, Tokens: tokens}, nil
}

// checkUnique reports taken email and username together.
func (uc *implUseCase) checkUnique(ctx context.Context, email, username string) (*pkgErrors.ValidationError, error) {
	v := &pkgErrors.ValidationError{}

	taken, err := uc.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		v.Add(user.KeyEmail, user.MsgEmailTaken)
	}

	taken, err = uc.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		v.Add(user.KeyUsername, user.MsgUsernameTaken)
	}

	return v, nil
}

func (uc *implUseCase) duplicateError(ctx context.Context, email, username string) error {
	v, err := uc.checkUnique(ctx, email, username)
	if err != nil {
		return err
	}
	if !v.HasErrors() {
		v.Add(user.KeyUsername, user.MsgUsernameTaken)
	}
	return v
}
