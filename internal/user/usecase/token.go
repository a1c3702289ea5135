package usecase

import (
	"context"

	"inventory-tracker/internal/user"
	repo "inventory-tracker/internal/user/repository"
	"inventory-tracker/pkg/scope"
)

// VerifyToken accepts any unexpired token signed by this service.
func (uc *implUseCase) VerifyToken(ctx context.Context, input user.VerifyTokenInput) error {
	if _, err := uc.tokens.Verify(input.Token); err != nil {
		uc.l.Debugf(ctx, "uc.VerifyToken: %v", err)
		return user.ErrInvalidToken
	}
	return nil
}

// RefreshToken trades a refresh token for a new access token. The token's
// user must still exist.
func (uc *implUseCase) RefreshToken(ctx context.Context, input user.RefreshTokenInput) (user.RefreshTokenOutput, error) {
	claims, err := uc.tokens.Verify(input.Refresh)
	if err != nil || claims.TokenType != scope.TokenTypeRefresh {
		uc.l.Debugf(ctx, "uc.RefreshToken: not a valid refresh token: %v", err)
		return user.RefreshTokenOutput{}, user.ErrInvalidToken
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: claims.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RefreshToken GetOneUser: %v", err)
		return user.RefreshTokenOutput{}, err
	}
	if u.ID == 0 {
		uc.l.Warnf(ctx, "uc.RefreshToken: user %d no longer exists", claims.UserID)
		return user.RefreshTokenOutput{}, user.ErrInvalidToken
	}

	access, err := uc.tokens.Refresh(input.Refresh)
	if err != nil {
		uc.l.Debugf(ctx, "uc.RefreshToken: %v", err)
		return user.RefreshTokenOutput{}, user.ErrInvalidToken
	}
	return user.RefreshTokenOutput{Access: access}, nil
}
