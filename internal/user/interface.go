package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (SignupOutput, error)
	VerifyToken(ctx context.Context, input VerifyTokenInput) error
	RefreshToken(ctx context.Context, input RefreshTokenInput) (RefreshTokenOutput, error)
}
