package http

import (
	"context"

	"github.com/nomzbank/auth-api/internal/domain"
	"github.com/nomzbank/auth-api/internal/infrastructure/resend"
)

// CodeRepository is the minimal interface the router requires from the verification-code store.
type CodeRepository interface {
	Upsert(ctx context.Context, c *domain.VerificationCode) error
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Claim(ctx context.Context, email, code string) error
}

// UserRepository is the minimal interface the router requires from the user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	CodeRepo CodeRepository
	UserRepo UserRepository
	Mailer   resend.Mailer
}
