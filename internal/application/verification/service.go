package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strconv"
	"time"

	"github.com/nomzbank/auth-api/internal/domain"
	"github.com/nomzbank/auth-api/internal/infrastructure/resend"
	"github.com/nomzbank/auth-api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

const (
	codeTTL = 5 * time.Minute

	// Codes are uniform over [codeMin, codeMin+codeSpan), i.e. 100000–999999.
	codeMin  = 100000
	codeSpan = 900000

	emailSubject = "Your Nomzbank Verification Code"
)

// emailPattern accepts local-part@domain with a dot-delimited suffix.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
}

type Service interface {
	RequestCode(ctx context.Context, email string) error
	VerifyAndRegister(ctx context.Context, req RegisterRequest) error
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}

type codeStore interface {
	Upsert(ctx context.Context, c *domain.VerificationCode) error
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Claim(ctx context.Context, email, code string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type service struct {
	codes  codeStore
	users  userStore
	mailer resend.Mailer
}

type ServiceDeps struct {
	CodeRepo codeStore
	UserRepo userStore
	Mailer   resend.Mailer
}

func NewService(deps ServiceDeps) Service {
	return &service{
		codes:  deps.CodeRepo,
		users:  deps.UserRepo,
		mailer: deps.Mailer,
	}
}

// RequestCode stores a fresh code for email and asks the gateway to deliver it.
// Any prior pending code for the address is overwritten and becomes unredeemable.
// The code is never returned to the caller.
func (s *service) RequestCode(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %w", domain.ErrInvalidEmail)
	}

	code, err := newCode()
	if err != nil {
		return err
	}
	c := &domain.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(codeTTL).Unix(),
	}
	if err := s.codes.Upsert(ctx, c); err != nil {
		return fmt.Errorf("save verification code: %w", err)
	}

	body := "<p>Your verification code is: <strong>" + code + "</strong></p>"
	if err := s.mailer.SendEmail(ctx, email, emailSubject, body); err != nil {
		slog.Warn("verification email not delivered", "email", email, "err", err)
		return fmt.Errorf("send verification email: %w", domain.ErrDeliveryFailed)
	}
	return nil
}

// VerifyAndRegister consumes the pending code for req.Email and creates the account.
// The claim deletes the code before the account insert; if the insert then fails,
// the email must request a fresh code.
func (s *service) VerifyAndRegister(ctx context.Context, req RegisterRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("invalid email address: %w", domain.ErrInvalidEmail)
	}

	rec, err := s.codes.Get(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no code sent to this email: %w", domain.ErrNoCodeSent)
		}
		return err
	}
	if rec.ExpiresAt < time.Now().Unix() {
		return fmt.Errorf("code expired: %w", domain.ErrCodeExpired)
	}
	if rec.Code != req.Code {
		return fmt.Errorf("invalid code: %w", domain.ErrInvalidCode)
	}
	if err := s.codes.Claim(ctx, req.Email, req.Code); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &domain.User{
		Email:        req.Email,
		UserID:       id.New(),
		Name:         req.Name,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		CreatedAt:    time.Now().UTC(),
	}
	return s.users.Create(ctx, u)
}

// CheckEmailExists reports whether an account exists for email. Read-only.
func (s *service) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if !emailPattern.MatchString(email) {
		return false, fmt.Errorf("invalid email address: %w", domain.ErrInvalidEmail)
	}
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// newCode draws a uniform 6-digit code from crypto/rand.
func newCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}
