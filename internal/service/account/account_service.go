package account

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/Domenick1991/travelbooking/internal/auth"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
)

const (
	maxNameLen     = 50
	minPasswordLen = 6
	// bcrypt rejects longer inputs.
	maxPasswordLen = 72
)

type AccountUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, auth.Token, error)
	Profile(ctx context.Context, caller domain.Caller) (*domain.User, error)
	UpdateProfile(ctx context.Context, caller domain.Caller, input ProfileInput) (*domain.User, error)
	EnsureAdmin(ctx context.Context, input RegisterInput) (*domain.User, error)
}

type TokenIssuer interface {
	Issue(user domain.User) (auth.Token, error)
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber *string
}

type ProfileInput struct {
	FirstName   string
	LastName    string
	PhoneNumber *string
}

type AccountService struct {
	users      repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

func NewAccountService(users repository.UserRepository, tokens TokenIssuer, bcryptCost int) *AccountService {
	return &AccountService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user, err := s.newUser(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login reports unknown emails and wrong passwords the same way.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, auth.Token, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, auth.Token{}, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
		}
		return nil, auth.Token{}, err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, auth.Token{}, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, auth.Token{}, err
	}
	return user, token, nil
}

func (s *AccountService) Profile(ctx context.Context, caller domain.Caller) (*domain.User, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.users.GetByID(ctx, caller.UserID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, caller domain.Caller, input ProfileInput) (*domain.User, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	first, last, err := validateNames(input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}

	user := &domain.User{ID: caller.UserID, FirstName: first, LastName: last, PhoneNumber: trimOptional(input.PhoneNumber)}
	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the configured administrator or promotes the existing
// account with that email. It is called once at startup.
func (s *AccountService) EnsureAdmin(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !existing.IsAdmin {
			if err := s.users.SetAdmin(ctx, existing.ID, true); err != nil {
				return nil, err
			}
			existing.IsAdmin = true
			log.Printf("account: promoted %s to admin", email)
		}
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	user, err := s.newUser(input)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = true
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("account: created admin %s", email)
	return user, nil
}

func (s *AccountService) newUser(input RegisterInput) (*domain.User, error) {
	first, last, err := validateNames(input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if len(input.Password) > maxPasswordLen {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPasswordLen)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &domain.User{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  trimOptional(input.PhoneNumber),
	}, nil
}

func validateNames(first, last string) (string, string, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return "", "", fmt.Errorf("%w: first and last name are required", domain.ErrValidation)
	}
	if len([]rune(first)) > maxNameLen || len([]rune(last)) > maxNameLen {
		return "", "", fmt.Errorf("%w: names must be at most %d characters", domain.ErrValidation, maxNameLen)
	}
	return first, last, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

var _ AccountUseCase = (*AccountService)(nil)
