package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"reservas/internal/auth"
	apperrors "reservas/internal/errors"
	"reservas/internal/model"
	"reservas/internal/obs"
	"reservas/internal/repository"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	AdminKey string
}

// AuthService handles registration and login.
type AuthService interface {
	AuthorizeRole(role, adminKey string) error
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	gate     *auth.AdminGate
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, gate *auth.AdminGate) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		gate:     gate,
	}
}

// AuthorizeRole rejects the elevated role unless adminKey matches the configured key.
func (s *authService) AuthorizeRole(role, adminKey string) error {
	if !s.gate.Allow(role, adminKey) {
		return apperrors.ErrAdminKeyInvalid
	}
	return nil
}

// Register creates a user with a hashed password.
func (s *authService) Register(ctx context.Context, in RegisterInput) (user *model.User, err error) {
	ctx, span := obs.Start(ctx, "AuthService.Register", attribute.String("rol", in.Role))
	defer func() { obs.End(span, err) }()

	if err := s.AuthorizeRole(in.Role, in.AdminKey); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user = &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		Role:         in.Role,
	}

	// the unique index on correo decides duplicates, no pre-check
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials. Unknown e-mails and wrong passwords fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (user *model.User, err error) {
	ctx, span := obs.Start(ctx, "AuthService.Login")
	defer func() { obs.End(span, err) }()

	user, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.hasher.CompareDummy(password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
