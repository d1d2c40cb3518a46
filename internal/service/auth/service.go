package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/internal/session"
	"github.com/jwalitptl/doctor-channel/pkg/auth"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
	"github.com/jwalitptl/doctor-channel/pkg/security"
	"github.com/jwalitptl/doctor-channel/pkg/validator"
)

const resource = "user"

// BootstrapAdmin describes the administrator created on first start.
type BootstrapAdmin struct {
	Email    string
	Password string
	FullName string
}

type Service struct {
	userRepo  repository.UserRepository
	jwtSvc    auth.JWTService
	hasher    security.PasswordHasher
	validator validator.Validator
	now       func() time.Time
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSvc:    jwtSvc,
		hasher:    hasher,
		validator: validator.New(),
		now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an active USER account. Callers cannot choose the role.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, repository.Wrap(resource, "get user by email", err)
	}

	user, err := s.createUser(ctx, req.FullName, email, req.Phone, req.Password, model.RoleUser)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return &model.AuthResponse{
		Success: true,
		User:    user,
		Message: "registration successful",
	}, nil
}

func (s *Service) createUser(ctx context.Context, fullName, email, phone, password string, role model.Role) (*model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooShort) {
			return nil, apperrors.Validation(fmt.Sprintf("password must be at least %d characters", security.MinPasswordLen), err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &model.User{
		Base:         model.Base{ID: uuid.NewString()},
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	user.Touch(s.now())

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email already registered", err)
		}
		return nil, repository.Wrap(resource, "create user", err)
	}
	return user, nil
}

// Login checks the credentials and issues a signed token. Unknown emails, wrong
// passwords and inactive accounts all yield Unauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized(model.ErrInvalidCredentials)
		}
		return nil, repository.Wrap(resource, "get user by email", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized(model.ErrInvalidCredentials)
	}
	if !user.IsActive {
		return nil, apperrors.Unauthorized(model.ErrInactiveUser)
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.AuthResponse{
		Success: true,
		User:    user,
		Token:   token,
		Message: "login successful",
	}, nil
}

// ValidateToken turns a bearer token into the caller's session.
func (s *Service) ValidateToken(token string) (*session.Session, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}
	if claims.UserID == "" {
		return nil, apperrors.Unauthorized(auth.ErrInvalidToken)
	}

	return &session.Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   model.Role(claims.Role),
	}, nil
}

// EnsureBootstrapAdmin creates the configured administrator unless an account
// with that email already exists. An empty email or password disables it.
func (s *Service) EnsureBootstrapAdmin(ctx context.Context, admin BootstrapAdmin) error {
	email := normalizeEmail(admin.Email)
	if email == "" {
		return nil
	}
	if admin.Password == "" {
		log.Warn().Str("email", email).Msg("bootstrap admin skipped: no password configured")
		return nil
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return repository.Wrap(resource, "get user by email", err)
	}

	name := admin.FullName
	if name == "" {
		name = "Administrator"
	}
	user, err := s.createUser(ctx, name, email, "", admin.Password, model.RoleAdmin)
	if err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID).Str("email", email).Msg("bootstrap admin created")
	return nil
}
