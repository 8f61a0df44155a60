package service

import (
	"context"

	"condopark/internal/auth"
	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/repository"
	"condopark/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService is the identity provider: it registers users and exchanges
// e-mail and password for a signed access token.
type AuthService interface {
	Signup(ctx context.Context, req entities.SignupRequest) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*entities.LoginResponse, error)
}

type authService struct {
	repo   repository.UserRepository
	tokens *auth.TokenIssuer
	clock  Clock
}

func NewAuthService(repo repository.UserRepository, tokens *auth.TokenIssuer, clock Clock) AuthService {
	return &authService{repo: repo, tokens: tokens, clock: clock}
}

func (s *authService) Signup(ctx context.Context, req entities.SignupRequest) (*entities.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if (req.Role == entities.RoleOwner || req.Role == entities.RoleGuard) && req.TenantID == "" {
		return nil, apperrors.NewValidationError("tenant_id", "is required for owner and guard")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &entities.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    s.clock(),
	}
	if req.TenantID != "" {
		tenant := req.TenantID
		user.TenantID = &tenant
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	utils.Logger.WithField("user_id", user.ID).Infof("User registered with role %s", user.Role)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*entities.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("", "email and password required")
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewAuthenticationError("invalid credentials")
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return nil, err
	}
	return &entities.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Role:     user.Role,
		Name:     user.Name,
		TenantID: user.TenantID,
	}, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
