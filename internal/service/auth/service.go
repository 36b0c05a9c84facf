package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/wageflow/payroll-backend-go/internal/domain/auth"
	"github.com/wageflow/payroll-backend-go/internal/domain/user"
	"github.com/wageflow/payroll-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. Every failure mode collapses to the
// same invalid-credentials error so the response never reveals whether an
// email is registered.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, string(userData.Role))
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{Token: token, Role: string(userData.Role)}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.ProfileResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return auth.ProfileResponse{}, fmt.Errorf("failed to resolve identity: %w", err)
	}

	profile, err := a.userRepo.GetProfileByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.ProfileResponse{}, user.ErrUserNotFound
		}
		return auth.ProfileResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return auth.ProfileResponse{
		UserID:     profile.UserID,
		Email:      profile.Email,
		Role:       string(profile.Role),
		EmployeeID: profile.EmployeeID,
		FullName:   profile.FullName,
		Rate:       profile.Rate.InexactFloat64(),
	}, nil
}
