package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	portsrepo "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/repositories"
	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/middleware"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/utils"
)

// authService is the login boundary: it verifies credentials against the
// user store and issues the signed actor token the middleware consumes.
type authService struct {
	userRepo  portsrepo.UserReader
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates the login service.
func NewAuthService(userRepo portsrepo.UserReader, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks the password and issues a token carrying the user's role and
// scope claims. Bad credentials and unknown users fail identically.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed", slog.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	now := time.Now().UTC()
	claims := middleware.ActorClaims{
		Role:     string(user.Role),
		ChurchID: user.ChurchID,
		FundID:   user.FundID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	logger.Info("Login succeeded", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &dto.LoginResponse{Token: token}, nil
}
