package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/auth"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/jwt"
)

type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	Refresh(ctx context.Context, req *auth.RefreshRequest) (*auth.LoginResponse, error)
}

type AuthServiceImpl struct {
	workerRepo worker.Repository
	jwtService jwt.Service
}

func NewAuthService(workerRepo worker.Repository, jwtService jwt.Service) AuthService {
	return &AuthServiceImpl{
		workerRepo: workerRepo,
		jwtService: jwtService,
	}
}

// Login implements AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.workerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			// Same error as a bad password, so emails can't be probed.
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !w.IsActive {
		return nil, worker.ErrInactiveWorker
	}

	if err := bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issueTokens(w)
}

// Refresh implements AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req *auth.RefreshRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workerID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !w.IsActive {
		return nil, worker.ErrInactiveWorker
	}

	return s.issueTokens(w)
}

func (s *AuthServiceImpl) issueTokens(w worker.Worker) (*auth.LoginResponse, error) {
	accessToken, _, err := s.jwtService.GenerateAccessToken(w.ID, w.Email, w.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(w.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		WorkerID:     w.ID,
		FullName:     w.FullName(),
		Role:         string(w.Role),
	}, nil
}
