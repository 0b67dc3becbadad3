package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admin-panel-server/models"
	"admin-panel-server/repositories"
)

type AuthService interface {
	Login(req models.LoginRequest) (*models.LoginResponse, error)
	Logout(userID uint) error
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	lg       *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, lg *zap.Logger) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, lg: lg}
}

// Login classifies failures in a fixed order: missing fields, unknown email,
// wrong password (same error as unknown email), suspended account, and last
// the role gate: only Admin and Editor may enter the admin panel. The
// suspended and access-denied results stay distinct from bad credentials.
func (s *authService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, models.ValidationError{Message: "Email and password are required"}
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, models.ErrSuspended
	}

	if user.Role != models.RoleAdmin && user.Role != models.RoleEditor {
		s.lg.Info("login denied by role",
			zap.Uint("user_id", user.ID),
			zap.String("role", string(user.Role)),
		)
		return nil, models.ErrAccessDenied
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	// One valid refresh token per user: the new value overwrites the old.
	user.RefreshToken = refreshToken
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout clears the stored refresh token. Callers treat it as best-effort.
func (s *authService) Logout(userID uint) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	user.RefreshToken = ""
	return s.userRepo.Update(user)
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "User"}
		}
		return nil, err
	}
	return user, nil
}
