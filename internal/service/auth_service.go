package service

import (
	"edubridge_backend/internal/config"
	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"
	"edubridge_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users *repository.UserRepository
	jwt   config.JWTConfig
}

func NewAuthService(users *repository.UserRepository, jwt config.JWTConfig) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

type RegisterRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=8"`
	Role     model.UserRole `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register creates a new account. Only student and employer roles can be
// self-registered.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResult, error) {
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role != model.Student && role != model.Employer {
		role = model.Student
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	logger.Log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))

	return s.issueToken(user)
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(req *LoginRequest) (*AuthResult, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Disabled {
		return nil, util.ErrPermissionDenied
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if err := s.users.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to record last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.jwt.Secret, s.jwt.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}
