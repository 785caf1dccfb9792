package usecase

import (
	"context"
	"fmt"
	"time"

	"vietnam-places/internal/data/entity"
	"vietnam-places/internal/data/repository"
	"vietnam-places/internal/dto/request"
	"vietnam-places/internal/dto/response"
	"vietnam-places/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	// Login returns (nil, nil) on any authentication failure so the
	// caller cannot distinguish a wrong password from an unknown email.
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GoogleAuth(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email not taken (exact, case-sensitive match)
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: &hashedPassword,
		GoogleID:     nil,
		Name:         req.Name,
	}

	// 5. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return s.convertAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// 3. Unknown email
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, nil
	}

	// 4. Google-only account has no password to check
	if user.PasswordHash == nil {
		s.log.Warn("Password login attempt on Google-only account", zap.Int64("user_id", user.ID))
		return nil, nil
	}

	// 5. Check password
	if !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, nil
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return s.convertAuthResponse(user)
}

// GoogleAuth upserts an account from a verified Google identity. An
// existing account matched by subject id or email is reconciled; a
// write happens only when something actually changed.
func (s *authService) GoogleAuth(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Google auth validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find existing account by Google subject id or email
	user, err := s.repo.User.FindByGoogleIDOrEmail(ctx, req.GoogleID, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for google auth", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	if user != nil {
		// 3a. Reconcile: link the subject id and pick up a changed name.
		// No write and no updated_at bump when nothing changed.
		changed := false

		if user.GoogleID == nil {
			googleID := req.GoogleID
			user.GoogleID = &googleID
			changed = true
		}
		if user.Name != req.Name {
			user.Name = req.Name
			changed = true
		}

		if changed {
			user.UpdatedAt = time.Now()
			if err := s.repo.User.Update(ctx, user); err != nil {
				s.log.Error("Failed to reconcile google account", zap.Error(err), zap.Int64("user_id", user.ID))
				return nil, fmt.Errorf("failed to update account")
			}
			s.log.Info("Google account reconciled", zap.Int64("user_id", user.ID))
		}

		return s.convertAuthResponse(user)
	}

	// 3b. First Google login: create the account with no password
	now := time.Now()
	googleID := req.GoogleID
	user = &entity.User{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: nil,
		GoogleID:     &googleID,
		Name:         req.Name,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create google user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User created via google auth",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return s.convertAuthResponse(user)
}

// ==================== HELPER METHODS ====================

func (s *authService) convertAuthResponse(user *entity.User) (*response.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, s.config.JWT)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.ExpiryHours) * time.Hour),
		User:      response.UserToResponse(user),
	}, nil
}
