package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"velora.backend/internal/config"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/domain/repositories"
	"velora.backend/pkg/crypto"
	"velora.backend/pkg/jwt"
	"velora.backend/pkg/logger"
	"velora.backend/pkg/metrics"
	"velora.backend/pkg/oauth"
)

const resetCodeTTL = 10 * time.Minute

// GoogleExchanger trades an OAuth authorization code for a Google profile
type GoogleExchanger interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth.Profile, error)
}

// EmailSender delivers the password reset code
type EmailSender interface {
	SendResetCode(ctx context.Context, toName, toEmail, code string) error
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	google     GoogleExchanger
	email      EmailSender
	admin      config.AdminConfig
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	google GoogleExchanger,
	email EmailSender,
	admin config.AdminConfig,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		google:     google,
		email:      email,
		admin:      admin,
	}
}

// Signup registers a credentials account
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.AuthResponse, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("an account with this email already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Provider:     entities.ProviderCredentials,
		Role:         entities.UserRoleUser,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user signed up", zap.String("user_id", user.ID.String()))
	return u.issueSession(user)
}

// Login authenticates with email and password. The configured admin override
// credentials are checked first; that path issues an ADMIN session without a
// users table row. Unknown emails and wrong passwords share one error message
// so login responses reveal nothing about which emails are registered.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	if metrics.LoginAttemptsTotal != nil {
		metrics.LoginAttemptsTotal.Inc()
	}

	if u.isAdminOverride(input.Email, input.Password) {
		token, err := u.jwtService.GenerateToken(uuid.Nil, u.admin.Email, string(entities.UserRoleAdmin))
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "admin override login")
		return &entities.AuthResponse{
			Token:    token,
			Role:     entities.UserRoleAdmin,
			Redirect: "/dashboard",
		}, nil
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, u.loginFailure()
		}
		return nil, err
	}

	if user.Provider == entities.ProviderGoogle {
		if metrics.LoginFailuresTotal != nil {
			metrics.LoginFailuresTotal.Inc()
		}
		return nil, domainerrors.NewAppError(400, domainerrors.CodeValidation,
			"this account uses Google sign-in", domainerrors.ErrOAuthAccount)
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, u.loginFailure()
	}

	return u.issueSession(user)
}

func (u *AuthUsecase) isAdminOverride(email, password string) bool {
	if u.admin.Email == "" || u.admin.PasswordHash == "" {
		return false
	}
	// Both checks always run so the response time does not depend on which
	// credential was wrong
	emailOK := crypto.SecureCompare(email, u.admin.Email)
	passwordOK := crypto.CheckPassword(password, u.admin.PasswordHash)
	return emailOK && passwordOK
}

func (u *AuthUsecase) loginFailure() error {
	if metrics.LoginFailuresTotal != nil {
		metrics.LoginFailuresTotal.Inc()
	}
	return domainerrors.NewAppError(401, domainerrors.CodeInvalidCredentials,
		"invalid email or password", domainerrors.ErrInvalidCredentials)
}

func (u *AuthUsecase) issueSession(user *entities.User) (*entities.AuthResponse, error) {
	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	redirect := "/"
	if user.Role == entities.UserRoleAdmin {
		redirect = "/dashboard"
	}
	return &entities.AuthResponse{
		Token:    token,
		Role:     user.Role,
		Redirect: redirect,
		User:     user,
	}, nil
}

// CheckToken validates a session token and returns its claims
func (u *AuthUsecase) CheckToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired session")
	}
	return claims, nil
}

// GoogleAuthURL returns the Google consent page URL for the given CSRF state
func (u *AuthUsecase) GoogleAuthURL(state string) string {
	return u.google.AuthURL(state)
}

// GoogleLogin completes the OAuth flow: it exchanges the code, then finds or
// creates the matching account and issues a session.
func (u *AuthUsecase) GoogleLogin(ctx context.Context, code string) (*entities.AuthResponse, error) {
	profile, err := u.google.Exchange(ctx, code)
	if err != nil {
		logger.Warn(ctx, "google oauth exchange failed", zap.Error(err))
		return nil, domainerrors.Unauthorized("google sign-in failed")
	}
	if profile.Email == "" || !profile.VerifiedEmail {
		return nil, domainerrors.Unauthorized("google account email is not verified")
	}

	user, err := u.userRepo.GetByEmail(ctx, profile.Email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		user = &entities.User{
			Email:    profile.Email,
			Name:     profile.Name,
			Provider: entities.ProviderGoogle,
			Role:     entities.UserRoleUser,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		logger.Info(ctx, "user created via google oauth", zap.String("user_id", user.ID.String()))
	} else if err != nil {
		return nil, err
	}

	return u.issueSession(user)
}

// ForgotPassword issues a reset code. Unknown emails succeed silently so the
// endpoint cannot be used to probe which emails are registered.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, input *entities.ForgotPasswordInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Debug(ctx, "password reset requested for unknown email")
			return nil
		}
		return err
	}

	if user.Provider == entities.ProviderGoogle {
		// OAuth accounts have no password to reset
		return nil
	}

	code, err := crypto.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := u.userRepo.SetResetCode(ctx, user.ID, code, time.Now().Add(resetCodeTTL)); err != nil {
		return err
	}

	if err := u.email.SendResetCode(ctx, user.Name, user.Email, code); err != nil {
		logger.Error(ctx, "failed to deliver reset code", zap.String("user_id", user.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

// VerifyResetCode checks a reset code without consuming it
func (u *AuthUsecase) VerifyResetCode(ctx context.Context, input *entities.VerifyCodeInput) error {
	_, err := u.matchResetCode(ctx, input.Email, input.Code)
	return err
}

// ResetPassword completes the forgot-password flow and clears the code
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	user, err := u.matchResetCode(ctx, input.Email, input.Code)
	if err != nil {
		return err
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return err
	}
	if err := u.userRepo.ClearResetCode(ctx, user.ID); err != nil {
		return err
	}

	logger.Info(ctx, "password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}

func (u *AuthUsecase) matchResetCode(ctx context.Context, email, code string) (*entities.User, error) {
	invalid := domainerrors.NewAppError(400, domainerrors.CodeValidation,
		"reset code is invalid", domainerrors.ErrCodeInvalid)

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if !user.ResetCode.Valid || user.ResetCode.String == "" {
		return nil, invalid
	}
	if !crypto.SecureCompare(user.ResetCode.String, code) {
		return nil, invalid
	}
	if !user.ResetCodeExpiry.Valid || time.Now().After(user.ResetCodeExpiry.Time) {
		return nil, domainerrors.NewAppError(400, domainerrors.CodeValidation,
			"reset code has expired", domainerrors.ErrCodeExpired)
	}
	return user, nil
}
