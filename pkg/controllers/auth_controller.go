package controllers

import (
	"context"
	"crypto/subtle"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/utils/jwt"
)

// AdminRole is granted to the configured admin user.
const AdminRole = "admin"

// Credentials is the single admin account allowed into the panel.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	User      string    `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthController authenticates admin users.
type AuthController interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}

type authController struct {
	creds      Credentials
	jwtManager *jwt.JWTManager
	ttl        time.Duration
	logger     *zap.Logger
}

func NewAuthController(creds Credentials, jwtManager *jwt.JWTManager, ttl time.Duration, logger *zap.Logger) AuthController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authController{
		creds:      creds,
		jwtManager: jwtManager,
		ttl:        ttl,
		logger:     logger,
	}
}

func (c *authController) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, errors.ErrInvalidInput.WithReason("username and password are required")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.creds.Username)) == 1
	// the hash is compared even for an unknown user
	pwErr := bcrypt.CompareHashAndPassword([]byte(c.creds.PasswordHash), []byte(password))
	if !userOK || pwErr != nil {
		c.logger.Warn("admin login rejected", zap.String("user", username))
		return nil, errors.ErrInvalidCredentials
	}

	token, err := c.jwtManager.GenerateToken(username, []string{AdminRole})
	if err != nil {
		return nil, errors.ErrInternal.WithReason("failed to generate token")
	}

	c.logger.Info("admin logged in", zap.String("user", username))
	return &Session{
		Token:     token,
		User:      username,
		ExpiresAt: time.Now().Add(c.ttl),
	}, nil
}
