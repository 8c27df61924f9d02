// Copyright (c) 2026 Codeflix. All rights reserved.

/*
Package auth implements admin authentication for the catalog API.

The API has a single administrative principal configured through the
environment. A successful login opens a server-side session in Redis and
returns a signed JWT carrying the session id; verification checks both the
signature and the session, so logout revokes access immediately instead of
waiting for token expiry.
*/
package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/codeflix/catalog/internal/platform/apperr"
	"github.com/codeflix/catalog/internal/platform/constants"
	"github.com/codeflix/catalog/internal/platform/sec"
	"github.com/codeflix/catalog/pkg/uuidv7"
)

// # Contracts & Types

// SessionStore tracks the set of live admin sessions.
type SessionStore interface {
	Set(ctx context.Context, sessionID, username string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// TokenProvider generates and verifies signed access tokens.
// [sec.TokenService] satisfies it.
type TokenProvider interface {
	GenerateAccessToken(sessionID, username string, timeToLive time.Duration) (string, error)
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// LoginInput holds the submitted admin credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the issued token and its lifetime in seconds.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Service struct {
	adminUsername     string
	adminPasswordHash string
	sessions          SessionStore
	tokens            TokenProvider
	logger            *slog.Logger
}

func NewService(adminUsername, adminPasswordHash string, sessions SessionStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		sessions:          sessions,
		tokens:            tokens,
		logger:            logger,
	}
}

// # Login Flow

// Login checks the submitted credentials against the configured admin
// principal and, on success, opens a session and issues an access token.
//
// Both failure modes return the same Unauthorized error so that responses do
// not reveal whether the username was recognized.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(input.Username), []byte(service.adminUsername)) == 1
	passwordMatch := sec.CheckPasswordHash(input.Password, service.adminPasswordHash)
	if !usernameMatch || !passwordMatch {
		service.logger.Warn("login_failed", slog.String("username", input.Username))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	sessionID := uuidv7.New()
	if err := service.sessions.Set(ctx, sessionID, input.Username, constants.AdminTokenTTL); err != nil {
		return nil, err
	}

	token, err := service.tokens.GenerateAccessToken(sessionID, input.Username, constants.AdminTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("login_succeeded",
		slog.String("username", input.Username),
		slog.String("session_id", sessionID),
	)
	return &LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(constants.AdminTokenTTL.Seconds()),
	}, nil
}

// Logout revokes the session named by the caller's claims. Revoking an
// already-dead session is not an error.
func (service *Service) Logout(ctx context.Context, claims *sec.AuthClaims) error {
	if err := service.sessions.Delete(ctx, claims.SessionID); err != nil {
		return err
	}

	service.logger.Info("logout",
		slog.String("username", claims.Username),
		slog.String("session_id", claims.SessionID),
	)
	return nil
}

// # Verification

// Verify validates a raw token string for the authentication middleware: the
// signature must check out and the embedded session must still be live.
func (service *Service) Verify(ctx context.Context, tokenStr string) (*sec.AuthClaims, error) {
	claims, err := service.tokens.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}

	live, err := service.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, apperr.Unauthorized("Session has been revoked")
	}

	return claims, nil
}
