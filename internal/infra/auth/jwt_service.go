// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"arena/config"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"
	"arena/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default token lifetimes, overridable through config.Auth.
const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
	defaultResetTTL   = 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// One HS256 secret signs all three token classes; the "type" claim is the
// only discriminant and is checked on every verification.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	srv := &jwtService{
		secret:     []byte(cfg.SecretKey.JWT),
		accessTTL:  defaultAccessTTL,
		refreshTTL: defaultRefreshTTL,
		resetTTL:   defaultResetTTL,
	}

	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			srv.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			srv.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			srv.resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return srv, nil
}

// IssueAccessToken signs a short-lived access token for the player.
func (s *jwtService) IssueAccessToken(playerID uuid.UUID) (string, error) {
	return s.sign(playerID, service.TokenTypeAccess, s.accessTTL, "")
}

// IssueRefreshToken signs a long-lived refresh token with a fresh jti nonce.
// The nonce makes sibling refresh tokens for one player distinguishable; it
// carries no secret and plays no part in session liveness.
func (s *jwtService) IssueRefreshToken(playerID uuid.UUID) (string, string, error) {
	tokenID := uuid.New().String()

	token, err := s.sign(playerID, service.TokenTypeRefresh, s.refreshTTL, tokenID)
	if err != nil {
		return "", "", err
	}

	return token, tokenID, nil
}

// IssuePasswordResetToken signs a reset token with its own lifetime.
func (s *jwtService) IssuePasswordResetToken(playerID uuid.UUID) (string, error) {
	return s.sign(playerID, service.TokenTypePasswordReset, s.resetTTL, "")
}

// Verify checks signature, expiry, and the type claim.
func (s *jwtService) Verify(tokenString string, expected service.TokenType) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrExpiredToken.WrapMessage("token past its expiry")
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to parse token claims")
	}

	// A structurally valid token of the wrong class is rejected here. This
	// closes the "use a refresh token as an access token" escalation path.
	tokenType, _ := mapClaims["type"].(string)
	if service.TokenType(tokenType) != expected {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type")
	}

	sub, _ := mapClaims["sub"].(string)
	playerID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid subject in token")
	}

	claims := &service.Claims{
		PlayerID: playerID,
		Type:     expected,
	}
	if tokenID, ok := mapClaims["jti"].(string); ok {
		claims.TokenID = tokenID
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpireAt = time.Unix(int64(exp), 0)
	}

	return claims, nil
}

// HashToken returns the SHA-256 hex digest of a raw token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RemainingLifetime reports how long until the token's embedded expiry.
// It decodes only the payload segment and never verifies the signature;
// the result is used solely to size revocation entries.
func (s *jwtService) RemainingLifetime(token string) time.Duration {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return 0
	}

	var body struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Exp == 0 {
		return 0
	}

	remaining := time.Until(time.Unix(body.Exp, 0))
	if remaining < 0 {
		return 0
	}

	return remaining
}

// AccessTokenTTL returns the configured access-token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured refresh-token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// ResetTokenTTL returns the configured password-reset-token lifetime.
func (s *jwtService) ResetTokenTTL() time.Duration {
	return s.resetTTL
}

// sign creates a JWT with the standard claim set for this service.
func (s *jwtService) sign(playerID uuid.UUID, tokenType service.TokenType, ttl time.Duration, tokenID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  playerID.String(),   // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"type": string(tokenType),   // Token class (access, refresh, password_reset)
	}
	if tokenID != "" {
		claims["jti"] = tokenID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
