// Package middleware contains the HTTP delivery middleware.
package middleware

import (
	"strings"

	"sharefit/config"
	"sharefit/internal/delivery/http/response"
	"sharefit/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key carrying the authenticated user ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer access token and stores the caller's
// user ID on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		userID, err := m.authenticateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// authenticateToken validates an access token string and extracts the user ID.
// Shared with the stream handler, which also accepts tokens via query string.
func (m *AuthMiddleware) authenticateToken(tokenString string) (uuid.UUID, error) {
	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidSubject
	}

	return uuid.Parse(sub)
}

// AuthenticateTokenString exposes token validation for transports that cannot
// send an Authorization header, such as EventSource clients.
func (m *AuthMiddleware) AuthenticateTokenString(tokenString string) (uuid.UUID, error) {
	return m.authenticateToken(tokenString)
}

// UserID extracts the authenticated user ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
