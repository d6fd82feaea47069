package middleware

import (
	"Uno/services/auth"
	"Uno/utils"
	"Uno/utils/logger"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Context keys set by AuthRequired
const (
	UserIDKey = "userID"
	EmailKey  = "email"
	TokenKey  = "token"
)

const sessionTokenKey = "Token"

var errNoUser = errors.New("no authenticated user in context")

// BearerToken extracts the token of an "Authorization: Bearer <token>" header
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func session(c *gin.Context) sessions.Session {
	// sessions.Default panics when the sessions middleware is not mounted
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return nil
	}
	return sessions.Default(c)
}

// SaveSessionToken stores token in the cookie session, if there is one
func SaveSessionToken(c *gin.Context, token string) error {
	s := session(c)
	if s == nil {
		return nil
	}
	s.Set(sessionTokenKey, token)
	return s.Save()
}

// ClearSessionToken drops the token from the cookie session
func ClearSessionToken(c *gin.Context) error {
	s := session(c)
	if s == nil || s.Get(sessionTokenKey) == nil {
		return nil
	}
	s.Delete(sessionTokenKey)
	return s.Save()
}

func requestToken(c *gin.Context) string {
	if token := BearerToken(c); token != "" {
		return token
	}
	if s := session(c); s != nil {
		if token, ok := s.Get(sessionTokenKey).(string); ok {
			return token
		}
	}
	return ""
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, utils.ErrorBody(status, message))
}

// AuthRequired accepts a bearer token or the token saved in the session at
// login. Revoked tokens are rejected like expired ones.
func AuthRequired(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := requestToken(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := authService.ParseToken(c.Request.Context(), token)
		switch {
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrRevokedToken):
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		case err != nil:
			logger.Errorf("[AUTH-ERROR] %v", err)
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(UserIDKey, claims.ID)
		c.Set(EmailKey, claims.Email)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// JWT_decoder returns the id of the authenticated user
func JWT_decoder(c *gin.Context) (string, error) {
	id := c.GetString(UserIDKey)
	if id == "" {
		return "", errNoUser
	}
	return id, nil
}
