package middleware

import (
	"net/http"
	"strings"

	"travelbooking/internal/domain"
	"travelbooking/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionOptional attaches the caller's session when a valid bearer token is
// present. Missing or invalid tokens leave the request anonymous.
func SessionOptional(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions != nil {
			if token := bearerToken(c); token != "" {
				if sess, err := sessions.Parse(token); err == nil {
					c.Set(sessionKey, sess)
				}
			}
		}
		c.Next()
	}
}

// RequireSession rejects anonymous requests with 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "login required",
				"code":       "unauthorized",
				"message":    "login required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

// GetSession returns the session attached by SessionOptional, or nil.
func GetSession(c *gin.Context) *domain.Session {
	if c == nil {
		return nil
	}
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
