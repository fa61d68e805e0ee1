package handlers

import (
	"net/http"

	"travelbooking/internal/domain"
	"travelbooking/internal/http/middleware"
	"travelbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func sessionResponse(token string, sess domain.Session) gin.H {
	return gin.H{
		"token":     token,
		"expiresAt": sess.ExpiresAt,
		"user": gin.H{
			"id":    sess.UserID,
			"name":  sess.Name,
			"email": sess.Email,
		},
	}
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	token, sess, err := authService(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(token, sess))
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, sess, err := authService(c).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(token, sess))
}

// POST /api/auth/logout
func Logout(c *gin.Context) {
	authService(c).Logout(middleware.GetSession(c))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "login required"})
		return
	}
	c.JSON(http.StatusOK, sess)
}
