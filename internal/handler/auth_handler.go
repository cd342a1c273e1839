package handler

import (
	"errors"
	"net/http"
	"strings"

	"hackpass/internal/service"
	"hackpass/internal/session"
	apperrors "hackpass/pkg/app_errors"
	"hackpass/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	verifier   service.CredentialVerifier
	sessions   session.Store
	sessionTTL int
}

func NewAuthHandler(verifier service.CredentialVerifier, sessions session.Store, sessionTTLSeconds int) *AuthHandler {
	return &AuthHandler{
		verifier:   verifier,
		sessions:   sessions,
		sessionTTL: sessionTTLSeconds,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
}

func (h *AuthHandler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/logout", h.Logout)
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := strings.TrimSpace(c.PostForm("password"))

	identity, err := h.verifier.Verify(c, email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Invalid email or password"})
			return
		}
		logger.WithComponent("handler").Error("login failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Something went wrong, try again"})
		return
	}

	token, err := h.sessions.Create(c, identity)
	if err != nil {
		logger.WithComponent("handler").Error("failed to create session", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Something went wrong, try again"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, h.sessionTTL, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.sessions.Delete(c, token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
