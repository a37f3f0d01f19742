// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes_app/internal/feature/auth/domain/entity"
	"notes_app/internal/feature/auth/transport/http/dto"
	"notes_app/internal/feature/auth/transport/middleware"
	"notes_app/internal/feature/auth/usecase"
)

// sessionCookieMaxAge matches the session TTL (24 hours, in seconds).
const sessionCookieMaxAge = 24 * 3600

// AuthUsecase defines the credential-lifecycle operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, error)
	// Login authenticates a user and returns it on success.
	Login(ctx context.Context, username, password string) (*entity.User, error)
	// StartSession establishes and persists a session for an authenticated user.
	StartSession(ctx context.Context, user *entity.User, client usecase.ClientInfo) (*entity.Session, error)
	// Logout revokes the session with the given token.
	Logout(ctx context.Context, sessionID string) error
}

// CookieConfig carries the attributes of the session cookie.
type CookieConfig struct {
	Domain string
	Secure bool
}

// AuthHandler handles the login, registration and logout routes.
type AuthHandler struct {
	auth   AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login"})
}

// Login authenticates the submitted credentials and establishes a session.
// Any credential failure redirects back to the login form without revealing
// whether the username or the password was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.Redirect(http.StatusFound, "/login")
			return
		}
		slog.Error("login store failure", "error", err, "remote_addr", c.ClientIP())
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	h.establishSession(c, user)
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"title": "Register"})
}

// Register creates a new user and establishes a session, exactly as the
// login path would. A duplicate username or email redirects back to the
// form without detail on which field collided.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := h.auth.Register(c.Request.Context(),
		req.Username, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameAlreadyExists) || errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register conflict", "username", req.Username, "remote_addr", c.ClientIP())
			c.Redirect(http.StatusFound, "/register")
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	h.establishSession(c, user)
}

// Logout revokes the caller's session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if v, ok := c.Get(middleware.ContextSessionID); ok {
		if sessionID, ok := v.(string); ok {
			if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
				slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
				h.renderError(c, http.StatusInternalServerError)
				return
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}

// establishSession writes the session cookie and redirects to the home page.
// A session-store failure must surface as an error, never as a silent success.
func (h *AuthHandler) establishSession(c *gin.Context, user *entity.User) {
	session, err := h.auth.StartSession(c.Request.Context(), user, usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		slog.Error("session establishment failed", "error", err, "username", user.Username, "remote_addr", c.ClientIP())
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.ID, sessionCookieMaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)

	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/")
}

// renderError renders the generic error view with the given status.
func (h *AuthHandler) renderError(c *gin.Context, status int) {
	c.HTML(status, "error.html", gin.H{"title": "Error", "status": status})
}
