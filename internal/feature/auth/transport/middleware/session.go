// Package middleware provides the session authentication gate applied to
// every route that reads or mutates private data.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes_app/internal/feature/auth/domain/entity"
	"notes_app/internal/feature/auth/usecase"
)

// Keys under which the gate stores the authenticated identity in the gin context.
const (
	ContextUserID    = "userID"
	ContextUsername  = "username"
	ContextSessionID = "sessionID"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session_id"

// SessionResolver resolves a session token to its server-side session record.
type SessionResolver interface {
	FindByID(ctx context.Context, id string) (*entity.Session, error)
}

// AuthRequired returns a Gin middleware that restricts access to
// authenticated users. A request is authenticated iff its cookie token
// resolves to a valid session whose payload carries a user id; anything
// else is redirected to the login page and the downstream handler never
// runs. A session-store fault renders the error view instead, since the
// request could not be classified either way. The decision is made once
// per request and has no side effects on the session itself.
func AuthRequired(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		session, err := sessions.FindByID(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, usecase.ErrSessionNotFound) {
				// Store fault, not a missing session. The request's
				// authentication state is unknown, so this is a server
				// error rather than a login redirect.
				slog.Error("session lookup failed", "error", err, "remote_addr", c.ClientIP())
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"title":  "Error",
					"status": http.StatusInternalServerError,
				})
				c.Abort()
				return
			}
			redirectToLogin(c)
			return
		}

		if !session.IsValid() || session.UserID == 0 {
			redirectToLogin(c)
			return
		}

		// Downstream handlers read the identity from the context;
		// no re-fetch from the credential store on this path.
		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUsername, session.Username)
		c.Set(ContextSessionID, session.ID)
		c.Next()
	}
}

// redirectToLogin aborts the chain with a redirect to the login entry point.
func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// UserID returns the authenticated user's id placed by AuthRequired.
// The second return is false when the gate did not run on this request.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Username returns the authenticated user's login name placed by AuthRequired.
func Username(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUsername)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
