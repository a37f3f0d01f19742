package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes_app/internal/feature/auth/domain/entity"
	"notes_app/internal/feature/auth/transport/middleware"
	"notes_app/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc     func(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, error)
	LoginFunc        func(ctx context.Context, username, password string) (*entity.User, error)
	StartSessionFunc func(ctx context.Context, user *entity.User, client usecase.ClientInfo) (*entity.Session, error)
	LogoutFunc       func(ctx context.Context, sessionID string) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, firstName, lastName, email, password)
	}
	return nil, errors.New("register failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil, usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) StartSession(ctx context.Context, user *entity.User, client usecase.ClientInfo) (*entity.Session, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx, user, client)
	}
	return &entity.Session{ID: "test-token", UserID: user.ID, Username: user.Username,
		ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// newTestRouter builds a gin engine with stub templates so HTML renders work.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	tmpl := template.New("")
	for _, name := range []string{"login.html", "register.html", "error.html"} {
		template.Must(tmpl.New(name).Parse(name))
	}
	r.SetHTMLTemplate(tmpl)
	return r
}

// postForm performs an urlencoded POST against the router.
func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookie finds the session cookie in the response, if any.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	loginForm := url.Values{"username": {"johndoe"}, "password": {"secret123"}}

	t.Run("success sets the cookie and redirects home", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, username, password string) (*entity.User, error) {
				return &entity.User{ID: 7, Username: username}, nil
			},
			StartSessionFunc: func(ctx context.Context, user *entity.User, client usecase.ClientInfo) (*entity.Session, error) {
				return &entity.Session{ID: "issued-token", UserID: user.ID, Username: user.Username}, nil
			},
		}
		r := newTestRouter(t)
		h := NewAuthHandler(mockUC, CookieConfig{})
		r.POST("/login", h.Login)

		w := postForm(r, "/login", loginForm)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookie := sessionCookie(w)
		require.NotNil(t, cookie, "session cookie must be set")
		assert.Equal(t, "issued-token", cookie.Value)
		assert.True(t, cookie.HttpOnly, "cookie must be HttpOnly")
		assert.Equal(t, sessionCookieMaxAge, cookie.MaxAge, "cookie expiry must match the session TTL")
	})

	t.Run("bad credentials redirect back without a cookie", func(t *testing.T) {
		r := newTestRouter(t)
		h := NewAuthHandler(&mockAuthUsecase{}, CookieConfig{})
		r.POST("/login", h.Login)

		w := postForm(r, "/login", loginForm)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Nil(t, sessionCookie(w), "no session cookie may be issued on failure")
	})

	t.Run("missing form fields redirect back", func(t *testing.T) {
		r := newTestRouter(t)
		h := NewAuthHandler(&mockAuthUsecase{}, CookieConfig{})
		r.POST("/login", h.Login)

		w := postForm(r, "/login", url.Values{"username": {"johndoe"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("session save failure is a 500, not a silent success", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, username, password string) (*entity.User, error) {
				return &entity.User{ID: 7, Username: username}, nil
			},
			StartSessionFunc: func(ctx context.Context, user *entity.User, client usecase.ClientInfo) (*entity.Session, error) {
				return nil, errors.New("session table unavailable")
			},
		}
		r := newTestRouter(t)
		h := NewAuthHandler(mockUC, CookieConfig{})
		r.POST("/login", h.Login)

		w := postForm(r, "/login", loginForm)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Nil(t, sessionCookie(w), "no session cookie may be issued when the save failed")
	})
}

func TestAuthHandler_Register(t *testing.T) {
	registerForm := url.Values{
		"username":  {"johndoe"},
		"firstname": {"John"},
		"lastname":  {"Doe"},
		"email":     {"john@example.com"},
		"password":  {"admin12345"},
	}

	t.Run("success establishes a session like login does", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, error) {
				return &entity.User{ID: 8, Username: username}, nil
			},
		}
		r := newTestRouter(t)
		h := NewAuthHandler(mockUC, CookieConfig{})
		r.POST("/register", h.Register)

		w := postForm(r, "/register", registerForm)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.NotNil(t, sessionCookie(w), "registration must establish a session")
	})

	t.Run("duplicate username redirects back without detail", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, error) {
				return nil, usecase.ErrUsernameAlreadyExists
			},
		}
		r := newTestRouter(t)
		h := NewAuthHandler(mockUC, CookieConfig{})
		r.POST("/register", h.Register)

		w := postForm(r, "/register", registerForm)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/register", w.Header().Get("Location"))
		assert.Nil(t, sessionCookie(w))
	})

	t.Run("duplicate email is indistinguishable from duplicate username", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
		}
		r := newTestRouter(t)
		h := NewAuthHandler(mockUC, CookieConfig{})
		r.POST("/register", h.Register)

		w := postForm(r, "/register", registerForm)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/register", w.Header().Get("Location"))
	})

	t.Run("invalid email rejected by binding", func(t *testing.T) {
		form := url.Values{}
		for k, v := range registerForm {
			form[k] = v
		}
		form.Set("email", "not-an-email")

		r := newTestRouter(t)
		h := NewAuthHandler(&mockAuthUsecase{}, CookieConfig{})
		r.POST("/register", h.Register)

		w := postForm(r, "/register", form)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/register", w.Header().Get("Location"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes the session and clears the cookie", func(t *testing.T) {
		revoked := ""
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, sessionID string) error {
				revoked = sessionID
				return nil
			},
		}
		r := newTestRouter(t)
		h := NewAuthHandler(mockUC, CookieConfig{})
		r.POST("/logout", func(c *gin.Context) {
			// Stand in for the gate, which stores the session id.
			c.Set(middleware.ContextSessionID, "current-token")
			h.Logout(c)
		})

		w := postForm(r, "/logout", url.Values{})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Equal(t, "current-token", revoked, "the current session must be revoked")

		cookie := sessionCookie(w)
		require.NotNil(t, cookie, "the cookie must be rewritten")
		assert.Empty(t, cookie.Value, "cleared cookie must carry no token")
		assert.Negative(t, cookie.MaxAge, "cleared cookie must expire immediately")
	})
}

func TestAuthHandler_ShowForms(t *testing.T) {
	r := newTestRouter(t)
	h := NewAuthHandler(&mockAuthUsecase{}, CookieConfig{})
	r.GET("/login", h.ShowLogin)
	r.GET("/register", h.ShowRegister)

	for _, path := range []string{"/login", "/register"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "GET %s should render", path)
	}
}
