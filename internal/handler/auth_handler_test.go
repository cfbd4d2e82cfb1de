package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/handler"
	"sidehustle/internal/model"
)

func authCookie(t *testing.T, header http.Header) *http.Cookie {
	t.Helper()
	for _, c := range (&http.Response{Header: header}).Cookies() {
		if c.Name == handler.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in %v", handler.CookieName, header)
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets the token cookie", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "admin@example.com", "pw").Return("signed.jwt.token", admin, nil)
		audit := &recordingAudit{}
		h := handler.NewAuthHandler(svc, audit, time.Hour, true)

		rec, env := serve(t, h.Login, call{method: http.MethodPost, target: "/api/auth/login", body: `{"email":" admin@example.com ","password":"pw"}`})
		require.Equal(t, http.StatusOK, rec.Code)

		var data handler.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "signed.jwt.token", data.Token)
		assert.Equal(t, *admin, data.User)

		cookie := authCookie(t, rec.Header())
		assert.Equal(t, "signed.jwt.token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, 3600, cookie.MaxAge)
		assert.Equal(t, "/", cookie.Path)

		require.Len(t, audit.entries, 1)
		assert.Equal(t, model.AuditLogin, audit.entries[0].Action)
	})

	t.Run("missing password", func(t *testing.T) {
		svc := new(MockAuthService)
		h := handler.NewAuthHandler(svc, &recordingAudit{}, time.Hour, false)

		rec, env := serve(t, h.Login, call{method: http.MethodPost, target: "/api/auth/login", body: `{"email":"a@b.c"}`})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "a@b.c", "wrong").Return("", nil, apperrors.ErrInvalidCredentials)
		h := handler.NewAuthHandler(svc, &recordingAudit{}, time.Hour, false)

		rec, env := serve(t, h.Login, call{method: http.MethodPost, target: "/api/auth/login", body: `{"email":"a@b.c","password":"wrong"}`})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid email or password", env.Message)
		assert.Empty(t, rec.Header().Values("Set-Cookie"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes the bearer token and clears the cookie", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Logout", mock.Anything, "tok").Return(editor, nil)
		audit := &recordingAudit{}
		h := handler.NewAuthHandler(svc, audit, time.Hour, false)

		rec, env := serve(t, h.Logout, call{
			method: http.MethodPost,
			target: "/api/auth/logout",
			header: map[string]string{"Authorization": "Bearer tok"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)

		cookie := authCookie(t, rec.Header())
		assert.Empty(t, cookie.Value)
		assert.Less(t, cookie.MaxAge, 0)
		require.Len(t, audit.entries, 1)
		assert.Equal(t, model.AuditLogout, audit.entries[0].Action)
	})

	t.Run("falls back to the cookie", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Logout", mock.Anything, "from-cookie").Return(editor, nil)
		h := handler.NewAuthHandler(svc, &recordingAudit{}, time.Hour, false)

		rec, _ := serve(t, h.Logout, call{
			method: http.MethodPost,
			target: "/api/auth/logout",
			header: map[string]string{"Cookie": handler.CookieName + "=from-cookie"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("without a token still succeeds", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Logout", mock.Anything, "").Return(nil, nil)
		audit := &recordingAudit{}
		h := handler.NewAuthHandler(svc, audit, time.Hour, false)

		rec, _ := serve(t, h.Logout, call{method: http.MethodPost, target: "/api/auth/logout"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, audit.entries)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	h := handler.NewAuthHandler(new(MockAuthService), &recordingAudit{}, time.Hour, false)

	rec, env := serve(t, h.Me, call{method: http.MethodGet, target: "/api/auth/me", principal: editor})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u-1","email":"editor@example.com","role":"editor"}`, string(env.Data))

	rec, _ = serve(t, h.Me, call{method: http.MethodGet, target: "/api/auth/me"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
