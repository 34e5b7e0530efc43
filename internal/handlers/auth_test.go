package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printshop/internal/auth"
	"printshop/internal/service"
	"printshop/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T, sessionTTL time.Duration) *gin.Engine {
	t.Helper()
	hash, err := auth.HashPassword("admin")
	require.NoError(t, err)
	st, err := store.NewMemStore(hash)
	require.NoError(t, err)
	sessions := auth.NewMemoryStore(time.Hour)
	t.Cleanup(sessions.Close)

	h := NewAuthHandler(sessions, service.NewUserService(st), sessionTTL)
	r := gin.New()
	r.POST("/login", h.Login)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func postLogin(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"username": "admin", "password": "admin"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w
}

func TestLoginCookieMaxAgeMatchesSessionTTL(t *testing.T) {
	r := newAuthRouter(t, time.Hour)
	c := sessionCookie(t, postLogin(t, r))
	assert.Equal(t, 3600, c.MaxAge, "cookie must expire with the session")
}

func TestLoginCookieMaxAgeDefault(t *testing.T) {
	r := newAuthRouter(t, 0)
	c := sessionCookie(t, postLogin(t, r))
	assert.Equal(t, 24*60*60, c.MaxAge)
}
