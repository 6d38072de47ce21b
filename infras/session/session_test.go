package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcelreavey/todo-li-app/config"
	"github.com/jmcelreavey/todo-li-app/infras/session"
)

func newService(t *testing.T) session.Sessions {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "todo-li-app"
	cfg.Server.Env = "development"
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "_session"
	cfg.Session.ExpireMin = 60

	return session.New(cfg)
}

func requestWithCookies(t *testing.T, recorder *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, "/todos/incomplete", nil)
	for _, cookie := range recorder.Result().Cookies() {
		request.AddCookie(cookie)
	}

	return request
}

func TestSessions_RoundTrip(t *testing.T) {
	svc := newService(t)

	state := svc.Issue(42)
	assert.True(t, state.Dirty())

	recorder := httptest.NewRecorder()
	require.NoError(t, svc.Write(recorder, state))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, "/", cookies[0].Path)
	assert.False(t, cookies[0].Secure)

	got, err := svc.Read(requestWithCookies(t, recorder))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.False(t, got.Dirty())
}

func TestSessions_SecureOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "_session"
	cfg.Session.ExpireMin = 60

	svc := session.New(cfg)

	recorder := httptest.NewRecorder()
	require.NoError(t, svc.Write(recorder, svc.Issue(1)))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestSessions_ReadMissingCookie(t *testing.T) {
	svc := newService(t)

	request := httptest.NewRequest(http.MethodGet, "/todos/incomplete", nil)

	_, err := svc.Read(request)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestSessions_ReadTamperedCookie(t *testing.T) {
	svc := newService(t)

	recorder := httptest.NewRecorder()
	require.NoError(t, svc.Write(recorder, svc.Issue(42)))

	cookie := recorder.Result().Cookies()[0]
	request := httptest.NewRequest(http.MethodGet, "/todos/incomplete", nil)
	request.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value + "x"})

	_, err := svc.Read(request)
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

func TestSessions_ReadForeignSecret(t *testing.T) {
	svc := newService(t)

	otherCfg := &config.Config{}
	otherCfg.Server.Env = "development"
	otherCfg.Session.Secret = "another-secret"
	otherCfg.Session.CookieName = "_session"
	otherCfg.Session.ExpireMin = 60
	other := session.New(otherCfg)

	recorder := httptest.NewRecorder()
	require.NoError(t, other.Write(recorder, other.Issue(42)))

	_, err := svc.Read(requestWithCookies(t, recorder))
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

func TestState_FlashConsumedOnce(t *testing.T) {
	svc := newService(t)

	state := svc.Issue(42)
	state.Flash("Created Buy milk.")

	recorder := httptest.NewRecorder()
	require.NoError(t, svc.Write(recorder, state))

	got, err := svc.Read(requestWithCookies(t, recorder))
	require.NoError(t, err)

	assert.Equal(t, "Created Buy milk.", got.ConsumeFlash())
	assert.True(t, got.Dirty())
	assert.Empty(t, got.ConsumeFlash())

	// The rewritten cookie no longer carries the message.
	second := httptest.NewRecorder()
	require.NoError(t, svc.Write(second, got))

	final, err := svc.Read(requestWithCookies(t, second))
	require.NoError(t, err)
	assert.Empty(t, final.ConsumeFlash())
}

func TestSessions_Clear(t *testing.T) {
	svc := newService(t)

	recorder := httptest.NewRecorder()
	svc.Clear(recorder)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
