package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"konusturk-be/internal/bootstrap"
	"konusturk-be/internal/config"
	"konusturk-be/internal/server"
	"konusturk-be/pkg/kvstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Load()
	cfg.App.LogFilePath = t.TempDir() + "/test.log"

	container := bootstrap.NewContainer(kvstore.NewMemoryStore(), cfg)
	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	// Register.
	status, env := doJSON(t, app, http.MethodPost, "/api/auth/v1/register", map[string]string{
		"email":    "ayse@example.com",
		"password": "parola123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	// Duplicate email maps to 409 with the Turkish message verbatim.
	status, env = doJSON(t, app, http.MethodPost, "/api/auth/v1/register", map[string]string{
		"email":    "ayse@example.com",
		"password": "parola123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "bu e-posta adresi zaten kayıtlı", env.Message)

	// Registration alone does not create a session.
	status, env = doJSON(t, app, http.MethodGet, "/api/auth/v1/me", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", string(env.Data))

	// Wrong password.
	status, env = doJSON(t, app, http.MethodPost, "/api/auth/v1/login", map[string]string{
		"email":    "ayse@example.com",
		"password": "yanlış",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "e-posta veya şifre hatalı", env.Message)

	// Login.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/v1/login", map[string]string{
		"email":    "ayse@example.com",
		"password": "parola123",
	})
	require.Equal(t, http.StatusOK, status)

	// Profile routes are reachable now.
	status, env = doJSON(t, app, http.MethodPut, "/api/user/v1/profile", map[string]string{
		"first_name":    "Ayşe",
		"turkish_level": "beginner",
	})
	require.Equal(t, http.StatusOK, status)

	var profile struct {
		FirstName string `json:"first_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Ayşe", profile.FirstName)

	// Logout, then the guard kicks in.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/v1/logout", nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/user/v1/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestChatFlow(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/v1/register", map[string]string{
		"email":    "ayse@example.com",
		"password": "parola123",
	})
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/v1/login", map[string]string{
		"email":    "ayse@example.com",
		"password": "parola123",
	})
	require.Equal(t, http.StatusOK, status)

	// Start a conversation through the wizard payload.
	status, env := doJSON(t, app, http.MethodPost, "/api/chat/v1", map[string]string{
		"target_language": "turkish",
		"teacher":         "ayse",
		"learning_goal":   "daily",
		"level":           "beginner",
	})
	require.Equal(t, http.StatusOK, status)

	var session struct {
		Id       string `json:"id"`
		Title    string `json:"title"`
		Messages []struct {
			Sender string `json:"sender"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "Yeni Konuşma", session.Title)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, "ai", session.Messages[0].Sender)

	// One exchange; the title follows the user's first message.
	status, env = doJSON(t, app, http.MethodPost, "/api/chat/v1/send", map[string]string{
		"chat_session_id": session.Id,
		"text":            "Merhaba",
	})
	require.Equal(t, http.StatusOK, status)

	var exchange struct {
		Title string `json:"title"`
		Reply struct {
			Text string `json:"text"`
		} `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &exchange))
	assert.Equal(t, "Merhaba", exchange.Title)
	assert.Contains(t, exchange.Reply.Text, "Merhaba")

	// Unknown session id on the read path is a 404.
	status, _ = doJSON(t, app, http.MethodGet, "/api/chat/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Delete, then the list is empty.
	status, _ = doJSON(t, app, http.MethodDelete, "/api/chat/v1/"+session.Id, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, app, http.MethodGet, "/api/chat/v1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", string(env.Data))
}

func TestChatRoutesNeedSession(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/chat/v1", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestValidationFailure(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/auth/v1/register", map[string]string{
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}
