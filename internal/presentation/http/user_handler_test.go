package http

import (
	"net/http"
	"testing"
	"time"

	appaccount "github.com/aromahub/perfumeshop/internal/application/account"
	"github.com/aromahub/perfumeshop/internal/infrastructure/memory"
	"github.com/aromahub/perfumeshop/internal/infrastructure/password"
	"github.com/aromahub/perfumeshop/internal/infrastructure/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc := appaccount.NewService(
		memory.NewAccountRepository(),
		password.NewBcryptHasher(bcrypt.MinCost),
		token.NewJWTIssuer("test-secret", time.Hour),
	)
	r := gin.New()
	NewUserHandler(svc).Register(r)
	return r
}

func registerPayload() map[string]any {
	return map[string]any{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter2",
	}
}

func TestUserRegister(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	require.Equal(t, "Registered successfully!", body["message"])
	require.NotEmpty(t, body["token"])
	require.Equal(t, 3600.0, body["expiresIn"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ada@example.com", user["email"])
	require.Equal(t, "Ada", user["name"])
	require.NotEmpty(t, user["id"])
	require.NotContains(t, user, "password", "hash must never serialize")
}

func TestUserRegisterMissingFields(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/register", map[string]any{"email": "ada@example.com"})
	requireStatus(t, w, http.StatusBadRequest)
	require.JSONEq(t, `{"message":"All fields required"}`, w.Body.String())
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusCreated)

	w = perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusBadRequest)
	require.JSONEq(t, `{"message":"Email already registered"}`, w.Body.String())
}

func TestUserLogin(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusCreated)

	w = perform(r, http.MethodPost, "/login", map[string]any{
		"email":    "ada@example.com",
		"password": "hunter2",
	})
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	require.Equal(t, "Login successful!", body["message"])
	require.NotEmpty(t, body["token"])
}

func TestUserLoginInvalidCredentialBodiesIdentical(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusCreated)

	unknownEmail := perform(r, http.MethodPost, "/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "hunter2",
	})
	wrongPassword := perform(r, http.MethodPost, "/login", map[string]any{
		"email":    "ada@example.com",
		"password": "wrong",
	})

	requireStatus(t, unknownEmail, http.StatusBadRequest)
	requireStatus(t, wrongPassword, http.StatusBadRequest)
	require.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String(),
		"unknown email and wrong password responses must be byte-identical")
	require.JSONEq(t, `{"message":"Invalid credentials"}`, wrongPassword.Body.String())
}

func TestUserLoginMissingFields(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/login", map[string]any{"email": "ada@example.com"})
	requireStatus(t, w, http.StatusBadRequest)
	require.JSONEq(t, `{"message":"Email and password required"}`, w.Body.String())
}

func TestUserMe(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusCreated)
	tok := decodeBody(t, w)["token"].(string)

	w = perform(r, http.MethodGet, "/me", nil, header{"Authorization", "Bearer " + tok})
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ada@example.com", user["email"])
	require.NotContains(t, w.Body.String(), "hunter2")
	require.NotContains(t, w.Body.String(), "password")
}

func TestUserMeAuthFailures(t *testing.T) {
	r := newUserRouter(t)

	t.Run("missing token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/me", nil)
		requireStatus(t, w, http.StatusUnauthorized)
		require.JSONEq(t, `{"message":"Token required"}`, w.Body.String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/me", nil, header{"Authorization", "Basic abc"})
		requireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/me", nil, header{"Authorization", "Bearer not.a.token"})
		requireStatus(t, w, http.StatusForbidden)
		require.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
	})
}

func TestUserRegisterLoginMeFlow(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusCreated)
	firstToken := decodeBody(t, w)["token"].(string)

	w = perform(r, http.MethodPost, "/register", registerPayload())
	requireStatus(t, w, http.StatusBadRequest)

	w = perform(r, http.MethodPost, "/login", map[string]any{
		"email":    "ada@example.com",
		"password": "hunter2",
	})
	requireStatus(t, w, http.StatusOK)
	loginToken := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, loginToken)

	for _, tok := range []string{firstToken, loginToken} {
		w = perform(r, http.MethodGet, "/me", nil, header{"Authorization", "Bearer " + tok})
		requireStatus(t, w, http.StatusOK)
		user := decodeBody(t, w)["user"].(map[string]any)
		require.Equal(t, "Ada", user["name"])
		require.NotContains(t, user, "password")
	}
}

func TestUserHealth(t *testing.T) {
	r := newUserRouter(t)

	w := perform(r, http.MethodGet, "/health", nil)
	requireStatus(t, w, http.StatusOK)
	require.JSONEq(t, `{"status":"User Service OK","dbState":1}`, w.Body.String())
}
