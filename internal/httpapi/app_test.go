package httpapi_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"golang.org/x/crypto/bcrypt"

	"authkit/auth"
	"authkit/internal/httpapi"
	"authkit/internal/store"
)

const testMessage = "The super secret code is 432423254"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	s := store.NewBunStore(db, store.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, s.Init(context.Background()))

	provider := store.NewProvider(s)
	tokens := auth.NewTokenService([]byte("test-secret"), 0, nil)
	auther := auth.NewAuthenticator(provider, tokens)

	return httpapi.New(httpapi.Config{ProtectedMessage: testMessage}, s, auther, nil)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	out := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &out), "body: %s", data)
	return out
}

func signup(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := postJSON(t, app, "/signup", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestSignupReturnsToken(t *testing.T) {
	app := newTestApp(t)
	token := signup(t, app, "a@b.com", "pw123")
	assert.NotEmpty(t, token)
}

func TestSignupMissingFields(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "Missing password", body: map[string]string{"email": "a@b.com"}},
		{name: "Missing email", body: map[string]string{"password": "pw123"}},
		{name: "Empty body", body: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/signup", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, "You must provide email and password", body["error"])
		})
	}
}

func TestSignupDuplicateEmailNormalized(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "A@x.com", "pw123")

	resp := postJSON(t, app, "/signup", map[string]string{"email": "a@x.com", "password": "other"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Email is in use", body["error"])
}

func TestSignupThenSigninRoundTrip(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "a@b.com", "pw123")

	resp := postJSON(t, app, "/signin", map[string]string{"email": "a@b.com", "password": "pw123"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
}

func TestSigninWrongPassword(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "a@b.com", "pw123")

	resp := postJSON(t, app, "/signin", map[string]string{"email": "a@b.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Empty(t, body["token"])
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestSigninUnknownEmailSameResponseAsWrongPassword(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "a@b.com", "pw123")

	wrongPw := postJSON(t, app, "/signin", map[string]string{"email": "a@b.com", "password": "wrong"})
	unknown := postJSON(t, app, "/signin", map[string]string{"email": "nobody@b.com", "password": "pw123"})

	assert.Equal(t, wrongPw.StatusCode, unknown.StatusCode)
	assert.Equal(t, decodeBody(t, wrongPw), decodeBody(t, unknown))
}

func TestProtectedRouteWithToken(t *testing.T) {
	app := newTestApp(t)
	token := signup(t, app, "a@b.com", "pw123")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("authorization", token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testMessage, body["message"])
}

func TestProtectedRouteWithoutHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteTamperedToken(t *testing.T) {
	app := newTestApp(t)
	token := signup(t, app, "a@b.com", "pw123")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("authorization", token+"tampered")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteDeletedSubject(t *testing.T) {
	// A well formed token whose subject was never stored must be rejected
	app := newTestApp(t)

	tokens := auth.NewTokenService([]byte("test-secret"), 0, nil)
	ghost, err := tokens.SignClaims(auth.NewClaims(ghostIdentity{}, time.Now(), 0))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("authorization", ghost)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnmatchedRoute(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type ghostIdentity struct{}

func (ghostIdentity) ID() string    { return "11111111-2222-7333-8444-555555555555" }
func (ghostIdentity) Email() string { return "ghost@b.com" }
