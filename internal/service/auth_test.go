package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlore/codex/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	var gotPath string
	var gotBody model.Credentials
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"jwt":"tok-abc","user":{"id":5,"username":"mira","email":"mira@example.com","provider":"local","confirmed":true,"blocked":false}}`))
	})

	svc := NewAuthService(client)
	resp, err := svc.Login(context.Background(), model.Credentials{Identifier: "mira", Password: "hunter22"})
	require.NoError(t, err)

	assert.Equal(t, "/api/auth/local", gotPath)
	assert.Equal(t, "mira", gotBody.Identifier)
	assert.Equal(t, "tok-abc", resp.JWT)
	assert.Equal(t, 5, resp.User.ID)
	assert.True(t, resp.User.Confirmed)
}

func TestAuthService_Login_FailurePropagates(t *testing.T) {
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"status":400,"message":"Invalid identifier or password"}}`))
	})

	svc := NewAuthService(client)
	_, err := svc.Login(context.Background(), model.Credentials{Identifier: "mira", Password: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging in")
	assert.Contains(t, err.Error(), "Invalid identifier or password")
}

func TestAuthService_Register(t *testing.T) {
	var gotPath string
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"jwt":"tok-new","user":{"id":6,"username":"talan","email":"talan@example.com"}}`))
	})

	svc := NewAuthService(client)
	resp, err := svc.Register(context.Background(), model.Registration{
		Username: "talan", Email: "talan@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/auth/local/register", gotPath)
	assert.Equal(t, "tok-new", resp.JWT)
}

func TestAuthService_Me_SendsExplicitBearer(t *testing.T) {
	var auth string
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":5,"username":"mira","email":"mira@example.com"}`))
	})

	svc := NewAuthService(client)
	user, err := svc.Me(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", auth)
	assert.Equal(t, "mira", user.Username)
}

func TestAuthService_Me_RequiresToken(t *testing.T) {
	called := false
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	svc := NewAuthService(client)
	_, err := svc.Me(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, called)
}
