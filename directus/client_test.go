// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package directus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antoniszymanski/directus-typegen-go/typegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient(t *testing.T) {
	for _, host := range []string{"http://localhost:8055", "https://cms.example.com/base"} {
		_, err := NewClient(host)
		assert.NoError(t, err, host)
	}
	for _, host := range []string{"", "localhost:8055", "ftp://cms.example.com", "http://"} {
		_, err := NewClient(host)
		assert.ErrorAs(t, err, new(typegen.ValidationError), host)
	}
}

func TestClient_Login(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"email":    "admin@example.com",
			"password": "secret",
			"mode":     "json",
		}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"access_token": "token", "expires": 900000, "refresh_token": "refresh"}}`))
	})

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	token, err := c.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestClient_LoginErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantErr    string
	}{
		{
			name:       "unauthorized",
			status:     http.StatusUnauthorized,
			body:       `{"errors": [{"message": "Invalid user credentials.", "extensions": {"code": "INVALID_CREDENTIALS"}}]}`,
			wantStatus: http.StatusUnauthorized,
			wantErr:    "unexpected status 401 Unauthorized: Invalid user credentials.",
		},
		{
			name:       "server error without body",
			status:     http.StatusInternalServerError,
			wantStatus: http.StatusInternalServerError,
			wantErr:    "unexpected status 500 Internal Server Error",
		},
		{
			name:       "malformed json",
			status:     http.StatusOK,
			body:       `<html></html>`,
			wantStatus: http.StatusOK,
			wantErr:    "malformed JSON response",
		},
		{
			name:       "missing token",
			status:     http.StatusOK,
			body:       `{"data": {}}`,
			wantStatus: 0,
		},
		{
			name:       "token is not a string",
			status:     http.StatusOK,
			body:       `{"data": {"access_token": 42}}`,
			wantStatus: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			c, err := NewClient(srv.URL)
			require.NoError(t, err)

			_, err = c.Login(context.Background(), "a@b.c", "x")
			var terr TransportError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, "login", terr.Op)
			assert.Equal(t, srv.URL+"/auth/login", terr.URL)
			assert.Equal(t, tt.wantStatus, terr.StatusCode)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_FetchSpec(t *testing.T) {
	const spec = `{"openapi": "3.0.1", "components": {"schemas": {}}}`
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/base/server/specs/oas", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(spec))
	})

	c, err := NewClient(srv.URL + "/base")
	require.NoError(t, err)

	data, err := c.FetchSpec(context.Background(), "token")
	require.NoError(t, err)
	assert.JSONEq(t, spec, string(data))

	_, err = c.FetchSpec(context.Background(), "wrong")
	var terr TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "fetch spec", terr.Op)
	assert.Equal(t, http.StatusForbidden, terr.StatusCode)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)
	_, err = c.Login(context.Background(), "a@b.c", "x")
	var terr TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.StatusCode)
}

func TestTransportError(t *testing.T) {
	err := TransportError{Op: "login", URL: "http://x/auth/login", StatusCode: 401}
	assert.Equal(t, "login http://x/auth/login: status 401", err.Error())
}
