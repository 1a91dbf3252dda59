// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pii-keeper/internal/utils"
	"github.com/MKhiriev/go-pii-keeper/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *httpServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{Address: srv.URL})
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://pii.example.com/ ", want: "https://pii.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_StoresToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(traceIDHeader))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ada@example.com", creds.Email)

		w.Header().Set("Authorization", "Bearer signed-token")
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, a.Register(context.Background(), models.Credentials{Email: "ada@example.com", Password: "pw"}))
	assert.Equal(t, "signed-token", a.Token())
}

func TestLogin_MapsServerError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "invalid email or password", http.StatusUnauthorized)
	})

	err := a.Login(context.Background(), models.Credentials{Email: "ada@example.com", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Error(t, a.Login(context.Background(), models.Credentials{Email: "ada@example.com", Password: "pw"}))
}

func TestAuthedCalls_RequireToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a token")
	})
	ctx := context.Background()

	_, err := a.Profile(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = a.ListContacts(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, a.Logout(ctx), ErrNoToken)
}

func TestProfile_SendsBearerToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		email := "ada@example.com"
		utils.WriteJSON(w, models.Profile{Email: &email}, http.StatusOK)
	})
	a.SetToken(" tok ")

	profile, err := a.Profile(context.Background())

	require.NoError(t, err)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "ada@example.com", *profile.Email)
	assert.Nil(t, profile.Phone)
}

func TestSearchContacts(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacts/search", r.URL.Path)
		assert.Equal(t, "sales@acme.test", r.URL.Query().Get("email"))
		utils.WriteJSON(w, []models.ContactView{{ID: 4}}, http.StatusOK)
	})
	a.SetToken("tok")

	views, err := a.SearchContacts(context.Background(), "sales@acme.test")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(4), views[0].ID)
}

func TestSearchContacts_NotImplemented(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "search by email is not available", http.StatusNotImplemented)
	})
	a.SetToken("tok")

	_, err := a.SearchContacts(context.Background(), "sales@acme.test")

	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestLogout_ClearsToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	a.SetToken("tok")

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

func TestEmailExists(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		utils.WriteJSON(w, models.EmailExists{Exists: true}, http.StatusOK)
	})

	exists, err := a.EmailExists(context.Background(), "ada@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	a.SetToken("tok")

	err := a.ChangePassword(context.Background(), models.PasswordChange{OldPassword: "a", NewPassword: "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
