// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loldruger/epistulus-deploy/internal/logger"
	"github.com/loldruger/epistulus-deploy/models"
)

var testRepo = models.Repository{Owner: "loldruger", Name: "discord-epistulus"}

// secretsAPIStub is a minimal in-memory rendition of the repository secrets
// endpoints: a public key, an upsert store tracking last-written values, a
// listing, and deletion.
type secretsAPIStub struct {
	mu      sync.Mutex
	keyID   string
	keyB64  string
	stored  map[string]string // name -> last encrypted_value
	putCode func(name string) int
}

func newSecretsAPIStub(keyID, keyB64 string) *secretsAPIStub {
	return &secretsAPIStub{
		keyID:  keyID,
		keyB64: keyB64,
		stored: map[string]string{},
	}
}

func (s *secretsAPIStub) router(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()

	r.Get("/repos/{owner}/{repo}/actions/secrets/public-key", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, testRepo.Owner, chi.URLParam(req, "owner"))
		assert.Equal(t, testRepo.Name, chi.URLParam(req, "repo"))
		_ = json.NewEncoder(w).Encode(models.RepositoryPublicKey{Key: s.keyB64, KeyID: s.keyID})
	})

	r.Put("/repos/{owner}/{repo}/actions/secrets/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")

		var body models.PutSecretRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))

		if s.putCode != nil {
			if code := s.putCode(name); code != 0 {
				w.WriteHeader(code)
				return
			}
		}
		if body.KeyID != s.keyID {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}

		s.mu.Lock()
		_, existed := s.stored[name]
		s.stored[name] = body.EncryptedValue
		s.mu.Unlock()

		if existed {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	r.Get("/repos/{owner}/{repo}/actions/secrets", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		resp := models.SecretListResponse{TotalCount: len(s.stored)}
		for name := range s.stored {
			resp.Secrets = append(resp.Secrets, models.SecretListItem{Name: name})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	r.Delete("/repos/{owner}/{repo}/actions/secrets/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.stored[name]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(s.stored, name)
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (s *secretsAPIStub) lastValue(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.stored[name]
	return v, ok
}

func newTestAdapter(t *testing.T, serverURL string) GitHubAdapter {
	t.Helper()
	return NewGitHubAdapter(HTTPClientConfig{
		BaseURL: serverURL,
		Token:   "ghp_testtoken",
	}, logger.Nop())
}

// TestConfiguredTimeoutIsEnforced verifies the caller-supplied timeout bounds
// the request instead of the built-in default.
func TestConfiguredTimeoutIsEnforced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewGitHubAdapter(HTTPClientConfig{
		BaseURL: srv.URL,
		Token:   "ghp_testtoken",
		Timeout: 20 * time.Millisecond,
	}, logger.Nop())

	_, err := a.GetPublicKey(context.Background(), testRepo)
	require.Error(t, err)
}

// ── GetPublicKey ─────────────────────────────────────────────────────────────

func TestGetPublicKey_Success(t *testing.T) {
	stub := newSecretsAPIStub("k1", "dGVzdC1rZXk=")
	srv := httptest.NewServer(stub.router(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	key, err := a.GetPublicKey(context.Background(), testRepo)

	require.NoError(t, err)
	assert.Equal(t, "k1", key.KeyID)
	assert.Equal(t, "dGVzdC1rZXk=", key.Key)
}

func TestGetPublicKey_SendsBearerAndAPIVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ghp_testtoken", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, apiVersion, r.Header.Get("X-GitHub-Api-Version"))
		_ = json.NewEncoder(w).Encode(models.RepositoryPublicKey{Key: "a2V5", KeyID: "k1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPublicKey(context.Background(), testRepo)
	require.NoError(t, err)
}

func TestGetPublicKey_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrAuthentication},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrAuthentication},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrTransient},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetPublicKey(context.Background(), testRepo)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetPublicKey_NetworkFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPublicKey(context.Background(), testRepo)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
}

func TestGetPublicKey_RejectsIncompleteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"key": ""}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPublicKey(context.Background(), testRepo)
	require.Error(t, err)
}

// ── PutSecret ────────────────────────────────────────────────────────────────

func TestPutSecret_CreateThenUpdate(t *testing.T) {
	stub := newSecretsAPIStub("k1", "a2V5")
	srv := httptest.NewServer(stub.router(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	ok, err := a.PutSecret(context.Background(), testRepo, "TOKEN", "ciphertext-one", "k1")
	require.NoError(t, err)
	assert.True(t, ok, "201 created must report success")

	ok, err = a.PutSecret(context.Background(), testRepo, "TOKEN", "ciphertext-two", "k1")
	require.NoError(t, err)
	assert.True(t, ok, "204 updated must report success")

	// Upsert semantics: only the second value survives.
	v, found := stub.lastValue("TOKEN")
	require.True(t, found)
	assert.Equal(t, "ciphertext-two", v)
}

func TestPutSecret_StaleKeyIDReportsFalseWithoutError(t *testing.T) {
	stub := newSecretsAPIStub("k2", "a2V5")
	srv := httptest.NewServer(stub.router(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ok, err := a.PutSecret(context.Background(), testRepo, "TOKEN", "ct", "k1-rotated-away")

	require.NoError(t, err, "non-2xx must not surface as an error")
	assert.False(t, ok)
}

func TestPutSecret_NetworkFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newTestAdapter(t, srv.URL)
	ok, err := a.PutSecret(context.Background(), testRepo, "TOKEN", "ct", "k1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
	assert.False(t, ok)
}

// ── ListSecrets / DeleteSecret ───────────────────────────────────────────────

func TestListSecrets_ReturnsStoredNames(t *testing.T) {
	stub := newSecretsAPIStub("k1", "a2V5")
	stub.stored["GCP_PROJECT_ID"] = "ct1"
	stub.stored["SERVICE_NAME"] = "ct2"
	srv := httptest.NewServer(stub.router(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.ListSecrets(context.Background(), testRepo)

	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.ElementsMatch(t, []string{"GCP_PROJECT_ID", "SERVICE_NAME"}, names)
}

func TestDeleteSecret_Success(t *testing.T) {
	stub := newSecretsAPIStub("k1", "a2V5")
	stub.stored["OLD_SECRET"] = "ct"
	srv := httptest.NewServer(stub.router(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteSecret(context.Background(), testRepo, "OLD_SECRET"))

	_, found := stub.lastValue("OLD_SECRET")
	assert.False(t, found)
}

func TestDeleteSecret_AbsentIsNotFound(t *testing.T) {
	stub := newSecretsAPIStub("k1", "a2V5")
	srv := httptest.NewServer(stub.router(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteSecret(context.Background(), testRepo, "NEVER_EXISTED")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
