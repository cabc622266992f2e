package adapter

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loldruger/epistulus-deploy/models"
)

func testAppKeyPEM(t *testing.T) ([]byte, *rsa.PrivateKey) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})
	return pemBytes, priv
}

func TestInstallationToken_ExchangesSignedJWT(t *testing.T) {
	keyPEM, priv := testAppKeyPEM(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/app/installations/42/access_tokens", r.URL.Path)

		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		token, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
			return &priv.PublicKey, nil
		}, jwt.WithValidMethods([]string{"RS256"}))
		require.NoError(t, err)

		iss, err := token.Claims.GetIssuer()
		require.NoError(t, err)
		assert.Equal(t, "12345", iss)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.InstallationTokenResponse{
			Token:     "ghs_installation_token",
			ExpiresAt: time.Now().Add(time.Hour).Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	token, err := InstallationToken(context.Background(), srv.URL, AppCredentials{
		AppID:          "12345",
		InstallationID: "42",
		PrivateKeyPEM:  keyPEM,
	}, 5*time.Second)

	require.NoError(t, err)
	assert.Equal(t, "ghs_installation_token", token)
}

func TestInstallationToken_BadPrivateKey(t *testing.T) {
	_, err := InstallationToken(context.Background(), "http://unused", AppCredentials{
		AppID:          "12345",
		InstallationID: "42",
		PrivateKeyPEM:  []byte("not a pem key"),
	}, time.Second)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse app private key")
}

func TestInstallationToken_RejectedCredential(t *testing.T) {
	keyPEM, _ := testAppKeyPEM(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := InstallationToken(context.Background(), srv.URL, AppCredentials{
		AppID:          "12345",
		InstallationID: "42",
		PrivateKeyPEM:  keyPEM,
	}, time.Second)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
}
