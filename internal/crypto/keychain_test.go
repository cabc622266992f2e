// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustECPublicKeyPEM(t *testing.T) []byte {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func TestKeyChain_SealOpen_RoundTrip(t *testing.T) {
	kc := NewKeyChain()

	sealed, err := kc.SealToken("ghp_exampletoken123", "correct horse battery staple")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "ghp_")

	token, err := kc.OpenToken(sealed, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, "ghp_exampletoken123", token)
}

func TestKeyChain_Seal_IsRandomized(t *testing.T) {
	kc := NewKeyChain()

	first, err := kc.SealToken("token", "pass")
	require.NoError(t, err)
	second, err := kc.SealToken("token", "pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestKeyChain_Open_WrongPassphrase(t *testing.T) {
	kc := NewKeyChain()

	sealed, err := kc.SealToken("token", "right")
	require.NoError(t, err)

	_, err = kc.OpenToken(sealed, "wrong")
	require.Error(t, err)
}

func TestKeyChain_Open_CorruptedBlob(t *testing.T) {
	kc := NewKeyChain()

	tests := []struct {
		name   string
		sealed string
	}{
		{name: "not base64", sealed: "***"},
		{name: "too short", sealed: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "salt only", sealed: base64.StdEncoding.EncodeToString(make([]byte, 16))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kc.OpenToken(tt.sealed, "pass")
			require.Error(t, err)
		})
	}
}
