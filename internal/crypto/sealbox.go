// SPDX-License-Identifier: Apache-2.0

// Package crypto holds the toolkit's client-side cryptography: sealing
// secret values for the GitHub Actions secrets API (sealbox.go) and
// protecting the stored GitHub token at rest (keychain.go).
package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/loldruger/epistulus-deploy/models"
)

// ErrInvalidKey indicates the repository public key material could not be
// decoded. It points at a platform-side or transport-encoding defect and is
// never worth retrying.
var ErrInvalidKey = errors.New("invalid repository public key")

// ParseRepositoryPublicKey decodes the base64 key material advertised by the
// secrets public-key endpoint into an RSA public key. Both PEM-wrapped and
// raw DER payloads are accepted (the platform has served both encodings).
func ParseRepositoryPublicKey(key models.RepositoryPublicKey) (*rsa.PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(key.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrInvalidKey, err)
	}

	der := raw
	if block, _ := pem.Decode(raw); block != nil {
		der = block.Bytes
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		// Older keys are PKCS#1 encoded.
		if rsaKey, pkcs1Err := x509.ParsePKCS1PublicKey(der); pkcs1Err == nil {
			return rsaKey, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	rsaKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidKey)
	}
	return rsaKey, nil
}

// SealSecret encrypts plaintext under pub with RSA-OAEP (SHA-256 for both
// the hash and the MGF1 mask, no label). The scheme is randomized: two calls
// with identical inputs yield different ciphertexts. The output length
// always equals the key's modulus size, so even an empty plaintext produces
// a fixed-size ciphertext.
//
// The ciphertext is single-use and bound to the key it was sealed under; it
// must be uploaded with the matching key_id and never reused across key
// rotations.
func SealSecret(pub *rsa.PublicKey, plaintext string) ([]byte, error) {
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, []byte(plaintext), nil)
	if err != nil {
		return nil, fmt.Errorf("seal secret: %w", err)
	}
	return ciphertext, nil
}

// SealSecretB64 is SealSecret with the base64 textual encoding the upload
// endpoint expects.
func SealSecretB64(pub *rsa.PublicKey, plaintext string) (string, error) {
	ciphertext, err := SealSecret(pub, plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
