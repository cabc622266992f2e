// SPDX-License-Identifier: Apache-2.0

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain protects the GitHub token stored in the local build config.
// The token is sealed under a passphrase-derived key so that the config
// file never holds the credential in the clear.
type KeyChain interface {
	// SealToken encrypts token under a key derived from passphrase and
	// returns an opaque base64 blob safe to store in the config file.
	SealToken(token, passphrase string) (string, error)

	// OpenToken decrypts a blob produced by SealToken. Returns an error if
	// the passphrase is wrong or the blob is corrupted.
	OpenToken(sealedB64, passphrase string) (string, error)
}
