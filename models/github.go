package models

// RepositoryPublicKey is the encryption key GitHub currently advertises for
// a repository's Actions secrets. It must be re-fetched before every batch:
// the platform rotates keys, and an upload is only accepted while its KeyID
// is still current.
type RepositoryPublicKey struct {
	// Key is the base64-encoded public key material (PEM or raw DER).
	Key string `json:"key"`

	// KeyID is the opaque identifier that correlates an upload with the
	// key used to encrypt it.
	KeyID string `json:"key_id"`
}

// PutSecretRequest is the wire body of the secret upsert call. The secret
// value is already sealed; plaintext never appears in this struct.
type PutSecretRequest struct {
	EncryptedValue string `json:"encrypted_value"`
	KeyID          string `json:"key_id"`
}

// SecretListItem describes one stored repository secret. The platform is
// write-only for values, so only metadata is returned.
type SecretListItem struct {
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SecretListResponse is the wire form of the secrets listing endpoint.
type SecretListResponse struct {
	TotalCount int              `json:"total_count"`
	Secrets    []SecretListItem `json:"secrets"`
}

// InstallationTokenResponse is the wire form of the GitHub App
// installation-token exchange.
type InstallationTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
