// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for the GitHub REST API.
//
// The primary abstraction is [GitHubAdapter], which decouples the secret
// publishing service from the HTTP transport. The package ships a resty
// based implementation ([NewGitHubAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrAuthentication] for
// 401/403, [ErrTransient] for 5xx and network failures).
package adapter

import (
	"context"

	"github.com/loldruger/epistulus-deploy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_adapter_mock.go -package=mock

// GitHubAdapter defines the repository-secrets operations of the GitHub
// REST API. Implementations are responsible for serialisation, bearer-token
// header management, and mapping transport-level failures to the sentinel
// errors defined in this package.
type GitHubAdapter interface {
	// GetPublicKey fetches the repository's current secrets public key.
	// The key must be re-fetched before every batch: the platform rotates
	// keys, and uploads must carry the key_id matching the key used to
	// encrypt. Fails with ErrAuthentication (401/403), ErrNotFound (404),
	// or ErrTransient (5xx, network failure, timeout).
	GetPublicKey(ctx context.Context, repo models.Repository) (models.RepositoryPublicKey, error)

	// PutSecret upserts one repository secret. encryptedB64 is the base64
	// ciphertext sealed under the key identified by keyID; plaintext never
	// reaches this layer. Returns true iff the platform answered 201
	// (created) or 204 (updated). Any other status — including 422 when
	// keyID is no longer current — yields false with a nil error; the
	// caller decides whether to retry with a freshly fetched key. A
	// non-nil error is returned only for request-level failures.
	PutSecret(ctx context.Context, repo models.Repository, name, encryptedB64, keyID string) (bool, error)

	// ListSecrets returns metadata for every secret stored on the
	// repository. Values are write-only on the platform and are never
	// returned.
	ListSecrets(ctx context.Context, repo models.Repository) ([]models.SecretListItem, error)

	// DeleteSecret removes the named secret. Deleting an absent secret
	// fails with ErrNotFound.
	DeleteSecret(ctx context.Context, repo models.Repository, name string) error
}
