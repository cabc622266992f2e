package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/loldruger/epistulus-deploy/internal/logger"
	"github.com/loldruger/epistulus-deploy/models"
)

const apiVersion = "2022-11-28"

// HTTPClientConfig configures the resty-backed GitHub adapter.
type HTTPClientConfig struct {
	// BaseURL of the API; defaults to the public endpoint. Overridden in
	// tests to point at a mock server.
	BaseURL string

	// Token is the bearer credential (PAT or App installation token) with
	// repo scope. Held in memory only; never logged.
	Token string

	// Timeout bounds every request. Defaults to 15s.
	Timeout time.Duration
}

type githubAdapter struct {
	client *resty.Client
	log    *logger.Logger
}

// NewGitHubAdapter builds a [GitHubAdapter] over the GitHub REST API.
func NewGitHubAdapter(cfg HTTPClientConfig, log *logger.Logger) GitHubAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.github.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", apiVersion).
		SetAuthToken(cfg.Token)

	return &githubAdapter{client: cli, log: log}
}

func (g *githubAdapter) GetPublicKey(ctx context.Context, repo models.Repository) (models.RepositoryPublicKey, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"owner": repo.Owner, "repo": repo.Name}).
		Get("/repos/{owner}/{repo}/actions/secrets/public-key")
	if err != nil {
		return models.RepositoryPublicKey{}, mapTransportError("get public key", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RepositoryPublicKey{}, fmt.Errorf("get public key for %s: %w", repo.FullName(), err)
	}

	var key models.RepositoryPublicKey
	if err = json.Unmarshal(resp.Body(), &key); err != nil {
		return models.RepositoryPublicKey{}, fmt.Errorf("decode public key response: %w", err)
	}
	if key.Key == "" || key.KeyID == "" {
		return models.RepositoryPublicKey{}, fmt.Errorf("public key response missing key or key_id")
	}

	return key, nil
}

func (g *githubAdapter) PutSecret(ctx context.Context, repo models.Repository, name, encryptedB64, keyID string) (bool, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"owner": repo.Owner, "repo": repo.Name, "name": name}).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PutSecretRequest{EncryptedValue: encryptedB64, KeyID: keyID}).
		Put("/repos/{owner}/{repo}/actions/secrets/{name}")
	if err != nil {
		return false, mapTransportError("put secret "+name, err)
	}

	switch resp.StatusCode() {
	case http.StatusCreated, http.StatusNoContent:
		return true, nil
	default:
		// Non-2xx is reported via the boolean, not an error: per-secret
		// failures must not abort the batch. 422 usually means the key_id
		// is no longer current and the batch should be rerun.
		g.log.Warn().
			Str("secret", name).
			Int("status", resp.StatusCode()).
			Str("body", strings.TrimSpace(string(resp.Body()))).
			Msg("secret upload rejected")
		return false, nil
	}
}

func (g *githubAdapter) ListSecrets(ctx context.Context, repo models.Repository) ([]models.SecretListItem, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"owner": repo.Owner, "repo": repo.Name}).
		Get("/repos/{owner}/{repo}/actions/secrets")
	if err != nil {
		return nil, mapTransportError("list secrets", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list secrets for %s: %w", repo.FullName(), err)
	}

	var list models.SecretListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode secret list response: %w", err)
	}

	return list.Secrets, nil
}

func (g *githubAdapter) DeleteSecret(ctx context.Context, repo models.Repository, name string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"owner": repo.Owner, "repo": repo.Name, "name": name}).
		Delete("/repos/{owner}/{repo}/actions/secrets/{name}")
	if err != nil {
		return mapTransportError("delete secret "+name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete secret %s: %w", name, err)
	}

	return nil
}
