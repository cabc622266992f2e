package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/loldruger/epistulus-deploy/models"
)

// AppCredentials identifies a GitHub App installation. Using an App instead
// of a personal access token keeps the long-lived credential out of the
// operator's hands entirely: the private key mints a short-lived JWT, which
// is exchanged for an installation token scoped to one repository set.
type AppCredentials struct {
	AppID          string
	InstallationID string

	// PrivateKeyPEM is the App's RS256 signing key in PEM form.
	PrivateKeyPEM []byte
}

// InstallationToken exchanges App credentials for a short-lived installation
// token usable as the bearer credential of [NewGitHubAdapter]. The minted
// app JWT is backdated 60s against clock skew and expires after 9 minutes
// (the API ceiling is 10).
func InstallationToken(ctx context.Context, baseURL string, creds AppCredentials, timeout time.Duration) (string, error) {
	signingKey, err := jwt.ParseRSAPrivateKeyFromPEM(creds.PrivateKeyPEM)
	if err != nil {
		return "", fmt.Errorf("parse app private key: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    creds.AppID,
		IssuedAt:  jwt.NewNumericDate(now.Add(-60 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(9 * time.Minute)),
	}

	appJWT, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("sign app jwt: %w", err)
	}

	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", apiVersion)

	resp, err := cli.R().
		SetContext(ctx).
		SetAuthToken(appJWT).
		SetPathParam("installation_id", creds.InstallationID).
		Post("/app/installations/{installation_id}/access_tokens")
	if err != nil {
		return "", mapTransportError("installation token exchange", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("installation token exchange: %w", err)
	}

	var tokenResp models.InstallationTokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return "", fmt.Errorf("decode installation token response: %w", err)
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("installation token response missing token")
	}

	return tokenResp.Token, nil
}
