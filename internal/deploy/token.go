// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/loldruger/epistulus-deploy/internal/adapter"
	"github.com/loldruger/epistulus-deploy/internal/config"
	"github.com/loldruger/epistulus-deploy/internal/crypto"
	"github.com/loldruger/epistulus-deploy/internal/tui"
)

// ResolveGitHubToken produces the GitHub credential for the secrets API.
//
// GitHub App credentials in the config take precedence: the app key is read
// from disk and exchanged for a short-lived installation token, with no
// interaction. Otherwise a token sealed into the config file is tried: the
// operator supplies the passphrase and the token is opened in memory.
// Failing both, the token is read interactively, and the operator may choose
// to seal it into the config file for the next run. The plaintext token is
// never written anywhere.
func ResolveGitHubToken(ctx context.Context, cfg *config.BuildConfig, prompter tui.Prompter, keychain crypto.KeyChain, configPath string) (string, error) {
	if cfg.GitHub.UsesApp() {
		keyPEM, err := os.ReadFile(cfg.GitHub.AppKeyPath)
		if err != nil {
			return "", fmt.Errorf("read app key: %w", err)
		}
		return adapter.InstallationToken(ctx, cfg.GitHub.APIBaseURL, adapter.AppCredentials{
			AppID:          cfg.GitHub.AppID,
			InstallationID: cfg.GitHub.AppInstallationID,
			PrivateKeyPEM:  keyPEM,
		}, time.Duration(cfg.GitHub.Timeout))
	}

	if cfg.GitHub.SealedToken != "" {
		passphrase, err := prompter.ReadSecret("Passphrase for stored GitHub token")
		if err != nil {
			return "", err
		}
		token, err := keychain.OpenToken(cfg.GitHub.SealedToken, passphrase)
		if err == nil {
			return token, nil
		}
		// Wrong passphrase or a stale blob. Fall through to a fresh
		// token rather than locking the operator out.
	}

	token, err := prompter.ReadSecret("GitHub personal access token")
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("no GitHub token provided")
	}
	if !looksLikeToken(token) {
		// Fine-grained and classic PATs carry known prefixes; anything
		// else is usually a paste mistake.
		ok, confirmErr := prompter.Confirm("Token has no known GitHub prefix, use it anyway?")
		if confirmErr != nil {
			return "", confirmErr
		}
		if !ok {
			return "", errors.New("token rejected")
		}
	}

	remember, err := prompter.Confirm("Store the token (encrypted) in " + configPath + "?")
	if err != nil || !remember {
		return token, nil
	}

	passphrase, err := prompter.ReadSecret("Passphrase to encrypt the token with")
	if err != nil || passphrase == "" {
		return token, nil
	}
	sealed, err := keychain.SealToken(token, passphrase)
	if err != nil {
		return token, fmt.Errorf("seal token: %w", err)
	}
	cfg.GitHub.SealedToken = sealed
	if err := config.Save(configPath, cfg); err != nil {
		return token, err
	}
	return token, nil
}

func looksLikeToken(token string) bool {
	for _, prefix := range []string{"ghp_", "github_pat_", "ghs_", "gho_"} {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}
