// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/loldruger/epistulus-deploy/internal/adapter"
	"github.com/loldruger/epistulus-deploy/internal/crypto"
	"github.com/loldruger/epistulus-deploy/internal/logger"
	"github.com/loldruger/epistulus-deploy/models"
)

// secretNamePattern is the platform's secret-name grammar. Names violating
// it would be rejected with a 422 anyway; validating locally keeps the
// failure message useful.
var secretNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type secretPublisher struct {
	github adapter.GitHubAdapter
	log    *logger.Logger
}

// NewSecretPublisher constructs a [SecretPublisher] over the given GitHub
// adapter.
func NewSecretPublisher(github adapter.GitHubAdapter, log *logger.Logger) SecretPublisher {
	if log == nil {
		log = logger.Nop()
	}
	return &secretPublisher{github: github, log: log}
}

// PublishAll implements [SecretPublisher].
//
// The batch is processed in sorted name order so log lines and failure
// accounting are deterministic. The public key is fetched once and its
// key_id stamped on every upload: if the platform rotates the key
// mid-batch, affected uploads come back false (422) and the operator reruns
// the batch against the fresh key. Plaintext values and the credential are
// never logged.
func (p *secretPublisher) PublishAll(ctx context.Context, repo models.Repository, secrets map[string]string) (PublishReport, error) {
	if len(secrets) == 0 {
		return PublishReport{}, nil
	}

	key, err := p.github.GetPublicKey(ctx, repo)
	if err != nil {
		return PublishReport{}, fmt.Errorf("fetch public key: %w", err)
	}

	pub, err := crypto.ParseRepositoryPublicKey(key)
	if err != nil {
		return PublishReport{}, err
	}

	names := make([]string, 0, len(secrets))
	for name := range secrets {
		names = append(names, name)
	}
	sort.Strings(names)

	report := PublishReport{Results: make([]SecretResult, 0, len(names))}
	for _, name := range names {
		result := SecretResult{Name: name}

		switch {
		case !validSecretName(name):
			result.Reason = "invalid secret name"
			p.log.Warn().Str("secret", name).Msg("skipping secret with invalid name")

		default:
			encrypted, sealErr := crypto.SealSecretB64(pub, secrets[name])
			if sealErr != nil {
				// Key material already parsed, so this is effectively
				// unreachable short of an oversized value.
				result.Reason = "encryption failed"
				p.log.Error().Err(sealErr).Str("secret", name).Msg("sealing secret failed")
				break
			}

			ok, putErr := p.github.PutSecret(ctx, repo, name, encrypted, key.KeyID)
			if putErr != nil {
				result.Reason = "upload failed"
				p.log.Error().Err(putErr).Str("secret", name).Msg("secret upload failed")
				break
			}
			if !ok {
				result.Reason = "rejected by platform"
				break
			}

			result.OK = true
			p.log.Info().Str("secret", name).Str("key_id", key.KeyID).Msg("secret stored")
		}

		report.Results = append(report.Results, result)
	}

	p.log.Info().
		Int("succeeded", report.Succeeded()).
		Int("total", report.Total()).
		Str("repository", repo.FullName()).
		Msg("secret batch finished")

	return report, nil
}

func validSecretName(name string) bool {
	if !secretNamePattern.MatchString(name) {
		return false
	}
	// The GITHUB_ prefix is reserved by the platform.
	return !strings.HasPrefix(strings.ToUpper(name), "GITHUB_")
}
