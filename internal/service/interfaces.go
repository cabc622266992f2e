// SPDX-License-Identifier: Apache-2.0

// Package service holds the application services of the deployment toolkit.
// The central one is [SecretPublisher], which makes a set of named plaintext
// values available to a repository's CI as encrypted Actions secrets without
// ever transmitting plaintext over the network.
package service

import (
	"context"

	"github.com/loldruger/epistulus-deploy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_publisher_mock.go -package=mock

// SecretPublisher encrypts and upserts repository secrets.
type SecretPublisher interface {
	// PublishAll publishes every entry of secrets to repo. Exactly one
	// public key is fetched per batch; every upload carries that key's
	// key_id. Per-secret upload failures are isolated: the batch
	// continues and the failure is reflected in the report. A key-fetch
	// failure aborts the whole batch (no key means nothing can be
	// encrypted correctly) and is returned as an error from the adapter
	// taxonomy.
	//
	// An empty mapping returns an empty report without any network call.
	PublishAll(ctx context.Context, repo models.Repository, secrets map[string]string) (PublishReport, error)
}

// SecretResult is the outcome of one secret's publication.
type SecretResult struct {
	Name string
	OK   bool

	// Reason is a short operator-facing note for failures ("invalid
	// name", "rejected by platform"). Never contains the secret value.
	Reason string
}

// PublishReport aggregates a batch run. Partial success is expected and
// surfaced, not escalated: secrets are independent and callers usually want
// the rest to land even if one name fails.
type PublishReport struct {
	Results []SecretResult
}

// Succeeded returns the number of secrets that were stored.
func (r PublishReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK {
			n++
		}
	}
	return n
}

// Total returns the batch size.
func (r PublishReport) Total() int {
	return len(r.Results)
}

// AllSucceeded reports whether every secret in the batch was stored.
func (r PublishReport) AllSucceeded() bool {
	return r.Succeeded() == r.Total()
}
