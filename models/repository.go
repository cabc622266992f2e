package models

// Repository identifies a single GitHub repository by owner and name.
// Both parts are case-sensitive on the secrets API.
type Repository struct {
	// Owner is the user or organisation that owns the repository.
	Owner string `json:"owner"`

	// Name is the repository name without the owner prefix.
	Name string `json:"name"`
}

// FullName returns the canonical "owner/name" form used in API paths and
// Workload Identity attribute conditions.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether the repository identity has not been resolved yet.
func (r Repository) IsZero() bool {
	return r.Owner == "" || r.Name == ""
}
