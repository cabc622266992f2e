package models

// Outcome is the result of an idempotent ensure-style provisioning call.
type Outcome int

const (
	// OutcomeAlreadyPresent means the resource existed and no mutation was
	// issued.
	OutcomeAlreadyPresent Outcome = iota

	// OutcomeCreated means the resource was missing and has been created.
	OutcomeCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAlreadyPresent:
		return "already present"
	default:
		return "unknown"
	}
}
