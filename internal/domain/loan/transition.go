package loan

import "loan-tracker/internal/domain/apperr"

// Each privileged role owns its own closed set of assignable statuses.
var (
	verifierStatuses = map[Status]struct{}{StatusVerified: {}, StatusRejected: {}}
	adminStatuses    = map[Status]struct{}{StatusApproved: {}, StatusRejected: {}}
)

// VerifierStatus checks that s is something a verifier may set.
func VerifierStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := verifierStatuses[st]; !ok {
		return "", apperr.Invalid("Invalid status update. Allowed: verified or rejected.")
	}
	return st, nil
}

// AdminStatus checks that s is something an admin may set.
func AdminStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := adminStatuses[st]; !ok {
		return "", apperr.Invalid("Invalid status. Allowed: approved or rejected.")
	}
	return st, nil
}
