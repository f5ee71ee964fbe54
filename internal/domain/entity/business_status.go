package entity

// BusinessStatus represents the moderation state of a business listing.
//
// The lifecycle is:
//
//	PENDING → APPROVED → INACTIVE
//	PENDING → REJECTED
//
// REJECTED and INACTIVE are terminal; there is no re-submit transition.
type BusinessStatus string

const (
	// BusinessStatusPending is the initial state of every new listing, awaiting moderation.
	BusinessStatusPending BusinessStatus = "pending"
	// BusinessStatusApproved means the listing passed moderation and is publicly visible.
	BusinessStatusApproved BusinessStatus = "approved"
	// BusinessStatusRejected means an administrator declined the listing with a reason.
	BusinessStatusRejected BusinessStatus = "rejected"
	// BusinessStatusInactive means an approved listing was taken off the public directory.
	BusinessStatusInactive BusinessStatus = "inactive"
)

// String returns the string representation of the BusinessStatus.
func (s BusinessStatus) String() string {
	return string(s)
}

// IsValid checks if the BusinessStatus is a valid value.
func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusApproved, BusinessStatusRejected, BusinessStatusInactive:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s BusinessStatus) CanTransitionTo(next BusinessStatus) bool {
	switch s {
	case BusinessStatusPending:
		return next == BusinessStatusApproved || next == BusinessStatusRejected
	case BusinessStatusApproved:
		return next == BusinessStatusInactive
	default:
		return false
	}
}
