package models

import (
	"errors"
	"time"
)

// AccessState is the identity-reveal workflow state of one application.
// Persisted as the boolean/timestamp pair on Application; derived here as a
// tagged value so granted-without-requested cannot be produced through the
// transition methods.
type AccessState int

const (
	AccessHidden AccessState = iota
	AccessRequested
	AccessGranted
)

func (s AccessState) String() string {
	switch s {
	case AccessRequested:
		return "requested"
	case AccessGranted:
		return "granted"
	default:
		return "hidden"
	}
}

var (
	ErrAccessAlreadyRequested = errors.New("access request already pending")
	ErrAccessAlreadyGranted   = errors.New("access already granted")
	ErrAccessNotRequested     = errors.New("access has not been requested")
)

// AccessState derives the workflow state from the persisted fields.
func (a *Application) AccessState() AccessState {
	switch {
	case a.DetailsAccessGranted:
		return AccessGranted
	case a.DetailsAccessRequested:
		return AccessRequested
	default:
		return AccessHidden
	}
}

// RequestAccess moves Hidden -> Requested. A repeated request is a
// conflict, not a no-op, so the employer gets told the request is pending.
func (a *Application) RequestAccess(now time.Time) error {
	switch a.AccessState() {
	case AccessGranted:
		return ErrAccessAlreadyGranted
	case AccessRequested:
		return ErrAccessAlreadyRequested
	}
	a.DetailsAccessRequested = true
	a.DetailsAccessRequestedAt = &now
	return nil
}

// GrantAccess moves Requested -> Granted and records the grantor. Granting
// without a pending request is rejected; Granted is terminal.
func (a *Application) GrantAccess(adminID uint, now time.Time) error {
	switch a.AccessState() {
	case AccessGranted:
		return ErrAccessAlreadyGranted
	case AccessHidden:
		return ErrAccessNotRequested
	}
	a.DetailsAccessGranted = true
	a.DetailsAccessGrantedAt = &now
	a.DetailsAccessGrantedBy = &adminID
	return nil
}
