package auth

import (
	"errors"
	"time"
)

var ErrForbidden = errors.New("access denied")
var ErrWindowExpired = errors.New("allowed time window has expired")

// HelpRequestDeleteWindow bounds self-deletion of a help request.
const HelpRequestDeleteWindow = time.Hour

// CheckOwnership permits an action only for the resource owner. A mismatch is
// an authorization failure, not "not found": the caller already knows the id.
func CheckOwnership(ownerID, requesterID string) error {
	if ownerID != requesterID {
		return ErrForbidden
	}
	return nil
}

// CheckWindow permits an action only within window of createdAt. Outside the
// window it fails with ErrWindowExpired, distinct from a plain ownership
// failure so the client can tell the two apart.
func CheckWindow(createdAt time.Time, window time.Duration, now time.Time) error {
	if now.Sub(createdAt) > window {
		return ErrWindowExpired
	}
	return nil
}
