package models

import "time"

// Help request status values.
const (
	HelpStatusPending    = "pending"
	HelpStatusInProgress = "in-progress"
	HelpStatusResolved   = "resolved"
)

// ValidHelpStatus reports whether s is one of the allowed status values.
func ValidHelpStatus(s string) bool {
	return s == HelpStatusPending || s == HelpStatusInProgress || s == HelpStatusResolved
}

// HelpRequest is a farmer help ticket. UserID is the owner; self-deletion is
// only allowed within an hour of CreatedAt.
type HelpRequest struct {
	ID        string    `json:"_id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	State     string    `json:"state" db:"state"`
	District  string    `json:"district" db:"district"`
	PhoneNo   string    `json:"phoneNo" db:"phone_no"`
	Email     string    `json:"email" db:"email"`
	Help      string    `json:"help" db:"help"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	Status    string    `json:"status" db:"status"`
	Answer    string    `json:"answer" db:"answer"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// HelpRequestWithOwner joins the ticket with a small owner projection for the
// admin listing.
type HelpRequestWithOwner struct {
	HelpRequest
	OwnerFullName string `json:"ownerFullName" db:"owner_full_name"`
	OwnerEmailID  string `json:"ownerEmailId" db:"owner_email_id"`
}
