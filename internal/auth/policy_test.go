package auth

import (
	"errors"
	"testing"
	"time"
)

func TestCheckOwnership(t *testing.T) {
	if err := CheckOwnership("user-1", "user-1"); err != nil {
		t.Errorf("Owner should pass: %v", err)
	}
	if err := CheckOwnership("user-1", "user-2"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Non-owner should get ErrForbidden, got %v", err)
	}
}

func TestCheckWindow(t *testing.T) {
	created := time.Now()

	// 59 minutes in: still inside the 1 hour window.
	now := created.Add(59 * time.Minute)
	if err := CheckWindow(created, HelpRequestDeleteWindow, now); err != nil {
		t.Errorf("Inside window should pass: %v", err)
	}

	// 61 minutes in: window expired, distinct error.
	now = created.Add(61 * time.Minute)
	if err := CheckWindow(created, HelpRequestDeleteWindow, now); !errors.Is(err, ErrWindowExpired) {
		t.Errorf("Outside window should get ErrWindowExpired, got %v", err)
	}
}

func TestRoleForEmail(t *testing.T) {
	if got := RoleForEmail("admin@khetmitra.live", "admin@khetmitra.live"); got != RoleAdmin {
		t.Errorf("Expected admin role, got %s", got)
	}
	if got := RoleForEmail("farmer@example.com", "admin@khetmitra.live"); got != RoleStandard {
		t.Errorf("Expected standard role, got %s", got)
	}
	// Case-sensitive exact match only.
	if got := RoleForEmail("Admin@khetmitra.live", "admin@khetmitra.live"); got != RoleStandard {
		t.Errorf("Case-mismatched email must not be promoted, got %s", got)
	}
	if got := RoleForEmail("", ""); got != RoleStandard {
		t.Errorf("Empty admin email must never promote, got %s", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Farmer@Example.COM "); got != "farmer@example.com" {
		t.Errorf("Unexpected normalized email %q", got)
	}
}
