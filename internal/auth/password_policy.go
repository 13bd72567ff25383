package auth

import (
	"fmt"
	"regexp"
)

// PasswordPolicy defines password complexity requirements checked at signup,
// before hashing. The hasher itself accepts anything.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy returns the signup password policy.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
}

// ValidatePassword checks if password meets policy requirements.
func ValidatePassword(password string, policy PasswordPolicy) error {
	if len(password) < policy.MinLength {
		return fmt.Errorf("password must be at least %d characters long", policy.MinLength)
	}

	if policy.RequireUppercase {
		hasUpper, _ := regexp.MatchString(`[A-Z]`, password)
		if !hasUpper {
			return fmt.Errorf("password must contain at least one uppercase letter")
		}
	}

	if policy.RequireLowercase {
		hasLower, _ := regexp.MatchString(`[a-z]`, password)
		if !hasLower {
			return fmt.Errorf("password must contain at least one lowercase letter")
		}
	}

	if policy.RequireNumbers {
		hasNumber, _ := regexp.MatchString(`[0-9]`, password)
		if !hasNumber {
			return fmt.Errorf("password must contain at least one number")
		}
	}

	if policy.RequireSpecial {
		hasSpecial, _ := regexp.MatchString(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`, password)
		if !hasSpecial {
			return fmt.Errorf("password must contain at least one special character")
		}
	}

	return nil
}
