package domain

import "fmt"

// User represents a registered account holder.
// Immutable after registration except for the verification flag.
type User struct {
	UserID       string `json:"userID"`   // Primary Key (UUID)
	UserSeq      int64  `json:"userSeq"`  // Monotonic registration sequence, drives the account number
	Username     string `json:"username"` // Display name
	Email        string `json:"email"`    // Unique login identifier
	PasswordHash string `json:"-"`        // bcrypt hash, never serialized
	IsVerified   bool   `json:"isVerified"`
	AuditFields
}

// AccountNumber derives the human-facing account number from the registration
// sequence, e.g. "ACCT-000042".
func (u User) AccountNumber() string {
	return fmt.Sprintf("ACCT-%06d", u.UserSeq)
}
