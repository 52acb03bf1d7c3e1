package models

// User is the database row representation of a registered user.
type User struct {
	UserID       string
	UserSeq      int64
	Username     string
	Email        string
	PasswordHash string
	IsVerified   bool
	AuditFields
}
