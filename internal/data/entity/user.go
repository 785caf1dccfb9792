package entity

type User struct {
	Base
	Email        string  `db:"email"`
	PasswordHash *string `db:"password_hash"` // nil for Google-only accounts
	GoogleID     *string `db:"google_id"`     // nil for email/password accounts
	Name         string  `db:"name"`
}
