package domain

import "github.com/google/uuid"

type Users struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserName     string    `db:"user_name" json:"user_name"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	Email        *string   `db:"email" json:"email,omitempty"`
	AuthProvider string    `db:"auth_provider" json:"auth_provider"`
	GoogleID     *string   `db:"google_id" json:"-"`
}

type UsersTable struct {
	ID           string
	UserName     string
	PasswordHash string
	Email        string
	AuthProvider string
	GoogleID     string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:           "id",
		UserName:     "user_name",
		PasswordHash: "password_hash",
		Email:        "email",
		AuthProvider: "auth_provider",
		GoogleID:     "google_id",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}

// Session returns the session value for this user.
func (u *Users) Session() Session {
	return Session{UserID: u.ID, UserName: u.UserName}
}
