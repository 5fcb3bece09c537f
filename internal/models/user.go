package models

import "time"

// UserDB represents a user row in the database.
type UserDB struct {
	ID           int64     `db:"id"`
	UID          string    `db:"uid"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Mobile       string    `db:"mobile"`
	Balance      float64   `db:"balance"`
	IsAdmin      bool      `db:"is_admin"`
	IsBanned     bool      `db:"is_banned"`
	CreatedAt    time.Time `db:"created_at"`
}

// User is the public view of a user. It never carries the password hash.
type User struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	Username  string    `json:"username"`
	Mobile    string    `json:"mobile"`
	Balance   float64   `json:"balance"`
	IsAdmin   bool      `json:"is_admin"`
	IsBanned  bool      `json:"is_banned"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the user without its secret.
func (u *UserDB) Public() User {
	return User{
		ID:        u.ID,
		UID:       u.UID,
		Username:  u.Username,
		Mobile:    u.Mobile,
		Balance:   u.Balance,
		IsAdmin:   u.IsAdmin,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}
