package models

import "time"

// Session is the persisted record of one issued bearer token. A user may hold
// any number of concurrent sessions; each successful registration or login
// creates a new row. Sessions are removed explicitly on logout (by token
// match) or become invalid implicitly once ExpiresAt is in the past;
// expired rows are not purged proactively.
type Session struct {
	// ID is the unique identifier of the session row.
	ID int64 `json:"id"`

	// UserID references the owning user. The session does not own the user;
	// deleting a session never touches the user row.
	UserID int64 `json:"userId"`

	// Token is the opaque signed token string issued for this session.
	// Unique across the table: a token identifies at most one session.
	Token string `json:"-"`

	// ExpiresAt is the absolute instant after which the session is invalid.
	ExpiresAt time.Time `json:"expiresAt"`

	// CreatedAt is the timestamp when the session was issued.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
