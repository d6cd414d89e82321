package models

import "time"

// Preferences stores per-user UI settings. A row is created lazily on first
// read with both settings unset.
type Preferences struct {
	ID     int64 `json:"-"`
	UserID int64 `json:"-"`

	// PreferredInputMode is the input channel the client should open with:
	// "sign", "voice" or "text". Nil when the user has not chosen yet.
	PreferredInputMode *string `json:"preferredInputMode"`

	// AccessibilitySettings is an opaque JSON document managed by the client
	// (font scale, contrast, captions). The backend stores it verbatim.
	AccessibilitySettings *string `json:"accessibilitySettings"`

	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Preferences model.
func (p Preferences) TableName() string {
	return "user_preferences"
}
