package models

// Response envelopes mirror the JSON contract the browser client depends on:
// every reply carries a boolean "success" plus payload fields specific to the
// endpoint. Failure replies carry "success": false and a generic message.

// ErrorResponse is the uniform failure envelope. The message is deliberately
// generic for authentication failures so that a caller cannot distinguish a
// forged token from an expired one, or a wrong password from an unknown email.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the success envelope for operations that return no
// entity, e.g. logout or deletions.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthResponse is returned by register and login: the created/authenticated
// user (without credential fields) plus a freshly issued bearer token.
type AuthResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// UserResponse is returned by GET /api/auth/me.
type UserResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
}

// PublicUser is the externally visible projection of a [User] row.
type PublicUser struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// PublicProfile converts a full user record into its response projection,
// stripping the password hash and internal fields.
func PublicProfile(u User) PublicUser {
	return PublicUser{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		PreferredLanguage: u.PreferredLanguage,
	}
}

// DetectionResponse is returned by POST /api/sign/detect.
type DetectionResponse struct {
	Success   bool          `json:"success"`
	Detection SignDetection `json:"detection"`
}

// SignHistoryResponse is the paged reply of GET /api/sign/history.
type SignHistoryResponse struct {
	Success    bool            `json:"success"`
	Detections []SignDetection `json:"detections"`
	Total      int64           `json:"total"`
	Limit      uint64          `json:"limit"`
	Offset     uint64          `json:"offset"`
}

// TranscriptResponse is returned by POST /api/voice/transcribe.
type TranscriptResponse struct {
	Success    bool            `json:"success"`
	Transcript VoiceTranscript `json:"transcript"`
}

// VoiceHistoryResponse is the paged reply of GET /api/voice/history.
type VoiceHistoryResponse struct {
	Success     bool              `json:"success"`
	Transcripts []VoiceTranscript `json:"transcripts"`
	Total       int64             `json:"total"`
	Limit       uint64            `json:"limit"`
	Offset      uint64            `json:"offset"`
}

// TextMessageResponse is returned by POST /api/text/messages.
type TextMessageResponse struct {
	Success bool        `json:"success"`
	Message TextMessage `json:"message"`
}

// TextHistoryResponse is the paged reply of GET /api/text/messages.
type TextHistoryResponse struct {
	Success  bool          `json:"success"`
	Messages []TextMessage `json:"messages"`
	Total    int64         `json:"total"`
	Limit    uint64        `json:"limit"`
	Offset   uint64        `json:"offset"`
}

// PreferencesResponse is returned by GET and PUT /api/preferences.
type PreferencesResponse struct {
	Success     bool        `json:"success"`
	Preferences Preferences `json:"preferences"`
}
