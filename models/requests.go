package models

// RegisterRequest is the body of POST /api/auth/register.
// PreferredLanguage is optional and defaults to "en".
type RegisterRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DetectSignRequest is the body of POST /api/sign/detect. Confidence is
// optional; Language defaults to "en".
type DetectSignRequest struct {
	DetectedSign string   `json:"detectedSign"`
	Confidence   *float64 `json:"confidence"`
	Language     string   `json:"language"`
}

// TranscribeRequest is the body of POST /api/voice/transcribe.
type TranscribeRequest struct {
	Transcript      string   `json:"transcript"`
	Language        string   `json:"language"`
	DurationSeconds *float64 `json:"durationSeconds"`
}

// SaveMessageRequest is the body of POST /api/text/messages.
type SaveMessageRequest struct {
	MessageText string `json:"messageText"`
	Language    string `json:"language"`
}

// UpdatePreferencesRequest is the body of PUT /api/preferences.
type UpdatePreferencesRequest struct {
	PreferredInputMode    *string `json:"preferredInputMode"`
	AccessibilitySettings *string `json:"accessibilitySettings"`
}
