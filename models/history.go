package models

import "time"

// SignDetection is one recognized sign stored in the user's history.
// The recognition itself happens in the external ML service; the backend only
// persists what the client reports back.
type SignDetection struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	DetectedSign string    `json:"detectedSign"`
	Confidence   *float64  `json:"confidence"`
	Language     string    `json:"language"`
	CreatedAt    time.Time `json:"createdAt"`
}

// VoiceTranscript is one speech-to-text result stored in the user's history.
type VoiceTranscript struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Transcript      string    `json:"transcript"`
	Language        string    `json:"language"`
	DurationSeconds *float64  `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TextMessage is one typed message stored in the user's history.
type TextMessage struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	MessageText string    `json:"messageText"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HistoryPage bounds a paged history query. Zero values mean "use the
// handler's defaults"; Limit is never unbounded.
type HistoryPage struct {
	Limit  uint64
	Offset uint64
}
