package models

// Prediction is the reply of the external ML service for a single frame,
// forwarded to the client verbatim by POST /api/predict.
type Prediction struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}
