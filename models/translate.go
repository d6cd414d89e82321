package models

// TranslateRequest is the body of POST /api/translate. SourceLang is
// optional and defaults to "en"; Text and TargetLang are required.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// TranslateResponse is the reply of POST /api/translate.
type TranslateResponse struct {
	Success        bool    `json:"success"`
	TranslatedText string  `json:"translatedText"`
	Match          float64 `json:"match"`
}

// Translation is the provider-agnostic result of a translation call.
type Translation struct {
	TranslatedText string
	Match          float64
}

// MyMemoryResponse is the subset of the MyMemory API reply the backend
// consumes. Match is the provider's quality score for the returned
// translation.
type MyMemoryResponse struct {
	ResponseData *MyMemoryResponseData `json:"responseData"`
}

// MyMemoryResponseData carries the actual translation inside a
// [MyMemoryResponse].
type MyMemoryResponseData struct {
	TranslatedText string  `json:"translatedText"`
	Match          float64 `json:"match"`
}
