package api

// CorrectRequest is a body of the correction request, Text is split by white space
type CorrectRequest struct {
	Text  string   `json:"text,omitempty"`
	Words []string `json:"words,omitempty"`
}

// WordResult is a decoding result of one OCR word
type WordResult struct {
	Word      string  `json:"word"`
	Corrected string  `json:"corrected"`
	Prob      float64 `json:"prob"`
	ZeroProb  bool    `json:"zeroProb,omitempty"`
}

// CorrectResponse is returned by the correction endpoint
type CorrectResponse struct {
	ID      string       `json:"id"`
	Results []WordResult `json:"results"`
}

// ModelInfo describes the loaded model
type ModelInfo struct {
	Fingerprint string `json:"fingerprint"`
	States      string `json:"states"`
	Symbols     string `json:"symbols"`
	Words       int    `json:"words"`
	Skipped     int    `json:"skipped"`
}
