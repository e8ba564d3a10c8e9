// Package ocr normalizes provider OCR responses into ordered text lines.
package ocr

// Detection is a single detected line from an OCR provider. Providers
// disagree on which field carries the text, so all known variants are
// modeled and unwrapped in a fixed priority order.
type Detection struct {
	DetectedText string  `json:"detected_text,omitempty"`
	Words        string  `json:"words,omitempty"`
	Text         string  `json:"text,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
}

// Response is a provider OCR payload: an ordered list of detections in
// top-to-bottom reading order.
type Response struct {
	RawResponse    string      `json:"raw_response,omitempty"`
	TextDetections []Detection `json:"text_detections"`
	Confidence     float64     `json:"confidence,omitempty"`
}
