package ocr

// text unwraps a detection to its best available text field. The priority
// order is fixed: detected_text, then words, then text, then empty string.
func (d Detection) text() string {
	if d.DetectedText != "" {
		return d.DetectedText
	}
	if d.Words != "" {
		return d.Words
	}
	return d.Text
}

// Lines flattens a provider response into an ordered sequence of text
// lines, one per detection. No line is dropped: empty strings are kept so
// line indices stay aligned with the original response, since extractors
// may reference line position. An empty response yields an empty slice,
// never an error.
func Lines(resp Response) []string {
	lines := make([]string, 0, len(resp.TextDetections))
	for _, det := range resp.TextDetections {
		lines = append(lines, det.text())
	}
	return lines
}
