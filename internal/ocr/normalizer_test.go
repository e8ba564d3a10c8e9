package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want []string
	}{
		{
			name: "detected_text preferred over other fields",
			resp: Response{TextDetections: []Detection{
				{DetectedText: "星巴克咖啡", Words: "ignored", Text: "ignored"},
			}},
			want: []string{"星巴克咖啡"},
		},
		{
			name: "words used when detected_text missing",
			resp: Response{TextDetections: []Detection{
				{Words: "¥25.50", Text: "ignored"},
			}},
			want: []string{"¥25.50"},
		},
		{
			name: "text used as last resort",
			resp: Response{TextDetections: []Detection{
				{Text: "2024-02-03"},
			}},
			want: []string{"2024-02-03"},
		},
		{
			name: "empty detection preserved for index alignment",
			resp: Response{TextDetections: []Detection{
				{DetectedText: "麦当劳"},
				{},
				{DetectedText: "¥25.50"},
			}},
			want: []string{"麦当劳", "", "¥25.50"},
		},
		{
			name: "mixed provider fields keep reading order",
			resp: Response{TextDetections: []Detection{
				{DetectedText: "first"},
				{Words: "second"},
				{Text: "third"},
			}},
			want: []string{"first", "second", "third"},
		},
		{
			name: "no detections yields empty sequence",
			resp: Response{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.resp))
		})
	}
}
