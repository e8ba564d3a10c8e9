package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/ocr"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

func testRules() []model.CategoryRule {
	return []model.CategoryRule{
		{Keyword: "星巴克", Category: "餐饮/咖啡", Priority: 10, Enabled: true},
		{Keyword: "麦当劳", Category: "餐饮/正餐", Priority: 10, Enabled: true},
	}
}

func response(lines ...string) ocr.Response {
	detections := make([]ocr.Detection, len(lines))
	for i, line := range lines {
		detections[i] = ocr.Detection{DetectedText: line}
	}
	return ocr.Response{TextDetections: detections}
}

func TestProcessorParse(t *testing.T) {
	processor := &Processor{Clock: fixedClock}

	bill := processor.Parse(
		response("商户：星巴克咖啡", "实付：38.50", "2024年03月05日"),
		testRules(),
	)

	assert.Equal(t, "星巴克咖啡", bill.Merchant)
	assert.InDelta(t, 38.50, bill.Amount, 0.0001)
	assert.Equal(t, "2024-03-05", bill.Date)
	assert.Equal(t, "餐饮/咖啡", bill.Category)
	assert.Equal(t, []string{"商户：星巴克咖啡", "实付：38.50", "2024年03月05日"}, bill.RawText)
}

func TestProcessorParseEmptyResponse(t *testing.T) {
	// Empty input is not an error: every extractor degrades to its default.
	processor := &Processor{Clock: fixedClock}

	bill := processor.Parse(ocr.Response{}, testRules())

	assert.Empty(t, bill.Merchant)
	assert.Zero(t, bill.Amount)
	assert.Equal(t, "2024-06-15", bill.Date)
	assert.Empty(t, bill.Category)
	assert.Empty(t, bill.RawText)
}

func TestProcessorParseUnclassifiedMerchant(t *testing.T) {
	processor := &Processor{Clock: fixedClock}

	bill := processor.Parse(response("陌生商户", "¥12.00"), testRules())

	assert.Equal(t, "陌生商户", bill.Merchant)
	assert.Empty(t, bill.Category)
}

func TestProcessorExtractFields(t *testing.T) {
	processor := &Processor{Clock: fixedClock}

	t.Run("amount found flag distinguishes missing from zero", func(t *testing.T) {
		fields := processor.ExtractFields(response("麦当劳", "没有金额的一行"))
		assert.Zero(t, fields.Amount)
		assert.False(t, fields.AmountFound)

		fields = processor.ExtractFields(response("麦当劳", "¥25.50"))
		assert.InDelta(t, 25.50, fields.Amount, 0.0001)
		assert.True(t, fields.AmountFound)
	})

	t.Run("extractors are independent", func(t *testing.T) {
		// A response with only a date still yields the date; merchant and
		// amount degrade separately.
		fields := processor.ExtractFields(response("2024-02-03"))
		assert.Equal(t, "2024-02-03", fields.Date)
		assert.False(t, fields.AmountFound)
		require.NotEmpty(t, fields.RawLines)
	})
}

func TestProcessorDeterminism(t *testing.T) {
	processor := &Processor{Clock: fixedClock}
	resp := response("商户：星巴克", "¥38.00", "2024-03-05")
	rules := testRules()

	first := processor.Parse(resp, rules)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, processor.Parse(resp, rules))
	}
}
