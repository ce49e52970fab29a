// Package report contains the spending analytics use cases: trend charts,
// category breakdowns and the list summary.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/krigzlist/backend/internal/domain/error"
)

// Timeframe selects the bucketing scheme for spending trends.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// ParseTimeframe validates a raw timeframe string.
func ParseTimeframe(raw string) (Timeframe, error) {
	switch Timeframe(raw) {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly:
		return Timeframe(raw), nil
	default:
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidTimeframe,
			"timeframe must be: daily, weekly, or monthly",
			domainerror.ErrInvalidTimeframe,
		)
	}
}

// Bucket is a single bar of the trends chart: a date range, the spending
// that fell into it and the budget reference line for the range.
type Bucket struct {
	Label  string
	Start  time.Time
	End    time.Time // inclusive last day of the range
	Value  decimal.Decimal
	Budget decimal.Decimal
}

// axisHeadroom scales the tallest bar or budget line to leave space above it.
var axisHeadroom = decimal.RequireFromString("1.2")

// defaultAxisMax is the axis ceiling when every bucket is empty and no
// budget line is drawn.
var defaultAxisMax = decimal.NewFromInt(100)

// MaxAxisValue returns the chart's vertical axis ceiling: the largest bucket
// value or budget line scaled by the headroom factor, or a fixed default
// when the chart is empty.
func MaxAxisValue(buckets []Bucket) decimal.Decimal {
	peak := decimal.Zero
	for _, b := range buckets {
		if b.Value.GreaterThan(peak) {
			peak = b.Value
		}
		if b.Budget.GreaterThan(peak) {
			peak = b.Budget
		}
	}
	if !peak.IsPositive() {
		return defaultAxisMax
	}
	return peak.Mul(axisHeadroom)
}
