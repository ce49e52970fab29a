package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
)

// GetSpendingTrendsInput represents the input for the trends chart.
type GetSpendingTrendsInput struct {
	Timeframe Timeframe
}

// GetSpendingTrendsOutput represents the trends chart data.
type GetSpendingTrendsOutput struct {
	Timeframe    Timeframe
	Buckets      []Bucket
	MaxAxisValue decimal.Decimal
	DailyBudget  decimal.Decimal
}

// GetSpendingTrendsUseCase buckets item spending by date for the chart.
type GetSpendingTrendsUseCase struct {
	store *store.ListStore
	now   func() time.Time
}

// NewGetSpendingTrendsUseCase creates a new GetSpendingTrendsUseCase
// instance. The clock is injectable for tests; pass nil for the wall clock.
func NewGetSpendingTrendsUseCase(s *store.ListStore, now func() time.Time) *GetSpendingTrendsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetSpendingTrendsUseCase{store: s, now: now}
}

// Execute produces the bucketed spending series for the timeframe. Every
// bucket in the range is present even when empty, so charts have no gaps.
func (uc *GetSpendingTrendsUseCase) Execute(_ context.Context, input GetSpendingTrendsInput) (*GetSpendingTrendsOutput, error) {
	timeframe, err := ParseTimeframe(string(input.Timeframe))
	if err != nil {
		return nil, err
	}

	now := uc.now()
	items, dailyBudget := uc.store.Snapshot()

	var buckets []Bucket
	switch timeframe {
	case TimeframeDaily:
		buckets = dailyPeriods(now)
		fillBudget(buckets, dailyBudget)
	case TimeframeWeekly:
		buckets = weeklyPeriods(now)
		fillBudget(buckets, dailyBudget.Mul(decimal.NewFromInt(daysPerWeek)))
	case TimeframeMonthly:
		buckets = monthlyPeriods(now)
		fillBudget(buckets, dailyBudget.Mul(decimal.NewFromInt(daysPerWeek)))
	}

	for i := range buckets {
		buckets[i].Value = decimal.Zero
	}
	for _, it := range items {
		// Monthly windows overlap adjacent months; the month chart only
		// counts items dated inside the current month.
		if timeframe == TimeframeMonthly &&
			(it.DateAdded.Year() != now.Year() || it.DateAdded.Month() != now.Month()) {
			continue
		}
		for i := range buckets {
			if withinRange(it.DateAdded, buckets[i].Start, buckets[i].End) {
				buckets[i].Value = buckets[i].Value.Add(it.Price)
				break
			}
		}
	}

	return &GetSpendingTrendsOutput{
		Timeframe:    timeframe,
		Buckets:      buckets,
		MaxAxisValue: MaxAxisValue(buckets),
		DailyBudget:  dailyBudget,
	}, nil
}

func fillBudget(buckets []Bucket, budget decimal.Decimal) {
	for i := range buckets {
		buckets[i].Budget = budget
	}
}
