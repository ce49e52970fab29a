package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/adapter"
)

const alertSendTimeout = 10 * time.Second

// Alerter emails the configured recipient when total spending crosses the
// daily budget. It only fires on the transition into the over-budget state,
// not on every mutation while already over.
type Alerter struct {
	sender adapter.EmailSender
	to     string
}

// NewAlerter creates a new Alerter instance.
func NewAlerter(sender adapter.EmailSender, to string) *Alerter {
	return &Alerter{sender: sender, to: to}
}

// NotifyIfCrossed sends an overrun alert when the total moved from within
// the budget to above it. The send happens in the background; delivery
// failures are logged and never surface to the caller.
func (a *Alerter) NotifyIfCrossed(_ context.Context, before, after, dailyBudget decimal.Decimal) {
	if !dailyBudget.IsPositive() {
		return
	}
	if before.GreaterThan(dailyBudget) || !after.GreaterThan(dailyBudget) {
		return
	}

	overage := after.Sub(dailyBudget)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), alertSendTimeout)
		defer cancel()

		result, err := a.sender.Send(ctx, adapter.SendEmailInput{
			To:      a.to,
			Subject: "Shopping list over budget",
			HTML: fmt.Sprintf(
				"<p>Your shopping list total is now <strong>%s</strong>, which is <strong>%s</strong> over your daily budget of %s.</p>",
				after.StringFixed(2), overage.StringFixed(2), dailyBudget.StringFixed(2),
			),
			Text: fmt.Sprintf(
				"Your shopping list total is now %s, which is %s over your daily budget of %s.",
				after.StringFixed(2), overage.StringFixed(2), dailyBudget.StringFixed(2),
			),
		})
		if err != nil {
			slog.Error("Failed to send budget alert email", "error", err, "to", a.to)
			return
		}
		slog.Info("Budget alert email sent", "to", a.to, "provider_id", result.ProviderID)
	}()
}
