package inventory

import (
	"math"
	"time"

	"freshtrack-backend/pkg/utils"
)

// ExpiringSoonWindowDays is the lookahead used by the analytics report for
// the "expiring soon" bucket.
const ExpiringSoonWindowDays = 3

// Analytics is the per-user inventory report.
type Analytics struct {
	TotalItems      int     `json:"totalItems"`
	TotalQuantity   int     `json:"totalQuantity"`
	ExpiredItems    int     `json:"expiredItems"`
	ExpiringSoon    int     `json:"expiringSoon"`
	WastePercentage float64 `json:"wastePercentage"`
	AverageQuantity float64 `json:"averageQuantity"`
}

// ComputeAnalytics aggregates a user's items as of the given instant.
// An item is expired when its expiry date is strictly before today, and
// expiring soon when it falls within [today, today+3] inclusive. Items with
// an unparseable expiry date still count toward totals but are classified
// into neither bucket.
func ComputeAnalytics(items []Item, now time.Time) Analytics {
	today := utils.Today(now)
	horizon := today.AddDate(0, 0, ExpiringSoonWindowDays)

	report := Analytics{TotalItems: len(items)}
	for _, item := range items {
		report.TotalQuantity += item.Quantity

		expiry, ok := item.ExpiresOn()
		if !ok {
			continue
		}
		switch {
		case expiry.Before(today):
			report.ExpiredItems++
		case !expiry.After(horizon):
			report.ExpiringSoon++
		}
	}

	if report.TotalItems > 0 {
		report.WastePercentage = round2(float64(report.ExpiredItems) / float64(report.TotalItems) * 100)
		report.AverageQuantity = round2(float64(report.TotalQuantity) / float64(report.TotalItems))
	}
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
