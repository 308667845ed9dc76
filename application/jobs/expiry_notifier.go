// Package jobs contains the scheduled batch processes that run outside the
// request path.
package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"freshtrack-backend/application/ports"
	"freshtrack-backend/pkg/utils"
)

// MetricsRecorder publishes a job run summary to the metrics backend.
type MetricsRecorder interface {
	RecordNotifierRun(ctx context.Context, summary Summary)
}

// Summary is the result of one notifier run.
type Summary struct {
	ItemsProcessed    int `json:"itemsProcessed"`
	NotificationsSent int `json:"notificationsSent"`
	Failures          int `json:"failures"`
}

// ExpiryNotifier scans the store for items approaching their expiry date and
// dispatches one reminder per item. It is triggered by an external schedule.
type ExpiryNotifier struct {
	items      ports.ItemRepository
	notifier   ports.NotificationService
	metrics    MetricsRecorder
	windowDays int
	logger     *zap.Logger

	// now is the clock, injectable for tests.
	now func() time.Time
}

// NewExpiryNotifier creates a new expiry notifier job
func NewExpiryNotifier(
	items ports.ItemRepository,
	notifier ports.NotificationService,
	metrics MetricsRecorder,
	windowDays int,
	logger *zap.Logger,
) *ExpiryNotifier {
	return &ExpiryNotifier{
		items:      items,
		notifier:   notifier,
		metrics:    metrics,
		windowDays: windowDays,
		logger:     logger,
		now:        time.Now,
	}
}

// Run executes one notifier pass. Items expiring within [today, today+window]
// inclusive each get one notification. A failed dispatch is logged and
// counted; it never aborts the remaining items. Only a failed store scan
// produces an error.
func (j *ExpiryNotifier) Run(ctx context.Context) (Summary, error) {
	today := utils.Today(j.now())
	from := today.Format(utils.DateLayout)
	to := today.AddDate(0, 0, j.windowDays).Format(utils.DateLayout)

	j.logger.Info("Scanning for expiring items",
		zap.String("from", from),
		zap.String("to", to),
	)

	expiring, err := j.items.ScanExpiring(ctx, from, to)
	if err != nil {
		j.logger.Error("Expiry scan failed", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to scan for expiring items: %w", err)
	}

	summary := Summary{ItemsProcessed: len(expiring)}
	for _, owned := range expiring {
		subject := fmt.Sprintf("Your Food Item '%s' is Expiring Soon!", owned.Item.Name)
		message := reminderMessage(owned.OwnerEmail, owned.Item.Name, owned.Item.ExpiryDate)

		if err := j.notifier.Publish(ctx, subject, message); err != nil {
			summary.Failures++
			j.logger.Error("Failed to send expiry reminder",
				zap.String("owner", owned.OwnerEmail),
				zap.String("itemID", owned.Item.ID),
				zap.Error(err),
			)
			continue
		}

		summary.NotificationsSent++
		j.logger.Info("Sent expiry reminder",
			zap.String("owner", owned.OwnerEmail),
			zap.String("item", owned.Item.Name),
		)
	}

	if j.metrics != nil {
		j.metrics.RecordNotifierRun(ctx, summary)
	}

	j.logger.Info("Expiry notifier run complete",
		zap.Int("processed", summary.ItemsProcessed),
		zap.Int("sent", summary.NotificationsSent),
		zap.Int("failures", summary.Failures),
	)
	return summary, nil
}

func reminderMessage(email, itemName, expiryDate string) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"This is a friendly reminder that your food item '%s' is expiring soon.\n"+
			"Expiration Date: %s\n\n"+
			"Please consider using it or donating it to a local food bank to prevent waste.\n\n"+
			"Thank you,\nFood Waste Management Team",
		email, itemName, expiryDate,
	)
}
