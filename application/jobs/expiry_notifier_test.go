package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freshtrack-backend/application/ports"
	"freshtrack-backend/domain/inventory"
	"freshtrack-backend/tests/mocks"
)

// mockMetricsRecorder lives here rather than in tests/mocks because the
// shared mock package cannot import this one.
type mockMetricsRecorder struct {
	mock.Mock
}

func (m *mockMetricsRecorder) RecordNotifierRun(ctx context.Context, summary Summary) {
	m.Called(ctx, summary)
}

func fixedNotifier(items *mocks.MockItemRepository, notifier *mocks.MockNotificationService, metrics MetricsRecorder) *ExpiryNotifier {
	j := NewExpiryNotifier(items, notifier, metrics, 3, zap.NewNop())
	j.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return j
}

func TestExpiryNotifier_Run_ScansInclusiveWindow(t *testing.T) {
	// Arrange
	ctx := context.Background()
	items := new(mocks.MockItemRepository)
	notifier := new(mocks.MockNotificationService)
	job := fixedNotifier(items, notifier, nil)

	// The window is [today, today+3] inclusive on both ends.
	items.On("ScanExpiring", ctx, "2024-05-01", "2024-05-04").
		Return([]ports.OwnedItem{}, nil)

	// Act
	summary, err := job.Run(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	items.AssertExpectations(t)
}

func TestExpiryNotifier_Run_SendsOneReminderPerItem(t *testing.T) {
	ctx := context.Background()
	items := new(mocks.MockItemRepository)
	notifier := new(mocks.MockNotificationService)
	job := fixedNotifier(items, notifier, nil)

	expiring := []ports.OwnedItem{
		{OwnerEmail: "a@b.com", Item: inventory.Item{ID: "1", Name: "Milk", ExpiryDate: "2024-05-02"}},
		{OwnerEmail: "c@d.com", Item: inventory.Item{ID: "2", Name: "Eggs", ExpiryDate: "2024-05-04"}},
	}
	items.On("ScanExpiring", ctx, "2024-05-01", "2024-05-04").Return(expiring, nil)
	notifier.On("Publish", ctx, "Your Food Item 'Milk' is Expiring Soon!", mock.AnythingOfType("string")).Return(nil)
	notifier.On("Publish", ctx, "Your Food Item 'Eggs' is Expiring Soon!", mock.AnythingOfType("string")).Return(nil)

	summary, err := job.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, Summary{ItemsProcessed: 2, NotificationsSent: 2}, summary)
	notifier.AssertExpectations(t)

	body := notifier.Calls[0].Arguments.Get(2).(string)
	assert.Contains(t, body, "Hello a@b.com,")
	assert.Contains(t, body, "your food item 'Milk' is expiring soon")
	assert.Contains(t, body, "Expiration Date: 2024-05-02")
}

func TestExpiryNotifier_Run_ContinuesPastSendFailures(t *testing.T) {
	ctx := context.Background()
	items := new(mocks.MockItemRepository)
	notifier := new(mocks.MockNotificationService)
	metrics := new(mockMetricsRecorder)
	job := fixedNotifier(items, notifier, metrics)

	expiring := []ports.OwnedItem{
		{OwnerEmail: "a@b.com", Item: inventory.Item{ID: "1", Name: "Milk", ExpiryDate: "2024-05-02"}},
		{OwnerEmail: "c@d.com", Item: inventory.Item{ID: "2", Name: "Eggs", ExpiryDate: "2024-05-03"}},
	}
	items.On("ScanExpiring", ctx, "2024-05-01", "2024-05-04").Return(expiring, nil)
	notifier.On("Publish", ctx, "Your Food Item 'Milk' is Expiring Soon!", mock.AnythingOfType("string")).
		Return(errors.New("publish failed"))
	notifier.On("Publish", ctx, "Your Food Item 'Eggs' is Expiring Soon!", mock.AnythingOfType("string")).
		Return(nil)
	metrics.On("RecordNotifierRun", ctx, Summary{ItemsProcessed: 2, NotificationsSent: 1, Failures: 1}).Return()

	summary, err := job.Run(ctx)

	// One failed dispatch never aborts the run.
	require.NoError(t, err)
	assert.Equal(t, Summary{ItemsProcessed: 2, NotificationsSent: 1, Failures: 1}, summary)
	metrics.AssertExpectations(t)
}

func TestExpiryNotifier_Run_ScanFailure(t *testing.T) {
	ctx := context.Background()
	items := new(mocks.MockItemRepository)
	notifier := new(mocks.MockNotificationService)
	job := fixedNotifier(items, notifier, nil)

	items.On("ScanExpiring", ctx, "2024-05-01", "2024-05-04").
		Return(nil, errors.New("throughput exceeded"))

	_, err := job.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan for expiring items")
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
