// Package observability publishes operational metrics to CloudWatch.
package observability

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"

	"freshtrack-backend/application/jobs"
)

// CloudWatchMetrics records notifier run summaries as CloudWatch metrics.
type CloudWatchMetrics struct {
	client    *cloudwatch.Client
	namespace string
	logger    *zap.Logger
}

// NewCloudWatchMetrics creates a new CloudWatchMetrics recorder
func NewCloudWatchMetrics(client *cloudwatch.Client, namespace string, logger *zap.Logger) *CloudWatchMetrics {
	return &CloudWatchMetrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// RecordNotifierRun publishes the run counters. Metric delivery is
// best-effort; a failed put is logged and dropped.
func (m *CloudWatchMetrics) RecordNotifierRun(ctx context.Context, summary jobs.Summary) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("ItemsProcessed"),
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(float64(summary.ItemsProcessed)),
			},
			{
				MetricName: aws.String("NotificationsSent"),
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(float64(summary.NotificationsSent)),
			},
			{
				MetricName: aws.String("NotificationFailures"),
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(float64(summary.Failures)),
			},
		},
	}

	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to publish notifier metrics", zap.Error(err))
	}
}

// NoopMetrics satisfies jobs.MetricsRecorder when metrics are disabled.
type NoopMetrics struct{}

// RecordNotifierRun does nothing.
func (NoopMetrics) RecordNotifierRun(context.Context, jobs.Summary) {}
