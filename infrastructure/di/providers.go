package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"freshtrack-backend/application/jobs"
	"freshtrack-backend/application/ports"
	"freshtrack-backend/application/services"
	"freshtrack-backend/domain/inventory"
	"freshtrack-backend/infrastructure/config"
	"freshtrack-backend/infrastructure/notification"
	"freshtrack-backend/infrastructure/observability"
	"freshtrack-backend/infrastructure/persistence/dynamodb"
	"freshtrack-backend/pkg/auth"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideSNSClient creates an SNS client
func ProvideSNSClient(awsCfg aws.Config) *awssns.Client {
	return awssns.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideProfileRepository creates a profile repository
func ProvideProfileRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProfileRepository {
	return dynamodb.NewProfileRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideItemRepository creates an item repository
func ProvideItemRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ItemRepository {
	return dynamodb.NewItemRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideNotificationService creates the SNS-backed notification service
func ProvideNotificationService(client *awssns.Client, cfg *config.Config, logger *zap.Logger) ports.NotificationService {
	return notification.NewSNSNotifier(client, cfg.SNSTopicARN, logger)
}

// ProvideMetricsRecorder creates the metrics recorder, or a no-op when
// metrics are disabled.
func ProvideMetricsRecorder(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) jobs.MetricsRecorder {
	if !cfg.EnableMetrics {
		return observability.NoopMetrics{}
	}
	return observability.NewCloudWatchMetrics(client, cfg.MetricsNamespace, logger)
}

// ProvideTokenService creates the JWT token service
func ProvideTokenService(cfg *config.Config) *auth.TokenService {
	return auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
}

// ProvideItemValidator creates the item input validator
func ProvideItemValidator() *inventory.ItemValidator {
	return inventory.NewItemValidator()
}

// ProvideAuthService creates the auth service
func ProvideAuthService(
	profiles ports.ProfileRepository,
	notifier ports.NotificationService,
	tokens *auth.TokenService,
	logger *zap.Logger,
) *services.AuthService {
	return services.NewAuthService(profiles, notifier, tokens, logger)
}

// ProvideInventoryService creates the inventory service
func ProvideInventoryService(
	items ports.ItemRepository,
	validator *inventory.ItemValidator,
	logger *zap.Logger,
) *services.InventoryService {
	return services.NewInventoryService(items, validator, logger)
}

// ProvideExpiryNotifier creates the scheduled expiry notifier job
func ProvideExpiryNotifier(
	items ports.ItemRepository,
	notifier ports.NotificationService,
	metrics jobs.MetricsRecorder,
	cfg *config.Config,
	logger *zap.Logger,
) *jobs.ExpiryNotifier {
	return jobs.NewExpiryNotifier(items, notifier, metrics, cfg.ExpiryWindowDays, logger)
}
