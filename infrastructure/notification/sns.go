// Package notification implements the notification port on Amazon SNS. Every
// registered user is an email subscriber of one topic; reminders are
// published to the topic.
package notification

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"freshtrack-backend/application/ports"
	apperrors "freshtrack-backend/pkg/errors"
)

// SNSNotifier implements ports.NotificationService against one SNS topic.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
	logger   *zap.Logger
}

// NewSNSNotifier creates a new SNSNotifier
func NewSNSNotifier(client *sns.Client, topicARN string, logger *zap.Logger) ports.NotificationService {
	return &SNSNotifier{
		client:   client,
		topicARN: topicARN,
		logger:   logger,
	}
}

// SubscribeEmail subscribes the address to the topic. SNS sends the address
// a confirmation email; nothing is delivered until the user confirms.
func (n *SNSNotifier) SubscribeEmail(ctx context.Context, email string) error {
	input := &sns.SubscribeInput{
		TopicArn: aws.String(n.topicARN),
		Protocol: aws.String("email"),
		Endpoint: aws.String(email),
	}

	if _, err := n.client.Subscribe(ctx, input); err != nil {
		n.logger.Error("Failed to subscribe email to topic",
			zap.Error(err),
			zap.String("email", email),
		)
		return apperrors.NewExternalError("sns", err)
	}

	n.logger.Info("Subscribed email to notification topic", zap.String("email", email))
	return nil
}

// Publish sends one message to the topic.
func (n *SNSNotifier) Publish(ctx context.Context, subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	if _, err := n.client.Publish(ctx, input); err != nil {
		n.logger.Error("Failed to publish notification",
			zap.Error(err),
			zap.String("subject", subject),
		)
		return apperrors.NewExternalError("sns", err)
	}
	return nil
}
