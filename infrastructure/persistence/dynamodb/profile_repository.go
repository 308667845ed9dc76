package dynamodb

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"freshtrack-backend/application/ports"
	"freshtrack-backend/domain/user"
	apperrors "freshtrack-backend/pkg/errors"
)

// ProfileRepository implements ports.ProfileRepository on the shared table.
type ProfileRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProfileRepository {
	return &ProfileRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// profileItem is the DynamoDB item structure for an account profile.
type profileItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Email     string `dynamodbav:"email"`
	Password  string `dynamodbav:"password"`
	CreatedAt string `dynamodbav:"createdAt"`
}

// CreateIfAbsent writes the profile with a condition that no record exists
// under the same partition key, so concurrent registrations of one email
// resolve to a single winner.
func (r *ProfileRepository) CreateIfAbsent(ctx context.Context, profile user.Profile) error {
	item := profileItem{
		PK:        userPK(profile.Email),
		SK:        profileSK,
		Email:     profile.Email,
		Password:  profile.PasswordHash,
		CreatedAt: profile.CreatedAt.UTC().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal profile")
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.NewConflictError("profile already exists")
		}
		r.logger.Error("Failed to create profile",
			zap.Error(err),
			zap.String("email", profile.Email),
		)
		return translateError(err, "create profile")
	}

	r.logger.Info("Profile created", zap.String("email", profile.Email))
	return nil
}

// GetByEmail loads the profile record for the email.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: userPK(email)},
			"sk": &types.AttributeValueMemberS{Value: profileSK},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to get profile",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, translateError(err, "get profile")
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError("profile")
	}

	var item profileItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal profile")
	}

	createdAt, _ := time.Parse(time.RFC3339, item.CreatedAt)
	return &user.Profile{
		Email:        item.Email,
		PasswordHash: item.Password,
		CreatedAt:    createdAt,
	}, nil
}
