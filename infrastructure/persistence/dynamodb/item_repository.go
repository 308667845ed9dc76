package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"freshtrack-backend/application/ports"
	"freshtrack-backend/domain/inventory"
	apperrors "freshtrack-backend/pkg/errors"
)

// ItemRepository implements ports.ItemRepository on the shared table.
type ItemRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ItemRepository {
	return &ItemRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// foodItem is the DynamoDB item structure for one tracked food item.
type foodItem struct {
	PK           string `dynamodbav:"pk"`
	SK           string `dynamodbav:"sk"`
	ItemID       string `dynamodbav:"itemId"`
	ItemName     string `dynamodbav:"itemName"`
	Quantity     int    `dynamodbav:"quantity"`
	PurchaseDate string `dynamodbav:"purchaseDate"`
	ExpiryDate   string `dynamodbav:"expiryDate"`
	CreatedAt    string `dynamodbav:"createdAt"`
	UpdatedAt    string `dynamodbav:"updatedAt,omitempty"`
}

func toFoodItem(ownerEmail string, item inventory.Item) foodItem {
	return foodItem{
		PK:           userPK(ownerEmail),
		SK:           itemSK(item.ID),
		ItemID:       item.ID,
		ItemName:     item.Name,
		Quantity:     item.Quantity,
		PurchaseDate: item.PurchaseDate,
		ExpiryDate:   item.ExpiryDate,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func (f foodItem) toDomain() inventory.Item {
	return inventory.Item{
		ID:           f.ItemID,
		Name:         f.ItemName,
		Quantity:     f.Quantity,
		PurchaseDate: f.PurchaseDate,
		ExpiryDate:   f.ExpiryDate,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// Put upserts the item under the owner's partition.
func (r *ItemRepository) Put(ctx context.Context, ownerEmail string, item inventory.Item) error {
	av, err := attributevalue.MarshalMap(toFoodItem(ownerEmail, item))
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal item")
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to put item",
			zap.Error(err),
			zap.String("itemID", item.ID),
		)
		return translateError(err, "put item")
	}
	return nil
}

// Get loads one item by owner and id.
func (r *ItemRepository) Get(ctx context.Context, ownerEmail, itemID string) (*inventory.Item, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: userPK(ownerEmail)},
			"sk": &types.AttributeValueMemberS{Value: itemSK(itemID)},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to get item",
			zap.Error(err),
			zap.String("itemID", itemID),
		)
		return nil, translateError(err, "get item")
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError("item")
	}

	var record foodItem
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal item")
	}

	item := record.toDomain()
	return &item, nil
}

// Update replaces an existing item. The attribute_exists condition keeps the
// write from turning into an insert when the record was deleted concurrently.
func (r *ItemRepository) Update(ctx context.Context, ownerEmail string, item inventory.Item) error {
	av, err := attributevalue.MarshalMap(toFoodItem(ownerEmail, item))
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal item")
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(pk) AND attribute_exists(sk)"),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.NewNotFoundError("item")
		}
		r.logger.Error("Failed to update item",
			zap.Error(err),
			zap.String("itemID", item.ID),
		)
		return translateError(err, "update item")
	}
	return nil
}

// Delete removes the item. Deleting an absent record is a no-op.
func (r *ItemRepository) Delete(ctx context.Context, ownerEmail, itemID string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: userPK(ownerEmail)},
			"sk": &types.AttributeValueMemberS{Value: itemSK(itemID)},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		r.logger.Error("Failed to delete item",
			zap.Error(err),
			zap.String("itemID", itemID),
		)
		return translateError(err, "delete item")
	}
	return nil
}

// ListByOwner queries every ITEM# record under the owner's partition.
func (r *ItemRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]inventory.Item, error) {
	keyCond := expression.Key("pk").Equal(expression.Value(userPK(ownerEmail))).
		And(expression.Key("sk").BeginsWith(itemKeyPrefix))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build query expression")
	}

	items := make([]inventory.Item, 0)
	var lastKey map[string]types.AttributeValue
	for {
		input := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		}

		result, err := r.client.Query(ctx, input)
		if err != nil {
			r.logger.Error("Failed to query items",
				zap.Error(err),
				zap.String("owner", ownerEmail),
			)
			return nil, translateError(err, "list items")
		}

		var page []foodItem
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal items")
		}
		for _, record := range page {
			items = append(items, record.toDomain())
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return items, nil
}

// ScanExpiring walks the whole table and returns every item whose expiry
// date falls within [from, to] inclusive, across all owners. This is the
// notifier's batch read path; the request path never scans.
func (r *ItemRepository) ScanExpiring(ctx context.Context, from, to string) ([]ports.OwnedItem, error) {
	filter := expression.Name("sk").BeginsWith(itemKeyPrefix).
		And(expression.Name("expiryDate").Between(expression.Value(from), expression.Value(to)))

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build scan expression")
	}

	owned := make([]ports.OwnedItem, 0)
	var lastKey map[string]types.AttributeValue
	for {
		input := &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		}

		result, err := r.client.Scan(ctx, input)
		if err != nil {
			r.logger.Error("Failed to scan for expiring items", zap.Error(err))
			return nil, translateError(err, "scan expiring items")
		}

		var page []foodItem
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal items")
		}
		for _, record := range page {
			owned = append(owned, ports.OwnedItem{
				OwnerEmail: emailFromPK(record.PK),
				Item:       record.toDomain(),
			})
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return owned, nil
}
