package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationDedupeIndex       = "dedupe_key-index"
	notificationRecipientIndex    = "recipient_id-index"
)

type notificationDocument struct {
	ID          string `dynamodbav:"id"`
	RecipientID string `dynamodbav:"recipient_id"`
	Scope       string `dynamodbav:"scope"`
	Type        string `dynamodbav:"type"`
	Title       string `dynamodbav:"title"`
	Body        string `dynamodbav:"body"`
	Read        bool   `dynamodbav:"read"`
	EntityRef   string `dynamodbav:"entity_ref,omitempty"`
	DedupeKey   string `dynamodbav:"dedupe_key"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists delivered notifications.
//
// Table requirements:
//   - PK: id
//   - GSI dedupe_key-index (PK: dedupe_key)
//   - GSI recipient_id-index (PK: recipient_id)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationDocument(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByDedupeKey(ctx context.Context, dedupeKey string) (entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationDedupeIndex),
		KeyConditionExpression: aws.String("#dk = :dk"),
		ExpressionAttributeNames: map[string]string{
			"#dk": "dedupe_key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dk": &types.AttributeValueMemberS{Value: dedupeKey},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Items) == 0 {
		return entities.Notification{}, nil
	}

	var doc notificationDocument
	if err := attributevalue.UnmarshalMap(out.Items[0], &doc); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationDocument(doc), nil
}

func (r *NotificationDynamoRepository) ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	var (
		notifications []entities.Notification
		startKey      map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationRecipientIndex),
			KeyConditionExpression: aws.String("#rid = :rid"),
			ExpressionAttributeNames: map[string]string{
				"#rid": "recipient_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: recipientID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var docs []notificationDocument
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &docs); err != nil {
			return nil, err
		}
		for _, doc := range docs {
			notifications = append(notifications, fromNotificationDocument(doc))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return notifications, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #read = :read"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #rid = :rid"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#rid":  "recipient_id",
			"#read": "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
			":rid":  &types.AttributeValueMemberS{Value: recipientID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}

	var doc notificationDocument
	if err := attributevalue.UnmarshalMap(out.Attributes, &doc); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationDocument(doc), nil
}

func toNotificationDocument(n entities.Notification) notificationDocument {
	return notificationDocument{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Scope:       string(n.Scope),
		Type:        string(n.Type),
		Title:       n.Title,
		Body:        n.Body,
		Read:        n.Read,
		EntityRef:   n.EntityRef,
		DedupeKey:   n.DedupeKey,
		CreatedAt:   formatTime(n.CreatedAt),
	}
}

func fromNotificationDocument(doc notificationDocument) entities.Notification {
	return entities.Notification{
		ID:          doc.ID,
		RecipientID: doc.RecipientID,
		Scope:       entities.RecipientScope(doc.Scope),
		Type:        entities.NotificationType(doc.Type),
		Title:       doc.Title,
		Body:        doc.Body,
		Read:        doc.Read,
		EntityRef:   doc.EntityRef,
		DedupeKey:   doc.DedupeKey,
		CreatedAt:   parseTime(doc.CreatedAt),
	}
}
