package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOutboxTableName = "notification_outbox"
	outboxStatusIndex      = "status-index"
)

type outboxDocument struct {
	ID          string `dynamodbav:"id"`
	EntityType  string `dynamodbav:"entity_type"`
	EntityID    string `dynamodbav:"entity_id"`
	Type        string `dynamodbav:"type"`
	RecipientID string `dynamodbav:"recipient_id"`
	Scope       string `dynamodbav:"scope"`
	Title       string `dynamodbav:"title"`
	Body        string `dynamodbav:"body"`
	Status      string `dynamodbav:"status"`
	Attempts    int    `dynamodbav:"attempts"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// OutboxDynamoRepository is the durable queue between the mutation pipeline
// and the notification worker.
//
// Table requirements:
//   - PK: id (the dedupe key)
//   - GSI status-index (PK: status)
//
// Enqueue is a conditional create on the id, which is the dedupe key: the
// second enqueue of the same transition silently finds the row already there
// and returns a zero value.

type OutboxDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOutboxRepository = (*OutboxDynamoRepository)(nil)

func NewOutboxDynamoRepository(ddb *dynamodb.Client) *OutboxDynamoRepository {
	return &OutboxDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OUTBOX_TABLE", defaultOutboxTableName),
	}
}

func (r *OutboxDynamoRepository) Enqueue(ctx context.Context, ev entities.OutboxEvent) (entities.OutboxEvent, error) {
	av, err := attributevalue.MarshalMap(toOutboxDocument(ev))
	if err != nil {
		return entities.OutboxEvent{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OutboxEvent{}, nil
		}
		return entities.OutboxEvent{}, err
	}
	return ev, nil
}

func (r *OutboxDynamoRepository) ListPending(ctx context.Context, limit int) ([]entities.OutboxEvent, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(outboxStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OutboxStatusPending)},
		},
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	var docs []outboxDocument
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &docs); err != nil {
		return nil, err
	}

	events := make([]entities.OutboxEvent, 0, len(docs))
	for _, doc := range docs {
		events = append(events, fromOutboxDocument(doc))
	}
	return events, nil
}

func (r *OutboxDynamoRepository) MarkSent(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, entities.OutboxStatusSent)
}

func (r *OutboxDynamoRepository) MarkFailed(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, entities.OutboxStatusFailed)
}

func (r *OutboxDynamoRepository) IncrementAttempts(ctx context.Context, id string) (entities.OutboxEvent, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #attempts = #attempts + :one, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#attempts":   "attempts",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OutboxEvent{}, nil
		}
		return entities.OutboxEvent{}, err
	}

	var doc outboxDocument
	if err := attributevalue.UnmarshalMap(out.Attributes, &doc); err != nil {
		return entities.OutboxEvent{}, err
	}
	return fromOutboxDocument(doc), nil
}

func (r *OutboxDynamoRepository) setStatus(ctx context.Context, id string, status entities.OutboxStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":now":    &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return err
}

func toOutboxDocument(ev entities.OutboxEvent) outboxDocument {
	return outboxDocument{
		ID:          ev.ID,
		EntityType:  ev.EntityType,
		EntityID:    ev.EntityID,
		Type:        string(ev.Type),
		RecipientID: ev.RecipientID,
		Scope:       string(ev.Scope),
		Title:       ev.Title,
		Body:        ev.Body,
		Status:      string(ev.Status),
		Attempts:    ev.Attempts,
		CreatedAt:   formatTime(ev.CreatedAt),
		UpdatedAt:   formatTime(ev.UpdatedAt),
	}
}

func fromOutboxDocument(doc outboxDocument) entities.OutboxEvent {
	return entities.OutboxEvent{
		ID:          doc.ID,
		EntityType:  doc.EntityType,
		EntityID:    doc.EntityID,
		Type:        entities.NotificationType(doc.Type),
		RecipientID: doc.RecipientID,
		Scope:       entities.RecipientScope(doc.Scope),
		Title:       doc.Title,
		Body:        doc.Body,
		Status:      entities.OutboxStatus(doc.Status),
		Attempts:    doc.Attempts,
		CreatedAt:   parseTime(doc.CreatedAt),
		UpdatedAt:   parseTime(doc.UpdatedAt),
	}
}
