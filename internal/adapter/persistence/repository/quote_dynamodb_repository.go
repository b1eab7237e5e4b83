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

const defaultQuotesTableName = "quotes"

type quoteItemDocument struct {
	ProductID   string `dynamodbav:"product_id,omitempty"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
}

type quoteMessageDocument struct {
	SenderID   string `dynamodbav:"sender_id"`
	SenderRole string `dynamodbav:"sender_role"`
	Text       string `dynamodbav:"text"`
	Timestamp  string `dynamodbav:"timestamp"`
}

type quoteDocument struct {
	ID             string                 `dynamodbav:"id"`
	RequesterID    string                 `dynamodbav:"requester_id"`
	RequesterEmail string                 `dynamodbav:"requester_email,omitempty"`
	Description    string                 `dynamodbav:"description"`
	Items          []quoteItemDocument    `dynamodbav:"items"`
	AdminResponse  string                 `dynamodbav:"admin_response,omitempty"`
	Status         string                 `dynamodbav:"status"`
	Messages       []quoteMessageDocument `dynamodbav:"messages"`
	Version        int64                  `dynamodbav:"version"`
	CreatedAt      string                 `dynamodbav:"created_at"`
	UpdatedAt      string                 `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quotations in DynamoDB with the same
// conditional-write discipline as orders: version-guarded puts, zero value
// on a lost race.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteDocument(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var doc quoteDocument
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteDocument(doc), nil
}

func (r *QuoteDynamoRepository) UpdateWithVersion(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteDocument(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func toQuoteDocument(q entities.Quote) quoteDocument {
	items := make([]quoteItemDocument, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, quoteItemDocument{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
		})
	}
	messages := make([]quoteMessageDocument, 0, len(q.Messages))
	for _, m := range q.Messages {
		messages = append(messages, quoteMessageDocument{
			SenderID:   m.SenderID,
			SenderRole: string(m.SenderRole),
			Text:       m.Text,
			Timestamp:  formatTime(m.Timestamp),
		})
	}
	return quoteDocument{
		ID:             q.ID,
		RequesterID:    q.RequesterID,
		RequesterEmail: q.RequesterEmail,
		Description:    q.Description,
		Items:          items,
		AdminResponse:  q.AdminResponse,
		Status:         string(q.Status),
		Messages:       messages,
		Version:        q.Version,
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromQuoteDocument(doc quoteDocument) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, entities.QuoteItem{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
		})
	}
	messages := make([]entities.QuoteMessage, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		messages = append(messages, entities.QuoteMessage{
			SenderID:   m.SenderID,
			SenderRole: entities.Role(m.SenderRole),
			Text:       m.Text,
			Timestamp:  parseTime(m.Timestamp),
		})
	}
	return entities.Quote{
		ID:             doc.ID,
		RequesterID:    doc.RequesterID,
		RequesterEmail: doc.RequesterEmail,
		Description:    doc.Description,
		Items:          items,
		AdminResponse:  doc.AdminResponse,
		Status:         entities.QuoteStatus(doc.Status),
		Messages:       messages,
		Version:        doc.Version,
		CreatedAt:      parseTime(doc.CreatedAt),
		UpdatedAt:      parseTime(doc.UpdatedAt),
	}
}
