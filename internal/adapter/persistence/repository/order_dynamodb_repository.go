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

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	ProductID   string  `dynamodbav:"product_id"`
	ProductName string  `dynamodbav:"product_name"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Amount      float64 `dynamodbav:"amount"`
}

type orderStatusEntry struct {
	Status    string `dynamodbav:"status"`
	ActorID   string `dynamodbav:"actor_id"`
	ActorRole string `dynamodbav:"actor_role"`
	Note      string `dynamodbav:"note,omitempty"`
	Timestamp string `dynamodbav:"timestamp"`
}

type orderPaymentEntry struct {
	State     string `dynamodbav:"state"`
	Method    string `dynamodbav:"method"`
	ActorID   string `dynamodbav:"actor_id"`
	ActorRole string `dynamodbav:"actor_role"`
	Note      string `dynamodbav:"note,omitempty"`
	Timestamp string `dynamodbav:"timestamp"`
}

type orderAddress struct {
	Line1   string `dynamodbav:"line1,omitempty"`
	Line2   string `dynamodbav:"line2,omitempty"`
	City    string `dynamodbav:"city,omitempty"`
	Zip     string `dynamodbav:"zip,omitempty"`
	Country string `dynamodbav:"country,omitempty"`
}

type orderDocument struct {
	ID                string              `dynamodbav:"id"`
	CustomerID        string              `dynamodbav:"customer_id"`
	CustomerEmail     string              `dynamodbav:"customer_email,omitempty"`
	Items             []orderLineItem     `dynamodbav:"items"`
	TotalAmount       float64             `dynamodbav:"total_amount"`
	Status            string              `dynamodbav:"status"`
	PaymentState      string              `dynamodbav:"payment_state"`
	PaymentMethod     string              `dynamodbav:"payment_method"`
	CheckoutSessionID string              `dynamodbav:"checkout_session_id,omitempty"`
	ShippingAddress   orderAddress        `dynamodbav:"shipping_address"`
	StatusHistory     []orderStatusEntry  `dynamodbav:"status_history"`
	PaymentHistory    []orderPaymentEntry `dynamodbav:"payment_history"`
	Version           int64               `dynamodbav:"version"`
	CreatedAt         string              `dynamodbav:"created_at"`
	UpdatedAt         string              `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists canonical orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write is conditional: Create requires the id to be new, and
// UpdateWithVersion requires the stored version to match what the caller
// read. A failed condition comes back as a zero-value entity, never as an
// error, so the usecase can decide between conflict and retry semantics.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderDocument(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var doc orderDocument
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return entities.Order{}, err
	}
	return fromOrderDocument(doc), nil
}

func (r *OrderDynamoRepository) UpdateWithVersion(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderDocument(o))
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func toOrderDocument(o entities.Order) orderDocument {
	items := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	statusHistory := make([]orderStatusEntry, 0, len(o.StatusHistory))
	for _, e := range o.StatusHistory {
		statusHistory = append(statusHistory, orderStatusEntry{
			Status:    string(e.Status),
			ActorID:   e.ActorID,
			ActorRole: string(e.ActorRole),
			Note:      e.Note,
			Timestamp: formatTime(e.Timestamp),
		})
	}
	paymentHistory := make([]orderPaymentEntry, 0, len(o.PaymentHistory))
	for _, e := range o.PaymentHistory {
		paymentHistory = append(paymentHistory, orderPaymentEntry{
			State:     string(e.State),
			Method:    string(e.Method),
			ActorID:   e.ActorID,
			ActorRole: string(e.ActorRole),
			Note:      e.Note,
			Timestamp: formatTime(e.Timestamp),
		})
	}
	return orderDocument{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		CustomerEmail:     o.CustomerEmail,
		Items:             items,
		TotalAmount:       o.TotalAmount,
		Status:            string(o.Status),
		PaymentState:      string(o.PaymentState),
		PaymentMethod:     string(o.PaymentMethod),
		CheckoutSessionID: o.CheckoutSessionID,
		ShippingAddress: orderAddress{
			Line1:   o.ShippingAddress.Line1,
			Line2:   o.ShippingAddress.Line2,
			City:    o.ShippingAddress.City,
			Zip:     o.ShippingAddress.Zip,
			Country: o.ShippingAddress.Country,
		},
		StatusHistory:  statusHistory,
		PaymentHistory: paymentHistory,
		Version:        o.Version,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}

func fromOrderDocument(doc orderDocument) entities.Order {
	items := make([]entities.OrderItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, entities.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	statusHistory := make([]entities.StatusHistoryEntry, 0, len(doc.StatusHistory))
	for _, e := range doc.StatusHistory {
		statusHistory = append(statusHistory, entities.StatusHistoryEntry{
			Status:    entities.OrderStatus(e.Status),
			ActorID:   e.ActorID,
			ActorRole: entities.Role(e.ActorRole),
			Note:      e.Note,
			Timestamp: parseTime(e.Timestamp),
		})
	}
	paymentHistory := make([]entities.PaymentHistoryEntry, 0, len(doc.PaymentHistory))
	for _, e := range doc.PaymentHistory {
		paymentHistory = append(paymentHistory, entities.PaymentHistoryEntry{
			State:     entities.PaymentState(e.State),
			Method:    entities.PaymentMethod(e.Method),
			ActorID:   e.ActorID,
			ActorRole: entities.Role(e.ActorRole),
			Note:      e.Note,
			Timestamp: parseTime(e.Timestamp),
		})
	}
	return entities.Order{
		ID:                doc.ID,
		CustomerID:        doc.CustomerID,
		CustomerEmail:     doc.CustomerEmail,
		Items:             items,
		TotalAmount:       doc.TotalAmount,
		Status:            entities.OrderStatus(doc.Status),
		PaymentState:      entities.PaymentState(doc.PaymentState),
		PaymentMethod:     entities.PaymentMethod(doc.PaymentMethod),
		CheckoutSessionID: doc.CheckoutSessionID,
		ShippingAddress: entities.Address{
			Line1:   doc.ShippingAddress.Line1,
			Line2:   doc.ShippingAddress.Line2,
			City:    doc.ShippingAddress.City,
			Zip:     doc.ShippingAddress.Zip,
			Country: doc.ShippingAddress.Country,
		},
		StatusHistory:  statusHistory,
		PaymentHistory: paymentHistory,
		Version:        doc.Version,
		CreatedAt:      parseTime(doc.CreatedAt),
		UpdatedAt:      parseTime(doc.UpdatedAt),
	}
}
