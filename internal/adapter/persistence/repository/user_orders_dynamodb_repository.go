package repository

import (
	"context"
	"fmt"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type embeddedOrder struct {
	orderDocument
	Superseded bool `dynamodbav:"superseded,omitempty"`
}

type userOrdersDocument struct {
	ID     string          `dynamodbav:"id"`
	Email  string          `dynamodbav:"email,omitempty"`
	Orders []embeddedOrder `dynamodbav:"orders"`
}

// UserOrdersDynamoRepository reads and writes orders embedded in user
// documents, the pre-migration representation.
//
// Lookups by order id have no index to lean on: the repository scans the
// users table page by page and searches each user's embedded list. That is
// the cost of keeping the legacy shape readable without a backfill.

type UserOrdersDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILegacyOrderRepository = (*UserOrdersDynamoRepository)(nil)

func NewUserOrdersDynamoRepository(ddb *dynamodb.Client) *UserOrdersDynamoRepository {
	return &UserOrdersDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserOrdersDynamoRepository) FindOrderByID(ctx context.Context, orderID string) (entities.LegacyOrderRecord, error) {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.LegacyOrderRecord{}, err
		}

		var users []userOrdersDocument
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &users); err != nil {
			return entities.LegacyOrderRecord{}, err
		}

		for _, u := range users {
			for _, emb := range u.Orders {
				if emb.ID != orderID {
					continue
				}
				return entities.LegacyOrderRecord{
					UserID:     u.ID,
					Order:      fromOrderDocument(emb.orderDocument),
					Superseded: emb.Superseded,
				}, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return entities.LegacyOrderRecord{}, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *UserOrdersDynamoRepository) UpdateEmbeddedOrder(ctx context.Context, userID string, o entities.Order) error {
	return r.rewriteOrder(ctx, userID, o.ID, func(emb *embeddedOrder) {
		superseded := emb.Superseded
		emb.orderDocument = toOrderDocument(o)
		emb.Superseded = superseded
	})
}

func (r *UserOrdersDynamoRepository) MarkOrderSuperseded(ctx context.Context, userID, orderID string) error {
	return r.rewriteOrder(ctx, userID, orderID, func(emb *embeddedOrder) {
		emb.Superseded = true
	})
}

// rewriteOrder loads the user's embedded list, applies mutate to the matching
// entry and writes the whole list back. Embedded lists are small per user, so
// a read-modify-write of the list beats maintaining a list-index expression.
func (r *UserOrdersDynamoRepository) rewriteOrder(ctx context.Context, userID, orderID string, mutate func(*embeddedOrder)) error {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if len(out.Item) == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	var u userOrdersDocument
	if err := attributevalue.UnmarshalMap(out.Item, &u); err != nil {
		return err
	}

	found := false
	for i := range u.Orders {
		if u.Orders[i].ID == orderID {
			mutate(&u.Orders[i])
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("order %s not embedded in user %s", orderID, userID)
	}

	ordersAV, err := attributevalue.MarshalList(u.Orders)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET #orders = :orders"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#orders": "orders",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":orders": &types.AttributeValueMemberL{Value: ordersAV},
		},
	})
	return err
}
