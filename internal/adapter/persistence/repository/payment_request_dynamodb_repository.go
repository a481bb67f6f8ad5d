package repository

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentRequestsTableName = "payment_requests"
	paymentRequestsUserIDIndex      = "user_id-index"
)

type orderItemDoc struct {
	ProductID    string `dynamodbav:"product_id"`
	Title        string `dynamodbav:"title"`
	Price        int64  `dynamodbav:"price"`
	Category     string `dynamodbav:"category"`
	ResourceType string `dynamodbav:"resource_type"`
	Quantity     int    `dynamodbav:"quantity"`
}

type paymentRequestItem struct {
	ID            string         `dynamodbav:"id"`
	UserID        string         `dynamodbav:"user_id"`
	UserName      string         `dynamodbav:"user_name"`
	UserEmail     string         `dynamodbav:"user_email"`
	Kind          string         `dynamodbav:"kind"`
	Amount        int64          `dynamodbav:"amount"`
	TransactionID string         `dynamodbav:"transaction_id"`
	SenderName    string         `dynamodbav:"sender_name"`
	SenderPhone   string         `dynamodbav:"sender_phone"`
	SubmittedAt   string         `dynamodbav:"submitted_at"`
	Status        string         `dynamodbav:"status"`
	Items         []orderItemDoc `dynamodbav:"items,omitempty"`
}

// PaymentRequestDynamoRepository is the DynamoDB request ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The status attribute is the only one ever updated, and only through a
// conditional write on its current value.

type PaymentRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRequestRepository = (*PaymentRequestDynamoRepository)(nil)

func NewPaymentRequestDynamoRepository(ddb *dynamodb.Client) *PaymentRequestDynamoRepository {
	return &PaymentRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_REQUESTS_TABLE", defaultPaymentRequestsTableName),
	}
}

func (r *PaymentRequestDynamoRepository) Create(ctx context.Context, p entities.PaymentRequest) (entities.PaymentRequest, error) {
	av, err := attributevalue.MarshalMap(toPaymentRequestItem(p))
	if err != nil {
		return entities.PaymentRequest{}, err
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
		return entities.PaymentRequest{}, err
	}
	return p, nil
}

func (r *PaymentRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	return paymentRequestFromAttributes(out.Item)
}

func (r *PaymentRequestDynamoRepository) List(ctx context.Context) ([]entities.PaymentRequest, error) {
	items, err := scanAll[paymentRequestItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromPaymentRequestItems(items), nil
}

func (r *PaymentRequestDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRequest, error) {
	items, err := queryIndex[paymentRequestItem](ctx, r.ddb, r.tableName, paymentRequestsUserIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return fromPaymentRequestItems(items), nil
}

// UpdateStatus moves the request from `from` to `to` in one conditional write.
func (r *PaymentRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.SubscriptionStatus) (entities.PaymentRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.PaymentRequest{}, nil
			}
			return entities.PaymentRequest{}, interfaces.ErrStatusConflict
		}
		return entities.PaymentRequest{}, err
	}
	return paymentRequestFromAttributes(out.Attributes)
}

func paymentRequestFromAttributes(av map[string]types.AttributeValue) (entities.PaymentRequest, error) {
	if len(av) == 0 {
		return entities.PaymentRequest{}, nil
	}
	var it paymentRequestItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.PaymentRequest{}, err
	}
	return fromPaymentRequestItem(it), nil
}

func toPaymentRequestItem(p entities.PaymentRequest) paymentRequestItem {
	it := paymentRequestItem{
		ID:            p.ID,
		UserID:        p.UserID,
		UserName:      p.UserName,
		UserEmail:     p.UserEmail,
		Kind:          string(p.Kind),
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		SenderName:    p.SenderName,
		SenderPhone:   p.SenderPhone,
		SubmittedAt:   formatTime(p.SubmittedAt),
		Status:        string(p.Status),
	}
	for _, item := range p.Items {
		it.Items = append(it.Items, orderItemDoc{
			ProductID:    item.ProductID,
			Title:        item.Title,
			Price:        item.Price,
			Category:     item.Category,
			ResourceType: string(item.ResourceType),
			Quantity:     item.Quantity,
		})
	}
	return it
}

func fromPaymentRequestItem(it paymentRequestItem) entities.PaymentRequest {
	p := entities.PaymentRequest{
		ID:            it.ID,
		UserID:        it.UserID,
		UserName:      it.UserName,
		UserEmail:     it.UserEmail,
		Kind:          entities.PaymentKind(it.Kind),
		Amount:        it.Amount,
		TransactionID: it.TransactionID,
		SenderName:    it.SenderName,
		SenderPhone:   it.SenderPhone,
		SubmittedAt:   parseTime(it.SubmittedAt),
		Status:        entities.SubscriptionStatus(it.Status),
	}
	for _, doc := range it.Items {
		p.Items = append(p.Items, entities.OrderItem{
			ProductID:    doc.ProductID,
			Title:        doc.Title,
			Price:        doc.Price,
			Category:     doc.Category,
			ResourceType: entities.ResourceType(doc.ResourceType),
			Quantity:     doc.Quantity,
		})
	}
	return p
}

func fromPaymentRequestItems(items []paymentRequestItem) []entities.PaymentRequest {
	out := make([]entities.PaymentRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentRequestItem(it))
	}
	return out
}
