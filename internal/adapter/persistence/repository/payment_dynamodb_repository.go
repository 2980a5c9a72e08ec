package repository

import (
	"context"
	"errors"
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsReferenceIndex   = "reference-index"
	paymentsJobIDIndex       = "job_id-index"
)

type paymentItem struct {
	ID               string `dynamodbav:"id"`
	JobID            string `dynamodbav:"job_id"`
	QuoteID          string `dynamodbav:"quote_id"`
	Type             string `dynamodbav:"type"`
	AmountMinor      int64  `dynamodbav:"amount_minor_units"`
	PlatformFeeMinor int64  `dynamodbav:"platform_fee_minor_units"`
	Reference        string `dynamodbav:"reference"`
	GatewayReference string `dynamodbav:"gateway_reference,omitempty"`
	Status           string `dynamodbav:"status"`
	FailureReason    string `dynamodbav:"failure_reason,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference-index (PK: reference)
//   - GSI: job_id-index (PK: job_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	return r.query(ctx, paymentsJobIDIndex, "job_id = :v", jobID)
}

func (r *PaymentDynamoRepository) ListByReference(ctx context.Context, reference string) ([]entities.Payment, error) {
	return r.query(ctx, paymentsReferenceIndex, "#reference = :v", reference)
}

func (r *PaymentDynamoRepository) query(ctx context.Context, index, keyCond, value string) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if index == paymentsReferenceIndex {
		in.ExpressionAttributeNames = map[string]string{"#reference": "reference"}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.PaymentStatus) (entities.Payment, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :from",
		"SET #status = :to, #updated_at = :now",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
	)
}

func (r *PaymentDynamoRepository) MarkFailed(ctx context.Context, id, reason string) (entities.Payment, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :authorized",
		"SET #status = :canceled, #reason = :reason, #updated_at = :now",
		map[string]string{"#status": "status", "#reason": "failure_reason"},
		map[string]types.AttributeValue{
			":authorized": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusAuthorized)},
			":canceled":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCanceled)},
			":reason":     &types.AttributeValueMemberS{Value: reason},
		},
	)
}

func (r *PaymentDynamoRepository) SetGatewayReference(ctx context.Context, id, gatewayRef string) (entities.Payment, error) {
	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #gref = :gref, #updated_at = :now",
		map[string]string{"#gref": "gateway_reference"},
		map[string]types.AttributeValue{
			":gref": &types.AttributeValueMemberS{Value: gatewayRef},
		},
	)
}

func (r *PaymentDynamoRepository) update(
	ctx context.Context,
	id, condition, updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.Payment, error) {
	values[":now"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		JobID:            p.JobID,
		QuoteID:          p.QuoteID,
		Type:             string(p.Type),
		AmountMinor:      p.AmountMinor,
		PlatformFeeMinor: p.PlatformFeeMinor,
		Reference:        p.Reference,
		GatewayReference: p.GatewayReference,
		Status:           string(p.Status),
		FailureReason:    p.FailureReason,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payment{
		ID:               it.ID,
		JobID:            it.JobID,
		QuoteID:          it.QuoteID,
		Type:             entities.PaymentType(it.Type),
		AmountMinor:      it.AmountMinor,
		PlatformFeeMinor: it.PlatformFeeMinor,
		Reference:        it.Reference,
		GatewayReference: it.GatewayReference,
		Status:           entities.PaymentStatus(it.Status),
		FailureReason:    it.FailureReason,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
