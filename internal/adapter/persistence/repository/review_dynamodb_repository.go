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

const defaultReviewsTableName = "reviews"

type reviewItem struct {
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	CustomerID     string `dynamodbav:"customer_id"`
	TradespersonID string `dynamodbav:"tradesperson_id"`
	Rating         int    `dynamodbav:"rating"`
	Comment        string `dynamodbav:"comment,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists job reviews.
//
// Table requirements:
//   - PK: id (string, equals the job id)
//   - GSI "tradesperson_id-index": PK tradesperson_id (string)

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

// Create inserts the review only if none exists for the job. Returns false
// when the job was already reviewed.
func (r *ReviewDynamoRepository) Create(ctx context.Context, review entities.Review) (bool, error) {
	item, err := attributevalue.MarshalMap(reviewItem{
		ID:             review.ID,
		JobID:          review.JobID,
		CustomerID:     review.CustomerID,
		TradespersonID: review.TradespersonID,
		Rating:         review.Rating,
		Comment:        review.Comment,
		CreatedAt:      review.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ReviewDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return reviewFromItem(it), nil
}

func (r *ReviewDynamoRepository) ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("tradesperson_id-index"),
		KeyConditionExpression: aws.String("#tradesperson_id = :tradesperson_id"),
		ExpressionAttributeNames: map[string]string{
			"#tradesperson_id": "tradesperson_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tradesperson_id": &types.AttributeValueMemberS{Value: tradespersonID},
		},
	})
	if err != nil {
		return nil, err
	}

	reviews := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		reviews = append(reviews, reviewFromItem(it))
	}
	return reviews, nil
}

func reviewFromItem(it reviewItem) entities.Review {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Review{
		ID:             it.ID,
		JobID:          it.JobID,
		CustomerID:     it.CustomerID,
		TradespersonID: it.TradespersonID,
		Rating:         it.Rating,
		Comment:        it.Comment,
		CreatedAt:      createdAt,
	}
}
