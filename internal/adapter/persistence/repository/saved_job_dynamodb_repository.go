package repository

import (
	"context"
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSavedJobsTableName = "saved_jobs"

type savedJobItem struct {
	ID             string `dynamodbav:"id"`
	TradespersonID string `dynamodbav:"tradesperson_id"`
	JobID          string `dynamodbav:"job_id"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// SavedJobDynamoRepository persists saved-job list entries.
//
// Table requirements:
//   - PK: id (string, tradesperson_id + "#" + job_id)
//   - GSI "tradesperson_id-index": PK tradesperson_id (string)

type SavedJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISavedJobRepository = (*SavedJobDynamoRepository)(nil)

func NewSavedJobDynamoRepository(ddb *dynamodb.Client) *SavedJobDynamoRepository {
	return &SavedJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SAVED_JOBS_TABLE", defaultSavedJobsTableName),
	}
}

// Save upserts the entry. The composite key makes saving the same job twice
// a no-op.
func (r *SavedJobDynamoRepository) Save(ctx context.Context, saved entities.SavedJob) error {
	item, err := attributevalue.MarshalMap(savedJobItem{
		ID:             saved.ID,
		TradespersonID: saved.TradespersonID,
		JobID:          saved.JobID,
		CreatedAt:      saved.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SavedJobDynamoRepository) Delete(ctx context.Context, tradespersonID, jobID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.SavedJobID(tradespersonID, jobID)},
		},
	})
	return err
}

func (r *SavedJobDynamoRepository) ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.SavedJob, error) {
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

	saved := make([]entities.SavedJob, 0, len(out.Items))
	for _, raw := range out.Items {
		var it savedJobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		saved = append(saved, entities.SavedJob{
			ID:             it.ID,
			TradespersonID: it.TradespersonID,
			JobID:          it.JobID,
			CreatedAt:      createdAt,
		})
	}
	return saved, nil
}
