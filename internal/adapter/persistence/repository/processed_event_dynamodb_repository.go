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

const defaultProcessedEventsTableName = "processed_events"

type processedEventItem struct {
	EventID    string `dynamodbav:"event_id"`
	Reference  string `dynamodbav:"reference"`
	Outcome    string `dynamodbav:"outcome"`
	ReceivedAt string `dynamodbav:"received_at"`
}

// ProcessedEventDynamoRepository stores gateway event ids for webhook
// deduplication.
//
// Table requirements:
//   - PK: event_id (string)
//
// The conditional put is the dedup decision: first delivery wins the write,
// every redelivery fails the condition and is reported as already-processed.

type ProcessedEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcessedEventRepository = (*ProcessedEventDynamoRepository)(nil)

func NewProcessedEventDynamoRepository(ddb *dynamodb.Client) *ProcessedEventDynamoRepository {
	return &ProcessedEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROCESSED_EVENTS_TABLE", defaultProcessedEventsTableName),
	}
}

func (r *ProcessedEventDynamoRepository) Record(ctx context.Context, ev entities.ProcessedEvent) (bool, error) {
	av, err := attributevalue.MarshalMap(processedEventItem{
		EventID:    ev.EventID,
		Reference:  ev.Reference,
		Outcome:    ev.Outcome,
		ReceivedAt: ev.ReceivedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#event_id)"),
		ExpressionAttributeNames: map[string]string{
			"#event_id": "event_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ProcessedEventDynamoRepository) Delete(ctx context.Context, eventID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	return err
}
