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
	defaultJobsTableName    = "jobs"
	jobsCustomerIDIndex     = "customer_id-index"
	jobsTradespersonIDIndex = "tradesperson_id-index"
)

type jobItem struct {
	ID             string `dynamodbav:"id"`
	CustomerID     string `dynamodbav:"customer_id"`
	TradespersonID string `dynamodbav:"tradesperson_id,omitempty"`
	Title          string `dynamodbav:"title"`
	Description    string `dynamodbav:"description,omitempty"`
	ServiceType    string `dynamodbav:"service_type"`
	Urgency        string `dynamodbav:"urgency,omitempty"`
	Location       string `dynamodbav:"location,omitempty"`
	Status         string `dynamodbav:"status"`

	AcceptedQuoteID    string `dynamodbav:"accepted_quote_id,omitempty"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`
	CancelledBy        string `dynamodbav:"cancelled_by,omitempty"`
	CancelledAt        string `dynamodbav:"cancelled_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: tradesperson_id-index (PK: tradesperson_id)
//
// It also knows the quotes table name because quote acceptance is a single
// TransactWriteItems spanning both tables.

type JobDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	quotesTable string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("JOBS_TABLE", defaultJobsTableName),
		quotesTable: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	return r.queryIndex(ctx, jobsCustomerIDIndex, "customer_id = :v", customerID)
}

func (r *JobDynamoRepository) ListByTradespersonID(ctx context.Context, tradespersonID string) ([]entities.Job, error) {
	return r.queryIndex(ctx, jobsTradespersonIDIndex, "tradesperson_id = :v", tradespersonID)
}

func (r *JobDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

// TransitionStatus is the compare-and-swap every status change rides on: the
// update only lands if the stored status still equals from.
func (r *JobDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.JobStatus) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// Cancel moves the job to cancelled if it is still open or assigned,
// recording the actor and reason. Racing settlements lose or win cleanly:
// whichever conditional update lands first decides the terminal state.
func (r *JobDynamoRepository) Cancel(ctx context.Context, id, reason, cancelledBy string, at time.Time) (entities.Job, error) {
	now := at.UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:open, :assigned)"),
		UpdateExpression:    aws.String("SET #status = :cancelled, #reason = :reason, #by = :by, #at = :at, #updated_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#reason":     "cancellation_reason",
			"#by":         "cancelled_by",
			"#at":         "cancelled_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":open":      &types.AttributeValueMemberS{Value: string(entities.JobStatusOpen)},
			":assigned":  &types.AttributeValueMemberS{Value: string(entities.JobStatusAssigned)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.JobStatusCancelled)},
			":reason":    &types.AttributeValueMemberS{Value: reason},
			":by":        &types.AttributeValueMemberS{Value: cancelledBy},
			":at":        &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// AcceptQuote applies the whole acceptance as one TransactWriteItems: job
// open -> assigned with the winner recorded, winning quote pending ->
// accepted, every sibling pending -> rejected. DynamoDB cancels the entire
// transaction if any condition fails, so a crash or a racing writer can
// never leave some quotes rejected with the job still open.
func (r *JobDynamoRepository) AcceptQuote(ctx context.Context, jobID string, winning entities.Quote, siblingIDs []string, at time.Time) (bool, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: jobID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open"),
				UpdateExpression:    aws.String("SET #status = :assigned, #tp = :tp, #aq = :aq, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#tp":         "tradesperson_id",
					"#aq":         "accepted_quote_id",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":open":     &types.AttributeValueMemberS{Value: string(entities.JobStatusOpen)},
					":assigned": &types.AttributeValueMemberS{Value: string(entities.JobStatusAssigned)},
					":tp":       &types.AttributeValueMemberS{Value: winning.TradespersonID},
					":aq":       &types.AttributeValueMemberS{Value: winning.ID},
					":now":      &types.AttributeValueMemberS{Value: now},
				},
			},
		},
		{
			Update: r.quoteStatusUpdate(winning.ID, entities.QuoteStatusAccepted, now),
		},
	}
	for _, siblingID := range siblingIDs {
		items = append(items, types.TransactWriteItem{
			Update: r.quoteStatusUpdate(siblingID, entities.QuoteStatusRejected, now),
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *JobDynamoRepository) quoteStatusUpdate(quoteID string, to entities.QuoteStatus, now string) *types.Update {
	return &types.Update{
		TableName: aws.String(r.quotesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
			":to":      &types.AttributeValueMemberS{Value: string(to)},
			":now":     &types.AttributeValueMemberS{Value: now},
		},
	}
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		TradespersonID:     j.TradespersonID,
		Title:              j.Title,
		Description:        j.Description,
		ServiceType:        j.ServiceType,
		Urgency:            j.Urgency,
		Location:           j.Location,
		Status:             string(j.Status),
		AcceptedQuoteID:    j.AcceptedQuoteID,
		CancellationReason: j.CancellationReason,
		CancelledBy:        j.CancelledBy,
		CreatedAt:          j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if j.CancelledAt != nil {
		it.CancelledAt = j.CancelledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	j := entities.Job{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		TradespersonID:     it.TradespersonID,
		Title:              it.Title,
		Description:        it.Description,
		ServiceType:        it.ServiceType,
		Urgency:            it.Urgency,
		Location:           it.Location,
		Status:             entities.JobStatus(it.Status),
		AcceptedQuoteID:    it.AcceptedQuoteID,
		CancellationReason: it.CancellationReason,
		CancelledBy:        it.CancelledBy,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.CancelledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CancelledAt); err == nil {
			j.CancelledAt = &t
		}
	}
	return j
}
