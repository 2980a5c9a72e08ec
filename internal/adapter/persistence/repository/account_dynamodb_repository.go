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

const defaultAccountsTableName = "accounts"

type accountItem struct {
	ID               string `dynamodbav:"id"`
	DisplayName      string `dynamodbav:"display_name,omitempty"`
	Role             string `dynamodbav:"role"`
	Tier             string `dynamodbav:"tier,omitempty"`
	GatewayAccountID string `dynamodbav:"gateway_account_id,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// AccountDynamoRepository reads marketplace accounts. Account writes belong
// to the profile service; the core only consults role, tier and the gateway
// destination at charge time.
//
// Table requirements:
//   - PK: id (string)

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountDirectory = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, userID string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Account{
		ID:               it.ID,
		DisplayName:      it.DisplayName,
		Role:             entities.Role(it.Role),
		Tier:             entities.Tier(it.Tier),
		GatewayAccountID: it.GatewayAccountID,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
