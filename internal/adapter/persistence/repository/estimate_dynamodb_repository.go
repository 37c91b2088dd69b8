package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID           string `dynamodbav:"id"`
	CustomerID   string `dynamodbav:"customer_id"`
	Service      string `dynamodbav:"service"`
	Status       string `dynamodbav:"status"`
	FinalPrice   string `dynamodbav:"final_price"`
	RulesVersion string `dynamodbav:"rules_version"`
	InputHash    string `dynamodbav:"input_hash"`
	ResultHash   string `dynamodbav:"result_hash"`
	ResultJSON   string `dynamodbav:"result_json"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// EstimateDynamoRepository persists calculated estimates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The full EstimateResult is stored as JSON in result_json so the hashes can
// be recomputed from the stored record.
type EstimateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb dynamoAPI, tableName string) *EstimateDynamoRepository {
	if tableName == "" {
		tableName = defaultEstimatesTableName
	}
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EstimateRecord{}, err
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
		return entities.EstimateRecord{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateRecord{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it)
}

// UpdateStatusByID sets the status only while the stored status is still
// from. A missing record or a lost race returns an empty record.
func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.EstimateRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimateRecord{}, nil
		}
		return entities.EstimateRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateRecord{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.EstimateRecord) (estimateItem, error) {
	result, err := json.Marshal(e.Result)
	if err != nil {
		return estimateItem{}, fmt.Errorf("marshal estimate result: %w", err)
	}
	return estimateItem{
		ID:           e.ID,
		CustomerID:   e.CustomerID,
		Service:      string(e.Service),
		Status:       string(e.Status),
		FinalPrice:   floatToString(e.FinalPrice),
		RulesVersion: e.RulesVersion,
		InputHash:    e.InputHash,
		ResultHash:   e.ResultHash,
		ResultJSON:   string(result),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.EstimateRecord, error) {
	var result entities.EstimateResult
	if it.ResultJSON != "" {
		if err := json.Unmarshal([]byte(it.ResultJSON), &result); err != nil {
			return entities.EstimateRecord{}, fmt.Errorf("decode stored result %s: %w", it.ID, err)
		}
	}
	price, _ := strconv.ParseFloat(it.FinalPrice, 64)
	return entities.EstimateRecord{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		Service:      entities.ServiceType(it.Service),
		Status:       entities.QuoteStatus(it.Status),
		FinalPrice:   price,
		RulesVersion: it.RulesVersion,
		InputHash:    it.InputHash,
		ResultHash:   it.ResultHash,
		Result:       result,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}, nil
}
