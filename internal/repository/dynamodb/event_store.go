package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"

	"eventmanager/internal/domain"
)

type eventStore struct {
	client     DynamoDBAPI
	table      string
	projection expression.Expression
}

// NewEventStore returns an EventStore over the DynamoDB table named table, keyed by "id".
func NewEventStore(client DynamoDBAPI, table string) (domain.EventStore, error) {
	names := lo.Map(domain.SummaryAttributes, func(attr string, _ int) expression.NameBuilder {
		return expression.Name(attr)
	})
	projection, err := expression.NewBuilder().
		WithProjection(expression.NamesList(names[0], names[1:]...)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build projection: %w", err)
	}
	return &eventStore{client: client, table: table, projection: projection}, nil
}

func (s *eventStore) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

// eventDateAttr holds event_date as a number attribute carrying the exact
// submitted text. attributevalue skips the field by tag.
const eventDateAttr = "event_date"

// marshalItem encodes v (an Event or EventSummary) and adds its event_date.
func marshalItem(v any, date json.Number) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, err
	}
	if date != "" {
		item[eventDateAttr] = &types.AttributeValueMemberN{Value: date.String()}
	}
	return item, nil
}

// itemEventDate reads event_date back. Items without a number attribute yield "".
func itemEventDate(item map[string]types.AttributeValue) json.Number {
	if n, ok := item[eventDateAttr].(*types.AttributeValueMemberN); ok {
		return json.Number(n.Value)
	}
	return ""
}

func (s *eventStore) Put(ctx context.Context, e *domain.Event) error {
	item, err := marshalItem(e, e.EventDate)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	_, err = s.client.PutItem(ctx, &awsdynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// Scan reads the whole table, following LastEvaluatedKey across 1 MB pages.
func (s *eventStore) Scan(ctx context.Context) ([]domain.EventSummary, error) {
	events := make([]domain.EventSummary, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &awsdynamodb.ScanInput{
			TableName:                aws.String(s.table),
			ProjectionExpression:     s.projection.Projection(),
			ExpressionAttributeNames: s.projection.Names(),
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		for _, item := range out.Items {
			var e domain.EventSummary
			if err := attributevalue.UnmarshalMap(item, &e); err != nil {
				return nil, fmt.Errorf("unmarshal scan item: %w", err)
			}
			e.EventDate = itemEventDate(item)
			events = append(events, e)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return events, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (s *eventStore) Get(ctx context.Context, id string) (*domain.Event, error) {
	out, err := s.client.GetItem(ctx, &awsdynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrNotFound
	}
	var e domain.Event
	if err := attributevalue.UnmarshalMap(out.Item, &e); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	e.EventDate = itemEventDate(out.Item)
	return &e, nil
}

func (s *eventStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &awsdynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(id),
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
