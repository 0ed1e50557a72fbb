// Package store persists records in a single DynamoDB table keyed by id.
package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"github.com/copperline/records-api/internal/record"
)

// DynamoAPI is the subset of the DynamoDB client the store uses.
// *dynamodb.Client satisfies it.
type DynamoAPI interface {
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store executes the four record operations against one fixed table.
// The client handle is stateless and shared across invocations.
type Store struct {
	api   DynamoAPI
	table string
}

// New returns a store bound to the given table.
func New(api DynamoAPI, table string) *Store {
	return &Store{api: api, table: table}
}

// List returns every record in the table. Order is whatever the scan
// returns; it is not guaranteed.
func (s *Store) List(ctx context.Context) ([]record.Record, error) {
	out, err := s.api.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan records")
	}

	recs := make([]record.Record, 0, len(out.Items))
	for _, item := range out.Items {
		rec, err := decodeItem(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Get returns the record with the given id, or nil if it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*record.Record, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(id),
	})
	if err != nil {
		return nil, errors.Wrap(err, "get record")
	}
	if out.Item == nil {
		return nil, nil
	}

	rec, err := decodeItem(out.Item)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Put writes the record, replacing any previous record with the same id.
func (s *Store) Put(ctx context.Context, rec record.Record) error {
	item, err := attributevalue.MarshalMap(rec.Item())
	if err != nil {
		return errors.Wrap(err, "encode record")
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	return errors.Wrap(err, "put record")
}

// Delete removes the record with the given id. Deleting an id that does not
// exist is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(id),
	})
	return errors.Wrap(err, "delete record")
}

func (s *Store) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		record.KeyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

func decodeItem(item map[string]types.AttributeValue) (record.Record, error) {
	var attrs map[string]any
	if err := attributevalue.UnmarshalMap(item, &attrs); err != nil {
		return record.Record{}, errors.Wrap(err, "decode record")
	}
	return record.FromItem(attrs), nil
}
