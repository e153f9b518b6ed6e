package ddb

import (
	"context"

	"vacstats/internal/types"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BlobStore implements ports.BlobStore on a DynamoDB table, one item per
// object key holding the raw document bytes. Alternative to the s3 backend
// for deployments without object storage.
type BlobStore struct {
	table string
	cli   *dynamodb.Client
}

type blobItem struct {
	PK          string `dynamodbav:"PK"`
	Data        []byte `dynamodbav:"data"`
	ContentType string `dynamodbav:"content_type"`
}

func NewBlobStore(table string, cli *dynamodb.Client) *BlobStore {
	createTableIfNotExists(cli, table)
	return &BlobStore{table: table, cli: cli}
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.table,
		ConsistentRead: awsBool(true),
		Key: map[string]ddbTypes.AttributeValue{
			"PK": &ddbTypes.AttributeValueMemberS{Value: pkBlob(key)},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, types.Err(types.ErrNotFound, nil, "ddb %s/%s", s.table, key)
	}
	var item blobItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, err
	}
	return item.Data, nil
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	av, err := attributevalue.MarshalMap(blobItem{
		PK:          pkBlob(key),
		Data:        data,
		ContentType: contentType,
	})
	if err != nil {
		return err
	}
	_, err = s.cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.table,
		Item:      av,
	})
	return err
}
