package s3

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/sievego/blobstore"
)

// ErrConcurrentModification is returned when a concurrent catalog write is
// detected.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// DDBClient is the interface for the DynamoDB operations the catalog uses.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Catalog tracks the current snapshot per grid in DynamoDB, providing the
// atomic compare-and-swap semantics S3 lacks. Each commit writes a new,
// monotonically increasing version under the grid's partition key with a
// conditional put, so concurrent publishers cannot silently overwrite each
// other.
//
// Table schema:
//   - Partition key: grid (string) - the grid fingerprint
//   - Sort key: version (number) - monotonically increasing version
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name sievego-catalog \
//	  --attribute-definitions AttributeName=grid,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=grid,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type Catalog struct {
	client    DDBClient
	tableName string
}

// NewCatalog creates a snapshot catalog over the given table.
func NewCatalog(client DDBClient, tableName string) *Catalog {
	return &Catalog{client: client, tableName: tableName}
}

// Commit records snapshotKey as the next version for grid and returns the
// committed version number.
func (c *Catalog) Commit(ctx context.Context, grid, snapshotKey string) (int64, error) {
	current, _, err := c.latest(ctx, grid)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return 0, err
	}
	next := current + 1

	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]ddbtypes.AttributeValue{
			"grid":     &ddbtypes.AttributeValueMemberS{Value: grid},
			"version":  &ddbtypes.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)},
			"snapshot": &ddbtypes.AttributeValueMemberS{Value: snapshotKey},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var cfe *ddbtypes.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, ErrConcurrentModification
		}
		return 0, err
	}
	return next, nil
}

// Current returns the snapshot key and version last committed for grid.
// blobstore.ErrNotFound is returned when the grid has no snapshot yet.
func (c *Catalog) Current(ctx context.Context, grid string) (string, int64, error) {
	version, key, err := c.latest(ctx, grid)
	if err != nil {
		return "", 0, err
	}
	return key, version, nil
}

// latest queries the highest version for grid.
func (c *Catalog) latest(ctx context.Context, grid string) (int64, string, error) {
	out, err := c.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("grid = :g"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":g": &ddbtypes.AttributeValueMemberS{Value: grid},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", err
	}
	if len(out.Items) == 0 {
		return 0, "", blobstore.ErrNotFound
	}

	item := out.Items[0]
	versionAttr, ok := item["version"].(*ddbtypes.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("catalog: malformed version attribute")
	}
	version, err := strconv.ParseInt(versionAttr.Value, 10, 64)
	if err != nil {
		return 0, "", err
	}
	keyAttr, ok := item["snapshot"].(*ddbtypes.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("catalog: malformed snapshot attribute")
	}
	return version, keyAttr.Value, nil
}
