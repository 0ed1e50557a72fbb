// This file contains the DynamoDB tables backing the two collections.
package deploy

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/dynamodb"
)

// ----------------------------------------------------------------------------
// Record Tables
// ----------------------------------------------------------------------------

// RecordKeyAttribute declares the single string partition key every record
// table shares.
var RecordKeyAttribute = dynamodb.Table_AttributeDefinition{
	AttributeName: "id",
	AttributeType: "S",
}

// RecordKeySchema keys each table by id only; records have no sort key.
var RecordKeySchema = dynamodb.Table_KeySchema{
	AttributeName: "id",
	KeyType:       "HASH",
}

// PostsTable stores the posts records.
var PostsTable = dynamodb.Table{
	TableName:            Sub{String: "${AWS::StackName}-posts"},
	AttributeDefinitions: []any{RecordKeyAttribute},
	KeySchema:            []any{RecordKeySchema},
	BillingMode:          "PAY_PER_REQUEST",
}

// ItemsTable stores the items records.
var ItemsTable = dynamodb.Table{
	TableName:            Sub{String: "${AWS::StackName}-items"},
	AttributeDefinitions: []any{RecordKeyAttribute},
	KeySchema:            []any{RecordKeySchema},
	BillingMode:          "PAY_PER_REQUEST",
}
