// This file registers the declared resources under their logical IDs and
// defines the template parameters and outputs.
package deploy

import (
	wetwire "github.com/lex00/wetwire-aws-go"
	. "github.com/lex00/wetwire-aws-go/intrinsics"

	"github.com/copperline/records-api/internal/cfn"
)

// attr references an attribute of a resource declared in this package.
// The name must match the logical ID the resource is registered under.
func attr(name, attribute string) wetwire.AttrRef {
	return wetwire.AttrRef{Resource: name, Attribute: attribute}
}

// methodIDs are the logical IDs of every API method. The deployment must
// not be created before the methods exist.
var methodIDs = []string{
	"PostsListMethod",
	"PostsPutMethod",
	"PostsGetMethod",
	"PostsDeleteMethod",
	"ItemsListMethod",
	"ItemsPutMethod",
	"ItemsGetMethod",
	"ItemsDeleteMethod",
}

// Stack returns the full deployment, ready for template synthesis.
func Stack() *cfn.Stack {
	s := &cfn.Stack{
		Description: "Records service: REST API, Cognito user pool, DynamoDB tables, CRUD handlers",
		Parameters: map[string]cfn.Parameter{
			"CodeBucket": {
				Type:        "String",
				Description: "S3 bucket holding the handler build artifacts",
			},
			"PostsCodeKey": {
				Type:        "String",
				Description: "S3 key of the posts handler zip",
				Default:     "posts-handler.zip",
			},
			"ItemsCodeKey": {
				Type:        "String",
				Description: "S3 key of the items handler zip",
				Default:     "items-handler.zip",
			},
		},
		Outputs: map[string]cfn.Output{
			"ApiUrl": {
				Description: "Invoke URL of the prod stage",
				Value:       Sub{String: "https://${RecordsAPI}.execute-api.${AWS::Region}.amazonaws.com/prod"},
			},
			"PostsTableName": {
				Description: "Name of the posts table",
				Value:       Ref{LogicalName: "PostsTable"},
			},
			"ItemsTableName": {
				Description: "Name of the items table",
				Value:       Ref{LogicalName: "ItemsTable"},
			},
			"UserPoolId": {
				Description: "ID of the user pool protecting the items routes",
				Value:       Ref{LogicalName: "UserPool"},
			},
			"UserPoolClientId": {
				Description: "App client ID for API callers",
				Value:       Ref{LogicalName: "UserPoolClient"},
			},
		},
	}

	// Storage
	s.Add("PostsTable", PostsTable)
	s.Add("ItemsTable", ItemsTable)

	// Auth
	s.Add("UserPool", UserPool)
	s.Add("UserPoolClient", UserPoolClient)
	s.Add("ItemsAuthorizer", ItemsAuthorizer)

	// Security
	s.Add("LambdaExecutionRole", LambdaExecutionRole)

	// Compute
	s.Add("PostsFunction", PostsFunction)
	s.Add("PostsLogGroup", PostsLogGroup)
	s.Add("PostsInvokePermission", PostsInvokePermission)
	s.Add("ItemsFunction", ItemsFunction)
	s.Add("ItemsLogGroup", ItemsLogGroup)
	s.Add("ItemsInvokePermission", ItemsInvokePermission)

	// API
	s.Add("RecordsAPI", RecordsAPI)
	s.Add("PostsResource", PostsResource)
	s.Add("PostsIdResource", PostsIdResource)
	s.Add("ItemsResource", ItemsResource)
	s.Add("ItemsIdResource", ItemsIdResource)
	s.Add("PostsListMethod", PostsListMethod)
	s.Add("PostsPutMethod", PostsPutMethod)
	s.Add("PostsGetMethod", PostsGetMethod)
	s.Add("PostsDeleteMethod", PostsDeleteMethod)
	s.Add("ItemsListMethod", ItemsListMethod)
	s.Add("ItemsPutMethod", ItemsPutMethod)
	s.Add("ItemsGetMethod", ItemsGetMethod)
	s.Add("ItemsDeleteMethod", ItemsDeleteMethod)
	s.Add("RecordsDeployment", RecordsDeployment, methodIDs...)

	return s
}
