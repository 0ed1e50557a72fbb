// This file contains the Lambda functions, their log groups, and the
// permissions that let API Gateway invoke them.
package deploy

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/lambda"
	"github.com/lex00/wetwire-aws-go/resources/logs"
)

// ----------------------------------------------------------------------------
// Posts Handler
// ----------------------------------------------------------------------------

// PostsFunctionCode points at the posts handler artifact. The bucket and
// key are template parameters so the same template deploys any build.
var PostsFunctionCode = lambda.Function_Code{
	S3Bucket: Ref{LogicalName: "CodeBucket"},
	S3Key:    Ref{LogicalName: "PostsCodeKey"},
}

// PostsEnvironment wires the posts handler to its table.
var PostsEnvironment = lambda.Function_Environment{
	Variables: Json{
		"TABLE_NAME":     PostsTable,
		"ALLOWED_ORIGIN": "*",
	},
}

// PostsFunction serves the /posts routes.
var PostsFunction = lambda.Function{
	FunctionName: Sub{String: "${AWS::StackName}-posts-handler"},
	Description:  "CRUD handler for the posts collection",
	Runtime:      "provided.al2023",
	Handler:      "bootstrap",
	Code:         PostsFunctionCode,
	Role:         attr("LambdaExecutionRole", "Arn"),
	Environment:  PostsEnvironment,
	Timeout:      10,
	MemorySize:   128,
}

// PostsLogGroup keeps the posts handler logs for two weeks.
var PostsLogGroup = logs.LogGroup{
	LogGroupName:    Sub{String: "/aws/lambda/${AWS::StackName}-posts-handler"},
	RetentionInDays: 14,
}

// PostsInvokePermission allows API Gateway to invoke the posts handler.
var PostsInvokePermission = lambda.Permission{
	FunctionName: attr("PostsFunction", "Arn"),
	Action:       "lambda:InvokeFunction",
	Principal:    "apigateway.amazonaws.com",
	SourceArn: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:execute-api:",
			AWS_REGION,
			":",
			AWS_ACCOUNT_ID,
			":",
			Ref{LogicalName: "RecordsAPI"},
			"/*",
		},
	},
}

// ----------------------------------------------------------------------------
// Items Handler
// ----------------------------------------------------------------------------

// ItemsFunctionCode points at the items handler artifact.
var ItemsFunctionCode = lambda.Function_Code{
	S3Bucket: Ref{LogicalName: "CodeBucket"},
	S3Key:    Ref{LogicalName: "ItemsCodeKey"},
}

// ItemsEnvironment wires the items handler to its table.
var ItemsEnvironment = lambda.Function_Environment{
	Variables: Json{
		"TABLE_NAME":     ItemsTable,
		"ALLOWED_ORIGIN": "*",
	},
}

// ItemsFunction serves the /items routes.
var ItemsFunction = lambda.Function{
	FunctionName: Sub{String: "${AWS::StackName}-items-handler"},
	Description:  "CRUD handler for the items collection",
	Runtime:      "provided.al2023",
	Handler:      "bootstrap",
	Code:         ItemsFunctionCode,
	Role:         attr("LambdaExecutionRole", "Arn"),
	Environment:  ItemsEnvironment,
	Timeout:      10,
	MemorySize:   128,
}

// ItemsLogGroup keeps the items handler logs for two weeks.
var ItemsLogGroup = logs.LogGroup{
	LogGroupName:    Sub{String: "/aws/lambda/${AWS::StackName}-items-handler"},
	RetentionInDays: 14,
}

// ItemsInvokePermission allows API Gateway to invoke the items handler.
var ItemsInvokePermission = lambda.Permission{
	FunctionName: attr("ItemsFunction", "Arn"),
	Action:       "lambda:InvokeFunction",
	Principal:    "apigateway.amazonaws.com",
	SourceArn: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:execute-api:",
			AWS_REGION,
			":",
			AWS_ACCOUNT_ID,
			":",
			Ref{LogicalName: "RecordsAPI"},
			"/*",
		},
	},
}
