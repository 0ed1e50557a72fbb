// This file contains IAM resources: the Lambda execution role and its
// inline policies.
package deploy

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/iam"
)

// ----------------------------------------------------------------------------
// Lambda Execution Role
// ----------------------------------------------------------------------------

// LambdaAssumeRoleStatement allows the Lambda service to assume this role.
var LambdaAssumeRoleStatement = PolicyStatement{
	Effect:    "Allow",
	Principal: ServicePrincipal{"lambda.amazonaws.com"},
	Action:    "sts:AssumeRole",
}

// LambdaAssumeRolePolicy is the trust policy for the Lambda execution role.
var LambdaAssumeRolePolicy = PolicyDocument{
	Version:   "2012-10-17",
	Statement: []any{LambdaAssumeRoleStatement},
}

// LambdaLogsStatement allows the handlers to write CloudWatch logs.
var LambdaLogsStatement = PolicyStatement{
	Effect: "Allow",
	Action: []any{
		"logs:CreateLogGroup",
		"logs:CreateLogStream",
		"logs:PutLogEvents",
	},
	Resource: "arn:aws:logs:*:*:*",
}

// LambdaLogsPolicy is the inline policy for CloudWatch logging.
var LambdaLogsPolicy = iam.Role_Policy{
	PolicyName: "lambda-logs",
	PolicyDocument: PolicyDocument{
		Version:   "2012-10-17",
		Statement: []any{LambdaLogsStatement},
	},
}

// RecordTableStatement allows exactly the four record operations the
// handlers perform, on the two record tables.
var RecordTableStatement = PolicyStatement{
	Effect: "Allow",
	Action: []any{
		"dynamodb:Scan",
		"dynamodb:GetItem",
		"dynamodb:PutItem",
		"dynamodb:DeleteItem",
	},
	Resource: []any{
		attr("PostsTable", "Arn"),
		attr("ItemsTable", "Arn"),
	},
}

// RecordTablePolicy is the inline policy for table access.
var RecordTablePolicy = iam.Role_Policy{
	PolicyName: "record-table-access",
	PolicyDocument: PolicyDocument{
		Version:   "2012-10-17",
		Statement: []any{RecordTableStatement},
	},
}

// LambdaExecutionRole is the IAM role both handlers run as.
var LambdaExecutionRole = iam.Role{
	RoleName:                 Sub{String: "${AWS::StackName}-lambda-role"},
	AssumeRolePolicyDocument: LambdaAssumeRolePolicy,
	Policies: []any{
		LambdaLogsPolicy,
		RecordTablePolicy,
	},
}
