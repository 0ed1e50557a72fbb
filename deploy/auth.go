// This file contains the Cognito user pool and the API Gateway authorizer
// protecting the items routes.
package deploy

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/apigateway"
	"github.com/lex00/wetwire-aws-go/resources/cognito"
)

// ----------------------------------------------------------------------------
// User Pool
// ----------------------------------------------------------------------------

// UserPool holds the accounts allowed to write items records.
var UserPool = cognito.UserPool{
	UserPoolName:           Sub{String: "${AWS::StackName}-users"},
	UsernameAttributes:     []any{"email"},
	AutoVerifiedAttributes: []any{"email"},
}

// UserPoolClient is the app client the API callers authenticate through.
var UserPoolClient = cognito.UserPoolClient{
	ClientName: Sub{String: "${AWS::StackName}-api-client"},
	UserPoolId: UserPool,
	ExplicitAuthFlows: []any{
		"ALLOW_USER_PASSWORD_AUTH",
		"ALLOW_REFRESH_TOKEN_AUTH",
	},
}

// ----------------------------------------------------------------------------
// API Authorizer
// ----------------------------------------------------------------------------

// ItemsAuthorizer validates Cognito tokens on the protected items methods.
var ItemsAuthorizer = apigateway.Authorizer{
	RestApiId:      RecordsAPI,
	Name:           "items-cognito",
	Type_:          "COGNITO_USER_POOLS",
	IdentitySource: "method.request.header.Authorization",
	ProviderARNs:   []any{attr("UserPool", "Arn")},
}
