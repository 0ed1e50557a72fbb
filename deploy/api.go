// Package deploy declares the records service deployment: an API Gateway
// REST API over two record collections, the Lambda handlers behind it, the
// DynamoDB tables, and the Cognito user pool protecting the items routes.
//
// Resources are package-level wetwire declarations; Stack() registers them
// under their logical IDs for template synthesis.
//
// This file contains API Gateway resources: REST API, resources, methods,
// and deployment.
package deploy

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/apigateway"
)

// ----------------------------------------------------------------------------
// REST API
// ----------------------------------------------------------------------------

// RecordsAPI is the REST API serving both record collections.
var RecordsAPI = apigateway.RestApi{
	Name:        Sub{String: "${AWS::StackName}-api"},
	Description: "CRUD API for posts and items records",
}

// ----------------------------------------------------------------------------
// API Resources (paths)
// ----------------------------------------------------------------------------

// PostsResource creates the /posts path on the REST API.
var PostsResource = apigateway.Resource{
	RestApiId: RecordsAPI,
	ParentId:  attr("RecordsAPI", "RootResourceId"),
	PathPart:  "posts",
}

// PostsIdResource creates the /posts/{id} path.
var PostsIdResource = apigateway.Resource{
	RestApiId: RecordsAPI,
	ParentId:  PostsResource,
	PathPart:  "{id}",
}

// ItemsResource creates the /items path on the REST API.
var ItemsResource = apigateway.Resource{
	RestApiId: RecordsAPI,
	ParentId:  attr("RecordsAPI", "RootResourceId"),
	PathPart:  "items",
}

// ItemsIdResource creates the /items/{id} path.
var ItemsIdResource = apigateway.Resource{
	RestApiId: RecordsAPI,
	ParentId:  ItemsResource,
	PathPart:  "{id}",
}

// ----------------------------------------------------------------------------
// Method Integrations
// ----------------------------------------------------------------------------

// PostsIntegration proxies every /posts method to the posts handler.
// Lambda proxy integrations always invoke with POST.
var PostsIntegration = apigateway.Method_Integration{
	Type_:                 "AWS_PROXY",
	IntegrationHttpMethod: "POST",
	Uri: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:apigateway:",
			AWS_REGION,
			":lambda:path/2015-03-31/functions/",
			attr("PostsFunction", "Arn"),
			"/invocations",
		},
	},
}

// ItemsIntegration proxies every /items method to the items handler.
var ItemsIntegration = apigateway.Method_Integration{
	Type_:                 "AWS_PROXY",
	IntegrationHttpMethod: "POST",
	Uri: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:apigateway:",
			AWS_REGION,
			":lambda:path/2015-03-31/functions/",
			attr("ItemsFunction", "Arn"),
			"/invocations",
		},
	},
}

// ----------------------------------------------------------------------------
// Posts Methods (no authorization)
// ----------------------------------------------------------------------------

// PostsListMethod serves GET /posts.
var PostsListMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        PostsResource,
	HttpMethod:        "GET",
	AuthorizationType: "NONE",
	Integration:       PostsIntegration,
}

// PostsPutMethod serves PUT /posts.
var PostsPutMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        PostsResource,
	HttpMethod:        "PUT",
	AuthorizationType: "NONE",
	Integration:       PostsIntegration,
}

// PostsGetMethod serves GET /posts/{id}.
var PostsGetMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        PostsIdResource,
	HttpMethod:        "GET",
	AuthorizationType: "NONE",
	Integration:       PostsIntegration,
}

// PostsDeleteMethod serves DELETE /posts/{id}.
var PostsDeleteMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        PostsIdResource,
	HttpMethod:        "DELETE",
	AuthorizationType: "NONE",
	Integration:       PostsIntegration,
}

// ----------------------------------------------------------------------------
// Items Methods (Cognito, except the open list route)
// ----------------------------------------------------------------------------

// ItemsListMethod serves GET /items. The list route stays open.
var ItemsListMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        ItemsResource,
	HttpMethod:        "GET",
	AuthorizationType: "NONE",
	Integration:       ItemsIntegration,
}

// ItemsPutMethod serves PUT /items for authenticated callers.
var ItemsPutMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        ItemsResource,
	HttpMethod:        "PUT",
	AuthorizationType: "COGNITO_USER_POOLS",
	AuthorizerId:      ItemsAuthorizer,
	Integration:       ItemsIntegration,
}

// ItemsGetMethod serves GET /items/{id} for authenticated callers.
var ItemsGetMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        ItemsIdResource,
	HttpMethod:        "GET",
	AuthorizationType: "COGNITO_USER_POOLS",
	AuthorizerId:      ItemsAuthorizer,
	Integration:       ItemsIntegration,
}

// ItemsDeleteMethod serves DELETE /items/{id} for authenticated callers.
var ItemsDeleteMethod = apigateway.Method{
	RestApiId:         RecordsAPI,
	ResourceId:        ItemsIdResource,
	HttpMethod:        "DELETE",
	AuthorizationType: "COGNITO_USER_POOLS",
	AuthorizerId:      ItemsAuthorizer,
	Integration:       ItemsIntegration,
}

// ----------------------------------------------------------------------------
// API Deployment
// ----------------------------------------------------------------------------

// RecordsDeployment deploys the REST API to the prod stage. It depends on
// every method; Stack() records that ordering.
var RecordsDeployment = apigateway.Deployment{
	RestApiId: RecordsAPI,
	StageName: "prod",
}
