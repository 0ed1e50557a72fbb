package dispatch

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// ProxyHandler is the function signature lambda.Start expects for API
// Gateway proxy integrations.
type ProxyHandler func(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// FromProxyRequest converts an API Gateway proxy event into a request
// descriptor. The resource template, not the concrete path, feeds the
// routing key.
func FromProxyRequest(ev events.APIGatewayProxyRequest) Request {
	return Request{
		Method:         ev.HTTPMethod,
		Resource:       ev.Resource,
		PathParameters: ev.PathParameters,
		Body:           ev.Body,
	}
}

// ProxyHandler returns the Lambda entry point for this dispatcher. Errors
// never propagate to the runtime; they are already folded into the
// response by Dispatch.
func (d *Dispatcher) ProxyHandler() ProxyHandler {
	return func(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp := d.Dispatch(ctx, FromProxyRequest(ev))
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Headers:    resp.Headers,
		}, nil
	}
}
