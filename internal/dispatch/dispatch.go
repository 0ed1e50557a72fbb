// Package dispatch routes inbound API requests to record operations.
//
// The routing key is the HTTP method and the resource path template joined
// by a space, e.g. "GET /posts/{id}". Exactly four keys are supported per
// collection; anything else is an unsupported route. Every failure, whether
// a bad route, a malformed body or a store error, produces status 400 with
// the error text as body.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/copperline/records-api/internal/record"
)

// Store is the narrow persistence contract the dispatcher needs. Each
// operation is a single round trip; a failed call is surfaced, not retried.
type Store interface {
	List(ctx context.Context) ([]record.Record, error)
	Get(ctx context.Context, id string) (*record.Record, error)
	Put(ctx context.Context, rec record.Record) error
	Delete(ctx context.Context, id string) error
}

// Request is the inbound request descriptor.
type Request struct {
	// Method is the HTTP method, e.g. "GET"
	Method string
	// Resource is the path template, e.g. "/posts/{id}"
	Resource string
	// PathParameters carries the bound template variables; may be nil
	PathParameters map[string]string
	// Body is the raw request body; empty for GET and DELETE
	Body string
}

// Response is the outbound response descriptor. Body is always a
// JSON-encoded string, for errors as well as successes.
type Response struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// route is one of the four supported operations.
type route int

const (
	routeList route = iota
	routeGet
	routePut
	routeDelete
)

// Dispatcher routes requests for a single collection against a single
// store. It holds no per-request state.
type Dispatcher struct {
	store   Store
	schema  record.Schema
	headers map[string]string
	log     *zap.Logger
}

// New returns a dispatcher for the given schema. origin is the single
// allowed CORS origin; empty means "*". A nil logger disables logging.
func New(store Store, schema record.Schema, origin string, log *zap.Logger) *Dispatcher {
	if origin == "" {
		origin = "*"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		store:  store,
		schema: schema,
		headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  origin,
			"Access-Control-Allow-Headers": "Content-Type",
			"Access-Control-Allow-Methods": "OPTIONS,GET,PUT,DELETE",
		},
		log: log,
	}
}

// Dispatch routes one request and shapes the response. The body is
// serialized to a JSON string unconditionally, on the success path and the
// error path alike, and the fixed header map is attached to every response.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Response {
	key := req.Method + " " + req.Resource

	payload, err := d.handle(ctx, req, key)

	status := http.StatusOK
	if err != nil {
		status = http.StatusBadRequest
		payload = err.Error()
		d.log.Warn("request failed", zap.String("route", key), zap.Error(err))
	} else {
		d.log.Info("request handled", zap.String("route", key))
	}

	body, merr := json.Marshal(payload)
	if merr != nil {
		// Strings and records always encode; this means the store handed
		// back an unencodable payload value.
		status = http.StatusBadRequest
		body, _ = json.Marshal(merr.Error())
	}

	return Response{
		StatusCode: status,
		Body:       string(body),
		Headers:    d.headers,
	}
}

func (d *Dispatcher) handle(ctx context.Context, req Request, key string) (any, error) {
	r, err := d.routeFor(key)
	if err != nil {
		return nil, err
	}

	switch r {
	case routeList:
		return d.store.List(ctx)

	case routeGet:
		return d.store.Get(ctx, req.PathParameters["id"])

	case routePut:
		rec, err := d.schema.ParseRecord(req.Body)
		if err != nil {
			return nil, err
		}
		if err := d.store.Put(ctx, rec); err != nil {
			return nil, err
		}
		return fmt.Sprintf("Put record %s", rec.ID), nil

	default: // routeDelete
		id := req.PathParameters["id"]
		if err := d.store.Delete(ctx, id); err != nil {
			return nil, err
		}
		return fmt.Sprintf("Deleted record %s", id), nil
	}
}

// routeFor resolves a routing key to one of the four supported operations.
func (d *Dispatcher) routeFor(key string) (route, error) {
	collection := "/" + d.schema.Collection
	item := collection + "/{id}"

	switch key {
	case "GET " + collection:
		return routeList, nil
	case "GET " + item:
		return routeGet, nil
	case "PUT " + collection:
		return routePut, nil
	case "DELETE " + item:
		return routeDelete, nil
	default:
		return 0, fmt.Errorf("Unsupported route: %q", key)
	}
}
