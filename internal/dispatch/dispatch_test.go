package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperline/records-api/internal/record"
)

var postsSchema = record.Schema{
	Collection: "posts",
	Fields:     []string{"title", "description"},
}

// fakeStore records which operations were invoked and returns canned data.
type fakeStore struct {
	calls []string

	records []record.Record
	get     *record.Record
	err     error
}

func (f *fakeStore) List(ctx context.Context) ([]record.Record, error) {
	f.calls = append(f.calls, "list")
	return f.records, f.err
}

func (f *fakeStore) Get(ctx context.Context, id string) (*record.Record, error) {
	f.calls = append(f.calls, "get "+id)
	return f.get, f.err
}

func (f *fakeStore) Put(ctx context.Context, rec record.Record) error {
	f.calls = append(f.calls, "put "+rec.ID)
	return f.err
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return f.err
}

func newTestDispatcher(store Store) *Dispatcher {
	return New(store, postsSchema, "", nil)
}

func TestDispatch_List(t *testing.T) {
	store := &fakeStore{records: []record.Record{
		{ID: "1", Attrs: map[string]any{"title": "a"}},
		{ID: "2", Attrs: map[string]any{"title": "b"}},
	}}
	d := newTestDispatcher(store)

	resp := d.Dispatch(context.Background(), Request{Method: "GET", Resource: "/posts"})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"list"}, store.calls)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0]["id"])
	assert.Equal(t, "a", got[0]["title"])
}

func TestDispatch_GetOne(t *testing.T) {
	rec := record.Record{ID: "1", Attrs: map[string]any{"title": "a"}}
	store := &fakeStore{get: &rec}
	d := newTestDispatcher(store)

	resp := d.Dispatch(context.Background(), Request{
		Method:         "GET",
		Resource:       "/posts/{id}",
		PathParameters: map[string]string{"id": "1"},
	})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"get 1"}, store.calls)
	assert.JSONEq(t, `{"id":"1","title":"a"}`, resp.Body)
}

func TestDispatch_GetOne_Absent(t *testing.T) {
	// A miss is not an error: status 200 with a null body.
	store := &fakeStore{}
	d := newTestDispatcher(store)

	resp := d.Dispatch(context.Background(), Request{
		Method:         "GET",
		Resource:       "/posts/{id}",
		PathParameters: map[string]string{"id": "404"},
	})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "null", resp.Body)
}

func TestDispatch_Put(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(store)

	resp := d.Dispatch(context.Background(), Request{
		Method:   "PUT",
		Resource: "/posts",
		Body:     `{"id":"1","title":"a","description":"b"}`,
	})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"put 1"}, store.calls)
	assert.Equal(t, `"Put record 1"`, resp.Body)
}

func TestDispatch_Put_MalformedBody(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(store)

	resp := d.Dispatch(context.Background(), Request{
		Method:   "PUT",
		Resource: "/posts",
		Body:     `{"id":`,
	})

	assert.Equal(t, 400, resp.StatusCode)
	assert.Empty(t, store.calls, "a malformed body must not reach the store")

	var msg string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &msg))
	assert.NotEmpty(t, msg)
}

func TestDispatch_Delete(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(store)

	resp := d.Dispatch(context.Background(), Request{
		Method:         "DELETE",
		Resource:       "/posts/{id}",
		PathParameters: map[string]string{"id": "404"},
	})

	// Delete is idempotent: a non-existent id still confirms.
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"delete 404"}, store.calls)
	assert.Equal(t, `"Deleted record 404"`, resp.Body)
}

func TestDispatch_UnsupportedRoute(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		resource string
	}{
		{"unknown method", "PATCH", "/posts"},
		{"unknown collection", "GET", "/users"},
		{"post on item", "POST", "/posts/{id}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			d := newTestDispatcher(store)

			resp := d.Dispatch(context.Background(), Request{Method: tt.method, Resource: tt.resource})

			assert.Equal(t, 400, resp.StatusCode)
			assert.Empty(t, store.calls)

			var msg string
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &msg))
			assert.Equal(t, `Unsupported route: "`+tt.method+` `+tt.resource+`"`, msg)
		})
	}
}

func TestDispatch_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("table unavailable")}
	d := newTestDispatcher(store)

	resp := d.Dispatch(context.Background(), Request{Method: "GET", Resource: "/posts"})

	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, `"table unavailable"`, resp.Body)
}

func TestDispatch_BodyIsAlwaysAJSONString(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(store)

	requests := []Request{
		{Method: "GET", Resource: "/posts"},
		{Method: "GET", Resource: "/posts/{id}", PathParameters: map[string]string{"id": "1"}},
		{Method: "PUT", Resource: "/posts", Body: `{"id":"1"}`},
		{Method: "PUT", Resource: "/posts", Body: `oops`},
		{Method: "DELETE", Resource: "/posts/{id}", PathParameters: map[string]string{"id": "1"}},
		{Method: "PATCH", Resource: "/posts"},
	}

	for _, req := range requests {
		resp := d.Dispatch(context.Background(), req)
		assert.True(t, json.Valid([]byte(resp.Body)), "body %q is not JSON", resp.Body)
	}
}

func TestDispatch_HeadersOnEveryResponse(t *testing.T) {
	store := &fakeStore{}
	d := New(store, postsSchema, "https://example.com", nil)

	ok := d.Dispatch(context.Background(), Request{Method: "GET", Resource: "/posts"})
	failed := d.Dispatch(context.Background(), Request{Method: "PATCH", Resource: "/posts"})

	for _, resp := range []Response{ok, failed} {
		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
		assert.Equal(t, "https://example.com", resp.Headers["Access-Control-Allow-Origin"])
	}
}

func TestDispatch_DefaultOriginIsWildcard(t *testing.T) {
	d := newTestDispatcher(&fakeStore{})

	resp := d.Dispatch(context.Background(), Request{Method: "GET", Resource: "/posts"})

	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
}
