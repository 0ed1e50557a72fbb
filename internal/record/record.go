// Package record defines the stored record shape and the payload schema a
// handler variant is configured with.
package record

import (
	"encoding/json"
	"fmt"
)

// KeyAttribute is the partition key attribute name used by every table.
const KeyAttribute = "id"

// Schema describes one collection of records: the resource path segment the
// collection is served under and the payload fields copied from request
// bodies. The payload is business configuration, not code; two deployments
// of the same handler can carry different field sets.
type Schema struct {
	// Collection is the path segment, e.g. "posts" for /posts and /posts/{id}
	Collection string
	// Fields are the payload attribute names besides the key, e.g. title, description
	Fields []string
}

// Record is a single stored item. ID is the partition key; Attrs holds the
// payload fields as opaque values.
type Record struct {
	ID    string
	Attrs map[string]any
}

// ParseRecord decodes a request body into a Record. The body must be a JSON
// object with a non-empty string id; payload values named by the schema are
// copied verbatim, anything else is dropped.
func (s Schema) ParseRecord(body string) (Record, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return Record{}, err
	}

	id, ok := raw[KeyAttribute].(string)
	if !ok || id == "" {
		return Record{}, fmt.Errorf("body has no string %q attribute", KeyAttribute)
	}

	rec := Record{ID: id, Attrs: make(map[string]any, len(s.Fields))}
	for _, f := range s.Fields {
		if v, ok := raw[f]; ok {
			rec.Attrs[f] = v
		}
	}
	return rec, nil
}

// Item returns the flat attribute map stored in the table: the payload
// fields plus the key attribute.
func (r Record) Item() map[string]any {
	item := make(map[string]any, len(r.Attrs)+1)
	for k, v := range r.Attrs {
		item[k] = v
	}
	item[KeyAttribute] = r.ID
	return item
}

// FromItem rebuilds a Record from a stored attribute map.
func FromItem(item map[string]any) Record {
	rec := Record{Attrs: make(map[string]any, len(item))}
	for k, v := range item {
		if k == KeyAttribute {
			rec.ID, _ = v.(string)
			continue
		}
		rec.Attrs[k] = v
	}
	return rec
}

// MarshalJSON flattens the record to its stored shape,
// {"id": ..., <field>: <value>, ...}.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Item())
}
