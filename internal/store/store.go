package store

import "context"

// Collection names used by the service
const (
	CollectionProduct = "product"
	CollectionOrder   = "order"
)

// Document is a schema-less record as returned by the store. Every document
// carries its store-assigned identifier under the "id" key as a string.
// Documents do not travel past the repository layer; repositories decode them
// into typed models.
type Document map[string]interface{}

// Filter is an equality filter over document fields. An empty filter matches
// every document in the collection.
type Filter map[string]interface{}

// Store is the document store collaborator. Insert assigns and returns a
// unique opaque identifier; Query returns matching documents in store-defined
// order, capped at limit when limit > 0.
type Store interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)

	// Collections lists the collection names present in the store,
	// for the diagnostics endpoint.
	Collections(ctx context.Context) ([]string, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
