package providers

import (
	"context"
	"fmt"
)

// RawRecord is one row exactly as the hosted data service returns it: column
// names with spaces and mixed case, values loosely typed. Never mutated after
// fetch.
type RawRecord map[string]interface{}

// Ordering orders a query by one remote column.
type Ordering struct {
	Column     string
	Descending bool
}

// Query describes one fetch against a named collection.
type Query struct {
	// Collection is the remote table name, spaces and all.
	Collection string

	// Columns to select; nil selects every column.
	Columns []string

	// Equals are ANDed equality predicates on named columns.
	Equals map[string]string

	// SearchAny is a case-insensitive substring predicate ORed across
	// SearchColumns. Both must be set together.
	SearchAny     string
	SearchColumns []string

	// OrderBy applies in sequence (primary, secondary, ...).
	OrderBy []Ordering
}

// DataProvider is the query interface over the hosted relational service.
type DataProvider interface {
	// FetchRecords returns every record matching the query, in the requested
	// order.
	FetchRecords(ctx context.Context, q Query) ([]RawRecord, error)

	// InsertRecord creates a record and returns its assigned id.
	InsertRecord(ctx context.Context, collection string, fields map[string]interface{}) (string, error)

	// UpdateRecord patches the record with the given id.
	UpdateRecord(ctx context.Context, collection, id string, fields map[string]interface{}) error

	// DeleteRecord removes the record with the given id.
	DeleteRecord(ctx context.Context, collection, id string) error
}

// ProviderError represents a data-service error with a stable code
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
