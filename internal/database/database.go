package database

import (
	"context"
	"fmt"
	"strings"

	ierr "seller-dashboard-api/internal/errors"
	"seller-dashboard-api/internal/repository/filter"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

type OrderBy struct {
	Path      string
	Direction Direction
}

// Query describes a single read against one collection.
// A nil OrderBy leaves the result in the store's default order.
// A zero Limit means no cap.
type Query struct {
	Collection string
	Where      []filter.Where
	OrderBy    *OrderBy
	Limit      int
}

// Document is a stored record detached from the underlying driver.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Client is the read surface the repositories depend on. Implementations must be
// safe for concurrent use and must report failures with the internal/errors kinds.
type Client interface {
	Query(ctx context.Context, q Query) ([]Document, error)
	GetDoc(ctx context.Context, collection, id string) (Document, error)
	Ping(ctx context.Context) error
	Close() error
}

// maxDocIDBytes is Firestore's limit on a document id.
const maxDocIDBytes = 1500

// CheckDocID rejects ids Firestore would refuse: empty, containing "/", "." or
// "..", reserved "__name__" style ids and ids over 1500 bytes.
func CheckDocID(id string) error {
	switch {
	case id == "", id == ".", id == "..", strings.Contains(id, "/"):
	case len(id) > maxDocIDBytes:
		return fmt.Errorf("%w: document id longer than %d bytes", ierr.Invalid, maxDocIDBytes)
	case len(id) >= 4 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"):
	default:
		return nil
	}
	return fmt.Errorf("%w: document id %q", ierr.Invalid, id)
}
