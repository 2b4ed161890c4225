// Package memory is a database.Client backed by maps. It applies where clauses,
// ordering and limits the way Firestore does for the operators the repositories
// use, which makes it suitable for handler and repository tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"seller-dashboard-api/internal/database"
	ierr "seller-dashboard-api/internal/errors"
	"seller-dashboard-api/internal/repository/ops"
)

type collection struct {
	docs  map[string]map[string]interface{}
	order []string // insertion order, used when a query has no OrderBy
}

type Client struct {
	mu          sync.RWMutex
	collections map[string]*collection
	unavailable bool
	latency     time.Duration
}

var _ database.Client = (*Client)(nil)

func New() *Client {
	return &Client{collections: make(map[string]*collection)}
}

// Set stores data under coll/id, replacing any previous document.
func (c *Client) Set(coll, id string, data map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	col, ok := c.collections[coll]
	if !ok {
		col = &collection{docs: make(map[string]map[string]interface{})}
		c.collections[coll] = col
	}
	if _, exists := col.docs[id]; !exists {
		col.order = append(col.order, id)
	}
	col.docs[id] = copyData(data)
}

// SetUnavailable makes every call fail with errors.Unavailable.
func (c *Client) SetUnavailable(unavailable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unavailable = unavailable
}

// SetLatency delays every call by d, or until the context is done.
func (c *Client) SetLatency(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latency = d
}

func (c *Client) wait(ctx context.Context) error {
	c.mu.RLock()
	latency, unavailable := c.latency, c.unavailable
	c.mu.RUnlock()

	if latency > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ierr.Unavailable, ctx.Err())
		case <-time.After(latency):
		}
	}

	if unavailable {
		return fmt.Errorf("%w: memory client is offline", ierr.Unavailable)
	}
	return nil
}

func (c *Client) Query(ctx context.Context, q database.Query) ([]database.Document, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]database.Document, 0)
	col, ok := c.collections[q.Collection]
	if !ok {
		return docs, nil
	}

	for _, id := range col.order {
		data := col.docs[id]
		match, err := matches(data, q)
		if err != nil {
			return nil, err
		}
		if match {
			docs = append(docs, database.Document{ID: id, Data: copyData(data)})
		}
	}

	if q.OrderBy != nil {
		path, desc := q.OrderBy.Path, q.OrderBy.Direction == database.Desc
		sort.SliceStable(docs, func(i, j int) bool {
			cmp, _ := compare(docs[i].Data[path], docs[j].Data[path])
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}

	return docs, nil
}

func (c *Client) GetDoc(ctx context.Context, coll, id string) (database.Document, error) {
	if err := c.wait(ctx); err != nil {
		return database.Document{}, err
	}

	if err := database.CheckDocID(id); err != nil {
		return database.Document{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	col, ok := c.collections[coll]
	if !ok {
		return database.Document{}, ierr.NotFound
	}
	data, ok := col.docs[id]
	if !ok {
		return database.Document{}, ierr.NotFound
	}

	return database.Document{ID: id, Data: copyData(data)}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.wait(ctx)
}

func (c *Client) Close() error {
	return nil
}

// matches reports whether data satisfies every where clause. Like Firestore, a
// document lacking the OrderBy field is excluded from an ordered query.
func matches(data map[string]interface{}, q database.Query) (bool, error) {
	if q.OrderBy != nil {
		if _, ok := data[q.OrderBy.Path]; !ok {
			return false, nil
		}
	}

	for _, w := range q.Where {
		v, ok := data[w.Path]
		if !ok {
			return false, nil
		}

		cmp, comparable := compare(v, w.Value)
		var match bool
		switch w.Op {
		case ops.Equal:
			match = comparable && cmp == 0
		case ops.NotEqual:
			match = !comparable || cmp != 0
		case ops.Less:
			match = comparable && cmp < 0
		case ops.LessEqual:
			match = comparable && cmp <= 0
		case ops.Greater:
			match = comparable && cmp > 0
		case ops.GreaterEqual:
			match = comparable && cmp >= 0
		default:
			return false, fmt.Errorf("memory client: unsupported operator %q", w.Op)
		}

		if !match {
			return false, nil
		}
	}

	return true, nil
}

// compare orders two stored values. Values of different kinds are not
// comparable; they sort by kind so that ordering stays total.
func compare(a, b interface{}) (int, bool) {
	ka, kb := kind(a), kind(b)
	if ka != kb {
		return ka - kb, false
	}

	switch ka {
	case kindNumber:
		x, y := toFloat(a), toFloat(b)
		return cmpOrdered(x, y), true
	case kindString:
		return strings.Compare(a.(string), b.(string)), true
	case kindTime:
		x, y := a.(time.Time), b.(time.Time)
		switch {
		case x.Before(y):
			return -1, true
		case x.After(y):
			return 1, true
		}
		return 0, true
	case kindBool:
		x, y := a.(bool), b.(bool)
		if x == y {
			return 0, true
		}
		if !x {
			return -1, true
		}
		return 1, true
	}

	return 0, ka == kindNull
}

const (
	kindNull = iota
	kindBool
	kindNumber
	kindTime
	kindString
	kindOther
)

func kind(v interface{}) int {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case int, int32, int64, float32, float64:
		return kindNumber
	case time.Time:
		return kindTime
	case string:
		return kindString
	}
	return kindOther
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func cmpOrdered(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func copyData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
