package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryClient is the development fallback store. It keeps documents in
// process memory and interprets the same queries the Mongo backend
// executes, so services behave identically against either.
type MemoryClient struct {
	mu         sync.Mutex
	containers map[string]*memoryContainer
}

// NewMemoryClient constructs an empty in-memory store.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{containers: make(map[string]*memoryContainer)}
}

// Container implements Client.
func (c *MemoryClient) Container(name, partitionField string) Container {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.containers[name]; ok {
		return existing
	}
	container := &memoryContainer{
		partitionField: partitionField,
		docs:           make(map[string]bson.M),
	}
	c.containers[name] = container
	return container
}

// Backend implements Client.
func (c *MemoryClient) Backend() string { return "memory" }

type memoryContainer struct {
	mu             sync.RWMutex
	partitionField string
	docs           map[string]bson.M
}

func (m *memoryContainer) Create(ctx context.Context, doc interface{}) error {
	raw, err := toDocument(doc)
	if err != nil {
		return err
	}
	id, ok := raw["_id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("document has no string _id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = raw
	return nil
}

func (m *memoryContainer) Query(ctx context.Context, q *Query, out interface{}) error {
	m.mu.RLock()
	matched := m.evaluate(q)
	m.mu.RUnlock()

	return decodeAll(matched, out)
}

func (m *memoryContainer) Count(ctx context.Context, q *Query) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, doc := range m.docs {
		if matchesAll(doc, q.Filters) {
			total++
		}
	}
	return total, nil
}

func (m *memoryContainer) Upsert(ctx context.Context, id string, doc interface{}) error {
	raw, err := toDocument(doc)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = raw
	return nil
}

func (m *memoryContainer) Delete(ctx context.Context, id, partitionKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		return ErrNotFound
	}
	if pk, _ := doc[m.partitionField].(string); pk != partitionKey {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

// evaluate applies filters, sort and offset/limit under the read lock.
func (m *memoryContainer) evaluate(q *Query) []bson.M {
	matched := make([]bson.M, 0)
	for _, doc := range m.docs {
		if matchesAll(doc, q.Filters) {
			matched = append(matched, doc)
		}
	}

	if q.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			cmp, ok := compareValues(matched[i][q.SortField], matched[j][q.SortField])
			if !ok {
				return false
			}
			if q.Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if q.Offset > 0 {
		if q.Offset >= len(matched) {
			return nil
		}
		matched = matched[q.Offset:]
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched
}

func matchesAll(doc bson.M, filters []Filter) bool {
	for _, f := range filters {
		value, ok := doc[f.Field]
		if !ok {
			return false
		}
		cmp, comparable := compareValues(value, f.Value)
		if !comparable {
			return false
		}
		switch f.Op {
		case OpEq:
			if cmp != 0 {
				return false
			}
		case OpGte:
			if cmp < 0 {
				return false
			}
		case OpLte:
			if cmp > 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compareValues orders two document values. Times and numbers normalize
// to a common scale; strings compare lexically. Mixed kinds are not
// comparable.
func compareValues(a, b interface{}) (int, bool) {
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(sa, sb), true
	}

	fa, ok := toFloat(a)
	if !ok {
		return 0, false
	}
	fb, ok := toFloat(b)
	if !ok {
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	default:
		return 0, true
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case time.Time:
		return float64(n.UnixMilli()), true
	case primitive.DateTime:
		return float64(int64(n)), true
	default:
		return 0, false
	}
}

// toDocument round-trips a typed entity through bson so the interpreter
// sees the same field names and value kinds the Mongo backend stores.
func toDocument(doc interface{}) (bson.M, error) {
	bytes, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var raw bson.M
	if err := bson.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return raw, nil
}

// decodeAll materializes raw documents into out, a pointer to a slice of
// the entity type.
func decodeAll(docs []bson.M, out interface{}) error {
	slice := reflect.ValueOf(out)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a pointer to a slice, got %T", out)
	}
	elemType := slice.Elem().Type().Elem()

	result := reflect.MakeSlice(slice.Elem().Type(), 0, len(docs))
	for _, doc := range docs {
		bytes, err := bson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(bytes, elem.Interface()); err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Elem().Set(result)
	return nil
}
