package store

// Op is a filter comparison operator.
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Filter compares one named document field against a value.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

// Query describes a container query: filters combined with AND, an
// optional sort key, and offset/limit pagination. Built fluently by the
// repositories and interpreted by each backend.
type Query struct {
	Filters    []Filter
	SortField  string
	Descending bool
	Limit      int
	Offset     int
}

// NewQuery returns an empty query matching every document.
func NewQuery() *Query {
	return &Query{}
}

// Where appends a filter. Filters always combine with logical AND.
func (q *Query) Where(field string, op Op, value interface{}) *Query {
	q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: value})
	return q
}

// OrderBy sets the sort key.
func (q *Query) OrderBy(field string, descending bool) *Query {
	q.SortField = field
	q.Descending = descending
	return q
}

// Page sets offset/limit slicing. A zero limit means unbounded.
func (q *Query) Page(limit, offset int) *Query {
	q.Limit = limit
	q.Offset = offset
	return q
}
