// Package pagination holds the limit/offset contract shared by every
// list endpoint.
package pagination

import (
	"errors"
	"net/http"
	"strconv"
)

// DefaultLimit applies when a list request omits the limit parameter.
const DefaultLimit = 50

var (
	ErrInvalidLimit  = errors.New("limit must be a non-negative integer")
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
)

// Params carries validated paging values into the service layer.
type Params struct {
	Limit  int
	Offset int
}

// Parse reads limit/offset query parameters, applying defaults and
// rejecting malformed or negative values. Shape errors here are client
// errors and map to 400 at the HTTP layer.
func Parse(r *http.Request) (Params, error) {
	p := Params{Limit: DefaultLimit, Offset: 0}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return Params{}, ErrInvalidLimit
		}
		p.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Params{}, ErrInvalidOffset
		}
		p.Offset = offset
	}
	return p, nil
}
