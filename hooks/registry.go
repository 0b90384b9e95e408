package hooks

import (
	"context"
	"errors"
	"sync"
)

// Error values for consistent error handling by callers.
var (
	ErrNilFilter   = errors.New("nil filter")
	ErrInvalidName = errors.New("invalid filter name")
)

// Registry holds the filters registered with a host. Registration happens
// at startup; application happens on every indexing and search request.
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	content []namedContentFilter
	search  []namedSearchFilter
}

type namedContentFilter struct {
	name   string
	filter ContentFilter
}

type namedSearchFilter struct {
	name   string
	filter SearchFilter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterContent registers a content filter under name. Filters apply in
// registration order; registering an existing name replaces the filter
// in place.
func (r *Registry) RegisterContent(name string, f ContentFilter) error {
	if name == "" {
		return ErrInvalidName
	}
	if f == nil {
		return ErrNilFilter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, nf := range r.content {
		if nf.name == name {
			r.content[i].filter = f
			return nil
		}
	}
	r.content = append(r.content, namedContentFilter{name: name, filter: f})
	return nil
}

// RegisterSearch registers a search filter under name, with the same
// ordering and replacement semantics as RegisterContent.
func (r *Registry) RegisterSearch(name string, f SearchFilter) error {
	if name == "" {
		return ErrInvalidName
	}
	if f == nil {
		return ErrNilFilter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, nf := range r.search {
		if nf.name == name {
			r.search[i].filter = f
			return nil
		}
	}
	r.search = append(r.search, namedSearchFilter{name: name, filter: f})
	return nil
}

// ApplyContent runs content through every registered content filter in
// registration order and returns the result. With no filters registered it
// is the identity.
func (r *Registry) ApplyContent(ctx context.Context, content, docID string) string {
	r.mu.RLock()
	filters := make([]ContentFilter, len(r.content))
	for i, nf := range r.content {
		filters[i] = nf.filter
	}
	r.mu.RUnlock()

	for _, f := range filters {
		content = f.FilterContent(ctx, content, docID)
	}
	return content
}

// OpenSearch opens one session per registered search filter and groups them
// for a single request. The returned Search must not outlive the request.
func (r *Registry) OpenSearch() *Search {
	r.mu.RLock()
	sessions := make([]SearchSession, len(r.search))
	for i, nf := range r.search {
		sessions[i] = nf.filter.NewSession()
	}
	r.mu.RUnlock()

	return &Search{sessions: sessions}
}

// Search groups the per-request sessions of all registered search filters.
type Search struct {
	sessions []SearchSession
}

// ApplyQuery runs params through every session in registration order.
func (s *Search) ApplyQuery(ctx context.Context, params QueryParams) QueryParams {
	for _, sess := range s.sessions {
		params = sess.FilterQuery(ctx, params)
	}
	return params
}

// ApplyHighlightPattern runs the default pattern through every session in
// registration order, feeding each session the previous result.
func (s *Search) ApplyHighlightPattern(defaultPattern, term string) string {
	pattern := defaultPattern
	for _, sess := range s.sessions {
		pattern = sess.FilterHighlightPattern(pattern, term)
	}
	return pattern
}
