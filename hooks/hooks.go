package hooks

import "context"

// QueryParams is the host's search-parameter structure. Q is the free-text
// query; the remaining fields pass through filters untouched unless a
// filter has reason to change them.
type QueryParams struct {
	Q    string
	Size int
	From int
}

// ContentFilter rewrites document content before the host indexes it.
// Implementations must always return a usable string; a filter that cannot
// improve the content returns it unchanged.
type ContentFilter interface {
	FilterContent(ctx context.Context, content, docID string) string
}

// SearchSession carries one request's query filtering and the state it
// produces for highlight filtering. Implementations are not required to be
// safe for concurrent use; a session belongs to a single request.
type SearchSession interface {
	// FilterQuery rewrites the search parameters. Called at most once
	// per session, before the host executes the search.
	FilterQuery(ctx context.Context, params QueryParams) QueryParams

	// FilterHighlightPattern returns the pattern the host highlighter
	// should use for term, or defaultPattern when the session has
	// nothing to add. Called after FilterQuery, any number of times.
	FilterHighlightPattern(defaultPattern, term string) string
}

// SearchFilter opens a fresh SearchSession for each search request.
type SearchFilter interface {
	NewSession() SearchSession
}

// ContentFilterFunc adapts a function to the ContentFilter interface.
type ContentFilterFunc func(ctx context.Context, content, docID string) string

// FilterContent implements ContentFilter.
func (f ContentFilterFunc) FilterContent(ctx context.Context, content, docID string) string {
	return f(ctx, content, docID)
}
