package hostsearch

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/jonwraymond/baseforms/hooks"
)

// DefaultSize is the result count used when QueryParams.Size is zero.
const DefaultSize = 10

// snippetRadius is the number of bytes of context kept around a snippet
// match on each side.
const snippetRadius = 40

// Options configures an Engine.
type Options struct {
	// Registry supplies the filters to apply at indexing and search
	// time. When nil the engine runs without augmentation.
	Registry *hooks.Registry
}

// Engine is a memory-only Bleve index that applies registered hooks around
// every indexing and search operation. Safe for concurrent use.
type Engine struct {
	idx      bleve.Index
	registry *hooks.Registry
	patterns *patternCache
}

// New creates an Engine with a fresh in-memory index.
func New(opts Options) (*Engine, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Engine{
		idx:      idx,
		registry: opts.Registry,
		patterns: newPatternCache(),
	}, nil
}

// Close releases the underlying index.
func (e *Engine) Close() error {
	return e.idx.Close()
}

// IndexDocument runs content through the registered content filters and
// indexes the result. The unfiltered content is stored alongside for
// snippet building.
func (e *Engine) IndexDocument(ctx context.Context, id, content string) error {
	searchText := content
	if e.registry != nil {
		searchText = e.registry.ApplyContent(ctx, content, id)
	}
	// The search field carries the augmented text the match query runs
	// against; content keeps the original for snippets.
	return e.idx.Index(id, map[string]any{
		"content": content,
		"search":  searchText,
	})
}

// DeleteDocument removes a document from the index.
func (e *Engine) DeleteDocument(id string) error {
	return e.idx.Delete(id)
}

// Result is one search hit.
type Result struct {
	// ID is the document identifier.
	ID string

	// Score is Bleve's relevance score.
	Score float64

	// Snippet is a fragment of the original content around the first
	// highlighted match, or empty when nothing in the stored content
	// matches the highlight pattern.
	Snippet string
}

// Results is a slice of Result with helper methods.
type Results []Result

// IDs returns just the document IDs from the results.
func (r Results) IDs() []string {
	ids := make([]string, len(r))
	for i, result := range r {
		ids[i] = result.ID
	}
	return ids
}

// Search opens a per-request session over the registered search filters,
// applies query filtering, executes the match query, and builds highlight
// snippets with the session's pattern.
func (e *Engine) Search(ctx context.Context, params hooks.QueryParams) (Results, error) {
	term := params.Q

	var search *hooks.Search
	if e.registry != nil {
		search = e.registry.OpenSearch()
		params = search.ApplyQuery(ctx, params)
	}

	size := params.Size
	if size <= 0 {
		size = DefaultSize
	}

	query := bleve.NewMatchQuery(params.Q)
	query.SetField("search")

	req := bleve.NewSearchRequestOptions(query, size, params.From, false)
	req.Fields = []string{"content"}

	res, err := e.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	matcher := e.matcher(search, term)

	results := make(Results, 0, len(res.Hits))
	for _, hit := range res.Hits {
		result := Result{ID: hit.ID, Score: hit.Score}
		if content, ok := hit.Fields["content"].(string); ok {
			result.Snippet = snippet(content, matcher)
		}
		results = append(results, result)
	}
	return results, nil
}

// matcher compiles the highlight pattern for term, letting the session's
// highlight filter widen the default literal pattern with base forms.
// Returns nil when the pattern does not compile.
func (e *Engine) matcher(search *hooks.Search, term string) *regexp.Regexp {
	if strings.TrimSpace(term) == "" {
		return nil
	}

	pattern := "(?i)" + regexp.QuoteMeta(term)
	if search != nil {
		pattern = search.ApplyHighlightPattern(pattern, term)
	}

	return e.patterns.compile(pattern)
}

// snippet returns the slice of content around the first matcher hit.
func snippet(content string, matcher *regexp.Regexp) string {
	if matcher == nil {
		return ""
	}
	loc := matcher.FindStringIndex(content)
	if loc == nil {
		return ""
	}

	start := loc[0] - snippetRadius
	if start < 0 {
		start = 0
	}
	end := loc[1] + snippetRadius
	if end > len(content) {
		end = len(content)
	}

	// Back off to rune boundaries so the window never splits a
	// multi-byte character.
	for start > 0 && !isRuneStart(content[start]) {
		start--
	}
	for end < len(content) && !isRuneStart(content[end]) {
		end++
	}

	return content[start:end]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
