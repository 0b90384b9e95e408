// Package hooks defines the extension points a host search system offers to
// text-augmentation plugins, and a registry that drives them.
//
// The core augmentation packages (tokenize, lemma, augment, highlight) are
// host-agnostic and know nothing about registration; this package is the
// seam between them and a host. A host creates a Registry at startup,
// plugins register their filters once, and the host then applies the
// registered filters at three points of its request lifecycle:
//
//   - content filters, when a document is about to be indexed
//   - query filters, when a search request arrives
//   - highlight-pattern filters, when the host highlights hits
//
// # Request Scope
//
// Query and highlight filtering share per-request state (the lemma set
// computed during query augmentation is read again when building the
// highlight pattern), so those two points are grouped behind a
// SearchSession that the host opens per request via OpenSearch and discards
// afterward. Sessions must never be shared across requests.
//
//	reg := hooks.NewRegistry()
//	_ = reg.RegisterSearch("baseforms", plugin)
//
//	// per search request:
//	search := reg.OpenSearch()
//	params = search.ApplyQuery(ctx, params)
//	// ... run the search ...
//	pattern := search.ApplyHighlightPattern(defaultPattern, term)
package hooks
