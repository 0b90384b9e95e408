// Package hostsearch is a reference host search engine built on Bleve.
//
// It demonstrates, end to end, how a host drives the hooks
// extension points: registered content filters run before a document is
// indexed, query filters run before a search executes, and the
// highlight-pattern filter shapes the snippet matcher afterward.
//
//	reg := hooks.NewRegistry()
//	_ = reg.RegisterContent("baseforms", aug)
//	_ = reg.RegisterSearch("baseforms", aug)
//
//	engine, err := hostsearch.New(hostsearch.Options{Registry: reg})
//	_ = engine.IndexDocument(ctx, "doc-1", "Koiran kanssa puistossa")
//	results, err := engine.Search(ctx, hooks.QueryParams{Q: "koira"})
//
// Documents are indexed twice over: the augmented text feeds the searchable
// field, while the original content is stored untouched for snippets. The
// index is memory-only; this package is a host harness, not a storage
// layer.
package hostsearch
