package hostsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonwraymond/baseforms/augment"
	"github.com/jonwraymond/baseforms/hooks"
)

// stubLanguages reports fixed languages per document and for the query.
type stubLanguages struct {
	docs  map[string]string
	query string
}

func (s *stubLanguages) DocumentLanguage(ctx context.Context, docID string) (string, error) {
	return s.docs[docID], nil
}

func (s *stubLanguages) QueryLanguage(ctx context.Context) (string, error) {
	return s.query, nil
}

// newLemmaService serves base forms for the tokens in forms and 404s the
// rest.
func newLemmaService(t *testing.T, forms map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.URL.Path, "/lemmatize/")
		form, ok := forms[token]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(form)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAugmentedEngine(t *testing.T, forms map[string]string, languages *stubLanguages) *Engine {
	t.Helper()

	srv := newLemmaService(t, forms)
	aug, err := augment.New(augment.Options{
		Endpoint:  srv.URL,
		Languages: languages,
	})
	if err != nil {
		t.Fatalf("augment.New: %v", err)
	}

	registry := hooks.NewRegistry()
	if err := registry.RegisterContent("baseforms", aug); err != nil {
		t.Fatalf("RegisterContent: %v", err)
	}
	if err := registry.RegisterSearch("baseforms", aug); err != nil {
		t.Fatalf("RegisterSearch: %v", err)
	}

	engine, err := New(Options{Registry: registry})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestSearchMatchesInflectedQuery(t *testing.T) {
	forms := map[string]string{
		"Pihalla": "piha",
		"juoksi":  "juosta",
		"koira":   "koira",
		"koiran":  "koira",
	}
	languages := &stubLanguages{
		docs:  map[string]string{"doc-fi": "fi"},
		query: "fi",
	}
	engine := newAugmentedEngine(t, forms, languages)

	ctx := context.Background()
	content := "Pihalla juoksi iloinen koira."
	if err := engine.IndexDocument(ctx, "doc-fi", content); err != nil {
		t.Fatalf("IndexDocument: %v", err)
	}
	if err := engine.IndexDocument(ctx, "doc-en", "A quick brown fox."); err != nil {
		t.Fatalf("IndexDocument: %v", err)
	}

	// "koiran" appears in no document; the hit comes from its base form.
	results, err := engine.Search(ctx, hooks.QueryParams{Q: "koiran"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %v", len(results), results.IDs())
	}
	if results[0].ID != "doc-fi" {
		t.Errorf("hit ID = %q, want doc-fi", results[0].ID)
	}
	if !strings.Contains(results[0].Snippet, "koira") {
		t.Errorf("snippet %q does not cover the base-form match", results[0].Snippet)
	}
}

func TestSearchWithoutRegistry(t *testing.T) {
	engine, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.IndexDocument(ctx, "doc-1", "A quick brown fox jumps."); err != nil {
		t.Fatalf("IndexDocument: %v", err)
	}

	results, err := engine.Search(ctx, hooks.QueryParams{Q: "fox"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "doc-1" {
		t.Fatalf("got %v, want [doc-1]", results.IDs())
	}
	if !strings.Contains(results[0].Snippet, "fox") {
		t.Errorf("snippet %q, want the literal match", results[0].Snippet)
	}
}

func TestSearchSkipsNonTargetQuery(t *testing.T) {
	forms := map[string]string{"koiran": "koira", "koira": "koira"}
	languages := &stubLanguages{
		docs:  map[string]string{"doc-fi": "fi"},
		query: "sv",
	}
	engine := newAugmentedEngine(t, forms, languages)

	ctx := context.Background()
	if err := engine.IndexDocument(ctx, "doc-fi", "Pihalla juoksi koira."); err != nil {
		t.Fatalf("IndexDocument: %v", err)
	}

	// The query language gate blocks augmentation, so the inflected form
	// stays unmatched.
	results, err := engine.Search(ctx, hooks.QueryParams{Q: "koiran"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %v, want no results", results.IDs())
	}
}

func TestDeleteDocument(t *testing.T) {
	engine, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.IndexDocument(ctx, "doc-1", "quick brown fox"); err != nil {
		t.Fatalf("IndexDocument: %v", err)
	}
	if err := engine.DeleteDocument("doc-1"); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}

	results, err := engine.Search(ctx, hooks.QueryParams{Q: "fox"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %v after delete, want no results", results.IDs())
	}
}

func TestSearchSize(t *testing.T) {
	engine, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		if err := engine.IndexDocument(ctx, id, "quick brown fox"); err != nil {
			t.Fatalf("IndexDocument: %v", err)
		}
	}

	results, err := engine.Search(ctx, hooks.QueryParams{Q: "fox", Size: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestResultsIDs(t *testing.T) {
	results := Results{{ID: "a"}, {ID: "b"}}
	ids := results.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs() = %v", ids)
	}
}
