package augment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"github.com/jonwraymond/baseforms/highlight"
	"github.com/jonwraymond/baseforms/hooks"
	"github.com/jonwraymond/baseforms/lemma"
	"github.com/jonwraymond/baseforms/tokenize"
)

// DefaultLanguage is the target language when Options.Language is empty.
const DefaultLanguage = "fi"

// ErrNotConfigured is returned by operations that cannot degrade silently
// when the Augmenter has no lemmatization endpoint.
var ErrNotConfigured = errors.New("augmenter not configured")

// LanguageSource reports the language of indexed documents and of the
// current search request. Implementations typically wrap the host's
// language-detection service.
type LanguageSource interface {
	// DocumentLanguage returns the language code detected for a document.
	DocumentLanguage(ctx context.Context, docID string) (string, error)

	// QueryLanguage returns the language code of the current request.
	QueryLanguage(ctx context.Context) (string, error)
}

// Options configures an Augmenter.
type Options struct {
	// Endpoint is the lemmatization service base URL. When empty the
	// Augmenter is inert: every operation passes its input through.
	Endpoint string

	// APIKey is the optional lemmatization service key.
	APIKey string

	// Language is the target language code (BCP 47). Only content and
	// queries in this language are augmented. Default: DefaultLanguage.
	Language string

	// Languages reports detected languages. When nil the language gate
	// can never confirm a match, so the Augmenter is inert.
	Languages LanguageSource

	// HTTPClient, Concurrency, and RequestTimeout pass through to
	// lemma.Config.
	HTTPClient     *http.Client
	Concurrency    int
	RequestTimeout time.Duration
}

// Augmenter rewrites indexing content and search queries with base forms.
// It implements hooks.ContentFilter and hooks.SearchFilter. Safe for
// concurrent use; all per-request state lives in Search sessions.
type Augmenter struct {
	client    *lemma.Client
	languages LanguageSource
	target    language.Base
}

// New creates an Augmenter. An empty Options.Endpoint yields an inert
// Augmenter rather than an error, so hosts can wire the plugin
// unconditionally and configure it later. A present-but-invalid endpoint or
// an unparseable language code is a configuration mistake and fails.
func New(opts Options) (*Augmenter, error) {
	code := opts.Language
	if code == "" {
		code = DefaultLanguage
	}
	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", code, err)
	}
	target, _ := tag.Base()

	a := &Augmenter{
		languages: opts.Languages,
		target:    target,
	}

	if opts.Endpoint == "" {
		return a, nil
	}

	client, err := lemma.NewClient(lemma.Config{
		Endpoint:       opts.Endpoint,
		APIKey:         opts.APIKey,
		HTTPClient:     opts.HTTPClient,
		Concurrency:    opts.Concurrency,
		RequestTimeout: opts.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	a.client = client

	return a, nil
}

// Enabled reports whether the Augmenter can augment at all: it needs both
// an endpoint and a language source.
func (a *Augmenter) Enabled() bool {
	return a.client != nil && a.languages != nil
}

// AugmentContent returns content with base forms appended, for indexing.
// It is the identity when the Augmenter is inert, the content is not
// textual, the detected document language is not the target language, or
// the remote service yields nothing.
func (a *Augmenter) AugmentContent(ctx context.Context, content, docID string) string {
	if !a.Enabled() || !Textual(content) {
		return content
	}

	code, err := a.languages.DocumentLanguage(ctx, docID)
	if err != nil || !a.targetLanguage(code) {
		return content
	}

	tokens := tokenize.Tokenize(tokenize.StripTags(content))
	forms, err := a.lookup(ctx, tokens)
	if err != nil {
		return content
	}
	return Merge(content, tokens, forms)
}

// FilterContent implements hooks.ContentFilter.
func (a *Augmenter) FilterContent(ctx context.Context, content, docID string) string {
	return a.AugmentContent(ctx, content, docID)
}

// NewSearch returns a request-scoped augmentation session.
func (a *Augmenter) NewSearch() *Search {
	return &Search{aug: a}
}

// NewSession implements hooks.SearchFilter.
func (a *Augmenter) NewSession() hooks.SearchSession {
	return a.NewSearch()
}

// BaseForms tokenizes text and returns the distinct base forms the service
// knows for it, without the language gate or merge step. It backs explicit
// lemmatize calls (for example the MCP tool surface) and therefore reports
// a missing endpoint as ErrNotConfigured instead of degrading.
func (a *Augmenter) BaseForms(ctx context.Context, text string) ([]string, error) {
	if a.client == nil {
		return nil, ErrNotConfigured
	}
	forms, err := a.lookup(ctx, tokenize.Tokenize(tokenize.StripTags(text)))
	if err != nil {
		return nil, err
	}
	return forms.Members(), nil
}

// lookup calls the remote service for tokens. An empty token slice short
// circuits to an empty set without touching the network.
func (a *Augmenter) lookup(ctx context.Context, tokens []string) (lemma.Set, error) {
	if len(tokens) == 0 {
		return lemma.NewSet(), nil
	}
	return a.client.LookupBaseForms(ctx, tokens)
}

// targetLanguage reports whether code denotes the target language. Codes
// are compared by primary language subtag, so "fi-FI" matches "fi".
func (a *Augmenter) targetLanguage(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base == a.target
}

// Search is one request's augmentation session. FilterQuery populates the
// lemma set exactly once; FilterHighlightPattern reads it afterward. Not
// safe for concurrent use; a session belongs to a single request.
type Search struct {
	aug    *Augmenter
	lemmas lemma.Set
}

// FilterQuery implements hooks.SearchSession. On a target-language request
// it rewrites params.Q to the augmented query and keeps the filtered lemma
// set for highlight building; otherwise params passes through and the set
// stays empty.
func (s *Search) FilterQuery(ctx context.Context, params hooks.QueryParams) hooks.QueryParams {
	a := s.aug
	if !a.Enabled() || !Textual(params.Q) {
		return params
	}

	code, err := a.languages.QueryLanguage(ctx)
	if err != nil || !a.targetLanguage(code) {
		return params
	}

	tokens := tokenize.Tokenize(params.Q)
	forms, err := a.lookup(ctx, tokens)
	if err != nil {
		return params
	}

	s.lemmas = forms.Subtract(tokens)
	params.Q = Merge(params.Q, tokens, forms)
	return params
}

// FilterHighlightPattern implements hooks.SearchSession using the lemma set
// from the most recent FilterQuery. With no prior query augmentation the
// set is empty and defaultPattern passes through.
func (s *Search) FilterHighlightPattern(defaultPattern, term string) string {
	return highlight.Pattern(defaultPattern, term, s.lemmas)
}

// Lemmas exposes the session's lemma set for hosts that highlight without
// going through a pattern filter.
func (s *Search) Lemmas() lemma.Set {
	return s.lemmas
}
