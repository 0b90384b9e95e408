package lemma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Error values for client construction.
var (
	ErrNoEndpoint      = errors.New("endpoint not configured")
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// Defaults applied by NewClient for zero-valued Config fields.
const (
	DefaultConcurrency    = 10
	DefaultRequestTimeout = 5 * time.Second
)

// SubscriptionKeyHeader carries the API key to the lemmatization service.
const SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

// Config configures a Client.
type Config struct {
	// Endpoint is the base URL of the lemmatization service. Required.
	Endpoint string

	// APIKey is attached as an Ocp-Apim-Subscription-Key header when
	// non-empty. Optional.
	APIKey string

	// HTTPClient overrides the HTTP client used for lookups.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// Concurrency bounds the number of in-flight lookup requests.
	// Default: DefaultConcurrency.
	Concurrency int

	// RequestTimeout bounds each individual lookup request. A request
	// exceeding it counts as a per-token failure, not a batch failure.
	// Default: DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// Client looks up base forms against a remote lemmatization service.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	endpoint    string
	apiKey      string
	httpClient  *http.Client
	concurrency int
	timeout     time.Duration
}

// NewClient creates a Client from cfg. The endpoint is validated here so
// that a batch can always be dispatched once a Client exists.
func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Client{
		endpoint:    strings.TrimRight(base.String(), "/"),
		apiKey:      cfg.APIKey,
		httpClient:  httpClient,
		concurrency: concurrency,
		timeout:     timeout,
	}, nil
}

// LookupBaseForms looks up the base form of every distinct token and returns
// the deduplicated result set. Tokens are deduplicated before dispatch, so a
// token repeated in the input still produces exactly one request.
//
// Individual lookup failures (transport error, timeout, non-2xx status,
// undecodable or empty body) are silent: the failing token contributes no
// result and the rest of the batch proceeds. The call blocks until every
// dispatched request has settled. An error is returned only when ctx is
// cancelled before the batch completes.
func (c *Client) LookupBaseForms(ctx context.Context, tokens []string) (Set, error) {
	distinct := distinctTokens(tokens)
	found := NewSet()
	if len(distinct) == 0 {
		return found, nil
	}

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, token := range distinct {
		g.Go(func() error {
			// Per-token failures are absences, never errors:
			// returning an error here would cancel the siblings.
			form, ok := c.lookupOne(gctx, token)
			if ok {
				mu.Lock()
				found.Add(form)
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return found, err
	}
	return found, nil
}

// lookupOne performs a single GET {endpoint}/lemmatize/{token} request.
// The second return is false whenever the token yields no base form,
// whatever the reason.
func (c *Client) lookupOne(ctx context.Context, token string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.endpoint + "/lemmatize/" + url.PathEscape(token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", false
	}
	if c.apiKey != "" {
		req.Header.Set(SubscriptionKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false
	}

	// The body is a bare JSON value. A non-empty string is the base form;
	// null decodes to "", and false or any non-string value fails to
	// decode. All of those mean "no result" for this token.
	var form string
	if err := json.NewDecoder(resp.Body).Decode(&form); err != nil {
		return "", false
	}
	if form == "" {
		return "", false
	}
	return form, true
}

// distinctTokens returns tokens with duplicates and empty strings removed,
// preserving first-seen order.
func distinctTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
