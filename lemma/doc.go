// Package lemma provides the remote lemmatization client and the lemma Set.
//
// The client asks a lemmatization HTTP service for the base (dictionary)
// form of each distinct token in a batch. Lookups fan out concurrently up to
// a configurable in-flight limit and individual failures never abort the
// batch: a token whose lookup fails, times out, or yields no base form
// simply contributes nothing to the result.
//
// # Usage
//
// Create a client and look up a batch of tokens:
//
//	client, err := lemma.NewClient(lemma.Config{
//	    Endpoint: "https://lemmatize.example.com",
//	    APIKey:   os.Getenv("LEMMA_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	forms, err := client.LookupBaseForms(ctx, []string{"koiran", "taloja"})
//	for _, f := range forms.Members() {
//	    fmt.Println(f)
//	}
//
// # Service Contract
//
// Each distinct token produces one request:
//
//	GET {endpoint}/lemmatize/{token}
//
// with the token path-escaped and an Ocp-Apim-Subscription-Key header
// attached only when an API key is configured. The response body is JSON: a
// non-empty string is taken as the base form; null, an empty string, or any
// other value contributes nothing.
//
// # Concurrency
//
// At most Config.Concurrency requests (default 10) are in flight at once;
// further tokens queue until a slot frees. LookupBaseForms blocks until
// every dispatched request has settled. The client is safe for concurrent
// use by multiple goroutines.
package lemma
