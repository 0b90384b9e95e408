// Package augment produces search text enriched with base forms.
//
// It combines the host-agnostic pieces (tokenize, the lemma client, and
// highlight) behind a single Augmenter facade and implements the host
// extension points defined by the hooks package. This package is the
// recommended entry point for most uses.
//
// # Basic Usage
//
// Create an Augmenter and wire it into a host registry:
//
//	aug, err := augment.New(augment.Options{
//	    Endpoint:  "https://lemmatize.example.com",
//	    APIKey:    os.Getenv("LEMMA_API_KEY"),
//	    Languages: detector, // implements augment.LanguageSource
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = reg.RegisterContent("baseforms", aug)
//	_ = reg.RegisterSearch("baseforms", aug)
//
// # Degradation
//
// The Augmenter never makes the host worse off. With no endpoint configured
// it is inert: every operation is the identity on its input. A document or
// query in the wrong language, non-textual input, and remote-service
// failure all degrade the same way: the input passes through unchanged and
// no error reaches the host.
//
// # Request Scope
//
// Query augmentation computes a lemma set that highlight-pattern building
// reads again later in the same search request. That state lives in the
// Search session returned by NewSession: one session per request, populated
// exactly once by FilterQuery, read-only afterward. Sessions are cheap;
// never reuse one across requests.
package augment
