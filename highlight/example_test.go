package highlight_test

import (
	"fmt"
	"regexp"

	"github.com/jonwraymond/baseforms/highlight"
	"github.com/jonwraymond/baseforms/lemma"
)

func ExamplePattern() {
	// With no lemma variants the host's own pattern passes through.
	fmt.Println(highlight.Pattern(`(kissa)`, "kissa", lemma.NewSet()))

	// With variants, the pattern matches any of them plus one boundary
	// character of context.
	p := highlight.Pattern(`(kissa)`, "kissa", lemma.NewSet("kissaeläin"))
	re := regexp.MustCompile(p)
	fmt.Printf("%q\n", re.FindString("iso kissaeläin nukkui"))
	// Output:
	// (kissa)
	// " kissaeläin"
}
