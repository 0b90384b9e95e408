package tokenize_test

import (
	"fmt"

	"github.com/jonwraymond/baseforms/tokenize"
)

func ExampleTokenize() {
	tokens := tokenize.Tokenize("Koira juoksi pihalla, kissa nukkui.")
	fmt.Println(tokens)
	// Output: [Koira juoksi pihalla kissa nukkui]
}

func ExampleStripTags() {
	text := tokenize.StripTags("<p>Koirat <b>juoksevat</b></p>")
	fmt.Println(tokenize.Tokenize(text))
	// Output: [Koirat juoksevat]
}
