package word_test

import (
	"fmt"

	"github.com/ggt-tools/traintrack/alphabet"
	"github.com/ggt-tools/traintrack/word"
)

func ExampleParse() {
	alpha, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	if err != nil {
		panic(err)
	}
	w, err := word.Parse(alpha, "abcAab")
	if err != nil {
		panic(err)
	}
	fmt.Println(w)
	// Output: abcb
}

func ExampleWord_Product() {
	alpha, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	if err != nil {
		panic(err)
	}
	u, _ := word.Parse(alpha, "abAc")
	v, _ := word.Parse(alpha, "Caa")
	product, err := u.Product(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(product)
	// Output: aba
}
