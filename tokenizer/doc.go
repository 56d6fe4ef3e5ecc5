// Package tokenizer splits text into tokens lazily, without allocating
// up front.
//
// A Separator decides, one byte at a time, whether a byte delimits tokens.
// Three separators are built in: Char (one byte), CharSet (a set of bytes)
// and Func (any predicate). Split picks one from the shape of its argument:
//
//	for tok := range tokenizer.Split("Some beautiful text", ' ').All() {
//		fmt.Println(tok)
//	}
//
// Runs of separators collapse: empty tokens are never produced, and a
// source made only of separators yields nothing. Each byte is classified
// at most once per pass, so a full pass is linear in the source length.
package tokenizer
