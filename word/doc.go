// Package word implements reduced words over an alphabet.Alphabet -- the
// elements of a free group of finite rank.
//
// A Word is a sequence of alphabet.Letter values satisfying the free-group
// reduction invariant: no letter is immediately followed by its own
// inverse. Construction normalizes arbitrary input into this form with a
// single linear pass (two moving indices, no auxiliary stack); once built a
// Word never mutates, so values can be shared and compared by plain
// equality of their letter slices.
//
// A Word borrows its Alphabet by value (never a back-pointer, per the
// module's ownership convention -- see ggraph and traintrack for the same
// pattern at the graph/map level); Product and friends that combine two
// Words require them to share an alphabet and fail otherwise.
package word
