// Package vocab maps chord tokens to dense integer ids.
package vocab

// Vocab is an immutable token table. Ids are dense and assigned in
// first-occurrence order over the corpus the table was built from.
type Vocab struct {
	ids    map[string]int
	tokens []string
}

// Build assigns an id to each distinct token in first-occurrence order.
func Build(tokens []string) *Vocab {
	v := &Vocab{ids: make(map[string]int)}
	for _, tok := range tokens {
		if _, ok := v.ids[tok]; ok {
			continue
		}
		v.ids[tok] = len(v.tokens)
		v.tokens = append(v.tokens, tok)
	}
	return v
}

// ID returns the id for tok. Tokens outside the vocabulary map to 0.
func (v *Vocab) ID(tok string) int {
	return v.ids[tok]
}

// Token returns the token for id, or "" if id is out of range.
func (v *Vocab) Token(id int) string {
	if id < 0 || id >= len(v.tokens) {
		return ""
	}
	return v.tokens[id]
}

// Size returns the number of distinct tokens.
func (v *Vocab) Size() int {
	return len(v.tokens)
}

// IDs encodes a token sequence. Unknown tokens encode as 0.
func (v *Vocab) IDs(tokens []string) []int {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		out[i] = v.ids[tok]
	}
	return out
}

// Tokens returns the table in id order. The returned slice is shared;
// callers must not modify it.
func (v *Vocab) Tokens() []string {
	return v.tokens
}
