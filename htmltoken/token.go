package htmltoken

// TokenType discriminates the four shapes an HTML Token can take.
type TokenType int

const (
	// StartTagToken carries a lower-cased tag name, a self-closing
	// flag, and its attributes in source order.
	StartTagToken TokenType = iota
	// EndTagToken carries a lower-cased tag name.
	EndTagToken
	// CharToken carries exactly one code point.
	CharToken
	// EOFToken is an in-band sentinel distinct from stream
	// termination; it may appear more than once at the tail.
	EOFToken
)

// String returns a human-readable token type name, for test failure
// output and debugging.
func (t TokenType) String() string {
	switch t {
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CharToken:
		return "Char"
	case EOFToken:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is a tagged variant: Type selects which of Tag/SelfClosing/
// Attributes (tag tokens) or Char (character tokens) is meaningful.
// Tag names are always lower-cased; attribute order follows source
// order and duplicates are not deduplicated at this layer.
type Token struct {
	Type        TokenType
	Tag         string
	SelfClosing bool
	Attributes  []Attribute
	Char        rune
}
