// Package htmltoken implements a lazy, pull-driven HTML tokenizer: a
// finite state machine that turns a character stream into start tags,
// end tags, character tokens, and EOF sentinels. It covers a
// teachable subset of the HTML tokenization algorithm — no character
// references, comments, DOCTYPE, CDATA, RAWTEXT, or RCDATA — plus the
// script-data branch used once a tree-construction layer has seen an
// opening <script> tag.
package htmltoken

// Tokenizer is a single-use, pull-driven state machine over a fixed
// input. It owns its input exclusively; nothing about it is safe to
// share across goroutines, though independent Tokenizers need no
// coordination.
type Tokenizer struct {
	state       state
	input       []rune
	pos         int
	reconsume   bool
	latestToken *Token
	buf         []rune
}

// NewTokenizer returns a Tokenizer positioned at the start of html, in
// the Data state.
func NewTokenizer(html string) *Tokenizer {
	return &Tokenizer{
		state: stateData,
		input: []rune(html),
	}
}

// EnterScriptData forces the tokenizer into the script-data state. The
// tokenizer has no way to discover on its own that it just emitted a
// <script> start tag; a tree-construction layer consuming the token
// stream is expected to call this immediately after it does.
func (t *Tokenizer) EnterScriptData() {
	t.state = stateScriptData
}

// Next returns the next token and true, or a zero Token and false once
// the stream is exhausted. A pull may itself loop internally through
// several non-emitting state transitions before it has a token to
// return.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.input) {
		return Token{}, false
	}

	for {
		var c rune
		if t.reconsume {
			c = t.reconsumeInput()
		} else {
			c = t.consumeNextInput()
		}

		switch t.state {
		case stateData:
			if c == '<' {
				t.state = stateTagOpen
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			return Token{Type: CharToken, Char: c}, true

		case stateTagOpen:
			if c == '/' {
				t.state = stateEndTagOpen
				continue
			}
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateTagName
				t.createTag(true)
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.reconsume = true
			t.state = stateData

		case stateEndTagOpen:
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateTagName
				t.createTag(false)
				continue
			}
			// Malformed input (e.g. "</>" or "</1") is silently
			// absorbed rather than entering bogus-comment mode.

		case stateTagName:
			if c == ' ' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			if isASCIIUpper(c) {
				t.appendTagName(toASCIILower(c))
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendTagName(c)

		case stateBeforeAttributeName:
			if c == '/' || c == '>' || t.isEOF() {
				t.reconsume = true
				t.state = stateAfterAttributeName
				continue
			}
			t.reconsume = true
			t.state = stateAttributeName
			t.startNewAttribute()

		case stateAttributeName:
			if c == ' ' || c == '/' || c == '>' || t.isEOF() {
				t.reconsume = true
				t.state = stateAfterAttributeName
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if isASCIIUpper(c) {
				t.appendAttribute(toASCIILower(c), true)
				continue
			}
			t.appendAttribute(c, true)

		case stateAfterAttributeName:
			if c == ' ' {
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.reconsume = true
			t.state = stateAttributeName
			t.startNewAttribute()

		case stateBeforeAttributeValue:
			if c == ' ' {
				continue
			}
			if c == '"' {
				t.state = stateAttributeValueDoubleQuoted
				continue
			}
			if c == '\'' {
				t.state = stateAttributeValueSingleQuoted
				continue
			}
			t.reconsume = true
			t.state = stateAttributeValueUnquoted

		case stateAttributeValueDoubleQuoted:
			if c == '"' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendAttribute(c, false)

		case stateAttributeValueSingleQuoted:
			if c == '\'' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendAttribute(c, false)

		case stateAttributeValueUnquoted:
			if c == ' ' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendAttribute(c, false)

		case stateAfterAttributeValueQuoted:
			if c == ' ' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.reconsume = true
			t.state = stateBeforeAttributeValue

		case stateSelfClosingStartTag:
			if c == '>' {
				t.setSelfClosingFlag()
				t.state = stateData
				return t.takeLatestToken(), true
			}
			if t.isEOF() {
				// Invalid: "<tag/" ends the input. Parse error,
				// absorbed as EOF.
				return Token{Type: EOFToken}, true
			}

		case stateScriptData:
			if c == '<' {
				t.state = stateScriptDataLessThanSign
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			return Token{Type: CharToken, Char: c}, true

		case stateScriptDataLessThanSign:
			if c == '/' {
				t.buf = t.buf[:0]
				t.state = stateScriptDataEndTagOpen
				continue
			}
			t.reconsume = true
			t.state = stateScriptData
			return Token{Type: CharToken, Char: '<'}, true

		case stateScriptDataEndTagOpen:
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateScriptDataEndTagName
				t.createTag(false)
				continue
			}
			t.reconsume = true
			t.state = stateScriptData
			// The full spec re-emits both "<" and "/" here; this
			// subset emits only "<", an acknowledged deviation.
			return Token{Type: CharToken, Char: '<'}, true

		case stateScriptDataEndTagName:
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			if isASCIIAlpha(c) {
				t.buf = append(t.buf, c)
				t.appendTagName(toASCIILower(c))
				continue
			}
			t.state = stateTemporaryBuffer
			rebuilt := append([]rune("</"), t.buf...)
			rebuilt = append(rebuilt, c)
			t.buf = rebuilt
			continue

		case stateTemporaryBuffer:
			t.reconsume = true
			if len(t.buf) == 0 {
				t.state = stateScriptData
				continue
			}
			popped := t.buf[0]
			t.buf = t.buf[1:]
			return Token{Type: CharToken, Char: popped}, true
		}
	}
}

func (t *Tokenizer) isEOF() bool {
	return t.pos > len(t.input)
}

// consumeNextInput reads the character at pos and advances. Reading
// past the end of input returns a NUL sentinel instead of indexing out
// of range, so pos can be driven one step past len(input) — which is
// exactly what isEOF watches for — without ever panicking.
func (t *Tokenizer) consumeNextInput() rune {
	if t.pos >= len(t.input) {
		t.pos++
		return 0
	}
	c := t.input[t.pos]
	t.pos++
	return c
}

// reconsumeInput re-delivers the character at pos-1 without advancing.
// Bounds-checked for the same reason as consumeNextInput.
func (t *Tokenizer) reconsumeInput() rune {
	t.reconsume = false
	idx := t.pos - 1
	if idx < 0 || idx >= len(t.input) {
		return 0
	}
	return t.input[idx]
}

func (t *Tokenizer) createTag(startTag bool) {
	if startTag {
		t.latestToken = &Token{Type: StartTagToken}
	} else {
		t.latestToken = &Token{Type: EndTagToken}
	}
}

func (t *Tokenizer) appendTagName(c rune) {
	if t.latestToken == nil {
		panic("htmltoken: appendTagName with no token under construction")
	}
	t.latestToken.Tag += string(c)
}

func (t *Tokenizer) takeLatestToken() Token {
	if t.latestToken == nil {
		panic("htmltoken: emit with no token under construction")
	}
	tok := *t.latestToken
	t.latestToken = nil
	return tok
}

// Attributes and the self-closing flag on an end tag ("</a b>",
// "</a/>") are malformed input: they are dropped, not panicked on.
func (t *Tokenizer) startNewAttribute() {
	if t.latestToken == nil {
		panic("htmltoken: startNewAttribute with no token under construction")
	}
	if t.latestToken.Type != StartTagToken {
		return
	}
	t.latestToken.Attributes = append(t.latestToken.Attributes, NewAttribute())
}

func (t *Tokenizer) appendAttribute(c rune, isName bool) {
	if t.latestToken == nil {
		panic("htmltoken: appendAttribute with no token under construction")
	}
	if t.latestToken.Type != StartTagToken {
		return
	}
	n := len(t.latestToken.Attributes)
	if n == 0 {
		panic("htmltoken: appendAttribute with no attribute started")
	}
	t.latestToken.Attributes[n-1].AddChar(c, isName)
}

func (t *Tokenizer) setSelfClosingFlag() {
	if t.latestToken == nil {
		panic("htmltoken: setSelfClosingFlag with no token under construction")
	}
	if t.latestToken.Type != StartTagToken {
		return
	}
	t.latestToken.SelfClosing = true
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func toASCIILower(c rune) rune {
	return c - 'A' + 'a'
}
