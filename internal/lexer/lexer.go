package lexer

import (
	"strings"

	"github.com/fatih/color"
)

// tabWidth is the fixed column step a tab counts for when measuring
// indentation (spec §3: "tabs counting as a fixed step, e.g. 4 spaces").
const tabWidth = 4

var (
	keywordColor = color.New(color.FgRed)
	stringColor  = color.New(color.FgYellow)
	numberColor  = color.New(color.FgCyan)
	identColor   = color.New(color.FgGreen)
	defaultColor = color.New(color.Reset)
)

// Lexer turns one source file's bytes into a Token stream. It is built
// once per file with New and driven by repeated Next calls; it never
// aborts — malformed input is represented as MalformedString,
// MalformedChar, or Invalid tokens and the stream always runs to an
// EndOfInput token.
type Lexer struct {
	filename string
	src      []rune
	pos      int
	line     int
	col      int

	indent  []int // indentation stack, always starts with [0]
	pending []Token
	eofSent bool

	tty bool
}

// New constructs a Lexer over source text. tty controls whether Print
// emits ANSI color, mirroring the original compiler's isTty flag.
func New(source, filename string, tty bool) *Lexer {
	return &Lexer{
		filename: filename,
		src:      []rune(source),
		line:     1,
		col:      1,
		indent:   []int{0},
		tty:      tty,
	}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) rune {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advance() rune {
	c := l.peek()
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) here() Position {
	return Position{Filename: l.filename, Line: l.line, Column: l.col, Offset: l.pos}
}

func isAlpha(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

// Next consumes and returns the next token. Callers should keep calling
// Next until it returns an EndOfInput token.
func (l *Lexer) Next() Token {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		return t
	}

	if l.atEnd() {
		return l.drainIndentAtEOF()
	}

	c := l.peek()

	switch {
	case c == '~':
		l.skipLineComment()
		return l.Next()
	case c == '`':
		l.skipBlockComment()
		return l.Next()
	case c == '\n':
		return l.handleNewline()
	case c == ' ' || c == '\t' || c == '\r':
		l.advance()
		return l.Next()
	case isDigit(c):
		return l.lexNumber()
	case isAlpha(c):
		return l.lexIdentifier()
	case c == '"':
		return l.lexString()
	case c == '\'':
		return l.lexChar()
	default:
		return l.lexOperator()
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() {
	l.advance() // opening `
	for !l.atEnd() && l.peek() != '`' {
		l.advance()
	}
	if !l.atEnd() {
		l.advance() // closing `
	}
}

// handleNewline implements the indentation contract of §3: it consumes
// the newline, skips any pure-whitespace or comment-only lines (which do
// not change the indentation stack), measures the next real line's
// leading-whitespace width, and compares it against the top of the
// indentation stack to produce Indent/Unindent/Newline tokens.
func (l *Lexer) handleNewline() Token {
	l.advance() // consume '\n'

	for {
		width, contentStart := l.measureLeadingWhitespace()
		if contentStart >= len(l.src) {
			l.advanceTo(contentStart)
			return l.drainIndentAtEOF()
		}
		c := l.src[contentStart]
		if c == '\n' {
			l.advanceTo(contentStart)
			l.advance()
			continue
		}
		if c == '~' {
			l.advanceTo(contentStart)
			l.skipLineComment()
			if l.atEnd() {
				return l.drainIndentAtEOF()
			}
			l.advance() // the comment's trailing newline
			continue
		}
		if c == '`' {
			l.advanceTo(contentStart)
			l.skipBlockComment()
			continue
		}

		l.advanceTo(contentStart)
		return l.emitIndentTokens(width)
	}
}

// measureLeadingWhitespace scans from the current position (without
// consuming) and returns the indentation width and the index of the
// first non-whitespace rune.
func (l *Lexer) measureLeadingWhitespace() (width, idx int) {
	idx = l.pos
	for idx < len(l.src) {
		switch l.src[idx] {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			return width, idx
		}
		idx++
	}
	return width, idx
}

// advanceTo moves the lexer up to rune index target, which must be >=
// l.pos and contain no newlines — callers only use it to skip a run of
// pure horizontal whitespace.
func (l *Lexer) advanceTo(target int) {
	for l.pos < target {
		l.advance()
	}
}

func (l *Lexer) emitIndentTokens(width int) Token {
	top := l.indent[len(l.indent)-1]
	pos := l.here()

	switch {
	case width > top:
		l.indent = append(l.indent, width)
		return Token{Kind: Indent, Position: pos}
	case width < top:
		var unindents []Token
		for len(l.indent) > 1 && l.indent[len(l.indent)-1] > width {
			l.indent = l.indent[:len(l.indent)-1]
			unindents = append(unindents, Token{Kind: Unindent, Position: pos})
		}
		if l.indent[len(l.indent)-1] != width {
			// Dedent that doesn't line up with any enclosing level: adopt it
			// as a new level so later lines at this width compare cleanly.
			l.indent = append(l.indent, width)
		}
		l.pending = unindents[1:]
		return unindents[0]
	default:
		return Token{Kind: Newline, Position: pos}
	}
}

// drainIndentAtEOF closes every still-open indentation level with an
// Unindent token before the final EndOfInput, satisfying invariant 4: the
// Indent/Unindent multiset counts balance over a complete source.
func (l *Lexer) drainIndentAtEOF() Token {
	pos := l.here()
	if !l.eofSent && len(l.indent) > 1 {
		var unindents []Token
		for len(l.indent) > 1 {
			l.indent = l.indent[:len(l.indent)-1]
			unindents = append(unindents, Token{Kind: Unindent, Position: pos})
		}
		l.eofSent = true
		l.pending = unindents[1:]
		return unindents[0]
	}
	l.eofSent = true
	return Token{Kind: EndOfInput, Position: pos}
}

func (l *Lexer) lexIdentifier() Token {
	start := l.pos
	pos := l.here()
	for !l.atEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	s := string(l.src[start:l.pos])
	return Token{Kind: LookupKeyword(s), Lexeme: s, Position: pos}
}

var numericSuffixes = map[string]Kind{
	"i8": I8, "i16": I16, "i32": I32, "i64": I64,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64,
	"f16": F16, "f32": F32, "f64": F64,
}

// lexNumber scans an integer or float literal. The lexer never parses the
// numeric value itself (the back end's big-number library does that); it
// preserves the string form and, if a type suffix is present, strips it
// into Token.Suffix.
func (l *Lexer) lexNumber() Token {
	start := l.pos
	pos := l.here()
	kind := IntLit

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		kind = FltLit
		l.advance()
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}
	lexeme := string(l.src[start:l.pos])

	suffixStart := l.pos
	for !l.atEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	suffix := EndOfInput
	if l.pos > suffixStart {
		suffixText := string(l.src[suffixStart:l.pos])
		if s, ok := numericSuffixes[suffixText]; ok {
			suffix = s
		} else {
			// Not a recognized suffix: it wasn't part of this literal, put
			// it back for the next token.
			l.pos = suffixStart
			l.col -= runeLen(suffixText)
		}
	}
	return Token{Kind: kind, Lexeme: lexeme, Suffix: suffix, Position: pos}
}

func (l *Lexer) lexString() Token {
	pos := l.here()
	l.advance() // opening quote
	var sb strings.Builder
	for !l.atEnd() && l.peek() != '"' && l.peek() != '\n' {
		sb.WriteRune(l.advance())
	}
	if l.atEnd() || l.peek() != '"' {
		return Token{Kind: MalformedString, Lexeme: sb.String(), Position: pos}
	}
	l.advance() // closing quote
	return Token{Kind: StrLit, Lexeme: sb.String(), Position: pos}
}

func (l *Lexer) lexChar() Token {
	pos := l.here()
	l.advance() // opening quote
	var sb strings.Builder
	for !l.atEnd() && l.peek() != '\'' && l.peek() != '\n' {
		sb.WriteRune(l.advance())
	}
	if l.atEnd() || l.peek() != '\'' {
		return Token{Kind: MalformedChar, Lexeme: sb.String(), Position: pos}
	}
	l.advance() // closing quote
	return Token{Kind: CharLit, Lexeme: sb.String(), Position: pos}
}

type twoCharOp struct {
	first, second rune
	kind          Kind
}

var twoCharOps = []twoCharOp{
	{'=', '=', Eq}, {'!', '=', NotEq}, {'<', '=', LtEq}, {'>', '=', GtEq},
	{'+', '=', AddEq}, {'-', '=', SubEq}, {'*', '=', MulEq}, {'/', '=', DivEq},
	{'+', '+', Concat}, {'-', '>', Arrow}, {'=', '>', FatArrow},
}

var oneCharOps = map[rune]Kind{
	'=': Assign, '<': Lt, '>': Gt, '+': Plus, '-': Minus, '*': Star, '/': Slash,
	'%': Percent, '!': Not, ':': Colon, ',': Comma, '.': Dot, '|': Pipe,
	'(': LParen, ')': RParen, '[': LBracket, ']': RBracket, '{': LBrace, '}': RBrace,
}

func (l *Lexer) lexOperator() Token {
	pos := l.here()
	c := l.peek()
	n := l.peekAt(1)
	for _, op := range twoCharOps {
		if c == op.first && n == op.second {
			l.advance()
			l.advance()
			return Token{Kind: op.kind, Lexeme: string(c) + string(n), Position: pos}
		}
	}
	if k, ok := oneCharOps[c]; ok {
		l.advance()
		return Token{Kind: k, Lexeme: string(c), Position: pos}
	}
	l.advance()
	return Token{Kind: Invalid, Lexeme: string(c), Position: pos}
}

// Print writes a colorized (when tty) or plain echo of t to sb, matching
// the original lexer's KEYWORD/STRINGL/INTEGERL/FUNCTION color classes.
func (l *Lexer) Print(sb *strings.Builder, t Token) {
	text := t.String()
	if !l.tty {
		sb.WriteString(text)
		sb.WriteByte('\n')
		return
	}
	switch {
	case t.Kind == StrLit || t.Kind == CharLit:
		sb.WriteString(stringColor.Sprint(text))
	case t.Kind == IntLit || t.Kind == FltLit:
		sb.WriteString(numberColor.Sprint(text))
	case t.Kind == Identifier:
		sb.WriteString(identColor.Sprint(text))
	case isKeywordKind(t.Kind):
		sb.WriteString(keywordColor.Sprint(text))
	default:
		sb.WriteString(defaultColor.Sprint(text))
	}
	sb.WriteByte('\n')
}

func isKeywordKind(k Kind) bool {
	switch k {
	case If, Elif, Else, For, While, Do, In, Match, Continue, Break, Return,
		Import, Where, Enum, Struct, Class, Data, Fun, Let, Mut, Ante, True, False:
		return true
	default:
		return false
	}
}
