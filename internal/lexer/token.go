package lexer

// Kind is drawn from a closed enumeration; every token produced by the
// lexer carries exactly one Kind.
type Kind int

const (
	EndOfInput Kind = iota
	Invalid          // unknown byte; Lexeme holds the offending byte
	Identifier

	// Primitive type keywords.
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F16
	F32
	F64
	Bool
	Char
	Unit // unit/void

	// Literals.
	IntLit
	FltLit
	StrLit
	CharLit
	MalformedString // unterminated " literal
	MalformedChar   // unterminated ' literal
	True
	False

	// Control flow keywords.
	If
	Elif
	Else
	For
	While
	Do
	In
	Match
	Continue
	Break
	Return
	Import
	Where

	// Data definition keywords.
	Enum
	Struct
	Class // trait
	Data
	Fun
	Let
	Mut
	Ante

	// Operators and punctuation.
	Assign   // =
	Eq       // ==
	NotEq    // !=
	Lt       // <
	LtEq     // <=
	Gt       // >
	GtEq     // >=
	Plus     // +
	Minus    // -
	Star     // *
	Slash    // /
	Percent  // %
	AddEq    // +=
	SubEq    // -=
	MulEq    // *=
	DivEq    // /=
	Not      // !
	Concat   // ++
	Arrow    // ->
	FatArrow // =>
	Colon    // :
	Comma    // ,
	Dot      // .
	Pipe     // |
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// Indentation tokens.
	Newline
	Indent
	Unindent
)

var kindNames = map[Kind]string{
	EndOfInput: "EndOfInput", Invalid: "Invalid", Identifier: "Identifier",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	F16: "f16", F32: "f32", F64: "f64", Bool: "bool", Char: "char", Unit: "unit",
	IntLit: "IntLit", FltLit: "FltLit", StrLit: "StrLit", CharLit: "CharLit",
	MalformedString: "MalformedString", MalformedChar: "MalformedChar",
	True: "true", False: "false",
	If: "if", Elif: "elif", Else: "else", For: "for", While: "while", Do: "do",
	In: "in", Match: "match", Continue: "continue", Break: "break", Return: "return",
	Import: "import", Where: "where",
	Enum: "enum", Struct: "struct", Class: "class", Data: "data", Fun: "fun",
	Let: "let", Mut: "mut", Ante: "ante",
	Assign: "=", Eq: "==", NotEq: "!=", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	AddEq: "+=", SubEq: "-=", MulEq: "*=", DivEq: "/=", Not: "!", Concat: "++",
	Arrow: "->", FatArrow: "=>", Colon: ":", Comma: ",", Dot: ".", Pipe: "|",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	Newline: "Newline", Indent: "Indent", Unindent: "Unindent",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// keywords maps reserved identifiers to their Kind. Anything not in this
// table lexes as a plain Identifier.
var keywords = map[string]Kind{
	"if": If, "elif": Elif, "else": Else, "for": For, "while": While, "do": Do,
	"in": In, "match": Match, "continue": Continue, "break": Break, "return": Return,
	"import": Import, "where": Where,
	"enum": Enum, "struct": Struct, "class": Class, "trait": Class, "data": Data,
	"fun": Fun, "let": Let, "mut": Mut, "ante": Ante,
	"true": True, "false": False,
	"i8": I8, "i16": I16, "i32": I32, "i64": I64,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64,
	"f16": F16, "f32": F32, "f64": F64, "bool": Bool, "char": Char, "void": Unit,
}

// LookupKeyword returns the keyword Kind for ident, or Identifier if ident
// is not reserved.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// IsIndentation reports whether k is one of the three whitespace-derived
// tokens the indentation contract emits.
func (k Kind) IsIndentation() bool {
	return k == Newline || k == Indent || k == Unindent
}

// IsPrimitiveType reports whether k names a primitive type keyword usable
// as a numeric-literal suffix or type annotation.
func (k Kind) IsPrimitiveType() bool {
	switch k {
	case I8, I16, I32, I64, U8, U16, U32, U64, F16, F32, F64, Bool, Char, Unit:
		return true
	default:
		return false
	}
}

// Token is a single lexical token: its Kind, the text it was built from
// (empty for the indentation tokens and EndOfInput), its source
// position, and — for numeric literals only — the Suffix type tag that was
// stripped from the lexeme (§3's "sign/size suffix").
type Token struct {
	Kind     Kind
	Lexeme   string
	Suffix   Kind // I8/.../F64 for a suffixed numeric literal, EndOfInput otherwise
	Position Position
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Lexeme + ")"
}

// Span returns the source range covered by the token's lexeme.
func (t Token) Span() Span {
	end := t.Position
	end.Column += runeLen(t.Lexeme)
	end.Offset += runeLen(t.Lexeme)
	return Span{Start: t.Position, End: end}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
