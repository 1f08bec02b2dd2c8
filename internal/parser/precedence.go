package parser

import "github.com/antec-lang/antec/internal/lexer"

// Precedence is a binary-operator precedence level; higher binds tighter.
// Mirrors the classic Pratt/precedence-climbing table, trimmed to the
// operator set this lexer actually produces (no bitwise or logical
// connective tokens, no exponent operator).
type Precedence int

const (
	PrecNone Precedence = iota
	PrecEquality         // ==, !=
	PrecComparison       // <, <=, >, >=
	PrecTerm             // +, -, ++
	PrecFactor           // *, /, %
	PrecCall             // ., (, [
)

func getPrecedence(k lexer.Kind) Precedence {
	switch k {
	case lexer.Eq, lexer.NotEq:
		return PrecEquality
	case lexer.Lt, lexer.LtEq, lexer.Gt, lexer.GtEq:
		return PrecComparison
	case lexer.Plus, lexer.Minus, lexer.Concat:
		return PrecTerm
	case lexer.Star, lexer.Slash, lexer.Percent:
		return PrecFactor
	case lexer.Dot, lexer.LParen, lexer.LBracket:
		return PrecCall
	default:
		return PrecNone
	}
}

// compoundAssignOp maps a compound-assignment token to the binary
// operator it desugars to: `x += e` parses as VarAssign{Ref: x, Expr:
// BinOp{Plus, x, e}}.
func compoundAssignOp(k lexer.Kind) (lexer.Kind, bool) {
	switch k {
	case lexer.AddEq:
		return lexer.Plus, true
	case lexer.SubEq:
		return lexer.Minus, true
	case lexer.MulEq:
		return lexer.Star, true
	case lexer.DivEq:
		return lexer.Slash, true
	default:
		return lexer.Invalid, false
	}
}
