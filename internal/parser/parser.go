// Package parser implements the AST builder (§4.B): a hand-written
// recursive-descent parser over the lexer's token stream, with
// precedence climbing for expressions. How the grammar is driven is an
// implementation choice the spec leaves open; this is ours, not a
// bison/yacc-style table.
package parser

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/lexer"
)

// Parser converts a token stream into an *ast.Root. It accumulates
// errors rather than stopping at the first one, recovering at the next
// statement boundary (§4.B).
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	prev lexer.Token
	buf  []lexer.Token

	errors    []error
	panicMode bool
}

// New creates a parser reading from source, tagging diagnostics with
// filename; tty controls the lexer's own color/diagnostic hints.
func New(source, filename string, tty bool) *Parser {
	p := &Parser{lex: lexer.New(source, filename, tty)}
	p.advance()
	return p
}

// ParseRoot parses the whole token stream into a single *ast.Root.
func (p *Parser) ParseRoot() (*ast.Root, []error) {
	start := p.cur.Position
	root := &ast.Root{}

	for !p.isAtEnd() {
		p.skipNewlines()
		if p.isAtEnd() {
			break
		}

		switch p.cur.Kind {
		case lexer.Fun:
			root.Funcs = append(root.Funcs, p.parseFuncDecl())
		case lexer.Class:
			switch member := p.parseClassBlock().(type) {
			case *ast.Ext:
				root.Extensions = append(root.Extensions, member)
			default:
				root.Main = append(root.Main, member)
			}
		default:
			root.Main = append(root.Main, p.parseStatement())
		}

		if p.panicMode {
			p.synchronize()
		}
	}

	root.Span = p.span(start)
	return root, p.errors
}

// --- token stream plumbing ---

func (p *Parser) advance() {
	p.prev = p.cur
	if len(p.buf) > 0 {
		p.cur = p.buf[0]
		p.buf = p.buf[1:]
	} else {
		p.cur = p.lex.Next()
	}
}

func (p *Parser) check(k lexer.Kind) bool { return p.cur.Kind == k }

func (p *Parser) match(k lexer.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(k lexer.Kind, msg string) lexer.Token {
	if p.check(k) {
		t := p.cur
		p.advance()
		return t
	}
	p.error(msg)
	return p.cur
}

func (p *Parser) error(msg string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.errors = append(p.errors, fmt.Errorf("%s: %s (got %s)", p.cur.Position.String(), msg, p.cur.Kind))
}

func (p *Parser) isAtEnd() bool { return p.cur.Kind == lexer.EndOfInput }

func (p *Parser) skipNewlines() {
	for p.check(lexer.Newline) {
		p.advance()
	}
}

// atStatementEnd reports whether the current token cannot start a new
// expression, i.e. a bare `return`/`break`/`continue` carries no value.
func (p *Parser) atStatementEnd() bool {
	switch p.cur.Kind {
	case lexer.Newline, lexer.Unindent, lexer.EndOfInput:
		return true
	default:
		return false
	}
}

// synchronize discards tokens until a likely statement/declaration
// boundary, so one malformed construct doesn't cascade into unrelated
// errors.
func (p *Parser) synchronize() {
	p.panicMode = false
	for !p.isAtEnd() {
		switch p.cur.Kind {
		case lexer.Newline, lexer.Unindent:
			p.advance()
			return
		case lexer.Fun, lexer.Data, lexer.Class, lexer.Let, lexer.If,
			lexer.For, lexer.While, lexer.Match, lexer.Return, lexer.Import:
			return
		}
		p.advance()
	}
}

func (p *Parser) span(start lexer.Position) lexer.Span {
	return lexer.Span{Start: start, End: p.prev.Span().End}
}

// --- declarations ---

func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	start := p.cur.Position
	p.consume(lexer.Fun, "expected 'fun'")
	name := p.consume(lexer.Identifier, "expected function name").Lexeme

	var typeVars []string
	if p.match(lexer.Lt) {
		for {
			typeVars = append(typeVars, p.consume(lexer.Identifier, "expected type variable").Lexeme)
			if !p.match(lexer.Comma) {
				break
			}
		}
		p.consume(lexer.Gt, "expected '>' to close type variable list")
	}

	p.consume(lexer.LParen, "expected '(' after function name")
	var params []*ast.NamedVal
	if !p.check(lexer.RParen) {
		for {
			params = append(params, p.parseNamedVal())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RParen, "expected ')' after parameters")

	var ret *ast.TypeExpr
	if p.match(lexer.Arrow) {
		ret = p.parseTypeExpr()
	}

	var body ast.Node
	if p.match(lexer.Colon) {
		body = p.parseBlock()
	}

	return &ast.FuncDecl{
		Span: p.span(start), Name: name, Params: params, RetType: ret,
		TypeVars: typeVars, Body: body,
	}
}

func (p *Parser) parseNamedVal() *ast.NamedVal {
	start := p.cur.Position
	name := p.consume(lexer.Identifier, "expected parameter name").Lexeme
	p.consume(lexer.Colon, "expected ':' after parameter name")
	ty := p.parseTypeExpr()
	return &ast.NamedVal{Span: p.span(start), Name: name, Type: ty}
}

// parseTypeExpr parses a type annotation: an optional '*' pointer sigil,
// an optional '[' size ']' array suffix, any 'mut'/'ante' modifiers, the base
// name (a primitive keyword or an identifier), and optional '<...>'
// generic arguments.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	start := p.cur.Position

	isPtr := p.match(lexer.Star)

	isArray := false
	arrayLen := 0
	if p.match(lexer.LBracket) {
		isArray = true
		if p.check(lexer.IntLit) {
			arrayLen, _ = strconv.Atoi(p.cur.Lexeme)
			p.advance()
		}
		p.consume(lexer.RBracket, "expected ']' in array type")
	}

	var mods []lexer.Kind
	for p.check(lexer.Mut) || p.check(lexer.Ante) {
		mods = append(mods, p.cur.Kind)
		p.advance()
	}

	var name string
	if p.cur.Kind.IsPrimitiveType() {
		name = p.cur.Kind.String()
		p.advance()
	} else {
		name = p.consume(lexer.Identifier, "expected type name").Lexeme
	}

	te := &ast.TypeExpr{Name: name, IsPtr: isPtr, IsArray: isArray, ArrayLen: arrayLen, Modifiers: mods}

	if p.match(lexer.Lt) {
		for {
			te.Generics = append(te.Generics, p.parseTypeExpr())
			if !p.match(lexer.Comma) {
				break
			}
		}
		p.consume(lexer.Gt, "expected '>' to close generic argument list")
	}

	te.Span = p.span(start)
	return te
}

// parseDataDecl parses `data Name<T,...> = { field: T, ... }` (struct)
// or `data Name<T,...> = Tag(T) | Tag2 | ...` (tagged union).
func (p *Parser) parseDataDecl() *ast.DataDecl {
	start := p.cur.Position
	p.consume(lexer.Data, "expected 'data'")
	name := p.consume(lexer.Identifier, "expected type name").Lexeme

	var typeVars []string
	if p.match(lexer.Lt) {
		for {
			typeVars = append(typeVars, p.consume(lexer.Identifier, "expected type variable").Lexeme)
			if !p.match(lexer.Comma) {
				break
			}
		}
		p.consume(lexer.Gt, "expected '>' to close type variable list")
	}

	p.consume(lexer.Assign, "expected '=' in data declaration")

	if p.match(lexer.LBrace) {
		fields := p.parseFieldBlock()
		p.consume(lexer.RBrace, "expected '}' to close struct fields")
		return &ast.DataDecl{Span: p.span(start), Name: name, TypeVars: typeVars, Fields: fields}
	}

	variants := p.parseVariantList()
	return &ast.DataDecl{Span: p.span(start), Name: name, TypeVars: typeVars, Variants: variants}
}

func (p *Parser) parseFieldBlock() []*ast.NamedVal {
	var fields []*ast.NamedVal
	p.skipNewlines()
	for !p.check(lexer.RBrace) && !p.isAtEnd() {
		fields = append(fields, p.parseNamedVal())
		if !p.match(lexer.Comma) {
			p.skipNewlines()
			break
		}
		p.skipNewlines()
	}
	return fields
}

func (p *Parser) parseVariantList() []*ast.UnionVariant {
	var variants []*ast.UnionVariant
	for {
		start := p.cur.Position
		tag := p.consume(lexer.Identifier, "expected constructor name").Lexeme
		var fields []*ast.TypeExpr
		if p.match(lexer.LParen) {
			if !p.check(lexer.RParen) {
				for {
					fields = append(fields, p.parseTypeExpr())
					if !p.match(lexer.Comma) {
						break
					}
				}
			}
			p.consume(lexer.RParen, "expected ')' after constructor fields")
		}
		variants = append(variants, &ast.UnionVariant{Span: p.span(start), Tag: tag, Fields: fields})
		p.skipNewlines()
		if !p.match(lexer.Pipe) {
			break
		}
		p.skipNewlines()
	}
	return variants
}

// parseClassBlock parses `class Name:` followed by an indented list of
// function declarations. A class whose methods all carry bodies reads as
// an extension (implementations for an existing type); one whose methods
// are bare signatures reads as a trait (a set of required methods).
func (p *Parser) parseClassBlock() ast.Node {
	start := p.cur.Position
	p.consume(lexer.Class, "expected 'class'")
	name := p.consume(lexer.Identifier, "expected name after 'class'").Lexeme
	p.consume(lexer.Colon, "expected ':' after class name")
	p.consume(lexer.Indent, "expected indented class body")

	var methods []*ast.FuncDecl
	hasBody := false
	for !p.check(lexer.Unindent) && !p.isAtEnd() {
		m := p.parseFuncDecl()
		if m.Body != nil {
			hasBody = true
		}
		methods = append(methods, m)
		p.skipNewlines()
	}
	p.consume(lexer.Unindent, "expected end of class body")

	if hasBody {
		return &ast.Ext{Span: p.span(start), TypeName: name, Methods: methods}
	}
	return &ast.Trait{Span: p.span(start), Name: name, Methods: methods}
}

// --- statements ---

func (p *Parser) parseBlock() *ast.Block {
	start := p.cur.Position
	p.consume(lexer.Indent, "expected indented block")

	var stmts []ast.Node
	for !p.check(lexer.Unindent) && !p.isAtEnd() {
		stmts = append(stmts, p.parseStatement())
		p.skipNewlines()
		if p.panicMode {
			p.synchronize()
		}
	}
	p.consume(lexer.Unindent, "expected end of block")

	seq := &ast.Seq{Span: p.span(start), Stmts: stmts}
	return &ast.Block{Span: p.span(start), Body: seq}
}

func (p *Parser) parseStatement() ast.Node {
	switch p.cur.Kind {
	case lexer.Let:
		return p.parseLet()
	case lexer.If:
		return p.parseIf()
	case lexer.For:
		return p.parseFor()
	case lexer.While:
		return p.parseWhile()
	case lexer.Return:
		return p.parseRet()
	case lexer.Continue, lexer.Break:
		return p.parseJump()
	case lexer.Import:
		return p.parseImport()
	case lexer.Data:
		return p.parseDataDecl()
	default:
		return p.parseExprStatement()
	}
}

// parseLet parses `let [mut] name = expr` or a destructuring
// `let (a, b) = expr`.
func (p *Parser) parseLet() ast.Node {
	start := p.cur.Position
	p.consume(lexer.Let, "expected 'let'")
	mods := []lexer.Kind{lexer.Let}
	if p.match(lexer.Mut) {
		mods = append(mods, lexer.Mut)
	}

	ref := p.parseAssignTarget()
	p.consume(lexer.Assign, "expected '=' in let binding")
	expr := p.parseExpression()

	return &ast.VarAssign{Span: p.span(start), Ref: ref, Modifiers: mods, Expr: expr}
}

// parseAssignTarget parses the left side of a let binding: a bare name,
// or a parenthesized tuple of names for destructuring.
func (p *Parser) parseAssignTarget() ast.Node {
	start := p.cur.Position
	if p.match(lexer.LParen) {
		var elems []ast.Node
		if !p.check(lexer.RParen) {
			for {
				name := p.consume(lexer.Identifier, "expected name in destructuring pattern")
				elems = append(elems, &ast.Var{Span: name.Span(), Name: name.Lexeme})
				if !p.match(lexer.Comma) {
					break
				}
			}
		}
		p.consume(lexer.RParen, "expected ')' to close destructuring pattern")
		return &ast.Tuple{Span: p.span(start), Elems: elems}
	}
	name := p.consume(lexer.Identifier, "expected name in let binding")
	return &ast.Var{Span: name.Span(), Name: name.Lexeme}
}

// parseExprStatement parses a bare expression, a mutation (`target =
// expr`), or a compound assignment (`target += expr`).
func (p *Parser) parseExprStatement() ast.Node {
	start := p.cur.Position
	expr := p.parseExpression()

	if p.match(lexer.Assign) {
		rhs := p.parseExpression()
		return &ast.VarAssign{Span: p.span(start), Ref: expr, Expr: rhs}
	}
	if op, ok := compoundAssignOp(p.cur.Kind); ok {
		p.advance()
		rhs := p.parseExpression()
		combined := &ast.BinOp{Span: p.span(start), Op: op, Lhs: expr, Rhs: rhs}
		return &ast.VarAssign{Span: p.span(start), Ref: expr, Expr: combined}
	}
	return expr
}

func (p *Parser) parseIf() ast.Node {
	start := p.cur.Position
	p.consume(lexer.If, "expected 'if'")
	return p.parseIfTail(start)
}

func (p *Parser) parseIfTail(start lexer.Position) ast.Node {
	cond := p.parseExpression()
	p.consume(lexer.Colon, "expected ':' after if condition")
	then := p.parseBlock()

	var elseNode ast.Node
	if p.check(lexer.Elif) {
		elifStart := p.cur.Position
		p.advance()
		elseNode = p.parseIfTail(elifStart)
	} else if p.match(lexer.Else) {
		p.consume(lexer.Colon, "expected ':' after else")
		elseNode = p.parseBlock()
	}

	return &ast.If{Span: p.span(start), Cond: cond, Then: then, Else: elseNode}
}

func (p *Parser) parseFor() ast.Node {
	start := p.cur.Position
	p.consume(lexer.For, "expected 'for'")
	name := p.consume(lexer.Identifier, "expected loop variable").Lexeme
	p.consume(lexer.In, "expected 'in' after loop variable")
	rangeExpr := p.parseExpression()
	p.consume(lexer.Colon, "expected ':' after for range")
	body := p.parseBlock()
	return &ast.For{Span: p.span(start), VarName: name, Range: rangeExpr, Body: body}
}

func (p *Parser) parseWhile() ast.Node {
	start := p.cur.Position
	p.consume(lexer.While, "expected 'while'")
	cond := p.parseExpression()
	p.consume(lexer.Colon, "expected ':' after while condition")
	body := p.parseBlock()
	return &ast.While{Span: p.span(start), Cond: cond, Body: body}
}

func (p *Parser) parseRet() ast.Node {
	start := p.cur.Position
	p.consume(lexer.Return, "expected 'return'")
	var expr ast.Node
	if !p.atStatementEnd() {
		expr = p.parseExpression()
	}
	return &ast.Ret{Span: p.span(start), Expr: expr}
}

func (p *Parser) parseJump() ast.Node {
	start := p.cur.Position
	kind := p.cur.Kind
	p.advance()
	var expr ast.Node
	if !p.atStatementEnd() {
		expr = p.parseExpression()
	}
	return &ast.Jump{Span: p.span(start), Kind: kind, Expr: expr}
}

func (p *Parser) parseImport() ast.Node {
	start := p.cur.Position
	p.consume(lexer.Import, "expected 'import'")
	expr := p.parseExpression()
	return &ast.Import{Span: p.span(start), Expr: expr}
}

// --- pattern matching ---

func (p *Parser) parseMatchExpr() ast.Node {
	start := p.cur.Position
	p.consume(lexer.Match, "expected 'match'")
	scrutinee := p.parseExpression()
	p.consume(lexer.Colon, "expected ':' after match scrutinee")
	p.consume(lexer.Indent, "expected indented match body")

	var branches []*ast.MatchBranch
	for !p.check(lexer.Unindent) && !p.isAtEnd() {
		branches = append(branches, p.parseMatchBranch())
		p.skipNewlines()
	}
	p.consume(lexer.Unindent, "expected end of match body")

	return &ast.Match{Span: p.span(start), Expr: scrutinee, Branches: branches}
}

func (p *Parser) parseMatchBranch() *ast.MatchBranch {
	start := p.cur.Position
	pat := p.parsePattern()
	p.consume(lexer.FatArrow, "expected '=>' after pattern")
	branch := p.parseExpression()
	return &ast.MatchBranch{Span: p.span(start), Pattern: pat, Branch: branch}
}

// parsePattern parses one surface pattern: a variable/catch-all, a
// literal, a tuple, or a constructor (with or without binders). An
// identifier starting with an uppercase letter names a constructor
// (§4.F); anything else is a binding occurrence.
func (p *Parser) parsePattern() ast.Node {
	start := p.cur.Position

	switch p.cur.Kind {
	case lexer.Identifier:
		name := p.cur.Lexeme
		if isConstructorName(name) {
			p.advance()
			if p.match(lexer.LParen) {
				var binders []ast.Node
				if !p.check(lexer.RParen) {
					for {
						binders = append(binders, p.parsePattern())
						if !p.match(lexer.Comma) {
							break
						}
					}
				}
				p.consume(lexer.RParen, "expected ')' after constructor pattern")
				var expr ast.Node
				if len(binders) == 1 {
					expr = binders[0]
				} else if len(binders) > 1 {
					expr = &ast.Tuple{Span: p.span(start), Elems: binders}
				}
				return &ast.TypeCast{Span: p.span(start), Type: &ast.TypeExpr{Name: name}, Expr: expr}
			}
			return &ast.TypeExpr{Span: p.span(start), Name: name}
		}
		p.advance()
		return &ast.Var{Span: p.span(start), Name: name}
	case lexer.IntLit:
		t := p.cur
		p.advance()
		return &ast.IntLit{Span: t.Span(), Lexeme: t.Lexeme, TypeTag: t.Suffix}
	case lexer.FltLit:
		t := p.cur
		p.advance()
		return &ast.FltLit{Span: t.Span(), Lexeme: t.Lexeme, TypeTag: t.Suffix}
	case lexer.StrLit:
		t := p.cur
		p.advance()
		return &ast.StrLit{Span: t.Span(), Lexeme: t.Lexeme}
	case lexer.LParen:
		p.advance()
		var elems []ast.Node
		if !p.check(lexer.RParen) {
			for {
				elems = append(elems, p.parsePattern())
				if !p.match(lexer.Comma) {
					break
				}
			}
		}
		p.consume(lexer.RParen, "expected ')' to close tuple pattern")
		return &ast.Tuple{Span: p.span(start), Elems: elems}
	default:
		p.error("expected a pattern")
		p.advance()
		return &ast.Var{Span: p.span(start), Name: "_"}
	}
}

func isConstructorName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// --- expressions (precedence climbing) ---

func (p *Parser) parseExpression() ast.Node {
	return p.parseBinary(PrecEquality)
}

func (p *Parser) parseBinary(min Precedence) ast.Node {
	left := p.parseUnary()
	for {
		prec := getPrecedence(p.cur.Kind)
		if prec == PrecNone || prec < min {
			return left
		}
		if prec == PrecCall {
			left = p.parsePostfixOp(left)
			continue
		}
		op := p.cur.Kind
		p.advance()
		right := p.parseBinary(prec + 1)
		left = &ast.BinOp{Span: lexer.Span{Start: left.Location().Start, End: right.Location().End}, Op: op, Lhs: left, Rhs: right}
	}
}

func (p *Parser) parseUnary() ast.Node {
	if p.check(lexer.Minus) || p.check(lexer.Not) {
		start := p.cur.Position
		op := p.cur.Kind
		p.advance()
		rhs := p.parseUnary()
		return &ast.UnOp{Span: p.span(start), Op: op, Rhs: rhs}
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix applies any run of '.', '(', '[' suffixes to expr.
func (p *Parser) parsePostfix(expr ast.Node) ast.Node {
	for {
		switch p.cur.Kind {
		case lexer.Dot, lexer.LParen, lexer.LBracket:
			expr = p.parsePostfixOp(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parsePostfixOp(expr ast.Node) ast.Node {
	switch p.cur.Kind {
	case lexer.Dot:
		p.advance()
		name := p.consume(lexer.Identifier, "expected field name after '.'")
		rhs := &ast.Var{Span: name.Span(), Name: name.Lexeme}
		return &ast.BinOp{Span: lexer.Span{Start: expr.Location().Start, End: name.Span().End}, Op: lexer.Dot, Lhs: expr, Rhs: rhs}
	case lexer.LParen:
		return p.parseCall(expr)
	case lexer.LBracket:
		start := expr.Location().Start
		p.advance()
		index := p.parseExpression()
		end := p.cur.Span().End
		p.consume(lexer.RBracket, "expected ']' after index")
		return &ast.BinOp{Span: lexer.Span{Start: start, End: end}, Op: lexer.LBracket, Lhs: expr, Rhs: index}
	default:
		return expr
	}
}

// parseCall encodes a function call as a BinOp: the closed AST node set
// has no dedicated call node, so the callee and its argument tuple ride
// on the existing Lhs/Rhs shape, tagged with the '(' operator.
func (p *Parser) parseCall(callee ast.Node) ast.Node {
	start := callee.Location().Start
	p.consume(lexer.LParen, "expected '('")
	var args []ast.Node
	if !p.check(lexer.RParen) {
		for {
			args = append(args, p.parseExpression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	end := p.cur.Span().End
	p.consume(lexer.RParen, "expected ')' after arguments")
	tuple := &ast.Tuple{Span: lexer.Span{Start: start, End: end}, Elems: args}
	return &ast.BinOp{Span: lexer.Span{Start: start, End: end}, Op: lexer.LParen, Lhs: callee, Rhs: tuple}
}

func (p *Parser) parsePrimary() ast.Node {
	start := p.cur.Position

	switch p.cur.Kind {
	case lexer.IntLit:
		t := p.cur
		p.advance()
		return &ast.IntLit{Span: t.Span(), Lexeme: t.Lexeme, TypeTag: t.Suffix}
	case lexer.FltLit:
		t := p.cur
		p.advance()
		return &ast.FltLit{Span: t.Span(), Lexeme: t.Lexeme, TypeTag: t.Suffix}
	case lexer.StrLit:
		t := p.cur
		p.advance()
		return &ast.StrLit{Span: t.Span(), Lexeme: t.Lexeme}
	case lexer.CharLit:
		t := p.cur
		p.advance()
		return &ast.CharLit{Span: t.Span(), Lexeme: t.Lexeme}
	case lexer.True:
		p.advance()
		return &ast.BoolLit{Span: p.span(start), Value: true}
	case lexer.False:
		p.advance()
		return &ast.BoolLit{Span: p.span(start), Value: false}
	case lexer.Identifier:
		t := p.cur
		p.advance()
		return &ast.Var{Span: t.Span(), Name: t.Lexeme}
	case lexer.Match:
		return p.parseMatchExpr()
	case lexer.If:
		return p.parseIf()
	case lexer.LParen:
		p.advance()
		if p.check(lexer.RParen) {
			end := p.cur.Span().End
			p.advance()
			return &ast.Tuple{Span: lexer.Span{Start: start, End: end}}
		}
		first := p.parseExpression()
		if p.match(lexer.Comma) {
			elems := []ast.Node{first}
			if !p.check(lexer.RParen) {
				for {
					elems = append(elems, p.parseExpression())
					if !p.match(lexer.Comma) {
						break
					}
				}
			}
			end := p.cur.Span().End
			p.consume(lexer.RParen, "expected ')' to close tuple")
			return &ast.Tuple{Span: lexer.Span{Start: start, End: end}, Elems: elems}
		}
		p.consume(lexer.RParen, "expected ')'")
		return first
	case lexer.LBracket:
		p.advance()
		var elems []ast.Node
		if !p.check(lexer.RBracket) {
			for {
				elems = append(elems, p.parseExpression())
				if !p.match(lexer.Comma) {
					break
				}
			}
		}
		end := p.cur.Span().End
		p.consume(lexer.RBracket, "expected ']' to close array literal")
		return &ast.Array{Span: lexer.Span{Start: start, End: end}, Elems: elems}
	default:
		p.error(fmt.Sprintf("unexpected token %s", p.cur.Kind))
		tok := p.cur
		if !p.isAtEnd() {
			p.advance()
		}
		return &ast.Var{Span: tok.Span(), Name: "_"}
	}
}
