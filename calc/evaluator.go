package calc

import (
	"strconv"
	"strings"

	"github.com/lookbusy1344/bigint/bigint"
)

// Evaluator evaluates calculator expressions over arbitrary-precision
// integers. It keeps named variables, a history of results addressable
// as $1, $2, ... and the previous result as "ans".
type Evaluator struct {
	vars    map[string]*bigint.Int
	history []*bigint.Int

	// MaxPowExponent bounds the exponent accepted by ** and pow();
	// zero means unbounded
	MaxPowExponent uint64
}

// NewEvaluator creates a new expression evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{
		vars: make(map[string]*bigint.Int),
	}
}

// HistoryLen returns the number of stored results
func (e *Evaluator) HistoryLen() int {
	return len(e.history)
}

// Value returns a result from history by number ($1 is the first)
func (e *Evaluator) Value(number int) (*bigint.Int, bool) {
	if number < 1 || number > len(e.history) {
		return nil, false
	}
	return e.history[number-1], true
}

// Vars returns a copy of the variables currently assigned, keyed by
// name; iteration order is not defined
func (e *Evaluator) Vars() map[string]*bigint.Int {
	out := make(map[string]*bigint.Int, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}

// ClearVars drops all variables and history
func (e *Evaluator) ClearVars() {
	e.vars = make(map[string]*bigint.Int)
	e.history = e.history[:0]
}

// Evaluate evaluates one expression or assignment and returns the
// result. Successful results are appended to the history.
func (e *Evaluator) Evaluate(input string) (*bigint.Int, error) {
	p := &exprParser{
		eval:  e,
		input: input,
		lex:   NewLexer(input),
	}
	p.advance()

	// assignment: IDENT = expr
	if p.tok.Type == TokenIdent && p.peekAssign() {
		name := p.tok.Text
		p.advance() // the identifier
		p.advance() // the '='
		v, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if p.tok.Type != TokenEOF {
			return nil, newErrorf(input, p.tok.Pos, "unexpected %q", p.tok.Text)
		}
		e.vars[name] = v
		e.remember(v)
		return v, nil
	}

	v, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, newErrorf(input, p.tok.Pos, "unexpected %q", p.tok.Text)
	}
	e.remember(v)
	return v, nil
}

func (e *Evaluator) remember(v *bigint.Int) {
	e.history = append(e.history, v)
	e.vars["ans"] = v
}

// exprParser is a precedence-climbing parser over the token stream
type exprParser struct {
	eval  *Evaluator
	input string
	lex   *Lexer
	tok   Token
}

func (p *exprParser) advance() {
	p.tok = p.lex.Next()
}

// peekAssign reports whether the token after the current one is a bare
// '=' without consuming anything
func (p *exprParser) peekAssign() bool {
	save := *p.lex
	next := p.lex.Next()
	*p.lex = save
	return next.Type == TokenAssign
}

// Binding powers; higher binds tighter. Power is right-associative.
func precedence(t TokenType) int {
	switch t {
	case TokenEq, TokenNe, TokenLt, TokenLe, TokenGt, TokenGe:
		return 1
	case TokenShl, TokenShr:
		return 2
	case TokenPlus, TokenMinus:
		return 3
	case TokenStar, TokenSlash, TokenPercent:
		return 4
	case TokenPower:
		return 5
	default:
		return 0
	}
}

func (p *exprParser) parseExpr(minPrec int) (*bigint.Int, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec := precedence(p.tok.Type)
		if prec < minPrec {
			return left, nil
		}
		op := p.tok
		p.advance()

		next := prec + 1
		if op.Type == TokenPower {
			next = prec // right-associative
		}
		right, err := p.parseExpr(next)
		if err != nil {
			return nil, err
		}
		left, err = p.apply(op, left, right)
		if err != nil {
			return nil, err
		}
	}
}

func (p *exprParser) parseUnary() (*bigint.Int, error) {
	switch p.tok.Type {
	case TokenPlus:
		p.advance()
		return p.parseUnary()
	case TokenMinus:
		p.advance()
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return bigint.New().Neg(v), nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (*bigint.Int, error) {
	tok := p.tok
	switch tok.Type {
	case TokenNumber:
		p.advance()
		v, rest, err := bigint.Parse(tok.Text)
		if err != nil {
			return nil, newErrorf(p.input, tok.Pos, "bad number %q: %v", tok.Text, err)
		}
		if rest != "" {
			return nil, newErrorf(p.input, tok.Pos,
				"number %q has a fractional part", tok.Text)
		}
		return v, nil

	case TokenHistory:
		p.advance()
		num, err := strconv.Atoi(strings.TrimPrefix(tok.Text, "$"))
		if err != nil {
			return nil, newErrorf(p.input, tok.Pos, "invalid value reference %q", tok.Text)
		}
		v, ok := p.eval.Value(num)
		if !ok {
			return nil, newErrorf(p.input, tok.Pos, "value %s not in history", tok.Text)
		}
		return v, nil

	case TokenIdent:
		p.advance()
		if p.tok.Type == TokenLParen {
			return p.parseCall(tok)
		}
		if v, ok := p.eval.vars[tok.Text]; ok {
			return v, nil
		}
		return nil, newErrorf(p.input, tok.Pos, "unknown identifier %q", tok.Text)

	case TokenLParen:
		p.advance()
		v, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if p.tok.Type != TokenRParen {
			return nil, newError(p.input, p.tok.Pos, "missing closing parenthesis")
		}
		p.advance()
		return v, nil

	case TokenEOF:
		return nil, newError(p.input, tok.Pos, "unexpected end of expression")

	default:
		return nil, newErrorf(p.input, tok.Pos, "unexpected %q", tok.Text)
	}
}

// parseCall parses a function call; the identifier token has been
// consumed and the current token is the opening parenthesis
func (p *exprParser) parseCall(name Token) (*bigint.Int, error) {
	p.advance() // the '('
	var args []*bigint.Int
	if p.tok.Type != TokenRParen {
		for {
			v, err := p.parseExpr(1)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			if p.tok.Type != TokenComma {
				break
			}
			p.advance()
		}
	}
	if p.tok.Type != TokenRParen {
		return nil, newError(p.input, p.tok.Pos, "missing closing parenthesis")
	}
	p.advance()
	return p.call(name, args)
}

func (p *exprParser) call(name Token, args []*bigint.Int) (*bigint.Int, error) {
	arity := func(n int) error {
		if len(args) != n {
			return newErrorf(p.input, name.Pos,
				"%s expects %d argument(s), got %d", name.Text, n, len(args))
		}
		return nil
	}
	z := bigint.New()
	switch name.Text {
	case "abs":
		if err := arity(1); err != nil {
			return nil, err
		}
		return z.Abs(args[0]), nil
	case "gcd":
		if err := arity(2); err != nil {
			return nil, err
		}
		return z.GCD(args[0], args[1]), nil
	case "pow":
		if err := arity(2); err != nil {
			return nil, err
		}
		if err := p.checkExponent(name, args[1]); err != nil {
			return nil, err
		}
		if err := z.Pow(args[0], args[1]); err != nil {
			return nil, newErrorf(p.input, name.Pos, "%v", err)
		}
		return z, nil
	case "log":
		if err := arity(2); err != nil {
			return nil, err
		}
		if err := z.Log(args[0], args[1]); err != nil {
			return nil, newErrorf(p.input, name.Pos, "%v", err)
		}
		return z, nil
	case "cmp":
		if err := arity(2); err != nil {
			return nil, err
		}
		return z.SetInt64(int64(args[0].Cmp(args[1]))), nil
	default:
		return nil, newErrorf(p.input, name.Pos, "unknown function %q", name.Text)
	}
}

// checkExponent enforces the configured bound on pow exponents
func (p *exprParser) checkExponent(at Token, exp *bigint.Int) error {
	limit := p.eval.MaxPowExponent
	if limit == 0 || exp.Sign() < 0 {
		return nil
	}
	v, err := exp.Uint64()
	if err != nil || v > limit {
		return newErrorf(p.input, at.Pos, "exponent exceeds limit %d", limit)
	}
	return nil
}

func (p *exprParser) apply(op Token, left, right *bigint.Int) (*bigint.Int, error) {
	z := bigint.New()
	boolInt := func(b bool) *bigint.Int {
		if b {
			return z.SetInt64(1)
		}
		return z.SetInt64(0)
	}
	switch op.Type {
	case TokenPlus:
		return z.Add(left, right), nil
	case TokenMinus:
		return z.Sub(left, right), nil
	case TokenStar:
		return z.Mul(left, right), nil
	case TokenSlash:
		if err := z.Quo(left, right); err != nil {
			return nil, newError(p.input, op.Pos, "division by zero")
		}
		return z, nil
	case TokenPercent:
		if err := z.Rem(left, right); err != nil {
			return nil, newError(p.input, op.Pos, "division by zero")
		}
		return z, nil
	case TokenPower:
		if err := p.checkExponent(op, right); err != nil {
			return nil, err
		}
		if err := z.Pow(left, right); err != nil {
			return nil, newErrorf(p.input, op.Pos, "%v", err)
		}
		return z, nil
	case TokenShl:
		if err := z.Shl(left, right); err != nil {
			return nil, newErrorf(p.input, op.Pos, "%v", err)
		}
		return z, nil
	case TokenShr:
		if err := z.Shr(left, right); err != nil {
			return nil, newErrorf(p.input, op.Pos, "%v", err)
		}
		return z, nil
	case TokenEq:
		return boolInt(left.Cmp(right) == 0), nil
	case TokenNe:
		return boolInt(left.Cmp(right) != 0), nil
	case TokenLt:
		return boolInt(left.Cmp(right) < 0), nil
	case TokenLe:
		return boolInt(left.Cmp(right) <= 0), nil
	case TokenGt:
		return boolInt(left.Cmp(right) > 0), nil
	case TokenGe:
		return boolInt(left.Cmp(right) >= 0), nil
	default:
		return nil, newErrorf(p.input, op.Pos, "unexpected operator %q", op.Text)
	}
}
