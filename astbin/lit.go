package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// encodeLit writes a literal. Literal values are not stored; consumers
// slice the source with the record span.
func (e *Encoder) encodeLit(lit ast.Lit) {
	switch n := lit.(type) {
	case nil:
		e.missing(KindInvalid, ast.Span{}, "literal")
	case *ast.Str:
		e.leaf(KindStringLiteral, n.SpanVal)
	case *ast.Bool:
		e.leaf(KindBool, n.SpanVal)
	case *ast.Null:
		e.leaf(KindNull, n.SpanVal)
	case *ast.Num:
		e.leaf(KindNum, n.SpanVal)
	case *ast.BigInt:
		e.leaf(KindBigInt, n.SpanVal)
	case *ast.Regex:
		e.leaf(KindRegex, n.SpanVal)
	case *ast.JSXText:
		e.leaf(KindJSXText, n.SpanVal)
	default:
		e.unsupported(n, fmt.Sprintf("literal %T", n))
	}
}
