package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

func (e *Encoder) encodePat(pat ast.Pat) {
	if e.err != nil {
		return
	}
	switch n := pat.(type) {
	case nil:
		e.missing(KindInvalid, ast.Span{}, "pattern")

	case *ast.Ident:
		e.push(KindIdent, FlagNone, b2i(n.TypeAnn != nil), n.SpanVal)
		if n.TypeAnn != nil {
			e.encodeTypeAnn(n.TypeAnn)
		}

	case *ast.ArrayPat:
		e.push(KindArrayPat, FlagNone, len(n.Elems)+b2i(n.TypeAnn != nil), n.SpanVal)
		for _, el := range n.Elems {
			if el == nil {
				e.empty(n.SpanVal)
				continue
			}
			e.encodePat(el)
		}
		if n.TypeAnn != nil {
			e.encodeTypeAnn(n.TypeAnn)
		}

	case *ast.ObjectPat:
		e.push(KindObjectPat, FlagNone, len(n.Props)+b2i(n.TypeAnn != nil), n.SpanVal)
		for _, p := range n.Props {
			e.encodeObjectPatProp(p)
		}
		if n.TypeAnn != nil {
			e.encodeTypeAnn(n.TypeAnn)
		}

	case *ast.AssignPat:
		e.push(KindAssignPat, FlagNone, 2, n.SpanVal)
		e.encodePat(n.Left)
		e.encodeExpr(n.Right)

	case *ast.RestPat:
		e.encodeRest(n)

	case *ast.ExprPat:
		e.encodeExpr(n.Expr)

	case *ast.TsParamProp:
		e.push(KindTsParamProp, FlagNone, 1, n.SpanVal)
		e.encodePat(n.Param)

	case *ast.Invalid:
		e.unsupported(n, "invalid pattern")

	default:
		e.unsupported(n, fmt.Sprintf("pattern %T", n))
	}
}

func (e *Encoder) encodeRest(n *ast.RestPat) {
	e.push(KindRestPat, FlagNone, 1+b2i(n.TypeAnn != nil), n.SpanVal)
	e.encodePat(n.Arg)
	if n.TypeAnn != nil {
		e.encodeTypeAnn(n.TypeAnn)
	}
}

func (e *Encoder) encodeObjectPatProp(prop ast.ObjectPatProp) {
	switch p := prop.(type) {
	case nil:
		e.missing(KindObjectPat, ast.Span{}, "object pattern property")
	case *ast.KeyValuePatProp:
		e.push(KindKeyValuePatProp, FlagNone, 2, p.SpanVal)
		e.encodePropName(p.Key)
		e.encodePat(p.Value)
	case *ast.AssignPatProp:
		if p.Key == nil {
			e.missing(KindAssignPatProp, p.SpanVal, "property key")
			return
		}
		e.push(KindAssignPatProp, FlagNone, 1+b2i(p.Value != nil), p.SpanVal)
		e.encodeIdent(p.Key)
		if p.Value != nil {
			e.encodeExpr(p.Value)
		}
	case *ast.RestPat:
		e.encodeRest(p)
	default:
		e.unsupported(p, fmt.Sprintf("object pattern property %T", p))
	}
}
