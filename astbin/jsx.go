package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// JSX
// ---------------------------------------------------------------------------

func (e *Encoder) encodeJSXElement(n *ast.JSXElement) {
	if n.Opening == nil {
		e.missing(KindJSXElement, n.SpanVal, "opening element")
		return
	}
	e.push(KindJSXElement, FlagNone, 1+len(n.Children)+b2i(n.Closing != nil), n.SpanVal)

	op := n.Opening
	e.push(KindJSXOpeningElement, FlagNone, 1+b2i(op.TypeArgs != nil)+len(op.Attrs), op.SpanVal)
	e.encodeJSXName(op.Name)
	if op.TypeArgs != nil {
		e.encodeTypeArgs(op.TypeArgs)
	}
	for _, a := range op.Attrs {
		e.encodeJSXAttr(a)
	}

	e.encodeJSXChildren(n.Children)
	if n.Closing != nil {
		e.push(KindJSXClosingElement, FlagNone, 1, n.Closing.SpanVal)
		e.encodeJSXName(n.Closing.Name)
	}
}

func (e *Encoder) encodeJSXFragment(n *ast.JSXFragment) {
	e.push(KindJSXFragment, FlagNone, len(n.Children), n.SpanVal)
	e.encodeJSXChildren(n.Children)
}

func (e *Encoder) encodeJSXChildren(children []ast.JSXChild) {
	for _, c := range children {
		if e.err != nil {
			return
		}
		switch c := c.(type) {
		case nil:
			e.missing(KindJSXElement, ast.Span{}, "child")
		case *ast.JSXText:
			e.encodeLit(c)
		case *ast.JSXExprContainer:
			e.encodeJSXExprContainer(c)
		case *ast.JSXSpreadChild:
			e.push(KindJSXSpreadChild, FlagNone, 1, c.SpanVal)
			e.encodeExpr(c.Expr)
		case *ast.JSXElement:
			e.encodeJSXElement(c)
		case *ast.JSXFragment:
			e.encodeJSXFragment(c)
		default:
			e.unsupported(c, fmt.Sprintf("JSX child %T", c))
		}
	}
}

func (e *Encoder) encodeJSXExprContainer(c *ast.JSXExprContainer) {
	e.push(KindJSXExprContainer, FlagNone, 1, c.SpanVal)
	e.encodeExpr(c.Expr)
}

func (e *Encoder) encodeJSXAttr(attr ast.Node) {
	switch a := attr.(type) {
	case nil:
		e.missing(KindJSXOpeningElement, ast.Span{}, "attribute")
	case *ast.JSXAttr:
		e.push(KindJSXAttr, FlagNone, 1+b2i(a.Value != nil), a.SpanVal)
		e.encodeJSXName(a.Name)
		switch v := a.Value.(type) {
		case nil:
		case *ast.Str:
			e.encodeLit(v)
		case *ast.JSXExprContainer:
			e.encodeJSXExprContainer(v)
		case *ast.JSXElement:
			e.encodeJSXElement(v)
		case *ast.JSXFragment:
			e.encodeJSXFragment(v)
		default:
			e.unsupported(v, fmt.Sprintf("JSX attribute value %T", v))
		}
	case *ast.JSXSpreadAttr:
		e.push(KindJSXSpreadAttr, FlagNone, 1, a.SpanVal)
		e.encodeExpr(a.Expr)
	default:
		e.unsupported(a, fmt.Sprintf("JSX attribute %T", a))
	}
}

func (e *Encoder) encodeJSXName(name ast.JSXName) {
	switch n := name.(type) {
	case nil:
		e.missing(KindJSXElement, ast.Span{}, "element name")
	case *ast.Ident:
		e.leaf(KindIdent, n.SpanVal)
	case *ast.JSXMemberExpr:
		if n.Prop == nil {
			e.missing(KindJSXMember, n.SpanVal, "member property")
			return
		}
		e.push(KindJSXMember, FlagNone, 2, n.SpanVal)
		e.encodeJSXName(n.Obj)
		e.encodeIdent(n.Prop)
	case *ast.JSXNamespacedName:
		if n.NS == nil || n.Name == nil {
			e.missing(KindJSXNamespacedName, n.SpanVal, "namespace or name")
			return
		}
		e.push(KindJSXNamespacedName, FlagNone, 2, n.SpanVal)
		e.encodeIdent(n.NS)
		e.encodeIdent(n.Name)
	default:
		e.unsupported(n, fmt.Sprintf("JSX name %T", n))
	}
}
