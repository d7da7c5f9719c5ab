package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Functions and classes
// ---------------------------------------------------------------------------

// encodeFunction writes the shared function layout used by declarations,
// expressions and methods:
//
//	ident|Empty, typeParams|Empty, params..., returnType|Empty, body|Empty
func (e *Encoder) encodeFunction(kind Kind, span ast.Span, ident *ast.Ident, fn *ast.Function) {
	if fn == nil {
		e.missing(kind, span, "function")
		return
	}
	e.push(kind, FlagNone, 4+len(fn.Params), span)
	e.optIdent(ident, span)
	if fn.TypeParams != nil {
		e.encodeTypeParamDecl(fn.TypeParams)
	} else {
		e.empty(span)
	}
	for _, p := range fn.Params {
		e.encodePat(p)
	}
	if fn.ReturnType != nil {
		e.encodeTypeAnn(fn.ReturnType)
	} else {
		e.empty(span)
	}
	if fn.Body != nil {
		e.encodeBlock(fn.Body)
	} else {
		e.empty(span)
	}
}

// encodeClass writes the shared class layout:
//
//	ident|Empty, typeParams|Empty, superClass|Empty, superTypeArgs|Empty,
//	implements..., members...
func (e *Encoder) encodeClass(kind Kind, span ast.Span, ident *ast.Ident, c *ast.Class) {
	if c == nil {
		e.missing(kind, span, "class")
		return
	}
	e.push(kind, FlagNone, 4+len(c.Implements)+len(c.Body), span)
	e.optIdent(ident, span)
	if c.TypeParams != nil {
		e.encodeTypeParamDecl(c.TypeParams)
	} else {
		e.empty(span)
	}
	e.optExpr(c.SuperClass, span)
	if c.SuperTypeParams != nil {
		e.encodeTypeArgs(c.SuperTypeParams)
	} else {
		e.empty(span)
	}
	for _, impl := range c.Implements {
		e.encodeExprWithTypeArgs(impl)
	}
	for _, m := range c.Body {
		e.encodeClassMember(m)
	}
}

func (e *Encoder) encodeClassMember(member ast.ClassMember) {
	if e.err != nil {
		return
	}
	switch m := member.(type) {
	case nil:
		e.missing(KindClass, ast.Span{}, "class member")

	case *ast.ClassMethod:
		if m.Function == nil {
			e.missing(KindClassMethod, m.SpanVal, "method function")
			return
		}
		e.push(KindClassMethod, FlagNone, 2, m.SpanVal)
		e.encodePropName(m.Key)
		e.encodeFunction(KindFnExpr, m.Function.SpanVal, nil, m.Function)

	case *ast.ClassProp:
		e.push(KindClassProp, FlagNone, 3, m.SpanVal)
		e.encodePropName(m.Key)
		if m.TypeAnn != nil {
			e.encodeTypeAnn(m.TypeAnn)
		} else {
			e.empty(m.SpanVal)
		}
		e.optExpr(m.Value, m.SpanVal)

	case *ast.StaticBlock:
		if m.Body == nil {
			e.missing(KindStaticBlock, m.SpanVal, "static block body")
			return
		}
		e.push(KindStaticBlock, FlagNone, 1, m.SpanVal)
		e.encodeBlock(m.Body)

	case *ast.EmptyStmt:
		e.leaf(KindEmpty, m.SpanVal)

	case *ast.TsIndexSignature:
		e.encodeTypeElement(m)

	default:
		e.unsupported(m, fmt.Sprintf("class member %T", m))
	}
}
