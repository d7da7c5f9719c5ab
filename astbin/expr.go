package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (e *Encoder) encodeExpr(expr ast.Expr) {
	if e.err != nil {
		return
	}
	switch n := expr.(type) {
	case nil:
		e.missing(KindInvalid, ast.Span{}, "expression")

	case *ast.Ident:
		e.leaf(KindIdent, n.SpanVal)

	case *ast.ThisExpr:
		e.leaf(KindThis, n.SpanVal)

	case *ast.Super:
		e.leaf(KindSuper, n.SpanVal)

	case *ast.Import:
		e.leaf(KindImportCallee, n.SpanVal)

	case *ast.ArrayLit:
		e.push(KindArray, FlagNone, len(n.Elems)+countSpreads(n.Elems), n.SpanVal)
		for _, el := range n.Elems {
			if el == nil {
				e.empty(n.SpanVal)
				continue
			}
			e.encodeExprOrSpread(el)
		}

	case *ast.ObjectLit:
		spreads := 0
		for _, p := range n.Props {
			if _, ok := p.(*ast.SpreadElement); ok {
				spreads++
			}
		}
		e.push(KindObject, FlagNone, len(n.Props)+spreads, n.SpanVal)
		for _, p := range n.Props {
			e.encodeProp(p)
		}

	case *ast.FnExpr:
		e.encodeFunction(KindFnExpr, n.SpanVal, n.Ident, n.Function)

	case *ast.UnaryExpr:
		e.push(KindUnary, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Arg)

	case *ast.UpdateExpr:
		e.push(KindUpdate, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Arg)

	case *ast.BinExpr:
		e.push(KindBin, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Left)
		e.encodeExpr(n.Right)

	case *ast.AssignExpr:
		e.push(KindAssign, FlagNone, 2, n.SpanVal)
		e.encodePat(n.Left)
		e.encodeExpr(n.Right)

	case *ast.MemberExpr:
		e.push(KindMember, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Obj)
		e.encodeExpr(n.Prop)

	case *ast.SuperPropExpr:
		if n.Obj == nil {
			e.missing(KindSuperProp, n.SpanVal, "super")
			return
		}
		e.push(KindSuperProp, FlagNone, 2, n.SpanVal)
		e.leaf(KindSuper, n.Obj.SpanVal)
		e.encodeExpr(n.Prop)

	case *ast.CondExpr:
		e.push(KindCond, FlagNone, 3, n.SpanVal)
		e.encodeExpr(n.Test)
		e.encodeExpr(n.Cons)
		e.encodeExpr(n.Alt)

	case *ast.CallExpr:
		e.encodeCall(KindCall, n.SpanVal, n.Callee, n.TypeArgs, n.Args)

	case *ast.NewExpr:
		e.encodeCall(KindNew, n.SpanVal, n.Callee, n.TypeArgs, n.Args)

	case *ast.SeqExpr:
		e.push(KindSeq, FlagNone, len(n.Exprs), n.SpanVal)
		for _, x := range n.Exprs {
			e.encodeExpr(x)
		}

	case *ast.ParenExpr:
		// Parentheses have no kind of their own.
		e.push(KindSeq, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Expr)

	case *ast.Tpl:
		e.encodeTpl(n)

	case *ast.TaggedTpl:
		if n.Tpl == nil {
			e.missing(KindTaggedTpl, n.SpanVal, "template")
			return
		}
		e.push(KindTaggedTpl, FlagNone, 2+b2i(n.TypeArgs != nil), n.SpanVal)
		e.encodeExpr(n.Tag)
		if n.TypeArgs != nil {
			e.encodeTypeArgs(n.TypeArgs)
		}
		e.encodeTpl(n.Tpl)

	case *ast.ArrowExpr:
		e.encodeArrow(n)

	case *ast.ClassExpr:
		e.encodeClass(KindClassExpr, n.SpanVal, n.Ident, n.Class)

	case *ast.YieldExpr:
		e.push(KindYield, FlagNone, b2i(n.Arg != nil), n.SpanVal)
		if n.Arg != nil {
			e.encodeExpr(n.Arg)
		}

	case *ast.MetaPropExpr:
		e.leaf(KindMetaProp, n.SpanVal)

	case *ast.AwaitExpr:
		e.push(KindAwait, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Arg)

	case *ast.TsTypeAssertion:
		e.push(KindTsTypeAssertion, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Expr)
		e.encodeType(n.TypeAnn)

	case *ast.TsConstAssertion:
		e.push(KindTsConstAssertion, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Expr)

	case *ast.TsNonNullExpr:
		e.push(KindTsNonNull, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Expr)

	case *ast.TsAsExpr:
		e.push(KindTsAs, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Expr)
		e.encodeType(n.TypeAnn)

	case *ast.TsSatisfiesExpr:
		e.push(KindTsSatisfies, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Expr)
		e.encodeType(n.TypeAnn)

	case *ast.TsInstantiation:
		if n.TypeArgs == nil {
			e.missing(KindTsInstantiation, n.SpanVal, "type arguments")
			return
		}
		e.push(KindTsInstantiation, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Expr)
		e.encodeTypeArgs(n.TypeArgs)

	case *ast.PrivateName:
		e.leaf(KindPrivateName, n.SpanVal)

	case *ast.OptChainExpr:
		e.push(KindOptChain, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Base)

	case *ast.OptCall:
		e.encodeCall(KindCall, n.SpanVal, n.Callee, n.TypeArgs, n.Args)

	case ast.Lit:
		e.encodeLit(n)

	case *ast.JSXElement:
		e.encodeJSXElement(n)

	case *ast.JSXFragment:
		e.encodeJSXFragment(n)

	case *ast.JSXMemberExpr, *ast.JSXNamespacedName:
		e.encodeJSXName(n.(ast.JSXName))

	case *ast.JSXEmptyExpr:
		e.leaf(KindJSXEmpty, n.SpanVal)

	case *ast.Invalid:
		e.unsupported(n, "invalid expression")

	default:
		e.unsupported(n, fmt.Sprintf("expression %T", n))
	}
}

// encodeCall writes a Call or New record:
//
//	callee, [typeArgs], args... with a Spread marker before each spread arg
//
// so the count is 1 + (typeArgs?1) + len(args) + spreads.
func (e *Encoder) encodeCall(kind Kind, span ast.Span, callee ast.Expr, typeArgs *ast.TsTypeParamInstantiation, args []*ast.ExprOrSpread) {
	count := 1 + b2i(typeArgs != nil) + len(args) + countSpreads(args)
	e.push(kind, FlagNone, count, span)
	e.encodeExpr(callee)
	if typeArgs != nil {
		e.encodeTypeArgs(typeArgs)
	}
	for _, a := range args {
		if a == nil {
			e.missing(kind, span, "argument")
			return
		}
		e.encodeExprOrSpread(a)
	}
}

func countSpreads(list []*ast.ExprOrSpread) int {
	n := 0
	for _, el := range list {
		if el != nil && el.Spread != nil {
			n++
		}
	}
	return n
}

// encodeExprOrSpread writes an element, preceded by a zero-count Spread
// marker when it is spread. The marker is a sibling, not a parent.
func (e *Encoder) encodeExprOrSpread(el *ast.ExprOrSpread) {
	if el.Spread != nil {
		e.leaf(KindSpread, *el.Spread)
	}
	e.encodeExpr(el.Expr)
}

func (e *Encoder) encodeTpl(n *ast.Tpl) {
	e.push(KindTpl, FlagNone, len(n.Quasis)+len(n.Exprs), n.SpanVal)
	for i := 0; i < max(len(n.Quasis), len(n.Exprs)); i++ {
		if i < len(n.Quasis) {
			q := n.Quasis[i]
			if q == nil {
				e.missing(KindTpl, n.SpanVal, "template element")
				return
			}
			e.leaf(KindTplElement, q.SpanVal)
		}
		if i < len(n.Exprs) {
			e.encodeExpr(n.Exprs[i])
		}
	}
}

func (e *Encoder) encodeArrow(n *ast.ArrowExpr) {
	count := 1 + len(n.Params) + b2i(n.ReturnType != nil) + b2i(n.TypeParams != nil)
	e.push(KindArrow, FlagNone, count, n.SpanVal)
	if n.TypeParams != nil {
		e.encodeTypeParamDecl(n.TypeParams)
	}
	for _, p := range n.Params {
		e.encodePat(p)
	}
	if n.ReturnType != nil {
		e.encodeTypeAnn(n.ReturnType)
	}
	switch body := n.Body.(type) {
	case nil:
		e.missing(KindArrow, n.SpanVal, "arrow body")
	case *ast.BlockStmt:
		e.encodeBlock(body)
	case ast.Expr:
		e.encodeExpr(body)
	default:
		e.unsupported(body, fmt.Sprintf("arrow body %T", body))
	}
}

// ---------------------------------------------------------------------------
// Object literal members and keys
// ---------------------------------------------------------------------------

func (e *Encoder) encodeProp(prop ast.Prop) {
	if e.err != nil {
		return
	}
	switch p := prop.(type) {
	case nil:
		e.missing(KindObject, ast.Span{}, "property")

	case *ast.Ident:
		// Shorthand `{ a }`.
		e.leaf(KindIdent, p.SpanVal)

	case *ast.KeyValueProp:
		e.push(KindObjProperty, FlagNone, 2, p.SpanVal)
		e.encodePropName(p.Key)
		e.encodeExpr(p.Value)

	case *ast.AssignProp:
		if p.Key == nil {
			e.missing(KindAssign, p.SpanVal, "property key")
			return
		}
		e.push(KindAssign, FlagNone, 2, p.SpanVal)
		e.encodeIdent(p.Key)
		e.encodeExpr(p.Value)

	case *ast.GetterProp:
		e.push(KindGetterProp, FlagNone, 3, p.SpanVal)
		e.encodePropName(p.Key)
		if p.TypeAnn != nil {
			e.encodeTypeAnn(p.TypeAnn)
		} else {
			e.empty(p.SpanVal)
		}
		e.optBlock(p.Body, p.SpanVal)

	case *ast.SetterProp:
		e.push(KindSetterProp, FlagNone, 3, p.SpanVal)
		e.encodePropName(p.Key)
		e.encodePat(p.Param)
		e.optBlock(p.Body, p.SpanVal)

	case *ast.MethodProp:
		if p.Function == nil {
			e.missing(KindMethodProp, p.SpanVal, "method function")
			return
		}
		e.push(KindMethodProp, FlagNone, 2, p.SpanVal)
		e.encodePropName(p.Key)
		e.encodeFunction(KindFnExpr, p.Function.SpanVal, nil, p.Function)

	case *ast.SpreadElement:
		e.leaf(KindSpread, p.Dot3)
		e.encodeExpr(p.Expr)

	default:
		e.unsupported(p, fmt.Sprintf("property %T", p))
	}
}

func (e *Encoder) optBlock(b *ast.BlockStmt, span ast.Span) {
	if b == nil {
		e.empty(span)
		return
	}
	e.encodeBlock(b)
}

// encodePropName writes a property key. Identifier and literal keys are
// written as their own leaves; computed keys get a wrapper record.
func (e *Encoder) encodePropName(key ast.PropName) {
	switch k := key.(type) {
	case nil:
		e.missing(KindInvalid, ast.Span{}, "property key")
	case *ast.Ident:
		e.leaf(KindIdent, k.SpanVal)
	case *ast.PrivateName:
		e.leaf(KindPrivateName, k.SpanVal)
	case *ast.Str:
		e.encodeLit(k)
	case *ast.Num:
		e.encodeLit(k)
	case *ast.BigInt:
		e.encodeLit(k)
	case *ast.ComputedPropName:
		e.push(KindComputedPropName, FlagNone, 1, k.SpanVal)
		e.encodeExpr(k.Expr)
	default:
		e.unsupported(k, fmt.Sprintf("property key %T", k))
	}
}
