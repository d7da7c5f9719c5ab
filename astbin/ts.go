package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// TypeScript annotations, parameters and names
// ---------------------------------------------------------------------------

func (e *Encoder) encodeTypeAnn(ann *ast.TsTypeAnn) {
	e.push(KindTsTypeAnn, FlagNone, 1, ann.SpanVal)
	e.encodeType(ann.Type)
}

func (e *Encoder) encodeTypeParamDecl(d *ast.TsTypeParamDecl) {
	e.push(KindTsTypeParamDecl, FlagNone, len(d.Params), d.SpanVal)
	for _, p := range d.Params {
		e.encodeTypeParam(p)
	}
}

// encodeTypeParam writes the fixed three slots name, constraint|Empty and
// default|Empty.
func (e *Encoder) encodeTypeParam(p *ast.TsTypeParam) {
	if p == nil || p.Name == nil {
		e.missing(KindTsTypeParam, ast.Span{}, "type parameter")
		return
	}
	e.push(KindTsTypeParam, FlagNone, 3, p.SpanVal)
	e.encodeIdent(p.Name)
	e.optType(p.Constraint, p.SpanVal)
	e.optType(p.Default, p.SpanVal)
}

func (e *Encoder) encodeTypeArgs(args *ast.TsTypeParamInstantiation) {
	e.push(KindTsTypeParamInstantiation, FlagNone, len(args.Params), args.SpanVal)
	for _, t := range args.Params {
		e.encodeType(t)
	}
}

func (e *Encoder) encodeExprWithTypeArgs(n *ast.TsExprWithTypeArgs) {
	if n == nil {
		e.missing(KindTsExprWithTypeArgs, ast.Span{}, "heritage clause")
		return
	}
	e.push(KindTsExprWithTypeArgs, FlagNone, 1+b2i(n.TypeArgs != nil), n.SpanVal)
	e.encodeExpr(n.Expr)
	if n.TypeArgs != nil {
		e.encodeTypeArgs(n.TypeArgs)
	}
}

func (e *Encoder) encodeEntityName(name ast.TsEntityName) {
	switch n := name.(type) {
	case nil:
		e.missing(KindTsQualifiedName, ast.Span{}, "entity name")
	case *ast.Ident:
		e.leaf(KindIdent, n.SpanVal)
	case *ast.TsQualifiedName:
		e.push(KindTsQualifiedName, FlagNone, 2, n.SpanVal)
		e.encodeEntityName(n.Left)
		e.encodeIdent(n.Right)
	default:
		e.unsupported(n, fmt.Sprintf("entity name %T", n))
	}
}

// encodeSignature writes the tail shared by function-like types and
// members: [typeParams], params..., [returnType].
func (e *Encoder) encodeSignature(tp *ast.TsTypeParamDecl, params []ast.Pat, ann *ast.TsTypeAnn) {
	if tp != nil {
		e.encodeTypeParamDecl(tp)
	}
	for _, p := range params {
		e.encodePat(p)
	}
	if ann != nil {
		e.encodeTypeAnn(ann)
	}
}

func signatureCount(tp *ast.TsTypeParamDecl, params []ast.Pat, ann *ast.TsTypeAnn) int {
	return b2i(tp != nil) + len(params) + b2i(ann != nil)
}

// ---------------------------------------------------------------------------
// TypeScript type members
// ---------------------------------------------------------------------------

func (e *Encoder) encodeTypeElement(el ast.TsTypeElement) {
	if e.err != nil {
		return
	}
	switch n := el.(type) {
	case nil:
		e.missing(KindTsInterfaceBody, ast.Span{}, "type member")

	case *ast.TsPropertySignature:
		e.push(KindTsPropertySignature, FlagNone, 1+b2i(n.TypeAnn != nil), n.SpanVal)
		e.encodePropName(n.Key)
		if n.TypeAnn != nil {
			e.encodeTypeAnn(n.TypeAnn)
		}

	case *ast.TsMethodSignature:
		e.push(KindTsMethodSignature, FlagNone, 1+signatureCount(n.TypeParams, n.Params, n.TypeAnn), n.SpanVal)
		e.encodePropName(n.Key)
		e.encodeSignature(n.TypeParams, n.Params, n.TypeAnn)

	case *ast.TsCallSignatureDecl:
		e.push(KindTsCallSignature, FlagNone, signatureCount(n.TypeParams, n.Params, n.TypeAnn), n.SpanVal)
		e.encodeSignature(n.TypeParams, n.Params, n.TypeAnn)

	case *ast.TsConstructSignatureDecl:
		e.push(KindTsConstructSignature, FlagNone, signatureCount(n.TypeParams, n.Params, n.TypeAnn), n.SpanVal)
		e.encodeSignature(n.TypeParams, n.Params, n.TypeAnn)

	case *ast.TsIndexSignature:
		e.push(KindTsIndexSignature, FlagNone, len(n.Params)+b2i(n.TypeAnn != nil), n.SpanVal)
		e.encodeSignature(nil, n.Params, n.TypeAnn)

	default:
		e.unsupported(n, fmt.Sprintf("type member %T", n))
	}
}

// ---------------------------------------------------------------------------
// TypeScript types
// ---------------------------------------------------------------------------

func (e *Encoder) optType(t ast.TsType, span ast.Span) {
	if t == nil {
		e.empty(span)
		return
	}
	e.encodeType(t)
}

func (e *Encoder) encodeType(typ ast.TsType) {
	if e.err != nil {
		return
	}
	switch n := typ.(type) {
	case nil:
		e.missing(KindInvalid, ast.Span{}, "type")

	case *ast.TsKeywordType:
		e.leaf(KindTsKeywordType, n.SpanVal)

	case *ast.TsThisType:
		e.leaf(KindTsThisType, n.SpanVal)

	case *ast.TsFnType:
		if n.TypeAnn == nil {
			e.missing(KindTsFnType, n.SpanVal, "return type")
			return
		}
		e.push(KindTsFnType, FlagNone, signatureCount(n.TypeParams, n.Params, n.TypeAnn), n.SpanVal)
		e.encodeSignature(n.TypeParams, n.Params, n.TypeAnn)

	case *ast.TsConstructorType:
		if n.TypeAnn == nil {
			e.missing(KindTsConstructorType, n.SpanVal, "return type")
			return
		}
		e.push(KindTsConstructorType, FlagNone, signatureCount(n.TypeParams, n.Params, n.TypeAnn), n.SpanVal)
		e.encodeSignature(n.TypeParams, n.Params, n.TypeAnn)

	case *ast.TsTypeRef:
		e.push(KindTsTypeRef, FlagNone, 1+b2i(n.TypeParams != nil), n.SpanVal)
		e.encodeEntityName(n.TypeName)
		if n.TypeParams != nil {
			e.encodeTypeArgs(n.TypeParams)
		}

	case *ast.TsTypeQuery:
		e.push(KindTsTypeQuery, FlagNone, 1+b2i(n.TypeArgs != nil), n.SpanVal)
		switch q := n.ExprName.(type) {
		case *ast.TsImportType:
			e.encodeType(q)
		case ast.TsEntityName:
			e.encodeEntityName(q)
		case nil:
			e.missing(KindTsTypeQuery, n.SpanVal, "query name")
		default:
			e.unsupported(q, fmt.Sprintf("type query %T", q))
		}
		if n.TypeArgs != nil {
			e.encodeTypeArgs(n.TypeArgs)
		}

	case *ast.TsTypeLit:
		e.push(KindTsTypeLit, FlagNone, len(n.Members), n.SpanVal)
		for _, m := range n.Members {
			e.encodeTypeElement(m)
		}

	case *ast.TsArrayType:
		e.push(KindTsArrayType, FlagNone, 1, n.SpanVal)
		e.encodeType(n.ElemType)

	case *ast.TsTupleType:
		e.encodeTypeList(KindTsTupleType, n.SpanVal, n.ElemTypes)

	case *ast.TsOptionalType:
		e.push(KindTsOptionalType, FlagNone, 1, n.SpanVal)
		e.encodeType(n.TypeAnn)

	case *ast.TsRestType:
		e.push(KindTsRestType, FlagNone, 1, n.SpanVal)
		e.encodeType(n.TypeAnn)

	case *ast.TsUnionType:
		e.encodeTypeList(KindTsUnionType, n.SpanVal, n.Types)

	case *ast.TsIntersectionType:
		e.encodeTypeList(KindTsIntersectionType, n.SpanVal, n.Types)

	case *ast.TsConditionalType:
		e.push(KindTsConditionalType, FlagNone, 4, n.SpanVal)
		e.encodeType(n.CheckType)
		e.encodeType(n.Extends)
		e.encodeType(n.TrueType)
		e.encodeType(n.FalseType)

	case *ast.TsInferType:
		e.push(KindTsInferType, FlagNone, 1, n.SpanVal)
		e.encodeTypeParam(n.TypeParam)

	case *ast.TsParenthesizedType:
		e.push(KindTsParenthesizedType, FlagNone, 1, n.SpanVal)
		e.encodeType(n.TypeAnn)

	case *ast.TsTypeOperator:
		e.push(KindTsTypeOperator, FlagNone, 1, n.SpanVal)
		e.encodeType(n.TypeAnn)

	case *ast.TsIndexedAccessType:
		e.push(KindTsIndexedAccessType, FlagNone, 2, n.SpanVal)
		e.encodeType(n.ObjType)
		e.encodeType(n.IndexType)

	case *ast.TsMappedType:
		e.push(KindTsMappedType, FlagNone, 3, n.SpanVal)
		e.encodeTypeParam(n.TypeParam)
		e.optType(n.NameType, n.SpanVal)
		e.optType(n.TypeAnn, n.SpanVal)

	case *ast.TsLitType:
		e.push(KindTsLitType, FlagNone, 1, n.SpanVal)
		switch l := n.Lit.(type) {
		case *ast.Tpl:
			e.encodeTpl(l)
		case ast.Lit:
			e.encodeLit(l)
		case *ast.UnaryExpr:
			// Negative number literals such as -1.
			e.encodeExpr(l)
		case nil:
			e.missing(KindTsLitType, n.SpanVal, "literal")
		default:
			e.unsupported(l, fmt.Sprintf("literal type %T", l))
		}

	case *ast.TsTypePredicate:
		e.push(KindTsTypePredicate, FlagNone, 1+b2i(n.TypeAnn != nil), n.SpanVal)
		switch p := n.ParamName.(type) {
		case *ast.Ident:
			e.leaf(KindIdent, p.SpanVal)
		case *ast.TsThisType:
			e.leaf(KindTsThisType, p.SpanVal)
		case nil:
			e.missing(KindTsTypePredicate, n.SpanVal, "predicate parameter")
		default:
			e.unsupported(p, fmt.Sprintf("predicate parameter %T", p))
		}
		if n.TypeAnn != nil {
			e.encodeTypeAnn(n.TypeAnn)
		}

	case *ast.TsImportType:
		if n.Arg == nil {
			e.missing(KindTsImportType, n.SpanVal, "import argument")
			return
		}
		e.push(KindTsImportType, FlagNone, 1+b2i(n.Qualifier != nil)+b2i(n.TypeArgs != nil), n.SpanVal)
		e.encodeLit(n.Arg)
		if n.Qualifier != nil {
			e.encodeEntityName(n.Qualifier)
		}
		if n.TypeArgs != nil {
			e.encodeTypeArgs(n.TypeArgs)
		}

	default:
		e.unsupported(n, fmt.Sprintf("type %T", n))
	}
}

func (e *Encoder) encodeTypeList(kind Kind, span ast.Span, types []ast.TsType) {
	e.push(kind, FlagNone, len(types), span)
	for _, t := range types {
		e.encodeType(t)
	}
}
