package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

func (e *Encoder) encodeDecl(decl ast.Decl) {
	if e.err != nil {
		return
	}
	switch n := decl.(type) {
	case nil:
		e.missing(KindInvalid, ast.Span{}, "declaration")

	case *ast.ClassDecl:
		e.encodeClass(KindClass, n.SpanVal, n.Ident, n.Class)

	case *ast.FnDecl:
		e.encodeFunction(KindFn, n.SpanVal, n.Ident, n.Function)

	case *ast.VarDecl:
		e.encodeDeclarators(KindVar, n.SpanVal, n.Decls)

	case *ast.UsingDecl:
		e.encodeDeclarators(KindUsing, n.SpanVal, n.Decls)

	case *ast.TsInterfaceDecl:
		if n.ID == nil || n.Body == nil {
			e.missing(KindTsInterface, n.SpanVal, "interface name or body")
			return
		}
		count := 2 + len(n.Extends) + b2i(n.TypeParams != nil)
		e.push(KindTsInterface, FlagNone, count, n.SpanVal)
		e.encodeIdent(n.ID)
		if n.TypeParams != nil {
			e.encodeTypeParamDecl(n.TypeParams)
		}
		for _, h := range n.Extends {
			e.encodeExprWithTypeArgs(h)
		}
		e.push(KindTsInterfaceBody, FlagNone, len(n.Body.Body), n.Body.SpanVal)
		for _, m := range n.Body.Body {
			e.encodeTypeElement(m)
		}

	case *ast.TsTypeAliasDecl:
		if n.ID == nil {
			e.missing(KindTsTypeAlias, n.SpanVal, "alias name")
			return
		}
		e.push(KindTsTypeAlias, FlagNone, 2+b2i(n.TypeParams != nil), n.SpanVal)
		e.encodeIdent(n.ID)
		if n.TypeParams != nil {
			e.encodeTypeParamDecl(n.TypeParams)
		}
		e.encodeType(n.TypeAnn)

	case *ast.TsEnumDecl:
		if n.ID == nil {
			e.missing(KindTsEnum, n.SpanVal, "enum name")
			return
		}
		e.push(KindTsEnum, FlagNone, 1+len(n.Members), n.SpanVal)
		e.encodeIdent(n.ID)
		for _, m := range n.Members {
			if m == nil {
				e.missing(KindTsEnum, n.SpanVal, "enum member")
				return
			}
			e.push(KindTsEnumMember, FlagNone, 1+b2i(m.Init != nil), m.SpanVal)
			e.encodeExpr(m.ID)
			if m.Init != nil {
				e.encodeExpr(m.Init)
			}
		}

	case *ast.TsModuleDecl:
		e.encodeTsModule(n)

	default:
		e.unsupported(n, fmt.Sprintf("declaration %T", n))
	}
}

func (e *Encoder) encodeDeclarators(kind Kind, span ast.Span, decls []*ast.VarDeclarator) {
	e.push(kind, FlagNone, len(decls), span)
	for _, d := range decls {
		if d == nil {
			e.missing(kind, span, "declarator")
			return
		}
		e.push(KindVarDeclarator, FlagNone, 1+b2i(d.Init != nil), d.SpanVal)
		e.encodePat(d.Name)
		if d.Init != nil {
			e.encodeExpr(d.Init)
		}
	}
}

// encodeTsModule writes a namespace. Dotted names such as `a.b.c` arrive
// as nested declarations and are written as nested TsModule records.
func (e *Encoder) encodeTsModule(n *ast.TsModuleDecl) {
	e.push(KindTsModule, FlagNone, 1+b2i(n.Body != nil), n.SpanVal)
	e.encodeExpr(n.ID)
	switch body := n.Body.(type) {
	case nil:
	case *ast.TsModuleBlock:
		e.push(KindTsModuleBlock, FlagNone, len(body.Body), body.SpanVal)
		for _, item := range body.Body {
			e.encodeModuleItem(item)
		}
	case *ast.TsModuleDecl:
		e.encodeTsModule(body)
	default:
		e.unsupported(body, fmt.Sprintf("namespace body %T", body))
	}
}

// encodeIdent writes a reference or declaration name as a leaf.
func (e *Encoder) encodeIdent(id *ast.Ident) {
	if id == nil {
		e.missing(KindIdent, ast.Span{}, "identifier")
		return
	}
	e.leaf(KindIdent, id.SpanVal)
}

// optIdent writes id, or an EmptyExpr placeholder when id is nil.
func (e *Encoder) optIdent(id *ast.Ident, span ast.Span) {
	if id == nil {
		e.empty(span)
		return
	}
	e.encodeIdent(id)
}
