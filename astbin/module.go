package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Module declarations
// ---------------------------------------------------------------------------

func (e *Encoder) encodeModuleDecl(decl ast.ModuleDecl) {
	if e.err != nil {
		return
	}
	switch n := decl.(type) {
	case *ast.ImportDecl:
		if n.Src == nil {
			e.missing(KindImport, n.SpanVal, "import source")
			return
		}
		e.push(KindImport, FlagNone, len(n.Specifiers)+1, n.SpanVal)
		for _, s := range n.Specifiers {
			e.encodeImportSpecifier(s)
		}
		e.encodeLit(n.Src)

	case *ast.ExportDecl:
		e.push(KindExportDecl, FlagNone, 1, n.SpanVal)
		e.encodeDecl(n.Decl)

	case *ast.NamedExport:
		e.push(KindExportNamed, FlagNone, len(n.Specifiers)+b2i(n.Src != nil), n.SpanVal)
		for _, s := range n.Specifiers {
			e.encodeExportSpecifier(s)
		}
		if n.Src != nil {
			e.encodeLit(n.Src)
		}

	case *ast.ExportDefaultDecl:
		e.push(KindExportDefaultDecl, FlagNone, 1, n.SpanVal)
		switch d := n.Decl.(type) {
		case nil:
			e.missing(KindExportDefaultDecl, n.SpanVal, "default declaration")
		case ast.Decl:
			e.encodeDecl(d)
		case ast.Expr:
			e.encodeExpr(d)
		default:
			e.unsupported(d, fmt.Sprintf("default declaration %T", d))
		}

	case *ast.ExportDefaultExpr:
		e.push(KindExportDefaultExpr, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Expr)

	case *ast.ExportAll:
		if n.Src == nil {
			e.missing(KindExportAll, n.SpanVal, "export source")
			return
		}
		e.push(KindExportAll, FlagNone, 1, n.SpanVal)
		e.encodeLit(n.Src)

	case *ast.TsImportEqualsDecl:
		if n.ID == nil {
			e.missing(KindTsImportEquals, n.SpanVal, "import-equals name")
			return
		}
		e.push(KindTsImportEquals, FlagNone, 2, n.SpanVal)
		e.encodeIdent(n.ID)
		switch ref := n.ModuleRef.(type) {
		case nil:
			e.missing(KindTsImportEquals, n.SpanVal, "module reference")
		case *ast.Str:
			e.encodeLit(ref)
		case ast.TsEntityName:
			e.encodeEntityName(ref)
		default:
			e.unsupported(ref, fmt.Sprintf("module reference %T", ref))
		}

	case *ast.TsExportAssignment:
		e.push(KindTsExportAssignment, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Expr)

	case *ast.TsNamespaceExportDecl:
		if n.ID == nil {
			e.missing(KindTsNamespaceExport, n.SpanVal, "namespace name")
			return
		}
		e.push(KindTsNamespaceExport, FlagNone, 1, n.SpanVal)
		e.encodeIdent(n.ID)

	default:
		e.unsupported(n, fmt.Sprintf("module declaration %T", n))
	}
}

func (e *Encoder) encodeImportSpecifier(spec ast.ImportSpecifier) {
	switch s := spec.(type) {
	case nil:
		e.missing(KindImport, ast.Span{}, "import specifier")
	case *ast.ImportDefaultSpecifier:
		e.encodeLocal(KindImportDefaultSpecifier, s.SpanVal, s.Local)
	case *ast.ImportNamespaceSpecifier:
		e.encodeLocal(KindImportNamespaceSpecifier, s.SpanVal, s.Local)
	case *ast.ImportNamedSpecifier:
		if s.Local == nil {
			e.missing(KindImportNamedSpecifier, s.SpanVal, "local name")
			return
		}
		// The imported name comes first when the binding is renamed.
		e.push(KindImportNamedSpecifier, FlagNone, 1+b2i(s.Imported != nil), s.SpanVal)
		if s.Imported != nil {
			e.encodeExpr(s.Imported)
		}
		e.encodeIdent(s.Local)
	default:
		e.unsupported(s, fmt.Sprintf("import specifier %T", s))
	}
}

// encodeLocal writes a one-child specifier record wrapping a local name.
func (e *Encoder) encodeLocal(kind Kind, span ast.Span, local *ast.Ident) {
	if local == nil {
		e.missing(kind, span, "local name")
		return
	}
	e.push(kind, FlagNone, 1, span)
	e.encodeIdent(local)
}

func (e *Encoder) encodeExportSpecifier(spec ast.ExportSpecifier) {
	switch s := spec.(type) {
	case nil:
		e.missing(KindExportNamed, ast.Span{}, "export specifier")
	case *ast.ExportNamedSpecifier:
		e.push(KindExportNamedSpecifier, FlagNone, 1+b2i(s.Exported != nil), s.SpanVal)
		e.encodeExpr(s.Orig)
		if s.Exported != nil {
			e.encodeExpr(s.Exported)
		}
	case *ast.ExportNamespaceSpecifier:
		e.push(KindExportNamespaceSpecifier, FlagNone, 1, s.SpanVal)
		e.encodeExpr(s.Name)
	case *ast.ExportDefaultSpecifier:
		e.encodeLocal(KindExportDefaultSpecifier, s.SpanVal, s.Exported)
	default:
		e.unsupported(s, fmt.Sprintf("export specifier %T", s))
	}
}
