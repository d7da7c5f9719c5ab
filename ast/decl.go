package ast

// ---------------------------------------------------------------------------
// Declaration nodes
// ---------------------------------------------------------------------------

// ClassDecl is `class Ident ...`.
type ClassDecl struct {
	SpanVal Span
	Ident   *Ident
	Class   *Class
	Declare bool
}

func (n *ClassDecl) Span() Span  { return n.SpanVal }
func (n *ClassDecl) node()       {}
func (n *ClassDecl) moduleItem() {}
func (n *ClassDecl) stmt()       {}
func (n *ClassDecl) decl()       {}

// FnDecl is `function Ident(...) {...}`.
type FnDecl struct {
	SpanVal  Span
	Ident    *Ident
	Function *Function
	Declare  bool
}

func (n *FnDecl) Span() Span  { return n.SpanVal }
func (n *FnDecl) node()       {}
func (n *FnDecl) moduleItem() {}
func (n *FnDecl) stmt()       {}
func (n *FnDecl) decl()       {}

// VarDecl is a var, let or const declaration list.
type VarDecl struct {
	SpanVal Span
	Kind    string // "var", "let" or "const"
	Decls   []*VarDeclarator
	Declare bool
}

func (n *VarDecl) Span() Span  { return n.SpanVal }
func (n *VarDecl) node()       {}
func (n *VarDecl) moduleItem() {}
func (n *VarDecl) stmt()       {}
func (n *VarDecl) decl()       {}

// UsingDecl is a `using` or `await using` resource declaration list.
type UsingDecl struct {
	SpanVal Span
	IsAwait bool
	Decls   []*VarDeclarator
}

func (n *UsingDecl) Span() Span  { return n.SpanVal }
func (n *UsingDecl) node()       {}
func (n *UsingDecl) moduleItem() {}
func (n *UsingDecl) stmt()       {}
func (n *UsingDecl) decl()       {}

// VarDeclarator binds Name, optionally to Init.
type VarDeclarator struct {
	SpanVal  Span
	Name     Pat
	Init     Expr
	Definite bool
}

func (n *VarDeclarator) Span() Span { return n.SpanVal }
func (n *VarDeclarator) node()      {}

// ---------------------------------------------------------------------------
// Module declarations
// ---------------------------------------------------------------------------

// ImportSpecifier is one binding of an import declaration.
type ImportSpecifier interface {
	Node
	importSpecifier() // marker method
}

// ImportDecl is `import Specifiers from Src`.
type ImportDecl struct {
	SpanVal    Span
	Specifiers []ImportSpecifier
	Src        *Str
	TypeOnly   bool
}

func (n *ImportDecl) Span() Span  { return n.SpanVal }
func (n *ImportDecl) node()       {}
func (n *ImportDecl) moduleItem() {}
func (n *ImportDecl) moduleDecl() {}

// ImportDefaultSpecifier is `import Local from ...`.
type ImportDefaultSpecifier struct {
	SpanVal Span
	Local   *Ident
}

func (n *ImportDefaultSpecifier) Span() Span       { return n.SpanVal }
func (n *ImportDefaultSpecifier) node()            {}
func (n *ImportDefaultSpecifier) importSpecifier() {}

// ImportNamedSpecifier is `import { Imported as Local } from ...`.
// Imported is nil when the local name is the imported name; otherwise it
// is an *Ident or a *Str.
type ImportNamedSpecifier struct {
	SpanVal  Span
	Local    *Ident
	Imported Expr
	TypeOnly bool
}

func (n *ImportNamedSpecifier) Span() Span       { return n.SpanVal }
func (n *ImportNamedSpecifier) node()            {}
func (n *ImportNamedSpecifier) importSpecifier() {}

// ImportNamespaceSpecifier is `import * as Local from ...`.
type ImportNamespaceSpecifier struct {
	SpanVal Span
	Local   *Ident
}

func (n *ImportNamespaceSpecifier) Span() Span       { return n.SpanVal }
func (n *ImportNamespaceSpecifier) node()            {}
func (n *ImportNamespaceSpecifier) importSpecifier() {}

// ExportDecl is `export Decl`.
type ExportDecl struct {
	SpanVal Span
	Decl    Decl
}

func (n *ExportDecl) Span() Span  { return n.SpanVal }
func (n *ExportDecl) node()       {}
func (n *ExportDecl) moduleItem() {}
func (n *ExportDecl) moduleDecl() {}

// ExportSpecifier is one entry of a named export.
type ExportSpecifier interface {
	Node
	exportSpecifier() // marker method
}

// NamedExport is `export { Specifiers } from Src`; Src is optional.
type NamedExport struct {
	SpanVal    Span
	Specifiers []ExportSpecifier
	Src        *Str
	TypeOnly   bool
}

func (n *NamedExport) Span() Span  { return n.SpanVal }
func (n *NamedExport) node()       {}
func (n *NamedExport) moduleItem() {}
func (n *NamedExport) moduleDecl() {}

// ExportNamedSpecifier is `Orig as Exported`. Both are *Ident or *Str;
// Exported is nil when not renamed.
type ExportNamedSpecifier struct {
	SpanVal  Span
	Orig     Expr
	Exported Expr
	TypeOnly bool
}

func (n *ExportNamedSpecifier) Span() Span       { return n.SpanVal }
func (n *ExportNamedSpecifier) node()            {}
func (n *ExportNamedSpecifier) exportSpecifier() {}

// ExportNamespaceSpecifier is `* as Name`.
type ExportNamespaceSpecifier struct {
	SpanVal Span
	Name    Expr
}

func (n *ExportNamespaceSpecifier) Span() Span       { return n.SpanVal }
func (n *ExportNamespaceSpecifier) node()            {}
func (n *ExportNamespaceSpecifier) exportSpecifier() {}

// ExportDefaultSpecifier is the `Exported` in `export Exported from "m"`.
type ExportDefaultSpecifier struct {
	SpanVal  Span
	Exported *Ident
}

func (n *ExportDefaultSpecifier) Span() Span       { return n.SpanVal }
func (n *ExportDefaultSpecifier) node()            {}
func (n *ExportDefaultSpecifier) exportSpecifier() {}

// ExportDefaultDecl is `export default` followed by a *ClassExpr, *FnExpr
// or *TsInterfaceDecl.
type ExportDefaultDecl struct {
	SpanVal Span
	Decl    Node
}

func (n *ExportDefaultDecl) Span() Span  { return n.SpanVal }
func (n *ExportDefaultDecl) node()       {}
func (n *ExportDefaultDecl) moduleItem() {}
func (n *ExportDefaultDecl) moduleDecl() {}

// ExportDefaultExpr is `export default Expr`.
type ExportDefaultExpr struct {
	SpanVal Span
	Expr    Expr
}

func (n *ExportDefaultExpr) Span() Span  { return n.SpanVal }
func (n *ExportDefaultExpr) node()       {}
func (n *ExportDefaultExpr) moduleItem() {}
func (n *ExportDefaultExpr) moduleDecl() {}

// ExportAll is `export * from Src`.
type ExportAll struct {
	SpanVal  Span
	Src      *Str
	TypeOnly bool
}

func (n *ExportAll) Span() Span  { return n.SpanVal }
func (n *ExportAll) node()       {}
func (n *ExportAll) moduleItem() {}
func (n *ExportAll) moduleDecl() {}
