// Package ast defines the in-memory syntax tree for JavaScript, JSX and
// TypeScript source files that astbin encodes.
//
// The tree is produced by an external parser (see package estree for the
// JSON bridge). Every node carries the byte-offset span it covers in the
// original source; nothing here resolves names or checks syntax.
package ast

// ---------------------------------------------------------------------------
// AST: Abstract Syntax Tree for JavaScript / TypeScript
// ---------------------------------------------------------------------------

// Span is a half-open byte-offset range [Start, End) in the source file.
type Span struct {
	Start uint32
	End   uint32
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() Span
	node() // marker method
}

// ModuleItem is a top-level item of a module: a statement or a module
// declaration (import / export).
type ModuleItem interface {
	Node
	moduleItem() // marker method
}

// Stmt is the interface for statement nodes. Every declaration is also a
// statement.
type Stmt interface {
	ModuleItem
	stmt() // marker method
}

// Decl is the interface for declaration nodes.
type Decl interface {
	Stmt
	decl() // marker method
}

// ModuleDecl is the interface for import / export declarations.
type ModuleDecl interface {
	ModuleItem
	moduleDecl() // marker method
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	expr() // marker method
}

// Pat is the interface for binding and assignment patterns.
type Pat interface {
	Node
	pat() // marker method
}

// ---------------------------------------------------------------------------
// Program
// ---------------------------------------------------------------------------

// Program is the root of a source file: either a *Module or a *Script.
type Program interface {
	Node
	program() // marker method
}

// Module is a program that contains import or export declarations.
type Module struct {
	SpanVal Span
	Body    []ModuleItem
}

func (n *Module) Span() Span { return n.SpanVal }
func (n *Module) node()      {}
func (n *Module) program()   {}

// Script is a program without module declarations.
type Script struct {
	SpanVal Span
	Body    []Stmt
}

func (n *Script) Span() Span { return n.SpanVal }
func (n *Script) node()      {}
func (n *Script) program()   {}

// NewProgram classifies items as a module when any of them is an import or
// export declaration, and as a script otherwise.
func NewProgram(span Span, items []ModuleItem) Program {
	stmts := make([]Stmt, 0, len(items))
	for _, it := range items {
		s, ok := it.(Stmt)
		if !ok {
			return &Module{SpanVal: span, Body: items}
		}
		stmts = append(stmts, s)
	}
	return &Script{SpanVal: span, Body: stmts}
}

// Items returns the top-level items of p in source order.
func Items(p Program) []ModuleItem {
	switch p := p.(type) {
	case *Module:
		return p.Body
	case *Script:
		items := make([]ModuleItem, len(p.Body))
		for i, s := range p.Body {
			items[i] = s
		}
		return items
	}
	return nil
}

// Invalid stands in for a construct the parser could not represent. It is
// usable in any expression, pattern, statement, type or member position.
type Invalid struct {
	SpanVal Span
}

func (n *Invalid) Span() Span     { return n.SpanVal }
func (n *Invalid) node()          {}
func (n *Invalid) moduleItem()    {}
func (n *Invalid) stmt()          {}
func (n *Invalid) expr()          {}
func (n *Invalid) pat()           {}
func (n *Invalid) prop()          {}
func (n *Invalid) objectPatProp() {}
func (n *Invalid) classMember()   {}
func (n *Invalid) jsxChild()      {}
func (n *Invalid) tsType()        {}
func (n *Invalid) tsTypeElement() {}
