// Package estree converts ESTree JSON, as printed by acorn, espree or
// typescript-estree, into the syntax tree of package ast.
//
// Spans are taken from "start"/"end" when present and from "range"
// otherwise. Node types with no ast equivalent become *ast.Invalid so the
// encoder can mark or reject them.
package estree

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/chazu/astbin/ast"
)

var (
	// ErrMalformed means the document is not ESTree-shaped JSON.
	ErrMalformed = errors.New("malformed ESTree document")
	// ErrModuleSyntax means import or export syntax was found in a file
	// loaded as a script.
	ErrModuleSyntax = errors.New("module syntax in script")
)

// SourceType selects how the top level is classified.
type SourceType int

const (
	// SourceAuto trusts the document's "sourceType" and otherwise treats
	// the file as a module when it contains import or export declarations.
	SourceAuto SourceType = iota
	SourceModule
	SourceScript
)

// ParseSourceType maps a config value to a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	switch s {
	case "", "auto":
		return SourceAuto, nil
	case "module":
		return SourceModule, nil
	case "script":
		return SourceScript, nil
	}
	return SourceAuto, fmt.Errorf("unknown source type %q", s)
}

func (s SourceType) String() string {
	switch s {
	case SourceModule:
		return "module"
	case SourceScript:
		return "script"
	}
	return "auto"
}

// Options configures Parse.
type Options struct {
	SourceType SourceType
}

// Parse converts one ESTree Program document.
func Parse(data []byte, opts Options) (ast.Program, error) {
	p := &parser{opts: opts}
	root := p.object(data)
	if p.err != nil {
		return nil, p.err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if t := root.typ(); t != "Program" {
		return nil, fmt.Errorf("%w: root node is %q, want Program", ErrMalformed, t)
	}
	prog := p.program(root)
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

// parser carries the first error seen; once set, every conversion
// returns zero values and the error is reported by Parse.
type parser struct {
	opts Options
	err  error
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *parser) malformed(o object, format string, args ...any) {
	p.fail(fmt.Errorf("%w: %s at %d: %s", ErrMalformed, o.typ(), o.span().Start, fmt.Sprintf(format, args...)))
}

// ---------------------------------------------------------------------------
// Raw JSON access
// ---------------------------------------------------------------------------

// object is one undecoded ESTree node.
type object map[string]json.RawMessage

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// object decodes raw as a node. It returns nil for a missing or null node.
func (p *parser) object(raw json.RawMessage) object {
	if p.err != nil || isNull(raw) {
		return nil
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		p.fail(fmt.Errorf("%w: %v", ErrMalformed, err))
		return nil
	}
	return o
}

func (o object) typ() string { return o.str("type") }

func (o object) str(key string) string {
	var s string
	if isNull(o[key]) || json.Unmarshal(o[key], &s) != nil {
		return ""
	}
	return s
}

func (o object) bool(key string) bool {
	var b bool
	if isNull(o[key]) || json.Unmarshal(o[key], &b) != nil {
		return false
	}
	return b
}

func (o object) list(key string) []json.RawMessage {
	var l []json.RawMessage
	if isNull(o[key]) || json.Unmarshal(o[key], &l) != nil {
		return nil
	}
	return l
}

// first returns the first non-null field among keys. Parsers disagree on
// some field names, e.g. typeArguments vs typeParameters.
func (o object) first(keys ...string) json.RawMessage {
	for _, k := range keys {
		if !isNull(o[k]) {
			return o[k]
		}
	}
	return nil
}

func (o object) span() ast.Span {
	var start, end uint32
	if json.Unmarshal(o["start"], &start) == nil && json.Unmarshal(o["end"], &end) == nil {
		return ast.Span{Start: start, End: end}
	}
	var r [2]uint32
	if !isNull(o["range"]) && json.Unmarshal(o["range"], &r) == nil {
		return ast.Span{Start: r[0], End: r[1]}
	}
	return ast.Span{}
}

// dot3 is the span of the `...` token opening a spread or rest node.
func dot3(span ast.Span) ast.Span {
	return ast.Span{Start: span.Start, End: span.Start + 3}
}

// ---------------------------------------------------------------------------
// Program and statements
// ---------------------------------------------------------------------------

func (p *parser) program(o object) ast.Program {
	span := o.span()
	raws := o.list("body")
	items := make([]ast.ModuleItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, p.moduleItem(raw))
	}

	st := p.opts.SourceType
	if st == SourceAuto {
		switch o.str("sourceType") {
		case "module":
			st = SourceModule
		case "script":
			st = SourceScript
		}
	}
	switch st {
	case SourceModule:
		return &ast.Module{SpanVal: span, Body: items}
	case SourceScript:
		stmts := make([]ast.Stmt, 0, len(items))
		for _, it := range items {
			s, ok := it.(ast.Stmt)
			if !ok && it != nil {
				p.fail(fmt.Errorf("%w: %T at %d", ErrModuleSyntax, it, it.Span().Start))
				return nil
			}
			stmts = append(stmts, s)
		}
		return &ast.Script{SpanVal: span, Body: stmts}
	}
	return ast.NewProgram(span, items)
}

func (p *parser) moduleItem(raw json.RawMessage) ast.ModuleItem {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	switch o.typ() {
	case "ImportDeclaration", "ExportNamedDeclaration", "ExportDefaultDeclaration",
		"ExportAllDeclaration", "TSImportEqualsDeclaration", "TSExportAssignment",
		"TSNamespaceExportDeclaration":
		return p.moduleDecl(o)
	}
	return p.stmtObj(o)
}

func (p *parser) stmt(raw json.RawMessage) ast.Stmt {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	return p.stmtObj(o)
}

func (p *parser) stmts(raws []json.RawMessage) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(raws))
	for _, raw := range raws {
		out = append(out, p.stmt(raw))
	}
	return out
}

func (p *parser) block(raw json.RawMessage) *ast.BlockStmt {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	return &ast.BlockStmt{SpanVal: o.span(), Stmts: p.stmts(o.list("body"))}
}

func (p *parser) stmtObj(o object) ast.Stmt {
	span := o.span()
	switch o.typ() {
	case "ExpressionStatement":
		return &ast.ExprStmt{SpanVal: span, Expr: p.expr(o["expression"])}

	case "BlockStatement":
		return &ast.BlockStmt{SpanVal: span, Stmts: p.stmts(o.list("body"))}

	case "EmptyStatement":
		return &ast.EmptyStmt{SpanVal: span}

	case "DebuggerStatement":
		return &ast.DebuggerStmt{SpanVal: span}

	case "WithStatement":
		return &ast.WithStmt{SpanVal: span, Object: p.expr(o["object"]), Body: p.stmt(o["body"])}

	case "ReturnStatement":
		return &ast.ReturnStmt{SpanVal: span, Arg: p.expr(o["argument"])}

	case "LabeledStatement":
		return &ast.LabeledStmt{SpanVal: span, Label: p.ident(o["label"]), Body: p.stmt(o["body"])}

	case "BreakStatement":
		return &ast.BreakStmt{SpanVal: span, Label: p.ident(o["label"])}

	case "ContinueStatement":
		return &ast.ContinueStmt{SpanVal: span, Label: p.ident(o["label"])}

	case "IfStatement":
		return &ast.IfStmt{
			SpanVal: span,
			Test:    p.expr(o["test"]),
			Cons:    p.stmt(o["consequent"]),
			Alt:     p.stmt(o["alternate"]),
		}

	case "SwitchStatement":
		s := &ast.SwitchStmt{SpanVal: span, Discriminant: p.expr(o["discriminant"])}
		for _, raw := range o.list("cases") {
			c := p.object(raw)
			if c == nil {
				continue
			}
			s.Cases = append(s.Cases, &ast.SwitchCase{
				SpanVal: c.span(),
				Test:    p.expr(c["test"]),
				Cons:    p.stmts(c.list("consequent")),
			})
		}
		return s

	case "ThrowStatement":
		return &ast.ThrowStmt{SpanVal: span, Arg: p.expr(o["argument"])}

	case "TryStatement":
		t := &ast.TryStmt{SpanVal: span, Block: p.block(o["block"]), Finalizer: p.block(o["finalizer"])}
		if h := p.object(o["handler"]); h != nil {
			t.Handler = &ast.CatchClause{SpanVal: h.span(), Param: p.pat(h["param"]), Body: p.block(h["body"])}
		}
		return t

	case "WhileStatement":
		return &ast.WhileStmt{SpanVal: span, Test: p.expr(o["test"]), Body: p.stmt(o["body"])}

	case "DoWhileStatement":
		return &ast.DoWhileStmt{SpanVal: span, Test: p.expr(o["test"]), Body: p.stmt(o["body"])}

	case "ForStatement":
		return &ast.ForStmt{
			SpanVal: span,
			Init:    p.forHead(o["init"], false),
			Test:    p.expr(o["test"]),
			Update:  p.expr(o["update"]),
			Body:    p.stmt(o["body"]),
		}

	case "ForInStatement":
		return &ast.ForInStmt{SpanVal: span, Left: p.forHead(o["left"], true), Right: p.expr(o["right"]), Body: p.stmt(o["body"])}

	case "ForOfStatement":
		return &ast.ForOfStmt{
			SpanVal: span,
			IsAwait: o.bool("await"),
			Left:    p.forHead(o["left"], true),
			Right:   p.expr(o["right"]),
			Body:    p.stmt(o["body"]),
		}
	}

	if d := p.declObj(o); d != nil {
		return d
	}
	return &ast.Invalid{SpanVal: span}
}

// forHead converts a loop initializer. A declaration list is kept as a
// declaration; otherwise the head is an expression, or an assignment
// target when binding is set.
func (p *parser) forHead(raw json.RawMessage, binding bool) ast.Node {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	if o.typ() == "VariableDeclaration" {
		return p.varDecl(o)
	}
	if binding {
		return p.patObj(o)
	}
	return p.exprObj(o)
}

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// declObj converts a declaration node, or returns nil if o is not one.
func (p *parser) declObj(o object) ast.Decl {
	span := o.span()
	switch o.typ() {
	case "FunctionDeclaration", "TSDeclareFunction":
		return &ast.FnDecl{SpanVal: span, Ident: p.ident(o["id"]), Function: p.function(o), Declare: o.bool("declare")}

	case "ClassDeclaration":
		return &ast.ClassDecl{SpanVal: span, Ident: p.ident(o["id"]), Class: p.class(o), Declare: o.bool("declare")}

	case "VariableDeclaration":
		return p.varDecl(o)

	case "TSInterfaceDeclaration":
		return p.interfaceDecl(o)

	case "TSTypeAliasDeclaration":
		return &ast.TsTypeAliasDecl{
			SpanVal:    span,
			ID:         p.ident(o["id"]),
			TypeParams: p.typeParamDecl(o["typeParameters"]),
			TypeAnn:    p.tsType(o["typeAnnotation"]),
			Declare:    o.bool("declare"),
		}

	case "TSEnumDeclaration":
		e := &ast.TsEnumDecl{SpanVal: span, ID: p.ident(o["id"]), IsConst: o.bool("const"), Declare: o.bool("declare")}
		members := o.list("members")
		if body := p.object(o["body"]); members == nil && body != nil {
			members = body.list("members")
		}
		for _, raw := range members {
			m := p.object(raw)
			if m == nil {
				continue
			}
			e.Members = append(e.Members, &ast.TsEnumMember{
				SpanVal: m.span(),
				ID:      p.expr(m["id"]),
				Init:    p.expr(m["initializer"]),
			})
		}
		return e

	case "TSModuleDeclaration":
		return p.moduleDeclTS(o)
	}
	return nil
}

// varDecl converts a VariableDeclaration, which covers var, let, const,
// using and await using.
func (p *parser) varDecl(o object) ast.Decl {
	span := o.span()
	var decls []*ast.VarDeclarator
	for _, raw := range o.list("declarations") {
		d := p.object(raw)
		if d == nil {
			continue
		}
		decls = append(decls, &ast.VarDeclarator{
			SpanVal:  d.span(),
			Name:     p.pat(d["id"]),
			Init:     p.expr(d["init"]),
			Definite: d.bool("definite"),
		})
	}
	switch kind := o.str("kind"); kind {
	case "using":
		return &ast.UsingDecl{SpanVal: span, Decls: decls}
	case "await using":
		return &ast.UsingDecl{SpanVal: span, IsAwait: true, Decls: decls}
	default:
		return &ast.VarDecl{SpanVal: span, Kind: kind, Decls: decls, Declare: o.bool("declare")}
	}
}

// ---------------------------------------------------------------------------
// Module declarations
// ---------------------------------------------------------------------------

func (p *parser) moduleDecl(o object) ast.ModuleItem {
	span := o.span()
	switch o.typ() {
	case "ImportDeclaration":
		d := &ast.ImportDecl{SpanVal: span, Src: p.strLit(o["source"]), TypeOnly: o.str("importKind") == "type"}
		for _, raw := range o.list("specifiers") {
			if s := p.importSpecifier(raw); s != nil {
				d.Specifiers = append(d.Specifiers, s)
			}
		}
		return d

	case "ExportNamedDeclaration":
		if decl := p.object(o["declaration"]); decl != nil {
			d := p.declObj(decl)
			if d == nil {
				return &ast.Invalid{SpanVal: span}
			}
			return &ast.ExportDecl{SpanVal: span, Decl: d}
		}
		e := &ast.NamedExport{SpanVal: span, Src: p.strLit(o["source"]), TypeOnly: o.str("exportKind") == "type"}
		for _, raw := range o.list("specifiers") {
			s := p.object(raw)
			if s == nil {
				continue
			}
			local := p.object(s["local"])
			exported := p.object(s["exported"])
			spec := &ast.ExportNamedSpecifier{SpanVal: s.span(), Orig: p.exprObj(local), TypeOnly: s.str("exportKind") == "type"}
			if renamed(local, exported) {
				spec.Exported = p.exprObj(exported)
			}
			e.Specifiers = append(e.Specifiers, spec)
		}
		return e

	case "ExportDefaultDeclaration":
		decl := p.object(o["declaration"])
		if decl == nil {
			p.malformed(o, "missing declaration")
			return nil
		}
		switch decl.typ() {
		case "FunctionDeclaration", "TSDeclareFunction":
			return &ast.ExportDefaultDecl{SpanVal: span, Decl: &ast.FnExpr{
				SpanVal:  decl.span(),
				Ident:    p.ident(decl["id"]),
				Function: p.function(decl),
			}}
		case "ClassDeclaration":
			return &ast.ExportDefaultDecl{SpanVal: span, Decl: &ast.ClassExpr{
				SpanVal: decl.span(),
				Ident:   p.ident(decl["id"]),
				Class:   p.class(decl),
			}}
		case "TSInterfaceDeclaration":
			return &ast.ExportDefaultDecl{SpanVal: span, Decl: p.interfaceDecl(decl)}
		}
		return &ast.ExportDefaultExpr{SpanVal: span, Expr: p.exprObj(decl)}

	case "ExportAllDeclaration":
		src := p.strLit(o["source"])
		typeOnly := o.str("exportKind") == "type"
		if exported := p.object(o["exported"]); exported != nil {
			return &ast.NamedExport{
				SpanVal: span,
				Specifiers: []ast.ExportSpecifier{
					&ast.ExportNamespaceSpecifier{SpanVal: exported.span(), Name: p.exprObj(exported)},
				},
				Src:      src,
				TypeOnly: typeOnly,
			}
		}
		return &ast.ExportAll{SpanVal: span, Src: src, TypeOnly: typeOnly}

	case "TSImportEqualsDeclaration":
		d := &ast.TsImportEqualsDecl{
			SpanVal:    span,
			ID:         p.ident(o["id"]),
			IsExport:   o.bool("isExport"),
			IsTypeOnly: o.str("importKind") == "type",
		}
		ref := p.object(o["moduleReference"])
		switch {
		case ref == nil:
		case ref.typ() == "TSExternalModuleReference":
			if s := p.strLit(ref["expression"]); s != nil {
				d.ModuleRef = s
			}
		default:
			if n := p.entityNameObj(ref); n != nil {
				d.ModuleRef = n
			}
		}
		return d

	case "TSExportAssignment":
		return &ast.TsExportAssignment{SpanVal: span, Expr: p.expr(o["expression"])}

	case "TSNamespaceExportDeclaration":
		return &ast.TsNamespaceExportDecl{SpanVal: span, ID: p.ident(o["id"])}
	}
	return &ast.Invalid{SpanVal: span}
}

func (p *parser) importSpecifier(raw json.RawMessage) ast.ImportSpecifier {
	s := p.object(raw)
	if s == nil {
		return nil
	}
	span := s.span()
	switch s.typ() {
	case "ImportDefaultSpecifier":
		return &ast.ImportDefaultSpecifier{SpanVal: span, Local: p.ident(s["local"])}
	case "ImportNamespaceSpecifier":
		return &ast.ImportNamespaceSpecifier{SpanVal: span, Local: p.ident(s["local"])}
	case "ImportSpecifier":
		local := p.object(s["local"])
		imported := p.object(s["imported"])
		spec := &ast.ImportNamedSpecifier{SpanVal: span, Local: p.identObj(local), TypeOnly: s.str("importKind") == "type"}
		if renamed(imported, local) {
			spec.Imported = p.exprObj(imported)
		}
		return spec
	}
	p.malformed(s, "unknown import specifier")
	return nil
}

// renamed reports whether an import or export specifier names two
// different bindings. ESTree repeats the same node for `{ x }`.
func renamed(a, b object) bool {
	if a == nil || b == nil {
		return false
	}
	return a.typ() != b.typ() || a.str("name") != b.str("name") || a.span() != b.span()
}
