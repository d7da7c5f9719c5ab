package estree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chazu/astbin/ast"
	"github.com/chazu/astbin/astbin"
	"github.com/chazu/astbin/decoder"
)

func sp(s, e uint32) ast.Span { return ast.Span{Start: s, End: e} }

func parse(t *testing.T, doc string, opts Options) ast.Program {
	t.Helper()
	prog, err := Parse([]byte(doc), opts)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return prog
}

func kinds(t *testing.T, prog ast.Program) []astbin.Kind {
	t.Helper()
	buf, err := astbin.Encode(prog)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decoder.Kinds(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return got
}

// if (a) { b; }
const ifDoc = `{"type":"Program","start":0,"end":13,"sourceType":"script","body":[
  {"type":"IfStatement","start":0,"end":13,
   "test":{"type":"Identifier","start":4,"end":5,"name":"a"},
   "consequent":{"type":"BlockStatement","start":7,"end":13,"body":[
     {"type":"ExpressionStatement","start":9,"end":11,
      "expression":{"type":"Identifier","start":9,"end":10,"name":"b"}}]},
   "alternate":null}]}`

func TestParse_IfStatement(t *testing.T) {
	got := parse(t, ifDoc, Options{})
	want := &ast.Script{SpanVal: sp(0, 13), Body: []ast.Stmt{
		&ast.IfStmt{
			SpanVal: sp(0, 13),
			Test:    &ast.Ident{SpanVal: sp(4, 5), Name: "a"},
			Cons: &ast.BlockStmt{SpanVal: sp(7, 13), Stmts: []ast.Stmt{
				&ast.ExprStmt{SpanVal: sp(9, 11), Expr: &ast.Ident{SpanVal: sp(9, 10), Name: "b"}},
			}},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

// import x from "y";
const importDoc = `{"type":"Program","start":0,"end":18,"body":[
  {"type":"ImportDeclaration","start":0,"end":18,
   "specifiers":[{"type":"ImportDefaultSpecifier","start":7,"end":8,
     "local":{"type":"Identifier","start":7,"end":8,"name":"x"}}],
   "source":{"type":"Literal","start":14,"end":17,"value":"y","raw":"\"y\""}}]}`

func TestParse_SourceType(t *testing.T) {
	prog := parse(t, importDoc, Options{})
	if _, ok := prog.(*ast.Module); !ok {
		t.Errorf("auto: got %T, want *ast.Module", prog)
	}

	prog = parse(t, ifDoc, Options{SourceType: SourceModule})
	if _, ok := prog.(*ast.Module); !ok {
		t.Errorf("forced module: got %T, want *ast.Module", prog)
	}

	_, err := Parse([]byte(importDoc), Options{SourceType: SourceScript})
	if !errors.Is(err, ErrModuleSyntax) {
		t.Errorf("forced script: got %v, want ErrModuleSyntax", err)
	}
}

func TestParseSourceType(t *testing.T) {
	cases := []struct {
		in   string
		want SourceType
	}{
		{"", SourceAuto},
		{"auto", SourceAuto},
		{"module", SourceModule},
		{"script", SourceScript},
	}
	for _, tc := range cases {
		got, err := ParseSourceType(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseSourceType(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if tc.in != "" && got.String() != tc.in {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
	if _, err := ParseSourceType("commonjs"); err == nil {
		t.Error("expected an error for an unknown source type")
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{"type":`},
		{"array root", `[]`},
		{"null root", `null`},
		{"not a program", `{"type":"Identifier","name":"x"}`},
		{"bad literal", `{"type":"Program","body":[{"type":"ExpressionStatement",
			"expression":{"type":"Literal","value":{"x":1}}}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := Parse([]byte(tc.doc), Options{})
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err: got %v, want ErrMalformed", err)
			}
			if prog != nil {
				t.Errorf("got a program on failure: %T", prog)
			}
		})
	}
}

// a?.b.c
const chainDoc = `{"type":"Program","start":0,"end":6,"sourceType":"script","body":[
  {"type":"ExpressionStatement","start":0,"end":6,"expression":
    {"type":"ChainExpression","start":0,"end":6,"expression":
      {"type":"MemberExpression","start":0,"end":6,"computed":false,"optional":false,
       "object":{"type":"MemberExpression","start":0,"end":4,"computed":false,"optional":true,
         "object":{"type":"Identifier","start":0,"end":1,"name":"a"},
         "property":{"type":"Identifier","start":3,"end":4,"name":"b"}},
       "property":{"type":"Identifier","start":5,"end":6,"name":"c"}}}}]}`

func TestParse_OptionalChainWrapsOnlyOptionalLinks(t *testing.T) {
	prog := parse(t, chainDoc, Options{}).(*ast.Script)
	got := prog.Body[0].(*ast.ExprStmt).Expr
	want := &ast.MemberExpr{
		SpanVal: sp(0, 6),
		Obj: &ast.OptChainExpr{SpanVal: sp(0, 4), Optional: true, Base: &ast.MemberExpr{
			SpanVal: sp(0, 4),
			Obj:     &ast.Ident{SpanVal: sp(0, 1), Name: "a"},
			Prop:    &ast.Ident{SpanVal: sp(3, 4), Name: "b"},
		}},
		Prop: &ast.Ident{SpanVal: sp(5, 6), Name: "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
}

// let x: number = 1 as const;  (typescript-estree, range only)
const tsDoc = `{"type":"Program","range":[0,27],"sourceType":"module","body":[
  {"type":"VariableDeclaration","range":[0,27],"kind":"let","declare":false,"declarations":[
    {"type":"VariableDeclarator","range":[4,26],"definite":false,
     "id":{"type":"Identifier","range":[4,13],"name":"x","optional":false,
       "typeAnnotation":{"type":"TSTypeAnnotation","range":[5,13],
         "typeAnnotation":{"type":"TSNumberKeyword","range":[7,13]}}},
     "init":{"type":"TSAsExpression","range":[16,26],
       "expression":{"type":"Literal","range":[16,17],"value":1,"raw":"1"},
       "typeAnnotation":{"type":"TSTypeReference","range":[21,26],
         "typeName":{"type":"Identifier","range":[21,26],"name":"const"}}}}]}]}`

func TestParse_TypeScriptRanges(t *testing.T) {
	got := parse(t, tsDoc, Options{})
	want := &ast.Module{SpanVal: sp(0, 27), Body: []ast.ModuleItem{
		&ast.VarDecl{SpanVal: sp(0, 27), Kind: "let", Decls: []*ast.VarDeclarator{{
			SpanVal: sp(4, 26),
			Name: &ast.Ident{SpanVal: sp(4, 13), Name: "x", TypeAnn: &ast.TsTypeAnn{
				SpanVal: sp(5, 13),
				Type:    &ast.TsKeywordType{SpanVal: sp(7, 13), Kind: "number"},
			}},
			Init: &ast.TsConstAssertion{
				SpanVal: sp(16, 26),
				Expr:    &ast.Num{SpanVal: sp(16, 17), Value: 1, Raw: "1"},
			},
		}}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

// f(...xs)
const spreadDoc = `{"type":"Program","start":0,"end":8,"sourceType":"script","body":[
  {"type":"ExpressionStatement","start":0,"end":8,"expression":
    {"type":"CallExpression","start":0,"end":8,"optional":false,
     "callee":{"type":"Identifier","start":0,"end":1,"name":"f"},
     "arguments":[{"type":"SpreadElement","start":2,"end":7,
       "argument":{"type":"Identifier","start":5,"end":7,"name":"xs"}}]}}]}`

func TestParse_SpreadEncodesMarker(t *testing.T) {
	prog := parse(t, spreadDoc, Options{})
	want := []astbin.Kind{
		astbin.KindProgram, astbin.KindExpr, astbin.KindCall,
		astbin.KindIdent, astbin.KindSpread, astbin.KindIdent,
	}
	if diff := cmp.Diff(want, kinds(t, prog)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	buf, err := astbin.Encode(prog)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	root, err := decoder.Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	marker := root.Children[0].Children[0].Children[1]
	if marker.Span != sp(2, 5) {
		t.Errorf("spread marker span: got %v, want 2..5", marker.Span)
	}
}

// <a x="1">{y}</a>
const jsxDoc = `{"type":"Program","start":0,"end":16,"sourceType":"module","body":[
  {"type":"ExpressionStatement","start":0,"end":16,"expression":
    {"type":"JSXElement","start":0,"end":16,
     "openingElement":{"type":"JSXOpeningElement","start":0,"end":9,"selfClosing":false,
       "name":{"type":"JSXIdentifier","start":1,"end":2,"name":"a"},
       "attributes":[{"type":"JSXAttribute","start":3,"end":8,
         "name":{"type":"JSXIdentifier","start":3,"end":4,"name":"x"},
         "value":{"type":"Literal","start":5,"end":8,"value":"1","raw":"\"1\""}}]},
     "closingElement":{"type":"JSXClosingElement","start":12,"end":16,
       "name":{"type":"JSXIdentifier","start":14,"end":15,"name":"a"}},
     "children":[{"type":"JSXExpressionContainer","start":9,"end":12,
       "expression":{"type":"Identifier","start":10,"end":11,"name":"y"}}]}}]}`

func TestParse_JSX(t *testing.T) {
	want := []astbin.Kind{
		astbin.KindProgram, astbin.KindExpr,
		astbin.KindJSXElement,
		astbin.KindJSXOpeningElement, astbin.KindIdent,
		astbin.KindJSXAttr, astbin.KindIdent, astbin.KindStringLiteral,
		astbin.KindJSXExprContainer, astbin.KindIdent,
		astbin.KindJSXClosingElement, astbin.KindIdent,
	}
	if diff := cmp.Diff(want, kinds(t, parse(t, jsxDoc, Options{}))); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

// class A { m() {} }
const classDoc = `{"type":"Program","start":0,"end":18,"sourceType":"script","body":[
  {"type":"ClassDeclaration","start":0,"end":18,
   "id":{"type":"Identifier","start":6,"end":7,"name":"A"},
   "superClass":null,
   "body":{"type":"ClassBody","start":8,"end":18,"body":[
     {"type":"MethodDefinition","start":10,"end":16,"kind":"method","static":false,"computed":false,
      "key":{"type":"Identifier","start":10,"end":11,"name":"m"},
      "value":{"type":"FunctionExpression","start":11,"end":16,"id":null,
        "async":false,"generator":false,"params":[],
        "body":{"type":"BlockStatement","start":14,"end":16,"body":[]}}}]}}]}`

func TestParse_Class(t *testing.T) {
	prog := parse(t, classDoc, Options{}).(*ast.Script)
	decl := prog.Body[0].(*ast.ClassDecl)
	if decl.Ident == nil || decl.Ident.Name != "A" {
		t.Fatalf("class name: %+v", decl.Ident)
	}
	if len(decl.Class.Body) != 1 {
		t.Fatalf("members: got %d, want 1", len(decl.Class.Body))
	}
	m, ok := decl.Class.Body[0].(*ast.ClassMethod)
	if !ok {
		t.Fatalf("member: got %T, want *ast.ClassMethod", decl.Class.Body[0])
	}
	if m.Kind != ast.MethodMethod || m.Function.Body == nil || m.Function.SpanVal != sp(11, 16) {
		t.Errorf("method: %+v", m)
	}

	want := []astbin.Kind{
		astbin.KindProgram, astbin.KindClass,
		astbin.KindIdent, astbin.KindEmptyExpr, astbin.KindEmptyExpr, astbin.KindEmptyExpr,
		astbin.KindClassMethod, astbin.KindIdent,
		astbin.KindFnExpr, astbin.KindEmptyExpr, astbin.KindEmptyExpr, astbin.KindEmptyExpr, astbin.KindBlock,
	}
	if diff := cmp.Diff(want, kinds(t, prog)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

// @d class A { @e m(@f x) {} }
const decoratedDoc = `{"type":"Program","start":0,"end":29,"sourceType":"script","body":[
  {"type":"ClassDeclaration","start":3,"end":29,
   "decorators":[{"type":"Decorator","start":0,"end":2,
     "expression":{"type":"Identifier","start":1,"end":2,"name":"d"}}],
   "id":{"type":"Identifier","start":9,"end":10,"name":"A"},
   "superClass":null,
   "body":{"type":"ClassBody","start":11,"end":29,"body":[
     {"type":"MethodDefinition","start":13,"end":27,"kind":"method","static":false,"computed":false,
      "decorators":[{"type":"Decorator","start":13,"end":15,
        "expression":{"type":"Identifier","start":14,"end":15,"name":"e"}}],
      "key":{"type":"Identifier","start":16,"end":17,"name":"m"},
      "value":{"type":"FunctionExpression","start":17,"end":27,"id":null,
        "async":false,"generator":false,
        "params":[{"type":"Identifier","start":18,"end":22,"name":"x",
          "decorators":[{"type":"Decorator","start":18,"end":20,
            "expression":{"type":"Identifier","start":19,"end":20,"name":"f"}}]}],
        "body":{"type":"BlockStatement","start":25,"end":27,"body":[]}}}]}}]}`

func TestParse_DecoratorsDropped(t *testing.T) {
	prog := parse(t, decoratedDoc, Options{})
	want := []astbin.Kind{
		astbin.KindProgram, astbin.KindClass,
		astbin.KindIdent, astbin.KindEmptyExpr, astbin.KindEmptyExpr, astbin.KindEmptyExpr,
		astbin.KindClassMethod, astbin.KindIdent,
		astbin.KindFnExpr, astbin.KindEmptyExpr, astbin.KindEmptyExpr, astbin.KindIdent, astbin.KindEmptyExpr, astbin.KindBlock,
	}
	if diff := cmp.Diff(want, kinds(t, prog)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

const unknownDoc = `{"type":"Program","start":0,"end":3,"sourceType":"script","body":[
  {"type":"ExpressionStatement","start":0,"end":3,
   "expression":{"type":"Frobnicate","start":0,"end":3}}]}`

func TestParse_UnknownNodeBecomesInvalid(t *testing.T) {
	prog := parse(t, unknownDoc, Options{})
	expr := prog.(*ast.Script).Body[0].(*ast.ExprStmt).Expr
	if inv, ok := expr.(*ast.Invalid); !ok || inv.SpanVal != sp(0, 3) {
		t.Fatalf("got %#v, want Invalid at 0..3", expr)
	}

	want := []astbin.Kind{astbin.KindProgram, astbin.KindExpr, astbin.KindInvalid}
	if diff := cmp.Diff(want, kinds(t, prog)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	_, err := astbin.NewEncoder(astbin.Options{Unsupported: astbin.UnsupportedReject}).Encode(prog)
	if !errors.Is(err, astbin.ErrUnsupported) {
		t.Errorf("reject: got %v, want ErrUnsupported", err)
	}
}
