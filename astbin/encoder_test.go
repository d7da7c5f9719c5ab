package astbin

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chazu/astbin/ast"
)

type shapeCase struct {
	name string
	prog ast.Program
	want string
}

// shapeCases pairs small trees with their expected pre-order record shape.
// The golden test reuses them.
var shapeCases = []shapeCase{
	{
		name: "for_empty_heads",
		prog: script(&ast.ForStmt{Body: &ast.BlockStmt{}}),
		want: "Program(1) For(4) EmptyExpr EmptyExpr EmptyExpr Block",
	},
	{
		name: "empty_block",
		prog: script(&ast.BlockStmt{}),
		want: "Program(1) Block",
	},
	{
		name: "if_without_else",
		prog: script(&ast.IfStmt{Test: id("a"), Cons: exprStmt(id("b"))}),
		want: "Program(1) If(2) Ident Expr(1) Ident",
	},
	{
		name: "if_else",
		prog: script(&ast.IfStmt{Test: id("a"), Cons: &ast.BlockStmt{}, Alt: &ast.EmptyStmt{}}),
		want: "Program(1) If(3) Ident Block Empty",
	},
	{
		name: "call_with_spread",
		prog: script(exprStmt(&ast.CallExpr{
			Callee: id("f"),
			Args:   []*ast.ExprOrSpread{arg(id("a")), spread(id("b")), arg(id("c"))},
		})),
		want: "Program(1) Expr(1) Call(5) Ident Ident Spread Ident Ident",
	},
	{
		name: "new_without_parens",
		prog: script(exprStmt(&ast.NewExpr{Callee: id("X")})),
		want: "Program(1) Expr(1) New(1) Ident",
	},
	{
		name: "array_hole_and_spread",
		prog: script(exprStmt(&ast.ArrayLit{Elems: []*ast.ExprOrSpread{arg(id("a")), nil, spread(id("b"))}})),
		want: "Program(1) Expr(1) Array(4) Ident EmptyExpr Spread Ident",
	},
	{
		name: "object_literal",
		prog: script(exprStmt(&ast.ParenExpr{Expr: &ast.ObjectLit{Props: []ast.Prop{
			&ast.KeyValueProp{Key: id("a"), Value: num("1")},
			id("b"),
			&ast.SpreadElement{Expr: id("c")},
			&ast.GetterProp{Key: id("d"), Body: &ast.BlockStmt{}},
			&ast.KeyValueProp{Key: &ast.ComputedPropName{Expr: id("e")}, Value: id("f")},
		}}})),
		want: "Program(1) Expr(1) Seq(1) Object(6) ObjProperty(2) Ident Num Ident Spread Ident " +
			"GetterProp(3) Ident EmptyExpr Block ObjProperty(2) ComputedPropName(1) Ident Ident",
	},
	{
		name: "assign_member_binary",
		prog: script(exprStmt(&ast.AssignExpr{
			Op:    "=",
			Left:  &ast.ExprPat{Expr: &ast.MemberExpr{Obj: id("a"), Prop: id("b")}},
			Right: &ast.BinExpr{Op: "+", Left: id("c"), Right: id("d")},
		})),
		want: "Program(1) Expr(1) Assign(2) Member(2) Ident Ident Bin(2) Ident Ident",
	},
	{
		name: "typed_arrow",
		prog: script(exprStmt(&ast.ArrowExpr{
			Params: []ast.Pat{&ast.Ident{Name: "x", TypeAnn: &ast.TsTypeAnn{Type: typeRef("T")}}},
			Body:   id("x"),
		})),
		want: "Program(1) Expr(1) Arrow(2) Ident(1) TsTypeAnn(1) TsTypeRef(1) Ident Ident",
	},
	{
		name: "function_decl",
		prog: script(&ast.FnDecl{Ident: id("f"), Function: &ast.Function{
			Params: []ast.Pat{id("a")},
			Body:   &ast.BlockStmt{},
		}}),
		want: "Program(1) Fn(5) Ident EmptyExpr Ident EmptyExpr Block",
	},
	{
		name: "class_decl",
		prog: script(&ast.ClassDecl{Ident: id("A"), Class: &ast.Class{
			SuperClass: id("B"),
			Body: []ast.ClassMember{
				&ast.ClassMethod{Key: id("m"), Function: &ast.Function{Body: &ast.BlockStmt{}}},
				&ast.ClassProp{Key: id("x"), Value: num("1")},
			},
		}}),
		want: "Program(1) Class(6) Ident EmptyExpr Ident EmptyExpr " +
			"ClassMethod(2) Ident FnExpr(4) EmptyExpr EmptyExpr EmptyExpr Block " +
			"ClassProp(3) Ident EmptyExpr Num",
	},
	{
		name: "switch",
		prog: script(&ast.SwitchStmt{Discriminant: id("x"), Cases: []*ast.SwitchCase{
			{Test: num("1"), Cons: []ast.Stmt{&ast.BreakStmt{}}},
			{},
		}}),
		want: "Program(1) Switch(3) Ident SwitchCase(2) Num Break SwitchCase",
	},
	{
		name: "try_catch_finally",
		prog: script(&ast.TryStmt{
			Block:     &ast.BlockStmt{},
			Handler:   &ast.CatchClause{Param: id("e"), Body: &ast.BlockStmt{}},
			Finalizer: &ast.BlockStmt{},
		}),
		want: "Program(1) Try(3) Block CatchClause(2) Ident Block Block",
	},
	{
		name: "array_pattern",
		prog: script(&ast.VarDecl{Kind: "let", Decls: []*ast.VarDeclarator{
			{Name: &ast.ArrayPat{Elems: []ast.Pat{id("a"), nil, id("b")}}, Init: id("c")},
		}}),
		want: "Program(1) Var(1) VarDeclarator(2) ArrayPat(3) Ident EmptyExpr Ident Ident",
	},
	{
		name: "object_pattern",
		prog: script(&ast.VarDecl{Kind: "const", Decls: []*ast.VarDeclarator{
			{Name: &ast.ObjectPat{Props: []ast.ObjectPatProp{
				&ast.AssignPatProp{Key: id("a")},
				&ast.KeyValuePatProp{Key: id("b"), Value: id("c")},
				&ast.RestPat{Arg: id("d")},
			}}, Init: id("e")},
		}}),
		want: "Program(1) Var(1) VarDeclarator(2) ObjectPat(3) AssignPatProp(1) Ident " +
			"KeyValuePatProp(2) Ident Ident RestPat(1) Ident Ident",
	},
	{
		name: "for_of_const",
		prog: script(&ast.ForOfStmt{
			Left:  &ast.VarDecl{Kind: "const", Decls: []*ast.VarDeclarator{{Name: id("x")}}},
			Right: id("xs"),
			Body:  &ast.BlockStmt{},
		}),
		want: "Program(1) ForOf(3) Var(1) VarDeclarator(1) Ident Ident Block",
	},
	{
		name: "template",
		prog: script(exprStmt(&ast.Tpl{
			Quasis: []*ast.TplElement{{Raw: "a"}, {Raw: "c"}},
			Exprs:  []ast.Expr{id("b")},
		})),
		want: "Program(1) Expr(1) Tpl(3) TplElement Ident TplElement",
	},
	{
		name: "import",
		prog: module(&ast.ImportDecl{
			Specifiers: []ast.ImportSpecifier{
				&ast.ImportDefaultSpecifier{Local: id("d")},
				&ast.ImportNamedSpecifier{Local: id("y"), Imported: id("x")},
			},
			Src: str("m"),
		}),
		want: "Program(1) Import(3) ImportDefaultSpecifier(1) Ident ImportNamedSpecifier(2) Ident Ident StringLiteral",
	},
	{
		name: "export_named",
		prog: module(&ast.NamedExport{Specifiers: []ast.ExportSpecifier{
			&ast.ExportNamedSpecifier{Orig: id("a"), Exported: id("b")},
		}}),
		want: "Program(1) ExportNamed(1) ExportNamedSpecifier(2) Ident Ident",
	},
	{
		name: "interface",
		prog: script(&ast.TsInterfaceDecl{
			ID:         id("I"),
			TypeParams: &ast.TsTypeParamDecl{Params: []*ast.TsTypeParam{{Name: id("T")}}},
			Extends:    []*ast.TsExprWithTypeArgs{{Expr: id("J")}},
			Body: &ast.TsInterfaceBody{Body: []ast.TsTypeElement{
				&ast.TsPropertySignature{Key: id("a"), TypeAnn: &ast.TsTypeAnn{Type: typeRef("T")}},
			}},
		}),
		want: "Program(1) TsInterface(4) Ident TsTypeParamDecl(1) TsTypeParam(3) Ident EmptyExpr EmptyExpr " +
			"TsExprWithTypeArgs(1) Ident TsInterfaceBody(1) TsPropertySignature(2) Ident TsTypeAnn(1) TsTypeRef(1) Ident",
	},
	{
		name: "jsx_element",
		prog: script(exprStmt(&ast.JSXElement{
			Opening: &ast.JSXOpeningElement{
				Name: &ast.JSXMemberExpr{Obj: id("a"), Prop: id("b")},
				Attrs: []ast.Node{
					&ast.JSXAttr{Name: id("x"), Value: str("1")},
					&ast.JSXSpreadAttr{Expr: id("y")},
				},
			},
			Children: []ast.JSXChild{&ast.JSXText{Raw: "t"}, &ast.JSXExprContainer{Expr: id("z")}},
			Closing:  &ast.JSXClosingElement{Name: &ast.JSXMemberExpr{Obj: id("a"), Prop: id("b")}},
		})),
		want: "Program(1) Expr(1) JSXElement(4) JSXOpeningElement(3) JSXMember(2) Ident Ident " +
			"JSXAttr(2) Ident StringLiteral JSXSpreadAttr(1) Ident JSXText JSXExprContainer(1) Ident " +
			"JSXClosingElement(1) JSXMember(2) Ident Ident",
	},
	{
		name: "optional_chain",
		prog: script(
			exprStmt(&ast.OptChainExpr{Optional: true, Base: &ast.MemberExpr{Obj: id("a"), Prop: id("b")}}),
			exprStmt(&ast.OptChainExpr{Optional: true, Base: &ast.OptCall{Callee: id("f")}}),
		),
		want: "Program(2) Expr(1) OptChain(1) Member(2) Ident Ident Expr(1) OptChain(1) Call(1) Ident",
	},
	{
		name: "super_and_dynamic_import",
		prog: script(
			exprStmt(&ast.CallExpr{Callee: &ast.Super{}, Args: []*ast.ExprOrSpread{arg(id("x"))}}),
			exprStmt(&ast.CallExpr{Callee: &ast.Import{}, Args: []*ast.ExprOrSpread{arg(str("m"))}}),
		),
		want: "Program(2) Expr(1) Call(2) Super Ident Expr(1) Call(2) ImportCallee StringLiteral",
	},
	{
		name: "enum",
		prog: script(&ast.TsEnumDecl{ID: id("E"), Members: []*ast.TsEnumMember{
			{ID: id("A"), Init: num("1")},
			{ID: id("B")},
		}}),
		want: "Program(1) TsEnum(3) Ident TsEnumMember(2) Ident Num TsEnumMember(1) Ident",
	},
	{
		name: "union_alias",
		prog: script(&ast.TsTypeAliasDecl{ID: id("U"), TypeAnn: &ast.TsUnionType{Types: []ast.TsType{
			typeRef("A"),
			&ast.TsLitType{Lit: str("b")},
		}}}),
		want: "Program(1) TsTypeAlias(2) Ident TsUnionType(2) TsTypeRef(1) Ident TsLitType(1) StringLiteral",
	},
	{
		name: "namespace",
		prog: script(&ast.TsModuleDecl{ID: id("N"), Body: &ast.TsModuleBlock{Body: []ast.ModuleItem{
			&ast.ExportDecl{Decl: &ast.VarDecl{Kind: "const", Decls: []*ast.VarDeclarator{{Name: id("x"), Init: num("1")}}}},
		}}}),
		want: "Program(1) TsModule(2) Ident TsModuleBlock(1) ExportDecl(1) Var(1) VarDeclarator(2) Ident Num",
	},
	{
		name: "return_optional_arg",
		prog: script(&ast.FnDecl{Ident: id("f"), Function: &ast.Function{Body: &ast.BlockStmt{Stmts: []ast.Stmt{
			&ast.ReturnStmt{},
			&ast.ReturnStmt{Arg: id("x")},
		}}}}),
		want: "Program(1) Fn(4) Ident EmptyExpr EmptyExpr Block(2) Return Return(1) Ident",
	},
	{
		name: "labeled_while",
		prog: script(&ast.LabeledStmt{Label: id("outer"), Body: &ast.WhileStmt{
			Test: id("a"),
			Body: &ast.BlockStmt{Stmts: []ast.Stmt{
				&ast.ContinueStmt{Label: id("outer")},
				&ast.BreakStmt{Label: id("outer")},
				&ast.ContinueStmt{},
				&ast.BreakStmt{},
			}},
		}}),
		want: "Program(1) Labeled(2) Ident While(2) Ident Block(4) Continue(1) Ident Break(1) Ident Continue Break",
	},
	{
		name: "do_while_throw",
		prog: script(&ast.DoWhileStmt{
			Test: id("a"),
			Body: &ast.ThrowStmt{Arg: &ast.NewExpr{Callee: id("E"), Args: []*ast.ExprOrSpread{arg(str("x"))}}},
		}),
		want: "Program(1) DoWhile(2) Ident Throw(1) New(2) Ident StringLiteral",
	},
	{
		name: "for_in_with",
		prog: script(&ast.ForInStmt{
			Left:  id("k"),
			Right: id("o"),
			Body:  &ast.WithStmt{Object: id("o"), Body: &ast.EmptyStmt{}},
		}),
		want: "Program(1) ForIn(3) Ident Ident With(2) Ident Empty",
	},
	{
		name: "cond_unary_update",
		prog: script(exprStmt(&ast.CondExpr{
			Test: &ast.UnaryExpr{Op: "!", Arg: id("a")},
			Cons: &ast.UpdateExpr{Op: "++", Prefix: true, Arg: id("b")},
			Alt:  &ast.SeqExpr{Exprs: []ast.Expr{id("c"), num("1")}},
		})),
		want: "Program(1) Expr(1) Cond(3) Unary(1) Ident Update(1) Ident Seq(2) Ident Num",
	},
	{
		name: "yield_await",
		prog: script(
			exprStmt(&ast.YieldExpr{}),
			exprStmt(&ast.YieldExpr{Arg: id("x"), Delegate: true}),
			exprStmt(&ast.AwaitExpr{Arg: &ast.CallExpr{Callee: id("p")}}),
		),
		want: "Program(3) Expr(1) Yield Expr(1) Yield(1) Ident Expr(1) Await(1) Call(1) Ident",
	},
	{
		name: "tagged_template_meta_prop",
		prog: script(
			exprStmt(&ast.TaggedTpl{
				Tag:      id("tag"),
				TypeArgs: &ast.TsTypeParamInstantiation{Params: []ast.TsType{&ast.TsKeywordType{Kind: "string"}}},
				Tpl:      &ast.Tpl{Quasis: []*ast.TplElement{{Raw: "a"}}},
			}),
			exprStmt(&ast.MemberExpr{Obj: &ast.MetaPropExpr{Kind: "import.meta"}, Prop: id("url")}),
		),
		want: "Program(2) Expr(1) TaggedTpl(3) Ident TsTypeParamInstantiation(1) TsKeywordType Tpl(1) TplElement " +
			"Expr(1) Member(2) MetaProp Ident",
	},
	{
		name: "ts_expressions",
		prog: script(
			exprStmt(&ast.TsAsExpr{Expr: id("a"), TypeAnn: typeRef("T")}),
			exprStmt(&ast.TsSatisfiesExpr{Expr: id("b"), TypeAnn: &ast.TsKeywordType{Kind: "number"}}),
			exprStmt(&ast.TsNonNullExpr{Expr: id("c")}),
			exprStmt(&ast.TsTypeAssertion{Expr: id("d"), TypeAnn: typeRef("U")}),
			exprStmt(&ast.TsConstAssertion{Expr: &ast.ArrayLit{}}),
			exprStmt(&ast.TsInstantiation{Expr: id("f"), TypeArgs: &ast.TsTypeParamInstantiation{Params: []ast.TsType{typeRef("V")}}}),
		),
		want: "Program(6) Expr(1) TsAs(2) Ident TsTypeRef(1) Ident Expr(1) TsSatisfies(2) Ident TsKeywordType " +
			"Expr(1) TsNonNull(1) Ident Expr(1) TsTypeAssertion(2) Ident TsTypeRef(1) Ident " +
			"Expr(1) TsConstAssertion(1) Array Expr(1) TsInstantiation(2) Ident TsTypeParamInstantiation(1) TsTypeRef(1) Ident",
	},
	{
		name: "tuple_of_type_forms",
		prog: script(&ast.TsTypeAliasDecl{ID: id("T"), TypeAnn: &ast.TsTupleType{ElemTypes: []ast.TsType{
			&ast.TsArrayType{ElemType: &ast.TsKeywordType{Kind: "string"}},
			&ast.TsOptionalType{TypeAnn: &ast.TsThisType{}},
			&ast.TsRestType{TypeAnn: &ast.TsIntersectionType{Types: []ast.TsType{typeRef("A"), typeRef("B")}}},
			&ast.TsParenthesizedType{TypeAnn: &ast.TsTypeOperator{Op: "keyof", TypeAnn: typeRef("C")}},
			&ast.TsIndexedAccessType{ObjType: typeRef("D"), IndexType: &ast.TsLitType{Lit: num("0")}},
		}}}),
		want: "Program(1) TsTypeAlias(2) Ident TsTupleType(5) TsArrayType(1) TsKeywordType TsOptionalType(1) TsThisType " +
			"TsRestType(1) TsIntersectionType(2) TsTypeRef(1) Ident TsTypeRef(1) Ident " +
			"TsParenthesizedType(1) TsTypeOperator(1) TsTypeRef(1) Ident " +
			"TsIndexedAccessType(2) TsTypeRef(1) Ident TsLitType(1) Num",
	},
	{
		name: "conditional_infer",
		prog: script(&ast.TsTypeAliasDecl{
			ID:         id("E"),
			TypeParams: &ast.TsTypeParamDecl{Params: []*ast.TsTypeParam{{Name: id("T")}}},
			TypeAnn: &ast.TsConditionalType{
				CheckType: typeRef("T"),
				Extends:   &ast.TsArrayType{ElemType: &ast.TsInferType{TypeParam: &ast.TsTypeParam{Name: id("U")}}},
				TrueType:  typeRef("U"),
				FalseType: &ast.TsKeywordType{Kind: "never"},
			},
		}),
		want: "Program(1) TsTypeAlias(3) Ident TsTypeParamDecl(1) TsTypeParam(3) Ident EmptyExpr EmptyExpr " +
			"TsConditionalType(4) TsTypeRef(1) Ident TsArrayType(1) TsInferType(1) TsTypeParam(3) Ident EmptyExpr EmptyExpr " +
			"TsTypeRef(1) Ident TsKeywordType",
	},
	{
		name: "mapped_type",
		prog: script(&ast.TsTypeAliasDecl{ID: id("M"), TypeAnn: &ast.TsMappedType{
			TypeParam: &ast.TsTypeParam{Name: id("K"), Constraint: &ast.TsTypeOperator{Op: "keyof", TypeAnn: typeRef("T")}},
			TypeAnn:   &ast.TsIndexedAccessType{ObjType: typeRef("T"), IndexType: typeRef("K")},
		}}),
		want: "Program(1) TsTypeAlias(2) Ident TsMappedType(3) TsTypeParam(3) Ident TsTypeOperator(1) TsTypeRef(1) Ident EmptyExpr " +
			"EmptyExpr TsIndexedAccessType(2) TsTypeRef(1) Ident TsTypeRef(1) Ident",
	},
	{
		name: "function_query_import_types",
		prog: script(&ast.TsTypeAliasDecl{ID: id("F"), TypeAnn: &ast.TsUnionType{Types: []ast.TsType{
			&ast.TsFnType{Params: []ast.Pat{id("x")}, TypeAnn: &ast.TsTypeAnn{Type: &ast.TsKeywordType{Kind: "void"}}},
			&ast.TsConstructorType{TypeAnn: &ast.TsTypeAnn{Type: typeRef("C")}},
			&ast.TsTypeQuery{ExprName: &ast.TsQualifiedName{Left: id("a"), Right: id("b")}},
			&ast.TsImportType{Arg: str("m"), Qualifier: id("X")},
		}}}),
		want: "Program(1) TsTypeAlias(2) Ident TsUnionType(4) TsFnType(2) Ident TsTypeAnn(1) TsKeywordType " +
			"TsConstructorType(1) TsTypeAnn(1) TsTypeRef(1) Ident TsTypeQuery(1) TsQualifiedName(2) Ident Ident " +
			"TsImportType(2) StringLiteral Ident",
	},
	{
		name: "type_literal_members",
		prog: script(&ast.TsTypeAliasDecl{ID: id("L"), TypeAnn: &ast.TsTypeLit{Members: []ast.TsTypeElement{
			&ast.TsMethodSignature{Key: id("m"), Params: []ast.Pat{id("a")}, TypeAnn: &ast.TsTypeAnn{Type: &ast.TsKeywordType{Kind: "void"}}},
			&ast.TsCallSignatureDecl{},
			&ast.TsConstructSignatureDecl{TypeAnn: &ast.TsTypeAnn{Type: typeRef("L")}},
			&ast.TsIndexSignature{
				Params:  []ast.Pat{&ast.Ident{Name: "k", TypeAnn: &ast.TsTypeAnn{Type: &ast.TsKeywordType{Kind: "string"}}}},
				TypeAnn: &ast.TsTypeAnn{Type: &ast.TsKeywordType{Kind: "number"}},
			},
		}}}),
		want: "Program(1) TsTypeAlias(2) Ident TsTypeLit(4) TsMethodSignature(3) Ident Ident TsTypeAnn(1) TsKeywordType " +
			"TsCallSignature TsConstructSignature(1) TsTypeAnn(1) TsTypeRef(1) Ident " +
			"TsIndexSignature(2) Ident(1) TsTypeAnn(1) TsKeywordType TsTypeAnn(1) TsKeywordType",
	},
	{
		name: "type_predicate",
		prog: script(&ast.FnDecl{Ident: id("isT"), Function: &ast.Function{
			Params: []ast.Pat{id("x")},
			ReturnType: &ast.TsTypeAnn{Type: &ast.TsTypePredicate{
				ParamName: id("x"),
				TypeAnn:   &ast.TsTypeAnn{Type: typeRef("T")},
			}},
			Body: &ast.BlockStmt{},
		}}),
		want: "Program(1) Fn(5) Ident EmptyExpr Ident TsTypeAnn(1) TsTypePredicate(2) Ident TsTypeAnn(1) TsTypeRef(1) Ident Block",
	},
	{
		name: "param_property",
		prog: script(&ast.ClassDecl{Ident: id("P"), Class: &ast.Class{Body: []ast.ClassMember{
			&ast.ClassMethod{Key: id("constructor"), Function: &ast.Function{
				Params: []ast.Pat{
					&ast.TsParamProp{Accessibility: "private", Param: id("x")},
					&ast.AssignPat{Left: id("y"), Right: num("1")},
				},
				Body: &ast.BlockStmt{},
			}},
		}}}),
		want: "Program(1) Class(5) Ident EmptyExpr EmptyExpr EmptyExpr ClassMethod(2) Ident " +
			"FnExpr(6) EmptyExpr EmptyExpr TsParamProp(1) Ident AssignPat(2) Ident Num EmptyExpr Block",
	},
	{
		name: "export_default_forms",
		prog: module(
			&ast.ExportDefaultDecl{Decl: &ast.FnDecl{Ident: id("f"), Function: &ast.Function{Body: &ast.BlockStmt{}}}},
			&ast.ExportDefaultExpr{Expr: num("1")},
			&ast.ExportAll{Src: str("m")},
		),
		want: "Program(3) ExportDefaultDecl(1) Fn(4) Ident EmptyExpr EmptyExpr Block " +
			"ExportDefaultExpr(1) Num ExportAll(1) StringLiteral",
	},
	{
		name: "import_equals",
		prog: module(
			&ast.TsImportEqualsDecl{ID: id("fs"), ModuleRef: str("fs")},
			&ast.TsImportEqualsDecl{ID: id("B"), ModuleRef: &ast.TsQualifiedName{Left: id("A"), Right: id("B")}},
			&ast.TsExportAssignment{Expr: id("fs")},
			&ast.TsNamespaceExportDecl{ID: id("NS")},
		),
		want: "Program(4) TsImportEquals(2) Ident StringLiteral TsImportEquals(2) Ident TsQualifiedName(2) Ident Ident " +
			"TsExportAssignment(1) Ident TsNamespaceExport(1) Ident",
	},
}

func TestEncode_Shapes(t *testing.T) {
	for _, tc := range shapeCases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := Encode(tc.prog)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if diff := cmp.Diff(tc.want, render(t, buf)); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ifExample builds `if (a) { b; }` with real source offsets.
func ifExample() *ast.Script {
	sp := func(s, e uint32) ast.Span { return ast.Span{Start: s, End: e} }
	return &ast.Script{SpanVal: sp(0, 13), Body: []ast.Stmt{
		&ast.IfStmt{
			SpanVal: sp(0, 13),
			Test:    &ast.Ident{SpanVal: sp(4, 5), Name: "a"},
			Cons: &ast.BlockStmt{SpanVal: sp(7, 13), Stmts: []ast.Stmt{
				&ast.ExprStmt{SpanVal: sp(9, 11), Expr: &ast.Ident{SpanVal: sp(9, 10), Name: "b"}},
			}},
		},
	}}
}

func TestEncode_IfExample(t *testing.T) {
	buf, err := Encode(ifExample())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Program plus five nodes.
	if len(buf) != 6*HeaderSize {
		t.Fatalf("length: got %d, want %d", len(buf), 6*HeaderSize)
	}
	want := []Header{
		{Kind: KindProgram, Count: 1, Span: ast.Span{Start: 0, End: 13}},
		{Kind: KindIf, Count: 2, Span: ast.Span{Start: 0, End: 13}},
		{Kind: KindIdent, Count: 0, Span: ast.Span{Start: 4, End: 5}},
		{Kind: KindBlock, Count: 1, Span: ast.Span{Start: 7, End: 13}},
		{Kind: KindExpr, Count: 1, Span: ast.Span{Start: 9, End: 11}},
		{Kind: KindIdent, Count: 0, Span: ast.Span{Start: 9, End: 10}},
	}
	if diff := cmp.Diff(want, readTree(t, buf)); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_SpanZero(t *testing.T) {
	buf, err := NewEncoder(Options{Spans: SpanZero}).Encode(ifExample())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i, h := range readTree(t, buf) {
		if h.Span != (ast.Span{}) {
			t.Errorf("record %d (%s): span %v, want zero", i, h.Kind, h.Span)
		}
	}
}

func TestEncode_Idempotent(t *testing.T) {
	enc := NewEncoder(Options{})
	for _, tc := range shapeCases {
		first, err := enc.Encode(tc.prog)
		if err != nil {
			t.Fatalf("%s: encode: %v", tc.name, err)
		}
		second, err := enc.Encode(tc.prog)
		if err != nil {
			t.Fatalf("%s: re-encode: %v", tc.name, err)
		}
		fresh, err := Encode(tc.prog)
		if err != nil {
			t.Fatalf("%s: fresh encode: %v", tc.name, err)
		}
		if !bytes.Equal(first, second) || !bytes.Equal(first, fresh) {
			t.Errorf("%s: encoding is not deterministic", tc.name)
		}
	}
}

func TestEncode_ProgramCountMatchesItems(t *testing.T) {
	for _, tc := range shapeCases {
		buf, err := Encode(tc.prog)
		if err != nil {
			t.Fatalf("%s: encode: %v", tc.name, err)
		}
		h, err := ReadHeader(buf)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if h.Kind != KindProgram {
			t.Errorf("%s: root kind %s", tc.name, h.Kind)
		}
		if got, want := int(h.Count), len(ast.Items(tc.prog)); got != want {
			t.Errorf("%s: root count %d, want %d", tc.name, got, want)
		}
	}
}

func TestEncode_SpreadAccounting(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		for _, k := range []int{0, 1, 2} {
			var args []*ast.ExprOrSpread
			for i := 0; i < n; i++ {
				if i < k {
					args = append(args, spread(id("s")))
				} else {
					args = append(args, arg(id("a")))
				}
			}
			if k > n {
				continue
			}
			buf, err := Encode(script(exprStmt(&ast.CallExpr{Callee: id("f"), Args: args})))
			if err != nil {
				t.Fatalf("n=%d k=%d: %v", n, k, err)
			}
			call := readTree(t, buf)[2]
			if want := uint32(1 + n + k); call.Count != want {
				t.Errorf("n=%d k=%d: call count %d, want %d", n, k, call.Count, want)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Failure modes
// ---------------------------------------------------------------------------

type foreignExpr struct{ ast.Invalid }

func TestEncode_UnsupportedMarker(t *testing.T) {
	bad := &ast.Invalid{SpanVal: ast.Span{Start: 3, End: 7}}
	prog := script(exprStmt(bad), exprStmt(&foreignExpr{}))
	buf, err := Encode(prog)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if diff := cmp.Diff("Program(2) Expr(1) Invalid Expr(1) Invalid", render(t, buf)); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
	if hs := readTree(t, buf); hs[2].Span != bad.SpanVal {
		t.Errorf("marker span: got %v, want %v", hs[2].Span, bad.SpanVal)
	}
}

func TestEncode_UnsupportedReject(t *testing.T) {
	bad := &ast.Invalid{SpanVal: ast.Span{Start: 3, End: 7}}
	enc := NewEncoder(Options{Unsupported: UnsupportedReject})
	buf, err := enc.Encode(script(exprStmt(id("ok")), exprStmt(bad)))
	if buf != nil {
		t.Errorf("got %d bytes on failure, want nil", len(buf))
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err: got %v, want ErrUnsupported", err)
	}
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("err is %T, want *EncodeError", err)
	}
	if ee.Span != bad.SpanVal {
		t.Errorf("error span: got %v, want %v", ee.Span, bad.SpanVal)
	}

	// The encoder is reusable after a failure.
	if _, err := enc.Encode(script(exprStmt(id("ok")))); err != nil {
		t.Errorf("encode after failure: %v", err)
	}
}

func TestEncode_NilChild(t *testing.T) {
	cases := []struct {
		name string
		prog ast.Program
	}{
		{"nil program", nil},
		{"nil expression", script(exprStmt(nil))},
		{"nil if test", script(&ast.IfStmt{Cons: &ast.EmptyStmt{}})},
		{"nil import source", module(&ast.ImportDecl{})},
		{"nil call argument", script(exprStmt(&ast.CallExpr{Callee: id("f"), Args: []*ast.ExprOrSpread{nil}}))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := Encode(tc.prog)
			if !errors.Is(err, ErrNilNode) {
				t.Fatalf("err: got %v, want ErrNilNode", err)
			}
			if buf != nil {
				t.Errorf("got %d bytes on failure, want nil", len(buf))
			}
		})
	}
}
