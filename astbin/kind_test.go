package astbin

import "testing"

// TestKindOrdinals pins every kind to its wire value. A failure here means
// a kind was inserted or reordered, which breaks every existing consumer.
func TestKindOrdinals(t *testing.T) {
	cases := []struct {
		kind Kind
		want uint8
		name string
	}{
		{KindInvalid, 0, "Invalid"},
		{KindProgram, 1, "Program"},
		{KindImport, 2, "Import"},
		{KindImportDecl, 3, "ImportDecl"},
		{KindExportDecl, 4, "ExportDecl"},
		{KindExportNamed, 5, "ExportNamed"},
		{KindExportDefaultDecl, 6, "ExportDefaultDecl"},
		{KindExportDefaultExpr, 7, "ExportDefaultExpr"},
		{KindExportAll, 8, "ExportAll"},
		{KindTsImportEquals, 9, "TsImportEquals"},
		{KindTsExportAssignment, 10, "TsExportAssignment"},
		{KindTsNamespaceExport, 11, "TsNamespaceExport"},
		{KindClass, 12, "Class"},
		{KindFn, 13, "Fn"},
		{KindVar, 14, "Var"},
		{KindUsing, 15, "Using"},
		{KindTsInterface, 16, "TsInterface"},
		{KindTsTypeAlias, 17, "TsTypeAlias"},
		{KindTsEnum, 18, "TsEnum"},
		{KindTsModule, 19, "TsModule"},
		{KindBlock, 20, "Block"},
		{KindEmpty, 21, "Empty"},
		{KindDebugger, 22, "Debugger"},
		{KindWith, 23, "With"},
		{KindReturn, 24, "Return"},
		{KindLabeled, 25, "Labeled"},
		{KindBreak, 26, "Break"},
		{KindContinue, 27, "Continue"},
		{KindIf, 28, "If"},
		{KindSwitch, 29, "Switch"},
		{KindSwitchCase, 30, "SwitchCase"},
		{KindThrow, 31, "Throw"},
		{KindTry, 32, "Try"},
		{KindWhile, 33, "While"},
		{KindDoWhile, 34, "DoWhile"},
		{KindFor, 35, "For"},
		{KindForIn, 36, "ForIn"},
		{KindForOf, 37, "ForOf"},
		{KindDecl, 38, "Decl"},
		{KindExpr, 39, "Expr"},
		{KindThis, 40, "This"},
		{KindArray, 41, "Array"},
		{KindObject, 42, "Object"},
		{KindFnExpr, 43, "FnExpr"},
		{KindUnary, 44, "Unary"},
		{KindUpdate, 45, "Update"},
		{KindBin, 46, "Bin"},
		{KindAssign, 47, "Assign"},
		{KindMember, 48, "Member"},
		{KindSuperProp, 49, "SuperProp"},
		{KindCond, 50, "Cond"},
		{KindCall, 51, "Call"},
		{KindNew, 52, "New"},
		{KindSeq, 53, "Seq"},
		{KindIdent, 54, "Ident"},
		{KindTpl, 55, "Tpl"},
		{KindTaggedTpl, 56, "TaggedTpl"},
		{KindArrow, 57, "Arrow"},
		{KindClassExpr, 58, "ClassExpr"},
		{KindYield, 59, "Yield"},
		{KindMetaProp, 60, "MetaProp"},
		{KindAwait, 61, "Await"},
		{KindTsTypeAssertion, 62, "TsTypeAssertion"},
		{KindTsConstAssertion, 63, "TsConstAssertion"},
		{KindTsNonNull, 64, "TsNonNull"},
		{KindTsAs, 65, "TsAs"},
		{KindTsInstantiation, 66, "TsInstantiation"},
		{KindTsSatisfies, 67, "TsSatisfies"},
		{KindPrivateName, 68, "PrivateName"},
		{KindOptChain, 69, "OptChain"},
		{KindStringLiteral, 70, "StringLiteral"},
		{KindBool, 71, "Bool"},
		{KindNull, 72, "Null"},
		{KindNum, 73, "Num"},
		{KindBigInt, 74, "BigInt"},
		{KindRegex, 75, "Regex"},
		{KindJSXMember, 76, "JSXMember"},
		{KindJSXNamespacedName, 77, "JSXNamespacedName"},
		{KindJSXEmpty, 78, "JSXEmpty"},
		{KindJSXElement, 79, "JSXElement"},
		{KindJSXFragment, 80, "JSXFragment"},
		{KindJSXText, 81, "JSXText"},
		{KindEmptyExpr, 82, "EmptyExpr"},
		{KindSpread, 83, "Spread"},
		{KindObjProperty, 84, "ObjProperty"},
		{KindVarDeclarator, 85, "VarDeclarator"},
		{KindSuper, 86, "Super"},
		{KindImportCallee, 87, "ImportCallee"},
		{KindCatchClause, 88, "CatchClause"},
		{KindImportDefaultSpecifier, 89, "ImportDefaultSpecifier"},
		{KindImportNamedSpecifier, 90, "ImportNamedSpecifier"},
		{KindImportNamespaceSpecifier, 91, "ImportNamespaceSpecifier"},
		{KindExportNamedSpecifier, 92, "ExportNamedSpecifier"},
		{KindExportNamespaceSpecifier, 93, "ExportNamespaceSpecifier"},
		{KindExportDefaultSpecifier, 94, "ExportDefaultSpecifier"},
		{KindArrayPat, 95, "ArrayPat"},
		{KindObjectPat, 96, "ObjectPat"},
		{KindAssignPat, 97, "AssignPat"},
		{KindRestPat, 98, "RestPat"},
		{KindKeyValuePatProp, 99, "KeyValuePatProp"},
		{KindAssignPatProp, 100, "AssignPatProp"},
		{KindComputedPropName, 101, "ComputedPropName"},
		{KindGetterProp, 102, "GetterProp"},
		{KindSetterProp, 103, "SetterProp"},
		{KindMethodProp, 104, "MethodProp"},
		{KindClassMethod, 105, "ClassMethod"},
		{KindClassProp, 106, "ClassProp"},
		{KindStaticBlock, 107, "StaticBlock"},
		{KindTplElement, 108, "TplElement"},
		{KindJSXOpeningElement, 109, "JSXOpeningElement"},
		{KindJSXClosingElement, 110, "JSXClosingElement"},
		{KindJSXAttr, 111, "JSXAttr"},
		{KindJSXSpreadAttr, 112, "JSXSpreadAttr"},
		{KindJSXExprContainer, 113, "JSXExprContainer"},
		{KindJSXSpreadChild, 114, "JSXSpreadChild"},
		{KindTsTypeAnn, 115, "TsTypeAnn"},
		{KindTsTypeParamDecl, 116, "TsTypeParamDecl"},
		{KindTsTypeParam, 117, "TsTypeParam"},
		{KindTsTypeParamInstantiation, 118, "TsTypeParamInstantiation"},
		{KindTsExprWithTypeArgs, 119, "TsExprWithTypeArgs"},
		{KindTsQualifiedName, 120, "TsQualifiedName"},
		{KindTsParamProp, 121, "TsParamProp"},
		{KindTsIndexSignature, 122, "TsIndexSignature"},
		{KindTsInterfaceBody, 123, "TsInterfaceBody"},
		{KindTsPropertySignature, 124, "TsPropertySignature"},
		{KindTsMethodSignature, 125, "TsMethodSignature"},
		{KindTsCallSignature, 126, "TsCallSignature"},
		{KindTsConstructSignature, 127, "TsConstructSignature"},
		{KindTsEnumMember, 128, "TsEnumMember"},
		{KindTsModuleBlock, 129, "TsModuleBlock"},
		{KindTsKeywordType, 130, "TsKeywordType"},
		{KindTsThisType, 131, "TsThisType"},
		{KindTsFnType, 132, "TsFnType"},
		{KindTsConstructorType, 133, "TsConstructorType"},
		{KindTsTypeRef, 134, "TsTypeRef"},
		{KindTsTypeQuery, 135, "TsTypeQuery"},
		{KindTsTypeLit, 136, "TsTypeLit"},
		{KindTsArrayType, 137, "TsArrayType"},
		{KindTsTupleType, 138, "TsTupleType"},
		{KindTsOptionalType, 139, "TsOptionalType"},
		{KindTsRestType, 140, "TsRestType"},
		{KindTsUnionType, 141, "TsUnionType"},
		{KindTsIntersectionType, 142, "TsIntersectionType"},
		{KindTsConditionalType, 143, "TsConditionalType"},
		{KindTsInferType, 144, "TsInferType"},
		{KindTsParenthesizedType, 145, "TsParenthesizedType"},
		{KindTsTypeOperator, 146, "TsTypeOperator"},
		{KindTsIndexedAccessType, 147, "TsIndexedAccessType"},
		{KindTsMappedType, 148, "TsMappedType"},
		{KindTsLitType, 149, "TsLitType"},
		{KindTsTypePredicate, 150, "TsTypePredicate"},
		{KindTsImportType, 151, "TsImportType"},
	}

	if len(cases) != KindCount {
		t.Fatalf("pinned %d kinds, KindCount is %d", len(cases), KindCount)
	}
	for _, tc := range cases {
		if uint8(tc.kind) != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, uint8(tc.kind), tc.want)
		}
		if got := tc.kind.String(); got != tc.name {
			t.Errorf("Kind(%d).String(): got %q, want %q", tc.want, got, tc.name)
		}
	}
}

func TestKindNamesUnique(t *testing.T) {
	seen := make(map[string]Kind, KindCount)
	for i := 0; i < KindCount; i++ {
		k := Kind(i)
		name := k.String()
		if name == "" {
			t.Errorf("kind %d has no name", i)
			continue
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q used by kinds %d and %d", name, prev, i)
		}
		seen[name] = k
	}
}

func TestKindByName(t *testing.T) {
	for i := 0; i < KindCount; i++ {
		k := Kind(i)
		got, ok := KindByName(k.String())
		if !ok || got != k {
			t.Errorf("KindByName(%q): got %d, %v; want %d", k.String(), got, ok, k)
		}
	}
	if _, ok := KindByName("NoSuchKind"); ok {
		t.Error("KindByName accepted an unknown name")
	}
}

func TestKindValid(t *testing.T) {
	if !KindTsImportType.Valid() {
		t.Error("last kind reported invalid")
	}
	if Kind(KindCount).Valid() {
		t.Errorf("Kind(%d) reported valid", KindCount)
	}
	if got := Kind(255).String(); got != "Kind(255)" {
		t.Errorf("unknown kind String: got %q", got)
	}
}
