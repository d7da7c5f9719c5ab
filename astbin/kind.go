package astbin

import "fmt"

// ---------------------------------------------------------------------------
// Frozen node kinds for the binary AST format.
//
// IMPORTANT: These values are FROZEN. The consumer decodes them as raw
// integers, so once assigned a kind must never change value or meaning.
// New constructs are appended at the end of the list.
// ---------------------------------------------------------------------------

// Kind identifies the syntactic construct a record represents.
type Kind uint8

const (
	// KindInvalid marks a construct the encoder does not support. It is a
	// zero-count leaf a decoder can recognise and skip.
	KindInvalid Kind = iota
	KindProgram

	// Module declarations
	KindImport
	KindImportDecl // reserved, never emitted
	KindExportDecl
	KindExportNamed
	KindExportDefaultDecl
	KindExportDefaultExpr
	KindExportAll
	KindTsImportEquals
	KindTsExportAssignment
	KindTsNamespaceExport

	// Declarations
	KindClass
	KindFn
	KindVar
	KindUsing
	KindTsInterface
	KindTsTypeAlias
	KindTsEnum
	KindTsModule

	// Statements
	KindBlock
	KindEmpty
	KindDebugger
	KindWith
	KindReturn
	KindLabeled
	KindBreak
	KindContinue
	KindIf
	KindSwitch
	KindSwitchCase
	KindThrow
	KindTry
	KindWhile
	KindDoWhile
	KindFor
	KindForIn
	KindForOf
	KindDecl // reserved, never emitted
	KindExpr

	// Expressions
	KindThis
	KindArray
	KindObject
	KindFnExpr
	KindUnary
	KindUpdate
	KindBin
	KindAssign
	KindMember
	KindSuperProp
	KindCond
	KindCall
	KindNew
	KindSeq
	KindIdent
	KindTpl
	KindTaggedTpl
	KindArrow
	KindClassExpr
	KindYield
	KindMetaProp
	KindAwait
	KindTsTypeAssertion
	KindTsConstAssertion
	KindTsNonNull
	KindTsAs
	KindTsInstantiation
	KindTsSatisfies
	KindPrivateName
	KindOptChain

	// Literals
	KindStringLiteral
	KindBool
	KindNull
	KindNum
	KindBigInt
	KindRegex

	// JSX
	KindJSXMember
	KindJSXNamespacedName
	KindJSXEmpty
	KindJSXElement
	KindJSXFragment
	KindJSXText

	// Synthetic markers
	KindEmptyExpr
	KindSpread
	KindObjProperty
	KindVarDeclarator

	// Appended after the first release. Keep appending below.

	KindSuper
	KindImportCallee
	KindCatchClause
	KindImportDefaultSpecifier
	KindImportNamedSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedSpecifier
	KindExportNamespaceSpecifier
	KindExportDefaultSpecifier
	KindArrayPat
	KindObjectPat
	KindAssignPat
	KindRestPat
	KindKeyValuePatProp
	KindAssignPatProp
	KindComputedPropName
	KindGetterProp
	KindSetterProp
	KindMethodProp
	KindClassMethod
	KindClassProp
	KindStaticBlock
	KindTplElement
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXAttr
	KindJSXSpreadAttr
	KindJSXExprContainer
	KindJSXSpreadChild
	KindTsTypeAnn
	KindTsTypeParamDecl
	KindTsTypeParam
	KindTsTypeParamInstantiation
	KindTsExprWithTypeArgs
	KindTsQualifiedName
	KindTsParamProp
	KindTsIndexSignature
	KindTsInterfaceBody
	KindTsPropertySignature
	KindTsMethodSignature
	KindTsCallSignature
	KindTsConstructSignature
	KindTsEnumMember
	KindTsModuleBlock
	KindTsKeywordType
	KindTsThisType
	KindTsFnType
	KindTsConstructorType
	KindTsTypeRef
	KindTsTypeQuery
	KindTsTypeLit
	KindTsArrayType
	KindTsTupleType
	KindTsOptionalType
	KindTsRestType
	KindTsUnionType
	KindTsIntersectionType
	KindTsConditionalType
	KindTsInferType
	KindTsParenthesizedType
	KindTsTypeOperator
	KindTsIndexedAccessType
	KindTsMappedType
	KindTsLitType
	KindTsTypePredicate
	KindTsImportType

	// kindCount must stay last.
	kindCount
)

// KindCount is the number of defined kinds. Every byte value below it is a
// valid Kind. It doubles as a version marker for the kind table.
const KindCount = int(kindCount)

var kindNames = [...]string{
	KindInvalid:                  "Invalid",
	KindProgram:                  "Program",
	KindImport:                   "Import",
	KindImportDecl:               "ImportDecl",
	KindExportDecl:               "ExportDecl",
	KindExportNamed:              "ExportNamed",
	KindExportDefaultDecl:        "ExportDefaultDecl",
	KindExportDefaultExpr:        "ExportDefaultExpr",
	KindExportAll:                "ExportAll",
	KindTsImportEquals:           "TsImportEquals",
	KindTsExportAssignment:       "TsExportAssignment",
	KindTsNamespaceExport:        "TsNamespaceExport",
	KindClass:                    "Class",
	KindFn:                       "Fn",
	KindVar:                      "Var",
	KindUsing:                    "Using",
	KindTsInterface:              "TsInterface",
	KindTsTypeAlias:              "TsTypeAlias",
	KindTsEnum:                   "TsEnum",
	KindTsModule:                 "TsModule",
	KindBlock:                    "Block",
	KindEmpty:                    "Empty",
	KindDebugger:                 "Debugger",
	KindWith:                     "With",
	KindReturn:                   "Return",
	KindLabeled:                  "Labeled",
	KindBreak:                    "Break",
	KindContinue:                 "Continue",
	KindIf:                       "If",
	KindSwitch:                   "Switch",
	KindSwitchCase:               "SwitchCase",
	KindThrow:                    "Throw",
	KindTry:                      "Try",
	KindWhile:                    "While",
	KindDoWhile:                  "DoWhile",
	KindFor:                      "For",
	KindForIn:                    "ForIn",
	KindForOf:                    "ForOf",
	KindDecl:                     "Decl",
	KindExpr:                     "Expr",
	KindThis:                     "This",
	KindArray:                    "Array",
	KindObject:                   "Object",
	KindFnExpr:                   "FnExpr",
	KindUnary:                    "Unary",
	KindUpdate:                   "Update",
	KindBin:                      "Bin",
	KindAssign:                   "Assign",
	KindMember:                   "Member",
	KindSuperProp:                "SuperProp",
	KindCond:                     "Cond",
	KindCall:                     "Call",
	KindNew:                      "New",
	KindSeq:                      "Seq",
	KindIdent:                    "Ident",
	KindTpl:                      "Tpl",
	KindTaggedTpl:                "TaggedTpl",
	KindArrow:                    "Arrow",
	KindClassExpr:                "ClassExpr",
	KindYield:                    "Yield",
	KindMetaProp:                 "MetaProp",
	KindAwait:                    "Await",
	KindTsTypeAssertion:          "TsTypeAssertion",
	KindTsConstAssertion:         "TsConstAssertion",
	KindTsNonNull:                "TsNonNull",
	KindTsAs:                     "TsAs",
	KindTsInstantiation:          "TsInstantiation",
	KindTsSatisfies:              "TsSatisfies",
	KindPrivateName:              "PrivateName",
	KindOptChain:                 "OptChain",
	KindStringLiteral:            "StringLiteral",
	KindBool:                     "Bool",
	KindNull:                     "Null",
	KindNum:                      "Num",
	KindBigInt:                   "BigInt",
	KindRegex:                    "Regex",
	KindJSXMember:                "JSXMember",
	KindJSXNamespacedName:        "JSXNamespacedName",
	KindJSXEmpty:                 "JSXEmpty",
	KindJSXElement:               "JSXElement",
	KindJSXFragment:              "JSXFragment",
	KindJSXText:                  "JSXText",
	KindEmptyExpr:                "EmptyExpr",
	KindSpread:                   "Spread",
	KindObjProperty:              "ObjProperty",
	KindVarDeclarator:            "VarDeclarator",
	KindSuper:                    "Super",
	KindImportCallee:             "ImportCallee",
	KindCatchClause:              "CatchClause",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamedSpecifier:     "ImportNamedSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindExportNamedSpecifier:     "ExportNamedSpecifier",
	KindExportNamespaceSpecifier: "ExportNamespaceSpecifier",
	KindExportDefaultSpecifier:   "ExportDefaultSpecifier",
	KindArrayPat:                 "ArrayPat",
	KindObjectPat:                "ObjectPat",
	KindAssignPat:                "AssignPat",
	KindRestPat:                  "RestPat",
	KindKeyValuePatProp:          "KeyValuePatProp",
	KindAssignPatProp:            "AssignPatProp",
	KindComputedPropName:         "ComputedPropName",
	KindGetterProp:               "GetterProp",
	KindSetterProp:               "SetterProp",
	KindMethodProp:               "MethodProp",
	KindClassMethod:              "ClassMethod",
	KindClassProp:                "ClassProp",
	KindStaticBlock:              "StaticBlock",
	KindTplElement:               "TplElement",
	KindJSXOpeningElement:        "JSXOpeningElement",
	KindJSXClosingElement:        "JSXClosingElement",
	KindJSXAttr:                  "JSXAttr",
	KindJSXSpreadAttr:            "JSXSpreadAttr",
	KindJSXExprContainer:         "JSXExprContainer",
	KindJSXSpreadChild:           "JSXSpreadChild",
	KindTsTypeAnn:                "TsTypeAnn",
	KindTsTypeParamDecl:          "TsTypeParamDecl",
	KindTsTypeParam:              "TsTypeParam",
	KindTsTypeParamInstantiation: "TsTypeParamInstantiation",
	KindTsExprWithTypeArgs:       "TsExprWithTypeArgs",
	KindTsQualifiedName:          "TsQualifiedName",
	KindTsParamProp:              "TsParamProp",
	KindTsIndexSignature:         "TsIndexSignature",
	KindTsInterfaceBody:          "TsInterfaceBody",
	KindTsPropertySignature:      "TsPropertySignature",
	KindTsMethodSignature:        "TsMethodSignature",
	KindTsCallSignature:          "TsCallSignature",
	KindTsConstructSignature:     "TsConstructSignature",
	KindTsEnumMember:             "TsEnumMember",
	KindTsModuleBlock:            "TsModuleBlock",
	KindTsKeywordType:            "TsKeywordType",
	KindTsThisType:               "TsThisType",
	KindTsFnType:                 "TsFnType",
	KindTsConstructorType:        "TsConstructorType",
	KindTsTypeRef:                "TsTypeRef",
	KindTsTypeQuery:              "TsTypeQuery",
	KindTsTypeLit:                "TsTypeLit",
	KindTsArrayType:              "TsArrayType",
	KindTsTupleType:              "TsTupleType",
	KindTsOptionalType:           "TsOptionalType",
	KindTsRestType:               "TsRestType",
	KindTsUnionType:              "TsUnionType",
	KindTsIntersectionType:       "TsIntersectionType",
	KindTsConditionalType:        "TsConditionalType",
	KindTsInferType:              "TsInferType",
	KindTsParenthesizedType:      "TsParenthesizedType",
	KindTsTypeOperator:           "TsTypeOperator",
	KindTsIndexedAccessType:      "TsIndexedAccessType",
	KindTsMappedType:             "TsMappedType",
	KindTsLitType:                "TsLitType",
	KindTsTypePredicate:          "TsTypePredicate",
	KindTsImportType:             "TsImportType",
}

// Valid reports whether k is a defined kind.
func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindByName returns the kind with the given name, as printed by String.
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}
