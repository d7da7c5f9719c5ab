package ast

// ---------------------------------------------------------------------------
// TypeScript: annotations and type parameters
// ---------------------------------------------------------------------------

// TsTypeAnn is `: Type` attached to a binding, parameter or function.
type TsTypeAnn struct {
	SpanVal Span
	Type    TsType
}

func (n *TsTypeAnn) Span() Span { return n.SpanVal }
func (n *TsTypeAnn) node()      {}

// TsTypeParamDecl is `<Params>` on a generic declaration.
type TsTypeParamDecl struct {
	SpanVal Span
	Params  []*TsTypeParam
}

func (n *TsTypeParamDecl) Span() Span { return n.SpanVal }
func (n *TsTypeParamDecl) node()      {}

// TsTypeParam is `Name extends Constraint = Default`.
type TsTypeParam struct {
	SpanVal    Span
	Name       *Ident
	Constraint TsType
	Default    TsType
	IsConst    bool
}

func (n *TsTypeParam) Span() Span { return n.SpanVal }
func (n *TsTypeParam) node()      {}

// TsTypeParamInstantiation is `<Params>` supplied as type arguments.
type TsTypeParamInstantiation struct {
	SpanVal Span
	Params  []TsType
}

func (n *TsTypeParamInstantiation) Span() Span { return n.SpanVal }
func (n *TsTypeParamInstantiation) node()      {}

// TsExprWithTypeArgs is `Expr<TypeArgs>` in extends / implements clauses.
type TsExprWithTypeArgs struct {
	SpanVal  Span
	Expr     Expr
	TypeArgs *TsTypeParamInstantiation
}

func (n *TsExprWithTypeArgs) Span() Span { return n.SpanVal }
func (n *TsExprWithTypeArgs) node()      {}

// TsEntityName is *Ident or *TsQualifiedName.
type TsEntityName interface {
	Node
	entityName() // marker method
}

// TsQualifiedName is `Left.Right` in type position.
type TsQualifiedName struct {
	SpanVal Span
	Left    TsEntityName
	Right   *Ident
}

func (n *TsQualifiedName) Span() Span  { return n.SpanVal }
func (n *TsQualifiedName) node()       {}
func (n *TsQualifiedName) entityName() {}

// TsParamProp is a constructor parameter with an accessibility or readonly
// modifier, which also declares a field.
type TsParamProp struct {
	SpanVal       Span
	Param         Pat
	Accessibility string
	Readonly      bool
}

func (n *TsParamProp) Span() Span { return n.SpanVal }
func (n *TsParamProp) node()      {}
func (n *TsParamProp) pat()       {}

// ---------------------------------------------------------------------------
// TypeScript: declarations
// ---------------------------------------------------------------------------

// TsInterfaceDecl is `interface ID<TypeParams> extends Extends { Body }`.
type TsInterfaceDecl struct {
	SpanVal    Span
	ID         *Ident
	TypeParams *TsTypeParamDecl
	Extends    []*TsExprWithTypeArgs
	Body       *TsInterfaceBody
	Declare    bool
}

func (n *TsInterfaceDecl) Span() Span  { return n.SpanVal }
func (n *TsInterfaceDecl) node()       {}
func (n *TsInterfaceDecl) moduleItem() {}
func (n *TsInterfaceDecl) stmt()       {}
func (n *TsInterfaceDecl) decl()       {}

// TsInterfaceBody holds interface members.
type TsInterfaceBody struct {
	SpanVal Span
	Body    []TsTypeElement
}

func (n *TsInterfaceBody) Span() Span { return n.SpanVal }
func (n *TsInterfaceBody) node()      {}

// TsTypeAliasDecl is `type ID<TypeParams> = TypeAnn`.
type TsTypeAliasDecl struct {
	SpanVal    Span
	ID         *Ident
	TypeParams *TsTypeParamDecl
	TypeAnn    TsType
	Declare    bool
}

func (n *TsTypeAliasDecl) Span() Span  { return n.SpanVal }
func (n *TsTypeAliasDecl) node()       {}
func (n *TsTypeAliasDecl) moduleItem() {}
func (n *TsTypeAliasDecl) stmt()       {}
func (n *TsTypeAliasDecl) decl()       {}

// TsEnumDecl is `enum ID { Members }`.
type TsEnumDecl struct {
	SpanVal Span
	ID      *Ident
	Members []*TsEnumMember
	IsConst bool
	Declare bool
}

func (n *TsEnumDecl) Span() Span  { return n.SpanVal }
func (n *TsEnumDecl) node()       {}
func (n *TsEnumDecl) moduleItem() {}
func (n *TsEnumDecl) stmt()       {}
func (n *TsEnumDecl) decl()       {}

// TsEnumMember is `ID = Init`. ID is an *Ident or a *Str.
type TsEnumMember struct {
	SpanVal Span
	ID      Expr
	Init    Expr
}

func (n *TsEnumMember) Span() Span { return n.SpanVal }
func (n *TsEnumMember) node()      {}

// TsModuleDecl is `namespace ID { ... }` or `declare module "ID" { ... }`.
// ID is an *Ident or a *Str. Body is a *TsModuleBlock, a nested
// *TsModuleDecl for dotted names, or nil for a shorthand ambient module.
type TsModuleDecl struct {
	SpanVal  Span
	ID       Expr
	Body     Node
	Declare  bool
	IsGlobal bool
}

func (n *TsModuleDecl) Span() Span  { return n.SpanVal }
func (n *TsModuleDecl) node()       {}
func (n *TsModuleDecl) moduleItem() {}
func (n *TsModuleDecl) stmt()       {}
func (n *TsModuleDecl) decl()       {}

// TsModuleBlock is the braced body of a namespace.
type TsModuleBlock struct {
	SpanVal Span
	Body    []ModuleItem
}

func (n *TsModuleBlock) Span() Span { return n.SpanVal }
func (n *TsModuleBlock) node()      {}

// TsImportEqualsDecl is `import ID = ModuleRef`. ModuleRef is a
// TsEntityName or, for `require("m")`, a *Str.
type TsImportEqualsDecl struct {
	SpanVal    Span
	ID         *Ident
	ModuleRef  Node
	IsExport   bool
	IsTypeOnly bool
}

func (n *TsImportEqualsDecl) Span() Span  { return n.SpanVal }
func (n *TsImportEqualsDecl) node()       {}
func (n *TsImportEqualsDecl) moduleItem() {}
func (n *TsImportEqualsDecl) moduleDecl() {}

// TsExportAssignment is `export = Expr`.
type TsExportAssignment struct {
	SpanVal Span
	Expr    Expr
}

func (n *TsExportAssignment) Span() Span  { return n.SpanVal }
func (n *TsExportAssignment) node()       {}
func (n *TsExportAssignment) moduleItem() {}
func (n *TsExportAssignment) moduleDecl() {}

// TsNamespaceExportDecl is `export as namespace ID`.
type TsNamespaceExportDecl struct {
	SpanVal Span
	ID      *Ident
}

func (n *TsNamespaceExportDecl) Span() Span  { return n.SpanVal }
func (n *TsNamespaceExportDecl) node()       {}
func (n *TsNamespaceExportDecl) moduleItem() {}
func (n *TsNamespaceExportDecl) moduleDecl() {}

// ---------------------------------------------------------------------------
// TypeScript: expressions
// ---------------------------------------------------------------------------

// TsTypeAssertion is `<TypeAnn>Expr`.
type TsTypeAssertion struct {
	SpanVal Span
	Expr    Expr
	TypeAnn TsType
}

func (n *TsTypeAssertion) Span() Span { return n.SpanVal }
func (n *TsTypeAssertion) node()      {}
func (n *TsTypeAssertion) expr()      {}

// TsConstAssertion is `Expr as const`.
type TsConstAssertion struct {
	SpanVal Span
	Expr    Expr
}

func (n *TsConstAssertion) Span() Span { return n.SpanVal }
func (n *TsConstAssertion) node()      {}
func (n *TsConstAssertion) expr()      {}

// TsNonNullExpr is `Expr!`.
type TsNonNullExpr struct {
	SpanVal Span
	Expr    Expr
}

func (n *TsNonNullExpr) Span() Span { return n.SpanVal }
func (n *TsNonNullExpr) node()      {}
func (n *TsNonNullExpr) expr()      {}

// TsAsExpr is `Expr as TypeAnn`.
type TsAsExpr struct {
	SpanVal Span
	Expr    Expr
	TypeAnn TsType
}

func (n *TsAsExpr) Span() Span { return n.SpanVal }
func (n *TsAsExpr) node()      {}
func (n *TsAsExpr) expr()      {}

// TsInstantiation is `Expr<TypeArgs>` without a call.
type TsInstantiation struct {
	SpanVal  Span
	Expr     Expr
	TypeArgs *TsTypeParamInstantiation
}

func (n *TsInstantiation) Span() Span { return n.SpanVal }
func (n *TsInstantiation) node()      {}
func (n *TsInstantiation) expr()      {}

// TsSatisfiesExpr is `Expr satisfies TypeAnn`.
type TsSatisfiesExpr struct {
	SpanVal Span
	Expr    Expr
	TypeAnn TsType
}

func (n *TsSatisfiesExpr) Span() Span { return n.SpanVal }
func (n *TsSatisfiesExpr) node()      {}
func (n *TsSatisfiesExpr) expr()      {}

// ---------------------------------------------------------------------------
// TypeScript: type members
// ---------------------------------------------------------------------------

// TsTypeElement is a member of an interface body or type literal.
type TsTypeElement interface {
	Node
	tsTypeElement() // marker method
}

// TsPropertySignature is `Key?: TypeAnn`.
type TsPropertySignature struct {
	SpanVal  Span
	Key      PropName
	TypeAnn  *TsTypeAnn
	Optional bool
	Readonly bool
}

func (n *TsPropertySignature) Span() Span     { return n.SpanVal }
func (n *TsPropertySignature) node()          {}
func (n *TsPropertySignature) tsTypeElement() {}

// TsMethodSignature is `Key<TypeParams>(Params): TypeAnn`.
type TsMethodSignature struct {
	SpanVal    Span
	Key        PropName
	Params     []Pat
	TypeParams *TsTypeParamDecl
	TypeAnn    *TsTypeAnn
	Optional   bool
}

func (n *TsMethodSignature) Span() Span     { return n.SpanVal }
func (n *TsMethodSignature) node()          {}
func (n *TsMethodSignature) tsTypeElement() {}

// TsCallSignatureDecl is `<TypeParams>(Params): TypeAnn`.
type TsCallSignatureDecl struct {
	SpanVal    Span
	Params     []Pat
	TypeParams *TsTypeParamDecl
	TypeAnn    *TsTypeAnn
}

func (n *TsCallSignatureDecl) Span() Span     { return n.SpanVal }
func (n *TsCallSignatureDecl) node()          {}
func (n *TsCallSignatureDecl) tsTypeElement() {}

// TsConstructSignatureDecl is `new <TypeParams>(Params): TypeAnn`.
type TsConstructSignatureDecl struct {
	SpanVal    Span
	Params     []Pat
	TypeParams *TsTypeParamDecl
	TypeAnn    *TsTypeAnn
}

func (n *TsConstructSignatureDecl) Span() Span     { return n.SpanVal }
func (n *TsConstructSignatureDecl) node()          {}
func (n *TsConstructSignatureDecl) tsTypeElement() {}

// TsIndexSignature is `[Params]: TypeAnn`, in type members and classes.
type TsIndexSignature struct {
	SpanVal  Span
	Params   []Pat
	TypeAnn  *TsTypeAnn
	Readonly bool
	IsStatic bool
}

func (n *TsIndexSignature) Span() Span     { return n.SpanVal }
func (n *TsIndexSignature) node()          {}
func (n *TsIndexSignature) tsTypeElement() {}
func (n *TsIndexSignature) classMember()   {}

// ---------------------------------------------------------------------------
// TypeScript: types
// ---------------------------------------------------------------------------

// TsType is the interface for type nodes.
type TsType interface {
	Node
	tsType() // marker method
}

// TsKeywordType is a built-in type name such as number, string or any.
type TsKeywordType struct {
	SpanVal Span
	Kind    string
}

func (n *TsKeywordType) Span() Span { return n.SpanVal }
func (n *TsKeywordType) node()      {}
func (n *TsKeywordType) tsType()    {}

// TsThisType is `this` in type position.
type TsThisType struct {
	SpanVal Span
}

func (n *TsThisType) Span() Span { return n.SpanVal }
func (n *TsThisType) node()      {}
func (n *TsThisType) tsType()    {}

// TsFnType is `<TypeParams>(Params) => TypeAnn`.
type TsFnType struct {
	SpanVal    Span
	Params     []Pat
	TypeParams *TsTypeParamDecl
	TypeAnn    *TsTypeAnn
}

func (n *TsFnType) Span() Span { return n.SpanVal }
func (n *TsFnType) node()      {}
func (n *TsFnType) tsType()    {}

// TsConstructorType is `new <TypeParams>(Params) => TypeAnn`.
type TsConstructorType struct {
	SpanVal    Span
	Params     []Pat
	TypeParams *TsTypeParamDecl
	TypeAnn    *TsTypeAnn
	IsAbstract bool
}

func (n *TsConstructorType) Span() Span { return n.SpanVal }
func (n *TsConstructorType) node()      {}
func (n *TsConstructorType) tsType()    {}

// TsTypeRef is `TypeName<TypeParams>`.
type TsTypeRef struct {
	SpanVal    Span
	TypeName   TsEntityName
	TypeParams *TsTypeParamInstantiation
}

func (n *TsTypeRef) Span() Span { return n.SpanVal }
func (n *TsTypeRef) node()      {}
func (n *TsTypeRef) tsType()    {}

// TsTypeQuery is `typeof ExprName<TypeArgs>`. ExprName is a TsEntityName
// or a *TsImportType.
type TsTypeQuery struct {
	SpanVal  Span
	ExprName Node
	TypeArgs *TsTypeParamInstantiation
}

func (n *TsTypeQuery) Span() Span { return n.SpanVal }
func (n *TsTypeQuery) node()      {}
func (n *TsTypeQuery) tsType()    {}

// TsTypeLit is `{ Members }` in type position.
type TsTypeLit struct {
	SpanVal Span
	Members []TsTypeElement
}

func (n *TsTypeLit) Span() Span { return n.SpanVal }
func (n *TsTypeLit) node()      {}
func (n *TsTypeLit) tsType()    {}

// TsArrayType is `ElemType[]`.
type TsArrayType struct {
	SpanVal  Span
	ElemType TsType
}

func (n *TsArrayType) Span() Span { return n.SpanVal }
func (n *TsArrayType) node()      {}
func (n *TsArrayType) tsType()    {}

// TsTupleType is `[ElemTypes]`. Element labels are not kept.
type TsTupleType struct {
	SpanVal   Span
	ElemTypes []TsType
}

func (n *TsTupleType) Span() Span { return n.SpanVal }
func (n *TsTupleType) node()      {}
func (n *TsTupleType) tsType()    {}

// TsOptionalType is `TypeAnn?` inside a tuple.
type TsOptionalType struct {
	SpanVal Span
	TypeAnn TsType
}

func (n *TsOptionalType) Span() Span { return n.SpanVal }
func (n *TsOptionalType) node()      {}
func (n *TsOptionalType) tsType()    {}

// TsRestType is `...TypeAnn` inside a tuple.
type TsRestType struct {
	SpanVal Span
	TypeAnn TsType
}

func (n *TsRestType) Span() Span { return n.SpanVal }
func (n *TsRestType) node()      {}
func (n *TsRestType) tsType()    {}

// TsUnionType is `A | B`.
type TsUnionType struct {
	SpanVal Span
	Types   []TsType
}

func (n *TsUnionType) Span() Span { return n.SpanVal }
func (n *TsUnionType) node()      {}
func (n *TsUnionType) tsType()    {}

// TsIntersectionType is `A & B`.
type TsIntersectionType struct {
	SpanVal Span
	Types   []TsType
}

func (n *TsIntersectionType) Span() Span { return n.SpanVal }
func (n *TsIntersectionType) node()      {}
func (n *TsIntersectionType) tsType()    {}

// TsConditionalType is `Check extends Extends ? True : False`.
type TsConditionalType struct {
	SpanVal   Span
	CheckType TsType
	Extends   TsType
	TrueType  TsType
	FalseType TsType
}

func (n *TsConditionalType) Span() Span { return n.SpanVal }
func (n *TsConditionalType) node()      {}
func (n *TsConditionalType) tsType()    {}

// TsInferType is `infer TypeParam`.
type TsInferType struct {
	SpanVal   Span
	TypeParam *TsTypeParam
}

func (n *TsInferType) Span() Span { return n.SpanVal }
func (n *TsInferType) node()      {}
func (n *TsInferType) tsType()    {}

// TsParenthesizedType is `(TypeAnn)`.
type TsParenthesizedType struct {
	SpanVal Span
	TypeAnn TsType
}

func (n *TsParenthesizedType) Span() Span { return n.SpanVal }
func (n *TsParenthesizedType) node()      {}
func (n *TsParenthesizedType) tsType()    {}

// TsTypeOperator is `keyof T`, `unique symbol` or `readonly T[]`.
type TsTypeOperator struct {
	SpanVal Span
	Op      string
	TypeAnn TsType
}

func (n *TsTypeOperator) Span() Span { return n.SpanVal }
func (n *TsTypeOperator) node()      {}
func (n *TsTypeOperator) tsType()    {}

// TsIndexedAccessType is `ObjType[IndexType]`.
type TsIndexedAccessType struct {
	SpanVal   Span
	ObjType   TsType
	IndexType TsType
}

func (n *TsIndexedAccessType) Span() Span { return n.SpanVal }
func (n *TsIndexedAccessType) node()      {}
func (n *TsIndexedAccessType) tsType()    {}

// TsMappedType is `{ [TypeParam as NameType]: TypeAnn }`.
type TsMappedType struct {
	SpanVal   Span
	TypeParam *TsTypeParam
	NameType  TsType
	TypeAnn   TsType
}

func (n *TsMappedType) Span() Span { return n.SpanVal }
func (n *TsMappedType) node()      {}
func (n *TsMappedType) tsType()    {}

// TsLitType is a literal used as a type. Lit is a *Str, *Num, *Bool,
// *BigInt or *Tpl.
type TsLitType struct {
	SpanVal Span
	Lit     Expr
}

func (n *TsLitType) Span() Span { return n.SpanVal }
func (n *TsLitType) node()      {}
func (n *TsLitType) tsType()    {}

// TsTypePredicate is `ParamName is TypeAnn` or `asserts ParamName`.
// ParamName is an *Ident or a *TsThisType; TypeAnn is optional.
type TsTypePredicate struct {
	SpanVal   Span
	Asserts   bool
	ParamName Node
	TypeAnn   *TsTypeAnn
}

func (n *TsTypePredicate) Span() Span { return n.SpanVal }
func (n *TsTypePredicate) node()      {}
func (n *TsTypePredicate) tsType()    {}

// TsImportType is `import(Arg).Qualifier<TypeArgs>`.
type TsImportType struct {
	SpanVal   Span
	Arg       *Str
	Qualifier TsEntityName
	TypeArgs  *TsTypeParamInstantiation
}

func (n *TsImportType) Span() Span { return n.SpanVal }
func (n *TsImportType) node()      {}
func (n *TsImportType) tsType()    {}
