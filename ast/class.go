package ast

// ---------------------------------------------------------------------------
// Functions and classes
// ---------------------------------------------------------------------------

// Function is the shared part of function declarations, expressions and
// methods. Body is nil for overload signatures and ambient declarations.
type Function struct {
	SpanVal     Span
	Params      []Pat
	Body        *BlockStmt
	IsAsync     bool
	IsGenerator bool
	TypeParams  *TsTypeParamDecl
	ReturnType  *TsTypeAnn
}

func (n *Function) Span() Span { return n.SpanVal }
func (n *Function) node()      {}

// Class is the shared part of class declarations and expressions.
type Class struct {
	SpanVal         Span
	Body            []ClassMember
	SuperClass      Expr
	TypeParams      *TsTypeParamDecl
	SuperTypeParams *TsTypeParamInstantiation
	Implements      []*TsExprWithTypeArgs
	IsAbstract      bool
}

func (n *Class) Span() Span { return n.SpanVal }
func (n *Class) node()      {}

// ClassMember is a member of a class body: *ClassMethod, *ClassProp,
// *StaticBlock, *EmptyStmt or *TsIndexSignature.
type ClassMember interface {
	Node
	classMember() // marker method
}

// MethodKind distinguishes plain methods from accessors and constructors.
type MethodKind int

const (
	MethodMethod MethodKind = iota
	MethodGetter
	MethodSetter
	MethodConstructor
)

// ClassMethod is a method, accessor or constructor. Key may be a
// *PrivateName.
type ClassMethod struct {
	SpanVal    Span
	Key        PropName
	Function   *Function
	Kind       MethodKind
	IsStatic   bool
	IsAbstract bool
	IsOptional bool
}

func (n *ClassMethod) Span() Span   { return n.SpanVal }
func (n *ClassMethod) node()        {}
func (n *ClassMethod) classMember() {}

// ClassProp is a field declaration. Key may be a *PrivateName.
type ClassProp struct {
	SpanVal    Span
	Key        PropName
	Value      Expr
	TypeAnn    *TsTypeAnn
	IsStatic   bool
	IsReadonly bool
	IsDeclare  bool
}

func (n *ClassProp) Span() Span   { return n.SpanVal }
func (n *ClassProp) node()        {}
func (n *ClassProp) classMember() {}

// StaticBlock is `static { Body }`.
type StaticBlock struct {
	SpanVal Span
	Body    *BlockStmt
}

func (n *StaticBlock) Span() Span   { return n.SpanVal }
func (n *StaticBlock) node()        {}
func (n *StaticBlock) classMember() {}
