package ast

// ---------------------------------------------------------------------------
// Expression nodes
// ---------------------------------------------------------------------------

// Ident is an identifier. In binding positions it implements Pat and may
// carry a type annotation.
type Ident struct {
	SpanVal  Span
	Name     string
	Optional bool
	TypeAnn  *TsTypeAnn
}

func (n *Ident) Span() Span  { return n.SpanVal }
func (n *Ident) node()       {}
func (n *Ident) expr()       {}
func (n *Ident) pat()        {}
func (n *Ident) prop()       {}
func (n *Ident) propName()   {}
func (n *Ident) jsxName()    {}
func (n *Ident) entityName() {}

// ThisExpr is `this`.
type ThisExpr struct {
	SpanVal Span
}

func (n *ThisExpr) Span() Span { return n.SpanVal }
func (n *ThisExpr) node()      {}
func (n *ThisExpr) expr()      {}

// Super is the `super` keyword, valid as a callee or a SuperPropExpr object.
type Super struct {
	SpanVal Span
}

func (n *Super) Span() Span { return n.SpanVal }
func (n *Super) node()      {}
func (n *Super) expr()      {}

// Import is the `import` keyword used as the callee of a dynamic import.
type Import struct {
	SpanVal Span
}

func (n *Import) Span() Span { return n.SpanVal }
func (n *Import) node()      {}
func (n *Import) expr()      {}

// ExprOrSpread is an element of an argument list or array literal. Spread
// is the span of the `...` token, nil when the element is not spread.
type ExprOrSpread struct {
	Spread *Span
	Expr   Expr
}

// ArrayLit is `[Elems]`. A nil element is a hole.
type ArrayLit struct {
	SpanVal Span
	Elems   []*ExprOrSpread
}

func (n *ArrayLit) Span() Span { return n.SpanVal }
func (n *ArrayLit) node()      {}
func (n *ArrayLit) expr()      {}

// ObjectLit is `{Props}`.
type ObjectLit struct {
	SpanVal Span
	Props   []Prop
}

func (n *ObjectLit) Span() Span { return n.SpanVal }
func (n *ObjectLit) node()      {}
func (n *ObjectLit) expr()      {}

// FnExpr is a function expression; Ident is optional.
type FnExpr struct {
	SpanVal  Span
	Ident    *Ident
	Function *Function
}

func (n *FnExpr) Span() Span { return n.SpanVal }
func (n *FnExpr) node()      {}
func (n *FnExpr) expr()      {}

// UnaryExpr is `Op Arg` for !, -, +, ~, typeof, void and delete.
type UnaryExpr struct {
	SpanVal Span
	Op      string
	Arg     Expr
}

func (n *UnaryExpr) Span() Span { return n.SpanVal }
func (n *UnaryExpr) node()      {}
func (n *UnaryExpr) expr()      {}

// UpdateExpr is ++ or -- applied before or after Arg.
type UpdateExpr struct {
	SpanVal Span
	Op      string
	Prefix  bool
	Arg     Expr
}

func (n *UpdateExpr) Span() Span { return n.SpanVal }
func (n *UpdateExpr) node()      {}
func (n *UpdateExpr) expr()      {}

// BinExpr is a binary or logical expression.
type BinExpr struct {
	SpanVal Span
	Op      string
	Left    Expr
	Right   Expr
}

func (n *BinExpr) Span() Span { return n.SpanVal }
func (n *BinExpr) node()      {}
func (n *BinExpr) expr()      {}

// AssignExpr is `Left Op Right`. Non-pattern targets such as member
// expressions are wrapped in *ExprPat.
type AssignExpr struct {
	SpanVal Span
	Op      string
	Left    Pat
	Right   Expr
}

func (n *AssignExpr) Span() Span { return n.SpanVal }
func (n *AssignExpr) node()      {}
func (n *AssignExpr) expr()      {}

// MemberExpr is `Obj.Prop`, `Obj[Prop]` or `Obj.#Prop`. When Computed is
// false Prop is an *Ident or a *PrivateName.
type MemberExpr struct {
	SpanVal  Span
	Obj      Expr
	Prop     Expr
	Computed bool
}

func (n *MemberExpr) Span() Span { return n.SpanVal }
func (n *MemberExpr) node()      {}
func (n *MemberExpr) expr()      {}

// SuperPropExpr is `super.Prop` or `super[Prop]`.
type SuperPropExpr struct {
	SpanVal  Span
	Obj      *Super
	Prop     Expr
	Computed bool
}

func (n *SuperPropExpr) Span() Span { return n.SpanVal }
func (n *SuperPropExpr) node()      {}
func (n *SuperPropExpr) expr()      {}

// CondExpr is `Test ? Cons : Alt`.
type CondExpr struct {
	SpanVal Span
	Test    Expr
	Cons    Expr
	Alt     Expr
}

func (n *CondExpr) Span() Span { return n.SpanVal }
func (n *CondExpr) node()      {}
func (n *CondExpr) expr()      {}

// CallExpr is `Callee<TypeArgs>(Args)`. Callee may be *Super or *Import.
type CallExpr struct {
	SpanVal  Span
	Callee   Expr
	Args     []*ExprOrSpread
	TypeArgs *TsTypeParamInstantiation
}

func (n *CallExpr) Span() Span { return n.SpanVal }
func (n *CallExpr) node()      {}
func (n *CallExpr) expr()      {}

// NewExpr is `new Callee<TypeArgs>(Args)`. Args is nil for `new X`
// written without parentheses.
type NewExpr struct {
	SpanVal  Span
	Callee   Expr
	Args     []*ExprOrSpread
	TypeArgs *TsTypeParamInstantiation
}

func (n *NewExpr) Span() Span { return n.SpanVal }
func (n *NewExpr) node()      {}
func (n *NewExpr) expr()      {}

// SeqExpr is a comma-separated expression list.
type SeqExpr struct {
	SpanVal Span
	Exprs   []Expr
}

func (n *SeqExpr) Span() Span { return n.SpanVal }
func (n *SeqExpr) node()      {}
func (n *SeqExpr) expr()      {}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	SpanVal Span
	Expr    Expr
}

func (n *ParenExpr) Span() Span { return n.SpanVal }
func (n *ParenExpr) node()      {}
func (n *ParenExpr) expr()      {}

// TplElement is one literal chunk of a template.
type TplElement struct {
	SpanVal Span
	Raw     string
	Cooked  *string
}

func (n *TplElement) Span() Span { return n.SpanVal }
func (n *TplElement) node()      {}

// Tpl is a template literal. len(Quasis) == len(Exprs)+1.
type Tpl struct {
	SpanVal Span
	Exprs   []Expr
	Quasis  []*TplElement
}

func (n *Tpl) Span() Span { return n.SpanVal }
func (n *Tpl) node()      {}
func (n *Tpl) expr()      {}

// TaggedTpl is Tag`...`.
type TaggedTpl struct {
	SpanVal  Span
	Tag      Expr
	TypeArgs *TsTypeParamInstantiation
	Tpl      *Tpl
}

func (n *TaggedTpl) Span() Span { return n.SpanVal }
func (n *TaggedTpl) node()      {}
func (n *TaggedTpl) expr()      {}

// ArrowExpr is `(Params) => Body`. Body is a *BlockStmt or an Expr.
type ArrowExpr struct {
	SpanVal     Span
	Params      []Pat
	Body        Node
	IsAsync     bool
	IsGenerator bool
	TypeParams  *TsTypeParamDecl
	ReturnType  *TsTypeAnn
}

func (n *ArrowExpr) Span() Span { return n.SpanVal }
func (n *ArrowExpr) node()      {}
func (n *ArrowExpr) expr()      {}

// ClassExpr is a class expression; Ident is optional.
type ClassExpr struct {
	SpanVal Span
	Ident   *Ident
	Class   *Class
}

func (n *ClassExpr) Span() Span { return n.SpanVal }
func (n *ClassExpr) node()      {}
func (n *ClassExpr) expr()      {}

// YieldExpr is `yield Arg` or `yield* Arg`; Arg is optional.
type YieldExpr struct {
	SpanVal  Span
	Arg      Expr
	Delegate bool
}

func (n *YieldExpr) Span() Span { return n.SpanVal }
func (n *YieldExpr) node()      {}
func (n *YieldExpr) expr()      {}

// MetaPropExpr is `new.target` or `import.meta`.
type MetaPropExpr struct {
	SpanVal Span
	Kind    string
}

func (n *MetaPropExpr) Span() Span { return n.SpanVal }
func (n *MetaPropExpr) node()      {}
func (n *MetaPropExpr) expr()      {}

// AwaitExpr is `await Arg`.
type AwaitExpr struct {
	SpanVal Span
	Arg     Expr
}

func (n *AwaitExpr) Span() Span { return n.SpanVal }
func (n *AwaitExpr) node()      {}
func (n *AwaitExpr) expr()      {}

// PrivateName is `#Name`.
type PrivateName struct {
	SpanVal Span
	Name    string
}

func (n *PrivateName) Span() Span { return n.SpanVal }
func (n *PrivateName) node()      {}
func (n *PrivateName) expr()      {}
func (n *PrivateName) propName()  {}

// OptChainExpr is one optional link `?.` of a chain. Base is a
// *MemberExpr or an *OptCall.
type OptChainExpr struct {
	SpanVal  Span
	Optional bool
	Base     Expr
}

func (n *OptChainExpr) Span() Span { return n.SpanVal }
func (n *OptChainExpr) node()      {}
func (n *OptChainExpr) expr()      {}

// OptCall is the call inside an optional chain, as in `f?.()`.
type OptCall struct {
	SpanVal  Span
	Callee   Expr
	Args     []*ExprOrSpread
	TypeArgs *TsTypeParamInstantiation
}

func (n *OptCall) Span() Span { return n.SpanVal }
func (n *OptCall) node()      {}
func (n *OptCall) expr()      {}

// ---------------------------------------------------------------------------
// Object literal properties
// ---------------------------------------------------------------------------

// Prop is an object literal member. A bare *Ident is a shorthand property.
type Prop interface {
	Node
	prop() // marker method
}

// PropName is a property key: *Ident, *Str, *Num, *BigInt, *PrivateName
// or *ComputedPropName.
type PropName interface {
	Node
	propName() // marker method
}

// ComputedPropName is `[Expr]` used as a key.
type ComputedPropName struct {
	SpanVal Span
	Expr    Expr
}

func (n *ComputedPropName) Span() Span { return n.SpanVal }
func (n *ComputedPropName) node()      {}
func (n *ComputedPropName) propName()  {}

// KeyValueProp is `Key: Value`.
type KeyValueProp struct {
	SpanVal Span
	Key     PropName
	Value   Expr
}

func (n *KeyValueProp) Span() Span { return n.SpanVal }
func (n *KeyValueProp) node()      {}
func (n *KeyValueProp) prop()      {}

// AssignProp is `Key = Value`, only valid when the literal is later
// reinterpreted as a pattern.
type AssignProp struct {
	SpanVal Span
	Key     *Ident
	Value   Expr
}

func (n *AssignProp) Span() Span { return n.SpanVal }
func (n *AssignProp) node()      {}
func (n *AssignProp) prop()      {}

// GetterProp is `get Key() {Body}`.
type GetterProp struct {
	SpanVal Span
	Key     PropName
	TypeAnn *TsTypeAnn
	Body    *BlockStmt
}

func (n *GetterProp) Span() Span { return n.SpanVal }
func (n *GetterProp) node()      {}
func (n *GetterProp) prop()      {}

// SetterProp is `set Key(Param) {Body}`.
type SetterProp struct {
	SpanVal Span
	Key     PropName
	Param   Pat
	Body    *BlockStmt
}

func (n *SetterProp) Span() Span { return n.SpanVal }
func (n *SetterProp) node()      {}
func (n *SetterProp) prop()      {}

// MethodProp is `Key(...) {...}`.
type MethodProp struct {
	SpanVal  Span
	Key      PropName
	Function *Function
}

func (n *MethodProp) Span() Span { return n.SpanVal }
func (n *MethodProp) node()      {}
func (n *MethodProp) prop()      {}

// SpreadElement is `...Expr` inside an object literal. Dot3 is the span of
// the `...` token.
type SpreadElement struct {
	SpanVal Span
	Dot3    Span
	Expr    Expr
}

func (n *SpreadElement) Span() Span { return n.SpanVal }
func (n *SpreadElement) node()      {}
func (n *SpreadElement) prop()      {}
