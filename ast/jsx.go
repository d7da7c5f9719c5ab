package ast

// ---------------------------------------------------------------------------
// JSX nodes
// ---------------------------------------------------------------------------

// JSXName is an element or attribute name: *Ident, *JSXMemberExpr or
// *JSXNamespacedName.
type JSXName interface {
	Node
	jsxName() // marker method
}

// JSXChild is a child of an element or fragment: *JSXText,
// *JSXExprContainer, *JSXSpreadChild, *JSXElement or *JSXFragment.
type JSXChild interface {
	Node
	jsxChild() // marker method
}

// JSXMemberExpr is `Obj.Prop` used as an element name.
type JSXMemberExpr struct {
	SpanVal Span
	Obj     JSXName
	Prop    *Ident
}

func (n *JSXMemberExpr) Span() Span { return n.SpanVal }
func (n *JSXMemberExpr) node()      {}
func (n *JSXMemberExpr) expr()      {}
func (n *JSXMemberExpr) jsxName()   {}

// JSXNamespacedName is `NS:Name`.
type JSXNamespacedName struct {
	SpanVal Span
	NS      *Ident
	Name    *Ident
}

func (n *JSXNamespacedName) Span() Span { return n.SpanVal }
func (n *JSXNamespacedName) node()      {}
func (n *JSXNamespacedName) expr()      {}
func (n *JSXNamespacedName) jsxName()   {}

// JSXEmptyExpr is the nothing inside `{}` or `{/* comment */}`.
type JSXEmptyExpr struct {
	SpanVal Span
}

func (n *JSXEmptyExpr) Span() Span { return n.SpanVal }
func (n *JSXEmptyExpr) node()      {}
func (n *JSXEmptyExpr) expr()      {}

// JSXElement is `<Opening>Children</Closing>`. Closing is nil for a
// self-closing element.
type JSXElement struct {
	SpanVal  Span
	Opening  *JSXOpeningElement
	Children []JSXChild
	Closing  *JSXClosingElement
}

func (n *JSXElement) Span() Span { return n.SpanVal }
func (n *JSXElement) node()      {}
func (n *JSXElement) expr()      {}
func (n *JSXElement) jsxChild()  {}

// JSXOpeningElement is `<Name<TypeArgs> Attrs>`. Attrs holds *JSXAttr and
// *JSXSpreadAttr values.
type JSXOpeningElement struct {
	SpanVal     Span
	Name        JSXName
	Attrs       []Node
	SelfClosing bool
	TypeArgs    *TsTypeParamInstantiation
}

func (n *JSXOpeningElement) Span() Span { return n.SpanVal }
func (n *JSXOpeningElement) node()      {}

// JSXClosingElement is `</Name>`.
type JSXClosingElement struct {
	SpanVal Span
	Name    JSXName
}

func (n *JSXClosingElement) Span() Span { return n.SpanVal }
func (n *JSXClosingElement) node()      {}

// JSXFragment is `<>Children</>`.
type JSXFragment struct {
	SpanVal  Span
	Children []JSXChild
}

func (n *JSXFragment) Span() Span { return n.SpanVal }
func (n *JSXFragment) node()      {}
func (n *JSXFragment) expr()      {}
func (n *JSXFragment) jsxChild()  {}

// JSXAttr is `Name=Value`. Value is nil for a bare boolean attribute and
// otherwise a *Str, *JSXExprContainer, *JSXElement or *JSXFragment.
type JSXAttr struct {
	SpanVal Span
	Name    JSXName
	Value   Node
}

func (n *JSXAttr) Span() Span { return n.SpanVal }
func (n *JSXAttr) node()      {}

// JSXSpreadAttr is `{...Expr}` in attribute position.
type JSXSpreadAttr struct {
	SpanVal Span
	Expr    Expr
}

func (n *JSXSpreadAttr) Span() Span { return n.SpanVal }
func (n *JSXSpreadAttr) node()      {}

// JSXExprContainer is `{Expr}`; Expr is a *JSXEmptyExpr for `{}`.
type JSXExprContainer struct {
	SpanVal Span
	Expr    Expr
}

func (n *JSXExprContainer) Span() Span { return n.SpanVal }
func (n *JSXExprContainer) node()      {}
func (n *JSXExprContainer) jsxChild()  {}

// JSXSpreadChild is `{...Expr}` in child position.
type JSXSpreadChild struct {
	SpanVal Span
	Expr    Expr
}

func (n *JSXSpreadChild) Span() Span { return n.SpanVal }
func (n *JSXSpreadChild) node()      {}
func (n *JSXSpreadChild) jsxChild()  {}
