package ast

// ---------------------------------------------------------------------------
// Pattern nodes
// ---------------------------------------------------------------------------

// ArrayPat is `[Elems]` in a binding position. A nil element is a hole.
type ArrayPat struct {
	SpanVal  Span
	Elems    []Pat
	Optional bool
	TypeAnn  *TsTypeAnn
}

func (n *ArrayPat) Span() Span { return n.SpanVal }
func (n *ArrayPat) node()      {}
func (n *ArrayPat) pat()       {}

// ObjectPatProp is a member of an object pattern: *KeyValuePatProp,
// *AssignPatProp or *RestPat.
type ObjectPatProp interface {
	Node
	objectPatProp() // marker method
}

// ObjectPat is `{Props}` in a binding position.
type ObjectPat struct {
	SpanVal  Span
	Props    []ObjectPatProp
	Optional bool
	TypeAnn  *TsTypeAnn
}

func (n *ObjectPat) Span() Span { return n.SpanVal }
func (n *ObjectPat) node()      {}
func (n *ObjectPat) pat()       {}

// KeyValuePatProp is `Key: Value` inside an object pattern.
type KeyValuePatProp struct {
	SpanVal Span
	Key     PropName
	Value   Pat
}

func (n *KeyValuePatProp) Span() Span     { return n.SpanVal }
func (n *KeyValuePatProp) node()          {}
func (n *KeyValuePatProp) objectPatProp() {}

// AssignPatProp is `Key` or `Key = Value` inside an object pattern.
type AssignPatProp struct {
	SpanVal Span
	Key     *Ident
	Value   Expr
}

func (n *AssignPatProp) Span() Span     { return n.SpanVal }
func (n *AssignPatProp) node()          {}
func (n *AssignPatProp) objectPatProp() {}

// AssignPat is `Left = Right`, a binding with a default value.
type AssignPat struct {
	SpanVal Span
	Left    Pat
	Right   Expr
}

func (n *AssignPat) Span() Span { return n.SpanVal }
func (n *AssignPat) node()      {}
func (n *AssignPat) pat()       {}

// RestPat is `...Arg`.
type RestPat struct {
	SpanVal Span
	Dot3    Span
	Arg     Pat
	TypeAnn *TsTypeAnn
}

func (n *RestPat) Span() Span     { return n.SpanVal }
func (n *RestPat) node()          {}
func (n *RestPat) pat()           {}
func (n *RestPat) objectPatProp() {}

// ExprPat wraps an expression used as an assignment target, such as a
// member expression on the left of `=` or in a for-in head.
type ExprPat struct {
	SpanVal Span
	Expr    Expr
}

func (n *ExprPat) Span() Span { return n.SpanVal }
func (n *ExprPat) node()      {}
func (n *ExprPat) pat()       {}
