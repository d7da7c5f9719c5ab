package ast

// ---------------------------------------------------------------------------
// Literal nodes
// ---------------------------------------------------------------------------

// Lit is the interface for literal expressions.
type Lit interface {
	Expr
	lit() // marker method
}

// Str is a string literal.
type Str struct {
	SpanVal Span
	Value   string
	Raw     string
}

func (n *Str) Span() Span { return n.SpanVal }
func (n *Str) node()      {}
func (n *Str) expr()      {}
func (n *Str) lit()       {}
func (n *Str) propName()  {}

// Bool is true or false.
type Bool struct {
	SpanVal Span
	Value   bool
}

func (n *Bool) Span() Span { return n.SpanVal }
func (n *Bool) node()      {}
func (n *Bool) expr()      {}
func (n *Bool) lit()       {}

// Null is the null literal.
type Null struct {
	SpanVal Span
}

func (n *Null) Span() Span { return n.SpanVal }
func (n *Null) node()      {}
func (n *Null) expr()      {}
func (n *Null) lit()       {}

// Num is a numeric literal.
type Num struct {
	SpanVal Span
	Value   float64
	Raw     string
}

func (n *Num) Span() Span { return n.SpanVal }
func (n *Num) node()      {}
func (n *Num) expr()      {}
func (n *Num) lit()       {}
func (n *Num) propName()  {}

// BigInt is an arbitrary-precision integer literal such as 10n. Raw holds
// the digits without the suffix.
type BigInt struct {
	SpanVal Span
	Raw     string
}

func (n *BigInt) Span() Span { return n.SpanVal }
func (n *BigInt) node()      {}
func (n *BigInt) expr()      {}
func (n *BigInt) lit()       {}
func (n *BigInt) propName()  {}

// Regex is /Pattern/Flags.
type Regex struct {
	SpanVal Span
	Pattern string
	Flags   string
}

func (n *Regex) Span() Span { return n.SpanVal }
func (n *Regex) node()      {}
func (n *Regex) expr()      {}
func (n *Regex) lit()       {}

// JSXText is raw text between JSX tags.
type JSXText struct {
	SpanVal Span
	Value   string
	Raw     string
}

func (n *JSXText) Span() Span { return n.SpanVal }
func (n *JSXText) node()      {}
func (n *JSXText) expr()      {}
func (n *JSXText) lit()       {}
func (n *JSXText) jsxChild()  {}
