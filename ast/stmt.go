package ast

// ---------------------------------------------------------------------------
// Statement nodes
// ---------------------------------------------------------------------------

// BlockStmt is a braced statement list.
type BlockStmt struct {
	SpanVal Span
	Stmts   []Stmt
}

func (n *BlockStmt) Span() Span  { return n.SpanVal }
func (n *BlockStmt) node()       {}
func (n *BlockStmt) moduleItem() {}
func (n *BlockStmt) stmt()       {}

// EmptyStmt is a lone semicolon. It also appears as an empty class member.
type EmptyStmt struct {
	SpanVal Span
}

func (n *EmptyStmt) Span() Span   { return n.SpanVal }
func (n *EmptyStmt) node()        {}
func (n *EmptyStmt) moduleItem()  {}
func (n *EmptyStmt) stmt()        {}
func (n *EmptyStmt) classMember() {}

// DebuggerStmt is the debugger statement.
type DebuggerStmt struct {
	SpanVal Span
}

func (n *DebuggerStmt) Span() Span  { return n.SpanVal }
func (n *DebuggerStmt) node()       {}
func (n *DebuggerStmt) moduleItem() {}
func (n *DebuggerStmt) stmt()       {}

// WithStmt is `with (Object) Body`.
type WithStmt struct {
	SpanVal Span
	Object  Expr
	Body    Stmt
}

func (n *WithStmt) Span() Span  { return n.SpanVal }
func (n *WithStmt) node()       {}
func (n *WithStmt) moduleItem() {}
func (n *WithStmt) stmt()       {}

// ReturnStmt is `return Arg`; Arg is nil for a bare return.
type ReturnStmt struct {
	SpanVal Span
	Arg     Expr
}

func (n *ReturnStmt) Span() Span  { return n.SpanVal }
func (n *ReturnStmt) node()       {}
func (n *ReturnStmt) moduleItem() {}
func (n *ReturnStmt) stmt()       {}

// LabeledStmt is `Label: Body`.
type LabeledStmt struct {
	SpanVal Span
	Label   *Ident
	Body    Stmt
}

func (n *LabeledStmt) Span() Span  { return n.SpanVal }
func (n *LabeledStmt) node()       {}
func (n *LabeledStmt) moduleItem() {}
func (n *LabeledStmt) stmt()       {}

// BreakStmt is `break Label`; Label is optional.
type BreakStmt struct {
	SpanVal Span
	Label   *Ident
}

func (n *BreakStmt) Span() Span  { return n.SpanVal }
func (n *BreakStmt) node()       {}
func (n *BreakStmt) moduleItem() {}
func (n *BreakStmt) stmt()       {}

// ContinueStmt is `continue Label`; Label is optional.
type ContinueStmt struct {
	SpanVal Span
	Label   *Ident
}

func (n *ContinueStmt) Span() Span  { return n.SpanVal }
func (n *ContinueStmt) node()       {}
func (n *ContinueStmt) moduleItem() {}
func (n *ContinueStmt) stmt()       {}

// IfStmt is `if (Test) Cons else Alt`; Alt is optional.
type IfStmt struct {
	SpanVal Span
	Test    Expr
	Cons    Stmt
	Alt     Stmt
}

func (n *IfStmt) Span() Span  { return n.SpanVal }
func (n *IfStmt) node()       {}
func (n *IfStmt) moduleItem() {}
func (n *IfStmt) stmt()       {}

// SwitchStmt is `switch (Discriminant) { Cases }`.
type SwitchStmt struct {
	SpanVal      Span
	Discriminant Expr
	Cases        []*SwitchCase
}

func (n *SwitchStmt) Span() Span  { return n.SpanVal }
func (n *SwitchStmt) node()       {}
func (n *SwitchStmt) moduleItem() {}
func (n *SwitchStmt) stmt()       {}

// SwitchCase is one case clause. Test is nil for `default:`.
type SwitchCase struct {
	SpanVal Span
	Test    Expr
	Cons    []Stmt
}

func (n *SwitchCase) Span() Span { return n.SpanVal }
func (n *SwitchCase) node()      {}

// ThrowStmt is `throw Arg`.
type ThrowStmt struct {
	SpanVal Span
	Arg     Expr
}

func (n *ThrowStmt) Span() Span  { return n.SpanVal }
func (n *ThrowStmt) node()       {}
func (n *ThrowStmt) moduleItem() {}
func (n *ThrowStmt) stmt()       {}

// TryStmt is `try Block catch Handler finally Finalizer`. At least one of
// Handler and Finalizer is set in valid source.
type TryStmt struct {
	SpanVal   Span
	Block     *BlockStmt
	Handler   *CatchClause
	Finalizer *BlockStmt
}

func (n *TryStmt) Span() Span  { return n.SpanVal }
func (n *TryStmt) node()       {}
func (n *TryStmt) moduleItem() {}
func (n *TryStmt) stmt()       {}

// CatchClause is `catch (Param) Body`; Param is nil for `catch {}`.
type CatchClause struct {
	SpanVal Span
	Param   Pat
	Body    *BlockStmt
}

func (n *CatchClause) Span() Span { return n.SpanVal }
func (n *CatchClause) node()      {}

// WhileStmt is `while (Test) Body`.
type WhileStmt struct {
	SpanVal Span
	Test    Expr
	Body    Stmt
}

func (n *WhileStmt) Span() Span  { return n.SpanVal }
func (n *WhileStmt) node()       {}
func (n *WhileStmt) moduleItem() {}
func (n *WhileStmt) stmt()       {}

// DoWhileStmt is `do Body while (Test)`.
type DoWhileStmt struct {
	SpanVal Span
	Test    Expr
	Body    Stmt
}

func (n *DoWhileStmt) Span() Span  { return n.SpanVal }
func (n *DoWhileStmt) node()       {}
func (n *DoWhileStmt) moduleItem() {}
func (n *DoWhileStmt) stmt()       {}

// ForStmt is `for (Init; Test; Update) Body`. Init is a *VarDecl, a
// *UsingDecl or an Expr; any of Init, Test and Update may be nil.
type ForStmt struct {
	SpanVal Span
	Init    Node
	Test    Expr
	Update  Expr
	Body    Stmt
}

func (n *ForStmt) Span() Span  { return n.SpanVal }
func (n *ForStmt) node()       {}
func (n *ForStmt) moduleItem() {}
func (n *ForStmt) stmt()       {}

// ForInStmt is `for (Left in Right) Body`. Left is a *VarDecl, a
// *UsingDecl or a Pat.
type ForInStmt struct {
	SpanVal Span
	Left    Node
	Right   Expr
	Body    Stmt
}

func (n *ForInStmt) Span() Span  { return n.SpanVal }
func (n *ForInStmt) node()       {}
func (n *ForInStmt) moduleItem() {}
func (n *ForInStmt) stmt()       {}

// ForOfStmt is `for await? (Left of Right) Body`.
type ForOfStmt struct {
	SpanVal Span
	IsAwait bool
	Left    Node
	Right   Expr
	Body    Stmt
}

func (n *ForOfStmt) Span() Span  { return n.SpanVal }
func (n *ForOfStmt) node()       {}
func (n *ForOfStmt) moduleItem() {}
func (n *ForOfStmt) stmt()       {}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	SpanVal Span
	Expr    Expr
}

func (n *ExprStmt) Span() Span  { return n.SpanVal }
func (n *ExprStmt) node()       {}
func (n *ExprStmt) moduleItem() {}
func (n *ExprStmt) stmt()       {}
