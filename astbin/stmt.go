package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (e *Encoder) encodeStmt(stmt ast.Stmt) {
	if e.err != nil {
		return
	}
	switch n := stmt.(type) {
	case nil:
		e.missing(KindInvalid, ast.Span{}, "statement")

	case *ast.BlockStmt:
		e.encodeBlock(n)

	case *ast.EmptyStmt:
		e.leaf(KindEmpty, n.SpanVal)

	case *ast.DebuggerStmt:
		e.leaf(KindDebugger, n.SpanVal)

	case *ast.WithStmt:
		e.push(KindWith, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Object)
		e.encodeStmt(n.Body)

	case *ast.ReturnStmt:
		e.push(KindReturn, FlagNone, b2i(n.Arg != nil), n.SpanVal)
		if n.Arg != nil {
			e.encodeExpr(n.Arg)
		}

	case *ast.LabeledStmt:
		if n.Label == nil {
			e.missing(KindLabeled, n.SpanVal, "label")
			return
		}
		e.push(KindLabeled, FlagNone, 2, n.SpanVal)
		e.encodeIdent(n.Label)
		e.encodeStmt(n.Body)

	case *ast.BreakStmt:
		e.push(KindBreak, FlagNone, b2i(n.Label != nil), n.SpanVal)
		if n.Label != nil {
			e.encodeIdent(n.Label)
		}

	case *ast.ContinueStmt:
		e.push(KindContinue, FlagNone, b2i(n.Label != nil), n.SpanVal)
		if n.Label != nil {
			e.encodeIdent(n.Label)
		}

	case *ast.IfStmt:
		count := 2
		if n.Alt != nil {
			count = 3
		}
		e.push(KindIf, FlagNone, count, n.SpanVal)
		e.encodeExpr(n.Test)
		e.encodeStmt(n.Cons)
		if n.Alt != nil {
			e.encodeStmt(n.Alt)
		}

	case *ast.SwitchStmt:
		e.push(KindSwitch, FlagNone, 1+len(n.Cases), n.SpanVal)
		e.encodeExpr(n.Discriminant)
		for _, c := range n.Cases {
			e.encodeSwitchCase(c)
		}

	case *ast.ThrowStmt:
		e.push(KindThrow, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Arg)

	case *ast.TryStmt:
		if n.Block == nil {
			e.missing(KindTry, n.SpanVal, "try block")
			return
		}
		count := 1 + b2i(n.Handler != nil) + b2i(n.Finalizer != nil)
		e.push(KindTry, FlagNone, count, n.SpanVal)
		e.encodeBlock(n.Block)
		if n.Handler != nil {
			e.encodeCatch(n.Handler)
		}
		if n.Finalizer != nil {
			e.encodeBlock(n.Finalizer)
		}

	case *ast.WhileStmt:
		e.push(KindWhile, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Test)
		e.encodeStmt(n.Body)

	case *ast.DoWhileStmt:
		e.push(KindDoWhile, FlagNone, 2, n.SpanVal)
		e.encodeExpr(n.Test)
		e.encodeStmt(n.Body)

	case *ast.ForStmt:
		// All three heads are fixed slots so the body is always the 4th child.
		e.push(KindFor, FlagNone, 4, n.SpanVal)
		if n.Init == nil {
			e.empty(n.SpanVal)
		} else {
			e.encodeForHead(KindFor, n.Init)
		}
		e.optExpr(n.Test, n.SpanVal)
		e.optExpr(n.Update, n.SpanVal)
		e.encodeStmt(n.Body)

	case *ast.ForInStmt:
		e.push(KindForIn, FlagNone, 3, n.SpanVal)
		e.encodeForHead(KindForIn, n.Left)
		e.encodeExpr(n.Right)
		e.encodeStmt(n.Body)

	case *ast.ForOfStmt:
		e.push(KindForOf, FlagNone, 3, n.SpanVal)
		e.encodeForHead(KindForOf, n.Left)
		e.encodeExpr(n.Right)
		e.encodeStmt(n.Body)

	case *ast.ExprStmt:
		e.push(KindExpr, FlagNone, 1, n.SpanVal)
		e.encodeExpr(n.Expr)

	case ast.Decl:
		e.encodeDecl(n)

	case *ast.Invalid:
		e.unsupported(n, "invalid statement")

	default:
		e.unsupported(n, fmt.Sprintf("statement %T", n))
	}
}

func (e *Encoder) encodeBlock(n *ast.BlockStmt) {
	e.push(KindBlock, FlagNone, len(n.Stmts), n.SpanVal)
	for _, s := range n.Stmts {
		e.encodeStmt(s)
	}
}

func (e *Encoder) encodeSwitchCase(c *ast.SwitchCase) {
	if c == nil {
		e.missing(KindSwitch, ast.Span{}, "switch case")
		return
	}
	e.push(KindSwitchCase, FlagNone, len(c.Cons)+b2i(c.Test != nil), c.SpanVal)
	if c.Test != nil {
		e.encodeExpr(c.Test)
	}
	for _, s := range c.Cons {
		e.encodeStmt(s)
	}
}

func (e *Encoder) encodeCatch(c *ast.CatchClause) {
	if c.Body == nil {
		e.missing(KindCatchClause, c.SpanVal, "catch body")
		return
	}
	e.push(KindCatchClause, FlagNone, 1+b2i(c.Param != nil), c.SpanVal)
	if c.Param != nil {
		e.encodePat(c.Param)
	}
	e.encodeBlock(c.Body)
}

// encodeForHead writes the left side of for-in / for-of or the initializer
// of a C-style for: a declaration list, an expression or a pattern.
func (e *Encoder) encodeForHead(parent Kind, head ast.Node) {
	switch h := head.(type) {
	case nil:
		e.missing(parent, ast.Span{}, "loop head")
	case *ast.VarDecl:
		e.encodeDecl(h)
	case *ast.UsingDecl:
		e.encodeDecl(h)
	case ast.Pat:
		e.encodePat(h)
	case ast.Expr:
		e.encodeExpr(h)
	default:
		e.unsupported(h, fmt.Sprintf("loop head %T", h))
	}
}

// optExpr writes n, or an EmptyExpr placeholder carrying span when n is nil.
func (e *Encoder) optExpr(n ast.Expr, span ast.Span) {
	if n == nil {
		e.empty(span)
		return
	}
	e.encodeExpr(n)
}
