package astbin

import (
	"fmt"
	"strings"
	"testing"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Tree builders
// ---------------------------------------------------------------------------

func id(name string) *ast.Ident { return &ast.Ident{Name: name} }
func num(raw string) *ast.Num   { return &ast.Num{Raw: raw} }
func str(v string) *ast.Str     { return &ast.Str{Value: v, Raw: `"` + v + `"`} }

func script(stmts ...ast.Stmt) *ast.Script       { return &ast.Script{Body: stmts} }
func module(items ...ast.ModuleItem) *ast.Module { return &ast.Module{Body: items} }
func exprStmt(x ast.Expr) *ast.ExprStmt          { return &ast.ExprStmt{Expr: x} }
func arg(x ast.Expr) *ast.ExprOrSpread           { return &ast.ExprOrSpread{Expr: x} }
func typeRef(name string) *ast.TsTypeRef         { return &ast.TsTypeRef{TypeName: id(name)} }

func spread(x ast.Expr) *ast.ExprOrSpread {
	return &ast.ExprOrSpread{Spread: &ast.Span{}, Expr: x}
}

// ---------------------------------------------------------------------------
// Buffer readers
// ---------------------------------------------------------------------------

// readTree walks buf the way a consumer does, reading one header and then
// count children recursively. It fails the test unless the walk ends
// exactly at the end of the buffer.
func readTree(t *testing.T, buf []byte) []Header {
	t.Helper()
	var out []Header
	var walk func(off int) int
	walk = func(off int) int {
		h, err := ReadHeader(buf[off:])
		if err != nil {
			t.Fatalf("offset %d: %v", off, err)
		}
		if !h.Kind.Valid() {
			t.Fatalf("offset %d: undefined kind %d", off, h.Kind)
		}
		out = append(out, h)
		off += HeaderSize
		for i := uint32(0); i < h.Count; i++ {
			off = walk(off)
		}
		return off
	}
	if len(buf) == 0 {
		t.Fatal("empty buffer")
	}
	if end := walk(0); end != len(buf) {
		t.Fatalf("walk ended at %d, buffer has %d bytes", end, len(buf))
	}
	return out
}

// render prints the pre-order kinds of buf as "Kind(count)", dropping the
// count for leaves.
func render(t *testing.T, buf []byte) string {
	t.Helper()
	hs := readTree(t, buf)
	parts := make([]string, len(hs))
	for i, h := range hs {
		if h.Count == 0 {
			parts[i] = h.Kind.String()
		} else {
			parts[i] = fmt.Sprintf("%s(%d)", h.Kind, h.Count)
		}
	}
	return strings.Join(parts, " ")
}
