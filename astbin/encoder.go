package astbin

import (
	"fmt"

	"github.com/chazu/astbin/ast"
)

// SpanMode selects what goes into the span field of each header.
type SpanMode int

const (
	// SpanSource writes each node's source byte range.
	SpanSource SpanMode = iota
	// SpanZero writes zero spans. It is the "positions not yet populated"
	// mode for consumers that never map records back to source text.
	SpanZero
)

// UnsupportedPolicy selects what happens to constructs with no kind
// mapping: *ast.Invalid nodes and unknown node types.
type UnsupportedPolicy int

const (
	// UnsupportedMarker writes a zero-count KindInvalid record in place of
	// the construct, keeping sibling positions intact.
	UnsupportedMarker UnsupportedPolicy = iota
	// UnsupportedReject fails the encode with ErrUnsupported.
	UnsupportedReject
)

// Options configures an Encoder. The zero value writes real spans and
// marks unsupported constructs.
type Options struct {
	Spans       SpanMode
	Unsupported UnsupportedPolicy
}

// Encoder turns syntax trees into record buffers. An Encoder may be reused
// for several files but not concurrently.
type Encoder struct {
	opts Options
	buf  []byte
	err  error
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts}
}

// Options returns the options the encoder was created with.
func (e *Encoder) Options() Options { return e.opts }

// Encode serializes prog with default options.
func Encode(prog ast.Program) ([]byte, error) {
	return NewEncoder(Options{}).Encode(prog)
}

// Encode serializes prog into a new buffer: one Program record whose count
// is the number of top-level items, followed by each item in source order.
// On failure it returns a nil buffer and an *EncodeError.
func (e *Encoder) Encode(prog ast.Program) ([]byte, error) {
	e.buf = make([]byte, 0, 1024)
	e.err = nil

	switch p := prog.(type) {
	case *ast.Module:
		e.push(KindProgram, FlagNone, len(p.Body), p.SpanVal)
		for _, item := range p.Body {
			e.encodeModuleItem(item)
		}
	case *ast.Script:
		e.push(KindProgram, FlagNone, len(p.Body), p.SpanVal)
		for _, stmt := range p.Body {
			e.encodeStmt(stmt)
		}
	case nil:
		e.missing(KindProgram, ast.Span{}, "program")
	default:
		e.fail(KindProgram, prog.Span(), fmt.Errorf("%w: program %T", ErrUnsupported, prog))
	}

	if e.err != nil {
		e.buf = nil
		return nil, e.err
	}
	out := e.buf
	e.buf = nil
	return out, nil
}

// encodeModuleItem dispatches a top-level item to the module declaration
// or statement encoder.
func (e *Encoder) encodeModuleItem(item ast.ModuleItem) {
	switch n := item.(type) {
	case nil:
		e.missing(KindProgram, ast.Span{}, "module item")
	case ast.ModuleDecl:
		e.encodeModuleDecl(n)
	case ast.Stmt:
		e.encodeStmt(n)
	default:
		e.unsupported(n, fmt.Sprintf("module item %T", n))
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
