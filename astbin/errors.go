package astbin

import (
	"errors"
	"fmt"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Encode Error Types
// ---------------------------------------------------------------------------

var (
	// ErrCountOverflow means a node has more children than a header can
	// declare. The buffer would be corrupt past that node, so encoding stops.
	ErrCountOverflow = errors.New("child count overflows header field")
	// ErrUnsupported means the tree holds a construct with no kind mapping
	// and the encoder was configured to reject such constructs.
	ErrUnsupported = errors.New("unsupported construct")
	// ErrNilNode means a required child is missing from the tree.
	ErrNilNode = errors.New("missing required node")
	// ErrShortHeader means fewer than HeaderSize bytes were left to read.
	ErrShortHeader = errors.New("short record header")
)

// EncodeError describes why encoding a file failed. It unwraps to one of
// the sentinel errors above.
type EncodeError struct {
	Kind Kind     // kind of the record being written, KindInvalid if unknown
	Span ast.Span // source span of the offending node
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("astbin: encode %s at %d..%d: %v", e.Kind, e.Span.Start, e.Span.End, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// fail records the first error; later pushes become no-ops.
func (e *Encoder) fail(kind Kind, span ast.Span, err error) {
	if e.err != nil {
		return
	}
	e.err = &EncodeError{Kind: kind, Span: span, Err: err}
}

// missing reports a nil required child of a parent node.
func (e *Encoder) missing(parent Kind, span ast.Span, what string) {
	e.fail(parent, span, fmt.Errorf("%w: %s", ErrNilNode, what))
}

// unsupported handles a node that has no mapping, according to the
// configured policy: either a zero-count KindInvalid marker or a failure.
func (e *Encoder) unsupported(n ast.Node, what string) {
	if e.opts.Unsupported == UnsupportedReject {
		e.fail(KindInvalid, n.Span(), fmt.Errorf("%w: %s", ErrUnsupported, what))
		return
	}
	e.leaf(KindInvalid, n.Span())
}
