package astbin

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chazu/astbin/ast"
)

// HeaderSize is the size in bytes of one record header:
// kind(1) + flags(1) + count(4) + span start(4) + span end(4) = 14.
const HeaderSize = 14

// MaxCount is the largest child count a header can hold.
const MaxCount = math.MaxUint32

// Flags holds boolean node attributes. No attribute is defined yet; the
// byte is reserved so attributes can be added without growing the header.
type Flags uint8

const (
	FlagNone Flags = 0
)

// Header is one decoded record header.
type Header struct {
	Kind  Kind
	Flags Flags
	Count uint32
	Span  ast.Span
}

// AppendHeader appends the 14-byte encoding of h to b.
func AppendHeader(b []byte, h Header) []byte {
	var buf [HeaderSize]byte
	buf[0] = byte(h.Kind)
	buf[1] = byte(h.Flags)
	binary.LittleEndian.PutUint32(buf[2:6], h.Count)
	binary.LittleEndian.PutUint32(buf[6:10], h.Span.Start)
	binary.LittleEndian.PutUint32(buf[10:14], h.Span.End)
	return append(b, buf[:]...)
}

// ReadHeader decodes the header at the start of b. It does not check that
// the kind is defined; see Kind.Valid.
func ReadHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes left, need %d", ErrShortHeader, len(b), HeaderSize)
	}
	return Header{
		Kind:  Kind(b[0]),
		Flags: Flags(b[1]),
		Count: binary.LittleEndian.Uint32(b[2:6]),
		Span: ast.Span{
			Start: binary.LittleEndian.Uint32(b[6:10]),
			End:   binary.LittleEndian.Uint32(b[10:14]),
		},
	}, nil
}

// push appends one record header for a node with count children.
func (e *Encoder) push(kind Kind, flags Flags, count int, span ast.Span) {
	if e.err != nil {
		return
	}
	if count < 0 || uint64(count) > MaxCount {
		e.fail(kind, span, fmt.Errorf("%w: %s declares %d children", ErrCountOverflow, kind, count))
		return
	}
	if e.opts.Spans == SpanZero {
		span = ast.Span{}
	}
	e.buf = AppendHeader(e.buf, Header{Kind: kind, Flags: flags, Count: uint32(count), Span: span})
}

// leaf appends a zero-count record.
func (e *Encoder) leaf(kind Kind, span ast.Span) {
	e.push(kind, FlagNone, 0, span)
}

// empty appends the placeholder for an absent fixed slot.
func (e *Encoder) empty(span ast.Span) {
	e.push(KindEmptyExpr, FlagNone, 0, span)
}
