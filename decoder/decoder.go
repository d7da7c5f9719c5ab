// Package decoder reads record buffers produced by package astbin. It is
// the reference consumer: read a header, then read exactly count children,
// recursively.
package decoder

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chazu/astbin/ast"
	"github.com/chazu/astbin/astbin"
)

// ---------------------------------------------------------------------------
// Decode Error Types
// ---------------------------------------------------------------------------

var (
	ErrTruncated     = errors.New("truncated record buffer")
	ErrTrailingBytes = errors.New("trailing bytes after root record")
	ErrUnknownKind   = errors.New("unknown node kind")
)

// Node is one decoded record with its children.
type Node struct {
	Kind     astbin.Kind
	Flags    astbin.Flags
	Span     ast.Span
	Offset   int // byte offset of the header in the buffer
	Children []*Node
}

// Text returns the source text covered by the node's span, or "" if the
// span does not fit in src.
func (n *Node) Text(src []byte) string {
	if n.Span.Start > n.Span.End || int(n.Span.End) > len(src) {
		return ""
	}
	return string(src[n.Span.Start:n.Span.End])
}

// WalkFunc is called once per record in pre-order. depth is 0 for the root.
// Returning a non-nil error stops the walk and Walk returns it.
type WalkFunc func(off, depth int, h astbin.Header) error

// Walk visits every record of data in pre-order without building a tree.
// It fails if data does not hold exactly one complete root record.
func Walk(data []byte, fn WalkFunc) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrTruncated)
	}

	// remaining[i] is the number of children still to read for the open
	// record at depth i.
	var remaining []uint32
	off := 0
	for {
		h, err := astbin.ReadHeader(data[off:])
		if err != nil {
			return fmt.Errorf("%w: at offset %d: %v", ErrTruncated, off, err)
		}
		if !h.Kind.Valid() {
			return fmt.Errorf("%w: %d at offset %d", ErrUnknownKind, h.Kind, off)
		}
		room := uint64(len(data)-off-astbin.HeaderSize) / astbin.HeaderSize
		if uint64(h.Count) > room {
			return fmt.Errorf("%w: %s at offset %d declares %d children, room for %d",
				ErrTruncated, h.Kind, off, h.Count, room)
		}
		if err := fn(off, len(remaining), h); err != nil {
			return err
		}
		off += astbin.HeaderSize

		if h.Count > 0 {
			remaining = append(remaining, h.Count)
			continue
		}
		// A leaf completes its parent's slot; finished parents complete theirs.
		for len(remaining) > 0 {
			top := len(remaining) - 1
			remaining[top]--
			if remaining[top] > 0 {
				break
			}
			remaining = remaining[:top]
		}
		if len(remaining) == 0 {
			break
		}
	}

	if off != len(data) {
		return fmt.Errorf("%w: %d bytes after offset %d", ErrTrailingBytes, len(data)-off, off)
	}
	return nil
}

// Decode parses data into a tree of Nodes rooted at the Program record.
func Decode(data []byte) (*Node, error) {
	var path []*Node
	var root *Node
	err := Walk(data, func(off, depth int, h astbin.Header) error {
		n := &Node{Kind: h.Kind, Flags: h.Flags, Span: h.Span, Offset: off}
		if h.Count > 0 {
			n.Children = make([]*Node, 0, h.Count)
		}
		if depth == 0 {
			root = n
		} else {
			parent := path[depth-1]
			parent.Children = append(parent.Children, n)
		}
		path = append(path[:depth], n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

// Kinds returns the kind of every record in pre-order.
func Kinds(data []byte) ([]astbin.Kind, error) {
	kinds := make([]astbin.Kind, 0, len(data)/astbin.HeaderSize)
	err := Walk(data, func(_, _ int, h astbin.Header) error {
		kinds = append(kinds, h.Kind)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return kinds, nil
}

// Dump writes one indented line per record:
//
//	If count=2 span=0..13
//	  Ident span=4..5
//
// When src is non-nil, leaves also show their source text.
func Dump(w io.Writer, data, src []byte) error {
	return Walk(data, func(_, depth int, h astbin.Header) error {
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(h.Kind.String())
		if h.Count > 0 {
			fmt.Fprintf(&sb, " count=%d", h.Count)
		}
		fmt.Fprintf(&sb, " span=%d..%d", h.Span.Start, h.Span.End)
		if src != nil && h.Count == 0 && h.Span.End > h.Span.Start && int(h.Span.End) <= len(src) {
			fmt.Fprintf(&sb, " %q", src[h.Span.Start:h.Span.End])
		}
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return err
	})
}
