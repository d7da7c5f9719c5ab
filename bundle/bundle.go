// Package bundle collects the record buffers of many files into one CBOR
// document.
package bundle

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/astbin/astbin"
	"github.com/chazu/astbin/decoder"
)

// Version is the bundle layout version written by Marshal.
const Version = 1

var (
	ErrVersion  = errors.New("bundle: unsupported version")
	ErrChecksum = errors.New("bundle: checksum mismatch")
	ErrKinds    = errors.New("bundle: written with a newer kind table")
)

// File is one encoded source file.
type File struct {
	Path string   `cbor:"1,keyasint"`
	Sum  [32]byte `cbor:"2,keyasint"` // sha256 of Data
	Data []byte   `cbor:"3,keyasint"`
}

// Bundle is the CBOR container. KindCount records the size of the kind
// table the buffers were written with.
type Bundle struct {
	Version   uint8  `cbor:"1,keyasint"`
	KindCount uint16 `cbor:"2,keyasint"`
	Files     []File `cbor:"3,keyasint,omitempty"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bundle: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// New returns an empty bundle for the current kind table.
func New() *Bundle {
	return &Bundle{Version: Version, KindCount: uint16(astbin.KindCount)}
}

// Add appends a file, replacing any earlier file with the same path.
func (b *Bundle) Add(path string, data []byte) {
	f := File{Path: path, Sum: sha256.Sum256(data), Data: data}
	for i := range b.Files {
		if b.Files[i].Path == path {
			b.Files[i] = f
			return
		}
	}
	b.Files = append(b.Files, f)
}

// Lookup returns the file stored under path.
func (b *Bundle) Lookup(path string) (*File, bool) {
	for i := range b.Files {
		if b.Files[i].Path == path {
			return &b.Files[i], true
		}
	}
	return nil, false
}

// Marshal serializes b to CBOR. Files are written sorted by path so the
// output does not depend on the order they were added in.
func Marshal(b *Bundle) ([]byte, error) {
	out := *b
	out.Files = append([]File(nil), b.Files...)
	sort.Slice(out.Files, func(i, j int) bool { return out.Files[i].Path < out.Files[j].Path })
	return cborEncMode.Marshal(&out)
}

// Unmarshal deserializes a bundle from CBOR bytes.
func Unmarshal(data []byte) (*Bundle, error) {
	var b Bundle
	if err := cbor.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("bundle: unmarshal: %w", err)
	}
	if b.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, b.Version)
	}
	return &b, nil
}

// Verify checks every file's checksum and that each buffer is a single
// well-formed record tree readable with the current kind table.
func (b *Bundle) Verify() error {
	if int(b.KindCount) > astbin.KindCount {
		return fmt.Errorf("%w: %d kinds, this build knows %d", ErrKinds, b.KindCount, astbin.KindCount)
	}
	for _, f := range b.Files {
		if sha256.Sum256(f.Data) != f.Sum {
			return fmt.Errorf("%w: %s", ErrChecksum, f.Path)
		}
		if err := decoder.Walk(f.Data, func(int, int, astbin.Header) error { return nil }); err != nil {
			return fmt.Errorf("bundle: %s: %w", f.Path, err)
		}
	}
	return nil
}
