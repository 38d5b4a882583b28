package strview

import (
	"iter"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// NotFound is returned by search operations when no match exists.
const NotFound = -1

// View is a read-only window into a byte sequence it does not own.
// The zero value is the empty view. Views are plain values: copying one
// copies only the (pointer, length) header, never the referenced bytes.
type View struct {
	s string
}

// New returns a View over v without copying.
//
// When v is a []byte the view shares the slice's backing array; the view is
// valid only while that array stays alive and unmodified. A nil slice yields
// the empty view.
func New[T string | []byte](v T) View {
	switch v := any(v).(type) {
	case string:
		return View{s: v}
	case []byte:
		return View{s: unsafe.String(unsafe.SliceData(v), len(v))}
	}
	panic("never reached")
}

// NewN returns a View over the first n bytes of v without copying.
// n is clamped into [0, len(v)].
func NewN[T string | []byte](v T, n int) View {
	w := New(v)
	if n < 0 {
		n = 0
	}
	if n > len(w.s) {
		n = len(w.s)
	}
	return View{s: w.s[:n]}
}

// Len returns the number of bytes the view covers.
func (v View) Len() int { return len(v.s) }

// Empty reports whether the view covers zero bytes.
func (v View) Empty() bool { return len(v.s) == 0 }

// At returns the byte at index i. It panics when i is out of range;
// out-of-range access is a programmer error, never silently clamped.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.s) {
		panic("strview: index out of range")
	}
	return v.s[i]
}

// Front returns the first byte. It panics on an empty view.
func (v View) Front() byte {
	if len(v.s) == 0 {
		panic("strview: Front called on an empty view")
	}
	return v.s[0]
}

// Back returns the last byte. It panics on an empty view.
func (v View) Back() byte {
	if len(v.s) == 0 {
		panic("strview: Back called on an empty view")
	}
	return v.s[len(v.s)-1]
}

// Equal reports whether the two views reference byte-equal content.
// Two empty views are equal regardless of where they point.
func (v View) Equal(o View) bool { return v.s == o.s }

// Compare three-way compares the views lexicographically, byte-wise over the
// overlapping prefix with ties broken by length. It returns -1, 0, or +1 and
// is a total order consistent with Equal.
func (v View) Compare(o View) int { return strings.Compare(v.s, o.s) }

// String returns the referenced bytes as a string. For views built over a
// string this shares storage; for views built over a []byte the result is
// only valid under the view's lifetime rules. Use Clone for an owned copy.
// String also serves as the fmt.Stringer implementation, so formatting a
// view renders its bytes verbatim rather than a pointer.
func (v View) String() string { return v.s }

// Clone returns an owned copy of the referenced bytes. This is the one
// operation that allocates; the result is independent of the source buffer.
func (v View) Clone() string { return strings.Clone(v.s) }

// Hash returns a 64-bit hash of the referenced bytes, suitable for building
// hash-keyed containers over views. Views that are Equal hash identically,
// independent of where their bytes live.
func (v View) Hash() uint64 { return xxhash.Sum64String(v.s) }

// All returns an iterator over (index, byte) pairs of the view.
func (v View) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < len(v.s); i++ {
			if !yield(i, v.s[i]) {
				return
			}
		}
	}
}
