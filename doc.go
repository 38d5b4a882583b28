// Package strview provides a non-owning, read-only view over a byte sequence.
//
// A View is a lightweight value (a string header: pointer plus length) that
// lets code pass around and inspect substrings of text without copying.
// Slicing, searching, comparing, and splitting all return further views or
// indexes; an allocation happens only when the caller explicitly asks for an
// owned copy with Clone.
//
// # Features
//
// The view core supports:
//   - Zero-copy construction from string or []byte (New, NewN)
//   - Byte access with checked bounds (At, Front, Back)
//   - Equality, three-way lexicographic comparison, and a content hash
//     suitable for map keys (Equal, Compare, Hash)
//   - Forward and reverse search by byte, substring, or predicate
//     (IndexByte, LastIndex, IndexFunc, ...)
//   - Occurrence counting, including overlapping substring matches
//     (CountByte, Count)
//   - Clamping slices (Substr, Slice, TakeFront, TakeBack, TakeFrontWhile)
//     and exact-precondition slices (DropFront, DropBack)
//   - Splitting around the first or last separator (Cut, LastCut)
//   - Levenshtein edit distance, optionally ASCII case-folded
//     (EditDistance, EditDistanceFold)
//
// # Usage
//
//	import "github.com/dmitrymomot/strview"
//
//	v := strview.New("user.name=alice")
//	key, val, _ := v.CutByte('=')
//	// key is "user.name", val is "alice"; no bytes were copied.
//
//	section, field, _ := key.CutByte('.')
//	// section is "user", field is "name".
//
//	owned := val.Clone() // first and only allocation
//
// # Lifetime
//
// A View never owns the bytes it references. Views over Go strings are always
// safe because strings are immutable. Views built from a []byte share the
// caller's backing array without copying: the view is valid only while that
// array stays alive and unmodified, and mutating the array while views over
// it exist leads to unpredictable results. The package provides no
// synchronization; concurrent readers are safe as long as nothing writes the
// underlying buffer.
//
// # Error handling
//
// Out-of-range access (At past the end, Front or Back on an empty view,
// DropFront or DropBack removing more bytes than exist) is a programmer
// error and panics. A search that finds nothing is an ordinary outcome and
// returns NotFound.
package strview
