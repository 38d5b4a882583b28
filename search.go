package strview

import "strings"

// IndexByte returns the first index >= start holding byte c, or NotFound.
// A negative start is treated as 0; start >= Len yields NotFound.
func (v View) IndexByte(c byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= len(v.s) {
		return NotFound
	}
	if i := strings.IndexByte(v.s[start:], c); i >= 0 {
		return start + i
	}
	return NotFound
}

// LastIndexByte returns the last index <= rstart holding byte c, scanning
// backward, or NotFound. rstart is clamped to Len-1, so passing Len (or any
// larger value) scans the whole view; a negative rstart yields NotFound.
func (v View) LastIndexByte(c byte, rstart int) int {
	if rstart < 0 || len(v.s) == 0 {
		return NotFound
	}
	if rstart > len(v.s)-1 {
		rstart = len(v.s) - 1
	}
	return strings.LastIndexByte(v.s[:rstart+1], c)
}

// Index returns the first index where pat occurs, or NotFound.
// An empty pattern matches at index 0.
func (v View) Index(pat View) int {
	return strings.Index(v.s, pat.s)
}

// LastIndex returns the index of the last occurrence of pat, or NotFound.
// An empty pattern matches at index 0, mirroring Index rather than the
// strings.LastIndex convention of matching at the end.
func (v View) LastIndex(pat View) int {
	if len(pat.s) == 0 {
		return 0
	}
	return strings.LastIndex(v.s, pat.s)
}

// IndexFunc returns the first index >= start whose byte satisfies pred,
// or NotFound. A negative start is treated as 0.
func (v View) IndexFunc(pred func(byte) bool, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v.s); i++ {
		if pred(v.s[i]) {
			return i
		}
	}
	return NotFound
}

// IndexFuncNot is IndexFunc with the predicate negated.
func (v View) IndexFuncNot(pred func(byte) bool, start int) int {
	return v.IndexFunc(func(c byte) bool { return !pred(c) }, start)
}

// LastIndexFunc returns the last index <= rstart whose byte satisfies pred,
// scanning backward, or NotFound. rstart is clamped to Len-1; a negative
// rstart yields NotFound.
func (v View) LastIndexFunc(pred func(byte) bool, rstart int) int {
	if rstart < 0 || len(v.s) == 0 {
		return NotFound
	}
	if rstart > len(v.s)-1 {
		rstart = len(v.s) - 1
	}
	for i := rstart; i >= 0; i-- {
		if pred(v.s[i]) {
			return i
		}
	}
	return NotFound
}

// LastIndexFuncNot is LastIndexFunc with the predicate negated.
func (v View) LastIndexFuncNot(pred func(byte) bool, rstart int) int {
	return v.LastIndexFunc(func(c byte) bool { return !pred(c) }, rstart)
}

// ContainsByte reports whether the view holds byte c.
func (v View) ContainsByte(c byte) bool {
	return v.IndexByte(c, 0) != NotFound
}

// Contains reports whether pat occurs within the view.
func (v View) Contains(pat View) bool {
	return v.Index(pat) != NotFound
}

// CountByte returns the number of bytes equal to c, in a single scan.
func (v View) CountByte(c byte) int {
	n := 0
	for i := 0; i < len(v.s); i++ {
		if v.s[i] == c {
			n++
		}
	}
	return n
}

// Count returns the number of occurrences of pat, counting overlapping
// matches: every start position is checked for an exact-length match, with
// no skipping past a hit. For example Count of "aa" in "aaa" is 2. An empty
// pattern matches before every byte and at the end, giving Len+1.
func (v View) Count(pat View) int {
	if len(pat.s) > len(v.s) {
		return 0
	}
	n := 0
	for i := 0; i+len(pat.s) <= len(v.s); i++ {
		if v.s[i:i+len(pat.s)] == pat.s {
			n++
		}
	}
	return n
}

// HasPrefix reports whether the view starts with prefix.
// An empty prefix always matches.
func (v View) HasPrefix(prefix View) bool {
	return strings.HasPrefix(v.s, prefix.s)
}

// HasSuffix reports whether the view ends with suffix.
// An empty suffix always matches.
func (v View) HasSuffix(suffix View) bool {
	return strings.HasSuffix(v.s, suffix.s)
}
