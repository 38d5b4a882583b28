package strview

// Substr returns the view over [start, start+n), clamped so it never reaches
// past the end: start is clamped into [0, Len] and n into [0, Len-start].
// Callers that want an exact precondition instead of forgiving truncation
// use DropFront or DropBack.
func (v View) Substr(start, n int) View {
	start = clamp(start, len(v.s))
	n = clamp(n, len(v.s)-start)
	return View{s: v.s[start : start+n]}
}

// SubstrFrom returns everything from start to the end, with start clamped
// into [0, Len].
func (v View) SubstrFrom(start int) View {
	start = clamp(start, len(v.s))
	return View{s: v.s[start:]}
}

// Slice returns the view over [start, end). When start > end the two are
// swapped first, so Slice is symmetric in its arguments; both are then
// clamped into [0, Len].
func (v View) Slice(start, end int) View {
	if start > end {
		start, end = end, start
	}
	start = clamp(start, len(v.s))
	end = clamp(end, len(v.s))
	return View{s: v.s[start:end]}
}

// TakeFront returns the first min(n, Len) bytes.
func (v View) TakeFront(n int) View {
	return View{s: v.s[:clamp(n, len(v.s))]}
}

// TakeBack returns the last min(n, Len) bytes.
func (v View) TakeBack(n int) View {
	return View{s: v.s[len(v.s)-clamp(n, len(v.s)):]}
}

// TakeFrontWhile returns the longest prefix whose bytes all satisfy pred.
func (v View) TakeFrontWhile(pred func(byte) bool) View {
	if i := v.IndexFuncNot(pred, 0); i != NotFound {
		return View{s: v.s[:i]}
	}
	return v
}

// DropFront returns the view without its first n bytes. Unlike the take and
// substr family, n is an exact precondition: n < 0 or n > Len panics.
func (v View) DropFront(n int) View {
	if n < 0 || n > len(v.s) {
		panic("strview: DropFront removes more bytes than exist")
	}
	return View{s: v.s[n:]}
}

// DropBack returns the view without its last n bytes. Unlike the take and
// substr family, n is an exact precondition: n < 0 or n > Len panics.
func (v View) DropBack(n int) View {
	if n < 0 || n > len(v.s) {
		panic("strview: DropBack removes more bytes than exist")
	}
	return View{s: v.s[:len(v.s)-n]}
}

// CutByte splits the view around the first occurrence of byte sep, returning
// the bytes before and after it; the separator belongs to neither half.
// When sep is absent it returns (v, empty, false).
func (v View) CutByte(sep byte) (before, after View, found bool) {
	if i := v.IndexByte(sep, 0); i != NotFound {
		return View{s: v.s[:i]}, View{s: v.s[i+1:]}, true
	}
	return v, View{}, false
}

// Cut splits the view around the first occurrence of sep, returning the
// bytes before and after it; the separator belongs to neither half.
// When sep is absent it returns (v, empty, false).
func (v View) Cut(sep View) (before, after View, found bool) {
	if i := v.Index(sep); i != NotFound {
		return View{s: v.s[:i]}, View{s: v.s[i+len(sep.s):]}, true
	}
	return v, View{}, false
}

// LastCutByte splits the view around the last occurrence of byte sep;
// otherwise it behaves like CutByte.
func (v View) LastCutByte(sep byte) (before, after View, found bool) {
	if i := v.LastIndexByte(sep, len(v.s)); i != NotFound {
		return View{s: v.s[:i]}, View{s: v.s[i+1:]}, true
	}
	return v, View{}, false
}

// LastCut splits the view around the last occurrence of sep; otherwise it
// behaves like Cut. Note that with an empty separator the split position is
// index 0, matching LastIndex.
func (v View) LastCut(sep View) (before, after View, found bool) {
	if i := v.LastIndex(sep); i != NotFound {
		return View{s: v.s[:i]}, View{s: v.s[i+len(sep.s):]}, true
	}
	return v, View{}, false
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
