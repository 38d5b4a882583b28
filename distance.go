package strview

// EditDistance returns the Levenshtein distance between a and b: the minimum
// number of single-byte insertions, deletions, and substitutions that turn
// one into the other. It runs the standard dynamic-programming recurrence
// over two rows of size b.Len()+1, swapped each iteration, so auxiliary
// space is linear in one operand rather than quadratic.
func EditDistance(a, b View) int {
	return editDistance(a.s, b.s, false)
}

// EditDistanceFold is EditDistance with ASCII letters compared
// case-insensitively. Neither input is modified.
func EditDistanceFold(a, b View) int {
	return editDistance(a.s, b.s, true)
}

func editDistance(s1, s2 string, fold bool) int {
	if len(s1) == 0 || len(s2) == 0 {
		return len(s1) + len(s2)
	}
	row := make([]int, len(s2)+1)
	prev := make([]int, len(s2)+1)
	for j := 1; j <= len(s2); j++ {
		row[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		row, prev = prev, row
		row[0] = i
		for j := 1; j <= len(s2); j++ {
			c1, c2 := s1[i-1], s2[j-1]
			if fold {
				c1, c2 = asciiLower(c1), asciiLower(c2)
			}
			if c1 == c2 {
				row[j] = prev[j-1]
				continue
			}
			row[j] = min(prev[j-1], row[j-1], prev[j]) + 1
		}
	}
	return row[len(s2)]
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
