package diff

import "sort"

// arrays diffs two arrays: it trims the common head and tail, aligns the
// rest with an LCS and pairs removed items with added ones to detect moves.
func (d *differ) arrays(left, right []any) *Delta {
	changed := make(map[int]any)
	removed := make(map[int]any)
	len1, len2 := len(left), len(right)

	head := 0
	for head < len1 && head < len2 && d.match(left, right, head, head) {
		if child := d.diff(left[head], right[head]); child != nil {
			changed[head] = child
		}
		head++
	}

	tail := 0
	for head+tail < len1 && head+tail < len2 && d.match(left, right, len1-1-tail, len2-1-tail) {
		i, j := len1-1-tail, len2-1-tail
		if child := d.diff(left[i], right[j]); child != nil {
			changed[j] = child
		}
		tail++
	}

	switch {
	case head+tail == len1 && head+tail == len2:
	case head+tail == len1:
		for j := head; j < len2-tail; j++ {
			changed[j] = []any{right[j]}
		}
	case head+tail == len2:
		for i := head; i < len1-tail; i++ {
			removed[i] = []any{left[i], RemovedMarker, RemovedMarker}
		}
	default:
		d.alignMiddle(left, right, head, tail, changed, removed)
	}

	if len(changed) == 0 && len(removed) == 0 {
		return nil
	}

	delta := &Delta{Array: true}
	for _, j := range sortedIndexes(changed) {
		delta.add(ChangedKey(j), changed[j])
	}
	for _, i := range sortedIndexes(removed) {
		delta.add(RemovedKey(i), removed[i])
	}
	return delta
}

func (d *differ) alignMiddle(left, right []any, head, tail int, changed, removed map[int]any) {
	trimmed1 := left[head : len(left)-tail]
	trimmed2 := right[head : len(right)-tail]

	indices1, indices2 := d.lcs(trimmed1, trimmed2)

	common1 := make(map[int]bool, len(indices1))
	for _, i := range indices1 {
		common1[i] = true
	}
	common2 := make(map[int]int, len(indices2))
	for n, j := range indices2 {
		common2[j] = indices1[n]
	}

	var pending []int
	for i := range trimmed1 {
		if !common1[i] {
			removed[head+i] = []any{left[head+i], RemovedMarker, RemovedMarker}
			pending = append(pending, head+i)
		}
	}

	for j := range trimmed2 {
		index2 := head + j
		if i, ok := common2[j]; ok {
			if child := d.diff(left[head+i], right[index2]); child != nil {
				changed[index2] = child
			}
			continue
		}

		moved := false
		for p, index1 := range pending {
			if !d.match(trimmed1, trimmed2, index1-head, j) {
				continue
			}
			removed[index1] = []any{"", index2, MovedMarker}
			if child := d.diff(left[index1], right[index2]); child != nil {
				changed[index2] = child
			}
			pending = append(pending[:p], pending[p+1:]...)
			moved = true
			break
		}
		if !moved {
			changed[index2] = []any{right[index2]}
		}
	}
}

// lcs returns the indexes of a longest common subsequence of a and b.
func (d *differ) lcs(a, b []any) ([]int, []int) {
	n, m := len(a), len(b)

	same := make([][]bool, n)
	for i := range same {
		same[i] = make([]bool, m)
		for j := range same[i] {
			same[i][j] = d.match(a, b, i, j)
		}
	}

	matrix := make([][]int, n+1)
	for i := range matrix {
		matrix[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case same[i-1][j-1]:
				matrix[i][j] = matrix[i-1][j-1] + 1
			case matrix[i-1][j] > matrix[i][j-1]:
				matrix[i][j] = matrix[i-1][j]
			default:
				matrix[i][j] = matrix[i][j-1]
			}
		}
	}

	var indices1, indices2 []int
	i, j := n, m
	for i > 0 && j > 0 {
		switch {
		case same[i-1][j-1]:
			indices1 = append(indices1, i-1)
			indices2 = append(indices2, j-1)
			i--
			j--
		case matrix[i][j-1] > matrix[i-1][j]:
			j--
		default:
			i--
		}
	}

	reverse(indices1)
	reverse(indices2)
	return indices1, indices2
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func sortedIndexes(m map[int]any) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
