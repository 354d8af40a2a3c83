package math

// orthoBases holds the 24 proper rotations of the cube, in the order used by
// GetOrthogonalIndex. Entries are row-major.
var orthoBases = [24][9]int8{
	{1, 0, 0, 0, 1, 0, 0, 0, 1},
	{0, -1, 0, 1, 0, 0, 0, 0, 1},
	{-1, 0, 0, 0, -1, 0, 0, 0, 1},
	{0, 1, 0, -1, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, -1, 0, 1, 0},
	{0, 0, 1, 1, 0, 0, 0, 1, 0},
	{-1, 0, 0, 0, 0, 1, 0, 1, 0},
	{0, 0, -1, -1, 0, 0, 0, 1, 0},
	{1, 0, 0, 0, -1, 0, 0, 0, -1},
	{0, 1, 0, 1, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 1, 0, 0, 0, -1},
	{0, -1, 0, -1, 0, 0, 0, 0, -1},
	{1, 0, 0, 0, 0, 1, 0, -1, 0},
	{0, 0, -1, 1, 0, 0, 0, -1, 0},
	{-1, 0, 0, 0, 0, -1, 0, -1, 0},
	{0, 0, 1, -1, 0, 0, 0, -1, 0},
	{0, 0, 1, 0, 1, 0, -1, 0, 0},
	{0, -1, 0, 0, 0, 1, -1, 0, 0},
	{0, 0, -1, 0, -1, 0, -1, 0, 0},
	{0, 1, 0, 0, 0, -1, -1, 0, 0},
	{0, 0, 1, 0, -1, 0, 1, 0, 0},
	{0, 1, 0, 0, 0, 1, 1, 0, 0},
	{0, 0, -1, 0, 1, 0, 1, 0, 0},
	{0, -1, 0, 0, 0, -1, 1, 0, 0},
}

// OrthogonalBasisCount is the number of entries addressable by
// BasisFromOrthogonalIndex.
const OrthogonalBasisCount = len(orthoBases)

// BasisFromOrthogonalIndex returns table entry index. Out of range indices panic.
func BasisFromOrthogonalIndex[T Real](index int) Basis[T] {
	if index < 0 || index >= OrthogonalBasisCount {
		indexPanic("orthogonal basis", index, OrthogonalBasisCount-1)
	}
	e := orthoBases[index]
	return NewBasisRows(
		T(e[0]), T(e[1]), T(e[2]),
		T(e[3]), T(e[4]), T(e[5]),
		T(e[6]), T(e[7]), T(e[8]))
}

func snapOrthogonal[T Real](v T) int8 {
	if v > 0.5 {
		return 1
	}
	if v < -0.5 {
		return -1
	}
	return 0
}

// GetOrthogonalIndex snaps every entry to -1, 0 or 1 and returns the index of
// the matching cube rotation, or 0 when the snapped matrix is not one of them.
func (b Basis[T]) GetOrthogonalIndex() int {
	var snapped [9]int8
	for i := 0; i < 3; i++ {
		row := b.Row(i)
		for j := 0; j < 3; j++ {
			snapped[i*3+j] = snapOrthogonal(row.Index(j))
		}
	}

	for i, candidate := range orthoBases {
		if candidate == snapped {
			return i
		}
	}
	return 0
}
