package taguchi

import "fmt"

// OrthogonalArray is a constant table identified by name, with R rows, C
// columns, a base level P ∈ {2,3,5}, and an R×C matrix of integers in
// [0, P) (§3). Built once by the oa package's catalog and immutable
// thereafter.
//
// Strong orthogonality invariant: for every pair of distinct columns and
// every ordered pair of values (a, b) ∈ [0,P)², the pair (a, b) occurs in
// exactly R/P² rows.
type OrthogonalArray struct {
	Name string
	R    int
	C    int
	P    int
	Data [][]int
}

// Cell returns the value at row r, column c.
func (a *OrthogonalArray) Cell(r, c int) int {
	return a.Data[r][c]
}

// String renders the array's identity for diagnostics and CLI listings.
func (a *OrthogonalArray) String() string {
	return fmt.Sprintf("%s (R=%d, C=%d, P=%d)", a.Name, a.R, a.C, a.P)
}
