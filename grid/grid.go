package grid

import "fmt"

// Cell values.
const (
	Dead  = 0
	Alive = 1
)

// Grid is a row-major occupancy grid: rows top to bottom, cells left to right.
type Grid [][]int

// Rows returns the number of rows of the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns of the grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// normalized returns a copy of g where nil slices are replaced with empty
// ones, so that serializers never emit null.
func (g Grid) normalized() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		if row == nil {
			row = []int{}
		}
		out[i] = row
	}
	return out
}

// Summary counts the cells of a grid.
type Summary struct {
	Rows  int
	Cols  int
	Alive int
	Dead  int
}

// Summarize computes the summary of g.
func Summarize(g Grid) Summary {
	s := Summary{Rows: g.Rows(), Cols: g.Cols()}
	for _, row := range g {
		for _, v := range row {
			if v == Alive {
				s.Alive++
			} else {
				s.Dead++
			}
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%dx%d grid, %d alive, %d dead", s.Cols, s.Rows, s.Alive, s.Dead)
}
