// Package maze generates braided grid mazes used as wall layouts.
//
// Grids are indexed [y][x]; true marks a wall. Rooms sit on odd coordinates and the
// cells between them are the carvable walls.
package maze

import (
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/party-arcade/vmath"
)

// Grid cell values
const (
	Wall    = true
	Passage = false
)

// Config shapes a generated maze
type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends)
	// Plaza and pillar constraints take precedence
	Braiding float64

	// RemoveBorders opens the outer ring so the maze floats inside its container
	RemoveBorders bool

	Start *vmath.Cell // nil = top-left room
	End   *vmath.Cell // nil = bottom-right room
}

// Layout is a generated maze with its solution
type Layout struct {
	Grid       [][]bool
	Start, End vmath.Cell
	Path       []vmath.Cell
}

// Cols returns the grid width
func (l Layout) Cols() int {
	if len(l.Grid) == 0 {
		return 0
	}
	return len(l.Grid[0])
}

// Rows returns the grid height
func (l Layout) Rows() int {
	return len(l.Grid)
}

// WallAt reports whether c is a wall; cells outside the grid are open
func (l Layout) WallAt(c vmath.Cell) bool {
	return c.In(l.Cols(), l.Rows()) && l.Grid[c.Y][c.X] == Wall
}

// Rooms returns every odd-coordinate room cell in row-major order
func (l Layout) Rooms() []vmath.Cell {
	var rooms []vmath.Cell
	for y := 1; y < l.Rows()-1; y += 2 {
		for x := 1; x < l.Cols()-1; x += 2 {
			rooms = append(rooms, vmath.Cell{X: x, Y: y})
		}
	}
	return rooms
}

var (
	orthoDirs = []vmath.Cell{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	jumpDirs  = []vmath.Cell{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
)

// Generate carves a recursive-backtracker maze, optionally braided, and solves it
// Dimensions round down to odd numbers, minimum 3
func Generate(cfg Config, rng *rand.Rand) Layout {
	rows := oddDim(cfg.Height)
	cols := oddDim(cfg.Width)

	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = slices.Repeat([]bool{Wall}, cols)
	}

	start := resolve(rows, cols, cfg.Start, vmath.Cell{X: 1, Y: 1})
	end := resolve(rows, cols, cfg.End, vmath.Cell{X: cols - 2, Y: rows - 2})

	carve(grid, start, rng)

	// Before braiding, so edge rooms count their outside connections
	if cfg.RemoveBorders {
		openRing(grid)
	}
	if cfg.Braiding > 0 {
		applyBraiding(grid, cfg.Braiding, rng)
	}

	forceOpen(grid, start)
	forceOpen(grid, end)

	return Layout{
		Grid:  grid,
		Start: start,
		End:   end,
		Path:  shortestPath(grid, start, end),
	}
}

func carve(grid [][]bool, start vmath.Cell, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	if !start.In(cols, rows) {
		start = vmath.Cell{X: 1, Y: 1}
	}

	stack := []vmath.Cell{start}
	grid[start.Y][start.X] = Passage

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]vmath.Cell, 0, 4)
		for _, d := range jumpDirs {
			n := curr.Add(d.X, d.Y)
			// Leave a one-cell border for walls
			if n.X > 0 && n.X < cols-1 && n.Y > 0 && n.Y < rows-1 && grid[n.Y][n.X] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.IntN(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = Passage
		next := curr.Add(d.X, d.Y)
		grid[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// applyBraiding opens a wall at dead ends with the given probability
func applyBraiding(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == Wall {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if grid[y+d.Y][x+d.X] == Passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]vmath.Cell, 0, 4)
			for _, jd := range jumpDirs {
				nx, ny := x+jd.X, y+jd.Y
				wx, wy := x+jd.X/2, y+jd.Y/2
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if grid[ny][nx] == Passage && grid[wy][wx] == Wall && keepsTexture(grid, wx, wy) {
					candidates = append(candidates, vmath.Cell{X: wx, Y: wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.IntN(len(candidates))]
				grid[c.Y][c.X] = Passage
			}
		}
	}
}

// keepsTexture rejects openings that create a 2x2 plaza or isolate a wall into a pillar
func keepsTexture(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])

	open := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return grid[ty][tx] == Passage
	}

	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return false
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return false
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return false
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return false
	}

	for _, d := range orthoDirs {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || grid[ny][nx] != Wall {
			continue
		}
		// (x, y) is about to open, so it does not count as a connection
		walls := 0
		for _, d2 := range orthoDirs {
			nnx, nny := nx+d2.X, ny+d2.Y
			if nnx == x && nny == y {
				continue
			}
			if nnx >= 0 && nnx < cols && nny >= 0 && nny < rows && grid[nny][nnx] == Wall {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}
	return true
}

func openRing(grid [][]bool) {
	rows, cols := len(grid), len(grid[0])
	for x := range cols {
		grid[0][x], grid[rows-1][x] = Passage, Passage
	}
	for y := range rows {
		grid[y][0], grid[y][cols-1] = Passage, Passage
	}
}

// oddDim rounds n down to an odd size of at least 3
func oddDim(n int) int {
	return max(3, n-(1-n%2))
}

func resolve(rows, cols int, p *vmath.Cell, def vmath.Cell) vmath.Cell {
	if p == nil {
		return def
	}
	return vmath.Cell{X: vmath.ClampInt(p.X, 0, cols-1), Y: vmath.ClampInt(p.Y, 0, rows-1)}
}

// forceOpen makes p a passage and connects it to a neighbor if it is isolated
func forceOpen(grid [][]bool, p vmath.Cell) {
	rows, cols := len(grid), len(grid[0])
	if !p.In(cols, rows) {
		return
	}
	grid[p.Y][p.X] = Passage

	for _, d := range orthoDirs {
		n := p.Add(d.X, d.Y)
		if n.In(cols, rows) && grid[n.Y][n.X] == Passage {
			return
		}
	}
	for _, d := range orthoDirs {
		n := p.Add(d.X, d.Y)
		if n.X > 0 && n.X < cols-1 && n.Y > 0 && n.Y < rows-1 {
			grid[n.Y][n.X] = Passage
			return
		}
	}
}

// shortestPath returns the shortest passage path from start to end, nil if none
func shortestPath(grid [][]bool, start, end vmath.Cell) []vmath.Cell {
	rows, cols := len(grid), len(grid[0])
	if !start.In(cols, rows) || !end.In(cols, rows) {
		return nil
	}
	if grid[start.Y][start.X] == Wall || grid[end.Y][end.X] == Wall {
		return nil
	}

	cameFrom := map[vmath.Cell]vmath.Cell{start: start}
	for queue := []vmath.Cell{start}; len(queue) > 0; {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []vmath.Cell{end}
			for at := end; at != start; {
				at = cameFrom[at]
				path = append(path, at)
			}
			slices.Reverse(path)
			return path
		}

		for _, d := range orthoDirs {
			next := curr.Add(d.X, d.Y)
			if _, seen := cameFrom[next]; !seen && next.In(cols, rows) && grid[next.Y][next.X] == Passage {
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
