package game

import "container/heap"

// FindPath runs A* between two cells over the world's blocked set using
// 4-neighbour moves with unit step cost and a Manhattan heuristic. It
// returns the full path including the start cell, a single-element path when
// start == goal, and nil when the goal is blocked or unreachable.
func FindPath(start, goal Cell, blocked map[Cell]struct{}) []Cell {
	if start == goal {
		return []Cell{start}
	}
	if _, bad := blocked[goal]; bad {
		return nil
	}

	open := &cellQueue{}
	heap.Init(open)
	heap.Push(open, cellNode{cell: start, priority: manhattan(start, goal)})

	cameFrom := map[Cell]Cell{}
	costSoFar := map[Cell]int{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(cellNode).cell
		if current == goal {
			return reconstruct(cameFrom, current)
		}
		for _, next := range neighbours(current, blocked) {
			cost := costSoFar[current] + 1
			if prev, seen := costSoFar[next]; !seen || cost < prev {
				costSoFar[next] = cost
				cameFrom[next] = current
				heap.Push(open, cellNode{cell: next, priority: cost + manhattan(next, goal)})
			}
		}
	}

	return nil
}

func manhattan(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func neighbours(c Cell, blocked map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		next := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if !next.InBounds() {
			continue
		}
		if _, bad := blocked[next]; bad {
			continue
		}
		out = append(out, next)
	}
	return out
}

func reconstruct(cameFrom map[Cell]Cell, current Cell) []Cell {
	path := []Cell{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// cellNode / cellQueue implement the A* open set as a min-heap keyed on
// f-score. Stale entries are tolerated: popping a cell that already has a
// cheaper recorded cost just expands to no improvement.
type cellNode struct {
	cell     Cell
	priority int
}

type cellQueue []cellNode

func (q cellQueue) Len() int            { return len(q) }
func (q cellQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q cellQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(cellNode)) }
func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
