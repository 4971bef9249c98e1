package services

import "math"

// GreedyStrategy builds the route by repeatedly taking the cheapest next stop.
// It never backtracks and runs in O(n²).
type GreedyStrategy struct{}

func (GreedyStrategy) Name() string { return StrategyGreedy }

func (GreedyStrategy) Sequence(p *Problem) []int {
	n := len(p.Stops)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	cur := p.Start
	now := p.StartTime

	for len(order) < n {
		best := -1
		bestScore := math.Inf(1)

		// Select next stop by minimum score (greedy step).
		// Strict comparison keeps the first stop in input order on ties.
		for i, s := range p.Stops {
			if visited[i] {
				continue
			}
			if score := p.Policy.Score(cur, now, s); score < bestScore {
				best = i
				bestScore = score
			}
		}

		// Every remaining score was NaN: fall back to input order.
		if best == -1 {
			for i := range visited {
				if !visited[i] {
					best = i
					break
				}
			}
		}

		visited[best] = true
		order = append(order, best)

		next := p.Stops[best].Job
		now += TravelMinutes(cur, next.Location()) + next.DurationMinutes
		cur = next.Location()
	}

	return order
}
