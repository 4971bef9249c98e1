package services

const defaultTwoOptIterations = 50

// TwoOptStrategy seeds with the greedy order and then applies 2-opt segment
// reversals while they strictly lower the replayed route cost.
type TwoOptStrategy struct {
	// Maximum improvement passes; zero uses the default.
	Iterations int
}

func (TwoOptStrategy) Name() string { return StrategyTwoOpt }

func (t TwoOptStrategy) Sequence(p *Problem) []int {
	iterations := t.Iterations
	if iterations <= 0 {
		iterations = defaultTwoOptIterations
	}

	best := GreedyStrategy{}.Sequence(p)
	n := len(best)
	if n < 3 {
		return best
	}
	bestCost := routeCost(p, best)

	for it := 0; it < iterations; it++ {
		improved := false
		for i := 0; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				candidate := twoOptSwap(best, i, k)
				if c := routeCost(p, candidate); c+1e-9 < bestCost {
					best = candidate
					bestCost = c
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return best
}

// twoOptSwap returns a copy of ord with the segment i..k reversed.
func twoOptSwap(ord []int, i, k int) []int {
	out := make([]int, len(ord))
	copy(out, ord[:i])
	pos := i
	for j := k; j >= i; j-- {
		out[pos] = ord[j]
		pos++
	}
	copy(out[pos:], ord[k+1:])
	return out
}
