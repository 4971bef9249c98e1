package services

import (
	"errors"
	"field-schedule-service/internal/domain"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown sequencing strategy")

const (
	StrategyGreedy = "greedy"
	StrategyTwoOpt = "two-opt"
)

// Problem is the read-only input shared by sequencing strategies.
// Stops keep the caller's input order, which decides ties.
type Problem struct {
	Start     domain.Coordinates
	StartTime float64
	Stops     []Stop
	Policy    CostPolicy
}

// SequencingStrategy decides the visiting order of a Problem's stops.
// Sequence returns a permutation of indices into p.Stops and must not
// modify p.
type SequencingStrategy interface {
	Name() string
	Sequence(p *Problem) []int
}

// StrategyByName resolves a strategy; an empty name selects greedy.
func StrategyByName(name string) (SequencingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyGreedy:
		return GreedyStrategy{}, nil
	case StrategyTwoOpt:
		return TwoOptStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (allowed: %s, %s)", ErrUnknownStrategy, name, StrategyGreedy, StrategyTwoOpt)
	}
}

// routeCost replays an order from the start state and sums each leg's score.
func routeCost(p *Problem, order []int) float64 {
	cur := p.Start
	now := p.StartTime
	total := 0.0
	for _, idx := range order {
		s := p.Stops[idx]
		total += p.Policy.Score(cur, now, s)
		now += TravelMinutes(cur, s.Job.Location()) + s.Job.DurationMinutes
		cur = s.Job.Location()
	}
	return total
}
