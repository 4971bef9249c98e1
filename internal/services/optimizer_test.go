package services

import (
	"errors"
	"field-schedule-service/internal/domain"
	"math"
	"math/rand"
	"reflect"
	"strconv"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) <= 1e-6 }

func randomJobs(seed int64, n int) []domain.Job {
	rng := rand.New(rand.NewSource(seed))
	jobs := make([]domain.Job, 0, n)
	for i := 0; i < n; i++ {
		j := domain.Job{
			ID:              "J" + strconv.Itoa(i),
			Name:            "Site " + strconv.Itoa(i),
			Lat:             -26.3 + rng.Float64()*0.4,
			Lng:             27.9 + rng.Float64()*0.4,
			DurationMinutes: float64(15+rng.Intn(120)) + float64(rng.Intn(4))*0.25,
			SLAPriority:     1 + rng.Intn(5),
		}
		if rng.Intn(2) == 0 {
			start := 8*60 + rng.Intn(6*60)
			j.PreferredWindow = &domain.TimeWindow{
				Start: domain.FormatClock(float64(start)),
				End:   domain.FormatClock(float64(start + 60 + rng.Intn(180))),
			}
		}
		if rng.Intn(2) == 0 {
			p := rng.Float64()
			j.RainProbability = &p
		}
		if rng.Intn(2) == 0 {
			v := rng.Float64() * 900
			j.Irradiance = &v
		}
		jobs = append(jobs, j)
	}
	return jobs
}

func TestOptimizeSingleJobScenario(t *testing.T) {
	jobs := []domain.Job{{
		ID:              "J1",
		Name:            "Only stop",
		Lat:             latOffsetForMinutes(30),
		Lng:             0,
		DurationMinutes: 60,
		SLAPriority:     1,
	}}

	res, err := Optimize(jobs, 0, 0, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Route) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(res.Route))
	}
	got := res.Route[0]
	if got.ScheduledStart != "08:30" || got.ScheduledEnd != "09:30" {
		t.Fatalf("times = %s-%s, want 08:30-09:30", got.ScheduledStart, got.ScheduledEnd)
	}
	if !approx(got.TravelMinutes, 30) {
		t.Fatalf("travel = %v, want 30", got.TravelMinutes)
	}
	if !approx(res.TotalMinutes, 90) {
		t.Fatalf("total = %v, want 90", res.TotalMinutes)
	}
	if res.TotalWorkMinutes != 60 {
		t.Fatalf("work = %v, want 60", res.TotalWorkMinutes)
	}
}

func TestOptimizeFractionalDuration(t *testing.T) {
	jobs := []domain.Job{{ID: "A", Lat: 0, Lng: 0, DurationMinutes: 45.5, SLAPriority: 1}}

	res, err := Optimize(jobs, 0, 0, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 480 + 45.5 = 525.5 rounds up to 08:46.
	got := res.Route[0]
	if got.ScheduledStart != "08:00" || got.ScheduledEnd != "08:46" {
		t.Fatalf("times = %s-%s, want 08:00-08:46", got.ScheduledStart, got.ScheduledEnd)
	}
	if res.TotalWorkMinutes != 45.5 || res.TotalMinutes != 45.5 {
		t.Fatalf("work = %v total = %v, want 45.5", res.TotalWorkMinutes, res.TotalMinutes)
	}
}

func TestOptimizeFractionalDurationsCarryOver(t *testing.T) {
	// Two half minutes add up to a whole one instead of being rounded away per stop.
	jobs := []domain.Job{
		{ID: "A", Lat: 0, Lng: 0, DurationMinutes: 10.5, SLAPriority: 2},
		{ID: "B", Lat: 0, Lng: 0, DurationMinutes: 10.5, SLAPriority: 1},
	}

	res, err := Optimize(jobs, 0, 0, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Route[1].ScheduledEnd != "08:21" {
		t.Fatalf("second end = %s, want 08:21", res.Route[1].ScheduledEnd)
	}
	if res.TotalMinutes != 21 {
		t.Fatalf("total = %v, want 21", res.TotalMinutes)
	}
}

func TestOptimizePrefersSmallWaitOverMissedWindow(t *testing.T) {
	// A: 10 min away, window opens 5 min after arrival (score 10+2.5-5).
	// B: 9 min away, window already closed (score 9+60-5).
	jobs := []domain.Job{
		{
			ID:              "B",
			Lat:             -latOffsetForMinutes(9),
			DurationMinutes: 20,
			PreferredWindow: &domain.TimeWindow{Start: "07:00", End: "07:30"},
			SLAPriority:     1,
		},
		{
			ID:              "A",
			Lat:             latOffsetForMinutes(10),
			DurationMinutes: 30,
			PreferredWindow: &domain.TimeWindow{Start: "08:15", End: "09:00"},
			SLAPriority:     1,
		},
	}

	res, err := Optimize(jobs, 0, 0, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Route[0].ID != "A" || res.Route[1].ID != "B" {
		t.Fatalf("order = %s,%s, want A,B", res.Route[0].ID, res.Route[1].ID)
	}
	if res.Route[0].ScheduledStart != "08:10" || res.Route[0].ScheduledEnd != "08:40" {
		t.Fatalf("A times = %s-%s, want 08:10-08:40", res.Route[0].ScheduledStart, res.Route[0].ScheduledEnd)
	}
	// B is 19 minutes from A.
	if !approx(res.Route[1].TravelMinutes, 19) {
		t.Fatalf("B travel = %v, want 19", res.Route[1].TravelMinutes)
	}
	if res.Route[1].ScheduledStart != "08:59" {
		t.Fatalf("B start = %s, want 08:59", res.Route[1].ScheduledStart)
	}
}

func TestOptimizeMalformedStartTime(t *testing.T) {
	res, err := Optimize(DemoJobs(), DemoStart.Lat, DemoStart.Lng, "8")
	if !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Fatalf("err = %v, want ErrInvalidTimeFormat", err)
	}
	if res != nil {
		t.Fatalf("expected no result, got %+v", res)
	}
}

func TestOptimizeMalformedWindowAborts(t *testing.T) {
	jobs := DemoJobs()
	jobs[2].PreferredWindow = &domain.TimeWindow{Start: "08:00", End: "12"}

	res, err := Optimize(jobs, DemoStart.Lat, DemoStart.Lng, "08:00")
	if !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Fatalf("err = %v, want ErrInvalidTimeFormat", err)
	}
	if res != nil {
		t.Fatal("expected no partial result")
	}
}

func TestOptimizeEmptyInput(t *testing.T) {
	res, err := Optimize(nil, 0, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Route) != 0 {
		t.Fatalf("expected empty route, got %d stops", len(res.Route))
	}
	if res.TotalTravelMinutes != 0 || res.TotalWorkMinutes != 0 || res.TotalMinutes != 0 {
		t.Fatalf("expected zero totals, got %+v", res)
	}
}

func TestOptimizeDefaultStartTime(t *testing.T) {
	withDefault, err := Optimize(DemoJobs(), DemoStart.Lat, DemoStart.Lng, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	explicit, err := Optimize(DemoJobs(), DemoStart.Lat, DemoStart.Lng, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(withDefault, explicit) {
		t.Fatal("empty start time should behave as 08:00")
	}
}

func TestOptimizeTieBreakKeepsInputOrder(t *testing.T) {
	a := domain.Job{ID: "first", Lat: 0.01, Lng: 0.01, DurationMinutes: 10, SLAPriority: 3}
	b := a
	b.ID = "second"

	res, err := Optimize([]domain.Job{a, b}, 0, 0, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Route[0].ID != "first" {
		t.Fatalf("first stop = %q, want %q", res.Route[0].ID, "first")
	}

	res, err = Optimize([]domain.Job{b, a}, 0, 0, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Route[0].ID != "second" {
		t.Fatalf("first stop = %q, want %q", res.Route[0].ID, "second")
	}
}

func TestOptimizeDemoJobs(t *testing.T) {
	res, err := Optimize(DemoJobs(), DemoStart.Lat, DemoStart.Lng, "08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sandton outweighs its window wait with the top SLA priority.
	if res.Route[0].ID != "J1" {
		t.Fatalf("first stop = %q, want J1", res.Route[0].ID)
	}
	if res.TotalWorkMinutes != 360 {
		t.Fatalf("work = %v, want 360", res.TotalWorkMinutes)
	}
}

func TestOptimizeProperties(t *testing.T) {
	strategies := []SequencingStrategy{GreedyStrategy{}, TwoOptStrategy{Iterations: 5}}

	for seed := int64(1); seed <= 20; seed++ {
		jobs := randomJobs(seed, 1+int(seed)%12)
		before := append([]domain.Job(nil), jobs...)

		for _, strategy := range strategies {
			opt := NewOptimizer(DefaultCostPolicy(), strategy)
			res, err := opt.Optimize(jobs, -26.2041, 28.0473, "07:30")
			if err != nil {
				t.Fatalf("seed %d %s: unexpected error: %v", seed, strategy.Name(), err)
			}

			assertPermutation(t, jobs, res)
			assertTimeline(t, res, 450)
			assertTotals(t, jobs, res)

			again, err := opt.Optimize(jobs, -26.2041, 28.0473, "07:30")
			if err != nil {
				t.Fatalf("seed %d %s: unexpected error: %v", seed, strategy.Name(), err)
			}
			if !reflect.DeepEqual(res, again) {
				t.Fatalf("seed %d %s: results differ between identical runs", seed, strategy.Name())
			}
		}

		if !reflect.DeepEqual(before, jobs) {
			t.Fatalf("seed %d: input jobs were modified", seed)
		}
	}
}

func assertPermutation(t *testing.T, jobs []domain.Job, res *domain.ScheduleResult) {
	t.Helper()
	if len(res.Route) != len(jobs) {
		t.Fatalf("route has %d stops, want %d", len(res.Route), len(jobs))
	}
	want := make(map[string]int, len(jobs))
	for _, j := range jobs {
		want[j.ID]++
	}
	for _, s := range res.Route {
		want[s.ID]--
	}
	for id, n := range want {
		if n != 0 {
			t.Fatalf("job %q appears %d extra times", id, -n)
		}
	}
}

// assertTimeline checks start[i] = end[i-1] + travel[i] and end[i] = start[i] + duration[i].
// Both sides are read back from HH:MM strings, so each may be off by one minute.
func assertTimeline(t *testing.T, res *domain.ScheduleResult, startTime float64) {
	t.Helper()
	prevEnd := startTime
	for i, s := range res.Route {
		start, err := domain.ParseClock(s.ScheduledStart)
		if err != nil {
			t.Fatalf("stop %d start: %v", i, err)
		}
		end, err := domain.ParseClock(s.ScheduledEnd)
		if err != nil {
			t.Fatalf("stop %d end: %v", i, err)
		}
		if start > end {
			t.Fatalf("stop %d starts %s after it ends %s", i, s.ScheduledStart, s.ScheduledEnd)
		}
		if start < prevEnd {
			t.Fatalf("stop %d starts %s before previous end", i, s.ScheduledStart)
		}
		if d := math.Abs(start - (prevEnd + s.TravelMinutes)); d > 1 {
			t.Fatalf("stop %d start %s is %.2f min away from previous end + travel %.2f", i, s.ScheduledStart, d, s.TravelMinutes)
		}
		if d := math.Abs(end - (start + s.DurationMinutes)); d > 1 {
			t.Fatalf("stop %d end %s is %.2f min away from start + duration %.2f", i, s.ScheduledEnd, d, s.DurationMinutes)
		}
		prevEnd = end
	}
}

func assertTotals(t *testing.T, jobs []domain.Job, res *domain.ScheduleResult) {
	t.Helper()
	work := 0.0
	for _, j := range jobs {
		work += j.DurationMinutes
	}
	travel := 0.0
	for _, s := range res.Route {
		travel += s.TravelMinutes
	}
	if res.TotalWorkMinutes != work {
		t.Fatalf("work = %v, want %v", res.TotalWorkMinutes, work)
	}
	if !approx(res.TotalTravelMinutes, travel) {
		t.Fatalf("travel = %v, want %v", res.TotalTravelMinutes, travel)
	}
	if !approx(res.TotalMinutes, work+travel) {
		t.Fatalf("total = %v, want %v", res.TotalMinutes, work+travel)
	}
}
