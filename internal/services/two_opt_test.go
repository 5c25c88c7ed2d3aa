package services

import (
	"courier-route-service/internal/domain"
	"math/rand"
	"testing"
	"time"
)

// Two clusters on either side of a long gap. Visiting a cluster in the
// wrong order forces crossing legs that 2-opt must remove.
func crossedTourFixture() (domain.GeoPoint, []domain.Stop) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	tour := []domain.Stop{
		testStop("B", 0, 2),
		testStop("A", 0, 1),
		testStop("D", 10, 2),
		testStop("C", 10, 1),
		testStop("E", 10, 3),
	}
	return origin, tour
}

func TestRefineTourRemovesCrossings(t *testing.T) {
	origin, tour := crossedTourFixture()

	refined, outcome := RefineTour(origin, tour, RefineBudget{})

	want := []string{"A", "B", "C", "D", "E"}
	got := tourIDs(refined)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("refined order = %v, want %v", got, want)
		}
	}
	if !outcome.Converged {
		t.Fatalf("expected convergence, got %+v", outcome)
	}
	if outcome.MovesApplied != 2 {
		t.Fatalf("moves applied = %d, want 2", outcome.MovesApplied)
	}

	// Input untouched.
	if tour[0].ID != "B" || tour[4].ID != "E" {
		t.Fatalf("input tour mutated: %v", tourIDs(tour))
	}
}

func TestRefineTourStopsAtMoveBudget(t *testing.T) {
	origin, tour := crossedTourFixture()

	refined, outcome := RefineTour(origin, tour, RefineBudget{MaxMoves: 1})

	if outcome.MovesApplied != 1 {
		t.Fatalf("moves applied = %d, want 1", outcome.MovesApplied)
	}
	if outcome.Converged {
		t.Fatalf("expected Converged=false after exhausting move budget")
	}

	// The first improving move uncrosses the near cluster only.
	want := []string{"A", "B", "D", "C", "E"}
	got := tourIDs(refined)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("refined order = %v, want %v", got, want)
		}
	}

	if EstimateRouteDistanceKm(origin, refined) > EstimateRouteDistanceKm(origin, tour) {
		t.Fatalf("partial refinement worsened the tour")
	}
}

func TestRefineTourStopsAtTimeBudget(t *testing.T) {
	origin := domain.GeoPoint{Lat: 33, Lon: -112}
	rng := rand.New(rand.NewSource(7))

	// Enough stops that even a single clean scan exceeds the interval
	// between wall-clock checks, so an expired deadline always fires.
	stops := make([]domain.Stop, 50)
	for i := range stops {
		stops[i] = testStop(string(rune('a'+i%26))+string(rune('0'+i/26)), 33+rng.Float64(), -112+rng.Float64())
	}

	refined, outcome := RefineTour(origin, stops, RefineBudget{MaxTime: time.Nanosecond})

	if outcome.Converged {
		t.Fatalf("expected Converged=false with an expired time budget")
	}
	if len(refined) != len(stops) {
		t.Fatalf("refined length = %d, want %d", len(refined), len(stops))
	}
	if EstimateRouteDistanceKm(origin, refined) > EstimateRouteDistanceKm(origin, stops) {
		t.Fatalf("time-boxed refinement worsened the tour")
	}
}

func TestRefineTourAlreadyOptimal(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	tour := []domain.Stop{
		testStop("A", 0, 1),
		testStop("B", 0, 2),
		testStop("C", 0, 3),
	}

	refined, outcome := RefineTour(origin, tour, RefineBudget{})

	if outcome.MovesApplied != 0 || !outcome.Converged {
		t.Fatalf("outcome = %+v, want 0 moves and convergence", outcome)
	}
	want := []string{"A", "B", "C"}
	got := tourIDs(refined)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("refined order = %v, want %v", got, want)
		}
	}
}

func TestRefineTourShortTours(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}

	refined, outcome := RefineTour(origin, nil, RefineBudget{})
	if len(refined) != 0 || !outcome.Converged {
		t.Fatalf("empty tour: refined=%v outcome=%+v", refined, outcome)
	}

	refined, outcome = RefineTour(origin, []domain.Stop{testStop("only", 1, 1)}, RefineBudget{})
	if len(refined) != 1 || refined[0].ID != "only" || !outcome.Converged {
		t.Fatalf("single-stop tour: refined=%v outcome=%+v", tourIDs(refined), outcome)
	}
}

func TestRefineTourPreservesStopMultiset(t *testing.T) {
	origin := domain.GeoPoint{Lat: 40, Lon: -74}
	rng := rand.New(rand.NewSource(99))

	stops := make([]domain.Stop, 12)
	for i := range stops {
		stops[i] = testStop(string(rune('a'+i)), 40+rng.Float64()*2, -74+rng.Float64()*2)
	}

	refined, _ := RefineTour(origin, stops, RefineBudget{})

	seen := make(map[string]int)
	for _, s := range refined {
		seen[s.ID]++
	}
	for _, s := range stops {
		if seen[s.ID] != 1 {
			t.Fatalf("stop %q appears %d times in refined tour", s.ID, seen[s.ID])
		}
	}
}
