package problems_test

import (
	"math"
	"testing"

	"github.com/jspall/gsbench/internal/problems"
)

func mustObjective(t *testing.T, p problems.Problem, x []float64) float64 {
	t.Helper()
	v, err := p.Objective(x)
	if err != nil {
		t.Fatalf("%s.Objective(%v): %v", p.Name(), x, err)
	}
	return v
}

func TestObjectivesAtKnownMinima(t *testing.T) {
	tests := []struct {
		prob problems.Problem
		x    []float64
		want float64
		tol  float64
	}{
		{problems.Rosenbrock{}, []float64{1, 1, 1, 1}, 0, 1e-9},
		{problems.Rastrigin{}, []float64{0, 0, 0}, 0, 1e-9},
		{problems.Ackley{}, []float64{0, 0, 0, 0, 0}, 0, 1e-9},
		{problems.Griewank{}, []float64{0, 0, 0}, 0, 1e-9},
		{problems.Levy{}, []float64{1, 1, 1, 1}, 0, 1e-9},
		{problems.SixHumpCamel{}, []float64{0.0898, -0.7126}, -1.0316, 1e-3},
		{problems.CrossInTray{}, []float64{1.34941, 1.34941}, -2.06261, 1e-4},
	}
	for _, tt := range tests {
		t.Run(tt.prob.Name(), func(t *testing.T) {
			got := mustObjective(t, tt.prob, tt.x)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("objective at %v = %g, want %g ± %g", tt.x, got, tt.want, tt.tol)
			}
		})
	}
}

func TestObjectivesAwayFromMinimum(t *testing.T) {
	// Spot values, hand-computed.
	tests := []struct {
		prob problems.Problem
		x    []float64
		want float64
	}{
		{problems.Rosenbrock{}, []float64{0, 0}, 1},
		{problems.Rastrigin{}, []float64{1, 1}, 2},
		{problems.Griewank{}, []float64{0, 2}, 4.0/4000 - math.Cos(2/math.Sqrt2) + 1},
	}
	for _, tt := range tests {
		t.Run(tt.prob.Name(), func(t *testing.T) {
			got := mustObjective(t, tt.prob, tt.x)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("objective at %v = %g, want %g", tt.x, got, tt.want)
			}
		})
	}
}

func TestSolvedTolerance(t *testing.T) {
	tests := []struct {
		prob problems.Problem
		obj  float64
		want bool
	}{
		{problems.Ackley{}, 0, true},
		{problems.Ackley{}, 5e-5, true},
		{problems.Ackley{}, 2e-4, false},
		{problems.SixHumpCamel{}, -1.0316, true},
		{problems.SixHumpCamel{}, -1.0315, true},
		{problems.SixHumpCamel{}, -1.0, false},
		{problems.CrossInTray{}, -2.06261, true},
		{problems.CrossInTray{}, -2.0, false},
	}
	for _, tt := range tests {
		if got := tt.prob.Solved(tt.obj); got != tt.want {
			t.Errorf("%s.Solved(%g) = %v, want %v", tt.prob.Name(), tt.obj, got, tt.want)
		}
	}
}

func TestSupportedDims(t *testing.T) {
	defaults := []int{10, 50, 100}

	scalable := problems.Ackley{}
	got := scalable.SupportedDims(defaults)
	if len(got) != 3 || got[0] != 10 || got[1] != 50 || got[2] != 100 {
		t.Errorf("Ackley.SupportedDims = %v, want %v", got, defaults)
	}

	for _, fixed := range []problems.Problem{problems.SixHumpCamel{}, problems.CrossInTray{}} {
		got := fixed.SupportedDims(defaults)
		if len(got) != 1 || got[0] != 2 {
			t.Errorf("%s.SupportedDims = %v, want [2]", fixed.Name(), got)
		}
	}
}

func TestBounds(t *testing.T) {
	ackley := problems.Ackley{}.Bounds(10)
	if len(ackley) != 10 {
		t.Fatalf("Ackley bounds: got %d rows, want 10", len(ackley))
	}
	if ackley[0][0] != -31.768 || ackley[0][1] != 33.768 {
		t.Errorf("Ackley bounds row: got %v, want [-31.768 33.768]", ackley[0])
	}

	camel := problems.SixHumpCamel{}.Bounds(10)
	if len(camel) != 2 {
		t.Fatalf("SixHumpCamel bounds: got %d rows, want 2 regardless of requested dim", len(camel))
	}
	if camel[0] != [2]float64{-3, 3} || camel[1] != [2]float64{-2, 2} {
		t.Errorf("SixHumpCamel bounds: got %v", camel)
	}
}

func TestObjectiveDimErrors(t *testing.T) {
	if _, err := (problems.SixHumpCamel{}).Objective([]float64{1, 2, 3}); err == nil {
		t.Error("SixHumpCamel should reject a 3D point")
	}
	if _, err := (problems.CrossInTray{}).Objective([]float64{1}); err == nil {
		t.Error("CrossInTray should reject a 1D point")
	}
	if _, err := (problems.Rosenbrock{}).Objective([]float64{1}); err == nil {
		t.Error("Rosenbrock should reject a 1D point")
	}
	if _, err := (problems.Rastrigin{}).Objective(nil); err == nil {
		t.Error("Rastrigin should reject an empty point")
	}
}

func TestRegistry(t *testing.T) {
	all := problems.All()
	if len(all) != 7 {
		t.Fatalf("All() returned %d problems, want 7", len(all))
	}
	wantOrder := []string{"Rosenbrock", "Rastrigin", "Ackley", "Griewank", "Levy", "SixHumpCamel", "CrossInTray"}
	for i, name := range wantOrder {
		if all[i].Name() != name {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].Name(), name)
		}
	}

	if p, ok := problems.Find("ackley"); !ok || p.Name() != "Ackley" {
		t.Error("Find should be case-insensitive")
	}
	if _, ok := problems.Find("NoSuchFn"); ok {
		t.Error("Find should miss unknown names")
	}
}
