package problems

import "strings"

// tolerance is the absolute distance from the known global optimum
// within which a trial counts as solved.
const tolerance = 1e-4

// Problem is one benchmark objective the optimizer is measured against.
type Problem interface {
	Name() string
	// Objective evaluates the function at x.
	Objective(x []float64) (float64, error)
	// Bounds returns the [min,max] search interval per variable.
	Bounds(dim int) [][2]float64
	// SupportedDims filters the default dimension set down to what the
	// problem can run at. Fixed-dimensional problems ignore the defaults.
	SupportedDims(defaults []int) []int
	// Optimum is the known global minimum value.
	Optimum() float64
	// Solved reports whether an objective value is within tolerance of
	// the global optimum.
	Solved(objective float64) bool
}

// All returns the full benchmark catalog in suite order.
func All() []Problem {
	return []Problem{
		Rosenbrock{},
		Rastrigin{},
		Ackley{},
		Griewank{},
		Levy{},
		SixHumpCamel{},
		CrossInTray{},
	}
}

// Find looks up a problem by name, case-insensitively.
func Find(name string) (Problem, bool) {
	for _, p := range All() {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}

// anyDim is embedded by problems that scale to any dimensionality.
type anyDim struct{}

func (anyDim) SupportedDims(defaults []int) []int {
	out := make([]int, len(defaults))
	copy(out, defaults)
	return out
}

// twoDim is embedded by problems fixed at two variables.
type twoDim struct{}

func (twoDim) SupportedDims([]int) []int { return []int{2} }

func uniformBounds(dim int, lo, hi float64) [][2]float64 {
	bounds := make([][2]float64, dim)
	for i := range bounds {
		bounds[i] = [2]float64{lo, hi}
	}
	return bounds
}

func solvedWithin(objective, optimum float64) bool {
	diff := objective - optimum
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}
