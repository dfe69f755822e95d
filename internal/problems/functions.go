package problems

import (
	"fmt"
	"math"
)

// Rosenbrock valley, global minimum 0 at (1, ..., 1).
type Rosenbrock struct{ anyDim }

func (Rosenbrock) Name() string { return "Rosenbrock" }

func (Rosenbrock) Objective(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, fmt.Errorf("rosenbrock: need at least 2 variables, got %d", len(x))
	}
	var sum float64
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum, nil
}

func (Rosenbrock) Bounds(dim int) [][2]float64 { return uniformBounds(dim, -5, 10) }
func (Rosenbrock) Optimum() float64            { return 0 }
func (r Rosenbrock) Solved(obj float64) bool   { return solvedWithin(obj, r.Optimum()) }

// Rastrigin, highly multimodal, global minimum 0 at the origin.
type Rastrigin struct{ anyDim }

func (Rastrigin) Name() string { return "Rastrigin" }

func (Rastrigin) Objective(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("rastrigin: empty point")
	}
	sum := 10 * float64(len(x))
	for _, xi := range x {
		sum += xi*xi - 10*math.Cos(2*math.Pi*xi)
	}
	return sum, nil
}

func (Rastrigin) Bounds(dim int) [][2]float64 { return uniformBounds(dim, -5.12, 5.12) }
func (Rastrigin) Optimum() float64            { return 0 }
func (r Rastrigin) Solved(obj float64) bool   { return solvedWithin(obj, r.Optimum()) }

// Ackley, global minimum 0 at the origin. The search interval is
// shifted by +1 so the optimum does not sit at the exact center.
type Ackley struct{ anyDim }

func (Ackley) Name() string { return "Ackley" }

func (Ackley) Objective(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("ackley: empty point")
	}
	n := float64(len(x))
	var sumSq, sumCos float64
	for _, xi := range x {
		sumSq += xi * xi
		sumCos += math.Cos(2 * math.Pi * xi)
	}
	return -20*math.Exp(-0.2*math.Sqrt(sumSq/n)) - math.Exp(sumCos/n) + 20 + math.E, nil
}

func (Ackley) Bounds(dim int) [][2]float64 {
	return uniformBounds(dim, -32.768+1, 32.768+1)
}

func (Ackley) Optimum() float64          { return 0 }
func (a Ackley) Solved(obj float64) bool { return solvedWithin(obj, a.Optimum()) }

// Griewank, global minimum 0 at the origin, bounds shifted by +1.
type Griewank struct{ anyDim }

func (Griewank) Name() string { return "Griewank" }

func (Griewank) Objective(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("griewank: empty point")
	}
	var sum float64
	prod := 1.0
	for i, xi := range x {
		sum += xi * xi / 4000
		prod *= math.Cos(xi / math.Sqrt(float64(i+1)))
	}
	return sum - prod + 1, nil
}

func (Griewank) Bounds(dim int) [][2]float64 {
	return uniformBounds(dim, -600+1, 600+1)
}

func (Griewank) Optimum() float64          { return 0 }
func (g Griewank) Solved(obj float64) bool { return solvedWithin(obj, g.Optimum()) }

// Levy, global minimum 0 at (1, ..., 1).
type Levy struct{ anyDim }

func (Levy) Name() string { return "Levy" }

func (Levy) Objective(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("levy: empty point")
	}
	w := func(xi float64) float64 { return 1 + (xi-1)/4 }

	w1 := w(x[0])
	s1 := math.Sin(math.Pi * w1)
	sum := s1 * s1
	for i := 0; i < len(x)-1; i++ {
		wi := w(x[i])
		s := math.Sin(math.Pi*wi + 1)
		sum += (wi - 1) * (wi - 1) * (1 + 10*s*s)
	}
	wn := w(x[len(x)-1])
	sn := math.Sin(2 * math.Pi * wn)
	sum += (wn - 1) * (wn - 1) * (1 + sn*sn)
	return sum, nil
}

func (Levy) Bounds(dim int) [][2]float64 { return uniformBounds(dim, -10, 10) }
func (Levy) Optimum() float64            { return 0 }
func (l Levy) Solved(obj float64) bool   { return solvedWithin(obj, l.Optimum()) }

// SixHumpCamel, fixed two-dimensional, global minimum -1.0316 at
// (0.0898, -0.7126) and its mirror.
type SixHumpCamel struct{ twoDim }

func (SixHumpCamel) Name() string { return "SixHumpCamel" }

func (SixHumpCamel) Objective(x []float64) (float64, error) {
	if len(x) != 2 {
		return 0, fmt.Errorf("six-hump camel: expected 2D point, got %d variables", len(x))
	}
	x1, x2 := x[0], x[1]
	x1sq := x1 * x1
	x2sq := x2 * x2
	return (4-2.1*x1sq+x1sq*x1sq*x1sq/3)*x1sq + x1*x2 + (-4+4*x2sq)*x2sq, nil
}

func (SixHumpCamel) Bounds(int) [][2]float64 {
	return [][2]float64{{-3, 3}, {-2, 2}}
}

func (SixHumpCamel) Optimum() float64          { return -1.0316 }
func (c SixHumpCamel) Solved(obj float64) bool { return solvedWithin(obj, c.Optimum()) }

// CrossInTray, fixed two-dimensional, global minimum -2.06261 at
// (±1.3491, ±1.3491).
type CrossInTray struct{ twoDim }

func (CrossInTray) Name() string { return "CrossInTray" }

func (CrossInTray) Objective(x []float64) (float64, error) {
	if len(x) != 2 {
		return 0, fmt.Errorf("cross-in-tray: expected 2D point, got %d variables", len(x))
	}
	x1, x2 := x[0], x[1]
	inner := math.Abs(100 - math.Sqrt(x1*x1+x2*x2)/math.Pi)
	v := math.Abs(math.Sin(x1)*math.Sin(x2)*math.Exp(inner)) + 1
	return -0.0001 * math.Pow(v, 0.1), nil
}

func (CrossInTray) Bounds(int) [][2]float64 {
	return [][2]float64{{-10, 10}, {-10, 10}}
}

func (CrossInTray) Optimum() float64          { return -2.06261 }
func (c CrossInTray) Solved(obj float64) bool { return solvedWithin(obj, c.Optimum()) }
