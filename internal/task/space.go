package task

import "math/rand"

// Space describes the shape of an observation or action representation.
type Space interface {
	Dim() int
	// Sample draws a uniform point from the space, for scripted or random
	// policies.
	Sample(rng *rand.Rand) []float64
}

// Box is a bounded real vector space.
type Box struct {
	Low  []float64
	High []float64
}

// NewUniformBox builds a Box with the same bounds on every dimension.
func NewUniformBox(low, high float64, dim int) Box {
	l := make([]float64, dim)
	h := make([]float64, dim)
	for i := 0; i < dim; i++ {
		l[i] = low
		h[i] = high
	}
	return Box{Low: l, High: h}
}

func (b Box) Dim() int { return len(b.Low) }

func (b Box) Sample(rng *rand.Rand) []float64 {
	out := make([]float64, len(b.Low))
	for i := range out {
		out[i] = b.Low[i] + rng.Float64()*(b.High[i]-b.Low[i])
	}
	return out
}

// Clip saturates v elementwise into the box bounds. Out-of-range input is
// not an error; it is silently clamped.
func (b Box) Clip(v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i]
		if i < len(b.Low) && out[i] < b.Low[i] {
			out[i] = b.Low[i]
		}
		if i < len(b.High) && out[i] > b.High[i] {
			out[i] = b.High[i]
		}
	}
	return out
}

// MultiDiscrete is an integer vector space with per-dimension cardinality.
type MultiDiscrete struct {
	Nvec []int
}

func (m MultiDiscrete) Dim() int { return len(m.Nvec) }

func (m MultiDiscrete) Sample(rng *rand.Rand) []float64 {
	out := make([]float64, len(m.Nvec))
	for i, n := range m.Nvec {
		out[i] = float64(rng.Intn(n))
	}
	return out
}
