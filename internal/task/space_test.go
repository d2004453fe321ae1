package task

import (
	"math/rand"
	"testing"
)

func TestBoxClip(t *testing.T) {
	b := Box{Low: []float64{-1, 0.4}, High: []float64{1, 0.9}}

	got := b.Clip([]float64{-3, 0.5})
	if got[0] != -1 || got[1] != 0.5 {
		t.Errorf("clip: got %v", got)
	}
	// Clip returns a fresh slice; the input is untouched.
	in := []float64{2, 2}
	b.Clip(in)
	if in[0] != 2 {
		t.Error("clip mutated its input")
	}
}

func TestBoxSampleWithinBounds(t *testing.T) {
	b := NewUniformBox(-10, 10, 8)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		for k, v := range b.Sample(rng) {
			if v < -10 || v > 10 {
				t.Fatalf("sample dim %d out of bounds: %v", k, v)
			}
		}
	}
}

func TestMultiDiscreteSample(t *testing.T) {
	m := MultiDiscrete{Nvec: []int{41, 41, 41, 30}}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		for k, v := range m.Sample(rng) {
			if v != float64(int(v)) {
				t.Fatalf("sample dim %d not integral: %v", k, v)
			}
			if v < 0 || v >= float64(m.Nvec[k]) {
				t.Fatalf("sample dim %d out of range: %v", k, v)
			}
		}
	}
}
