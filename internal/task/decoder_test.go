package task

import (
	"math"
	"testing"
)

func TestDiscreteDecoderEndpoints(t *testing.T) {
	dec := NewDiscreteDecoder(headingNvec, headingActionLow, headingActionHigh)

	for k := range headingNvec {
		raw := []float64{0, 0, 0, 0}

		raw[k] = 0
		got := dec.Decode(raw)
		if got[k] != headingActionLow[k] {
			t.Errorf("dim %d index 0: got %v, want low bound %v", k, got[k], headingActionLow[k])
		}

		raw[k] = float64(headingNvec[k] - 1)
		got = dec.Decode(raw)
		if got[k] != headingActionHigh[k] {
			t.Errorf("dim %d index %d: got %v, want high bound %v", k, headingNvec[k]-1, got[k], headingActionHigh[k])
		}
	}
}

func TestDiscreteDecoderSpacing(t *testing.T) {
	dec := NewDiscreteDecoder(headingNvec, headingActionLow, headingActionHigh)

	for k, n := range headingNvec {
		lo, hi := headingActionLow[k], headingActionHigh[k]
		for i := 0; i < n; i++ {
			raw := []float64{0, 0, 0, 0}
			raw[k] = float64(i)
			want := lo + float64(i)*(hi-lo)/float64(n-1)
			got := dec.Decode(raw)[k]
			if math.Abs(got-want) > 1e-12 {
				t.Fatalf("dim %d index %d: got %v, want %v", k, i, got, want)
			}
		}
	}
}

func TestDiscreteDecoderSpace(t *testing.T) {
	dec := NewDiscreteDecoder(headingNvec, headingActionLow, headingActionHigh)
	space, ok := dec.Space().(MultiDiscrete)
	if !ok {
		t.Fatalf("expected MultiDiscrete space, got %T", dec.Space())
	}
	if space.Dim() != 4 {
		t.Errorf("expected dim 4, got %d", space.Dim())
	}
}

func TestContinuousDecoderClamp(t *testing.T) {
	dec := NewContinuousDecoder(headingActionLow, headingActionHigh)

	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"inside passes through", []float64{0.5, -0.5, 0, 0.6}, []float64{0.5, -0.5, 0, 0.6}},
		{"above saturates", []float64{2, 3, 1.5, 1.0}, []float64{1, 1, 1, 0.9}},
		{"below saturates", []float64{-2, -3, -1.5, 0}, []float64{-1, -1, -1, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dec.Decode(tt.in)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("dim %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestContinuousDecoderClampIdempotent(t *testing.T) {
	dec := NewContinuousDecoder(headingActionLow, headingActionHigh)

	in := []float64{5, -5, 0.3, 0.95}
	once := dec.Decode(in)
	twice := dec.Decode(once)
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("dim %d: clamp not idempotent (%v vs %v)", i, once[i], twice[i])
		}
	}
}
