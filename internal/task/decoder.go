package task

// ActionDecoder converts the agent's raw action representation into physical
// control units. Task variants swap decoders without touching the
// composition logic.
type ActionDecoder interface {
	Space() Space
	Decode(raw []float64) []float64
}

// DiscreteDecoder maps integer indices onto closed target intervals. Index i
// of a dimension with cardinality n decodes to lo + i*(hi-lo)/(n-1), so the
// n indices land on n equally spaced points including both endpoints.
// Indices are trusted to lie within [0, n-1]; there is no bounds check.
type DiscreteDecoder struct {
	nvec []int
	low  []float64
	high []float64
}

func NewDiscreteDecoder(nvec []int, low, high []float64) DiscreteDecoder {
	return DiscreteDecoder{nvec: nvec, low: low, high: high}
}

func (d DiscreteDecoder) Space() Space {
	return MultiDiscrete{Nvec: d.nvec}
}

func (d DiscreteDecoder) Decode(raw []float64) []float64 {
	out := make([]float64, len(d.nvec))
	for k := range d.nvec {
		span := d.high[k] - d.low[k]
		out[k] = raw[k]*span/float64(d.nvec[k]-1) + d.low[k]
	}
	return out
}

// ContinuousDecoder clamps real-valued actions into the commanded interval.
// No rescaling, only saturation.
type ContinuousDecoder struct {
	box Box
}

func NewContinuousDecoder(low, high []float64) ContinuousDecoder {
	return ContinuousDecoder{box: Box{Low: low, High: high}}
}

func (d ContinuousDecoder) Space() Space {
	return d.box
}

func (d ContinuousDecoder) Decode(raw []float64) []float64 {
	return d.box.Clip(raw)
}
