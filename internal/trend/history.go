package trend

// Sample is one polled point of the simulation.
type Sample struct {
	Elapsed  float64 // Seconds since the run started
	Current  float64 // mA
	Pressure float64 // psi
}

// History is a circular buffer holding the trailing samples.
type History struct {
	buf   []Sample
	pos   int
	count int
}

// NewHistory creates a new circular buffer with the given capacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		buf: make([]Sample, capacity),
	}
}

// Push adds a sample, overwriting the oldest once full.
func (h *History) Push(s Sample) {
	h.buf[h.pos] = s
	h.pos = (h.pos + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Values returns all stored samples in chronological order.
func (h *History) Values() []Sample {
	if h.count == 0 {
		return nil
	}
	result := make([]Sample, h.count)
	if h.count < len(h.buf) {
		copy(result, h.buf[:h.count])
	} else {
		n := copy(result, h.buf[h.pos:])
		copy(result[n:], h.buf[:h.pos])
	}
	return result
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.count
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return len(h.buf)
}

// Reset discards all samples.
func (h *History) Reset() {
	h.pos = 0
	h.count = 0
}

// Pressures returns the pressure column of samples.
func Pressures(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Pressure
	}
	return out
}

// Currents returns the current column of samples.
func Currents(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Current
	}
	return out
}
