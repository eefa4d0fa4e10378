package apu

var (
	pulseTable [32]float64
	tndTable   [204]float64
)

func init() {
	for i := 1; i < len(pulseTable); i++ {
		pulseTable[i] = 95.52 / (8128.0/float64(i) + 100.0)
	}
	for i := 1; i < len(tndTable); i++ {
		tndTable[i] = 163.67 / (24329.0/float64(i) + 100.0)
	}
}

// Mix combines raw channel outputs using the non-linear lookup tables.
// Pulse, triangle and noise levels are 0-15, dmc is 0-127.
func Mix(pulse1, pulse2, triangle, noise, dmc uint8) float64 {
	return pulseTable[int(pulse1)+int(pulse2)] +
		tndTable[3*int(triangle)+2*int(noise)+int(dmc)]
}

// HighPass is a one pole high-pass filter removing the DC offset of the
// mixer output.
type HighPass struct {
	Alpha float64

	prevIn  float64
	prevOut float64
}

func NewHighPass() HighPass {
	return HighPass{Alpha: 0.996}
}

func (h *HighPass) Filter(x float64) float64 {
	y := x - h.prevIn + h.Alpha*h.prevOut
	h.prevIn = x
	h.prevOut = y
	return y
}

func (h *HighPass) Reset() {
	h.prevIn = 0
	h.prevOut = 0
}
