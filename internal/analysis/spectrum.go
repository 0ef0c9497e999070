// Package analysis estimates orbital periods from recorded coordinate
// series via the FFT power spectrum.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of each positive-frequency bin.
// Input is zero-padded to the next power of two; the mean is removed
// first so the DC bin does not swamp the orbital peak.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in the same time unit as dt, of
// the strongest spectral component. Returns 0 when no non-DC peak
// exists (constant or empty input).
func DominantPeriod(data []float64, dt float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}

	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak == 0 {
		return 0
	}

	// Bin k corresponds to frequency k / (n*dt) over the padded length.
	n := len(ps) * 2
	return float64(n) * dt / float64(peak)
}
