// Package bpm estimates the static tempo of an audio file. Decoding is
// delegated to an ffmpeg subprocess; the tempo itself is derived from the
// autocorrelation of the onset energy envelope.
package bpm

import (
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
)

const (
	// SampleRate used for analysis. Tempo detection does not need full
	// bandwidth, so files are downsampled on decode.
	SampleRate = 22050

	frameSize = 1024
	hopSize   = 512

	minBPM = 60.0
	maxBPM = 180.0
)

// CheckFFmpeg checks if ffmpeg is installed and available in the system's PATH.
func CheckFFmpeg() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}

// EstimateFile decodes an audio file to mono PCM and estimates its tempo
// in beats per minute.
func EstimateFile(path string) (float64, error) {
	samples, err := decode(path)
	if err != nil {
		return 0, err
	}
	return Estimate(samples, SampleRate)
}

// decode runs ffmpeg to turn any supported container into raw mono
// 16-bit PCM on stdout.
func decode(path string) ([]float64, error) {
	cmd := exec.Command("ffmpeg",
		"-v", "quiet",
		"-i", path,
		"-f", "s16le",
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", SampleRate),
		"pipe:1",
	)
	raw, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s with ffmpeg: %w", path, err)
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		samples[i] = float64(v) / 32768.0
	}
	return samples, nil
}

// Estimate computes a static tempo from raw mono samples. The onset
// envelope is the positive energy flux between consecutive frames; its
// autocorrelation peaks at the beat period. The result is clamped to
// the 60-180 BPM range.
func Estimate(samples []float64, sampleRate int) (float64, error) {
	if len(samples) < frameSize*4 {
		return 0, fmt.Errorf("audio too short for tempo estimation: %d samples", len(samples))
	}

	flux := onsetEnvelope(samples)

	minLag := int(float64(sampleRate) * 60.0 / (float64(hopSize) * maxBPM))
	maxLag := int(math.Ceil(float64(sampleRate) * 60.0 / (float64(hopSize) * minBPM)))
	if maxLag >= len(flux) {
		return 0, fmt.Errorf("audio too short for tempo estimation: %d frames", len(flux))
	}

	bestLag := 0
	bestScore := 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		var sum float64
		for i := 0; i+lag < len(flux); i++ {
			sum += flux[i] * flux[i+lag]
		}
		score := sum / float64(len(flux)-lag)
		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}

	if bestLag == 0 || bestScore == 0 {
		return 0, fmt.Errorf("no rhythmic energy detected")
	}
	return 60.0 * float64(sampleRate) / (float64(hopSize) * float64(bestLag)), nil
}

// onsetEnvelope computes the half-wave rectified energy flux per hop,
// lightly smoothed to tolerate one-frame jitter.
func onsetEnvelope(samples []float64) []float64 {
	var energies []float64
	for start := 0; start+frameSize <= len(samples); start += hopSize {
		var e float64
		for _, s := range samples[start : start+frameSize] {
			e += s * s
		}
		energies = append(energies, e)
	}

	flux := make([]float64, len(energies))
	for i := 1; i < len(energies); i++ {
		if d := energies[i] - energies[i-1]; d > 0 {
			flux[i] = d
		}
	}

	// 3-point moving average
	smoothed := make([]float64, len(flux))
	for i := range flux {
		sum, n := flux[i], 1.0
		if i > 0 {
			sum += flux[i-1]
			n++
		}
		if i < len(flux)-1 {
			sum += flux[i+1]
			n++
		}
		smoothed[i] = sum / n
	}
	return smoothed
}
