package audiogen

import (
	"fmt"
	"time"
)

// Waveform selects how samples are synthesized.
type Waveform string

const (
	Sine  Waveform = "sine"
	Noise Waveform = "noise"
)

const (
	DefaultDuration   = time.Second
	DefaultSampleRate = 44100
	DefaultFrequency  = 440.0
	DefaultAmplitude  = 0.5

	// BitDepth and Channels are fixed: 16-bit signed mono PCM.
	BitDepth = 16
	Channels = 1

	// MaxSampleRate and MaxSamples bound a clip so its sample count
	// cannot overflow and its WAV data chunk stays well under 4 GiB.
	MaxSampleRate = 384000
	MaxSamples    = 1 << 27
)

// Options describes a clip.
type Options struct {
	Duration   time.Duration
	SampleRate int
	Frequency  float64
	Amplitude  float64 // in (0, 1], fraction of full scale
	Waveform   Waveform
}

// withDefaults fills zero fields and validates the result.
func (o Options) withDefaults() (Options, error) {
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Frequency == 0 {
		o.Frequency = DefaultFrequency
	}
	if o.Amplitude == 0 {
		o.Amplitude = DefaultAmplitude
	}
	if o.Waveform == "" {
		o.Waveform = Sine
	}

	switch {
	case o.Duration < 0:
		return o, fmt.Errorf("%w: negative duration %s", ErrInvalidArgument, o.Duration)
	case o.SampleRate < 0 || o.SampleRate > MaxSampleRate:
		return o, fmt.Errorf("%w: sample rate must be in (0, %d], got %d", ErrInvalidArgument, MaxSampleRate, o.SampleRate)
	case o.Duration > time.Duration(MaxSamples)*time.Second/time.Duration(o.SampleRate):
		return o, fmt.Errorf("%w: clip of %s at %d Hz exceeds %d samples", ErrInvalidArgument, o.Duration, o.SampleRate, MaxSamples)
	case o.Frequency < 0:
		return o, fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidArgument, o.Frequency)
	case o.Amplitude < 0 || o.Amplitude > 1:
		return o, fmt.Errorf("%w: amplitude must be in (0, 1], got %g", ErrInvalidArgument, o.Amplitude)
	case o.Waveform != Sine && o.Waveform != Noise:
		return o, fmt.Errorf("%w: unknown waveform %q", ErrInvalidArgument, o.Waveform)
	}
	return o, nil
}

// SampleCount returns the number of samples the clip holds.
// It assumes options within MaxSampleRate and MaxSamples.
func (o Options) SampleCount() int {
	return int(int64(o.Duration) * int64(o.SampleRate) / int64(time.Second))
}
