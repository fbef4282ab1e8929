// Package audiogen synthesizes placeholder audio clips and writes them as
// WAV files: 16-bit signed PCM, mono.
//
// Options control duration, sample rate, tone frequency, amplitude and the
// waveform. A Sine clip is a pure tone; a Noise clip draws every sample
// uniformly from the generator's random source. Zero-valued options take the
// defaults (1s, 44100 Hz, 440 Hz, amplitude 0.5, Sine).
//
//	gen := audiogen.New()
//	err := gen.WriteWAV("out/beep.wav", audiogen.Options{Duration: 250 * time.Millisecond})
//
// Encoding happens in memory through github.com/go-audio/wav and the file is
// written atomically, as with imagegen.
package audiogen
