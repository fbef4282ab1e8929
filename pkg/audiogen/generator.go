package audiogen

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/dmitrymomot/soupkit/pkg/logger"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/storage"
)

const (
	fullScale = math.MaxInt16
	pcmFormat = 1 // WAVE_FORMAT_PCM
)

// Generator synthesizes audio clips.
type Generator struct {
	src rng.Source
	log *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source used by the Noise waveform.
func WithSource(src rng.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithLogger sets the logger used to report written files.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates an audio Generator.
func New(opts ...Option) *Generator {
	g := &Generator{src: rng.Default(), log: logger.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("audiogen"))
	return g
}

// Samples returns the clip's 16-bit PCM samples.
func (g *Generator) Samples(opts Options) ([]int, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return g.samples(o), nil
}

// WAV returns the clip encoded as a WAV file.
func (g *Generator) WAV(opts Options) ([]byte, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	buf := &seekBuffer{}
	enc := wav.NewEncoder(buf, o.SampleRate, BitDepth, Channels, pcmFormat)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: Channels, SampleRate: o.SampleRate},
		Data:           g.samples(o),
		SourceBitDepth: BitDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	// Close patches the RIFF and data chunk sizes in the header.
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// WriteWAV writes the clip to path atomically.
func (g *Generator) WriteWAV(path string, opts Options) error {
	data, err := g.WAV(opts)
	if err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(path, data, 0o644); err != nil {
		g.log.Warn("audio write failed", logger.Path(path), logger.Error(err))
		return err
	}
	g.log.Debug("audio written", logger.Path(path), slog.Int("bytes", len(data)))
	return nil
}

// Upload stores the clip in st under key.
func (g *Generator) Upload(ctx context.Context, st storage.Storage, key string, opts Options) (*storage.Object, error) {
	data, err := g.WAV(opts)
	if err != nil {
		return nil, err
	}
	obj, err := st.Put(ctx, key, newReader(data), "audio/wav")
	if err != nil {
		g.log.Warn("audio upload failed", logger.Path(key), logger.Error(err))
		return nil, err
	}
	return obj, nil
}

func (g *Generator) samples(o Options) []int {
	n := o.SampleCount()
	peak := o.Amplitude * fullScale
	out := make([]int, n)

	switch o.Waveform {
	case Noise:
		for i := range out {
			out[i] = int(math.Round((2*g.src.Float64() - 1) * peak))
		}
	default:
		step := 2 * math.Pi * o.Frequency / float64(o.SampleRate)
		for i := range out {
			out[i] = int(math.Round(math.Sin(step*float64(i)) * peak))
		}
	}
	return out
}
