package filegen

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/soupkit/pkg/code"
	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/logger"
	"github.com/dmitrymomot/soupkit/pkg/phrase"
	"github.com/dmitrymomot/soupkit/pkg/storage"
	"github.com/dmitrymomot/soupkit/pkg/text"
)

const numberDigits = 4

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report written files.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// Generator renders documents.
type Generator struct {
	text   *text.Generator
	phrase *phrase.Generator
	code   *code.Generator
	log    *slog.Logger
}

// New creates a document Generator sampling through tg.
func New(tg *text.Generator, opts ...Option) *Generator {
	g := &Generator{
		text:   tg,
		phrase: phrase.New(tg),
		code:   code.New(tg),
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("filegen"))
	return g
}

// CSV returns a header row of column names followed by rows of data.
// Each column holds either words or numbers.
func (g *Generator) CSV(columns, rows int) ([]byte, error) {
	if err := nonNegative("columns", columns); err != nil {
		return nil, err
	}
	if err := nonNegative("rows", rows); err != nil {
		return nil, err
	}

	header, err := g.keys(columns)
	if err != nil {
		return nil, err
	}
	numeric := make([]bool, columns)
	for i := range numeric {
		numeric[i] = g.text.Intn(2) == 1
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if columns > 0 {
		if err := w.Write(header); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	}
	for range rows {
		record := make([]string, columns)
		for i := range record {
			if numeric[i] {
				record[i], err = g.text.Number(numberDigits)
			} else {
				record[i], err = g.text.Pick(library.Nouns)
			}
			if err != nil {
				return nil, err
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// INI returns sections of "key = value" lines.
func (g *Generator) INI(sections, keys int) ([]byte, error) {
	if err := nonNegative("sections", sections); err != nil {
		return nil, err
	}
	if err := nonNegative("keys", keys); err != nil {
		return nil, err
	}

	names, err := g.keys(sections)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i, section := range names {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[%s]\n", section)

		ks, err := g.keys(keys)
		if err != nil {
			return nil, err
		}
		for _, k := range ks {
			v, err := g.scalar()
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(&buf, "%s = %v\n", k, v)
		}
	}
	return buf.Bytes(), nil
}

// YAML returns a mapping document with the given number of keys.
// Keys keep their generation order.
func (g *Generator) YAML(keys int) ([]byte, error) {
	if err := nonNegative("keys", keys); err != nil {
		return nil, err
	}
	ks, err := g.keys(keys)
	if err != nil {
		return nil, err
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range ks {
		v, err := g.scalar()
		if err != nil {
			return nil, err
		}
		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// JSON returns an indented object with the given number of keys.
func (g *Generator) JSON(keys int) ([]byte, error) {
	if err := nonNegative("keys", keys); err != nil {
		return nil, err
	}
	ks, err := g.keys(keys)
	if err != nil {
		return nil, err
	}

	obj := make(map[string]any, len(ks))
	for _, k := range ks {
		if obj[k], err = g.scalar(); err != nil {
			return nil, err
		}
	}
	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return append(out, '\n'), nil
}

// Write stores content at path atomically.
func (g *Generator) Write(path string, content []byte) error {
	if err := storage.WriteFileAtomic(path, content, 0o644); err != nil {
		g.log.Warn("document write failed", logger.Path(path), logger.Error(err))
		return err
	}
	g.log.Debug("document written", logger.Path(path), slog.Int("bytes", len(content)))
	return nil
}

// Upload stores content in st under key. The content type follows the key's
// extension.
func (g *Generator) Upload(ctx context.Context, st storage.Storage, key string, content []byte) (*storage.Object, error) {
	obj, err := st.Put(ctx, key, bytes.NewReader(content), "")
	if err != nil {
		g.log.Warn("document upload failed", logger.Path(key), logger.Error(err))
		return nil, err
	}
	return obj, nil
}

// keys returns n distinct snake_case identifiers.
func (g *Generator) keys(n int) ([]string, error) {
	out := make([]string, 0, n)
	seen := make(map[string]int, n)
	for range n {
		k, err := g.code.Identifier(code.SnakeCase)
		if err != nil {
			return nil, err
		}
		seen[k]++
		if c := seen[k]; c > 1 {
			k += "_" + strconv.Itoa(c)
		}
		out = append(out, k)
	}
	return out, nil
}

// scalar returns a word, an integer or a phrase.
func (g *Generator) scalar() (any, error) {
	switch g.text.Intn(3) {
	case 0:
		return g.text.Pick(library.Nouns)
	case 1:
		return g.text.Intn(10000), nil
	default:
		return g.phrase.Random()
	}
}

func nonNegative(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidArgument, name, n)
	}
	return nil
}
