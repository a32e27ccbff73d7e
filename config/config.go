// SPDX-License-Identifier: MIT

// Package config loads classification documents from YAML.
//
// A document names one or more classifications over the same input:
//
//	log_level: info
//	input:
//	  column: 2
//	  header: true
//	classifications:
//	  - name: fill
//	    algorithm: natural
//	    classes: 5
//	    stops: [[255, 255, 204], [65, 182, 196], [37, 52, 148]]
//	  - name: size
//	    breaks: [0, 1000, 10000, 100000]
//	    stops: [2, 12]
//	    out_of_range: drop
//
// Stops may be scalars or equal-length sequences. Either algorithm or breaks
// must be given, not both. Documents are validated on load.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/choropleth/breaks"
	"github.com/katalvlaran/choropleth/classify"
	"github.com/katalvlaran/choropleth/interp"
	"github.com/katalvlaran/choropleth/split"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// File is a whole configuration document.
type File struct {
	LogLevel        string           `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Input           Input            `yaml:"input"`
	Classifications []Classification `yaml:"classifications" validate:"required,min=1,dive"`
}

// Input describes how records are read.
type Input struct {
	// Column is the zero-based CSV column holding the value.
	Column int `yaml:"column" validate:"gte=0"`
	// Header skips the first record.
	Header bool `yaml:"header"`
	// Delimiter is a single-character field separator; "," when empty.
	Delimiter string `yaml:"delimiter" validate:"omitempty,len=1"`
}

// Classification is one named classification.
type Classification struct {
	Name           string    `yaml:"name" validate:"required"`
	Algorithm      string    `yaml:"algorithm" validate:"required_without=Breaks,excluded_with=Breaks,algorithm"`
	Classes        int       `yaml:"classes" validate:"gte=0"`
	Breaks         []float64 `yaml:"breaks" validate:"omitempty,min=2"`
	Stops          []Stop    `yaml:"stops" validate:"required,min=1,dive,min=1"`
	HeadTailRatio  float64   `yaml:"head_tail_ratio" validate:"gte=0,lte=1"`
	SampleStdDev   bool      `yaml:"sample_stdev"`
	OutOfRange     string    `yaml:"out_of_range" validate:"omitempty,oneof=reject drop"`
	DiscardInvalid bool      `yaml:"discard_invalid"`
}

// Stop is a value stop: a YAML scalar or a sequence of numbers.
type Stop []float64

// UnmarshalYAML accepts `5` as well as `[255, 0, 0]`.
func (s *Stop) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		*s = Stop{f}
	case yaml.SequenceNode:
		var fs []float64
		if err := n.Decode(&fs); err != nil {
			return err
		}
		*s = fs
	default:
		return fmt.Errorf("line %d: stop must be a number or a list of numbers", n.Line)
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" {
			return true
		}
		_, err := breaks.ParseAlgorithm(name)
		return err == nil
	})

	return v
}

// Load reads and validates the document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate runs the struct tags plus the cross-field rules tags cannot express.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(f.Classifications))
	for _, c := range f.Classifications {
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate classification %q", ErrInvalidConfig, c.Name)
		}
		seen[c.Name] = true
		if _, err := interp.Shape(c.ValueStops()); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidConfig, c.Name, err)
		}
	}

	return nil
}

// Spec returns the break specification of c.
func (c Classification) Spec() (classify.BreaksSpec, error) {
	if len(c.Breaks) > 0 {
		return classify.ByBreaks(c.Breaks), nil
	}
	return classify.ByName(c.Algorithm, c.BreakOptions()...)
}

// BreakOptions translates the algorithm parameters.
func (c Classification) BreakOptions() []breaks.Option {
	var opts []breaks.Option
	if c.Classes > 0 {
		opts = append(opts, breaks.WithClasses(c.Classes))
	}
	if c.HeadTailRatio > 0 {
		opts = append(opts, breaks.WithHeadTailRatio(c.HeadTailRatio))
	}
	if c.SampleStdDev {
		opts = append(opts, breaks.WithSampleStdDev())
	}
	return opts
}

// Options translates the classifier settings.
func (c Classification) Options() []classify.Option {
	var opts []classify.Option
	if c.OutOfRange == split.Drop.String() {
		opts = append(opts, classify.WithOutOfRange(split.Drop))
	}
	if c.DiscardInvalid {
		opts = append(opts, classify.WithDiscardInvalid())
	}
	return opts
}

// ValueStops converts the stops to interp values.
func (c Classification) ValueStops() []interp.Value {
	out := make([]interp.Value, len(c.Stops))
	for i, s := range c.Stops {
		out[i] = interp.Tuple(s...)
	}
	return out
}
