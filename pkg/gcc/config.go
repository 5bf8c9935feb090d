package gcc

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Variant selects which GCC propagator a Config should post.
type Variant string

const (
	VariantVal Variant = "val"
	VariantBnd Variant = "bnd"
	VariantDom Variant = "dom"
)

// Config holds the posting options an embedding application typically
// loads from its own weakly-typed configuration (YAML/JSON unmarshaled
// into map[string]interface{}) rather than hand-assembling Go structs.
type Config struct {
	Variant Variant `mapstructure:"variant"`
	// All removes, at post time, any value absent from the cardinality
	// list from every variable's domain.
	All bool `mapstructure:"all"`
	// ForceSkipLbc overrides BndPropagator's own skip_lbc inference,
	// useful for benchmarking the cost of the lower-bound sweep.
	ForceSkipLbc bool `mapstructure:"force_skip_lbc"`
}

// DefaultConfig returns the Dom variant with "all" pruning enabled, the
// strongest and safest default for a caller that hasn't opted into a
// cheaper variant.
func DefaultConfig() Config {
	return Config{Variant: VariantDom, All: true}
}

// DecodeConfig decodes a weakly-typed map (as produced by unmarshaling
// YAML or JSON) into a Config, starting from DefaultConfig so omitted
// fields keep their defaults.
func DecodeConfig(raw map[string]interface{}) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("gcc: building config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: decoding config: %v", ErrInvalidArgument, err)
	}
	switch cfg.Variant {
	case VariantVal, VariantBnd, VariantDom:
	default:
		return Config{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, cfg.Variant)
	}
	return cfg, nil
}

// Post posts the variant named by cfg, returning a propagator usable
// through the Propagate method each concrete type exposes. The returned
// value is one of *ValPropagator, *BndPropagator, or *DomPropagator.
func (cfg Config) Post(views []IntView, cards []*Card) (interface{}, error) {
	switch cfg.Variant {
	case VariantVal:
		return PostVal(views, cards, cfg.All)
	case VariantBnd:
		p, err := PostBnd(views, cards, cfg.All)
		if err != nil {
			return nil, err
		}
		if cfg.ForceSkipLbc {
			p.skipLbc = true
		}
		return p, nil
	case VariantDom:
		return PostDom(views, cards, cfg.All)
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, cfg.Variant)
	}
}
