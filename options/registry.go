package options

import (
	"os"

	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Registry configures a codec registry built from the default codec set.
type Registry struct {
	// PackZeros selects packed byte-slice encoding for every numeric
	// codec. Defaults to true. The stream path is never packed.
	PackZeros *bool `bson:"pack_zeros" json:"pack_zeros" yaml:"pack_zeros"`
	// Strict fails registry construction when two codecs claim the same
	// type instead of letting the later one be silently shadowed.
	Strict bool `bson:"strict" json:"strict" yaml:"strict"`
	// Codecs names the default codecs to register, in probe order. An
	// empty list registers all of them.
	Codecs []string `bson:"codecs" json:"codecs" yaml:"codecs"`
}

func (o *Registry) Validate() error {
	catcher := grip.NewBasicCatcher()

	seen := map[string]bool{}
	for _, name := range o.Codecs {
		catcher.NewWhen(name == "", "codec name cannot be empty")
		if seen[name] && name != "" {
			catcher.Errorf("codec '%s' is listed more than once", name)
		}
		seen[name] = true
	}

	if o.PackZeros == nil {
		packZeros := true
		o.PackZeros = &packZeros
	}

	return catcher.Resolve()
}

// ShouldPackZeros reports the effective packing policy.
func (o *Registry) ShouldPackZeros() bool {
	return o.PackZeros == nil || *o.PackZeros
}

// ReadRegistryFile loads and validates registry options from a YAML file.
func ReadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading registry options file '%s'", path)
	}

	opts := &Registry{}
	if err = yaml.Unmarshal(data, opts); err != nil {
		return nil, errors.Wrapf(err, "parsing registry options file '%s'", path)
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid registry options")
	}

	return opts, nil
}
