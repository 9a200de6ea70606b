package encode

import (
	"io"
	"reflect"
	"sync"

	"github.com/lslk89/xultimate-toolkit/encoding"
	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GetGlobalRegistry returns the process-wide registry, populated on first
// use with every default codec in packed mode.
func GetGlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		r := NewRegistry()
		for _, c := range defaultCodecs {
			r.Register(c.create(true))
		}
		globalRegistry = r
	})
	return globalRegistry
}

// Registry resolves codecs by probing them in registration order; the first
// codec that supports a type wins. Registration is expected to finish
// before the registry is shared.
type Registry struct {
	mu     sync.RWMutex
	codecs []encoding.Codec
}

func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry builds a registry from the default codec set as
// selected by opts.
func NewDefaultRegistry(opts options.Registry) (*Registry, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid registry options")
	}

	names := opts.Codecs
	if len(names) == 0 {
		names = DefaultCodecNames()
	}

	catcher := grip.NewBasicCatcher()
	r := NewRegistry()
	for _, name := range names {
		c, err := NewDefaultCodec(name, opts.ShouldPackZeros())
		if err != nil {
			catcher.Add(err)
			continue
		}
		r.Register(c)
	}
	if catcher.HasErrors() {
		return nil, errors.Wrap(catcher.Resolve(), "building default codecs")
	}

	if opts.Strict {
		if err := r.Validate(ProbeTypes()...); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register appends c to the probe order. Codecs are not de-duplicated, so a
// later codec for an already covered type is shadowed.
func (r *Registry) Register(c encoding.Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs = append(r.codecs, c)

	grip.Debug(message.Fields{
		"message":  "registered codec",
		"codec":    c.String(),
		"position": len(r.codecs) - 1,
	})
}

func (r *Registry) Resolve(t reflect.Type) (encoding.Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t != nil {
		for _, c := range r.codecs {
			if c.Supports(t) {
				return c, nil
			}
		}
	}

	return nil, errors.WithStack(&encoding.NoCodecFoundError{Type: t})
}

// Codecs returns the registered codecs in probe order.
func (r *Registry) Codecs() []encoding.Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]encoding.Codec, len(r.codecs))
	copy(out, r.codecs)
	return out
}

// Validate returns an error naming every type in types that more than one
// registered codec supports.
func (r *Registry) Validate(types ...reflect.Type) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catcher := grip.NewBasicCatcher()
	for _, t := range types {
		var claimed []string
		for _, c := range r.codecs {
			if c.Supports(t) {
				claimed = append(claimed, c.String())
			}
		}
		if len(claimed) > 1 {
			grip.Warning(message.Fields{
				"message": "overlapping codecs",
				"type":    t.String(),
				"codecs":  claimed,
			})
			catcher.Errorf("type '%s' is claimed by codecs %v", t, claimed)
		}
	}

	return errors.Wrap(catcher.Resolve(), "validating codec registry")
}

func (r *Registry) Serialize(v interface{}) ([]byte, error) {
	c, err := r.Resolve(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	return c.Serialize(v)
}

func (r *Registry) SerializeTo(v interface{}, w io.Writer) error {
	c, err := r.Resolve(reflect.TypeOf(v))
	if err != nil {
		return err
	}
	return c.SerializeTo(v, w)
}

func (r *Registry) Deserialize(data []byte, t reflect.Type) (interface{}, error) {
	c, err := r.Resolve(t)
	if err != nil {
		return nil, err
	}
	return c.Deserialize(data, t)
}

func (r *Registry) DeserializeFrom(rd io.Reader, t reflect.Type) (interface{}, error) {
	c, err := r.Resolve(t)
	if err != nil {
		return nil, err
	}
	return c.DeserializeFrom(rd, t)
}
