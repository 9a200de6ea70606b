package options

import (
	"time"

	"github.com/mongodb/grip/send"
	"github.com/pkg/errors"
)

type RecordWriter struct {
	Key string

	// Local sender for errors from background flushes.
	Local send.Sender `bson:"-" json:"-" yaml:"-"`

	// MaxBufferSize is the maximum number of encoded bytes to buffer
	// before flushing a chunk.
	MaxBufferSize int `bson:"max_buffer_size" json:"max_buffer_size" yaml:"max_buffer_size"`
	// FlushInterval is the interval at which to flush buffered records,
	// regardless of whether the max buffer size has been reached or not.
	// Setting FlushInterval to a duration less than 0 will disable timed
	// flushes.
	FlushInterval time.Duration `bson:"flush_interval" json:"flush_interval" yaml:"flush_interval"`
}

func (o RecordWriter) Validate() error {
	if err := ValidateKey(o.Key); err != nil {
		return err
	}
	if o.Local == nil {
		return errors.New("must specify a local sender")
	}

	return nil
}
