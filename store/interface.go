package store

import (
	"context"

	"github.com/lslk89/xultimate-toolkit/encoding"
	"github.com/lslk89/xultimate-toolkit/options"
)

// Registry resolves codecs and serializes through them.
type Registry interface {
	encoding.CodecRegistry
	encoding.Serializer
}

// Store persists encoded values. Single values use the byte-slice encoding;
// records are appended as chunks of fixed-width stream encodings.
type Store interface {
	Put(context.Context, options.Put) error
	Get(context.Context, options.Get) (interface{}, error)
	PutRecords(context.Context, options.PutRecords) error
	GetRecords(context.Context, options.GetRecords) ([]interface{}, error)
	Metadata(context.Context, string) ([]ChunkInfo, error)
}
