package store

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/lslk89/xultimate-toolkit/encoding"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

const (
	valuesPrefix   = "values"
	recordsPrefix  = "records"
	metadataPrefix = "metadata"
)

func valueKey(key string) string { return valuesPrefix + "/" + key }

func recordsKeyPrefix(key string) string { return recordsPrefix + "/" + key + "/" }

func metadataKeyPrefix(key string) string { return metadataPrefix + "/" + key + "/" }

// Chunk names sort in creation order.
func newChunkName() string {
	return fmt.Sprintf("%019d.%s", time.Now().UnixNano(), ksuid.New().String())
}

// encodeChunk writes values back to back in their fixed-width form. Nothing
// is returned unless every value encodes.
func encodeChunk(registry Registry, key string, values []interface{}) ([]byte, ChunkInfo, error) {
	t := reflect.TypeOf(values[0])
	codec, err := registry.Resolve(t)
	if err != nil {
		return nil, ChunkInfo{}, err
	}
	if codec.ByteSize() <= 0 {
		return nil, ChunkInfo{}, errors.Errorf("codec '%s' has no fixed width", codec)
	}

	var buf bytes.Buffer
	buf.Grow(codec.ByteSize() * len(values))
	for _, v := range values {
		if err = codec.SerializeTo(v, &buf); err != nil {
			return nil, ChunkInfo{}, err
		}
	}

	return buf.Bytes(), ChunkInfo{
		Key:       key,
		Chunk:     newChunkName(),
		Codec:     codec.String(),
		Type:      t.String(),
		ByteSize:  codec.ByteSize(),
		Count:     len(values),
		CreatedAt: time.Now(),
	}, nil
}

// decodeRecords reads the fixed-width records of type t described by chunks
// from r. Every chunk must have been written with the width and type t
// resolves to, and r must hold exactly the records the chunks count.
func decodeRecords(registry Registry, r io.Reader, t reflect.Type, chunks []ChunkInfo) ([]interface{}, error) {
	codec, err := registry.Resolve(t)
	if err != nil {
		return nil, err
	}
	if codec.ByteSize() <= 0 {
		return nil, errors.Errorf("codec '%s' has no fixed width", codec)
	}

	want := recordType(t)
	total := 0
	for _, info := range chunks {
		if info.ByteSize != codec.ByteSize() || strings.TrimPrefix(info.Type, "*") != want {
			return nil, encoding.NewDeserializationError(t, nil, fmt.Sprintf(
				"chunk '%s' holds %d-byte '%s' records, not %d-byte '%s'",
				info.Chunk, info.ByteSize, info.Type, codec.ByteSize(), want))
		}
		total += info.Count
	}

	out := make([]interface{}, 0, total)
	for {
		v, err := codec.DeserializeFrom(r, t)
		if encoding.IsEndOfInput(err) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	if len(out) != total {
		return nil, encoding.NewDeserializationError(t, nil, fmt.Sprintf(
			"found %d records, chunk metadata describes %d", len(out), total))
	}

	return out, nil
}

// recordType names the value type records of t are stored as.
func recordType(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}
