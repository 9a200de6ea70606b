package store

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/cockroachdb/pebble"
	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

// PebbleStore keeps encoded values and record chunks in an embedded pebble
// database using the same key layout as BucketStore.
type PebbleStore struct {
	db        *pebble.DB
	registry  Registry
	writeOpts *pebble.WriteOptions
}

func NewPebbleStore(opts options.Pebble, registry Registry) (*PebbleStore, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pebble options")
	}
	if registry == nil {
		return nil, errors.New("must provide a codec registry")
	}

	db, err := pebble.Open(opts.Path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "opening pebble database '%s'", opts.Path)
	}

	writeOpts := pebble.NoSync
	if opts.Sync {
		writeOpts = pebble.Sync
	}

	return &PebbleStore{
		db:        db,
		registry:  registry,
		writeOpts: writeOpts,
	}, nil
}

func (s *PebbleStore) Close() error {
	return errors.Wrap(s.db.Close(), "closing pebble database")
}

func (s *PebbleStore) Put(_ context.Context, opts options.Put) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	data, err := s.registry.Serialize(opts.Value)
	if err != nil {
		return errors.Wrapf(err, "encoding value for '%s'", opts.Key)
	}

	return errors.Wrap(s.db.Set([]byte(valueKey(opts.Key)), data, s.writeOpts), "writing value")
}

func (s *PebbleStore) Get(_ context.Context, opts options.Get) (interface{}, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	data, err := s.get([]byte(valueKey(opts.Key)))
	if err != nil {
		return nil, errors.Wrapf(err, "getting value '%s'", opts.Key)
	}

	return s.registry.Deserialize(data, opts.Type)
}

func (s *PebbleStore) get(key []byte) ([]byte, error) {
	data, closer, err := s.db.Get(key)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func (s *PebbleStore) PutRecords(_ context.Context, opts options.PutRecords) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	data, info, err := encodeChunk(s.registry, opts.Key, opts.Values)
	if err != nil {
		return errors.Wrapf(err, "encoding records for '%s'", opts.Key)
	}

	meta, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "marshaling chunk metadata")
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	if err = batch.Set([]byte(recordsKeyPrefix(opts.Key)+info.Chunk), data, nil); err != nil {
		return errors.Wrap(err, "staging record chunk")
	}
	if err = batch.Set([]byte(metadataKeyPrefix(opts.Key)+info.Chunk), meta, nil); err != nil {
		return errors.Wrap(err, "staging chunk metadata")
	}
	if err = batch.Commit(s.writeOpts); err != nil {
		return errors.Wrap(err, "committing record chunk")
	}

	grip.Debug(message.Fields{
		"message": "wrote record chunk",
		"key":     opts.Key,
		"chunk":   info.Chunk,
		"codec":   info.Codec,
		"count":   info.Count,
	})

	return nil
}

func (s *PebbleStore) GetRecords(ctx context.Context, opts options.GetRecords) ([]interface{}, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	chunks, err := s.Metadata(ctx, opts.Key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = s.scan(recordsKeyPrefix(opts.Key), func(value []byte) error {
		_, err := buf.Write(value)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading record chunks")
	}

	records, err := decodeRecords(s.registry, &buf, opts.Type, chunks)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding records for '%s'", opts.Key)
	}

	return records, nil
}

func (s *PebbleStore) Metadata(_ context.Context, key string) ([]ChunkInfo, error) {
	if err := options.ValidateKey(key); err != nil {
		return nil, err
	}

	var out []ChunkInfo
	err := s.scan(metadataKeyPrefix(key), func(value []byte) error {
		info := ChunkInfo{}
		if err := json.Unmarshal(value, &info); err != nil {
			return errors.Wrap(err, "decoding chunk metadata")
		}
		out = append(out, info)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// scan calls fn with every value whose key starts with prefix, in key order.
func (s *PebbleStore) scan(prefix string, fn func([]byte) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: upperBound([]byte(prefix)),
	})
	if err != nil {
		return errors.Wrap(err, "creating iterator")
	}

	for iter.First(); iter.Valid(); iter.Next() {
		if err = fn(iter.Value()); err != nil {
			break
		}
	}
	if err == nil {
		err = iter.Error()
	}
	if cerr := iter.Close(); err == nil {
		err = cerr
	}

	return errors.WithStack(err)
}

// upperBound returns the smallest key greater than every key with prefix.
func upperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
