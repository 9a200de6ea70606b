package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"sort"
	"strings"
	"sync"

	"github.com/evergreen-ci/pail"
	"github.com/lslk89/xultimate-toolkit/internal"
	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

// BucketStore keeps encoded values and record chunks in a Pail bucket, with
// a JSON description of every chunk alongside.
type BucketStore struct {
	mu       sync.Mutex
	bucket   pail.Bucket
	registry Registry
}

func NewBucketStore(ctx context.Context, opts options.Bucket, registry Registry) (*BucketStore, error) {
	if registry == nil {
		return nil, errors.New("must provide a codec registry")
	}

	bucket, err := internal.CreateBucket(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "creating store bucket")
	}

	return &BucketStore{
		bucket:   bucket,
		registry: registry,
	}, nil
}

func (s *BucketStore) Put(ctx context.Context, opts options.Put) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	data, err := s.registry.Serialize(opts.Value)
	if err != nil {
		return errors.Wrapf(err, "encoding value for '%s'", opts.Key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Wrap(s.bucket.Put(ctx, valueKey(opts.Key), bytes.NewReader(data)), "uploading value")
}

func (s *BucketStore) Get(ctx context.Context, opts options.Get) (interface{}, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r, err := s.bucket.Get(ctx, valueKey(opts.Key))
	if err != nil {
		return nil, errors.Wrapf(err, "getting value '%s'", opts.Key)
	}
	defer r.Close()

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading value '%s'", opts.Key)
	}

	return s.registry.Deserialize(data, opts.Type)
}

func (s *BucketStore) PutRecords(ctx context.Context, opts options.PutRecords) error {
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

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.bucket.Put(ctx, recordsKeyPrefix(opts.Key)+info.Chunk, bytes.NewReader(data)); err != nil {
		return errors.Wrap(err, "uploading record chunk")
	}
	if err = s.bucket.Put(ctx, metadataKeyPrefix(opts.Key)+info.Chunk, bytes.NewReader(meta)); err != nil {
		return errors.Wrap(err, "uploading chunk metadata")
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

func (s *BucketStore) GetRecords(ctx context.Context, opts options.GetRecords) ([]interface{}, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	chunks, err := s.Metadata(ctx, opts.Key)
	if err != nil {
		return nil, err
	}

	r, err := s.NewRecordReadCloser(ctx, opts.Key)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	records, err := decodeRecords(s.registry, r, opts.Type, chunks)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding records for '%s'", opts.Key)
	}

	return records, nil
}

func (s *BucketStore) Metadata(ctx context.Context, key string) ([]ChunkInfo, error) {
	if err := options.ValidateKey(key); err != nil {
		return nil, err
	}

	keys, err := listKeys(ctx, s.bucket, metadataKeyPrefix(key))
	if err != nil {
		return nil, err
	}

	out := make([]ChunkInfo, 0, len(keys))
	for _, k := range keys {
		r, err := s.bucket.Get(ctx, k)
		if err != nil {
			return nil, errors.Wrapf(err, "getting chunk metadata '%s'", k)
		}

		info := ChunkInfo{}
		err = json.NewDecoder(r).Decode(&info)
		grip.Warning(message.WrapError(r.Close(), message.Fields{
			"message": "closing chunk metadata",
			"key":     k,
		}))
		if err != nil {
			return nil, errors.Wrapf(err, "decoding chunk metadata '%s'", k)
		}

		out = append(out, info)
	}

	return out, nil
}

// listKeys returns the sorted keys in bucket that start with prefix.
func listKeys(ctx context.Context, bucket pail.Bucket, prefix string) ([]string, error) {
	it, err := bucket.List(ctx, prefix)
	if err != nil {
		return nil, errors.Wrap(err, "listing keys")
	}

	var keys []string
	for it.Next(ctx) {
		name := it.Item().Name()
		if strings.HasPrefix(name, prefix) {
			keys = append(keys, name)
		}
	}
	if err = it.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating keys")
	}

	sort.Strings(keys)

	return keys, nil
}
