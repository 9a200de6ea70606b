package store

import (
	"context"
	"io"

	"github.com/evergreen-ci/pail"
	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/pkg/errors"
)

type bucketReader struct {
	ctx    context.Context
	reader io.ReadCloser
	bucket pail.Bucket
	keys   []string
	keyIdx int
}

// NewRecordReadCloser returns a reader over the raw record chunks stored
// under key, concatenated in write order.
func (s *BucketStore) NewRecordReadCloser(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := options.ValidateKey(key); err != nil {
		return nil, err
	}

	keys, err := listKeys(ctx, s.bucket, recordsKeyPrefix(key))
	if err != nil {
		return nil, errors.Wrap(err, "listing record chunks")
	}

	return &bucketReader{ctx: ctx, bucket: s.bucket, keys: keys}, nil
}

func (r *bucketReader) Read(p []byte) (int, error) {
	for {
		if r.reader == nil {
			if r.keyIdx == len(r.keys) {
				return 0, io.EOF
			}
			if err := r.getNextChunk(); err != nil {
				return 0, err
			}
		}

		n, err := r.reader.Read(p)
		if err != io.EOF {
			return n, err
		}

		if err = r.closeChunk(); err != nil {
			return n, err
		}
		if n > 0 {
			return n, nil
		}
	}
}

func (r *bucketReader) Close() error {
	return r.closeChunk()
}

func (r *bucketReader) closeChunk() error {
	if r.reader == nil {
		return nil
	}

	err := r.reader.Close()
	r.reader = nil

	return errors.Wrap(err, "closing record chunk")
}

func (r *bucketReader) getNextChunk() error {
	reader, err := r.bucket.Get(r.ctx, r.keys[r.keyIdx])
	if err != nil {
		return errors.Wrap(err, "getting next record chunk")
	}

	r.reader = reader
	r.keyIdx++

	return nil
}
