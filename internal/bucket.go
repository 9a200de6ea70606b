package internal

import (
	"context"

	"github.com/evergreen-ci/pail"
	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/pkg/errors"
)

// CreateBucket opens the bucket described by opts.
func CreateBucket(ctx context.Context, opts options.Bucket) (pail.Bucket, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bucket options")
	}

	var (
		bucket pail.Bucket
		err    error
	)
	switch opts.Type {
	case options.PailS3:
		bucket, err = pail.NewS3Bucket(pail.S3Options{
			Name:        opts.Name,
			Prefix:      opts.Prefix,
			Region:      opts.S3.Region,
			Credentials: pail.CreateAWSCredentials(opts.S3.Key, opts.S3.Secret, ""),
			MaxRetries:  10,
			Compress:    true,
		})
		if err != nil {
			return nil, errors.Wrap(err, "creating AWS S3 backed bucket")
		}
	default:
		bucket, err = pail.NewLocalBucket(pail.LocalOptions{
			Path:   opts.Name,
			Prefix: opts.Prefix,
		})
		if err != nil {
			return nil, errors.Wrap(err, "creating local filesystem backed bucket")
		}
	}

	return bucket, nil
}
