package options

import (
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
)

const defaultS3Region = "us-east-1"

type PailType string

const (
	PailS3    PailType = "s3"
	PailLocal PailType = "local"
)

func (t PailType) validate() error {
	switch t {
	case PailS3, PailLocal:
		return nil
	default:
		return errors.Errorf("unrecognized Pail type '%s'", t)
	}
}

// Bucket describes where a bucket store keeps its encoded values. Name is
// the S3 bucket name or, for local buckets, the root directory.
type Bucket struct {
	Type   PailType  `bson:"type" json:"type" yaml:"type"`
	Name   string    `bson:"name" json:"name" yaml:"name"`
	Prefix string    `bson:"prefix" json:"prefix" yaml:"prefix"`
	S3     *S3Bucket `bson:"s3,omitempty" json:"s3,omitempty" yaml:"s3,omitempty"`
}

func (o *Bucket) Validate() error {
	if o.Type == "" {
		o.Type = PailLocal
	}

	catcher := grip.NewBasicCatcher()
	catcher.Add(o.Type.validate())
	catcher.NewWhen(o.Name == "", "must specify bucket name")

	if o.Type == PailS3 {
		catcher.Add(o.S3.validate())
	}

	return catcher.Resolve()
}

type S3Bucket struct {
	Key    string `bson:"key" json:"key" yaml:"key"`
	Secret string `bson:"secret" json:"secret" yaml:"secret"`
	Region string `bson:"region" json:"region" yaml:"region"`
}

func (o *S3Bucket) validate() error {
	if o == nil {
		return errors.New("must specify S3 bucket options")
	}

	catcher := grip.NewBasicCatcher()
	catcher.NewWhen(o.Key == "", "must specify AWS S3 key")
	catcher.NewWhen(o.Secret == "", "must specify AWS S3 secret")

	if o.Region == "" {
		o.Region = defaultS3Region
	}

	return catcher.Resolve()
}

// Pebble configures a store backed by an embedded pebble database.
type Pebble struct {
	Path string `bson:"path" json:"path" yaml:"path"`
	// Sync forces every write to be synced to disk before returning.
	Sync bool `bson:"sync" json:"sync" yaml:"sync"`
}

func (o Pebble) Validate() error {
	if o.Path == "" {
		return errors.New("must specify a pebble database path")
	}

	return nil
}
