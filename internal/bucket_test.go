package internal

import (
	"bytes"
	"context"
	"io/ioutil"
	"testing"

	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBucket(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("InvalidOptions", func(t *testing.T) {
		_, err := CreateBucket(ctx, options.Bucket{Type: "gcs", Name: "x"})
		assert.Error(t, err)

		_, err = CreateBucket(ctx, options.Bucket{Type: options.PailS3, Name: "x"})
		assert.Error(t, err)
	})
	t.Run("LocalDefault", func(t *testing.T) {
		bucket, err := CreateBucket(ctx, options.Bucket{Name: t.TempDir(), Prefix: "codec"})
		require.NoError(t, err)

		require.NoError(t, bucket.Put(ctx, "value", bytes.NewReader([]byte{0x01, 0x00})))
		r, err := bucket.Get(ctx, "value")
		require.NoError(t, err)
		defer r.Close()

		data, err := ioutil.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x00}, data)
	})
}
