package producttype_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"sync-actions/core/storage/mocks"
	"sync-actions/feature/producttype"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func noSuchKey() error {
	return minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
}

func TestSnapshotStore_ObjectName(t *testing.T) {
	store := producttype.NewSnapshotStore(new(mocks.Client), "bucket", "/product-types/", nil)

	assert.Equal(t, "product-types/v1.json", store.ObjectName("v1.json"))
	assert.Equal(t, "product-types/v1.json", store.ObjectName("product-types/v1.json"))
	assert.Equal(t, "product-types/a/b.yaml", store.ObjectName("/a/b.yaml"))

	bare := producttype.NewSnapshotStore(new(mocks.Client), "bucket", "", nil)
	assert.Equal(t, "v1.json", bare.ObjectName("v1.json"))
}

func TestSnapshotStore_Load(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "pt/v1.yaml", mock.Anything).
		Return(body("name: shirts\nattributes:\n  - name: color\n    type:\n      name: enum\n"), nil).Once()
	client.On("GetObject", mock.Anything, "bucket", "pt/v2.json", mock.Anything).
		Return(body(`{"name": "shirts", "version": 2}`), nil).Once()

	store := producttype.NewSnapshotStore(client, "bucket", "pt", nil)

	doc, err := store.Load(context.Background(), "v1.yaml")
	require.NoError(t, err)
	assert.Equal(t, "shirts", doc["name"])
	assert.Len(t, doc["attributes"], 1)

	doc, err = store.Load(context.Background(), "v2.json")
	require.NoError(t, err)
	assert.Equal(t, float64(2), doc["version"])

	client.AssertExpectations(t)
}

func TestSnapshotStore_LoadCancelledCallerDoesNotCancelDownload(t *testing.T) {
	release := make(chan time.Time)
	fetched := make(chan error, 1)

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "pt/v1.json", mock.Anything).
		WaitUntil(release).
		Run(func(args mock.Arguments) {
			fetched <- args.Get(0).(context.Context).Err()
		}).
		Return(body(`{"name": "shirts"}`), nil).Once()

	store := producttype.NewSnapshotStore(client, "bucket", "pt", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Load(ctx, "v1.json")
	assert.ErrorIs(t, err, context.Canceled)

	// The download started by the cancelled caller still runs to completion
	// under a live context, so concurrent callers sharing it are unaffected.
	close(release)
	assert.NoError(t, <-fetched)
	client.AssertExpectations(t)
}

func TestSnapshotStore_LoadErrors(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "missing.json", mock.Anything).
		Return(nil, noSuchKey())
	client.On("GetObject", mock.Anything, "bucket", "broken.json", mock.Anything).
		Return(nil, errors.New("connection reset"))
	client.On("GetObject", mock.Anything, "bucket", "invalid.json", mock.Anything).
		Return(body(`[1, 2]`), nil)

	store := producttype.NewSnapshotStore(client, "bucket", "", nil)

	_, err := store.Load(context.Background(), "missing.json")
	assert.ErrorIs(t, err, producttype.ErrSnapshotNotFound)

	_, err = store.Load(context.Background(), "broken.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, producttype.ErrSnapshotNotFound)

	_, err = store.Load(context.Background(), "invalid.json")
	assert.Error(t, err)
}

func TestSnapshotStore_Save(t *testing.T) {
	client := new(mocks.Client)
	var uploaded []byte
	client.On("PutObject", mock.Anything, "bucket", "pt/v3.json", mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Run(func(args mock.Arguments) {
		uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
	}).Return(minio.UploadInfo{}, nil)

	store := producttype.NewSnapshotStore(client, "bucket", "pt", nil)
	name, err := store.Save(context.Background(), "v3.json", productType("shirts"))
	require.NoError(t, err)
	assert.Equal(t, "pt/v3.json", name)
	assert.Contains(t, string(uploaded), `"name": "shirts"`)
}

func TestSnapshotStore_ListDeleteAndBucket(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "pt/b.json"}
	ch <- minio.ObjectInfo{Key: "pt/a.json"}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "pt/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))
	client.On("RemoveObject", mock.Anything, "bucket", "pt/a.json", mock.Anything).Return(nil)
	client.On("BucketExists", mock.Anything, "bucket").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "bucket", mock.Anything).Return(nil)

	store := producttype.NewSnapshotStore(client, "bucket", "pt", nil)

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"pt/a.json", "pt/b.json"}, names)

	require.NoError(t, store.Delete(context.Background(), "a.json"))
	require.NoError(t, store.EnsureBucket(context.Background()))
	client.AssertExpectations(t)
}
