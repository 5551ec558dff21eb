package producttype_test

import (
	"context"
	"errors"
	"testing"

	"sync-actions/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestService_CheckSnapshots(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).
		Return(listing("pt/good.json", "pt/broken.json", "pt/good.yaml", "pt/dup.json"))
	client.On("GetObject", mock.Anything, "bucket", "pt/good.json", mock.Anything).
		Return(body(`{"key": "shirts", "name": "Shirts", "attributes": []}`), nil)
	client.On("GetObject", mock.Anything, "bucket", "pt/good.yaml", mock.Anything).
		Return(body("key: shirts\nname: Shirts\n"), nil)
	client.On("GetObject", mock.Anything, "bucket", "pt/dup.json", mock.Anything).
		Return(body(`{"name": "Shirts", "attributes": [{"name": "color"}, {"name": "color"}]}`), nil)
	client.On("GetObject", mock.Anything, "bucket", "pt/broken.json", mock.Anything).
		Return(body(`{"name": `), nil)

	svc := newTestService(t, client, nil)

	report, err := svc.CheckSnapshots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Valid)
	require.Contains(t, report.Invalid, "pt/broken.json")
	assert.Contains(t, report.Invalid["pt/broken.json"], "parse json")
	require.Contains(t, report.Invalid, "pt/dup.json")
	assert.Contains(t, report.Invalid["pt/dup.json"], `duplicate attribute "color"`)
}

func TestService_CheckSnapshotsListError(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	svc := newTestService(t, client, nil)

	_, err := svc.CheckSnapshots(context.Background())
	assert.ErrorContains(t, err, "access denied")
}
