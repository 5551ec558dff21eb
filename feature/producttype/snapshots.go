package producttype

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"sync-actions/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SnapshotStore reads and writes product-type snapshots in object storage.
// Concurrent loads of the same object share one download.
type SnapshotStore struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	sf     singleflight.Group
}

// NewSnapshotStore creates a store rooted at prefix inside bucket.
func NewSnapshotStore(client storage.Client, bucket, prefix string, logger *zap.Logger) *SnapshotStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// ObjectName returns the storage object name for a snapshot name.
func (s *SnapshotStore) ObjectName(name string) string {
	name = strings.TrimPrefix(name, "/")
	if s.prefix == "" || strings.HasPrefix(name, s.prefix+"/") {
		return name
	}
	return path.Join(s.prefix, name)
}

// Load downloads and decodes a snapshot. The returned document is owned by
// the caller.
func (s *SnapshotStore) Load(ctx context.Context, name string) (map[string]any, error) {
	objectName := s.ObjectName(name)

	// Each caller waits on its own context only.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(objectName, func() (any, error) {
		return s.fetch(fetchCtx, objectName)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		s.logger.Debug("Shared snapshot download", zap.String("object", objectName))
	}
	// Each caller decodes its own copy.
	return Decode(res.Val.([]byte), FormatOf(objectName))
}

func (s *SnapshotStore) fetch(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrapError(objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.wrapError(objectName, err)
	}
	return data, nil
}

func (s *SnapshotStore) wrapError(objectName string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, objectName)
	}
	return fmt.Errorf("failed to read snapshot %s: %w", objectName, err)
}

// Save encodes doc in the format implied by name and uploads it.
func (s *SnapshotStore) Save(ctx context.Context, name string, doc any) (string, error) {
	objectName := s.ObjectName(name)
	format := FormatOf(objectName)

	data, err := Encode(doc, format)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	contentType := "application/json"
	if format == FormatYAML {
		contentType = "application/yaml"
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", objectName, err)
	}
	s.logger.Info("Snapshot saved", zap.String("object", objectName), zap.Int("bytes", len(data)))
	return objectName, nil
}

// List returns the snapshot object names under the prefix, sorted.
func (s *SnapshotStore) List(ctx context.Context) ([]string, error) {
	opts := minio.ListObjectsOptions{Recursive: true}
	if s.prefix != "" {
		opts.Prefix = s.prefix + "/"
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a snapshot.
func (s *SnapshotStore) Delete(ctx context.Context, name string) error {
	objectName := s.ObjectName(name)
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", objectName, err)
	}
	return nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *SnapshotStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}
