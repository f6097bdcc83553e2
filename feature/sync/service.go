package sync

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"path-cache/core/persist"
	"path-cache/core/storage"
	"path-cache/core/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ChecksumResponse is what a node reports about its cache content.
type ChecksumResponse struct {
	// Node is the reporting node's name.
	Node string `json:"node"`
	// Checksum is the order-independent digest over the node's key set.
	Checksum string `json:"checksum"`
	// Paths is the number of entries behind the checksum.
	Paths int `json:"paths"`
}

// MergeRequest is an inbound batch of remote paths.
type MergeRequest struct {
	// Node is the sending node's name, for logging.
	Node string `json:"node"`
	// Paths are the entries to merge.
	Paths []*store.CachedPath `json:"paths"`
}

// Service handles checksum reporting, path merging and snapshot exchange.
type Service struct {
	store      *store.Store
	client     storage.Client
	storageCfg storage.Config
	nodeName   string
	logger     *zap.Logger
}

// NewService creates a new sync service. client may be nil when no object
// storage is configured; snapshot push and pull then return an error.
func NewService(st *store.Store, client storage.Client, storageCfg storage.Config, nodeName string, logger *zap.Logger) *Service {
	return &Service{
		store:      st,
		client:     client,
		storageCfg: storageCfg,
		nodeName:   nodeName,
		logger:     logger,
	}
}

// Checksum reports this node's cache digest.
func (s *Service) Checksum() ChecksumResponse {
	return ChecksumResponse{
		Node:     s.nodeName,
		Checksum: s.store.Checksum(),
		Paths:    s.store.Len(),
	}
}

// List returns all cached paths sorted by key.
func (s *Service) List() []*store.CachedPath {
	return s.store.Snapshot()
}

// Merge inserts remote paths whose keys are absent locally and returns the
// number added.
func (s *Service) Merge(req MergeRequest) int {
	added := s.store.Synchronize(req.Paths)
	if added > 0 {
		s.logger.Info("Merged remote paths",
			zap.String("from", req.Node),
			zap.Int("received", len(req.Paths)),
			zap.Int("added", added),
		)
	}
	return added
}

// PushSnapshot publishes the full cache as a binary snapshot object.
func (s *Service) PushSnapshot(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("no object storage configured")
	}

	data, err := persist.EncodeBinary(s.store.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	bucket := s.storageCfg.Bucket
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.storageCfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}

	object := s.storageCfg.SnapshotObject
	_, err = s.client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("upload snapshot %s: %w", object, err)
	}

	s.logger.Info("Snapshot published",
		zap.String("bucket", bucket),
		zap.String("object", object),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// PullSnapshot downloads the published snapshot and merges it into the local
// cache. Returns the number of paths added.
func (s *Service) PullSnapshot(ctx context.Context) (int, error) {
	if s.client == nil {
		return 0, fmt.Errorf("no object storage configured")
	}

	bucket := s.storageCfg.Bucket
	object := s.storageCfg.SnapshotObject

	if _, err := s.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{}); err != nil {
		return 0, fmt.Errorf("snapshot %s not available: %w", object, err)
	}

	reader, err := s.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("download snapshot %s: %w", object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return 0, fmt.Errorf("read snapshot %s: %w", object, err)
	}

	paths, err := persist.DecodeBinary(data)
	if err != nil {
		return 0, fmt.Errorf("decode snapshot %s: %w", object, err)
	}

	added := s.store.Synchronize(paths)
	s.logger.Info("Snapshot pulled",
		zap.String("object", object),
		zap.Int("received", len(paths)),
		zap.Int("added", added),
	)
	return added, nil
}
