// Package storage implements the file-storage collaborator on top of gocloud.dev/blob.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"path"
	"strings"

	"bizease/config"
	"bizease/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// ErrFileNotFound is returned by Open when the reference does not exist.
var ErrFileNotFound = service.ErrFileNotFound

type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage wraps an opened bucket.
func NewBlobStorage(bucket *blob.Bucket) service.FileStorage {
	return &blobStorage{bucket: bucket}
}

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the configured bucket URL and closes it on shutdown.
func NewFileStorage(params StorageParams) (service.FileStorage, error) {
	bucketURL := "mem://"
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Logger.Info("File storage bucket opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket), nil
}

// Save streams r into the bucket as <prefix>/<uuid>.<ext>, hashing it on the way.
func (s *blobStorage) Save(ctx context.Context, prefix, ext, contentType string, r io.Reader) (*service.StoredFile, error) {
	key := path.Join(prefix, uuid.NewString())
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		key += "." + ext
	}

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "open blob writer")
	}

	hasher := sha256.New()
	size, copyErr := io.Copy(w, io.TeeReader(r, hasher))
	closeErr := w.Close()
	if copyErr != nil {
		return nil, errors.Wrap(copyErr, "write blob")
	}
	if closeErr != nil {
		return nil, errors.Wrap(closeErr, "commit blob")
	}

	return &service.StoredFile{
		Ref:       key,
		Checksum:  hex.EncodeToString(hasher.Sum(nil)),
		SizeBytes: size,
	}, nil
}

// Open returns a reader for ref and its content type.
func (s *blobStorage) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.Wrap(ErrFileNotFound, ref)
		}

		return nil, "", errors.Wrap(err, "open blob reader")
	}

	return r, r.ContentType(), nil
}

// Delete removes ref from the bucket.
func (s *blobStorage) Delete(ctx context.Context, ref string) error {
	if err := s.bucket.Delete(ctx, ref); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete blob %s", ref)
	}

	return nil
}
