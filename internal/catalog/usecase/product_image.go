package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/storage"
	"github.com/pasarhub/pasar/internal/shared/constant"
)

//nolint:gochecknoglobals // global for fast reuse
var imageContentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var errImageTooLarge = errors.New("image exceeds max size")

type ProductImageUploadInput struct {
	ProductID   int64
	File        io.Reader
	ContentType string
}

func (s *Usecase) ProductImageUpload(ctx context.Context, in ProductImageUploadInput) error {
	ctx, span := s.startSpan(ctx, "ProductImageUpload")
	defer span.End()

	clm, err := s.approvedSeller(ctx, constant.PermCatalogProducts, constant.PermActUpdate)
	if err != nil {
		return err
	}

	if in.File == nil {
		return goerror.NewInvalidInput(nil, "image", "image file is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := imageContentTypeExt[contentType]
	if !ok {
		return goerror.NewInvalidInput(nil, "image", "unsupported image content type")
	}

	if err := s.ensureOwner(ctx, in.ProductID, clm.UserID); err != nil {
		return err
	}

	bucket := strings.TrimSpace(s.cfg.GetString("modules.catalog.image_bucket"))
	key := fmt.Sprintf("%d/%s%s", in.ProductID, s.uuid.Generate(), ext)
	maxSize := s.cfg.GetInt64("modules.catalog.image_max_size_bytes")

	reader := &maxBytesReader{
		r:   in.File,
		max: maxSize,
	}
	_, err = s.storage.PutObject(ctx, bucket, key, reader, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"seller_id": strconv.FormatInt(clm.UserID, 10)},
	})
	if err != nil {
		if errors.Is(err, errImageTooLarge) {
			return goerror.NewInvalidInput(errImageTooLarge)
		}
		slog.ErrorContext(ctx, "failed to upload product image", "product_id", in.ProductID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateProductImage(ctx, in.ProductID, clm.UserID, key); err != nil {
		slog.ErrorContext(ctx, "failed to record product image key", "product_id", in.ProductID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type maxBytesReader struct {
	r     io.Reader
	max   int64
	read  int64
	buf   [1]byte
	ended bool
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.read >= m.max {
		if m.ended {
			return 0, errImageTooLarge
		}

		n, err := m.r.Read(m.buf[:])
		if n > 0 {
			m.ended = true
			return 0, errImageTooLarge
		}
		if err == nil {
			m.ended = true
			return 0, errImageTooLarge
		}
		return 0, err
	}

	remaining := m.max - m.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := m.r.Read(p)
	m.read += int64(n)
	return n, err
}
