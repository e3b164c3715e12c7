// Package images turns uploaded listing photos into stored objects with public URLs.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/storage"
	"go.uber.org/zap"
)

// MaxImagesPerProperty caps the photo gallery of a listing
const MaxImagesPerProperty = 10

var (
	ErrMalformedDataURL = errors.New("malformed data URL")
	ErrTooLarge         = errors.New("image exceeds the size limit")
	ErrNotAllowed       = errors.New("image type not allowed")
)

// DecodeDataURL parses data:<mime>[;base64],<payload>
func DecodeDataURL(s string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", ErrMalformedDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrMalformedDataURL
	}

	isBase64 := false
	if m, found := strings.CutSuffix(meta, ";base64"); found {
		meta, isBase64 = m, true
	}
	mimeType := meta
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	if mimeType == "" {
		mimeType = "text/plain"
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some encoders drop the padding.
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
			if err != nil {
				return nil, "", fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
			}
		}
		return data, strings.ToLower(mimeType), nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
	}
	return []byte(decoded), strings.ToLower(mimeType), nil
}

// IsDataURL reports whether s is an inline data URL rather than a stored image URL
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// Uploader validates photos and writes them to storage
type Uploader struct {
	store        storage.Storage
	maxBytes     int64
	allowedTypes []string
}

// NewUploader creates an Uploader; maxMB <= 0 means 8 MB
func NewUploader(store storage.Storage, maxMB int, allowedTypes []string) *Uploader {
	if maxMB <= 0 {
		maxMB = 8
	}
	return &Uploader{store: store, maxBytes: int64(maxMB) << 20, allowedTypes: allowedTypes}
}

// UploadDataURL stores the image encoded in a data URL and returns its public URL
func (u *Uploader) UploadDataURL(ctx context.Context, propertyID uuid.UUID, dataURL string) (string, error) {
	data, _, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", common.NewBadRequestError("invalid image data", err)
	}
	return u.upload(ctx, propertyID, "", data)
}

// UploadFile stores a multipart file and returns its public URL
func (u *Uploader) UploadFile(ctx context.Context, propertyID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if fh.Size > u.maxBytes {
		return "", u.tooLarge(fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return "", common.NewBadRequestError("unable to read upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, u.maxBytes+1))
	if err != nil {
		return "", common.NewBadRequestError("unable to read upload", err)
	}
	return u.upload(ctx, propertyID, fh.Filename, data)
}

func (u *Uploader) upload(ctx context.Context, propertyID uuid.UUID, filename string, data []byte) (string, error) {
	if int64(len(data)) > u.maxBytes {
		return "", u.tooLarge(filename)
	}
	if len(data) == 0 {
		return "", common.NewBadRequestError("empty image", nil)
	}

	// Trust the bytes, not the declared type.
	detected := mimetype.Detect(data)
	mimeType := detected.String()
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	if !storage.IsImageMimeType(mimeType) || !storage.ValidateMimeType(mimeType, u.allowedTypes) {
		return "", common.NewBadRequestError(fmt.Sprintf("%s is not an accepted image type", mimeType), ErrNotAllowed)
	}

	key := storage.GeneratePropertyImageKey(propertyID, "photo"+storage.ExtensionForMimeType(mimeType))
	res, err := u.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), mimeType)
	if err != nil {
		logger.WithContext(ctx).Error("image upload failed", zap.String("key", key), zap.Error(err))
		return "", common.NewInternalServerError("failed to store image")
	}
	return res.URL, nil
}

func (u *Uploader) tooLarge(filename string) error {
	msg := fmt.Sprintf("image exceeds %d MB", u.maxBytes>>20)
	if filename != "" {
		msg = fmt.Sprintf("%s: %s", filename, msg)
	}
	return common.NewBadRequestError(msg, ErrTooLarge)
}

// Delete removes stored images that this service issued. Foreign URLs are ignored.
func (u *Uploader) Delete(ctx context.Context, urls []string) {
	for _, raw := range urls {
		key, ok := u.store.KeyFromURL(raw)
		if !ok {
			continue
		}
		if err := u.store.Delete(ctx, key); err != nil {
			logger.WithContext(ctx).Warn("failed to delete image", zap.String("key", key), zap.Error(err))
		}
	}
}

// RemoveImage drops urls[removeIdx] and returns the adjusted main image index.
// Removing the main image makes the first remaining image main; removing an
// earlier image shifts the main index down by one.
func RemoveImage(urls []string, mainIdx, removeIdx int) ([]string, int) {
	if removeIdx < 0 || removeIdx >= len(urls) {
		return urls, ClampMainIndex(mainIdx, len(urls))
	}

	out := make([]string, 0, len(urls)-1)
	out = append(out, urls[:removeIdx]...)
	out = append(out, urls[removeIdx+1:]...)

	switch {
	case removeIdx == mainIdx:
		mainIdx = 0
	case removeIdx < mainIdx:
		mainIdx--
	}
	return out, ClampMainIndex(mainIdx, len(out))
}

// ClampMainIndex returns idx when it addresses one of n images, else 0
func ClampMainIndex(idx, n int) int {
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}
