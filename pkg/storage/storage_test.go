package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePropertyImageKey(t *testing.T) {
	id := uuid.New()

	key := GeneratePropertyImageKey(id, "Fachada.JPG")
	assert.True(t, strings.HasPrefix(key, "properties/"+id.String()+"/"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)

	draft := GeneratePropertyImageKey(uuid.Nil, "x.png")
	assert.True(t, strings.HasPrefix(draft, "properties/drafts/"), draft)

	assert.NotEqual(t, key, GeneratePropertyImageKey(id, "Fachada.JPG"))
}

func TestValidateMimeType(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png"}
	assert.True(t, ValidateMimeType("IMAGE/JPEG", allowed))
	assert.False(t, ValidateMimeType("image/gif", allowed))
	assert.True(t, ValidateMimeType("image/gif", []string{"image/*"}))
	assert.True(t, ValidateMimeType("anything", nil))
}

func TestMimeHelpers(t *testing.T) {
	assert.Equal(t, "image/webp", GetMimeTypeFromExtension("sala.webp"))
	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension("planta.dwg"))
	assert.Equal(t, ".jpg", ExtensionForMimeType("image/jpeg"))
	assert.Equal(t, ".bin", ExtensionForMimeType("application/pdf"))
	assert.True(t, IsImageMimeType("image/png"))
	assert.False(t, IsImageMimeType("text/html"))
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/media/")
	require.NoError(t, err)
	ctx := context.Background()

	res, err := s.Upload(ctx, "properties/abc/1.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/media/properties/abc/1.png", res.URL)
	assert.Equal(t, int64(9), res.Size)

	ok, err := s.Exists(ctx, "properties/abc/1.png")
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := s.Download(ctx, "properties/abc/1.png")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "png-bytes", string(data))

	key, ok := s.KeyFromURL(res.URL)
	assert.True(t, ok)
	assert.Equal(t, "properties/abc/1.png", key)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))

	_, err = s.Download(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_KeyCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, "/media")
	require.NoError(t, err)

	p, err := s.path("../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, root), p)

	_, err = s.path("/")
	assert.Error(t, err)
}

func TestKeyFromURL_ForeignURL(t *testing.T) {
	s := &LocalStorage{BaseURL: "/media"}
	_, ok := s.KeyFromURL("https://i.postimg.cc/abc.jpg")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	s, err := New(context.Background(), config.StorageConfig{Provider: "local", LocalPath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = New(context.Background(), config.StorageConfig{Provider: "ftp"})
	assert.Error(t, err)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  S3Config
		want string
	}{
		{name: "cdn", cfg: S3Config{Bucket: "photos", BaseURL: "https://cdn.example.com/"}, want: "https://cdn.example.com"},
		{name: "relative base ignored", cfg: S3Config{Bucket: "photos", Region: "sa-east-1", BaseURL: "/media"}, want: "https://photos.s3.sa-east-1.amazonaws.com"},
		{name: "minio endpoint", cfg: S3Config{Bucket: "photos", Endpoint: "http://minio:9000/"}, want: "http://minio:9000/photos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Config{Region: "sa-east-1"})
	assert.Error(t, err)
}
