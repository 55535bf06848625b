package storage

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"yatube/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"posts/20240101-abc.jpg", true},
		{"posts/thumbs/20240101-abc.jpg", true},
		{"", false},
		{"/etc/passwd", false},
		{"../secret", false},
		{"..", false},
		{"posts/../../secret", false},
		{"posts//double", false},
		{"posts/./here", false},
		{`posts\windows`, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPath(tt.path))
		})
	}
}

func TestBucket_GetRemotePath(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"no prefix", "", "posts/a.jpg"},
		{"prefix", "yatube", "yatube/posts/a.jpg"},
		{"slashes trimmed", "/media/yatube/", "media/yatube/posts/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bucket{Path: tt.prefix}
			assert.Equal(t, tt.want, b.GetRemotePath("posts/a.jpg"))
		})
	}
}

func TestBucketFromConfig(t *testing.T) {
	storageType, dir := config.MEDIA_STORAGE, config.MEDIA_DIR
	t.Cleanup(func() { config.MEDIA_STORAGE, config.MEDIA_DIR = storageType, dir })

	config.MEDIA_STORAGE, config.MEDIA_DIR = "disk", "/var/media"
	assert.Equal(t, Bucket{StorageType: StorageTypeFile, Path: "/var/media"}, BucketFromConfig())

	config.MEDIA_STORAGE = "S3"
	b := BucketFromConfig()
	assert.Equal(t, StorageTypeS3, b.StorageType)
	assert.Equal(t, config.S3_BUCKET, b.Name)
}

func TestDiskStorage(t *testing.T) {
	dir := t.TempDir()
	store := StorageFrom(&Bucket{StorageType: StorageTypeFile, Path: dir})
	assert.Equal(t, dir, store.GetBucket().Path)

	content := []byte("not really a picture")
	n, err := store.Save("posts/thumbs/a.jpg", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), n)
	_, err = os.Stat(filepath.Join(dir, "posts", "thumbs", "a.jpg"))
	require.NoError(t, err)

	var loaded bytes.Buffer
	_, err = store.Load("posts/thumbs/a.jpg", &loaded)
	require.NoError(t, err)
	assert.Equal(t, content, loaded.Bytes())

	w := httptest.NewRecorder()
	store.Serve("posts/thumbs/a.jpg", httptest.NewRequest(http.MethodGet, "/media/posts/thumbs/a.jpg", nil), w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())

	require.NoError(t, store.Delete("posts/thumbs/a.jpg"))
	w = httptest.NewRecorder()
	store.Serve("posts/thumbs/a.jpg", httptest.NewRequest(http.MethodGet, "/media/posts/thumbs/a.jpg", nil), w)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Error(t, store.Delete("posts/thumbs/a.jpg"))
}

func TestS3StorageServeRedirects(t *testing.T) {
	store := StorageFrom(&Bucket{
		Name:        "media",
		StorageType: StorageTypeS3,
		Path:        "yatube",
		Region:      "us-east-1",
		Endpoint:    "http://localhost:9000",
		AuthDetails: "key:secret",
	})
	w := httptest.NewRecorder()
	store.Serve("posts/a.jpg", httptest.NewRequest(http.MethodGet, "/media/posts/a.jpg", nil), w)
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "http://localhost:9000/media/yatube/posts/a.jpg?"), location)
	assert.Contains(t, location, "X-Amz-Signature=")
}
