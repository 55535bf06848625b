package storage

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
)

type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetBucket() *Bucket
}

type Storage struct {
	Bucket Bucket
}

func (s *Storage) GetBucket() *Bucket {
	return &s.Bucket
}

var defaultStorage StorageAPI

// Init sets up the default media storage
func Init(bucket Bucket) {
	log.Printf("Media bucket: %+v\n", Bucket{Name: bucket.Name, StorageType: bucket.StorageType, Path: bucket.Path})
	defaultStorage = StorageFrom(&bucket)
}

func StorageFrom(bucket *Bucket) StorageAPI {
	switch bucket.StorageType {
	case StorageTypeFile:
		return NewDiskStorage(bucket)
	case StorageTypeS3:
		return NewS3Storage(bucket)
	}
	panic(fmt.Sprintf("Storage type %d unavailable", bucket.StorageType))
}

func GetDefaultStorage() StorageAPI {
	if defaultStorage == nil {
		panic("no storage available")
	}
	return defaultStorage
}

// ValidPath rejects absolute paths and anything escaping the storage root
func ValidPath(path string) bool {
	if path == "" || strings.HasPrefix(path, "/") || strings.Contains(path, "\\") {
		return false
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	return clean == path && clean != ".." && !strings.HasPrefix(clean, "../")
}
