package storage

import (
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/pkg/errors"
)

type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var (
	ErrBadPath = errors.New("invalid media path")

	defaultStorage StorageAPI
)

// Init sets up the configured storage for post images
func Init() error {
	bucket := BucketFromConfig()
	switch bucket.StorageType {
	case StorageTypeFile:
		Use(NewDiskStorage(&bucket))
	case StorageTypeS3:
		s, err := NewS3Storage(&bucket)
		if err != nil {
			return errors.Wrap(err, "s3 storage")
		}
		Use(s)
	}
	log.Printf("Media storage: type %d, path %q", bucket.StorageType, bucket.Path)
	return nil
}

func Use(s StorageAPI) {
	defaultStorage = s
}

func GetDefaultStorage() StorageAPI {
	if defaultStorage == nil {
		panic("no storage available")
	}
	return defaultStorage
}

// CleanPath normalises a media path and rejects anything escaping the storage root
func CleanPath(p string) (string, error) {
	p = strings.TrimPrefix(p, "/")
	if p == "" || strings.Contains(p, "..") {
		return "", ErrBadPath
	}
	return path.Clean(p), nil
}
