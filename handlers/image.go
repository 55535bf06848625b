package handlers

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
	"yatube/config"
	"yatube/storage"
	"yatube/utils"

	"github.com/google/uuid"
)

// imageError is a problem with the uploaded file itself, shown next to the form field
type imageError string

func (e imageError) Error() string {
	return string(e)
}

const (
	errNotAnImage    = imageError("Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	errImageTooLarge = imageError("The uploaded image is too large.")
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// storedImage is an uploaded image and its thumbnail, as paths inside the media storage
type storedImage struct {
	Path  string
	Thumb string
}

// saveImage checks the upload is a decodable image and stores it under posts/ together with a thumbnail
func saveImage(fileHeader *multipart.FileHeader) (result storedImage, err error) {
	if fileHeader.Size > config.MAX_IMAGE_SIZE {
		return result, errImageTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !imageExtensions[ext] {
		return result, errNotAnImage
	}
	file, err := fileHeader.Open()
	if err != nil {
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, config.MAX_IMAGE_SIZE+1))
	if err != nil {
		return
	}
	if int64(len(data)) > config.MAX_IMAGE_SIZE {
		return result, errImageTooLarge
	}
	imageConfig, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return result, errNotAnImage
	}
	if int64(imageConfig.Width)*int64(imageConfig.Height) > config.MAX_IMAGE_PIXELS {
		return result, errImageTooLarge
	}

	var thumb bytes.Buffer
	if _, err = utils.CreateThumb(uint(config.THUMB_SIZE), bytes.NewReader(data), &thumb); err != nil {
		return result, errNotAnImage
	}
	name := time.Now().UTC().Format("20060102") + "-" + uuid.New().String()
	store := storage.GetDefaultStorage()
	result.Path = "posts/" + name + ext
	if _, err = store.Save(result.Path, bytes.NewReader(data)); err != nil {
		return storedImage{}, fmt.Errorf("saving %s: %w", result.Path, err)
	}
	result.Thumb = "posts/thumbs/" + name + ".jpg"
	if _, err = store.Save(result.Thumb, &thumb); err != nil {
		_ = store.Delete(result.Path)
		return storedImage{}, fmt.Errorf("saving %s: %w", result.Thumb, err)
	}
	return
}

// deleteImage removes stored files, failures are only logged
func deleteImage(img storedImage) {
	store := storage.GetDefaultStorage()
	for _, path := range []string{img.Path, img.Thumb} {
		if path == "" {
			continue
		}
		if err := store.Delete(path); err != nil {
			log.Printf("Could not delete %s: %v", path, err)
		}
	}
}
