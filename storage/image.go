package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

const (
	// MaxImageSize bounds both sides of a stored post image
	MaxImageSize = 960
	postImageDir = "posts/"
	// MaxImagePixels bounds the decoded size of an upload, about 160MB as RGBA
	MaxImagePixels = 40_000_000
)

var ErrNotImage = errors.New("not an image")

type ImageConverted struct {
	Size int64
	NewX int
	NewY int
	OldX int
	OldY int
}

// ConvertImage decodes any supported image, shrinks it to fit size x size and writes it out as JPEG.
// The header is checked first, images above MaxImagePixels are never decoded.
func ConvertImage(size uint, reader io.Reader, writer io.Writer) (result ImageConverted, err error) {
	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(reader, &header))
	if err != nil {
		return result, ErrNotImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return result, ErrNotImage
	}
	img, _, err := image.Decode(io.MultiReader(&header, reader))
	if err != nil {
		return result, ErrNotImage
	}
	imageRect := img.Bounds().Size()
	result.OldX = imageRect.X
	result.OldY = imageRect.Y

	newImage := resize.Thumbnail(size, size, img, resize.Lanczos3)
	var newBuf bytes.Buffer
	if err = jpeg.Encode(&newBuf, newImage, &jpeg.Options{Quality: 90}); err != nil {
		return
	}
	imageRect = newImage.Bounds().Size()
	result.NewX = imageRect.X
	result.NewY = imageRect.Y

	result.Size, err = io.Copy(writer, &newBuf)
	return
}

// SaveImage converts an uploaded image and stores it, returning its media path
func SaveImage(reader io.Reader) (string, error) {
	var buf bytes.Buffer
	result, err := ConvertImage(MaxImageSize, reader, &buf)
	if err != nil {
		return "", err
	}
	path := postImageDir + uuid.NewString() + ".jpg"
	if _, err := GetDefaultStorage().Save(path, &buf); err != nil {
		return "", errors.Wrap(err, "save image")
	}
	log.Printf("Stored %s: %dx%d -> %dx%d, %d bytes", path, result.OldX, result.OldY, result.NewX, result.NewY, result.Size)
	return path, nil
}
