package middleware

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"kalyanamaalai/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxPhotoSize = 5 * 1024 * 1024 // 5 MB

var ErrNotAnImage = errors.New("only image files are allowed")
var ErrFileTooLarge = errors.New("file exceeds the 5 MB limit")

// UploadDir returns the directory profile photos are stored in, creating it
// when missing.
func UploadDir() (string, error) {
	dir := config.GetEnv("UPLOAD_DIR", filepath.Join("uploads", "profile_photos"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveProfilePhoto stores the optional "profile_photo" multipart part and
// returns the stored filename. Returns "" with no error when the part is
// absent, which callers treat as "keep the existing photo".
func SaveProfilePhoto(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("profile_photo")
	if err != nil {
		return "", nil
	}
	if err := validatePhoto(file); err != nil {
		return "", err
	}

	dir, err := UploadDir()
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// RemovePhoto deletes a previously stored photo. Missing files are not an
// error; replacement already succeeded.
func RemovePhoto(filename string) {
	if filename == "" {
		return
	}
	dir, err := UploadDir()
	if err != nil {
		return
	}
	_ = os.Remove(filepath.Join(dir, filepath.Base(filename)))
}

func validatePhoto(file *multipart.FileHeader) error {
	if file.Size > maxPhotoSize {
		return ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	return nil
}
