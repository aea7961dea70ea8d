package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/google/uuid"
)

// UploadFile is one file of an upload request, already read into memory.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader persists files through a prioritized chain of backends:
// Cloudinary, then bucket storage, then local disk. First success wins per
// file; a file whose enabled backends all fail is skipped.
type Uploader struct {
	Conf *utils.Config
}

func NewUploader(conf *utils.Config) *Uploader {
	return &Uploader{Conf: conf}
}

// Ingest uploads every file under a shared per-request namespace and returns
// the public URLs in input order. Failed files are absent from the result;
// that is the only failure signal.
func (u *Uploader) Ingest(baseURL string, files []UploadFile) []string {
	namespace := uuid.NewString()
	urls := make([]string, 0, len(files))

	for index, file := range files {
		safeName := SanitizeFilename(file.Name)
		if safeName == "" {
			log.Printf("[UPLOAD] skipping file %d: empty filename", index)
			continue
		}

		url, ok := u.uploadOne(baseURL, namespace, index, safeName, file)
		if !ok {
			log.Printf("[UPLOAD] failed to upload file %d (%s) with all backends", index, safeName)
			continue
		}
		urls = append(urls, url)
	}

	return urls
}

func (u *Uploader) uploadOne(baseURL, namespace string, index int, safeName string, file UploadFile) (string, bool) {
	if u.Conf.UseCloudinary {
		publicID := fmt.Sprintf("properties/%s/%s_%d", namespace, namespace, index)
		if url, err := storage.UploadCloudinary(file.Data, file.ContentType, publicID); err == nil {
			return url, true
		} else {
			log.Printf("[UPLOAD] cloudinary upload failed: %v", err)
		}
	}

	if u.Conf.UseBucketStorage {
		objectName := fmt.Sprintf("images/%s/%s", namespace, safeName)
		if url, err := storage.UploadBucket(file.Data, file.ContentType, objectName); err == nil {
			return url, true
		} else {
			log.Printf("[UPLOAD] bucket upload failed: %v", err)
		}
	}

	if u.Conf.UseLocalStorage {
		if url, err := u.saveLocal(baseURL, namespace, index, safeName, file.Data); err == nil {
			return url, true
		} else {
			log.Printf("[UPLOAD] local upload failed: %v", err)
		}
	}

	return "", false
}

func (u *Uploader) saveLocal(baseURL, namespace string, index int, safeName string, data []byte) (string, error) {
	if err := os.MkdirAll(u.Conf.UploadDir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(safeName)
	if ext == "" {
		ext = ".jpg"
	}
	fileName := fmt.Sprintf("%s_%d%s", namespace, index, ext)

	if err := os.WriteFile(filepath.Join(u.Conf.UploadDir, fileName), data, 0o644); err != nil {
		return "", err
	}

	return strings.TrimRight(baseURL, "/") + "/uploads/properties/" + fileName, nil
}

// SanitizeFilename keeps alphanumerics plus "-_." and turns spaces into
// underscores before the name reaches any storage path.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.' || r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
