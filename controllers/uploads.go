package controllers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-backoffice/config"
)

// saveUpload stores an uploaded file under the static directory and
// returns the public URL the router serves it at.
func saveUpload(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(config.StaticDir(), subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return "/static/" + subdir + "/" + filename, nil
}

// removeUpload deletes a previously stored file by its public URL. A
// missing file is not an error; the record is what matters.
func removeUpload(url string) {
	name := filepath.Base(url)
	if name == "" || name == "." || name == "/" {
		return
	}
	subdir := filepath.Base(filepath.Dir(url))
	os.Remove(filepath.Join(config.StaticDir(), subdir, name))
}
