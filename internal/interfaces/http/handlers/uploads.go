package handlers

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/storage"
)

const maxUploadSize = 10 << 20 // 10 MiB per file

// uploadFormFile stores one multipart file and returns its object key. A
// missing field returns ("", nil) so optional files stay optional; callers
// enforce their own required fields.
func uploadFormFile(c *gin.Context, store storage.ImageStore, folder, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return uploadFileHeader(c, store, folder, fileHeader)
}

func uploadFileHeader(c *gin.Context, store storage.ImageStore, folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", domainerrors.BadRequest("file exceeds the 10MB upload limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return store.Upload(c.Request.Context(), folder, fileHeader.Filename, contentType, file, fileHeader.Size)
}
