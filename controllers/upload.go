package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"GenAIStudio/models"

	"github.com/gin-gonic/gin"
)

var errInvalidUpload = errors.New("invalid upload")

// formFile returns the named upload, or nil when the form has none.
func formFile(ctx *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidUpload, err)
	}
	return fh, nil
}

// formFiles returns every upload sent under field, in form order.
func formFiles(ctx *gin.Context, field string) ([]*multipart.FileHeader, error) {
	form, err := ctx.MultipartForm()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidUpload, err)
	}
	return form.File[field], nil
}

func readDocument(fh *multipart.FileHeader) (models.Document, error) {
	f, err := fh.Open()
	if err != nil {
		return models.Document{}, fmt.Errorf("open %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Document{}, fmt.Errorf("read %q: %w", fh.Filename, err)
	}
	return models.Document{Name: fh.Filename, Data: data}, nil
}

// hasExtension reports whether filename ends in one of exts (case-insensitive, no dot).
func hasExtension(filename string, exts ...string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// EncodeDataURI renders file bytes as a data: URI so clients can display them inline.
func EncodeDataURI(data []byte) string {
	mimeType := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
