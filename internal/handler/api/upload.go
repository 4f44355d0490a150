package api

import (
	"errors"
	"net/http"
	"strings"

	"beautyverse-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

// formUpload opens the named file part of a multipart request. A request
// without the part, or a JSON request, yields a nil upload.
func formUpload(c *gin.Context, field string) (*usecase.Upload, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, noop, nil
	}
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, noop, err
	}
	return &usecase.Upload{Filename: header.Filename, Content: f}, func() { _ = f.Close() }, nil
}
