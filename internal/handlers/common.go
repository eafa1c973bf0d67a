package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/services"
)

// respondError maps a coded error to its HTTP status. Anything uncoded is a
// generic 500; the real cause only goes to the log.
func respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{
		"message": common.ClientMessage(err),
		"success": false,
	})
}

// fileFromRequest reads the optional "file" part of a multipart request into
// memory. No file present is not an error.
func fileFromRequest(c *gin.Context) (*services.FileUpload, error) {
	header, err := c.FormFile("file")
	if err != nil {
		// Covers both a missing part and a non-multipart body; the file is
		// optional on every route that accepts one.
		return nil, nil
	}
	opened, err := header.Open()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read uploaded file", err)
	}
	defer opened.Close()
	data, err := io.ReadAll(opened)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read uploaded file", err)
	}
	return &services.FileUpload{Data: data, Filename: header.Filename}, nil
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}
