package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/edupipe/edupipe/internal/media"
	"github.com/edupipe/edupipe/internal/pipeline"
	"github.com/edupipe/edupipe/pkg/errors"
)

type uploadResponse struct {
	Status  string            `json:"status"`
	Results pipeline.Manifest `json:"results"`
}

// handleUpload accepts one file, rejects unsupported extensions before
// any work, and runs the pipeline synchronously.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error:   "BAD_REQUEST",
			Message: "missing file field",
		})
		return
	}

	if _, err := media.Detect(file.Filename); err != nil {
		s.respondError(c, err)
		return
	}

	// Prefix with a fresh id so concurrent uploads of the same
	// filename cannot collide.
	name := uuid.NewString() + "_" + filepath.Base(file.Filename)
	uploadPath := filepath.Join(s.cfg.Paths.Uploads, name)

	if err := c.SaveUploadedFile(file, uploadPath); err != nil {
		s.logger.Error(c.Request.Context(), "Failed to store upload: %v", err)
		c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
			Error:   errors.CodeInternal,
			Message: "failed to store upload",
		})
		return
	}

	manifest, err := s.pipeline.Run(c.Request.Context(), uploadPath)
	if err != nil {
		s.logger.Error(c.Request.Context(), "Pipeline failed for %s: %v", file.Filename, err)
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadResponse{
		Status:  "ok",
		Results: manifest,
	})
}

// respondError maps the error taxonomy to distinct codes and statuses.
func (s *Server) respondError(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		c.JSON(appErr.Status, errors.ErrorResponse{
			Error:   appErr.Code,
			Message: appErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
		Error:   errors.CodeInternal,
		Message: err.Error(),
	})
}
