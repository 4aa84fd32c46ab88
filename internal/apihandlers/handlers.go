package apihandlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cerberus/internal/app"
	"cerberus/internal/models"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// ModerateHandler accepts the same multipart form the CLI submits
// (content, optional user_id, optional image file) and returns the
// composed presentation alongside the raw category scores.
func (h *APIHandler) ModerateHandler(c *gin.Context) {
	req := &models.ModerationRequest{
		Content: c.PostForm("content"),
		UserID:  c.PostForm("user_id"),
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		data, readErr := readUpload(file)
		if readErr != nil {
			BadRequest(c, "Failed to process image file: "+readErr.Error())
			return
		}
		req.Image = data
		req.ImageName = file.Filename
	}

	res, err := h.App.Moderate(c.Request.Context(), req, nil)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			BadRequest(c, models.ErrValidation.Error())
		case errors.Is(err, models.ErrAuthRequired):
			Unauthorized(c, "moderation backend requires authentication")
		default:
			BadGateway(c, fmt.Sprintf("moderation failed: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"presentation":   res.Presentation,
		"classification": res.Response.Classification,
	})
}

// HistoryHandler lists recent locally recorded decisions.
func (h *APIHandler) HistoryHandler(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.App.AuditStore.Recent(c.Request.Context(), limit)
	if err != nil {
		Internal(c, fmt.Sprintf("failed to list decisions: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
