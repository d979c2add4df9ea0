package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/utils"
)

type FileHandler struct {
	svc *services.FileService
}

func NewFileHandler(svc *services.FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

// POST /messages/:id/files (multipart field "file")
func (h *FileHandler) Upload(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	messageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing file"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to read upload"})
		return
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := h.svc.Upload(c.Request.Context(), user, messageID, fileHeader.Filename, contentType, fileHeader.Size, src)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

// GET /files/:id
func (h *FileHandler) Download(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	fileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, rc, err := h.svc.Download(c.Request.Context(), user, fileID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Header("Content-Type", file.FileType)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Headers already sent, nothing left to do but log via gin.
		_ = c.Error(err)
	}
}

// DELETE /files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	fileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user, fileID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "File deleted"})
}
