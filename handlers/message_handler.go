package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/utils"
)

type MessageHandler struct {
	svc *services.MessageService
}

func NewMessageHandler(svc *services.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// POST /forms/:id/blocks
func (h *MessageHandler) GetOrCreateBlock(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateBlockDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	block, err := h.svc.GetOrCreateBlock(user, formID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// GET /forms/:id/blocks
func (h *MessageHandler) ListBlocks(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	blocks, err := h.svc.ListBlocks(user, formID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// GET /blocks/:id/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	blockID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	msgs, err := h.svc.ListMessages(user, blockID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// POST /blocks/:id/messages
func (h *MessageHandler) PostMessage(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	blockID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msg, err := h.svc.PostMessage(user, blockID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// PUT /messages/:id
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msg, err := h.svc.UpdateMessage(user, id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// DELETE /messages/:id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteMessage(user, id); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Message deleted"})
}
