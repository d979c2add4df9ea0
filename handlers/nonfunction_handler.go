package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/utils"
)

type NonFunctionHandler struct {
	svc *services.NonFunctionService
}

func NewNonFunctionHandler(svc *services.NonFunctionService) *NonFunctionHandler {
	return &NonFunctionHandler{svc: svc}
}

// GET /forms/:id/nonfunctions
func (h *NonFunctionHandler) ListByForm(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	nfs, err := h.svc.ListByForm(user, formID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, nfs)
}

// POST /forms/:id/nonfunctions
func (h *NonFunctionHandler) Create(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateNonFunctionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	nf, err := h.svc.Create(user, formID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, nf)
}

// PUT /nonfunctions/:id
func (h *NonFunctionHandler) Update(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateNonFunctionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	nf, err := h.svc.Update(user, id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, nf)
}

// DELETE /nonfunctions/:id
func (h *NonFunctionHandler) Delete(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(user, id); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Nonfunction deleted"})
}
