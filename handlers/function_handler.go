package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/utils"
)

type FunctionHandler struct {
	svc *services.FunctionService
}

func NewFunctionHandler(svc *services.FunctionService) *FunctionHandler {
	return &FunctionHandler{svc: svc}
}

// GET /forms/:id/functions
func (h *FunctionHandler) ListByForm(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fns, err := h.svc.ListByForm(user, formID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fns)
}

// POST /forms/:id/functions
func (h *FunctionHandler) Create(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateFunctionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	fn, err := h.svc.Create(user, formID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fn)
}

// PUT /functions/:id
func (h *FunctionHandler) Update(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateFunctionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	fn, err := h.svc.Update(user, id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fn)
}

// DELETE /functions/:id
func (h *FunctionHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Function deleted"})
}
