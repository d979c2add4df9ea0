package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/utils"
)

type FormHandler struct {
	svc *services.FormService
}

func NewFormHandler(svc *services.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// POST /forms
func (h *FormHandler) Create(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	form, err := h.svc.CreateMainform(user, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, formView(&form))
}

// GET /forms
func (h *FormHandler) List(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	availableOnly := c.Query("available") == "true"

	forms, total, err := h.svc.ListForms(user, page, pageSize, availableOnly)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	views := make([]response.FormView, 0, len(forms))
	for i := range forms {
		views = append(views, formView(&forms[i]))
	}
	c.JSON(http.StatusOK, response.FormListResponse{
		Forms:    views,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// GET /forms/:id
func (h *FormHandler) Get(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := h.svc.GetForm(user, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, formView(&form))
}

// PUT /forms/:id
func (h *FormHandler) Update(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	form, err := h.svc.UpdateForm(user, id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, formView(&form))
}

// DELETE /forms/:id
func (h *FormHandler) Delete(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	negotiationFailed := c.Query("negotiation_failed") == "true"
	if err := h.svc.DeleteForm(user, id, negotiationFailed); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
}

// PATCH /forms/:id/status
func (h *FormHandler) UpdateStatus(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateFormStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	target := models.FormStatus(input.Status)
	switch target {
	case models.FormStatusPreview, models.FormStatusAvailable, models.FormStatusProcessing,
		models.FormStatusRewrite, models.FormStatusEnd, models.FormStatusError:
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Unknown status"})
		return
	}

	form, outcome, err := h.svc.RequestTransition(user, id, target)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TransitionResponse{
		Status:        string(form.Status),
		ApprovalFlags: form.ApprovalFlags(),
		Committed:     outcome == services.TransitionCommitted,
	})
}

// POST /forms/:id/subform
func (h *FormHandler) CreateSubform(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sub, err := h.svc.CreateSubform(user, id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, formView(&sub))
}

// POST /forms/:id/merge
func (h *FormHandler) MergeSubform(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := h.svc.MergeSubform(user, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, formView(&form))
}
