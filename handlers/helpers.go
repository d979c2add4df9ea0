package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id64), true
}

// abortServiceError translates the service error taxonomy to HTTP.
// Conflicts carry a machine-readable code so clients can tell a
// rejected transition from a competing vote.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFormNotFound),
		errors.Is(err, services.ErrSubformNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrLicenseNotFound),
		errors.Is(err, services.ErrFunctionNotFound),
		errors.Is(err, services.ErrBlockNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrFileNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error(), Code: "invalid_transition"})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error(), Code: "invalid_state"})
	case errors.Is(err, services.ErrApprovalConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error(), Code: "approval_conflict"})
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrLicenseNotUnused):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func formView(f *models.Form) response.FormView {
	view := response.FormView{
		ID:            f.ID,
		Type:          string(f.Kind),
		Title:         f.Title,
		Message:       f.Message,
		Budget:        f.Budget,
		ExpectedTime:  f.ExpectedTime,
		Status:        string(f.Status),
		ApprovalFlags: f.ApprovalFlags(),
		UserID:        f.UserID,
		DeveloperID:   f.DeveloperID,
		SubformID:     f.SubformID,
		CreatedAt:     f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !f.UpdatedAt.IsZero() {
		updated := f.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
		view.UpdatedAt = &updated
	}
	return view
}
