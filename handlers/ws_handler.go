package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/utils"
	"github.com/linskybing/syncbridge-go/websocket"
)

type WSHandler struct {
	hub *websocket.Hub
	svc *services.FormService
}

func NewWSHandler(hub *websocket.Hub, svc *services.FormService) *WSHandler {
	return &WSHandler{hub: hub, svc: svc}
}

// GET /ws/form/:id
// Joins the form's event room. The view permission check runs before
// the upgrade so unauthorized clients get a plain HTTP error.
func (h *WSHandler) FormRoom(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.svc.GetForm(user, formID); err != nil {
		abortServiceError(c, err)
		return
	}

	h.hub.Serve(c.Writer, c.Request, services.FormRoom(formID))
}
