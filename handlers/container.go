package handlers

import (
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/websocket"
)

type Handlers struct {
	Audit       *AuditHandler
	Auth        *AuthHandler
	File        *FileHandler
	Form        *FormHandler
	Function    *FunctionHandler
	Message     *MessageHandler
	NonFunction *NonFunctionHandler
	WS          *WSHandler
}

func New(svc *services.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		Audit:       NewAuditHandler(svc.Audit),
		Auth:        NewAuthHandler(svc.User),
		File:        NewFileHandler(svc.File),
		Form:        NewFormHandler(svc.Form),
		Function:    NewFunctionHandler(svc.Function),
		Message:     NewMessageHandler(svc.Message),
		NonFunction: NewNonFunctionHandler(svc.NonFunction),
		WS:          NewWSHandler(hub, svc.Form),
	}
}
