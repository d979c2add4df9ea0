package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/handlers"
	"github.com/linskybing/syncbridge-go/middleware"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/websocket"
)

func RegisterRoutes(r *gin.Engine, hub *websocket.Hub) {
	repos := repositories.New()
	svc := services.New(repos, hub)
	h := handlers.New(svc, hub)

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(), middleware.LoadCurrentUser(repos))
	{
		auth.GET("/me", h.Auth.Me)

		licenses := auth.Group("/licenses")
		{
			licenses.POST("/activate", h.Auth.ActivateLicense)
			licenses.POST("", middleware.RequireAdmin(), h.Auth.CreateLicense)
		}

		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.List)
			forms.POST("", h.Form.Create)
			forms.GET("/:id", h.Form.Get)
			forms.PUT("/:id", h.Form.Update)
			forms.DELETE("/:id", h.Form.Delete)
			forms.PATCH("/:id/status", h.Form.UpdateStatus)
			forms.POST("/:id/subform", h.Form.CreateSubform)
			forms.POST("/:id/merge", h.Form.MergeSubform)

			forms.GET("/:id/functions", h.Function.ListByForm)
			forms.POST("/:id/functions", h.Function.Create)
			forms.GET("/:id/nonfunctions", h.NonFunction.ListByForm)
			forms.POST("/:id/nonfunctions", h.NonFunction.Create)

			forms.GET("/:id/blocks", h.Message.ListBlocks)
			forms.POST("/:id/blocks", h.Message.GetOrCreateBlock)
		}

		functions := auth.Group("/functions")
		{
			functions.PUT("/:id", h.Function.Update)
			functions.DELETE("/:id", h.Function.Delete)
		}
		nonfunctions := auth.Group("/nonfunctions")
		{
			nonfunctions.PUT("/:id", h.NonFunction.Update)
			nonfunctions.DELETE("/:id", h.NonFunction.Delete)
		}

		blocks := auth.Group("/blocks")
		{
			blocks.GET("/:id/messages", h.Message.ListMessages)
			blocks.POST("/:id/messages", h.Message.PostMessage)
		}
		messages := auth.Group("/messages")
		{
			messages.PUT("/:id", h.Message.UpdateMessage)
			messages.DELETE("/:id", h.Message.DeleteMessage)
			messages.POST("/:id/files", h.File.Upload)
		}
		files := auth.Group("/files")
		{
			files.GET("/:id", h.File.Download)
			files.DELETE("/:id", h.File.Delete)
		}

		audit := auth.Group("/audit/logs")
		audit.Use(middleware.RequireAdmin())
		{
			audit.GET("", h.Audit.GetAuditLogs)
		}

		auth.GET("/ws/form/:id", h.WS.FormRoom)
	}
}
