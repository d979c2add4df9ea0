package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/config"
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/middleware"
	"github.com/linskybing/syncbridge-go/minio"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/routes"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/websocket"
)

func main() {
	config.LoadConfig()
	db.Init()
	minio.InitMinio()
	middleware.Init()

	hub := websocket.NewHub()

	reminder := services.NewReminderService(repositories.New())
	go reminder.StartLoop(context.Background())

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, hub)

	r.Run(":" + config.ServerPort)
}
