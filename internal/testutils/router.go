package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/routes"
	"github.com/linskybing/syncbridge-go/websocket"
)

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, websocket.NewHub())
	return r
}
