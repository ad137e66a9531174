package handler

import (
	"log"

	"vindtables/backend/internal/config"
	"vindtables/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env config.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.GET("/ping", Ping)

	r.POST("/connect", ConnectHandler)
	r.GET("/schemas", ListSchemasHandler)
	r.GET("/tables", ListTablesHandler)
	r.GET("/columns", ListColumnsHandler)

	r.GET("/tables/:table/datatables", DataTablesHandler)
	r.POST("/tables/:table/datatables", DataTablesHandler)

	return r
}
