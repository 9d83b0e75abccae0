package handlers

import "github.com/gin-gonic/gin"

// Register mounts the dashboard routes on router.
func Register(router gin.IRouter, h *DashboardHandler) {
	router.GET("/health", Health)
	router.GET("/", h.Page)

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", h.Dashboard)
		api.GET("/status", h.Status)
		api.GET("/charts/:name", h.Chart)
		api.GET("/history", h.History)
	}
}
