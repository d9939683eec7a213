package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/state", h.ListStates)
	rg.GET("/state/:name", h.GetState)
	rg.GET("/state/:name/dot", h.GetStateDOT)
}
