package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theMomax/weatherboard/handlers/input"
	"github.com/theMomax/weatherboard/handlers/input/refresh"
	"github.com/theMomax/weatherboard/handlers/output"
	"github.com/theMomax/weatherboard/handlers/output/weather"
	"github.com/theMomax/weatherboard/handlers/page"
)

// Register takes care of registering all handler functions to the router.
func Register(r *gin.RouterGroup, source weather.Source, trigger refresh.Trigger) {
	page.Register(r, source)
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group("v1")
	input.Register(g, trigger)
	output.Register(g, source)
}
