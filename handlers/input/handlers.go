package input

import (
	"github.com/gin-gonic/gin"

	"github.com/theMomax/weatherboard/handlers/input/refresh"
)

// Register takes care of registering all handler functions to the router.
func Register(r *gin.RouterGroup, trigger refresh.Trigger) {
	g := r.Group("input")
	refresh.Register(g, trigger)
}
