package output

import (
	"github.com/gin-gonic/gin"

	"github.com/theMomax/weatherboard/handlers/output/weather"
)

// Register takes care of registering all handler functions to the router.
func Register(r *gin.RouterGroup, source weather.Source) {
	g := r.Group("output")
	weather.Register(g, source)
}
