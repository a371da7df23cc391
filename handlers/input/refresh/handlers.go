package refresh

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theMomax/weatherboard/handlers/page"
	"github.com/theMomax/weatherboard/utils/metadata"
)

// Trigger starts a refresh cycle in the background.
type Trigger interface {
	Trigger(trigger metadata.Trigger)
}

// Register takes care of registering all handler functions to the router.
func Register(r *gin.RouterGroup, trigger Trigger) {
	r.POST("/refresh", func(ctx *gin.Context) {
		handleRefresh(ctx, trigger)
	})
}

// handleRefresh starts a cycle without waiting for it. Concurrent requests
// each start their own cycle. Form posts from the page are redirected back to
// it, marked so that it reloads quickly even before the cycle has begun.
func handleRefresh(ctx *gin.Context, trigger Trigger) {
	trigger.Trigger(metadata.Manual)

	switch ctx.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		ctx.Redirect(http.StatusSeeOther, "/?"+page.QueryRefreshing+"=1")
	default:
		ctx.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
	}
}
