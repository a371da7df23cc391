package weather

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theMomax/weatherboard/cache/display"
)

// Source provides the board's current state.
type Source interface {
	Snapshot() display.Snapshot
}

// Register takes care of registering all handler functions to the router.
func Register(r *gin.RouterGroup, source Source) {
	h := &handler{source: source}

	g := r.Group("weather")
	g.GET("", h.handleSnapshot)
	g.GET("/current", h.handleCurrent)
	g.GET("/hourly", h.handleHourly)
	g.GET("/daily", h.handleDaily)
	g.GET("/notification", h.handleNotification)
}

type handler struct {
	source Source
}

func (h *handler) handleSnapshot(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.source.Snapshot())
}

func (h *handler) handleCurrent(ctx *gin.Context) {
	s := h.source.Snapshot()
	if s.Current == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, s.Current)
}

func (h *handler) handleHourly(ctx *gin.Context) {
	s := h.source.Snapshot()
	if s.Hourly == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, s.Hourly)
}

func (h *handler) handleDaily(ctx *gin.Context) {
	s := h.source.Snapshot()
	if s.Daily == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, s.Daily)
}

// The notification disappears once expired, so clients poll this.
func (h *handler) handleNotification(ctx *gin.Context) {
	s := h.source.Snapshot()
	if s.Notification == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, s.Notification)
}
