// Package page serves the weather board as a server-rendered HTML page.
package page

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"

	"github.com/theMomax/weatherboard/cache/display"
	"github.com/theMomax/weatherboard/handlers/output/weather"
)

//go:embed templates/*.html
var templates embed.FS

var index = template.Must(template.ParseFS(templates, "templates/index.html"))

// Reload intervals of the page. While a cycle is in flight the page reloads
// quickly so that its result and notification show up.
const (
	ReloadIdle    = time.Minute
	ReloadLoading = 2 * time.Second
)

// QueryRefreshing marks the page a manual refresh redirects to. The cycle may
// not have started yet when it is served.
const QueryRefreshing = "refreshing"

type data struct {
	display.Snapshot
	// Pending is set while a cycle is in flight or was just requested.
	Pending bool
	Reload  int
}

// Register takes care of registering all handler functions to the router.
func Register(r *gin.RouterGroup, source weather.Source) {
	r.GET("/", func(ctx *gin.Context) {
		s := source.Snapshot()
		pending := s.Loading || ctx.Query(QueryRefreshing) != ""
		reload := ReloadIdle
		if pending {
			reload = ReloadLoading
		}
		ctx.Render(http.StatusOK, ginrender.HTML{
			Template: index,
			Name:     "index.html",
			Data: data{
				Snapshot: s,
				Pending:  pending,
				Reload:   int(reload / time.Second),
			},
		})
	})
}
