package handlers

import (
	"io/fs"
	"net/http"

	"github.com/electoscope/electoscope/internal/services"
	"github.com/electoscope/electoscope/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Dataset      services.DatasetServicer
	Stats        services.StatsServicer
	Ask          services.AskServicer
	Share        services.ShareServicer
	AskWS        *websocket.Server
	Log          HTTPLogger
	staticFS     fs.FS
	staticServer http.Handler
}

// New creates a new Handlers instance with all dependencies
func New(
	dataset services.DatasetServicer,
	stats services.StatsServicer,
	ask services.AskServicer,
	share services.ShareServicer,
	askWS *websocket.Server,
	staticFS fs.FS,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Dataset:      dataset,
		Stats:        stats,
		Ask:          ask,
		Share:        share,
		AskWS:        askWS,
		Log:          log,
		staticFS:     staticFS,
		staticServer: NewStaticServer(staticFS),
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance without static assets (for testing API endpoints)
func NewForTesting(
	dataset services.DatasetServicer,
	stats services.StatsServicer,
	ask services.AskServicer,
	share services.ShareServicer,
) *Handlers {
	return &Handlers{
		Dataset: dataset,
		Stats:   stats,
		Ask:     ask,
		Share:   share,
		Log:     NoopHTTPLogger{},
		// staticFS left nil - API endpoints don't serve assets
	}
}
