package app

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/electoscope/electoscope/internal/analytics"
	"github.com/electoscope/electoscope/internal/handlers"
	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/internal/reference"
	"github.com/electoscope/electoscope/internal/repository"
	"github.com/electoscope/electoscope/internal/services"
	"github.com/electoscope/electoscope/internal/websocket"
	"github.com/electoscope/electoscope/pkg/gemini"
)

// Config holds the startup options for the application.
type Config struct {
	Port         int
	DataDir      string // directory with the three CSV exports
	SQLitePath   string // optional results.db; takes precedence over DataDir
	GeminiAPIKey string // empty disables the question panel
	AskTimeout   time.Duration
}

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	datasets *services.DatasetService
	addr     string
	baseURL  string
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg Config, staticFS fs.FS) (*App, error) {
	source, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	engine := analytics.New(reference.Default())
	datasetService := services.NewDatasetService(log, source)
	statsService := services.NewStatsService(log, datasetService, engine)

	var askClient gemini.Client
	if cfg.GeminiAPIKey != "" {
		askClient = gemini.NewHTTPClient(cfg.GeminiAPIKey, log)
	} else {
		log.Warn("GEMINI_API_KEY not set, question panel disabled")
	}
	askService := services.NewAskService(log, datasetService, engine, askClient, cfg.AskTimeout)

	addr := fmt.Sprintf(":%d", cfg.Port)
	baseURL := fmt.Sprintf("http://%s%s", getPreferredIP(realNetworkProvider{}), addr)
	shareService := services.NewShareService(baseURL)

	h := handlers.New(
		datasetService,
		statsService,
		askService,
		shareService,
		websocket.New(log, askService),
		staticFS,
		log,
	)

	return &App{
		log:      log,
		handlers: h,
		datasets: datasetService,
		addr:     addr,
		baseURL:  baseURL,
	}, nil
}

// newSource picks the dataset source from the config. A SQLite path wins
// over the CSV directory.
func newSource(cfg Config) (repository.Source, error) {
	if cfg.SQLitePath != "" {
		return repository.NewSQLiteSource(cfg.SQLitePath)
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("either a data directory or a sqlite path is required")
	}
	return repository.NewCSVDir(cfg.DataDir), nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// LoadDataset runs the initial dataset load. A failure leaves the server
// answering 503 until a reload succeeds.
func (a *App) LoadDataset(ctx context.Context) error {
	return a.datasets.Load(ctx)
}

// Run starts the HTTP server
func (a *App) Run() error {
	a.log.Info("Server starting", "url", a.baseURL)
	return http.ListenAndServe(a.addr, a.Router())
}

// networkInterface wraps net.Interface for testing
type networkInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

// realInterface wraps a real net.Interface
type realInterface struct {
	iface net.Interface
}

func (r realInterface) Flags() net.Flags {
	return r.iface.Flags
}

func (r realInterface) Addrs() ([]net.Addr, error) {
	return r.iface.Addrs()
}

// networkProvider is an interface for getting network interfaces (for testing)
type networkProvider interface {
	Interfaces() ([]networkInterface, error)
}

// realNetworkProvider implements networkProvider using actual net package
type realNetworkProvider struct{}

func (realNetworkProvider) Interfaces() ([]networkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	result := make([]networkInterface, len(ifaces))
	for i, iface := range ifaces {
		result[i] = realInterface{iface: iface}
	}
	return result, nil
}

// getPreferredIP returns the best IP address for LAN access.
// Prefers private network addresses (192.168.x.x, 10.x.x.x, 172.16-31.x.x).
// Falls back to localhost if no suitable address is found.
func getPreferredIP(provider networkProvider) string {
	ifaces, err := provider.Interfaces()
	if err != nil {
		return "localhost"
	}

	var candidates []net.IP

	for _, iface := range ifaces {
		// Skip down, loopback, and point-to-point interfaces
		flags := iface.Flags()
		if flags&net.FlagUp == 0 || flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			// Only consider IPv4 addresses
			if ip == nil || ip.To4() == nil {
				continue
			}

			// Skip loopback
			if ip.IsLoopback() {
				continue
			}

			candidates = append(candidates, ip)
		}
	}

	// Prefer private network addresses
	for _, ip := range candidates {
		ipStr := ip.String()
		if strings.HasPrefix(ipStr, "192.168.") ||
			strings.HasPrefix(ipStr, "10.") ||
			isPrivate172(ip) {
			return ipStr
		}
	}

	// Fall back to any non-loopback if no private address found
	if len(candidates) > 0 {
		return candidates[0].String()
	}

	return "localhost"
}

// isPrivate172 checks if IP is in 172.16.0.0/12 range
func isPrivate172(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31
	}
	return false
}
