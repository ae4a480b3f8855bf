package app

import (
	"context"
	"io"

	"github.com/doeshing/hey-go/internal/application/doctor"
	"github.com/doeshing/hey-go/internal/application/query"
	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/infrastructure/ai"
	"github.com/doeshing/hey-go/internal/infrastructure/clipboard"
	"github.com/doeshing/hey-go/internal/infrastructure/config"
	contextcollector "github.com/doeshing/hey-go/internal/infrastructure/context"
	"github.com/doeshing/hey-go/internal/infrastructure/executor"
	"github.com/doeshing/hey-go/internal/infrastructure/history"
	"github.com/doeshing/hey-go/internal/pkg/logger"
	"github.com/doeshing/hey-go/internal/ports"
)

// Paths locates the per-user files. Empty fields fall back to $HEY_CONFIG /
// $HEY_HISTORY and then the XDG-style defaults.
type Paths struct {
	Config  string
	History string
}

// Options configures BuildContainer.
type Options struct {
	Paths   Paths
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	LLMClient     ports.LLMClient
	QueryService  *query.Service
	DoctorService *doctor.Service
	HistoryStore  ports.HistoryRepository
	Logger        ports.Logger
}

// Close releases resources held by adapters, such as the SQLite handle.
func (c *Container) Close() error {
	if closer, ok := c.HistoryStore.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// BuildContainer constructs the dependency graph. Configuration problems never
// fail the build; an unreadable config behaves like an empty one.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	log := logger.New(opts.Stderr, opts.Verbose)

	cfgLoader := config.NewFileLoader(opts.Paths.Config, log)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.IsEmpty() {
		log.Debug("no config values set, using defaults", map[string]interface{}{"path": cfgLoader.Path()})
	}
	log.Debug("config loaded", map[string]interface{}{
		"path":     cfgLoader.Path(),
		"endpoint": cfg.ResolveEndpoint(),
		"model":    cfg.GetModel(),
	})

	historyStore := history.NewStore(cfg.GetHistoryBackend(), opts.Paths.History, log)
	client := ai.NewClient(log)

	queryService := &query.Service{
		Detector:  contextcollector.NewDetector(),
		LLM:       client,
		History:   historyStore,
		Clipboard: clipboard.NewClipboard(log),
		Executor:  executor.NewLocalExecutor(opts.Stdin, opts.Stdout, opts.Stderr),
		Out:       opts.Stdout,
		Err:       opts.Stderr,
		Logger:    log,
	}

	doctorService := &doctor.Service{
		Client: client,
		Logger: log,
	}

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		LLMClient:     client,
		QueryService:  queryService,
		DoctorService: doctorService,
		HistoryStore:  historyStore,
		Logger:        log,
	}, nil
}
