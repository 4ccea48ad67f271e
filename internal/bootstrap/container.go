package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/nagare-labs/nagare/backend/internal/adapters/gemini"
	"github.com/nagare-labs/nagare/backend/internal/adapters/sqlite"
	"github.com/nagare-labs/nagare/backend/internal/adapters/wsplayer"
	"github.com/nagare-labs/nagare/backend/internal/adapters/ytmusic"
	"github.com/nagare-labs/nagare/backend/internal/config"
	"github.com/nagare-labs/nagare/backend/internal/controller"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
	"github.com/nagare-labs/nagare/backend/internal/core/services"
)

// Container wires adapters, services and controllers together.
type Container struct {
	MusicController  controller.IMusicController
	PlayerController controller.IPlayerController
	TaskController   controller.ITaskController
	TimerController  controller.ITimerController

	PlayerHandle *wsplayer.Handle
	Engine       *services.Engine

	store *sqlite.Adapter
}

func NewContainer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	// Intent provider is optional: without an API key the analyzer runs on
	// the keyword fallback alone.
	var intent ports.IntentProvider
	if cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		intent = client
	} else {
		log.Warn("no gemini api key configured, using keyword analysis only")
	}

	source := ytmusic.NewClient(nil, cfg.Catalog.BaseURL, cfg.Catalog.MaxRetries, cfg.Catalog.RetryBackoff)

	store, err := sqlite.NewAdapter(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}

	handle := wsplayer.NewHandle(log.Named("wsplayer"))

	analyzer := services.NewAnalyzer(intent, log.Named("analyzer"))
	planner := services.NewPlanner(cfg.Catalog.TrendingYear)
	catalog := services.NewCatalog(source, log.Named("catalog"))
	engine := services.NewEngine(handle, log.Named("engine"))
	pipeline := services.NewPipeline(analyzer, planner, catalog, engine, log.Named("pipeline"))
	tasks := services.NewTasks(store)
	timer := services.NewTimer()

	return &Container{
		MusicController:  controller.NewMusicController(analyzer, catalog, pipeline),
		PlayerController: controller.NewPlayerController(engine),
		TaskController:   controller.NewTaskController(tasks),
		TimerController:  controller.NewTimerController(timer),
		PlayerHandle:     handle,
		Engine:           engine,
		store:            store,
	}, nil
}

// Close releases everything the container owns.
func (c *Container) Close() error {
	c.Engine.Close()
	return c.store.Close()
}
