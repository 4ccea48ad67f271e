package services

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// Pipeline coordinates the full request flow: free text in, playlist loaded
// into the engine. Each invocation takes a sequence token; when a newer
// request arrives while a catalog fetch is in flight, the late result is
// still returned to its caller but never replaces the engine playlist.
type Pipeline struct {
	analyzer *Analyzer
	planner  *Planner
	catalog  *Catalog
	engine   *Engine
	log      *zap.Logger

	seq atomic.Uint64

	// loadingSeq is the token of the newest request to have touched the
	// engine's loading flag. A stale request must not resurrect or clear
	// state a newer one owns.
	loadingSeq atomic.Uint64
}

// NewPipeline constructs a Pipeline.
func NewPipeline(analyzer *Analyzer, planner *Planner, catalog *Catalog, engine *Engine, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		analyzer: analyzer,
		planner:  planner,
		catalog:  catalog,
		engine:   engine,
		log:      log,
	}
}

// HandleMessage resolves text into a MusicRequest and its tracks, loading the
// result into the engine unless a newer request superseded this one.
func (p *Pipeline) HandleMessage(ctx context.Context, text string) (domain.MusicRequest, []domain.Track) {
	token := p.seq.Add(1)
	p.setLoading(token, true)

	req := p.analyzer.Analyze(ctx, text)

	var tracks []domain.Track
	for _, q := range p.planner.Plan(req) {
		tracks = append(tracks, p.catalog.Search(ctx, q.Text, q.Limit)...)
	}

	if p.seq.Load() != token {
		// A newer request owns the engine now. Clearing through setLoading
		// keeps this no-op when that request already took over the flag.
		p.setLoading(token, false)
		p.log.Info("discarding superseded catalog result",
			zap.String("module", "pipeline"), zap.String("query", req.SearchQuery))
		return req, tracks
	}

	p.engine.LoadPlaylist(tracks)
	p.setLoading(token, false)
	p.log.Info("playlist resolved",
		zap.String("module", "pipeline"),
		zap.String("requestType", string(req.RequestType)),
		zap.Int("tracks", len(tracks)))
	return req, tracks
}

// setLoading forwards the loading flag to the engine unless a newer request
// has already written it. Without the guard a slow request could flip the
// flag back on after the newest one cleared it and leave it stuck.
func (p *Pipeline) setLoading(token uint64, loading bool) {
	for {
		cur := p.loadingSeq.Load()
		if cur > token {
			return
		}
		if p.loadingSeq.CompareAndSwap(cur, token) {
			p.engine.SetLoading(loading)
			return
		}
	}
}
