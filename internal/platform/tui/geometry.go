package tui

import (
	"github.com/nlipatov/skygate/internal/config"
	"github.com/nlipatov/skygate/internal/game"
)

// termGeometry derives field geometry from the terminal size. The
// session re-queries it every frame, so a resize between cycles takes
// effect on the next update without touching simulation state.
type termGeometry struct {
	cols, rows int
	cfg        config.Config
}

func newTermGeometry(cols, rows int, cfg config.Config) *termGeometry {
	return &termGeometry{cols: cols, rows: rows, cfg: cfg}
}

// Resize records new terminal dimensions. Must only be called between
// update cycles (the Bubble Tea loop guarantees this).
func (g *termGeometry) Resize(cols, rows int) {
	g.cols = cols
	g.rows = rows
}

// FieldGeometry maps terminal cells to continuous field units.
func (g *termGeometry) FieldGeometry() game.FieldGeometry {
	return game.FieldGeometry{
		Width:        float64(g.cols) * g.cfg.Field.UnitsPerCellX,
		Height:       float64(g.rows) * g.cfg.Field.UnitsPerCellY,
		GroundHeight: g.cfg.Field.GroundHeight,
		FlyerWidth:   g.cfg.Flyer.Width,
		FlyerHeight:  g.cfg.Flyer.Height,
	}
}
