package tui

import (
	"testing"

	"github.com/nlipatov/skygate/internal/config"
)

func TestTermGeometryScalesCells(t *testing.T) {
	geo := newTermGeometry(80, 24, config.Default())

	field := geo.FieldGeometry()
	if field.Width != 640 {
		t.Errorf("field width = %f, expected 640 for 80 cols", field.Width)
	}
	if field.Height != 480 {
		t.Errorf("field height = %f, expected 480 for 24 rows", field.Height)
	}
	if field.GroundHeight != 50 {
		t.Errorf("ground height = %f, expected 50", field.GroundHeight)
	}
	if field.FlyerWidth != 34 || field.FlyerHeight != 24 {
		t.Errorf("flyer size = %fx%f, expected 34x24", field.FlyerWidth, field.FlyerHeight)
	}
}

func TestTermGeometryResize(t *testing.T) {
	geo := newTermGeometry(80, 24, config.Default())
	geo.Resize(120, 40)

	field := geo.FieldGeometry()
	if field.Width != 960 || field.Height != 800 {
		t.Errorf("field after resize = %fx%f, expected 960x800", field.Width, field.Height)
	}
}
