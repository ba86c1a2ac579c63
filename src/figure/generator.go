package figure

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/iafilius/MooresLaw/src/dataset"
)

// Generator produces the complete figure: transistor panel on top, storage panel below.
type Generator struct {
	Style    Style
	Labels   Labels
	Data     dataset.Set
	Annotate bool
	Caption  string
	Logger   zerolog.Logger
}

// Result describes a written figure.
type Result struct {
	Path   string
	Width  int
	Height int
	Bytes  int
}

// NewGenerator returns a generator with the dark style, English labels and the built-in data.
func NewGenerator() *Generator {
	return &Generator{
		Style:  DarkStyle(),
		Labels: LabelsFor("en"),
		Data:   dataset.Builtin(),
		Logger: zerolog.Nop(),
	}
}

// Run renders both panels and writes the PNG to path. Write errors are returned, not retried.
func (g *Generator) Run(path string) (Result, error) {
	start := time.Now()
	log := g.Logger.With().Str("output", path).Logger()

	if err := g.Data.Validate(); err != nil {
		return Result{}, errors.Wrap(err, "invalid dataset")
	}

	top := NewPanel(g.Style)
	RenderTransistorPanel(g.Data.Transistors, top, g.Style, g.Labels, g.Annotate)
	log.Debug().Int("points", g.Data.Transistors.Len()).Msg("transistor panel ready")

	bottom := NewPanel(g.Style)
	RenderStoragePanel(g.Data.Storage, bottom, g.Style, g.Labels, g.Annotate)
	log.Debug().Int("points", g.Data.Storage.Len()).Msg("storage panel ready")

	bounds, n, err := ComposeAndSave(top, bottom, g.Style, g.Caption, path)
	if err != nil {
		return Result{}, err
	}
	res := Result{Path: path, Width: bounds.Dx(), Height: bounds.Dy(), Bytes: n}
	log.Info().
		Int("width", res.Width).
		Int("height", res.Height).
		Str("size", humanize.Bytes(uint64(n))).
		Float64("dpi", g.Style.DPI).
		Dur("took", time.Since(start)).
		Msg("figure written")
	return res, nil
}
