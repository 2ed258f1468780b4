package egraph

import (
	"log/slog"

	"github.com/aretw0/egraph/internal/logging"
	"github.com/aretw0/egraph/pkg/domain"
	"github.com/aretw0/egraph/pkg/rules"
	"github.com/aretw0/egraph/pkg/schema"
)

// Engine is the high-level entry point for the egraph library. It wraps
// the codec and the rule engines behind one API and adds optional debug
// logging; the underlying packages stay pure.
type Engine struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Parse decodes a textual representation into a canonical graph.
func (e *Engine) Parse(text string) (*domain.Graph, error) {
	g, err := schema.Parse(text)
	if err != nil {
		e.logger.Debug("parse failed", "error", err)
		return nil, err
	}
	e.logger.Debug("parsed", "canonical", g.String())
	return g, nil
}

// Serialize encodes g back to its textual representation.
func (e *Engine) Serialize(g *domain.Graph) string {
	return schema.Serialize(g)
}

// PossibleDoubleCuts lists the paths of every removable double cut.
func (e *Engine) PossibleDoubleCuts(g *domain.Graph) []domain.Path {
	return rules.PossibleDoubleCuts(g)
}

// DoubleCut removes the double cut at the given path, returning a new
// graph.
func (e *Engine) DoubleCut(g *domain.Graph, where domain.Path) (*domain.Graph, error) {
	out, err := rules.DoubleCut(g, where)
	if err != nil {
		e.logger.Debug("double cut rejected", "path", where.String(), "error", err)
		return nil, err
	}
	e.logger.Debug("double cut applied", "path", where.String(), "result", out.String())
	return out, nil
}

// PossibleErasures lists the paths of every element erasable from a
// positively enclosed context, seeding the traversal at the sheet
// level.
func (e *Engine) PossibleErasures(g *domain.Graph) []domain.Path {
	return rules.PossibleErasures(g, rules.SheetLevel)
}

// Erase removes the element at the given path, returning a new graph.
func (e *Engine) Erase(g *domain.Graph, where domain.Path) (*domain.Graph, error) {
	out, err := rules.Erase(g, where)
	if err != nil {
		e.logger.Debug("erasure rejected", "path", where.String(), "error", err)
		return nil, err
	}
	e.logger.Debug("erasure applied", "path", where.String(), "result", out.String())
	return out, nil
}

// PossibleDeiterations lists the paths of every duplicated element
// removable by deiteration.
func (e *Engine) PossibleDeiterations(g *domain.Graph) []domain.Path {
	return rules.PossibleDeiterations(g)
}

// Deiterate removes the duplicated element at the given path, returning
// a new graph.
func (e *Engine) Deiterate(g *domain.Graph, where domain.Path) (*domain.Graph, error) {
	out, err := rules.Deiterate(g, where)
	if err != nil {
		e.logger.Debug("deiteration rejected", "path", where.String(), "error", err)
		return nil, err
	}
	e.logger.Debug("deiteration applied", "path", where.String(), "result", out.String())
	return out, nil
}
