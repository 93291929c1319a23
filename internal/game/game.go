// Package game wires the mansion, the clue accumulator and the suspect table into one playable case.
package game

import (
	"context"
	"log/slog"

	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/myrjola/detectivequest/internal/verdict"
)

// Game owns the state of a single playthrough.
type Game struct {
	Mansion  *mansion.Room
	Suspects *suspects.Table
	Clues    *clues.Tree

	console *console.Console
	logger  *slog.Logger
}

func New(c *console.Console, logger *slog.Logger) (*Game, error) {
	table, err := NewSuspectTable()
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}
	return &Game{
		Mansion:  NewMansion(),
		Suspects: table,
		Clues:    &clues.Tree{},
		console:  c,
		logger:   logger.With("source", "Game"),
	}, nil
}

// Play explores the mansion from the entrance hall and then asks for the accusation.
func (g *Game) Play(ctx context.Context) (verdict.Result, error) {
	g.console.Printf("Bem-vindo ao Detective Quest! Explore a mansão e colete pistas.\n")

	explorer := mansion.NewExplorer(g.Clues, g.console, g.logger)
	if err := explorer.Explore(ctx, g.Mansion); err != nil {
		return verdict.Result{}, errors.Wrap(err, "explore mansion")
	}
	g.logger.InfoContext(ctx, "exploration finished", slog.Int("clues", g.Clues.Len()))

	evaluator := verdict.NewEvaluator(g.Clues, g.Suspects, g.console, g.logger)
	result, err := evaluator.Evaluate(ctx)
	if err != nil {
		return verdict.Result{}, errors.Wrap(err, "evaluate accusation")
	}
	g.logger.InfoContext(ctx, "case closed",
		slog.String("accused", result.Accused), slog.Int("votes", result.Votes), slog.Bool("solved", result.Solved))

	return result, nil
}
