// Package verdict lets the player accuse a suspect and decides whether the collected clues support the accusation.
package verdict

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/schollz/closestmatch"
)

const (
	// Threshold is the number of clues that must point to the accused to solve the case.
	Threshold = 2
	// MaxNameLength is the longest accepted suspect name in characters.
	MaxNameLength = 49
)

// Prompter is the player's terminal as seen by the evaluator.
type Prompter interface {
	ReadName(maxLength int) (string, error)
	Printf(format string, a ...any)
}

// Result is the outcome of an accusation.
type Result struct {
	Accused string
	Votes   int
	Solved  bool
}

type Evaluator struct {
	clues    *clues.Tree
	suspects *suspects.Table
	console  Prompter
	logger   *slog.Logger
}

func NewEvaluator(collected *clues.Tree, table *suspects.Table, prompter Prompter, logger *slog.Logger) *Evaluator {
	return &Evaluator{
		clues:    collected,
		suspects: table,
		console:  prompter,
		logger:   logger,
	}
}

// Evaluate lists the collected clues, asks for the accused and reports the verdict.
func (e *Evaluator) Evaluate(ctx context.Context) (Result, error) {
	e.console.Printf("\n=== Todas as pistas coletadas em ordem alfabética ===\n")
	for clue := range e.clues.All() {
		e.console.Printf("- %s\n", clue)
	}

	accused, err := e.readAccused(ctx)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Accused: accused,
		Votes:   e.clues.CountVotes(e.suspects, accused),
	}
	result.Solved = result.Votes >= Threshold

	ctx = logging.WithAttrs(ctx, slog.String("accused", accused))
	e.logger.DebugContext(ctx, "votes counted",
		slog.Int("votes", result.Votes), slog.Int("clues", e.clues.Len()), slog.Bool("solved", result.Solved))

	if result.Solved {
		e.console.Printf("Parabéns! Há %d pistas apontando para %s. O culpado foi descoberto!\n",
			result.Votes, result.Accused)
	} else {
		e.console.Printf("Provas insuficientes! Apenas %d pista(s) apontam para %s. O mistério continua...\n",
			result.Votes, result.Accused)
		e.hint(ctx, accused)
	}

	return result, nil
}

func (e *Evaluator) readAccused(ctx context.Context) (string, error) {
	prompt := "\nAcuse um suspeito (ex: " + strings.Join(e.suspects.Suspects(), ", ") + "): "
	for {
		e.console.Printf("%s", prompt)
		name, err := e.console.ReadName(MaxNameLength)
		switch {
		case errors.Is(err, console.ErrNameTooLong):
			e.logger.DebugContext(ctx, "rejected accused name", errors.SlogError(err))
			e.console.Printf("Nome muito longo! Use no máximo %d caracteres.\n", MaxNameLength)
		case errors.Is(err, console.ErrMalformedInput):
			e.logger.DebugContext(ctx, "rejected accused name", errors.SlogError(err))
			e.console.Printf("Erro na leitura. Tente novamente.\n")
		case err != nil:
			return "", errors.Wrap(err, "read accused")
		default:
			return name, nil
		}
	}
}

// hint suggests the closest known suspect when accused is not one of them. Votes are always counted on the exact
// name.
func (e *Evaluator) hint(ctx context.Context, accused string) {
	names := e.suspects.Suspects()
	if len(names) == 0 || slices.Contains(names, accused) {
		return
	}
	suggestion := closestmatch.New(names, []int{2}).Closest(accused)
	if suggestion == "" {
		return
	}
	e.logger.DebugContext(ctx, "suggested suspect", slog.String("suggestion", suggestion))
	e.console.Printf("Dica: você quis dizer \"%s\"?\n", suggestion)
}
