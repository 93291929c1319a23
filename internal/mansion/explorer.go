package mansion

import (
	"context"
	"log/slog"

	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/logging"
)

// Prompter is the player's terminal as seen by the explorer.
type Prompter interface {
	ReadChoice() (rune, error)
	Printf(format string, a ...any)
}

// Explorer walks the player through the mansion and collects the clues of every visited room.
type Explorer struct {
	clues   *clues.Tree
	console Prompter
	logger  *slog.Logger
}

func NewExplorer(collected *clues.Tree, prompter Prompter, logger *slog.Logger) *Explorer {
	return &Explorer{
		clues:   collected,
		console: prompter,
		logger:  logger,
	}
}

// Explore enters room and keeps asking for a direction until the player leaves it. Leaving a room returns to the
// room it was entered from.
//
// The returned error wraps console.ErrInputClosed when the input ends before the player leaves.
func (e *Explorer) Explore(ctx context.Context, room *Room) error {
	if room == nil {
		return nil
	}
	ctx = logging.WithAttrs(ctx, slog.String("room", room.Name))
	e.logger.DebugContext(ctx, "entered room")

	e.console.Printf("\nVocê está na sala: %s\n", room.Name)
	if room.HasClue() {
		e.console.Printf("Você encontrou uma pista: %s\n", room.Clue)
		if e.clues.Insert(room.Clue) {
			e.logger.DebugContext(ctx, "clue collected", slog.String("clue", room.Clue))
		}
	}

	for {
		e.console.Printf("Escolha o caminho: (e) Esquerda, (d) Direita, (s) Sair: ")
		choice, err := e.console.ReadChoice()
		if errors.Is(err, console.ErrMalformedInput) {
			e.logger.DebugContext(ctx, "discarded malformed choice", errors.SlogError(err))
			e.console.Printf("Erro na leitura. Tente novamente.\n")
			continue
		}
		if err != nil {
			return errors.Wrap(err, "read choice", slog.String("room", room.Name))
		}
		e.logger.DebugContext(ctx, "choice read", slog.String("choice", string(choice)))

		switch choice {
		case 'e':
			if err = e.descend(ctx, room, room.Left, "Caminho inexistente à esquerda!"); err != nil {
				return err
			}
		case 'd':
			if err = e.descend(ctx, room, room.Right, "Caminho inexistente à direita!"); err != nil {
				return err
			}
		case 's':
			e.console.Printf("Saindo da exploração...\n")
			return nil
		default:
			e.console.Printf("Opção inválida. Digite e, d ou s.\n")
		}
	}
}

func (e *Explorer) descend(ctx context.Context, from, to *Room, noPath string) error {
	if to == nil {
		e.console.Printf("%s\n", noPath)
		return nil
	}
	if err := e.Explore(ctx, to); err != nil {
		return err
	}
	e.console.Printf("\nVocê voltou para a sala: %s\n", from.Name)
	return nil
}
