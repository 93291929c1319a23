package mansion_test

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func explore(t *testing.T, input string) (*clues.Tree, string, error) {
	t.Helper()
	var (
		out       bytes.Buffer
		collected clues.Tree
	)
	explorer := mansion.NewExplorer(&collected, console.New(strings.NewReader(input), &out), testhelpers.NewLogger(io.Discard))
	err := explorer.Explore(context.Background(), newTestMansion())
	return &collected, out.String(), err
}

func TestExplorer_LeaveImmediately(t *testing.T) {
	collected, out, err := explore(t, "s\n")
	require.NoError(t, err)
	require.Equal(t, "\nVocê está na sala: Hall\n"+
		"Você encontrou uma pista: Mapa da mansão encontrado\n"+
		"Escolha o caminho: (e) Esquerda, (d) Direita, (s) Sair: "+
		"Saindo da exploração...\n", out)
	require.Equal(t, []string{"Mapa da mansão encontrado"}, slices.Collect(collected.All()))
}

func TestExplorer_DescendAndReturn(t *testing.T) {
	collected, out, err := explore(t, "e\ne\ns\ns\ns\n")
	require.NoError(t, err)

	require.Equal(t, []string{
		"Flor com manchas estranhas",
		"Mapa da mansão encontrado",
		"Pegadas suspeitas na cozinha",
	}, slices.Collect(collected.All()), "clues are listed in lexicographic order")

	// Rooms are visited in order and the player returns through the parents.
	iHall := strings.Index(out, "Você está na sala: Hall")
	iCozinha := strings.Index(out, "Você está na sala: Cozinha")
	iJardim := strings.Index(out, "Você está na sala: Jardim")
	iBackCozinha := strings.Index(out, "Você voltou para a sala: Cozinha")
	iBackHall := strings.Index(out, "Você voltou para a sala: Hall")
	require.True(t, iHall < iCozinha && iCozinha < iJardim && iJardim < iBackCozinha && iBackCozinha < iBackHall, out)
	require.Equal(t, 3, strings.Count(out, "Saindo da exploração..."))
}

func TestExplorer_MissingPath(t *testing.T) {
	collected, out, err := explore(t, "d\nd\ne\ns\ns\n")
	require.NoError(t, err)
	require.Contains(t, out, "Você está na sala: Sala\n")
	require.NotContains(t, out, "Você encontrou uma pista: \n", "rooms without clue print nothing")
	require.Contains(t, out, "Caminho inexistente à direita!\n")
	require.Contains(t, out, "Caminho inexistente à esquerda!\n")
	require.Equal(t, 1, collected.Len())
}

func TestExplorer_InvalidChoiceChangesNothing(t *testing.T) {
	collected, out, err := explore(t, "x\n?\ns\n")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "Opção inválida. Digite e, d ou s.\n"))
	require.Equal(t, 3, strings.Count(out, "Escolha o caminho"), "the same room prompts again")
	require.Equal(t, 1, strings.Count(out, "Você está na sala"))
	require.Equal(t, 1, collected.Len())
}

func TestExplorer_ChoicesAreCaseInsensitive(t *testing.T) {
	collected, _, err := explore(t, "E\nE\nS\nS\nS\n")
	require.NoError(t, err)
	require.Equal(t, 3, collected.Len())
}

func TestExplorer_MalformedInput(t *testing.T) {
	collected, out, err := explore(t, "\xff\ns\n")
	require.NoError(t, err)
	require.Contains(t, out, "Erro na leitura. Tente novamente.\n")
	require.Equal(t, 1, collected.Len())
}

func TestExplorer_RevisitDoesNotDuplicate(t *testing.T) {
	collected, _, err := explore(t, "e\ns\ne\ns\ns\n")
	require.NoError(t, err)
	require.Equal(t, []string{
		"Mapa da mansão encontrado",
		"Pegadas suspeitas na cozinha",
	}, slices.Collect(collected.All()))
}

func TestExplorer_InputClosed(t *testing.T) {
	collected, out, err := explore(t, "e\ne\n")
	require.ErrorIs(t, err, console.ErrInputClosed)
	require.NotContains(t, out, "Você voltou para a sala", "frames unwind silently")
	require.Equal(t, 3, collected.Len(), "clues found before the input ended are kept")
}
