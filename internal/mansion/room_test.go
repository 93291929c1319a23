package mansion_test

import (
	"testing"

	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/stretchr/testify/require"
)

// newTestMansion builds a small tree:
//
//	Hall
//	├── Cozinha
//	│   └── Jardim
//	└── Sala
func newTestMansion() *mansion.Room {
	jardim := mansion.NewRoom("Jardim", "Flor com manchas estranhas")
	cozinha := mansion.NewRoom("Cozinha", "Pegadas suspeitas na cozinha").Connect(jardim, nil)
	sala := mansion.NewRoom("Sala", "")
	return mansion.NewRoom("Hall", "Mapa da mansão encontrado").Connect(cozinha, sala)
}

func TestRoom_Walk(t *testing.T) {
	type visit struct {
		depth int
		name  string
	}
	var got []visit
	for depth, room := range newTestMansion().Walk() {
		got = append(got, visit{depth: depth, name: room.Name})
	}
	require.Equal(t, []visit{
		{depth: 0, name: "Hall"},
		{depth: 1, name: "Cozinha"},
		{depth: 2, name: "Jardim"},
		{depth: 1, name: "Sala"},
	}, got)
}

func TestRoom_WalkStopsEarly(t *testing.T) {
	visited := 0
	for range newTestMansion().Walk() {
		visited++
		if visited == 2 {
			break
		}
	}
	require.Equal(t, 2, visited)
}

func TestRoom_HasClue(t *testing.T) {
	require.True(t, mansion.NewRoom("Jardim", "Flor com manchas estranhas").HasClue())
	require.False(t, mansion.NewRoom("Sala de Estar", "").HasClue())
}
