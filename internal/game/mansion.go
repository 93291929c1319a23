package game

import (
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/suspects"
)

// Clues found in the mansion.
const (
	ClueMap        = "Mapa da mansão encontrado"
	ClueFootprints = "Pegadas suspeitas na cozinha"
	ClueFlower     = "Flor com manchas estranhas"
	ClueBook       = "Livro antigo sobre mistérios"
	ClueDiary      = "Diário do mordomo"
)

// NewMansion builds the rooms of the mansion:
//
//	Hall de Entrada
//	├── Cozinha
//	│   └── Jardim
//	└── Sala de Estar
//	    ├── Quarto
//	    └── Biblioteca
func NewMansion() *mansion.Room {
	jardim := mansion.NewRoom("Jardim", ClueFlower)
	quarto := mansion.NewRoom("Quarto", ClueDiary)
	biblioteca := mansion.NewRoom("Biblioteca", ClueBook)

	cozinha := mansion.NewRoom("Cozinha", ClueFootprints).Connect(jardim, nil)
	salaDeEstar := mansion.NewRoom("Sala de Estar", "").Connect(quarto, biblioteca)

	return mansion.NewRoom("Hall de Entrada", ClueMap).Connect(cozinha, salaDeEstar)
}

// NewSuspectTable associates every clue of the mansion with the suspect it incriminates.
func NewSuspectTable() (*suspects.Table, error) {
	table := suspects.New()
	associations := []suspects.Association{
		{Clue: ClueMap, Suspect: "Dona da Casa"},
		{Clue: ClueFootprints, Suspect: "Cozinheiro"},
		{Clue: ClueFlower, Suspect: "Jardineiro"},
		{Clue: ClueBook, Suspect: "Bibliotecario"},
		{Clue: ClueDiary, Suspect: "Mordomo"},
	}
	for _, a := range associations {
		if err := table.Insert(a.Clue, a.Suspect); err != nil {
			return nil, errors.Wrap(err, "seed suspect table")
		}
	}
	return table, nil
}
