package main

import (
	"fmt"
	"strings"

	"github.com/myrjola/detectivequest/internal/game"
	"github.com/spf13/cobra"
)

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "map",
		GroupID: Group.ID,
		Short:   "Print the rooms of the mansion",
		Long:    `Prints every room of the mansion indented by its distance from the entrance hall, with its clue.`,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for depth, room := range game.NewMansion().Walk() {
				line := strings.Repeat("  ", depth) + room.Name
				if room.HasClue() {
					line += " (pista: " + room.Clue + ")"
				}
				_, _ = fmt.Fprintln(out, line)
			}
		},
	}
}

func newSuspectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "suspects",
		GroupID: Group.ID,
		Short:   "Print which suspect every clue points to",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := game.NewSuspectTable()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range table.Associations() {
				_, _ = fmt.Fprintf(out, "%s -> %s\n", a.Clue, a.Suspect)
			}
			return nil
		},
	}
}
