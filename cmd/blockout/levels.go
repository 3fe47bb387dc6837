package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Long:  `Shows every built-in level in campaign order, with its brick count.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels := game.BuiltinLevels()

	fmt.Println("Built-in levels:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %3s  %-*s  %s\n", "#", maxNameLen, "Name", "Bricks")
	fmt.Printf("  %3s  %-*s  %s\n", "--", maxNameLen, "----", "------")

	for i, l := range levels {
		fmt.Printf("  %3d  %-*s  %d\n", i+1, maxNameLen, l.Name, l.CountAlive())
	}

	fmt.Println()
	fmt.Println("Run 'blockout --level <#>' to start from a specific level.")
}
