package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available worlds",
	Long:  `Shows a list of all worlds that can be played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	worlds := registry.List()

	if len(worlds) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, w := range worlds {
		t.Row(w.ID, w.Title)
	}

	fmt.Println("Available worlds:")
	fmt.Println(t.Render())
	fmt.Println("Run 'platformer play <id>' or 'platformer window <id>' to play a world.")
}
