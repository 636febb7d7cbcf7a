// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, and world orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick chain of the model that scheduled it.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickGen hands every model its own tick chain, so a tick still in flight
// when a world is left never drives the next one.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
