package cli

import (
	"fmt"

	"github.com/swipekbd/swipekbd/internal/config"
	"github.com/swipekbd/swipekbd/internal/model"
)

// Flags for the `check` command line command, for `go-flags` to parse
// command line args into.
type CheckCommand struct {
	Layout string `short:"f" long:"layout" description:"the layout file to check" value-name:"<file>"`
}

// Executes the check command: the layout is loaded and validated exactly as
// `run` would, and a short summary is printed on success.
func (command *CheckCommand) Execute(args []string) error {
	layout, err := config.LoadFile(command.Layout)
	if err != nil {
		return fmt.Errorf("layout invalid: %w", err)
	}

	fmt.Printf("layout OK: %d left layers (mouse layer included), %d right layers\n",
		len(layout.Left), len(layout.Right))
	fmt.Printf("settings: hold %s, repeat %s, swipe %.1f/%.1f, scroll step %d, delete-mode %s\n",
		layout.Settings.HoldDelay,
		layout.Settings.RepeatInterval,
		layout.Settings.SwipeDistance,
		layout.Settings.SwipeIncrement,
		layout.Settings.ScrollStep,
		layout.Settings.DeleteMode,
	)
	for _, side := range []model.Side{model.SideLeft, model.SideRight} {
		for i, layer := range layout.Layers(side) {
			keys := 0
			for _, row := range layer.Rows {
				keys += len(row)
			}
			fmt.Printf("  %s layer %d: %d rows, %d keys\n", side, i, len(layer.Rows), keys)
		}
	}
	return nil
}
