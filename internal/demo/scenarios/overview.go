package scenarios

import (
	"time"

	"github.com/zhubert/tally/internal/demo"
	"github.com/zhubert/tally/internal/ui"
)

// Overview walks through everyday editing:
// - Selecting and overtyping a cell
// - Cycling a status choice
// - Moving between sheet tabs and adding a sheet
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Edit cells, pick a status, switch and add sheets",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Annotate("The workbook opens on All Orders"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc("down", "Select the first cell"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),

		demo.Annotate("Typing replaces the cell"),
		demo.Type("Plan Q1 launch"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc("enter", "Commit the edit"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		demo.KeyWithDesc("right", "Move to Submitted"),
		demo.KeyWithDesc("right", "Move to Status"),
		demo.KeyWithDesc("enter", "Open the status choices"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc("down", "Next status"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc("esc", "Close the choices"),

		demo.Annotate("Sheets live in tabs"),
		demo.KeyWithDesc("ctrl+right", "Next sheet"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc("ctrl+n", "Add a sheet"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		demo.Flash("Saved after every change", ui.FlashInfo),
		demo.Wait(2 * time.Second),
	},
}
