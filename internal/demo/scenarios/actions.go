package scenarios

import (
	"time"

	"github.com/zhubert/tally/internal/demo"
)

// Actions groups two columns under a new colored action header on the
// Pending sheet.
var Actions = &demo.Scenario{
	Name:        "actions",
	Description: "Group columns under a new action header",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.KeyWithDesc("ctrl+right", "Open the Pending sheet"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		demo.Annotate("ctrl-g opens the new action dialog"),
		demo.Key("ctrl+g"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		demo.Type("Verify"),
		demo.KeyWithDesc("tab", "Color"),
		demo.KeyWithDesc("right", "Next color"),
		demo.KeyWithDesc("tab", "Columns"),
		demo.KeyWithDesc("space", "Start with URL"),
		demo.KeyWithDesc("down", "Highlight Assigned"),
		demo.KeyWithDesc("space", "Extend to Assigned"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		demo.Annotate("The header row shows the new group"),
		demo.KeyWithDesc("enter", "Create the action"),
		demo.Wait(2 * time.Second),
	},
}
