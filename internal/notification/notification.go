// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"path/filepath"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/tally/internal/logger"
)

// AppName is the title used for tally's notifications.
const AppName = "Tally"

type notifier func(title, message string, icon any) error

var notify notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(n func(title, message string, icon any) error) {
	notify = n
}

// ResetNotifier restores beeep as the delivery function.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending", "title", title, "message", message)
	// Empty icon: beeep picks the platform default.
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ExportCompleted announces a finished export.
func ExportCompleted(sheetName, path string) error {
	return Send(AppName, sheetName+" exported to "+filepath.Base(path))
}
