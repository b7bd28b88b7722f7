package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteFrames prints frames as plain text blocks, one per frame.
func WriteFrames(w io.Writer, frames []Frame) error {
	if _, err := fmt.Fprintf(w, "Captured %d frames\n", len(frames)); err != nil {
		return err
	}
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		if _, err := fmt.Fprintln(w, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version int    `json:"version"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Title   string `json:"title,omitempty"`
}

// clearScreen homes the cursor and clears the terminal before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is one output event that redraws the whole screen.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int, title string) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(castHeader{Version: 2, Width: width, Height: height, Title: title}); err != nil {
		return err
	}

	var elapsed float64
	for _, f := range frames {
		elapsed += f.Delay.Seconds()
		screen := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{elapsed, "o", screen}); err != nil {
			return err
		}
	}
	return nil
}
