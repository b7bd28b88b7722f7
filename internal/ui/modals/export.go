package modals

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/zhubert/tally/internal/export"
	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/layout"
	"github.com/zhubert/tally/internal/sheet"
)

// previewMaxLines caps how much of an encoded sheet is highlighted.
const previewMaxLines = 400

// ExportState picks an export format for the active sheet and previews the
// output.
type ExportState struct {
	Sheet sheet.Sheet
	Dir   string

	formats []export.Format
	cursor  int
	preview viewport.Model
	err     string
}

func (*ExportState) modalState() {}

func (s *ExportState) Title() string { return "Export" }

func (s *ExportState) PreferredWidth() int { return ModalWidthWide }

func (s *ExportState) Help() string {
	return "↑/↓: format  PgUp/PgDn: scroll preview  Enter: export  Esc: cancel"
}

func (s *ExportState) Render() string {
	labels := make([]string, len(s.formats))
	for i, f := range s.formats {
		labels[i] = f.Label()
	}

	dest := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render("Saves to " + clip(filepath.Join(s.Dir, export.Filename(s.Sheet, s.Selected())), ModalWidthWide-12))

	previewBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		MarginTop(1).
		Render(s.preview.View())

	sections := []string{
		ModalTitleStyle.Render(s.Title()),
		renderChoices(labels, s.cursor),
		dest,
		previewBox,
	}
	if s.err != "" {
		sections = append(sections, StatusErrorStyle.Render(s.err))
	}
	sections = append(sections, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ExportState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			s.SetCursor(s.cursor - 1)
			return s, nil
		case keys.Down:
			s.SetCursor(s.cursor + 1)
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.preview, cmd = s.preview.Update(msg)
	return s, cmd
}

// SetCursor selects format i, wrapping, and refreshes the preview.
func (s *ExportState) SetCursor(i int) {
	s.cursor = wrapIndex(i, len(s.formats))
	s.refresh()
}

// Selected returns the highlighted format.
func (s *ExportState) Selected() export.Format {
	return s.formats[s.cursor]
}

// PreviewContent returns the unhighlighted preview text.
func (s *ExportState) PreviewContent() string {
	return previewText(s.Sheet, s.Selected())
}

func (s *ExportState) refresh() {
	f := s.Selected()
	text := previewText(s.Sheet, f)
	s.preview.SetContent(highlight(text, string(f)))
	s.preview.GotoTop()
}

// previewText renders what f would write, trimmed to previewMaxLines. The
// xlsx preview is a text outline of the workbook.
func previewText(s sheet.Sheet, f export.Format) string {
	var text string
	switch f {
	case export.FormatXLSX:
		text = xlsxOutline(s)
	default:
		data, err := export.Encode(s, f)
		if err != nil {
			return err.Error()
		}
		text = string(data)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > previewMaxLines {
		lines = append(lines[:previewMaxLines], "…")
	}
	return strings.Join(lines, "\n")
}

func xlsxOutline(s sheet.Sheet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Worksheet %q\n\n", s.Name)
	b.WriteString("Row 1:\n")
	for _, seg := range layout.ForSheet(s) {
		switch seg.Kind {
		case layout.SegmentTitle:
			fmt.Fprintf(&b, "  %s (%d columns)\n", s.Title, seg.Span)
		case layout.SegmentGroup:
			fmt.Fprintf(&b, "  %s (%d columns, %s)\n", seg.Label, seg.Span, seg.Color)
		}
	}
	b.WriteString("Row 2:\n")
	for _, c := range s.Columns() {
		if c.Editable() {
			fmt.Fprintf(&b, "  %s\n", c.Title)
		}
	}
	fmt.Fprintf(&b, "Rows 3-%d: %d data rows\n", len(s.Rows)+2, len(s.Rows))
	return b.String()
}

// highlight colors text with chroma, falling back to plain text.
func highlight(text, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return text
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return text
	}
	return buf.String()
}

// SetError shows an error under the preview.
func (s *ExportState) SetError(msg string) { s.err = msg }

// NewExportState opens the export picker for a sheet; files go to dir.
func NewExportState(s sheet.Sheet, dir string) *ExportState {
	vp := viewport.New()
	vp.SetWidth(ModalWidthWide - 6)
	vp.SetHeight(PreviewHeight)

	st := &ExportState{
		Sheet:   s,
		Dir:     dir,
		formats: export.Formats,
		preview: vp,
	}
	st.refresh()
	return st
}
