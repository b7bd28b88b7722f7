// Package errors gives tally's failures an operation name and a Kind so
// callers can branch on the category (missing sheet, bad file, storage
// trouble) without matching message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op names the failing operation as "package.Function".
type Op string

// Kind is the broad category of a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindStorage
	KindDecode
	KindExport
)

var kindNames = [...]string{
	KindUnknown:  "unknown error",
	KindNotFound: "not found",
	KindInvalid:  "invalid",
	KindIO:       "I/O error",
	KindConfig:   "configuration error",
	KindStorage:  "storage error",
	KindDecode:   "decode error",
	KindExport:   "export error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Error carries the operation that failed, its Kind and the cause. Context
// is a human-readable note placed between the operation and the cause.
type Error struct {
	Op      Op
	Kind    Kind
	Err     error
	Context string
}

func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, string(e.Op))
	}
	if e.Context != "" {
		parts = append(parts, e.Context)
	}
	parts = append(parts, e.Err.Error())
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error from any mix of Op, Kind, string (context) and error
// arguments. With no error argument the context becomes the cause.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err, e.Context = errors.New(e.Context), ""
	}
	return e
}

// GetKind returns the Kind of the outermost *Error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err's outermost *Error has the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Storage errors
func StorageOpenFailed(path string, err error) error {
	return E(Op("storage.Open"), KindStorage, fmt.Sprintf("failed to open store at %s", path), err)
}

func StorageReadFailed(key string, err error) error {
	return E(Op("storage.Get"), KindStorage, fmt.Sprintf("failed to read key %s", key), err)
}

func StorageWriteFailed(key string, err error) error {
	return E(Op("storage.Set"), KindStorage, fmt.Sprintf("failed to write key %s", key), err)
}

func SnapshotCorrupt(key string, err error) error {
	return E(Op("workbook.LoadSheets"), KindDecode, fmt.Sprintf("stored value for %s is not a sheet list", key), err)
}

// Sheet errors
func SheetNotFound(id string) error {
	return E(Op("workbook.Sheet"), KindNotFound, fmt.Sprintf("sheet %s not found", id))
}

func TemplateNotFound(id string) error {
	return E(Op("sheet.Template"), KindNotFound, fmt.Sprintf("template %s not found", id))
}

// Header group errors
func HeaderGroupInvalid(reason string) error {
	return E(Op("layout.Build"), KindInvalid, reason)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Import/export errors
func ImportDecodeFailed(path string, err error) error {
	return E(Op("export.ReadSheetFile"), KindDecode, fmt.Sprintf("failed to decode sheet from %s", path), err)
}

func ExportFailed(format, sheetID string, err error) error {
	return E(Op("export.Write"), KindExport, fmt.Sprintf("failed to export sheet %s as %s", sheetID, format), err)
}
