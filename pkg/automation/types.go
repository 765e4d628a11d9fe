package automation

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// EntryType is the kind of war room entry the host creates from a result.
type EntryType int

const (
	EntryTypeNote EntryType = 1
)

// Formats of entry contents.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Args are the arguments the host passes to a script.
type Args map[string]string

// Get returns the argument named key, or def if the host did not set it.
func (a Args) Get(key, def string) string {
	if v, ok := a[key]; ok && v != "" {
		return v
	}
	return def
}

// Entry is a script result as consumed by the host.
type Entry struct {
	Type                   EntryType   `json:"Type"`
	ContentsFormat         string      `json:"ContentsFormat"`
	Contents               interface{} `json:"Contents"`
	ReadableContentsFormat string      `json:"ReadableContentsFormat,omitempty"`
	HumanReadable          interface{} `json:"HumanReadable,omitempty"`
	EntryContext           interface{} `json:"EntryContext,omitempty"`
}

// NoteEntry returns a JSON note whose contents are also the readable output and the entry context.
func NoteEntry(contents interface{}) *Entry {
	return &Entry{
		Type:                   EntryTypeNote,
		ContentsFormat:         FormatJSON,
		Contents:               contents,
		ReadableContentsFormat: FormatJSON,
		HumanReadable:          contents,
		EntryContext:           contents,
	}
}

// TextEntry returns a plain text result.
func TextEntry(s string) *Entry {
	return &Entry{
		Type:           EntryTypeNote,
		ContentsFormat: FormatText,
		Contents:       s,
	}
}

//go:generate mockgen -destination=mocks/script.go -package=mocks github.com/xsoar-content/k8s-automation/pkg/automation Script

// Script is an automation the host can run.
type Script interface {
	Name() string
	Run(ctx context.Context, args Args) (*Entry, error)
}

// WriteEntry writes entry to w as a single line of JSON.
func WriteEntry(w io.Writer, entry *Entry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal entry")
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "failed to write entry")
	}
	return nil
}

// WriteEntryYAML writes entry to w as a YAML document.
func WriteEntryYAML(w io.Writer, entry *Entry) error {
	b, err := yaml.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal entry")
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return errors.Wrap(err, "failed to write entry")
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "failed to write entry")
	}
	return nil
}
