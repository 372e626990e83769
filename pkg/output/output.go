// Package output renders a plot report in one of several registered formats.
package output

import (
	"io"
	"sort"

	"github.com/PacifiK2460/python-plotter/pkg/engine"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/vg"
)

// Options carries settings shared by all writers. Text writers ignore the
// size.
type Options struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns an 8x6 inch page.
func DefaultOptions() Options {
	return Options{Width: 8 * vg.Inch, Height: 6 * vg.Inch}
}

// Writer renders a report.
type Writer interface {
	Name() string
	// Binary reports whether the output is not meant for a terminal.
	Binary() bool
	Write(w io.Writer, r engine.Report, opts Options) error
}

var registry = map[string]func() Writer{}

// Register adds a writer constructor to the registry.
func Register(name string, constructor func() Writer) {
	registry[name] = constructor
}

// Get returns a writer by name.
func Get(name string) (Writer, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Newf("unknown format: %s (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
