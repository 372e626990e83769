package output

import (
	"encoding/json"
	"io"

	"github.com/PacifiK2460/python-plotter/pkg/engine"
)

func init() {
	Register("json", func() Writer { return &JSON{} })
}

// JSON writes the whole report as indented JSON.
type JSON struct{}

func (j *JSON) Name() string { return "json" }
func (j *JSON) Binary() bool { return false }

func (j *JSON) Write(w io.Writer, r engine.Report, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
