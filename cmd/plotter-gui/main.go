// Command plotter-gui is the desktop front end: a function entry, two
// limits, Plot and Clear buttons and the chart.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	a := app.New()
	w := a.NewWindow("Function Plotter")
	ui := newPlotterUI(w, log)
	w.SetContent(ui.content())
	w.Resize(fyne.NewSize(800, 600))
	w.ShowAndRun()
}
