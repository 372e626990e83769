package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/PacifiK2460/python-plotter/pkg/chart"
	"github.com/PacifiK2460/python-plotter/pkg/engine"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// plotterUI owns the window state. Nothing outside it touches the chart.
type plotterUI struct {
	win fyne.Window
	log *zap.Logger

	function *widget.Entry
	min      *widget.Entry
	max      *widget.Entry
	plotBtn  *widget.Button
	clearBtn *widget.Button
	view     *canvas.Image

	chart   *chart.Chart
	lastErr error
}

func newPlotterUI(w fyne.Window, log *zap.Logger) *plotterUI {
	ui := &plotterUI{win: w, log: log, chart: chart.New()}

	ui.function = widget.NewEntry()
	ui.function.SetPlaceHolder("x^2")
	ui.min = widget.NewEntry()
	ui.min.SetPlaceHolder("0")
	ui.max = widget.NewEntry()
	ui.max.SetPlaceHolder("10")

	ui.plotBtn = widget.NewButton("Plot", ui.plot)
	ui.clearBtn = widget.NewButton("Clear", ui.clear)

	ui.view = canvas.NewImageFromImage(nil)
	ui.view.FillMode = canvas.ImageFillContain
	ui.view.SetMinSize(fyne.NewSize(480, 300))
	ui.redraw()
	return ui
}

func (ui *plotterUI) content() fyne.CanvasObject {
	form := widget.NewForm(widget.NewFormItem("Function:", ui.function))
	limits := container.NewGridWithColumns(4,
		widget.NewLabel("Lower limit:"), ui.min,
		widget.NewLabel("Upper limit:"), ui.max,
	)
	buttons := container.NewGridWithColumns(2, ui.plotBtn, ui.clearBtn)
	top := container.NewVBox(form, limits, buttons)
	return container.NewBorder(top, nil, nil, nil, ui.view)
}

// plot validates the fields, then clears the chart and draws the function.
// A rejected request leaves the chart alone; a failed evaluation leaves it
// cleared.
func (ui *plotterUI) plot() {
	if ui.function.Text == "" || ui.min.Text == "" || ui.max.Text == "" {
		ui.fail(errors.Mark(errors.New("please fill in all fields"), engine.ErrValidation))
		return
	}

	cfg := engine.DefaultConfig()
	cfg.Expression = ui.function.Text
	cfg.Min = ui.min.Text
	cfg.Max = ui.max.Text
	e, err := engine.New(cfg, ui.log)
	if err != nil {
		ui.fail(err)
		return
	}
	_, err = e.Plot(ui.chart)
	ui.redraw()
	if err != nil {
		ui.fail(errors.Wrap(err, "error evaluating the function"))
		return
	}
	ui.lastErr = nil
}

func (ui *plotterUI) clear() {
	ui.chart.Clear()
	ui.lastErr = nil
	ui.redraw()
}

func (ui *plotterUI) fail(err error) {
	ui.lastErr = err
	ui.log.Warn("plot failed", zap.String("class", engine.Classify(err)), zap.Error(err))
	dialog.ShowError(errors.New(engine.Describe(err)), ui.win)
}

func (ui *plotterUI) redraw() {
	img, err := ui.chart.Image(chartWidth, chartHeight)
	if err != nil {
		ui.log.Error("rendering chart", zap.Error(err))
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	ui.view.Image = img
	ui.view.Refresh()
}
