package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"github.com/vizkit/explorer/config"
	"github.com/vizkit/explorer/host"
	"github.com/vizkit/explorer/panel"
	"github.com/vizkit/explorer/viewport"
)

// runWindow assembles the GUI shell: viewport widget in the center, parameter
// panel docked on the left, menus for export, view toggles, and module
// switching.
func runWindow(reg *host.Registry, cfg config.Config, log *zap.Logger) {
	a := app.NewWithID("com.vizkit.explorer")
	w := a.NewWindow("Physics & Math Explorer")
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	vpOpts := viewport.DefaultOptions()
	vpOpts.Logger = log
	vp := viewport.New(vpOpts)
	view := viewport.NewWidget(vp)

	pan := panel.New(panel.Options{Logger: log})

	hst := host.New(reg, vp, host.Options{
		Panel:  pan,
		Logger: log,
		OnError: func(err error) {
			dialog.ShowError(err, w)
		},
	})
	pan.OnChanged(hst.OnParams)

	w.SetMainMenu(buildMainMenu(a, w, vp, hst, reg))

	side := container.NewVScroll(pan)
	side.SetMinSize(fyne.NewSize(280, 0))
	w.SetContent(container.NewBorder(nil, nil, side, nil, view))

	if err := hst.Activate(cfg.Module); err != nil {
		log.Error("startup activation failed", zap.String("module", cfg.Module), zap.Error(err))
		dialog.ShowError(err, w)
	}

	w.SetOnClosed(func() {
		hst.Deactivate()
	})
	w.ShowAndRun()
}

func buildMainMenu(a fyne.App, w fyne.Window, vp *viewport.Viewport, hst *host.Host, reg *host.Registry) *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Snapshot...", func() {
			exportSnapshot(w, vp)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.Quit()
		}),
	)

	gridItem := fyne.NewMenuItem("Show Grid", nil)
	gridItem.Checked = true
	gridItem.Action = func() {
		gridItem.Checked = !gridItem.Checked
		vp.SetGridVisible(gridItem.Checked)
		w.MainMenu().Refresh()
	}
	axesItem := fyne.NewMenuItem("Show Axes", nil)
	axesItem.Checked = true
	axesItem.Action = func() {
		axesItem.Checked = !axesItem.Checked
		vp.SetAxesVisible(axesItem.Checked)
		w.MainMenu().Refresh()
	}
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Reset Camera", func() {
			vp.ResetCamera()
		}),
		fyne.NewMenuItemSeparator(),
		gridItem,
		axesItem,
	)

	moduleItems := make([]*fyne.MenuItem, 0, reg.Len())
	for _, meta := range reg.Metas() {
		id := meta.ID
		moduleItems = append(moduleItems, fyne.NewMenuItem(meta.Name, func() {
			if err := hst.Activate(id); err != nil {
				dialog.ShowError(err, w)
			}
		}))
	}
	modulesMenu := fyne.NewMenu("Modules", moduleItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About",
				"Physics & Math Explorer\n\nInteractive math and physics visualizations\nrendered in a software 3D viewport.", w)
		}),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu, modulesMenu, helpMenu)
}

// exportSnapshot prompts for a destination and writes the current frame as PNG.
func exportSnapshot(w fyne.Window, vp *viewport.Viewport) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if err := vp.EncodePNG(wc); err != nil {
			dialog.ShowError(err, w)
		}
	}, w)
	d.SetFileName("snapshot.png")
	d.Show()
}
