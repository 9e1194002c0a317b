// Package fyneui is the GUI backend: a small always-running window with
// the bot status line and the most-recent-first event log.
package fyneui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"discord-watcher/internal/ui"
)

type App struct {
	fyneApp fyne.App
	window  fyne.Window

	status binding.String
	lines  binding.StringList
}

func New() *App {
	return &App{
		fyneApp: app.NewWithID("io.discordwatcher.app"),
		status:  binding.NewString(),
		lines:   binding.NewStringList(),
	}
}

// SetBotName implements ui.View. Bindings are safe to set from the sink
// goroutine.
func (a *App) SetBotName(name string) {
	_ = a.status.Set("connected as " + name)
}

// Prepend implements ui.View: newest event first.
func (a *App) Prepend(line string) {
	cur, _ := a.lines.Get()
	_ = a.lines.Set(append([]string{line}, cur...))
}

// Run builds the window and blocks on the fyne event loop. Must be called
// on the main goroutine.
func (a *App) Run(sink *ui.Sink) {
	w := a.fyneApp.NewWindow("Discord Watcher")
	a.window = w

	_ = a.status.Set("connecting...")
	statusLabel := widget.NewLabelWithData(a.status)

	list := widget.NewListWithData(a.lines,
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)

	title := widget.NewLabelWithStyle("Discord Events", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	top := container.NewVBox(title, statusLabel, widget.NewSeparator())
	w.SetContent(container.NewBorder(top, nil, nil, nil, list))

	w.SetMainMenu(a.buildMenu(sink))
	w.Resize(fyne.NewSize(420, 520))
	w.SetMaster()
	w.ShowAndRun()
}

func (a *App) buildMenu(sink *ui.Sink) *fyne.MainMenu {
	set := sink.Settings()

	clearItem := fyne.NewMenuItem("Clear Events", func() {
		_ = a.lines.Set(nil)
	})

	notifyItem := fyne.NewMenuItem("Notifications", nil)
	notifyItem.Checked = set.Notifications
	soundItem := fyne.NewMenuItem("Sound", nil)
	soundItem.Checked = set.Sound

	menu := fyne.NewMainMenu(fyne.NewMenu("Watcher",
		clearItem,
		fyne.NewMenuItemSeparator(),
		notifyItem,
		soundItem,
	))

	notifyItem.Action = func() {
		cur := sink.Settings()
		cur.Notifications = !cur.Notifications
		sink.SetSettings(cur)
		notifyItem.Checked = cur.Notifications
		menu.Refresh()
	}
	soundItem.Action = func() {
		cur := sink.Settings()
		cur.Sound = !cur.Sound
		sink.SetSettings(cur)
		soundItem.Checked = cur.Sound
		menu.Refresh()
	}

	return menu
}

// Quit stops the event loop; safe to call from any goroutine and more
// than once.
func (a *App) Quit() {
	if a.fyneApp != nil {
		a.fyneApp.Quit()
	}
}

var _ ui.View = (*App)(nil)
