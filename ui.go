package main

import (
	"fmt"
	"sync/atomic"
	"time"

	ui "github.com/gizak/termui"
)

type devkitUI struct {
	lastInputTime int64
	list          *ui.List
	content       *ui.Par
	help          *ui.Par
	flash         *ui.Par
	a             *app
}

func toolListItems(current tool) []string {
	var items []string
	for t := tool(0); t < toolCount; t++ {
		if t == current {
			items = append(items, fmt.Sprintf("> %v <", t))
		} else {
			items = append(items, t.String())
		}
	}
	return items
}

func newDevkitUI(a *app) *devkitUI {
	height := ui.TermHeight() - 3

	// tool list
	ls := ui.NewList()
	ls.ItemFgColor = ui.ColorYellow
	ls.Height = height
	ls.BorderLabel = "Tools"
	ls.Items = toolListItems(a.current)

	// tool panel
	content := ui.NewPar("")
	content.Height = height
	content.BorderLabel = a.current.String()
	content.TextFgColor = ui.ColorWhite

	help := ui.NewPar("")
	help.Height = 3
	help.BorderLabel = "Keys ([ tab ] next tool, [ esc ] quit)"
	help.TextFgColor = ui.ColorCyan

	// flash message
	flash := ui.NewPar("")
	flash.Height = 1
	flash.Width = 80
	flash.Border = false
	flash.Float = ui.AlignBottom
	flash.TextFgColor = ui.ColorGreen

	ui.Body.AddRows(
		ui.NewRow(
			ui.NewCol(3, 0, ls),
			ui.NewCol(9, 0, content),
		),
		ui.NewRow(
			ui.NewCol(12, 0, help),
		),
	)

	return &devkitUI{
		lastInputTime: time.Now().Unix(),
		list:          ls,
		content:       content,
		help:          help,
		flash:         flash,
		a:             a,
	}
}

func (d *devkitUI) sync() {
	d.list.Items = toolListItems(d.a.current)
	d.content.BorderLabel = d.a.current.String()
	d.content.Text = d.a.content()
	d.help.Text = d.a.help()
	d.flash.Text = d.a.flash
}

func (d *devkitUI) render() {
	d.sync()
	ui.Clear()
	ui.Render(ui.Body)
	if d.flash.Text != "" {
		ui.Render(d.flash)
	}
}

func (d *devkitUI) run() {
	ui.Handle("/sys/kbd", func(e ui.Event) {
		atomic.StoreInt64(&d.lastInputTime, time.Now().Unix())
		d.a.handleKey(e.Data.(ui.EvtKbd).KeyStr)
		if d.a.quit {
			ui.StopLoop()
			return
		}
		d.render()
	})
	ui.Handle("/sys/wnd/resize", func(ui.Event) {
		if ui.TermWidth() > 20 {
			ui.Body.Width = ui.TermWidth()
		}
		if ui.TermHeight() > 8 {
			d.list.Height = ui.TermHeight() - 3
			d.content.Height = ui.TermHeight() - 3
		}
		ui.Body.Align()
		d.render()
	})
	ui.Body.Align()
	d.render()
	ui.Loop()
}

// runUI takes over the terminal until the user quits or no key has been
// pressed for `timeout`. A zero timeout disables the idle check.
func runUI(a *app, timeout time.Duration) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	d := newDevkitUI(a)

	done := make(chan struct{})
	defer close(done)
	if timeout > 0 {
		go func() {
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
				}

				if time.Since(time.Unix(atomic.LoadInt64(&d.lastInputTime), 0)) > timeout {
					a.log.Info("idle timeout reached, closing ui", "timeout", timeout)
					ui.StopLoop()
					return
				}
			}
		}()
	}

	d.run()
	return nil
}
