// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arborist/layout"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// getBanner creates a datetime message
func getBanner(t time.Time, startedAt time.Time) string {
	elapsed := t.Sub(startedAt).Round(time.Second)
	msg := ""

	switch {
	case elapsed < time.Minute:
		msg = "Fresh session 🌱"
	default:
		msg = fmt.Sprintf("Growing for %s 🌱", elapsed)
	}
	return fmt.Sprintf("%s. %s", FormatDateTime(t), msg)
}

// getPaddedFact adds before and after padding to a fact
func getPaddedFact(fact string) string {
	return " " + fact + " "
}

// renderTreePane draws the current tree through the render cache
func renderTreePane(tree *AVLTree, manager *layout.Manager, layoutName string, opts layout.Options, rc *cache.Cache) string {
	if tree.Root == nil {
		return emptyTreeMessage
	}

	edges := tree.GenerateEdges()
	key := RenderCacheKey(layoutName, opts, tree.Root.Key, edges)
	if rendered := GetRender(rc, key); rendered != "" {
		return rendered
	}

	g, err := layout.BuildGraph(tree.Root.Key, edges)
	if err != nil {
		return fmt.Sprintf("Failed to lay the tree out: %v", err)
	}

	rendered, err := manager.RenderWith(layoutName, g, opts)
	if err != nil {
		return fmt.Sprintf("Failed to lay the tree out: %v", err)
	}
	CacheRender(rc, key, rendered)
	return rendered
}

// buildLogRows turns session records into colored list rows, newest first
func buildLogRows(session *Session, limit int) []string {
	records := session.Records()
	rows := []string{}
	for i := len(records) - 1; i >= 0 && len(rows) < limit; i-- {
		record := records[i]
		if record.Outcome == OutcomeDuplicate {
			rows = append(rows, fmt.Sprintf("[♻ %d duplicate](fg:yellow) %s",
				record.Value, FormatTime(record.Timestamp)))
		} else {
			rows = append(rows, fmt.Sprintf("[+ %d inserted](fg:green) %s",
				record.Value, FormatTime(record.Timestamp)))
		}
	}
	for _, token := range session.Rejected() {
		if len(rows) >= limit {
			break
		}
		rows = append(rows, fmt.Sprintf("[! %q rejected](fg:red)", token))
	}
	if len(rows) == 0 {
		rows = append(rows, "Type integers and press Enter to grow the tree")
	}
	return rows
}

// buildHotRows formats the most offered keys for the stats layout
func buildHotRows(session *Session) []string {
	hot := session.HotKeys(15)
	if len(hot) == 0 {
		return []string{"No keys offered yet"}
	}
	rows := make([]string, 0, len(hot))
	for _, kc := range hot {
		rows = append(rows, fmt.Sprintf("[%d](fg:green) offered %d time(s)", kc.Key, kc.Count))
	}
	return rows
}

// computeHeaderRatio determines the percentage of vertical space to allocate
// for the banner widgets (Today and Tree Lore). It ensures they remain
// readable on smaller terminals by reserving at least three lines and no more
// than a quarter of the screen.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.05
	}
	minLines := 3.0
	ratio := minLines / float64(termHeight)
	if ratio < 0.05 {
		ratio = 0.05
	}
	if ratio > 0.25 {
		ratio = 0.25
	}
	return ratio
}

func showTreeWidget(
	grid *ui.Grid,
	inputPara *widgets.Paragraph,
	logList *widgets.List,
	treePara *widgets.Paragraph,
	dateTimePara *widgets.Paragraph,
	factPara *widgets.Paragraph,
	headerRatio float64,
) {
	grid.Set(
		ui.NewCol(0.3,
			ui.NewRow(0.2, inputPara),
			ui.NewRow(0.8, logList),
		),
		ui.NewCol(0.7,
			ui.NewRow(headerRatio, ui.NewCol(0.4, dateTimePara), ui.NewCol(0.6, factPara)),
			ui.NewRow(1-headerRatio, treePara),
		),
	)
}

func showStatsWidget(
	grid *ui.Grid,
	inputPara *widgets.Paragraph,
	logList *widgets.List,
	statsPara *widgets.Paragraph,
	hotList *widgets.List,
	shortcutsPara *widgets.Paragraph,
	headerRatio float64,
) {
	grid.Set(
		ui.NewCol(0.3,
			ui.NewRow(0.2, inputPara),
			ui.NewRow(0.8, logList),
		),
		ui.NewCol(0.7,
			ui.NewRow(0.2, statsPara),
			ui.NewRow(0.4, hotList),
			ui.NewRow(0.4, shortcutsPara),
		),
	)
}

// toggleBorders toggles borders of given widgets b/w focused & blurred
func toggleBorders(logList *widgets.List, treePara *widgets.Paragraph, focusOnTree bool) {
	if focusOnTree {
		logList.BorderStyle = StyleBorder(false)
		treePara.BorderStyle = StyleBorder(true)
	} else {
		logList.BorderStyle = StyleBorder(true)
		treePara.BorderStyle = StyleBorder(false)
	}
}

// runClassicApp drives the termui dashboard view
func runClassicApp(tree *AVLTree, session *Session, rc *cache.Cache, config *Config) {
	// Done channel for ticker
	done := make(chan bool)

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	InitializeColors()

	manager := layout.NewManager()
	layoutName := config.Display.Layout
	if layoutName == layoutAuto {
		layoutName = manager.Default().Name()
	}
	if _, err := manager.Get(layoutName); err != nil {
		layoutName = manager.Default().Name()
	}
	opts := layout.Options{
		ASCII:       config.Display.ASCII,
		ShowHeights: config.Display.ShowHeights,
	}

	startedAt := session.StartedAt()

	datetimePara := widgets.NewParagraph()
	datetimePara.Title = " Today "
	datetimePara.Text = getBanner(time.Now(), startedAt)
	datetimePara.WrapText = true
	datetimePara.TextStyle = StyleTextMuted()

	factPara := widgets.NewParagraph()
	factPara.Title = " Tree Lore "
	factPara.Text = getPaddedFact(GetRandomFact())
	factPara.WrapText = true
	factPara.TextStyle = StyleInfo()

	// 1. Create the input paragraph
	inputPara := widgets.NewParagraph()
	inputPara.Title = " Type Values "
	inputPara.Text = ""
	inputPara.TextStyle.Bg = ui.ColorBlue
	inputPara.TextStyle.Fg = ui.ColorBlack
	inputPara.BorderStyle = StyleWarning()

	// List to show insert outcomes
	logList := widgets.NewList()
	logList.Title = " Event Log 🌱 "
	logList.Rows = buildLogRows(session, 100)
	logList.SelectedRow = 0
	logList.SelectedRowStyle = ui.NewStyle(ui.ColorBlack, ui.ColorGreen)
	logList.BorderStyle = StyleBorder(true)

	// Create a widget to show the rendered tree
	treePara := widgets.NewParagraph()
	treePara.Title = fmt.Sprintf(" Tree [%s] ", layoutName)
	treePara.Text = renderTreePane(tree, manager, layoutName, opts, rc)
	treePara.TextStyle = StyleText()
	treePara.TitleStyle = StylePrimary()
	treePara.BorderStyle = StyleBorder(false)

	// Stats layout widgets
	statsPara := widgets.NewParagraph()
	statsPara.Title = " Session "
	statsPara.Text = session.Stats()
	statsPara.WrapText = true
	statsPara.TextStyle = StyleSuccess()

	hotList := widgets.NewList()
	hotList.Title = " Hot Keys 🔥 "
	hotList.Rows = buildHotRows(session)
	hotList.SelectedRowStyle = ui.NewStyle(ui.ColorBlack, ui.ColorYellow)
	hotList.WrapText = true
	hotList.TextStyle = StyleText()

	shortcutsPara := widgets.NewParagraph()
	shortcutsPara.Title = " Keyboard Shortcuts "
	shortcutsPara.Text = `[<enter>](fg:green) -> Insert the typed values
[<ctrl> + r](fg:green) -> Reset value input
[<tab>](fg:green) -> Switch b/w event log and tree
[<up>/<down>](fg:green) -> Move through the event log
[<ctrl> + l](fg:green) -> Cycle through tree views
[<ctrl> + t](fg:green) -> Toggle height labels
[<ctrl> + z](fg:green) -> Copy the rendered tree
[<f1>](fg:green) -> Switch b/w tree and session stats
[<esc>](fg:green) or [<ctrl> + c](fg:green) -> Quit Arborist`

	// === Layout with Grid ===
	termWidth, termHeight := ui.TerminalDimensions()
	headerRatio := computeHeaderRatio(termHeight)
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)

	// The canopy view spreads with the tree, so give it the pane width
	opts.Width = int(float64(termWidth)*0.7) - 4

	showTreeWidget(grid, inputPara, logList, treePara, datetimePara, factPara, headerRatio)
	// 4. Render initial UI
	ui.Render(grid)

	focusOnTree := false
	statsVisible := false
	uiEvents := ui.PollEvents()
	inputBuffer := "" // We'll store typed characters here

	dateTi := time.NewTicker(1 * time.Second)
	factTi := time.NewTicker(10 * time.Second)

	// Start a ticker to update clock on the app
	go func() {
		for {
			select {
			case <-done:
				return
			case t := <-dateTi.C:
				datetimePara.Text = getBanner(t, startedAt)
				ui.Render(datetimePara)
			case <-factTi.C:
				factPara.Text = getPaddedFact(GetRandomFact())
				ui.Render(factPara)
			}
		}
	}()

	repaint := func() {
		treePara.Title = fmt.Sprintf(" Tree [%s] ", layoutName)
		treePara.Text = renderTreePane(tree, manager, layoutName, opts, rc)
		logList.Rows = buildLogRows(session, 100)
		statsPara.Text = session.Stats()
		hotList.Rows = buildHotRows(session)
	}

	for {
		e := <-uiEvents
		switch e.ID {
		case "<C-c>", "<Escape>":
			// Ctrl-C or Escape to exit
			done <- true
			return
		case "<C-z>":
			rendered := renderTreePane(tree, manager, layoutName, opts, rc)
			if err := clipboard.WriteAll(rendered); err != nil {
				log.Printf("Failed to copy text: %v", err)
			}
		case "<Tab>":
			// Press Tab to toggle focus
			focusOnTree = !focusOnTree
			toggleBorders(logList, treePara, focusOnTree)
		case "<Backspace>":
			// Remove the last character from input
			if len(inputBuffer) > 0 {
				inputBuffer = inputBuffer[:len(inputBuffer)-1]
			}
		case "<Space>":
			// Specifically handle space
			inputBuffer += " "
		case "<Enter>":
			values, rejected := ParseArgs([]string{inputBuffer})
			for _, token := range rejected {
				session.NoteRejected(token)
			}
			LoadValues(tree, session, values, false)
			if len(rejected) > 0 {
				inputPara.BorderStyle = StyleError()
			} else {
				inputPara.BorderStyle = StyleWarning()
			}
			inputBuffer = ""
			logList.SelectedRow = 0
			repaint()
		case "<Up>":
			if !focusOnTree {
				if logList.SelectedRow > 0 {
					logList.SelectedRow--
				}
			}
		case "<Down>":
			if !focusOnTree {
				if logList.SelectedRow < len(logList.Rows)-1 {
					logList.SelectedRow++
				}
			}
		case "<C-j>":
			// Go to the last line
			if !focusOnTree {
				logList.SelectedRow = len(logList.Rows) - 1
			}
		case "<C-k>":
			// Go to the first line
			if !focusOnTree {
				logList.SelectedRow = 0
			}
		case "<C-l>":
			layoutName = manager.Next(layoutName).Name()
			repaint()
		case "<C-t>":
			opts.ShowHeights = !opts.ShowHeights
			repaint()
		case "<C-r>":
			inputBuffer = ""
		case "<F1>":
			statsVisible = !statsVisible
			if statsVisible {
				showStatsWidget(grid, inputPara, logList, statsPara, hotList, shortcutsPara, headerRatio)
			} else {
				showTreeWidget(grid, inputPara, logList, treePara, datetimePara, factPara, headerRatio)
			}
			repaint()
			ui.Clear()
		case "<Resize>":
			// Adjust layout when the terminal size changes
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
				headerRatio = computeHeaderRatio(payload.Height)
				opts.Width = int(float64(payload.Width)*0.7) - 4
			} else {
				termWidth, termHeight := ui.TerminalDimensions()
				grid.SetRect(0, 0, termWidth, termHeight)
				headerRatio = computeHeaderRatio(termHeight)
				opts.Width = int(float64(termWidth)*0.7) - 4
			}
			if statsVisible {
				showStatsWidget(grid, inputPara, logList, statsPara, hotList, shortcutsPara, headerRatio)
			} else {
				showTreeWidget(grid, inputPara, logList, treePara, datetimePara, factPara, headerRatio)
			}
			repaint()
			ui.Clear()
			ui.Render(grid)
		default:
			// Typically a typed character
			if !focusOnTree {
				if e.Type == ui.KeyboardEvent && len(e.ID) == 1 {
					// Add typed character to input
					inputBuffer += e.ID
				}
			}
		}

		// Update the paragraph to show the current input
		inputPara.Text = inputBuffer

		// Re-render all widgets
		ui.Render(grid)
	}
}
