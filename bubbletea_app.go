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
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arborist/layout"
)

// BubbleTeaMode represents different UI modes
type BubbleTeaMode int

const (
	ModeGrow BubbleTeaMode = iota
	ModeStats
)

// layoutAuto picks whichever registered view fits the current width
const layoutAuto = "auto"

const emptyTreeMessage = "The tree is empty.\n\nType an integer to plant the first key."

// Model represents the Bubble Tea application state
type Model struct {
	mode  BubbleTeaMode
	ready bool

	// Grow mode components
	textInput    textinput.Model
	logList      list.Model
	treeViewport viewport.Model

	// Stats mode components
	hotList       list.Model
	statsViewport viewport.Model

	// Data
	tree        *AVLTree
	session     *Session
	renderCache *cache.Cache
	config      *Config
	manager     *layout.Manager

	// State
	focusIndex   int
	focusOnTree  bool // True when the tree viewport is focused for scrolling
	layoutName   string
	opts         layout.Options
	logItems     []logItem
	lastRendered string
	status       string
	statusStyle  lipgloss.Style

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("35")). // Green border for the active pane
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Bright green, visible on dark backgrounds
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// logItem represents one line in the event log list
type logItem struct {
	title string
	desc  string
}

func (i logItem) FilterValue() string { return i.title }
func (i logItem) Title() string       { return i.title }
func (i logItem) Description() string { return i.desc }

// hotItem represents one ranked key in the hot keys list
type hotItem struct {
	keyCount KeyCount
}

func (i hotItem) FilterValue() string { return fmt.Sprintf("%d", i.keyCount.Key) }
func (i hotItem) Title() string       { return fmt.Sprintf("%d", i.keyCount.Key) }
func (i hotItem) Description() string {
	if i.keyCount.Count == 1 {
		return "offered once"
	}
	return fmt.Sprintf("offered %d times", i.keyCount.Count)
}

// InitialModel creates the initial model
func InitialModel(tree *AVLTree, session *Session, rc *cache.Cache, config *Config) Model {
	styles := NewStyles()

	// Initialize text input for values and colon commands
	ti := textinput.New()
	ti.Placeholder = "Type integers (10, 3,7 or 1..15) or :commands..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	ti.PromptStyle = styles.InputPrompt

	// Initialize the event log list
	items := []list.Item{}
	logList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	logList.SetShowTitle(false) // Completely disable built-in title rendering
	logList.SetShowHelp(false)

	// Initialize the tree viewport
	treeViewport := viewport.New(0, 0)
	treeViewport.SetContent(emptyTreeMessage)

	// Initialize stats mode components
	hotItems := []list.Item{}
	hotList := list.New(hotItems, list.NewDefaultDelegate(), 0, 0)
	hotList.SetShowTitle(false)
	hotList.SetShowHelp(false)

	statsViewport := viewport.New(0, 0)
	statsViewport.SetContent("Insert some keys to build up session statistics...")

	// Initialize glamour renderer with auto-detection
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	layoutName := config.Display.Layout
	manager := layout.NewManager()
	if layoutName != layoutAuto {
		if _, err := manager.Get(layoutName); err != nil {
			layoutName = manager.Default().Name()
		}
	}

	model := Model{
		mode:          ModeGrow,
		textInput:     ti,
		logList:       logList,
		treeViewport:  treeViewport,
		hotList:       hotList,
		statsViewport: statsViewport,
		tree:          tree,
		session:       session,
		renderCache:   rc,
		config:        config,
		manager:       manager,
		layoutName:    layoutName,
		opts: layout.Options{
			ASCII:       config.Display.ASCII,
			ShowHeights: config.Display.ShowHeights,
		},
		focusIndex:      0,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		statusStyle:     styles.HelpDesc,
		status:          "Ready",
	}

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f2":
			// Switch between modes
			m.focusIndex = 0
			m.focusOnTree = false
			if m.mode == ModeGrow {
				m.mode = ModeStats
				m.refreshStats()
			} else {
				m.mode = ModeGrow
				m.refreshTree()
			}
			return m, nil
		}

		// Handle mode-specific key events
		if m.mode == ModeGrow {
			return m.updateGrowMode(msg)
		}
		return m.updateStatsMode(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTree()
		m.ready = true
	}

	return m, tea.Batch(cmds...)
}

// updateGrowMode handles key events for grow mode
func (m Model) updateGrowMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg.String() {
	case "tab":
		if m.focusOnTree {
			// From the tree back to the input (completing the cycle)
			m.focusOnTree = false
			m.focusIndex = 0
		} else if m.focusIndex == 0 {
			// From input to the event log
			m.focusIndex = 1
		} else {
			// From the event log to the tree
			m.focusOnTree = true
		}
	case "enter":
		if m.focusIndex == 0 && !m.focusOnTree {
			m.submitInput()
			return m, nil
		}
		if m.focusIndex == 1 && !m.focusOnTree && len(m.logItems) > 0 {
			// Copy the selected log line
			selectedIndex := m.logList.Index()
			if selectedIndex >= 0 && selectedIndex < len(m.logItems) {
				m.copyWithStatus(m.logItems[selectedIndex].title)
			}
			return m, nil
		}
	case "ctrl+e":
		// Copy a Graphviz export of the current tree
		if dot := m.renderExport("dot"); dot != "" {
			m.copyWithStatus(dot)
		} else {
			m.setStatus("❌ Nothing to export yet", true)
		}
		return m, nil
	case "ctrl+x":
		// Copy the raw edge list
		if m.tree.Root == nil {
			m.setStatus("❌ Nothing to copy yet", true)
			return m, nil
		}
		var sb strings.Builder
		for _, edge := range m.tree.GenerateEdges() {
			fmt.Fprintf(&sb, "%d -> %d\n", edge[0], edge[1])
		}
		m.copyWithStatus(strings.TrimRight(sb.String(), "\n"))
		return m, nil
	case "ctrl+r":
		m.textInput.SetValue("")
		m.status = "Ready"
		m.statusStyle = m.styles.HelpDesc
		return m, nil
	case "ctrl+l":
		// Cycle through the registered views
		m.cycleLayout()
		return m, nil
	case "ctrl+t":
		m.opts.ShowHeights = !m.opts.ShowHeights
		m.refreshTree()
		m.setStatus(fmt.Sprintf("Height labels: %t", m.opts.ShowHeights), false)
		return m, nil
	case "f1":
		// Show the guide in the tree pane
		m.showGuide()
		return m, nil
	case "ctrl+z":
		// Copy the full rendered tree, not just the visible window
		if m.lastRendered != "" {
			m.copyWithStatus(m.lastRendered)
		}
		return m, nil
	case "pgup":
		if m.focusOnTree {
			m.treeViewport.LineUp(m.treeViewport.Height)
			return m, nil
		}
	case "pgdown":
		if m.focusOnTree {
			m.treeViewport.LineDown(m.treeViewport.Height)
			return m, nil
		}
	case "home":
		if m.focusOnTree {
			m.treeViewport.GotoTop()
			return m, nil
		}
	case "end":
		if m.focusOnTree {
			m.treeViewport.GotoBottom()
			return m, nil
		}
	case "up", "k":
		if m.focusOnTree {
			m.treeViewport.LineUp(1)
			return m, nil
		} else if m.focusIndex == 1 && len(m.logItems) > 0 {
			// Manual navigation for the event log
			if m.logList.Index() > 0 {
				m.logList.CursorUp()
			}
			return m, nil
		}
	case "down", "j":
		if m.focusOnTree {
			m.treeViewport.LineDown(1)
			return m, nil
		} else if m.focusIndex == 1 && len(m.logItems) > 0 {
			if m.logList.Index() < len(m.logItems)-1 {
				m.logList.CursorDown()
			}
			return m, nil
		}
	}

	// Update components based on focus
	if m.focusOnTree {
		// When the tree is focused, the viewport handles scrolling (already handled above)
		msgStr := msg.String()
		if msgStr != "up" && msgStr != "down" && msgStr != "k" && msgStr != "j" {
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	} else if m.focusIndex == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		// Only let the list handle non-navigation keys
		msgStr := msg.String()
		if msgStr != "up" && msgStr != "down" && msgStr != "k" && msgStr != "j" {
			m.logList, cmd = m.logList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// updateStatsMode handles key events for stats mode
func (m Model) updateStatsMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg.String() {
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
	case "enter":
		if m.focusIndex == 0 {
			m.submitInput()
			m.refreshStats()
			return m, nil
		}
	case "up", "k":
		if m.focusIndex == 1 {
			if m.hotList.Index() > 0 {
				m.hotList.CursorUp()
			}
			return m, nil
		} else if m.focusIndex == 2 {
			m.statsViewport.LineUp(1)
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == 1 {
			if m.hotList.Index() < len(m.hotList.Items())-1 {
				m.hotList.CursorDown()
			}
			return m, nil
		} else if m.focusIndex == 2 {
			m.statsViewport.LineDown(1)
			return m, nil
		}
	}

	// Update components based on focus
	if m.focusIndex == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if m.focusIndex == 1 {
		msgStr := msg.String()
		if msgStr != "up" && msgStr != "down" && msgStr != "k" && msgStr != "j" {
			m.hotList, cmd = m.hotList.Update(msg)
			cmds = append(cmds, cmd)
		}
	} else {
		m.statsViewport, cmd = m.statsViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.mode == ModeGrow {
		return m.renderGrowView()
	}
	return m.renderStatsView()
}

// renderGrowView renders the main tree building view
func (m Model) renderGrowView() string {
	// Ensure we have minimum dimensions
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	// Calculate dimensions
	inputHeight := 4
	logHeight := m.height - inputHeight - 6 // Leave room for the footer
	logWidth := (m.width / 2) - 1
	treeWidth := m.width - logWidth - 3

	// Style the text input
	var inputStyle lipgloss.Style
	var inputTitle string
	if m.focusIndex == 0 && !m.focusOnTree {
		inputStyle = m.styles.BorderFocused
		inputTitle = " 🌱 Grow (Active)\n"
	} else {
		inputStyle = m.styles.BorderBlurred
		inputTitle = " 🌱 Grow\n"
	}

	// Ensure textInput has proper width
	m.textInput.Width = logWidth - 4 // Account for borders and padding

	inputBox := inputStyle.
		Width(logWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(logWidth-4).Render(inputTitle),
			m.textInput.View(),
			m.statusStyle.Render(m.status),
		))

	// Style the event log list
	var listStyle lipgloss.Style
	var listTitle string
	if m.focusIndex == 1 && !m.focusOnTree {
		listStyle = m.styles.BorderFocused
		listTitle = " 📜 Event Log (Active) "
	} else {
		listStyle = m.styles.BorderBlurred
		listTitle = " 📜 Event Log "
	}

	logBox := listStyle.
		Width(logWidth).
		Height(logHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(logWidth-4).Render(listTitle),
			m.logList.View(),
		))

	// Style the tree viewport
	var treeStyle lipgloss.Style
	var treeTitle string
	if m.focusOnTree {
		treeStyle = m.styles.BorderFocused
		treeTitle = m.getTreeTitle() + "(Active) "
	} else {
		treeStyle = m.styles.BorderBlurred
		treeTitle = m.getTreeTitle()
	}

	treeBox := treeStyle.
		Width(treeWidth).
		Height(logHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(treeWidth-4).Render(treeTitle),
			m.treeViewport.View(),
		))

	// Combine left column
	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		logBox,
	)

	// Combine everything horizontally
	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		treeBox,
	)

	// Add help footer
	help := m.renderGrowHelp()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		help,
	)
}

// renderStatsView renders the session statistics view
func (m Model) renderStatsView() string {
	// Ensure we have minimum dimensions
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	// Calculate dimensions
	inputHeight := 4
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1   // 40% for input + hot keys
	rightWidth := m.width - leftWidth - 3 // 60% for the summary

	// Style the text input
	var inputStyle lipgloss.Style
	var inputTitle string
	if m.focusIndex == 0 {
		inputStyle = m.styles.BorderFocused
		inputTitle = " 🌱 Grow (Active)\n"
	} else {
		inputStyle = m.styles.BorderBlurred
		inputTitle = " 🌱 Grow\n"
	}

	m.textInput.Width = leftWidth - 4

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.textInput.View(),
			m.statusStyle.Render(m.status),
		))

	// Style the hot keys list
	var hotStyle lipgloss.Style
	var hotTitle string
	if m.focusIndex == 1 {
		hotStyle = m.styles.BorderFocused
		hotTitle = " 🔥 Hot Keys (Active) "
	} else {
		hotStyle = m.styles.BorderBlurred
		hotTitle = " 🔥 Hot Keys "
	}

	hotBox := hotStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(hotTitle),
			m.hotList.View(),
		))

	// Style the summary viewport
	var statsStyle lipgloss.Style
	var statsTitle string
	if m.focusIndex == 2 {
		statsStyle = m.styles.BorderFocused
		statsTitle = " 📈 Session (Active) "
	} else {
		statsStyle = m.styles.BorderBlurred
		statsTitle = " 📈 Session "
	}

	statsBox := statsStyle.
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(statsTitle),
			m.statsViewport.View(),
		))

	// Combine left column
	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		hotBox,
	)

	// Combine everything horizontally
	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		statsBox,
	)

	// Add help footer
	help := m.renderStatsHelp()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		help,
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 4
	logHeight := m.height - inputHeight - 6
	logWidth := (m.width / 2) - 1
	treeWidth := m.width - logWidth - 3

	m.textInput.Width = logWidth - 4
	m.logList.SetSize(logWidth-2, logHeight-2)
	m.treeViewport.Width = treeWidth - 2
	m.treeViewport.Height = logHeight + inputHeight

	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	m.hotList.SetSize(leftWidth-2, logHeight-2)
	m.statsViewport.Width = rightWidth - 2
	m.statsViewport.Height = inputHeight + logHeight
}

// getTreeTitle names the tree pane after the current view
func (m *Model) getTreeTitle() string {
	if m.tree.Root == nil {
		return fmt.Sprintf(" 🌳 Tree [%s] ", m.layoutName)
	}
	return fmt.Sprintf(" 🌳 Tree [%s] %d keys, height %d ",
		m.layoutName, m.tree.Size(), m.tree.Height())
}

// setStatus updates the one line status under the input
func (m *Model) setStatus(status string, isError bool) {
	m.status = status
	if isError {
		m.statusStyle = m.styles.ErrorMessage
	} else {
		m.statusStyle = m.styles.SuccessMessage
	}
}

// submitInput handles one line from the prompt, either values or a
// colon command
func (m *Model) submitInput() {
	input := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	if input == "" {
		return
	}

	if IsCommand(input) {
		m.executeCommand(input)
		return
	}

	values, rejected := ParseArgs([]string{input})
	m.growValues(values, rejected)
}

// growValues inserts parsed values and logs every outcome
func (m *Model) growValues(values []int, rejected []string) {
	for _, token := range rejected {
		m.session.NoteRejected(token)
		m.appendLog(fmt.Sprintf("⚠️ %q rejected", token), "not an integer")
	}

	before := m.session.Attempts()
	inserted, duplicates := LoadValues(m.tree, m.session, values, false)

	for _, record := range m.session.Records()[before:] {
		attempts := m.session.AttemptCount(record.Value)
		desc := FormatTime(record.Timestamp)
		if attempts > 1 {
			desc = fmt.Sprintf("%s • attempt %d", desc, attempts)
		}
		if record.Outcome == OutcomeDuplicate {
			m.appendLog(fmt.Sprintf("♻️ %d already in the tree", record.Value), desc)
		} else {
			m.appendLog(fmt.Sprintf("➕ %d inserted", record.Value), desc)
		}
	}

	switch {
	case len(values) == 0 && len(rejected) > 0:
		m.setStatus(fmt.Sprintf("❌ Nothing usable in %v", rejected), true)
	case len(rejected) > 0:
		m.setStatus(fmt.Sprintf("⚠️ %d inserted, %d duplicates, %d rejected",
			inserted, duplicates, len(rejected)), true)
	case duplicates > 0:
		m.setStatus(fmt.Sprintf("✅ %d inserted, %d duplicates", inserted, duplicates), false)
	default:
		m.setStatus(fmt.Sprintf("✅ %d inserted", inserted), false)
	}

	m.refreshTree()
	if m.mode == ModeStats {
		m.refreshStats()
	}
}

// executeCommand runs one parsed colon command
func (m *Model) executeCommand(input string) {
	cmd, err := ParseCommand(input)
	if err != nil {
		m.setStatus(fmt.Sprintf("❌ %v", err), true)
		return
	}
	if !cmd.Known() {
		m.setStatus(fmt.Sprintf("❓ Unknown command :%s, try :help", cmd.Name), true)
		return
	}

	switch cmd.Name {
	case "load":
		if !cmd.HasArgs(1) {
			m.setStatus("❌ Usage: :load <path>", true)
			return
		}
		values, rejected, err := ReadValuesFile(cmd.Arg(0))
		if err != nil {
			m.setStatus(fmt.Sprintf("❌ %v", err), true)
			return
		}
		m.growValues(values, rejected)
	case "seed":
		if !cmd.HasArgs(1) {
			m.setStatus("❌ Usage: :seed <n..m>", true)
			return
		}
		values, err := ParseSequence(cmd.Arg(0))
		if err != nil {
			m.setStatus(fmt.Sprintf("❌ %v", err), true)
			return
		}
		m.growValues(values, nil)
	case "layout":
		if cmd.HasArgs(1) {
			name := strings.ToLower(cmd.Arg(0))
			if name != layoutAuto {
				if _, err := m.manager.Get(name); err != nil {
					m.setStatus(fmt.Sprintf("❌ %v", err), true)
					return
				}
			}
			m.layoutName = name
			m.refreshTree()
			m.setStatus(fmt.Sprintf("🔁 View: %s", m.layoutName), false)
		} else {
			m.cycleLayout()
		}
	case "ascii":
		m.opts.ASCII = !m.opts.ASCII
		m.refreshTree()
		m.setStatus(fmt.Sprintf("🔤 ASCII connectors: %t", m.opts.ASCII), false)
	case "heights":
		m.opts.ShowHeights = !m.opts.ShowHeights
		m.refreshTree()
		m.setStatus(fmt.Sprintf("📏 Height labels: %t", m.opts.ShowHeights), false)
	case "export":
		m.exportTree(cmd)
	case "stats":
		m.appendLog("📊 "+m.session.Stats(), FormatTime(m.session.StartedAt()))
		m.setStatus("✅ Session summary logged", false)
	case "reset":
		m.tree = NewAVLTree()
		m.session.Reset()
		m.logItems = nil
		m.logList.SetItems([]list.Item{})
		m.refreshTree()
		m.refreshStats()
		m.setStatus("🧹 Tree and session cleared", false)
	case "help":
		m.showGuide()
	}
}

// exportTree writes the tree in the requested format to a file
func (m *Model) exportTree(cmd *Command) {
	if m.tree.Root == nil {
		m.setStatus("❌ Nothing to export yet", true)
		return
	}
	format := strings.ToLower(cmd.Arg(0))
	if format == "" {
		format = "dot"
	}

	rendered := m.renderExport(format)
	if rendered == "" {
		m.setStatus(fmt.Sprintf("❌ Unknown export format %q", format), true)
		return
	}

	path := cmd.Arg(1)
	if path == "" {
		path = fmt.Sprintf("tree-%s.%s", FormatDate(time.Now()), exportExtension(format))
	}
	if err := os.WriteFile(path, []byte(rendered+"\n"), 0644); err != nil {
		m.setStatus(fmt.Sprintf("❌ %v", err), true)
		return
	}
	m.appendLog(fmt.Sprintf("💾 Exported %s to %s", format, path), FormatTime(m.session.StartedAt()))
	m.setStatus(fmt.Sprintf("💾 Wrote %s", path), false)
}

// renderExport renders the current tree with the named strategy,
// bypassing the on-screen options
func (m *Model) renderExport(name string) string {
	if m.tree.Root == nil {
		return ""
	}
	g, err := layout.BuildGraph(m.tree.Root.Key, m.tree.GenerateEdges())
	if err != nil {
		return ""
	}
	rendered, err := m.manager.RenderWith(name, g, layout.Options{ShowHeights: m.opts.ShowHeights})
	if err != nil {
		return ""
	}
	return rendered
}

// cycleLayout switches to the next registered view
func (m *Model) cycleLayout() {
	if m.layoutName == layoutAuto {
		m.layoutName = m.manager.Default().Name()
	} else {
		m.layoutName = m.manager.Next(m.layoutName).Name()
	}
	m.refreshTree()
	m.setStatus(fmt.Sprintf("🔁 View: %s", m.layoutName), false)
}

// appendLog adds one line to the event log and keeps the newest visible
func (m *Model) appendLog(title, desc string) {
	m.logItems = append(m.logItems, logItem{title: title, desc: desc})

	items := make([]list.Item, len(m.logItems))
	for i, item := range m.logItems {
		items[i] = item
	}
	m.logList.SetItems(items)

	// Follow the tail
	m.logList.Select(len(m.logItems) - 1)
}

// refreshTree redraws the tree pane through the render cache
func (m *Model) refreshTree() {
	if m.tree.Root == nil {
		m.lastRendered = ""
		m.treeViewport.SetContent(emptyTreeMessage)
		return
	}

	opts := m.opts
	opts.Width = m.treeViewport.Width

	edges := m.tree.GenerateEdges()
	key := RenderCacheKey(m.layoutName, opts, m.tree.Root.Key, edges)
	rendered := GetRender(m.renderCache, key)

	if rendered == "" {
		g, err := layout.BuildGraph(m.tree.Root.Key, edges)
		if err != nil {
			m.treeViewport.SetContent(fmt.Sprintf("Failed to lay the tree out: %v", err))
			return
		}

		if m.layoutName == layoutAuto {
			rendered, err = m.manager.RenderBest(g, opts)
		} else {
			rendered, err = m.manager.RenderWith(m.layoutName, g, opts)
		}
		if err != nil {
			m.treeViewport.SetContent(fmt.Sprintf("Failed to lay the tree out: %v", err))
			return
		}
		CacheRender(m.renderCache, key, rendered)
	}

	m.lastRendered = rendered
	m.treeViewport.SetContent(rendered)
}

// refreshStats rebuilds the hot keys list and the session summary
func (m *Model) refreshStats() {
	hot := m.session.HotKeys(20)
	items := make([]list.Item, len(hot))
	for i, kc := range hot {
		items[i] = hotItem{keyCount: kc}
	}
	m.hotList.SetItems(items)

	var content strings.Builder
	content.WriteString("# Session\n\n")
	content.WriteString(fmt.Sprintf("**Started:** %s\n\n", FormatDateTime(m.session.StartedAt())))
	content.WriteString(fmt.Sprintf("**Attempts:** %d (%d inserted, %d duplicates, %d rejected)\n\n",
		m.session.Attempts(), m.session.Inserted(), m.session.Duplicates(), m.session.RejectedCount()))

	if m.tree.Root != nil {
		content.WriteString(fmt.Sprintf("**Tree:** %d keys, height %d, root %d\n\n",
			m.tree.Size(), m.tree.Height(), m.tree.Root.Key))
	} else {
		content.WriteString("**Tree:** empty\n\n")
	}

	if rejected := m.session.Rejected(); len(rejected) > 0 {
		content.WriteString("## Rejected input\n\n")
		for _, token := range rejected {
			content.WriteString(fmt.Sprintf("- %q\n", token))
		}
		content.WriteString("\n")
	}

	content.WriteString("---\n\n")
	content.WriteString(fmt.Sprintf("*%s*\n", GetRandomFact()))

	// Try to render as markdown first
	if rendered, err := m.glamourRenderer.Render(content.String()); err == nil {
		m.statsViewport.SetContent(rendered)
	} else {
		// Fall back to plain text
		m.statsViewport.SetContent(content.String())
	}
}

// showGuide renders the guide into the tree pane
func (m *Model) showGuide() {
	if rendered, err := m.glamourRenderer.Render(usageMarkdown()); err == nil {
		m.treeViewport.SetContent(rendered)
	} else {
		m.treeViewport.SetContent(usageMarkdown())
	}
	m.focusOnTree = true
	m.setStatus("📖 Guide open, insert a value to return to the tree", false)
}

// renderGrowHelp renders the help footer for grow mode
func (m Model) renderGrowHelp() string {
	var keys []string
	var descs []string

	keys = append(keys, "enter")
	descs = append(descs, "insert / run")

	keys = append(keys, "tab")
	descs = append(descs, "switch focus")

	keys = append(keys, "ctrl+l")
	descs = append(descs, "cycle view")

	keys = append(keys, "ctrl+e")
	descs = append(descs, "copy dot export")

	keys = append(keys, "ctrl+z")
	descs = append(descs, "copy tree")

	keys = append(keys, "f1")
	descs = append(descs, "guide")

	keys = append(keys, "f2")
	descs = append(descs, "session stats")

	keys = append(keys, "esc")
	descs = append(descs, "quit")

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// renderStatsHelp renders the help footer for stats mode
func (m Model) renderStatsHelp() string {
	var keys []string
	var descs []string

	keys = append(keys, "enter")
	descs = append(descs, "insert / run")

	keys = append(keys, "tab")
	descs = append(descs, "switch focus")

	keys = append(keys, "f2")
	descs = append(descs, "grow mode")

	keys = append(keys, "esc")
	descs = append(descs, "quit")

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyWithStatus copies text and reports the result in the status line
// instead of stderr, which the alternate screen would swallow
func (m *Model) copyWithStatus(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		m.setStatus(fmt.Sprintf("❌ Clipboard: %v", err), true)
		return
	}
	if len(text) > 40 || strings.Contains(text, "\n") {
		m.setStatus(fmt.Sprintf("📋 Copied %d characters", len([]rune(text))), false)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied %q", text), false)
}

// exportExtension maps a strategy name to a file extension
func exportExtension(name string) string {
	switch name {
	case "dot":
		return "dot"
	case "mermaid":
		return "mmd"
	default:
		return "txt"
	}
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(tree *AVLTree, session *Session, rc *cache.Cache, config *Config) error {
	// Initialize colors
	InitializeColors()

	model := InitialModel(tree, session, rc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
