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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

type ColorScheme struct {
	Primary     ui.Color
	Secondary   ui.Color
	Accent      ui.Color
	Success     ui.Color
	Warning     ui.Color
	Error       ui.Color
	Info        ui.Color
	OnPrimary   ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI color codes for plain terminal output. InitializeColors swaps
// them for the detected terminal mode; the defaults suit dark mode.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

// detectTerminalMode guesses light or dark from common environment hints
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// COLORFGBG carries "foreground;background"; low background
		// numbers mean a dark terminal
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Most terminals run dark
	return TerminalModeDark
}

// createLightColorScheme returns the palette for light terminals. The
// primary stays green; a tree tool should look the part.
func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(2), // Dark Green
		Secondary:   ui.Color(6), // Dark Cyan
		Accent:      ui.ColorMagenta,
		Success:     ui.Color(2),
		Warning:     ui.Color(3), // Dark Yellow
		Error:       ui.ColorRed,
		Info:        ui.Color(4), // Dark Blue
		OnPrimary:   ui.ColorWhite,
		Border:      ui.Color(8),
		BorderFocus: ui.Color(2),
		Text:        ui.ColorBlack,
		TextMuted:   ui.Color(240),
	}
}

// createDarkColorScheme returns the palette for dark terminals
func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(2),  // Green
		Secondary:   ui.Color(6),  // Cyan
		Accent:      ui.ColorMagenta,
		Success:     ui.Color(10), // Bright Green
		Warning:     ui.Color(11), // Bright Yellow
		Error:       ui.Color(9),  // Bright Red
		Info:        ui.Color(14), // Bright Cyan
		OnPrimary:   ui.ColorBlack,
		Border:      ui.Color(240),
		BorderFocus: ui.Color(10),
		Text:        ui.ColorWhite,
		TextMuted:   ui.Color(245),
	}
}

// InitializeColors detects the terminal mode and installs the matching
// scheme and ANSI codes
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}

	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetTerminalMode returns the detected terminal mode
func GetTerminalMode() TerminalMode {
	return detectedMode
}

// GetANSIColors returns escape codes tuned to the detected mode. Light
// terminals get the darker variants for contrast.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}

func StyleText() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.Text)
}

func StyleTextMuted() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.TextMuted)
}

func StylePrimary() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.OnPrimary, scheme.Primary)
}

func StyleSuccess() ui.Style {
	scheme := GetColorScheme()
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorWhite, scheme.Success)
	}
	return ui.NewStyle(ui.ColorBlack, scheme.Success)
}

func StyleWarning() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(ui.ColorBlack, scheme.Warning)
}

func StyleError() ui.Style {
	scheme := GetColorScheme()
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorWhite, scheme.Error)
	}
	return ui.NewStyle(ui.ColorBlack, scheme.Error)
}

func StyleInfo() ui.Style {
	scheme := GetColorScheme()
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorWhite, scheme.Info)
	}
	return ui.NewStyle(ui.ColorBlack, scheme.Info)
}
