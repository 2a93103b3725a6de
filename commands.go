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
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Command is one parsed colon command from the interactive prompt
type Command struct {
	Name     string
	Args     []string
	FullText string
}

// knownCommands maps each command to its one line usage
var knownCommands = map[string]string{
	"load":    ":load <path> - insert keys from a file",
	"seed":    ":seed <n..m> - grow from a range of keys",
	"layout":  ":layout [name] - switch the view, or cycle without a name",
	"ascii":   ":ascii - toggle ASCII connectors",
	"heights": ":heights - toggle height labels",
	"export":  ":export <dot|mermaid> [path] - write the tree to a file",
	"stats":   ":stats - log the session summary",
	"reset":   ":reset - clear the tree and the session",
	"help":    ":help - open the guide",
}

// IsCommand reports whether the input is a colon command rather than
// values to insert
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), ":")
}

// ParseCommand splits a colon command into a name and arguments.
// Shell style quoting works, so paths with spaces stay whole:
//
//	:load "march values.txt"
func ParseCommand(input string) (*Command, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(input), ":")
	if trimmed == "" {
		return nil, fmt.Errorf("empty command")
	}

	parts, err := shellwords.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", input, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	return &Command{
		Name:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullText: input,
	}, nil
}

// Known reports whether the command name is one the prompt understands
func (c *Command) Known() bool {
	_, ok := knownCommands[c.Name]
	return ok
}

// HasArgs reports whether at least n arguments were given
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Arg returns the i-th argument or an empty string
func (c *Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

// CommandUsage lists every colon command, one per line
func CommandUsage() string {
	names := make([]string, 0, len(knownCommands))
	for name := range knownCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, knownCommands[name])
	}
	return strings.Join(lines, "\n")
}
