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

package layout

import "fmt"

// Manager keeps the registered rendering strategies in preference order
type Manager struct {
	strategies []Strategy
}

// NewManager creates a manager with all strategies registered
func NewManager() *Manager {
	manager := &Manager{}

	// Register strategies in order of preference. Canopy is registered
	// first: it is the closest terminal equivalent of a drawn graph.
	manager.Register(NewCanopyStrategy())
	manager.Register(NewProfileStrategy())
	manager.Register(NewDotStrategy())
	manager.Register(NewMermaidStrategy())

	return manager
}

// Register adds a rendering strategy
func (m *Manager) Register(strategy Strategy) {
	m.strategies = append(m.strategies, strategy)
}

// Get returns the strategy with the given name
func (m *Manager) Get(name string) (Strategy, error) {
	for _, strategy := range m.strategies {
		if strategy.Name() == name {
			return strategy, nil
		}
	}
	return nil, fmt.Errorf("unknown layout %q (available: %v)", name, m.Names())
}

// Names lists the registered strategy names in preference order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.strategies))
	for _, strategy := range m.strategies {
		names = append(names, strategy.Name())
	}
	return names
}

// Default returns the preferred on-screen strategy
func (m *Manager) Default() Strategy {
	return m.strategies[0]
}

// Next returns the strategy registered after the named one, wrapping
// around; the TUI uses it to cycle views.
func (m *Manager) Next(name string) Strategy {
	for i, strategy := range m.strategies {
		if strategy.Name() == name {
			return m.strategies[(i+1)%len(m.strategies)]
		}
	}
	return m.Default()
}

// RenderWith renders the graph with the named strategy.
func (m *Manager) RenderWith(name string, g *Graph, opts Options) (string, error) {
	strategy, err := m.Get(name)
	if err != nil {
		return "", err
	}
	return strategy.Render(g, opts)
}

// RenderBest renders with the first strategy whose output fits the
// options, falling back through the preference order.
func (m *Manager) RenderBest(g *Graph, opts Options) (string, error) {
	var lastErr error
	for _, strategy := range m.strategies {
		if !strategy.Fits(g, opts) {
			continue
		}
		out, err := strategy.Render(g, opts)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no layout fits a %d-key tree into width %d", g.Size(), opts.Width)
	}
	return "", lastErr
}
