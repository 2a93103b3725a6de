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

import (
	"strings"
	"testing"
)

func TestManagerRegistrationOrder(t *testing.T) {
	manager := NewManager()

	want := []string{"canopy", "profile", "dot", "mermaid"}
	got := manager.Names()
	if len(got) != len(want) {
		t.Fatalf("Expected %d strategies, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Expected strategy %d to be %q, got %q", i, name, got[i])
		}
	}

	if manager.Default().Name() != "canopy" {
		t.Errorf("Expected canopy as the default, got %q", manager.Default().Name())
	}
}

func TestManagerGet(t *testing.T) {
	manager := NewManager()

	strategy, err := manager.Get("profile")
	if err != nil {
		t.Fatalf("Get(profile) failed: %v", err)
	}
	if strategy.Name() != "profile" {
		t.Errorf("Expected profile, got %q", strategy.Name())
	}

	if _, err := manager.Get("polar"); err == nil {
		t.Errorf("Expected an error for an unregistered name")
	}
}

func TestManagerNextCycles(t *testing.T) {
	manager := NewManager()

	if got := manager.Next("canopy").Name(); got != "profile" {
		t.Errorf("Expected profile after canopy, got %q", got)
	}
	if got := manager.Next("mermaid").Name(); got != "canopy" {
		t.Errorf("Expected wrap around to canopy, got %q", got)
	}
	if got := manager.Next("polar").Name(); got != "canopy" {
		t.Errorf("Expected the default for an unknown name, got %q", got)
	}
}

func TestManagerRenderBestFallsBack(t *testing.T) {
	manager := NewManager()
	g := mustBuildGraph(t, 4, balancedEdges)

	// Width 5 rules the canopy out, so the profile view takes over
	got, err := manager.RenderBest(g, Options{Width: 5})
	if err != nil {
		t.Fatalf("RenderBest failed: %v", err)
	}
	if !strings.Contains(got, "└── 2") {
		t.Errorf("Expected the profile fallback, got:\n%s", got)
	}

	got, err = manager.RenderBest(g, Options{Width: 80})
	if err != nil {
		t.Fatalf("RenderBest failed: %v", err)
	}
	if !strings.Contains(got, "┴") {
		t.Errorf("Expected the canopy view at width 80, got:\n%s", got)
	}
}

func TestManagerRenderWith(t *testing.T) {
	manager := NewManager()
	g := mustBuildGraph(t, 20, []Edge{{20, 10}, {20, 30}})

	got, err := manager.RenderWith("dot", g, Options{})
	if err != nil {
		t.Fatalf("RenderWith(dot) failed: %v", err)
	}
	if !strings.Contains(got, "digraph avl") {
		t.Errorf("Expected DOT output, got:\n%s", got)
	}

	if _, err := manager.RenderWith("polar", g, Options{}); err == nil {
		t.Errorf("Expected an error for an unregistered name")
	}
}
