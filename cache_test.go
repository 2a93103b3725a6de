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
	"testing"
	"time"

	"github.com/cybrota/arborist/layout"
	"github.com/patrickmn/go-cache"
)

func TestCacheRenderAndGetRender(t *testing.T) {
	c := NewRenderCache()
	key := RenderCacheKey("canopy", layout.Options{Width: 80}, 20, []layout.Edge{{20, 10}, {20, 30}})
	rendered := "   20\n ┌──┴──┐\n10    30"

	// Initially, GetRender should return an empty string for a missing key.
	if got := GetRender(c, key); got != "" {
		t.Errorf("GetRender(%q) = %q; want empty string", key, got)
	}

	// Cache the rendered view.
	CacheRender(c, key, rendered)

	// Now, GetRender should return the cached view.
	if got := GetRender(c, key); got != rendered {
		t.Errorf("GetRender(%q) = %q; want %q", key, got, rendered)
	}
}

func TestRenderCacheKeyDiscriminates(t *testing.T) {
	edges := []layout.Edge{{20, 10}, {20, 30}}
	base := RenderCacheKey("canopy", layout.Options{}, 20, edges)

	variants := map[string]string{
		"strategy": RenderCacheKey("profile", layout.Options{}, 20, edges),
		"width":    RenderCacheKey("canopy", layout.Options{Width: 40}, 20, edges),
		"ascii":    RenderCacheKey("canopy", layout.Options{ASCII: true}, 20, edges),
		"heights":  RenderCacheKey("canopy", layout.Options{ShowHeights: true}, 20, edges),
		"shape":    RenderCacheKey("canopy", layout.Options{}, 20, []layout.Edge{{20, 10}}),
	}

	for name, key := range variants {
		if key == base {
			t.Errorf("Expected a distinct key when the %s changes", name)
		}
	}

	// The same inputs must land on the same entry
	if again := RenderCacheKey("canopy", layout.Options{}, 20, edges); again != base {
		t.Errorf("Expected a stable key, got %q and %q", base, again)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "canopy|w0|afalse|hfalse|expiring"
	rendered := "this view should expire soon"

	c.Set(key, rendered, 100*time.Millisecond)

	// Immediately after caching, the view should be retrievable.
	if got := GetRender(c, key); got != rendered {
		t.Errorf("GetRender(%q) = %q; want %q", key, got, rendered)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	// Now, the view should have expired and not be retrievable.
	if got := GetRender(c, key); got != "" {
		t.Errorf("After expiration, GetRender(%q) = %q; want empty string", key, got)
	}
}
