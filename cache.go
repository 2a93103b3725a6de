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
	"hash/fnv"
	"time"

	"github.com/cybrota/arborist/layout"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered views stay valid until the tree changes, but the key
	// space is unbounded, so expire entries instead of keeping them
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree views
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// RenderCacheKey folds the strategy, the options and the tree snapshot
// into one key. Trees with the same shape share an entry.
func RenderCacheKey(strategyName string, opts layout.Options, rootKey int, edges []layout.Edge) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", rootKey)
	for _, edge := range edges {
		fmt.Fprintf(h, "|%d:%d", edge[0], edge[1])
	}
	return fmt.Sprintf("%s|w%d|a%t|h%t|%x", strategyName, opts.Width, opts.ASCII, opts.ShowHeights, h.Sum64())
}

func CacheRender(c *cache.Cache, key string, rendered string) {
	// Use Set instead of Add so a redraw overwrites the old entry
	c.Set(key, rendered, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}
