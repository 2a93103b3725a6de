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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown is the guide source, shared by the terminal help and
// the in-app guide pane
func usageMarkdown() string {
	return fmt.Sprintf(`

 **Arborist %s**

Grow self-balancing search trees in your terminal and watch every rotation happen.
Type integers to insert them; the tree rebalances itself and redraws on the spot.

Built with Go %s

# 1. Entering values
* A single integer inserts one key: 42
* Comma lists insert several: 3,1,4,1,5 (repeats are ignored)
* Ranges expand in order: 1..7 grows a perfect tree, 7..1 the same tree from the other side
* Values the tree already holds leave it untouched

# 2. Commands
* Prompt input starting with a colon is a command, not a value
%s

# 3. Keys
* <tab> moves focus between the prompt, the event log and the tree
* <f1> opens this guide, <f2> switches to the session stats
* <ctrl+l> cycles through the views, <ctrl+t> toggles height labels
* <ctrl+z> copies the drawn tree, <ctrl+x> the raw edge list, <ctrl+e> a Graphviz export
* <ctrl+r> clears the prompt, <esc> quits

# 4. Views
* canopy - top-down branching view with box-drawn connectors
* profile - sideways view, one key per line, good for tall trees
* dot - Graphviz export, pipe through 'dot -Tpng' for an image
* mermaid - flowchart block for Markdown files

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed
* Terminals without box drawing glyphs can set display.ascii in ~/.arborist.yaml

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), CommandUsage())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
