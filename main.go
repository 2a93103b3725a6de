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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybrota/arborist/layout"
)

// gatherValues collects integers from --file and positional arguments
func gatherValues(cmd *cobra.Command, args []string) ([]int, []string, error) {
	var values []int
	var rejected []string

	if file := cmd.Flag("file").Value.String(); file != "" {
		fileValues, fileRejected, err := ReadValuesFile(file)
		if err != nil {
			return nil, nil, err
		}
		values = append(values, fileValues...)
		rejected = append(rejected, fileRejected...)
	}

	argValues, argRejected := ParseArgs(args)
	values = append(values, argValues...)
	rejected = append(rejected, argRejected...)

	return values, rejected, nil
}

// warnRejected reports tokens that did not parse as integers
func warnRejected(rejected []string) {
	if len(rejected) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "%s⚠️ Skipped %d token(s): %s%s\n",
		Warning, len(rejected), strings.Join(rejected, ", "), Reset)
}

// renderOptions merges the config file with explicit flags
func renderOptions(cmd *cobra.Command, config *Config) layout.Options {
	opts := layout.Options{
		ASCII:       config.Display.ASCII,
		ShowHeights: config.Display.ShowHeights,
	}
	if cmd.Flags().Changed("ascii") {
		opts.ASCII, _ = cmd.Flags().GetBool("ascii")
	}
	if cmd.Flags().Changed("heights") {
		opts.ShowHeights, _ = cmd.Flags().GetBool("heights")
	}
	if cmd.Flags().Changed("width") {
		opts.Width, _ = cmd.Flags().GetInt("width")
	}
	return opts
}

func main() {
	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗ ██╗███████╗████████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██║██╔════╝╚══██╔══╝
███████║██████╔╝██████╔╝██║   ██║██████╔╝██║███████╗   ██║
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗██║╚════██║   ██║
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║██║███████║   ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝   ╚═╝
Grow, balance and draw self-balancing search trees in your terminal [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/arborist)

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the arborist UI for growing trees",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the Arborist UI. Pass values or --file to start with a grown tree`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
				config = &defaultConfig
			}

			values, rejected, err := gatherValues(cmd, args)
			if err != nil {
				log.Fatalf("Error reading values: %v", err)
			}
			warnRejected(rejected)

			tree := NewAVLTree()
			session := NewSession(config.Session.TrackFrequency)
			for _, token := range rejected {
				session.NoteRejected(token)
			}
			LoadValues(tree, session, values, len(values) > 100)

			rc := NewRenderCache()
			classic, _ := cmd.Flags().GetBool("classic")
			if classic {
				runClassicApp(tree, session, rc, config)
				return
			}
			if err := runBubbleTeaApp(tree, session, rc, config); err != nil {
				log.Fatalf("Error running arborist UI: %v", err)
			}
		},
	}

	cmdRun.Flags().String("file", "", "path to a file with one integer per line")
	cmdRun.Flags().Bool("classic", false, "use the classic dashboard instead of the full UI")

	var cmdRender = &cobra.Command{
		Use:   "render",
		Short: "Draw a tree once and print it to stdout",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Render grows a tree from the given values and prints one drawing of it`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
				config = &defaultConfig
			}

			values, rejected, err := gatherValues(cmd, args)
			if err != nil {
				log.Fatalf("Error reading values: %v", err)
			}
			warnRejected(rejected)

			tree := NewAVLTree()
			session := NewSession(true)
			for _, token := range rejected {
				session.NoteRejected(token)
			}
			LoadValues(tree, session, values, false)
			if tree.Root == nil {
				fmt.Fprintln(os.Stderr, "Nothing to draw: the tree is empty")
				return
			}

			g, err := layout.BuildGraph(tree.Root.Key, tree.GenerateEdges())
			if err != nil {
				log.Fatalf("Error laying the tree out: %v", err)
			}

			manager := layout.NewManager()
			opts := renderOptions(cmd, config)

			name := cmd.Flag("layout").Value.String()
			if name == "" {
				name = config.Display.Layout
			}

			var rendered string
			if name == layoutAuto {
				rendered, err = manager.RenderBest(g, opts)
			} else {
				rendered, err = manager.RenderWith(name, g, opts)
			}
			if err != nil {
				log.Fatalf("Error rendering tree: %v", err)
			}
			fmt.Println(rendered)

			if stats, _ := cmd.Flags().GetBool("stats"); stats {
				fmt.Fprintf(os.Stderr, "\n%s%s%s\n", Info, session.Stats(), Reset)
			}
		},
	}

	cmdRender.Flags().String("file", "", "path to a file with one integer per line")
	cmdRender.Flags().String("layout", "", "view to draw with: canopy, profile, dot, mermaid or auto")
	cmdRender.Flags().Bool("ascii", false, "draw connectors with plain ASCII")
	cmdRender.Flags().Bool("heights", false, "annotate every key with its subtree height")
	cmdRender.Flags().Int("width", 0, "column budget for the auto view, 0 means unbounded")
	cmdRender.Flags().Bool("stats", false, "print a session summary after the drawing")

	var cmdEdges = &cobra.Command{
		Use:   "edges",
		Short: "Print the parent to child edges of a tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Edges grows a tree from the given values and prints its edges in pre-order, one per line`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			values, rejected, err := gatherValues(cmd, args)
			if err != nil {
				log.Fatalf("Error reading values: %v", err)
			}
			warnRejected(rejected)

			tree := NewAVLTree()
			LoadValues(tree, nil, values, false)
			if tree.Root == nil {
				fmt.Fprintln(os.Stderr, "Nothing to list: the tree is empty")
				return
			}

			for _, edge := range tree.GenerateEdges() {
				fmt.Printf("%d -> %d\n", edge[0], edge[1])
			}
		},
	}

	cmdEdges.Flags().String("file", "", "path to a file with one integer per line")

	var cmdExport = &cobra.Command{
		Use:   "export",
		Short: "Write the tree as Graphviz or Mermaid markup",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Export grows a tree from the given values and writes it in a form other tools can draw`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			values, rejected, err := gatherValues(cmd, args)
			if err != nil {
				log.Fatalf("Error reading values: %v", err)
			}
			warnRejected(rejected)

			tree := NewAVLTree()
			LoadValues(tree, nil, values, false)
			if tree.Root == nil {
				fmt.Fprintln(os.Stderr, "Nothing to export: the tree is empty")
				return
			}

			g, err := layout.BuildGraph(tree.Root.Key, tree.GenerateEdges())
			if err != nil {
				log.Fatalf("Error laying the tree out: %v", err)
			}

			manager := layout.NewManager()
			format := cmd.Flag("format").Value.String()
			heights, _ := cmd.Flags().GetBool("heights")

			rendered, err := manager.RenderWith(format, g, layout.Options{ShowHeights: heights})
			if err != nil {
				log.Fatalf("Error exporting tree: %v", err)
			}

			out := cmd.Flag("out").Value.String()
			if out == "" {
				fmt.Println(rendered)
				return
			}
			if err := os.WriteFile(out, []byte(rendered+"\n"), 0644); err != nil {
				log.Fatalf("Error writing %s: %v", out, err)
			}
			fmt.Printf("%s✅ Wrote %s%s\n", Green, out, Reset)
		},
	}

	cmdExport.Flags().String("file", "", "path to a file with one integer per line")
	cmdExport.Flags().String("format", "dot", "export format: dot or mermaid")
	cmdExport.Flags().String("out", "", "write to this path instead of stdout")
	cmdExport.Flags().Bool("heights", false, "annotate every key with its subtree height")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the Arborist usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arborist CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the configuration from ~/.arborist.yaml, creating it when missing`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the Arborist version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "arborist",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
				config = &defaultConfig
			}

			tree := NewAVLTree()
			session := NewSession(config.Session.TrackFrequency)
			rc := NewRenderCache()

			if err := runBubbleTeaApp(tree, session, rc, config); err != nil {
				log.Fatalf("Error running arborist UI: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdRender, cmdEdges, cmdExport, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
