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
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type DisplayConfig struct {
	Layout      string `yaml:"layout"`
	ASCII       bool   `yaml:"ascii"`
	ShowHeights bool   `yaml:"show_heights"`
}

type SessionConfig struct {
	TrackFrequency bool `yaml:"track_frequency"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Session SessionConfig `yaml:"session"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		Layout:      "canopy",
		ASCII:       false,
		ShowHeights: false,
	},
	Session: SessionConfig{
		TrackFrequency: true,
	},
}

// LoadConfig reads ~/.arborist.yaml. Any problem along the way falls
// back to the defaults rather than failing the launch.
func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".arborist.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	if config.Display.Layout == "" {
		config.Display.Layout = defaultConfig.Display.Layout
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".arborist.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🌳 Arborist Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🖼  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %slayout%s: %s\n", Green, Reset, config.Display.Layout)
	fmt.Printf("    Which view draws the tree (canopy, profile, dot, mermaid)\n")
	fmt.Printf("  • %sascii%s: %t\n", Green, Reset, config.Display.ASCII)
	fmt.Printf("    Plain ASCII connectors for terminals without box drawing\n")
	fmt.Printf("  • %sshow_heights%s: %t\n", Green, Reset, config.Display.ShowHeights)
	fmt.Printf("    Annotate every key with its subtree height\n\n")

	fmt.Printf("📈 %sSession:%s\n", Green, Reset)
	fmt.Printf("  • %strack_frequency%s: %t\n", Green, Reset, config.Session.TrackFrequency)
	fmt.Printf("    Keep per-key insertion counts for the session summary\n\n")

	fmt.Printf("💡 To change a setting, edit %s:\n", configPath)
	fmt.Printf("   display:\n     layout: profile\n\n")

	fmt.Printf("📚 For more information, see: https://github.com/cybrota/arborist#configuration\n")
}
