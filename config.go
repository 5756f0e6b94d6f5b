package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"circle/internal/game"
)

type Config struct {
	SaveDirectory string
	ShowGuide     bool
	Animate       bool
	Confirmations bool
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		ShowGuide:     true,
		Animate:       true,
		Confirmations: true,
	}
}

// loadConfig reads ~/.circlerc. A missing or unreadable file yields the
// defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".circlerc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "showguide", "show_guide", "guide":
			config.ShowGuide = strings.ToLower(value) == "true"
		case "animate", "animation":
			config.Animate = strings.ToLower(value) == "true"
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		game.Logger().Warn("cannot create save directory", "dir", c.SaveDirectory, "err", err)
	}
	return filepath.Join(c.SaveDirectory, filename)
}
