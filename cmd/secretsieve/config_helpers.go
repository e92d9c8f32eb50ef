package main

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/suryansh-23/secretsieve/internal/config"
)

// resolveConfigPath applies the lookup order flag, SECRETSIEVE_CONFIG,
// XDG_CONFIG_HOME, then ~/.config.
func resolveConfigPath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		return override, nil
	}
	return config.DefaultPath()
}

func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
