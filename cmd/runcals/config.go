package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/runcals/internal/config"
	"github.com/verte-zerg/runcals/internal/history"
	"github.com/verte-zerg/runcals/internal/render"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless path exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# runcals config
# Uncomment a setting to change it. Command line flags win over this file.

[storage]
# db = "%s"

[history]
# Entries kept per calculator.
# cap = %d

[articles]
# base-url = "https://api-articles.runcals.com"
# api-key = ""   # or RUNCALS_API_KEY
# stale-after = "1h"
# timeout = "15s"

[display]
# Used until a preference is saved with "runcals settings".
# language = "zh"   # en or zh
# theme = "automatic"   # light, dark or automatic
`, config.DefaultDBPath(), history.DefaultCapacity)
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show file locations and stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := st.Keys(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			paths := [][]string{
				{"config", config.DefaultConfigPath()},
				{"database", a.dbPath},
			}
			if err := render.WriteTable(p.W, p.Styles, nil, paths, nil); err != nil {
				return err
			}
			if len(entries) == 0 {
				return nil
			}
			if _, err := fmt.Fprintln(p.W); err != nil {
				return err
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Key, fmt.Sprintf("%d B", e.Size), e.UpdatedAt.Local().Format(timestampLayout)})
			}
			return render.WriteTable(p.W, p.Styles, []string{"key", "size", "updated"}, rows, map[int]bool{1: true})
		},
	}
}
