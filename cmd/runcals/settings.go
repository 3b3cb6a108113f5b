package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/runcals/internal/settings"
)

func (a *app) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.Settings(s)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:       "language en|zh",
		Short:     "Save the output language",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(settings.English), string(settings.Chinese)},
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := settings.ParseLanguage(args[0])
			if err != nil {
				return err
			}
			return a.changeSettings(cmd, func(st *settings.State) error {
				return st.SetLanguage(cmd.Context(), l)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "theme light|dark|automatic",
		Short: "Save the colour theme",
		Args:  cobra.ExactArgs(1),
		ValidArgs: []string{
			string(settings.ThemeLight), string(settings.ThemeDark), string(settings.ThemeAutomatic),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := settings.ParseTheme(args[0])
			if err != nil {
				return err
			}
			return a.changeSettings(cmd, func(st *settings.State) error {
				return st.SetTheme(cmd.Context(), t)
			})
		},
	})
	return cmd
}

// changeSettings applies change and reports the preferences published by
// the state.
func (a *app) changeSettings(cmd *cobra.Command, change func(*settings.State) error) error {
	if _, err := a.store(cmd.Context()); err != nil {
		return err
	}
	var (
		saved   settings.Settings
		changed bool
	)
	unsubscribe := a.state.Subscribe(func(s settings.Settings) {
		saved, changed = s, true
	})
	defer unsubscribe()

	if err := change(a.state); err != nil {
		return err
	}
	if !changed {
		return nil
	}
	p, err := a.printer(cmd)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.W, p.Styles.Accent.Render(p.Labels.Saved)); err != nil {
		return err
	}
	return p.Settings(saved)
}
