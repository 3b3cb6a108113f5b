package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/runcals/internal/calc"
	"github.com/verte-zerg/runcals/internal/history"
	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/render"
)

// historyKind describes one calculator's history list.
type historyKind[T any] struct {
	name   string
	key    string
	short  string
	list   func(render.Printer, []T) error
	chart  func(render.Printer, []T, int) error
	recalc func(render.Printer, T) error
}

func (a *app) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and manage calculator history",
	}
	cmd.AddCommand(newHistoryKindCmd(a, historyKind[model.EphRecord]{
		name:  "eph",
		key:   history.EphKey,
		short: "EpH calculator history",
		list:  render.Printer.EphHistory,
		chart: render.Printer.EphChart,
		recalc: func(p render.Printer, rec model.EphRecord) error {
			res, err := calc.RecomputeEph(rec)
			if err != nil {
				return err
			}
			return p.EphResult(res)
		},
	}))
	cmd.AddCommand(newHistoryKindCmd(a, historyKind[model.TrackRecord]{
		name:  "track",
		key:   history.TrackKey,
		short: "Track calculator history",
		list:  render.Printer.TrackHistory,
		chart: render.Printer.PaceChart,
		recalc: func(p render.Printer, rec model.TrackRecord) error {
			res, err := calc.RecomputeTrack(rec)
			if err != nil {
				return err
			}
			return p.TrackResult(res)
		},
	}))
	return cmd
}

func newHistoryKindCmd[T any](a *app, kind historyKind[T]) *cobra.Command {
	open := func(ctx context.Context) (*history.Store[T], error) {
		st, err := a.store(ctx)
		if err != nil {
			return nil, err
		}
		return history.New[T](st, kind.key, a.historyCap(), a.logger), nil
	}

	var (
		format    string
		showChart bool
	)
	cmd := &cobra.Command{
		Use:   kind.name,
		Short: kind.short + ", newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			h, err := open(cmd.Context())
			if err != nil {
				return err
			}
			records := h.LoadAll(cmd.Context())
			if format != formatTable {
				return writeStructured(cmd.OutOrStdout(), format, records)
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			if err := kind.list(p, records); err != nil {
				return err
			}
			if !showChart {
				return nil
			}
			if _, err := fmt.Fprintln(p.W); err != nil {
				return err
			}
			return kind.chart(p, records, 0)
		},
	}
	addFormatFlag(cmd, &format)
	cmd.Flags().BoolVarP(&showChart, "chart", "c", false, "plot the history below the table")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all " + kind.name + " history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := open(cmd.Context())
			if err != nil {
				return err
			}
			if err := h.ClearAll(cmd.Context()); err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(p.W, p.Labels.Cleared)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete INDEX",
		Short: "Remove one entry by its listed index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			h, err := open(cmd.Context())
			if err != nil {
				return err
			}
			if index >= h.Len(cmd.Context()) {
				logErrf(cmd.ErrOrStderr(), "no %s history entry at index %d\n", kind.name, index)
				return nil
			}
			if err := h.DeleteAt(cmd.Context(), index); err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(p.W, p.Labels.Deleted)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "recalc INDEX",
		Short: "Recompute an entry from its saved inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			h, err := open(cmd.Context())
			if err != nil {
				return err
			}
			records := h.LoadAll(cmd.Context())
			if index >= len(records) {
				return fmt.Errorf("no %s history entry at index %d", kind.name, index)
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return kind.recalc(p, records[index])
		},
	})
	return cmd
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("INDEX must be a non-negative integer, got %q", arg)
	}
	return index, nil
}
