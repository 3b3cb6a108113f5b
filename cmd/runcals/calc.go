package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/runcals/internal/calc"
	"github.com/verte-zerg/runcals/internal/history"
	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/render"
)

func (a *app) newEphCmd() *cobra.Command {
	var (
		distance  string
		elevation string
		duration  string
		eph       string
		noSave    bool
	)
	cmd := &cobra.Command{
		Use:   "eph",
		Short: "Compute effort points per hour, or the time for a target EpH",
		Example: `  runcals eph --distance 42.2 --elevation 1500 --time 5:30:00
  runcals eph --distance 42.2 --elevation 1500 --eph 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			distanceKm, err := calc.ParseAmount(distance)
			if err != nil {
				return fmt.Errorf("--distance: %w", err)
			}
			elevationM, err := calc.ParseAmount(elevation)
			if err != nil {
				return fmt.Errorf("--elevation: %w", err)
			}

			rec := model.EphRecord{Mode: model.EphModeEph, Distance: distance, Elevation: elevation, Time: duration}
			input := duration
			if cmd.Flags().Changed("eph") {
				rec = model.EphRecord{Mode: model.EphModeTime, Distance: distance, Elevation: elevation, Eph: eph}
				input = eph
			}
			res, err := calc.SolveEph(rec.Mode, distanceKm, elevationM, input)
			if err != nil {
				return err
			}

			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			if err := p.EphResult(res); err != nil {
				return err
			}
			if noSave {
				return nil
			}
			rec.Result = render.EphResultText(p.Labels, res)
			rec.Timestamp = a.timestamp()
			st, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			return history.New[model.EphRecord](st, history.EphKey, a.historyCap(), a.logger).Append(cmd.Context(), rec)
		},
	}
	cmd.Flags().StringVarP(&distance, "distance", "d", "", "distance in km")
	cmd.Flags().StringVarP(&elevation, "elevation", "e", "0", "elevation gain in metres")
	cmd.Flags().StringVarP(&duration, "time", "t", "", "finish time as H, H:MM or H:MM:SS")
	cmd.Flags().StringVar(&eph, "eph", "", "target effort points per hour")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not add the result to history")
	_ = cmd.MarkFlagRequired("distance")
	cmd.MarkFlagsMutuallyExclusive("time", "eph")
	cmd.MarkFlagsOneRequired("time", "eph")
	return cmd
}

func (a *app) newTrackCmd() *cobra.Command {
	var (
		completed string
		distance  string
		noSave    bool
	)
	cmd := &cobra.Command{
		Use:   "track [PACE]",
		Short: "400m track splits and race times for a pace, or the pace for a finish time",
		Example: `  runcals track 4:30
  runcals track --time 3:29:59 --distance marathon`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res   calc.TrackResult
				input string
				err   error
			)
			switch {
			case cmd.Flags().Changed("time"):
				if len(args) > 0 {
					return fmt.Errorf("give either PACE or --time, not both")
				}
				res, err = calc.TimeToPace(completed, model.RaceDistance(distance))
			case len(args) == 1:
				input = args[0]
				res, err = calc.PaceToTime(input)
			default:
				return fmt.Errorf("a PACE argument or --time is required")
			}
			if err != nil {
				return err
			}

			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			if err := p.TrackResult(res); err != nil {
				return err
			}
			if noSave {
				return nil
			}
			st, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			return history.New[model.TrackRecord](st, history.TrackKey, a.historyCap(), a.logger).
				Append(cmd.Context(), res.Record(input, a.timestamp()))
		},
	}
	cmd.Flags().StringVarP(&completed, "time", "t", "", "finish time as H:MM:SS (time to pace)")
	cmd.Flags().StringVarP(&distance, "distance", "d", string(model.Distance10K), "race distance: 10km, halfMarathon or marathon")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not add the result to history")
	return cmd
}
