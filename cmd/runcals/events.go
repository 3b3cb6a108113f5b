package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/runcals/internal/events"
	"github.com/verte-zerg/runcals/internal/model"
)

func (a *app) eventStore(cmd *cobra.Command) (*events.Store, error) {
	st, err := a.store(cmd.Context())
	if err != nil {
		return nil, err
	}
	return events.NewStore(st, a.logger), nil
}

func (a *app) newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Plan races and training sessions",
	}
	cmd.AddCommand(a.newEventsAddCmd())
	cmd.AddCommand(a.newEventsListCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Show the soonest upcoming event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			es, err := a.eventStore(cmd)
			if err != nil {
				return err
			}
			today := a.now()
			ev, ok := events.Next(es.LoadAll(cmd.Context()), today)
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.NextEvent(ev, ok, today)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete an event by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			es, err := a.eventStore(cmd)
			if err != nil {
				return err
			}
			if err := es.DeleteByID(cmd.Context(), args[0]); err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(p.W, p.Labels.EventDeleted)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			es, err := a.eventStore(cmd)
			if err != nil {
				return err
			}
			if err := es.Clear(cmd.Context()); err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(p.W, p.Labels.EventsCleared)
			return err
		},
	})
	return cmd
}

func (a *app) newEventsAddCmd() *cobra.Command {
	var (
		draft     events.Draft
		eventType string
		distance  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a race, training session or other event",
		Example: `  runcals events add --name "City Marathon" --date 2025-03-02 --distance Marathon
  runcals events add --name "Hill repeats" --date 2025-01-10 --type Training --distance Other --custom-distance "8 x 400m"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft.Type = model.EventType(eventType)
			draft.Distance = model.EventDistance(distance)
			es, err := a.eventStore(cmd)
			if err != nil {
				return err
			}
			ev, err := es.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(p.W, "%s: %s (%s)\n", p.Labels.EventSaved, ev.EventName, ev.ID)
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&draft.EventName, "name", "n", "", "event name")
	flags.StringVar(&draft.Date, "date", "", "event date as YYYY-MM-DD")
	flags.StringVar(&eventType, "type", string(model.EventTypeRace), "Race, Training or Event")
	flags.StringVarP(&distance, "distance", "d", string(model.EventDistance10K),
		"5KM, 10KM, Half Marathon, Marathon, Trail Run or Other")
	flags.StringVar(&draft.CustomDistance, "custom-distance", "", "distance text for Trail Run, Other or non-race events")
	flags.StringVar(&draft.EventNotes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func (a *app) newEventsListCmd() *cobra.Command {
	var (
		past   bool
		format string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List upcoming events, soonest first, or past events with --past",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			es, err := a.eventStore(cmd)
			if err != nil {
				return err
			}
			today := a.now()
			parts := events.Partition(es.LoadAll(cmd.Context()), today)
			list := parts.Upcoming
			if past {
				list = parts.Past
			}
			if format != formatTable {
				if list == nil {
					list = []model.RaceEvent{}
				}
				return writeStructured(cmd.OutOrStdout(), format, list)
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.Events(list, today, past)
		},
	}
	cmd.Flags().BoolVar(&past, "past", false, "list past events, most recent first")
	addFormatFlag(cmd, &format)
	return cmd
}
