package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/runcals/internal/articles"
	"github.com/verte-zerg/runcals/internal/events"
	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/render"
)

const (
	dateAll   = "all"
	dateToday = "today"
)

func (a *app) articleFeed(cmd *cobra.Command) (*articles.Feed, error) {
	st, err := a.store(cmd.Context())
	if err != nil {
		return nil, err
	}
	cfg := a.fileCfg.Articles
	fetcher := a.fetcher
	if fetcher == nil {
		var baseURL, apiKey string
		if cfg.BaseURL != nil {
			baseURL = *cfg.BaseURL
		}
		if cfg.APIKey != nil {
			apiKey = *cfg.APIKey
		}
		fetcher = articles.NewClient(baseURL, apiKey, cfg.TimeoutDuration())
	}
	return articles.NewFeed(articles.NewCache(st, a.logger), fetcher, cfg.StaleAfterDuration(), a.logger), nil
}

// loadArticles returns whatever the feed could serve. A cache write failure
// after a successful fetch still shows the fetched articles.
func (a *app) loadArticles(cmd *cobra.Command, force bool) (articles.Result, error) {
	feed, err := a.articleFeed(cmd)
	if err != nil {
		return articles.Result{}, err
	}
	res, err := feed.Articles(cmd.Context(), force)
	if err != nil {
		if len(res.Articles) == 0 {
			return res, err
		}
		a.logger.Warn("article cache not updated", zap.Error(err))
	}
	return res, nil
}

func (a *app) newArticlesCmd() *cobra.Command {
	var (
		refresh bool
		date    string
		format  string
	)
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Show running tips from the article service",
		Example: `  runcals articles --date today
  runcals articles --date 2024-06-01 --format json
  runcals articles --refresh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			key, err := a.articleDateKey(date)
			if err != nil {
				return err
			}
			res, err := a.loadArticles(cmd, refresh)
			if err != nil {
				return err
			}
			list := res.Articles
			if key != "" {
				list = articles.FilterByDate(list, key)
			}
			if format != formatTable {
				if list == nil {
					list = []model.Article{}
				}
				return writeStructured(cmd.OutOrStdout(), format, list)
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.ArticleFeed(list, res, render.TerminalWidth())
		},
	}
	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "fetch even when the saved copy is fresh")
	cmd.Flags().StringVar(&date, "date", dateAll, "all, today or a YYYY-MM-DD date (UTC)")
	addFormatFlag(cmd, &format)

	var datesFormat string
	datesCmd := &cobra.Command{
		Use:   "dates",
		Short: "List earlier dates that have articles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(datesFormat); err != nil {
				return err
			}
			res, err := a.loadArticles(cmd, false)
			if err != nil {
				return err
			}
			dates := articles.AvailableDates(res.Articles, a.now().UTC().Format(time.DateOnly))
			if datesFormat != formatTable {
				return writeStructured(cmd.OutOrStdout(), datesFormat, dates)
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.Dates(dates)
		},
	}
	addFormatFlag(datesCmd, &datesFormat)
	cmd.AddCommand(datesCmd)
	return cmd
}

// articleDateKey maps the --date flag to a UTC date key. An empty key
// means no filter.
func (a *app) articleDateKey(date string) (string, error) {
	switch date {
	case "", dateAll:
		return "", nil
	case dateToday:
		return a.now().UTC().Format(time.DateOnly), nil
	}
	t, err := events.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("--date must be all, today or YYYY-MM-DD: %w", err)
	}
	return t.Format(time.DateOnly), nil
}
