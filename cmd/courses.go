package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	catalogMaxAge     = 24 * time.Hour
	catalogDisplayCap = 50
)

func newCoursesCmd(app *app) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "courses [query]",
		Short: "Browse the course catalog",
		Long:  "Browse the course catalog, optionally filtered by a case-insensitive substring. Results are cached for a day so the command stays fast while the backend is cold.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := loadCatalog(cmd.Context(), app, refresh)
			if err != nil {
				return err
			}

			courses = dedupeCourses(courses)
			if len(args) == 1 {
				courses = filterCourses(courses, args[0])
			}

			out := cmd.OutOrStdout()
			if len(courses) == 0 {
				fmt.Fprintln(out, "No courses found.")
				return nil
			}

			shown := courses
			if len(shown) > catalogDisplayCap {
				shown = shown[:catalogDisplayCap]
			}
			for _, course := range shown {
				fmt.Fprintln(out, course)
			}
			if len(courses) > len(shown) {
				fmt.Fprintf(out, "(showing first %d of %d)\n", len(shown), len(courses))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch the catalog from the service even when the cache is fresh")

	return cmd
}

// loadCatalog serves from cache when it is younger than catalogMaxAge,
// otherwise fetches. A failed fetch falls back to whatever cached copy
// exists, stale or not.
func loadCatalog(ctx context.Context, app *app, refresh bool) ([]string, error) {
	cached, fetchedAt, cacheErr := app.catalog.Load(ctx)
	if !refresh && cacheErr == nil && app.clock.Now().Sub(fetchedAt) < catalogMaxAge {
		return cached, nil
	}

	fresh, err := app.api.ListCourses(ctx)
	if err != nil {
		if cacheErr == nil {
			app.logger.Warn("catalog fetch failed, serving cached copy",
				zap.Error(err),
				zap.Time("fetched_at", fetchedAt))
			return cached, nil
		}
		return nil, err
	}

	if err := app.catalog.Save(ctx, fresh, app.clock.Now()); err != nil {
		app.logger.Warn("catalog cache save failed", zap.Error(err))
	}
	return fresh, nil
}

func dedupeCourses(courses []string) []string {
	seen := make(map[string]struct{}, len(courses))
	out := make([]string, 0, len(courses))
	for _, course := range courses {
		if _, ok := seen[course]; ok {
			continue
		}
		seen[course] = struct{}{}
		out = append(out, course)
	}
	return out
}

func filterCourses(courses []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return courses
	}
	out := make([]string, 0, len(courses))
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course), query) {
			out = append(out, course)
		}
	}
	return out
}
