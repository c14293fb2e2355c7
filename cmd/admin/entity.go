package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/bootstrap"
	"github.com/yigit/courseadmin/internal/pkg/collection"
)

type listingService[T models.Record] interface {
	List(ctx context.Context, page int, q collection.Query) (collection.Page[T], error)
	Show(ctx context.Context, id int64) (T, error)
	Delete(ctx context.Context, id int64) error
}

// entity describes how one record type is listed and shown.
type entity[T models.Record] struct {
	singular   string
	service    func(core *bootstrap.Core) listingService[T]
	headers    []string
	row        func(record T, loc *time.Location) []string
	filterKeys []string
	// dated adds --from, --to and --today
	dated bool
}

func (e entity[T]) commands() []*cli.Command {
	return []*cli.Command{e.listCommand(), e.showCommand(), e.deleteCommand()}
}

func (e entity[T]) listCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "page to show"},
		&cli.StringFlag{Name: "q", Usage: "search text"},
	}
	for _, key := range e.filterKeys {
		flags = append(flags, &cli.StringFlag{Name: key, Usage: "only records whose " + key + " matches exactly"})
	}
	if e.dated {
		flags = append(flags,
			&cli.StringFlag{Name: "from", Usage: "created on or after `DATE` (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "to", Usage: "created on or before `DATE` (YYYY-MM-DD)"},
			&cli.BoolFlag{Name: "today", Usage: "created today"},
		)
	}

	return &cli.Command{
		Name:  "list",
		Usage: "list " + e.singular + " records",
		Flags: flags,
		Action: func(c *cli.Context) error {
			if err := requireLogin(c); err != nil {
				return err
			}
			core := coreFrom(c)
			loc := core.Config.Location()

			values := url.Values{}
			for _, key := range append([]string{"q", "from", "to"}, e.filterKeys...) {
				if v := c.String(key); v != "" {
					values.Set(key, v)
				}
			}
			if c.Bool("today") {
				values.Set("today", "true")
			}
			q, err := collection.ParseQuery(values, loc, e.filterKeys...)
			if err != nil {
				return err
			}
			q.Now = time.Now()

			page, err := e.service(core).List(c.Context, c.Int("page"), q)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(page.Items))
			for _, record := range page.Items {
				rows = append(rows, e.row(record, loc))
			}
			if err := printTable(c.App.Writer, e.headers, rows); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "page %d of %d, %d of %d records\n", page.Page, page.TotalPages, page.Filtered, page.Total)
			return nil
		},
	}
}

func (e entity[T]) showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print one " + e.singular + " as JSON",
		ArgsUsage: "ID",
		Action: func(c *cli.Context) error {
			if err := requireLogin(c); err != nil {
				return err
			}
			id, err := argID(c)
			if err != nil {
				return err
			}
			record, err := e.service(coreFrom(c)).Show(c.Context, id)
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, record)
		},
	}
}

func (e entity[T]) deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete one " + e.singular,
		ArgsUsage: "ID",
		Action: func(c *cli.Context) error {
			if err := requireLogin(c); err != nil {
				return err
			}
			id, err := argID(c)
			if err != nil {
				return err
			}
			if !confirm(c, fmt.Sprintf("Delete %s %d?", e.singular, id)) {
				fmt.Fprintln(c.App.Writer, "cancelled")
				return nil
			}
			return e.service(coreFrom(c)).Delete(c.Context, id)
		},
	}
}
