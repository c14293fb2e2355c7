package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/bootstrap"
	"github.com/yigit/courseadmin/internal/pkg/collection"
)

type editorService[T models.Record, D any] interface {
	OpenCreate() collection.EditorState[D]
	Edit(ctx context.Context, id int64) (collection.EditorState[D], error)
	SetDraft(d D) (collection.EditorState[D], error)
	Submit(ctx context.Context) (T, error)
}

// form drives an entity's editor from command line flags.
type form[T models.Record, D any] struct {
	singular string
	service  func(core *bootstrap.Core) editorService[T, D]
	flags    []cli.Flag
	// apply copies the flags that were given onto the draft
	apply func(c *cli.Context, d *D)
	// stage runs after the draft is set, e.g. to attach images
	stage func(c *cli.Context, core *bootstrap.Core) error
}

func (f form[T, D]) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create",
			Usage: "create a " + f.singular,
			Flags: f.flags,
			Action: func(c *cli.Context) error {
				return f.run(c, func(svc editorService[T, D]) (collection.EditorState[D], error) {
					return svc.OpenCreate(), nil
				})
			},
		},
		{
			Name:      "edit",
			Usage:     "change a " + f.singular + "; only the given flags are changed",
			ArgsUsage: "ID",
			Flags:     f.flags,
			Action: func(c *cli.Context) error {
				id, err := argID(c)
				if err != nil {
					return err
				}
				return f.run(c, func(svc editorService[T, D]) (collection.EditorState[D], error) {
					return svc.Edit(c.Context, id)
				})
			},
		},
	}
}

func (f form[T, D]) run(c *cli.Context, open func(svc editorService[T, D]) (collection.EditorState[D], error)) error {
	if err := requireLogin(c); err != nil {
		return err
	}
	core := coreFrom(c)
	svc := f.service(core)

	state, err := open(svc)
	if err != nil {
		return err
	}
	draft := state.Draft
	f.apply(c, &draft)
	if _, err := svc.SetDraft(draft); err != nil {
		return err
	}
	if f.stage != nil {
		if err := f.stage(c, core); err != nil {
			return err
		}
	}

	record, err := svc.Submit(c.Context)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, record)
}

func setString(c *cli.Context, name string, dst *string) {
	if c.IsSet(name) {
		*dst = c.String(name)
	}
}

func setFloat(c *cli.Context, name string, dst **float64) {
	if c.IsSet(name) {
		v := c.Float64(name)
		*dst = &v
	}
}

// setOptionalID treats 0 as "none".
func setOptionalID(c *cli.Context, name string, dst **int64) {
	if !c.IsSet(name) {
		return
	}
	if v := c.Int64(name); v > 0 {
		*dst = &v
	} else {
		*dst = nil
	}
}
