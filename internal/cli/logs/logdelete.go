package logs

import (
	"github.com/julianstephens/liftlog/internal/cli"
)

type LogDeleteCmd struct {
	ID string `arg:"" help:"Record id or the 8-character id shown by log list."`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.AcquireWriteLock(); err != nil {
		return err
	}
	recs, err := ctx.Records()
	if err != nil {
		return err
	}

	all := recs.All()
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	id, err := cli.ResolveID(c.ID, ids)
	if err != nil {
		return err
	}

	rec, _ := recs.Get(id)
	deleted, err := recs.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		ctx.Printf("No exercise with id %s.\n", c.ID)
		return nil
	}
	ctx.Printf("Deleted %s from %s (id %s).\n", rec.Name, rec.Date, id)
	return nil
}
