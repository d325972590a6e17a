package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// HistoryCmd lists saved tallies
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum records to list (0 = all)"`
}

// Run lists saved tallies, newest first.
func (c *HistoryCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	st, release, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	records, err := st.List(ctx, c.Limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSOURCE\tRULES\tPLAYER 1\tPLAYER 2\tDRAWS")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			rec.ID, rec.CreatedAt.Format(time.DateTime), rec.Source, rec.Rules,
			rec.Score.Player1, rec.Score.Player2, rec.Score.Draws)
	}
	return w.Flush()
}
