package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/pkg/cli/config"
	"github.com/medref-lab/medcorpus/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSearch() *cli.Command {
	var corpusCfg config.Corpus

	return &cli.Command{
		Name:      "search",
		Usage:     "Search records by case-insensitive substring",
		ArgsUsage: "<query>",
		Flags:     corpusCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return goerr.New("search query argument is required")
			}
			query := strings.Join(c.Args().Slice(), " ")

			corpus, _, err := corpusCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load corpus")
			}

			uc := usecase.New(corpus)
			results := uc.Query.Search(ctx, query)

			if len(results) == 0 {
				fmt.Fprintln(os.Stdout, "no records matched")
				return nil
			}

			bold := color.New(color.Bold).Sprint
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", bold("ID"), bold("TYPE"), bold("NAME"), bold("LEVELS"))
			for _, rec := range results {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", rec.ID, rec.Type, rec.Name, rec.DefinedLevels())
			}
			if err := tw.Flush(); err != nil {
				return goerr.Wrap(err, "failed to flush output")
			}
			fmt.Fprintf(os.Stdout, "%d record(s) matched\n", len(results))
			return nil
		},
	}
}
