package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/pkg/cli/config"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
	"github.com/medref-lab/medcorpus/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdShow() *cli.Command {
	var corpusCfg config.Corpus
	var depth int

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "depth",
			Usage:       "Detail level to display (1-5); falls back to the nearest lower defined level",
			Value:       3,
			Sources:     cli.EnvVars("MEDCORPUS_DEPTH"),
			Destination: &depth,
		},
	}
	flags = append(flags, corpusCfg.Flags()...)

	return &cli.Command{
		Name:      "show",
		Usage:     "Show one record at a detail level",
		ArgsUsage: "<record-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one record ID argument is required")
			}
			id := types.RecordID(c.Args().First())

			corpus, _, err := corpusCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load corpus")
			}

			uc := usecase.New(corpus)

			rec, err := uc.Query.FindByID(ctx, id)
			if err != nil {
				return err
			}
			level, err := uc.Query.SelectLevel(ctx, id, depth)
			if err != nil {
				return err
			}

			title := color.New(color.Bold).Sprint
			section := color.New(color.FgCyan).Sprint
			w := os.Stdout

			fmt.Fprintf(w, "%s (%s, %s)\n", title(rec.Name), rec.Type, rec.Status)
			if len(rec.AlternateNames) > 0 {
				fmt.Fprintf(w, "also known as: %v\n", rec.AlternateNames)
			}
			if level.Level != depth {
				fmt.Fprintf(w, "level %d not defined, showing level %d\n", depth, level.Level)
			}

			fmt.Fprintf(w, "\n%s\n%s\n", section("Summary"), level.Summary)
			fmt.Fprintf(w, "\n%s\n%s\n", section("Explanation"), level.Explanation)
			if level.ClinicalNotes != "" {
				fmt.Fprintf(w, "\n%s\n%s\n", section("Clinical Notes"), level.ClinicalNotes)
			}
			if len(level.KeyTerms) > 0 {
				fmt.Fprintf(w, "\n%s\n", section("Key Terms"))
				for _, kt := range level.KeyTerms {
					fmt.Fprintf(w, "  %s: %s\n", title(kt.Term), kt.Definition)
				}
			}

			refs, err := uc.Query.ResolveCrossReferences(ctx, id)
			if err != nil {
				return err
			}
			if len(refs) > 0 {
				fmt.Fprintf(w, "\n%s\n", section("See Also"))
				for _, ref := range refs {
					marker := ""
					if !ref.Resolved() {
						marker = " (not in corpus)"
					}
					fmt.Fprintf(w, "  %s [%s]%s\n", ref.Edge.TargetID, ref.Edge.Relationship, marker)
				}
			}
			return nil
		},
	}
}
