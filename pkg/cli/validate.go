package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/pkg/cli/config"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var corpusCfg config.Corpus
	var format string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Report output format (text or json)",
			Value:       "text",
			Sources:     cli.EnvVars("MEDCORPUS_VALIDATE_FORMAT"),
			Destination: &format,
		},
	}
	flags = append(flags, corpusCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate all corpus sources and print the report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			corpus, report, err := corpusCfg.Configure(ctx)

			// A build rejected by policy still produced a report; render
			// it before deciding the exit status. Only source loading
			// failures leave us with nothing to show.
			if report == nil && err != nil {
				return err
			}

			if err := renderReport(os.Stdout, format, report); err != nil {
				return err
			}

			if report.HasErrors() {
				return fmt.Errorf("corpus validation found %d error(s)", len(report.Errors))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "corpus OK: %d records in %d domain(s)\n",
				len(corpus.Records()), len(corpus.Domains()))
			return nil
		},
	}
}

func renderReport(w io.Writer, format string, report *model.ValidationReport) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return goerr.Wrap(err, "failed to marshal report")
		}
		fmt.Fprintln(w, string(data))
		return nil

	case "text":
		errLabel := color.New(color.FgRed, color.Bold).Sprint("ERROR")
		warnLabel := color.New(color.FgYellow, color.Bold).Sprint("WARN")

		for _, v := range report.Errors {
			fmt.Fprintf(w, "%s [%s] %s: %s\n", errLabel, v.Rule, v.RecordID, v.Message)
		}
		for _, v := range report.Warnings {
			fmt.Fprintf(w, "%s [%s] %s: %s\n", warnLabel, v.Rule, v.RecordID, v.Message)
		}
		fmt.Fprintf(w, "%d error(s), %d warning(s)\n", len(report.Errors), len(report.Warnings))
		return nil

	default:
		return goerr.New("unknown report format", goerr.V("format", format))
	}
}
