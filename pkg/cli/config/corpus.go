package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/data"
	"github.com/medref-lab/medcorpus/pkg/domain/interfaces"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
	"github.com/medref-lab/medcorpus/pkg/repository/memory"
	"github.com/medref-lab/medcorpus/pkg/utils/logging"
	"github.com/medref-lab/medcorpus/pkg/utils/safe"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// Corpus holds CLI flags for corpus source configuration
type Corpus struct {
	configPath string
	contentDir string
	policy     string
	noEmbedded bool
}

// CorpusConfig is the TOML shape of a corpus configuration file. A policy
// set in the file overrides the --policy flag so that a checked-in config
// stays authoritative for its content set.
type CorpusConfig struct {
	Policy  string   `toml:"policy"`
	Sources []Source `toml:"source"`
}

// Source names one domain JSON file to load.
type Source struct {
	Path string `toml:"path"`
}

// Validate checks if the Source is valid
func (s *Source) Validate() error {
	if s.Path == "" {
		return goerr.New("source path is required")
	}
	return nil
}

// Validate checks if the CorpusConfig is valid
func (c *CorpusConfig) Validate() error {
	if c.Policy != "" {
		if _, err := types.ParseValidationPolicy(c.Policy); err != nil {
			return goerr.Wrap(err, "invalid policy in config file")
		}
	}
	for _, src := range c.Sources {
		if err := src.Validate(); err != nil {
			return goerr.Wrap(err, "invalid source")
		}
	}
	return nil
}

// Flags returns CLI flags for corpus configuration
func (c *Corpus) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "corpus-config",
			Usage:       "Path to corpus configuration TOML file",
			Sources:     cli.EnvVars("MEDCORPUS_CONFIG"),
			Destination: &c.configPath,
		},
		&cli.StringFlag{
			Name:        "content-dir",
			Usage:       "Directory of additional domain JSON files (all *.json files are loaded)",
			Sources:     cli.EnvVars("MEDCORPUS_CONTENT_DIR"),
			Destination: &c.contentDir,
		},
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Validation policy (strict or permissive)",
			Value:       "strict",
			Sources:     cli.EnvVars("MEDCORPUS_POLICY"),
			Destination: &c.policy,
		},
		&cli.BoolFlag{
			Name:        "no-embedded",
			Usage:       "Skip the embedded seed domains and load external sources only",
			Sources:     cli.EnvVars("MEDCORPUS_NO_EMBEDDED"),
			Destination: &c.noEmbedded,
		},
	}
}

// LoadCorpusConfig loads a corpus configuration from a TOML file
func LoadCorpusConfig(path string) (*CorpusConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var cfg CorpusConfig
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &cfg, nil
}

// Configure assembles and builds the corpus from every configured source:
// the embedded seed domains (unless disabled), the files listed in the TOML
// config, and all *.json files in the content directory. The validation
// report is returned even when the build fails so callers can render it.
func (c *Corpus) Configure(ctx context.Context) (interfaces.Corpus, *model.ValidationReport, error) {
	policy, err := types.ParseValidationPolicy(c.policy)
	if err != nil {
		return nil, nil, err
	}

	var paths []string
	if c.configPath != "" {
		cfg, err := LoadCorpusConfig(c.configPath)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Policy != "" {
			policy = types.ValidationPolicy(cfg.Policy)
		}
		base := filepath.Dir(c.configPath)
		for _, src := range cfg.Sources {
			path := src.Path
			if !filepath.IsAbs(path) {
				path = filepath.Join(base, path)
			}
			paths = append(paths, path)
		}
	}

	if c.contentDir != "" {
		found, err := filepath.Glob(filepath.Join(c.contentDir, "*.json"))
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to scan content directory", goerr.V("dir", c.contentDir))
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}

	var domains []*model.Domain
	if !c.noEmbedded {
		embedded, err := data.Domains()
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to load embedded domains")
		}
		domains = embedded
	}

	loaded, err := loadDomainFiles(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	domains = append(domains, loaded...)

	if len(domains) == 0 {
		return nil, nil, goerr.New("no corpus sources configured")
	}

	builder := memory.NewBuilder()
	for _, d := range domains {
		if err := builder.RegisterDomain(d); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to register domain", goerr.V("domain", d.Name))
		}
	}

	corpus, report, err := builder.Build(policy)
	if err != nil {
		return nil, report, err
	}

	logging.Default().Info("Corpus loaded",
		"domains", len(domains),
		"records", len(corpus.Records()),
		"policy", policy,
		"snapshot_id", corpus.SnapshotID(),
		"warnings", len(report.Warnings),
	)
	return corpus, report, nil
}

// loadDomainFiles decodes the given files concurrently, preserving the
// order of the path list in the result.
func loadDomainFiles(ctx context.Context, paths []string) ([]*model.Domain, error) {
	domains := make([]*model.Domain, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		eg.Go(func() error {
			// #nosec G304 - path comes from CLI configuration
			f, err := os.Open(path)
			if err != nil {
				return goerr.Wrap(err, "failed to open domain file", goerr.V("path", path))
			}
			defer safe.Close(ctx, f)

			d, err := model.DecodeDomain(f)
			if err != nil {
				return goerr.Wrap(err, "failed to decode domain file", goerr.V("path", path))
			}
			domains[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return domains, nil
}
