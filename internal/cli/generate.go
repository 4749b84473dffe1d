package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/civix-labs/civix/internal/config"
	"github.com/civix-labs/civix/internal/gitconfig"
	"github.com/civix-labs/civix/internal/host"
	"github.com/civix-labs/civix/internal/license"
	"github.com/civix-labs/civix/internal/scaffold"
	"github.com/spf13/cobra"
)

// valueSource supplies fallback values such as git's user.name.
type valueSource interface {
	Get(ctx context.Context, key string) string
}

// generateDeps are the collaborators of generate:module. Zero fields fall
// back to the production implementations.
type generateDeps struct {
	Licenses  scaffold.LicenseLookup
	Git       valueSource
	Renderer  scaffold.Renderer
	Registrar func(l *log.Logger) (host.Registrar, bool)
	Logger    *log.Logger
	Now       func() time.Time
}

type generateOptions struct {
	License  string
	Author   string
	Email    string
	BaseDir  string
	Version  string
	NoEnable bool
}

func init() {
	rootCmd.AddCommand(newGenerateModuleCmd(generateDeps{}))
}

func newGenerateModuleCmd(deps generateDeps) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate:module <full.ext.name>",
		Short: "Create a new CiviCRM module extension",
		Long: `Create the skeleton of a CiviCRM module extension.

Author, email, and license default to the config keys of the same name, then
to git's user.name and user.email. The license defaults to ` + license.DefaultID + `.

When site.url is configured the new extension is refreshed and installed on
that site afterwards.

Examples:
  civix generate:module com.example.myextension
  civix generate:module org.example.events --license MIT --basedir ./events`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateModule(cmd, args[0], opts, deps)
		},
	}

	cmd.Flags().StringVar(&opts.License, "license", "", "License identifier (see 'licenses')")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Author email address")
	cmd.Flags().StringVar(&opts.BaseDir, "basedir", "", "Output directory (default: ./<full.ext.name>)")
	cmd.Flags().StringVar(&opts.Version, "ext-version", scaffold.DefaultVersion, "Initial extension version")
	cmd.Flags().BoolVar(&opts.NoEnable, "no-enable", false, "Skip enabling the extension on the configured site")

	return cmd
}

func runGenerateModule(cmd *cobra.Command, fullName string, opts generateOptions, deps generateDeps) error {
	deps, err := deps.withDefaults()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	config.Load()
	in := scaffold.Input{
		FullName:    fullName,
		BaseDir:     opts.BaseDir,
		Author:      firstNonEmpty(opts.Author, config.Get(config.KeyAuthor), deps.Git.Get(ctx, gitconfig.KeyUserName)),
		Email:       firstNonEmpty(opts.Email, config.Get(config.KeyEmail), deps.Git.Get(ctx, gitconfig.KeyUserEmail)),
		License:     firstNonEmpty(opts.License, config.Get(config.KeyLicense), license.DefaultID),
		Version:     opts.Version,
		ReleaseDate: deps.Now(),
	}

	sc, err := scaffold.NewContext(in, deps.Licenses)
	if err != nil {
		var verr *scaffold.ValidationError
		if errors.As(err, &verr) {
			deps.Logger.Debug("validation failed", "field", verr.Field, "value", verr.Value)
		}
		return err
	}

	fmt.Fprintf(out, "License set to %s (authored by %s <%s>)\n", sc.License.ID, sc.Author, sc.Email)
	fmt.Fprintf(out, "Initialize module %s in %s\n", sc.FullName, sc.BaseDir)

	report, err := scaffold.Generate(sc, deps.Renderer, &progressReporter{out: out, logger: deps.Logger})
	if err != nil {
		return fmt.Errorf("preparing %s: %w", sc.FullName, err)
	}
	if err := report.Err(); err != nil {
		return fmt.Errorf("generating %s: %w", sc.FullName, err)
	}

	if opts.NoEnable {
		return nil
	}

	var reg host.Registrar
	if r, ok := deps.Registrar(deps.Logger); ok {
		reg = r
	}
	outcome := host.Enable(ctx, reg, sc.FullName, &lineNotifier{out: out, errOut: cmd.ErrOrStderr()})
	deps.Logger.Debug("host registration finished", "outcome", outcome)
	return nil
}

func (d generateDeps) withDefaults() (generateDeps, error) {
	if d.Licenses == nil {
		catalog, err := license.Default()
		if err != nil {
			return d, fmt.Errorf("loading license catalog: %w", err)
		}
		d.Licenses = catalog
	}
	if d.Git == nil {
		d.Git = gitconfig.Reader{}
	}
	if d.Renderer == nil {
		d.Renderer = scaffold.DefaultRenderer()
	}
	if d.Registrar == nil {
		d.Registrar = configuredRegistrar
	}
	if d.Logger == nil {
		d.Logger = logger
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d, nil
}

// configuredRegistrar builds a host client from the site.* config keys.
func configuredRegistrar(l *log.Logger) (host.Registrar, bool) {
	client, ok := host.NewFromSite(host.Site{
		URL:      config.Get(config.KeySiteURL),
		APIKey:   config.Get(config.KeySiteAPIKey),
		SiteKey:  config.Get(config.KeySiteKey),
		RESTPath: config.Get(config.KeySiteRESTPath),
	}, host.WithLogger(l))
	if !ok {
		return nil, false
	}
	return client, true
}

// ─── Helpers ───────────────────────────────────────────────────────

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// progressReporter prints one line per artifact and logs builder failures.
type progressReporter struct {
	out    io.Writer
	logger *log.Logger
}

func (p *progressReporter) Artifact(builder string, a scaffold.Artifact) {
	switch {
	case a.Kind == scaffold.KindDir && a.Action == scaffold.ActionExists:
		fmt.Fprintf(p.out, "Skip %s: directory already exists\n", a.Path)
	case a.Kind == scaffold.KindDir:
		fmt.Fprintf(p.out, "Create %s\n", a.Path)
	case a.Action == scaffold.ActionOverwritten:
		fmt.Fprintf(p.out, "Overwrite %s\n", a.Path)
	default:
		fmt.Fprintf(p.out, "Write %s\n", a.Path)
	}
}

func (p *progressReporter) Failure(builder string, err error) {
	p.logger.Error("builder failed", "builder", builder, "err", err)
}

// lineNotifier writes registration messages as plain lines.
type lineNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n *lineNotifier) Info(msg string)  { fmt.Fprintln(n.out, msg) }
func (n *lineNotifier) Error(msg string) { fmt.Fprintln(n.errOut, msg) }
