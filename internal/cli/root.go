package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/civix-labs/civix/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

// logger is replaced by the root command's pre-run once flags are parsed.
var logger = newLogger(os.Stderr, false)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates the skeleton of a new CiviCRM extension (directories,
info.xml manifest, module entry points, and license) and can enable it on a
configured CiviCRM site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: branding.CLIName()})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
