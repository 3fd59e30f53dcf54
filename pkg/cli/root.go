package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ulidsq/ulidsq/pkg/cliconfig"
	"github.com/ulidsq/ulidsq/pkg/compact"
	"github.com/ulidsq/ulidsq/pkg/logging"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	// Persistent flags
	configPath  string
	alphabet    string
	minLength   int
	noBlocklist bool
	logLevel    string
	logFormat   string
	jsonOutput  bool

	cfg   *cliconfig.CLIConfig
	log   *slog.Logger
	codec *compact.Codec
}

// NewRootCommand builds the ulidsq command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: logging.Nop()}

	root := &cobra.Command{
		Use:   "ulidsq",
		Short: "ulidsq converts ULIDs to short Sqids strings and back",
		Long: `ulidsq converts 26-character ULIDs into compact Sqids strings and back.

The ULID timestamp and the two 40-bit halves of its randomness are encoded as a
list of three integers. Encoder settings (alphabet, minimum length, blocklist)
must match between encoding and decoding.

Configuration can be provided via flags, ULIDSQ_* environment variables, or a
YAML/TOML configuration file (.ulidsqrc.yaml, ~/.config/ulidsq/config.yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (YAML or TOML); replaces .ulidsqrc lookup")
	flags.StringVar(&a.alphabet, "alphabet", "", "Sqids alphabet (default: Sqids default alphabet)")
	flags.IntVar(&a.minLength, "min-length", 0, "Minimum compact ID length (0-255)")
	flags.BoolVar(&a.noBlocklist, "no-blocklist", false, "Disable the Sqids word blocklist")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text, json")
	flags.BoolVar(&a.jsonOutput, "json", false, "Output command results in JSON format")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newInspectCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup resolves configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := cliconfig.LoadAll(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.applyFlags(cmd, cfg)
	a.cfg = cfg
	a.log = logging.Parse(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	a.log.Debug("config resolved", "alphabet", cfg.Alphabet, "minLength", cfg.MinLength, "sources", cfg.Sources)
	return nil
}

// applyFlags overrides cfg with every flag set on the command line.
func (a *app) applyFlags(cmd *cobra.Command, cfg *cliconfig.CLIConfig) {
	flags := cmd.Flags()
	if flags.Changed("alphabet") {
		cfg.Alphabet = a.alphabet
		cfg.Sources["alphabet"] = cliconfig.SourceFlag
	}
	if flags.Changed("min-length") {
		cfg.MinLength = a.minLength
		cfg.Sources["minLength"] = cliconfig.SourceFlag
	}
	if flags.Changed("no-blocklist") {
		cfg.DisableBlocklist = a.noBlocklist
		cfg.Sources["blocklist"] = cliconfig.SourceFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
		cfg.Sources["logLevel"] = cliconfig.SourceFlag
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
		cfg.Sources["logFormat"] = cliconfig.SourceFlag
	}
}

// compactCodec builds the codec on first use, so commands that never touch
// it still run with a broken encoder config.
func (a *app) compactCodec() (*compact.Codec, error) {
	if a.codec != nil {
		return a.codec, nil
	}
	cc, err := a.cfg.Compact()
	if err != nil {
		return nil, err
	}
	codec, err := compact.New(cc)
	if err != nil {
		return nil, err
	}
	a.codec = codec
	return codec, nil
}
