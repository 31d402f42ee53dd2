package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spetersoncode/skillinit/internal/config"
	"github.com/spetersoncode/skillinit/internal/errors"
	"github.com/spetersoncode/skillinit/internal/scaffold"
	"github.com/spetersoncode/skillinit/internal/skillname"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	destPath string
	verbose  bool
	noColor  bool
)

// Global configuration (loaded once at startup)
var globalConfig *config.Config

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidArgs  = 2
	ExitCollision    = 3
	ExitCreation     = 4
)

var rootCmd = &cobra.Command{
	Use:   "skillinit <skill-name>",
	Short: "Scaffold a new skill directory from templates",
	Long: `Skillinit creates a new skill directory populated with a templated
SKILL.md and example resource files for scripts, references, and assets,
giving skill authors a consistent starting structure.

Skill name requirements:
  - hyphen-delimited identifier (e.g. 'data-analyzer')
  - lowercase letters, digits, and hyphens only
  - at most 40 characters
  - matches the created directory name exactly

Examples:
  skillinit my-new-skill --path skills/public
  skillinit my-api-helper --path skills/private
  skillinit custom-skill --path /custom/location`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.InvalidArgs("expected exactly one skill name argument, got %d", len(args))
		}
		return nil
	},
	RunE: runInit,
}

func init() {
	// Load global configuration at startup
	var err error
	globalConfig, err = config.Load()
	if err != nil {
		// If config file is invalid, print warning but continue with defaults
		fmt.Fprintf(os.Stderr, "Warning: failed to load config file: %v\n", err)
		globalConfig = config.DefaultConfig()
	}

	rootCmd.Flags().StringVar(&destPath, "path", "", "Destination directory under which the skill directory is created")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Set version template for --version flag
	rootCmd.SetVersionTemplate(fmt.Sprintf("skillinit %s (%s, %s)\n", Version, shortCommit(), shortDate()))

	rootCmd.AddCommand(versionCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	identifier := args[0]
	out := cmd.OutOrStdout()

	if err := skillname.Validate(identifier); err != nil {
		return err
	}

	dest := destPath
	if dest == "" && globalConfig != nil {
		dest = globalConfig.DefaultPath
		if dest != "" && verbose {
			fmt.Fprintf(out, "Using destination from config: %s\n", dest)
		}
	}
	if dest == "" {
		return errors.InvalidArgs("no destination given").
			WithSuggestion("Pass --path <destination>, or set default_path in " + config.DefaultConfigPath() + ".")
	}

	configureColor()

	fmt.Fprintf(out, "🚀 Initializing skill: %s\n", identifier)
	fmt.Fprintf(out, "   Location: %s\n\n", dest)

	s := &scaffold.Scaffolder{Out: out}
	created, err := s.Initialize(identifier, dest)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s Successfully initialized skill '%s' at %s\n",
		color.GreenString("✅"), identifier, created)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "1. Edit SKILL.md to complete the TODO items and update the description")
	fmt.Fprintln(out, "2. Customize or delete the example files in scripts/, references/, and assets/")
	fmt.Fprintln(out, "3. Run the structure validator once the skill is ready")

	return nil
}

// configureColor disables colored output when requested by flag, config, or
// environment, or when stdout is not a terminal.
func configureColor() {
	if noColor || (globalConfig != nil && globalConfig.NoColor) {
		color.NoColor = true
		return
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// shortCommit returns the first 7 characters of the git commit hash
func shortCommit() string {
	if len(GitCommit) >= 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// shortDate returns just the date portion of BuildDate (YYYY-MM-DD)
func shortDate() string {
	if len(BuildDate) >= 10 {
		return BuildDate[:10]
	}
	return BuildDate
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
