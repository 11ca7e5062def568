// Package cmd provides the command-line interface for pyskel.
//
// Configuration System:
//
//	Flags can be pre-set through multiple sources with clear precedence:
//	1. Command-line flags (--doc, --dir, etc.) - highest priority
//	2. PYSKEL_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (PYSKEL_DIR, PYSKEL_VERBOSE)
//	4. Configuration file (.pyskel.yml) - lowest priority
//
// With no config file or environment present, behavior is driven entirely
// by the command line.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pyskel/pyskel/internal/output"
	"github.com/pyskel/pyskel/internal/scaffolding"
	"github.com/pyskel/pyskel/internal/validation"
)

var (
	rootDoc     bool
	rootVerbose bool
	rootDir     string
)

// rootCmd represents the base command. pyskel has a single job, so the
// scaffold runs directly on the root command rather than a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pyskel <project-name> <package-name>",
	Short: "Scaffold a standardized data-science Python project",
	Long: `Pyskel scaffolds a standardized directory layout and boilerplate files
for a new data-science-oriented Python project.

The project name becomes the root directory and must be Train-Case
(hyphen-separated words, each starting uppercase). The package name becomes
the Python package under src/ and must be snake_case.

Generated layout:
  <project-name>/
    README.md
    pyproject.toml
    .gitignore
    config/DEV.yaml
    notebooks/
    files/
    test/sample_test.py
    src/<package-name>/__init__.py
    src/<package-name>/env.py
    src/<package-name>/db.py
    src/<package-name>/main.py
    docs/                (only with --doc)

Examples:
  pyskel My-Project my_package            # Scaffold in the current directory
  pyskel My-Project my_package --doc      # Also create a docs/ directory
  pyskel My-Project my_package -v         # Log every directory and file
  pyskel My-Project my_package --dir ~/w  # Scaffold under another directory`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command. Errors are reported by main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.BoolVar(&rootDoc, "doc", false, "create a docs/ directory for package documentation")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "log every directory and file as it is created")
	flags.StringVarP(&rootDir, "dir", "d", ".", "base directory the project root is created under")
	bindFlags(flags)
}

// bindFlags wires the flags into viper so a config file or PYSKEL_* env
// vars can pre-set them; explicitly passed flags always win.
func bindFlags(flags *pflag.FlagSet) {
	viper.BindPFlag("doc", flags.Lookup("doc"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("dir", flags.Lookup("dir"))
}

// initConfig loads the optional configuration file. A missing or malformed
// file is not an error; flags keep their defaults.
func initConfig() {
	if envConfigFile := os.Getenv("PYSKEL_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pyskel")
	}

	viper.SetEnvPrefix("PYSKEL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	doc := viper.GetBool("doc")
	verbose := viper.GetBool("verbose")
	dir := viper.GetString("dir")
	if dir == "" {
		dir = "."
	}

	output.SetupLogging(verbose)

	projectName, packageName := args[0], args[1]

	// Fail fast on names: nothing touches the filesystem until both pass.
	output.Debug("validating project name", "name", projectName)
	if err := validation.ValidateProjectName(projectName); err != nil {
		return err
	}
	output.Debug("validating package name", "name", packageName)
	if err := validation.ValidatePackageName(packageName); err != nil {
		return err
	}

	spec := scaffolding.ProjectSpec{
		ProjectName: projectName,
		PackageName: packageName,
		IncludeDocs: doc,
	}

	fs := afero.NewOsFs()
	if dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create base directory %s: %w", dir, err)
		}
	}

	builder := scaffolding.NewBuilder(fs, output.Logger)
	if err := builder.Build(spec, dir); err != nil {
		return err
	}

	output.Success("Your project " + output.Noun(projectName) + " is ready to work!")
	output.Println("")
	output.Println("Next steps:")
	output.Println("  1. cd " + filepath.Join(dir, projectName))
	output.Println("  2. uv sync " + output.Dim("(or your preferred package manager)"))
	output.Println("  3. start hacking in src/" + packageName)

	return nil
}
