// Command scaffold generates a project from a template repository.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-scaffold/internal/logging"
	"github.com/goliatone/go-scaffold/pkg/generate"
	"github.com/goliatone/go-scaffold/pkg/prompt"
	renderpongo2 "github.com/goliatone/go-scaffold/pkg/render/pongo2"
	"github.com/goliatone/go-scaffold/pkg/userconfig"
	"github.com/goliatone/go-scaffold/pkg/vars"
)

type options struct {
	outputDir   string
	contextFile string
	configFile  string
	noInput     bool
	verbosity   int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "scaffold <template-dir>",
		Short: "Generate a project from a template directory",
		Long: `Scaffold creates a new project tree from a template repository,
substituting {{variable}} expressions in directory names, file names, and
text file contents. Variables come from the repository's scaffold.json (or
scaffold.yml), overlaid with defaults from your user configuration, and are
confirmed interactively unless --no-input is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.contextFile, "context-file", "", "path to the context file (default: <template-dir>/scaffold.json)")
	flags.StringVar(&opts.configFile, "config", "", "path to the user config file")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	root.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "directory to generate the project into")
	root.Flags().BoolVar(&opts.noInput, "no-input", false, "use context values as-is without prompting")

	root.AddCommand(newContextCmd(opts))
	return root
}

// newContextCmd previews the resolved context without generating anything.
func newContextCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "context <template-dir>",
		Short: "Print the resolved variable context as ordered JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext(args[0], opts)
			if err != nil {
				return err
			}
			out, err := ctx.MarshalJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func runGenerate(cmd *cobra.Command, repoDir string, opts *options) error {
	repoDir, err := resolveRepoDir(repoDir, opts)
	if err != nil {
		return err
	}

	ctx, err := resolveContext(repoDir, opts)
	if err != nil {
		return err
	}

	if !opts.noInput && isatty.IsTerminal(os.Stdin.Fd()) {
		engine, err := renderpongo2.New()
		if err != nil {
			return err
		}
		ctx, err = prompt.Fill(ctx, engine, prompt.NewSurveyDriver())
		if err != nil {
			return err
		}
	}

	projectDir, err := generate.Generate(repoDir, ctx, opts.outputDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), projectDir)
	return nil
}

// resolveRepoDir expands a bare template name against the configured
// templates dir when the argument does not exist as a path.
func resolveRepoDir(arg string, opts *options) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	cfg, err := userconfig.Load(opts.configFile)
	if err != nil {
		return "", err
	}
	if cfg.TemplatesDir != "" {
		candidate := filepath.Join(cfg.TemplatesDir, arg)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("template directory %q not found", arg)
}

func resolveContext(repoDir string, opts *options) (*vars.Context, error) {
	cfg, err := userconfig.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	contextFile := opts.contextFile
	if contextFile == "" {
		contextFile = filepath.Join(repoDir, vars.DefaultContextFile)
		fallback := filepath.Join(repoDir, vars.FallbackContextFile)
		if _, err := os.Stat(contextFile); os.IsNotExist(err) {
			if _, err := os.Stat(fallback); err == nil {
				contextFile = fallback
			}
		}
	}

	return vars.Resolve(contextFile, cfg.ContextOverlay())
}
