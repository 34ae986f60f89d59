package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fridgefit/fridgefit/pkg/config"
	"github.com/fridgefit/fridgefit/pkg/logger"
	"github.com/fridgefit/fridgefit/pkg/messages"
	"github.com/fridgefit/fridgefit/pkg/pantry"
	"github.com/fridgefit/fridgefit/pkg/recipes"
	"github.com/fridgefit/fridgefit/pkg/score"
)

const version = "0.1.0"

// errRecipeFileNotFound is a usage error: the path is wrong, not the data.
var errRecipeFileNotFound = errors.New("recipe file not found")

type options struct {
	recipesPath string
	top         int
	showMissing bool
	interactive bool
	logLevel    string
}

// newRootCmd builds the command with injectable streams so the whole run
// path is testable without touching the process stdio.
func newRootCmd(cfg *config.Config, in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "fridgefit [ingredients...]",
		Short:   "Suggest balanced recipes using what you already have",
		Long:    "FridgeFit matches the ingredients in your fridge against a recipe collection and suggests the best nutritionally balanced options.",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(opts, args, in, out, errOut)
			if err != nil && !isUsageError(err) {
				// Only usage errors warrant echoing the flag help
				cmd.SilenceUsage = true
			}
			return err
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&opts.recipesPath, "recipes", cfg.RecipesFile, "path to the recipe collection JSON file")
	flags.IntVar(&opts.top, "top", cfg.TopCount, "how many suggestions to show")
	flags.BoolVar(&opts.showMissing, "show-missing", false, "list what you still need to buy for each recipe")
	flags.BoolVar(&opts.interactive, "interactive", false, "force an interactive prompt for ingredients")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log verbosity (debug, info, warn, error)")

	return cmd
}

func run(opts *options, args []string, in io.Reader, out, errOut io.Writer) error {
	logger.SetLevel(opts.logLevel)
	log := logger.Global

	items := pantry.Parse(args)
	if opts.interactive || items.Len() == 0 {
		items = pantry.Ensure(items, in, errOut)
	}
	if items.Len() == 0 {
		return fmt.Errorf("%w: add them as arguments or via the prompt", pantry.ErrNoIngredients)
	}
	log.Debug("Pantry resolved with %d items: %v", items.Len(), items.Items())

	if _, err := os.Stat(opts.recipesPath); err != nil {
		return fmt.Errorf("%w: %s", errRecipeFileNotFound, opts.recipesPath)
	}
	collection, err := recipes.Load(opts.recipesPath)
	if err != nil {
		return err
	}
	log.Info("Loaded %d recipes from %s", len(collection), opts.recipesPath)

	matches := score.Rank(collection, items)
	if len(matches) == 0 {
		return score.ErrNoMatches
	}

	top := opts.top
	if top < 1 {
		top = 1
	}
	fmt.Fprint(out, messages.DescribeRanked(matches, items, top, opts.showMissing))
	return nil
}

// isUsageError separates "you called this wrong" from every other failure.
func isUsageError(err error) bool {
	return errors.Is(err, pantry.ErrNoIngredients) || errors.Is(err, errRecipeFileNotFound)
}

// exitCode maps the error taxonomy to distinct exit statuses: 1 when the
// collection simply had no balanced recipe, 2 for usage and load errors.
func exitCode(err error) int {
	if errors.Is(err, score.ErrNoMatches) {
		return 1
	}
	return 2
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Global.Error("Failed to load configuration: %v", err)
		os.Exit(2)
	}

	cmd := newRootCmd(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
