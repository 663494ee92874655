package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lockcmp/internal/adapters/telemetry/progrock"
	"go.trai.ch/lockcmp/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [lockfile-a] [lockfile-b]",
		Short: "Compare package versions between two lockfiles",
		Long: `Compare reports, for every package name present in both lockfiles, whether
the two sides agree on its version. Each side can be scoped to the dependency
tree of one root package (by name, hash, or both) and can exclude packages
from traversal. Lockfile locations are filesystem paths, file:// URLs, or
http(s):// URLs.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := c.buildComparison(cmd, args)
			if err != nil {
				return err
			}

			if progress, _ := cmd.Flags().GetBool("progress"); progress {
				c.components.App.WithTracer(progrock.New())
			}

			return c.components.App.Compare(cmd.Context(), cmp)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Read the comparison from a YAML manifest instead of arguments")
	cmd.Flags().String("pkg-name-a", "", "Scope lockfile A to the tree rooted at this package name")
	cmd.Flags().String("pkg-name-b", "", "Scope lockfile B to the tree rooted at this package name")
	cmd.Flags().String("pkg-hash-a", "", "Scope lockfile A to the tree rooted at the package with this checksum or source revision")
	cmd.Flags().String("pkg-hash-b", "", "Scope lockfile B to the tree rooted at the package with this checksum or source revision")
	cmd.Flags().StringSlice("exclude-pkg-a", nil, "Exclude these package names from lockfile A's traversal")
	cmd.Flags().StringSlice("exclude-pkg-b", nil, "Exclude these package names from lockfile B's traversal")
	cmd.Flags().BoolP("verbose", "v", false, "Print discovered packages and matching versions")
	cmd.Flags().Bool("progress", false, "Render stage progress while comparing")

	return cmd
}

// buildComparison assembles the comparison inputs either from a manifest file
// or from the positional arguments and per-side flags. The verbose flag also
// applies on top of a manifest.
func (c *CLI) buildComparison(cmd *cobra.Command, args []string) (*domain.Comparison, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cmp, err := c.components.ConfigLoader.Load(path)
		if err != nil {
			return nil, err
		}
		cmp.Verbose = cmp.Verbose || verbose
		return cmp, nil
	}

	if len(args) != 2 {
		return nil, zerr.New("expected two lockfile locations or --config")
	}

	specA := domain.NewSpec(args[0])
	specA.RootName, _ = cmd.Flags().GetString("pkg-name-a")
	specA.RootHash, _ = cmd.Flags().GetString("pkg-hash-a")
	excludeA, _ := cmd.Flags().GetStringSlice("exclude-pkg-a")
	specA.Exclude(excludeA...)

	specB := domain.NewSpec(args[1])
	specB.RootName, _ = cmd.Flags().GetString("pkg-name-b")
	specB.RootHash, _ = cmd.Flags().GetString("pkg-hash-b")
	excludeB, _ := cmd.Flags().GetStringSlice("exclude-pkg-b")
	specB.Exclude(excludeB...)

	return &domain.Comparison{A: specA, B: specB, Verbose: verbose}, nil
}
