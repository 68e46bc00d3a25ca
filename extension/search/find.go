// find.go implements the "mdfiles find" command for searching documents.
//
// Separated from search.go to isolate search flag handling. A document
// matches on its front-matter id, its title, any tag, or its text, in that
// order; the result says which one matched so a reader knows why it is
// there.

package search

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/find"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newFindCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "find <query>",
		Short: "Search markdown files",
		Long: `Search markdown files by id, title, tag or content. Matching is a
case-insensitive substring test.

  mdfiles find deploy                    # everywhere
  mdfiles find deploy -p ops             # under ops/
  mdfiles find deploy -p ops --no-recursive
  mdfiles find deploy --pattern '**/2024-*.md'
  mdfiles find deploy -l                 # paths only`,
		Args: cobra.ExactArgs(1),
		RunE: e.runFind,
	}
	c.Flags().StringP(extension.FlagPath, "p", "", "Directory to search")
	c.Flags().Bool(extension.FlagNoRecursive, false, "Do not descend into subfolders")
	c.Flags().String(extension.FlagPattern, "", "Glob the file path must match")
	c.Flags().Int(extension.FlagLimit, 0, "Maximum results (0 = all)")
	c.Flags().BoolP(extension.FlagPathsOnly, "l", false, "Only output paths")
	return c
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	ctx := c.Context()
	query := args[0]

	var opts find.Options
	opts.Path, _ = c.Flags().GetString(extension.FlagPath)
	noRecursive, _ := c.Flags().GetBool(extension.FlagNoRecursive)
	opts.Recursive = !noRecursive
	opts.Pattern, _ = c.Flags().GetString(extension.FlagPattern)
	opts.Limit, _ = c.Flags().GetInt(extension.FlagLimit)
	opts.PathsOnly, _ = c.Flags().GetBool(extension.FlagPathsOnly)

	w, errw := cmd.Out(), io.Writer(os.Stderr)
	if cmd.JSON() {
		w, errw = io.Discard, io.Discard
	}

	result, err := find.Run(ctx, w, errw, e.svc, query, opts)

	log.Event("search:find", "search").
		Author(cmd.Author()).
		Path(opts.Path).
		Detail("query", query).
		Detail("count", len(result.Results)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("find %q: %w", query, err))
	}
	return cmd.PrintJSON(result)
}
