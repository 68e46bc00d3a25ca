// guide.go implements "mdfiles guide", the built-in documentation.
//
// Design: the pages are embedded through the guide package, so help works
// from any directory and without a root. A terminal gets them styled by
// glamour; a pipe gets the markdown itself, ready to paste into an LLM's
// context. An unknown topic lists the ones that exist.

package core

import (
	"fmt"
	"strings"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/guide"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the mdfiles usage guide",
		Long: `Outputs the mdfiles guide for LLMs and humans.

  mdfiles guide            # main guide
  mdfiles guide markdown   # front matter, hashtags and wiki links
  mdfiles guide find       # search syntax and flags`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGuide,
	}
}

func runGuide(_ *cobra.Command, args []string) error {
	topic := ""
	if len(args) > 0 {
		topic = args[0]
	}

	content, err := guide.Get(topic)
	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return listErr
		}
		return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", topic, strings.Join(topics, ", ")))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"topic": topic, "content": content})
	}
	cmd.PrintMarkdown(content)
	return nil
}
