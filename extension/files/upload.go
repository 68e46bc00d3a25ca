// upload.go implements the "mdfiles upload" command, the CLI counterpart of
// the web page's upload form.
//
// Design: Files are copied in argument order and the command stops at the
// first failure, leaving earlier files in place. That matches the web
// handler, so a partial upload looks the same whichever surface made it.

package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/jpl-au/mdfiles/internal/progress"
	"github.com/spf13/cobra"
)

func (e *Extension) newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <folder> <file>...",
		Short: "Copy local files into a folder",
		Long: `Copy local files into a folder under the root, keeping their names.
Existing files of the same name are replaced.

  mdfiles upload inbox ~/Downloads/report.pdf notes.md
  mdfiles upload "" *.md                     # into the root itself`,
		Args: cobra.MinimumNArgs(2),
		RunE: e.runUpload,
	}
}

func (e *Extension) runUpload(c *cobra.Command, args []string) error {
	dir, locals := args[0], args[1:]

	bar := progress.New(os.Stderr, "Uploading", len(locals))
	results := make([]files.WriteResult, 0, len(locals))
	for _, local := range locals {
		res, err := e.uploadOne(c, dir, local)
		if err != nil {
			bar.Done()
			return cmd.PrintJSONError(fmt.Errorf("upload %q: %w", local, err))
		}
		results = append(results, res)
		bar.Step()
	}
	bar.Done()

	if cmd.JSON() {
		return cmd.PrintJSON(results)
	}
	for _, res := range results {
		fmt.Fprintf(cmd.Out(), "Uploaded %s (%d bytes)\n", res.Path, res.Bytes)
	}
	return nil
}

func (e *Extension) uploadOne(c *cobra.Command, dir, local string) (files.WriteResult, error) {
	name := filepath.Base(local)
	b := log.Event("files:upload", "upload").Author(cmd.Author()).Path(dir).Detail("name", name)

	f, err := os.Open(local)
	if err != nil {
		b.Write(err)
		return files.WriteResult{}, err
	}
	defer f.Close()

	res, err := e.svc.Upload(c.Context(), dir, name, f)
	if err == nil {
		b.Resolved(res.Path).Detail("bytes", res.Bytes)
	}
	b.Write(err)
	return res, err
}
