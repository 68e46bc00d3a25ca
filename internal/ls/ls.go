// Package ls provides directory listing for the CLI layer.
//
// The file service already orders entries (directories first, then name),
// so this package only chooses between the short and long layouts and
// reports entries the service had to skip.
package ls

import (
	"context"
	"io"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/format"
	"github.com/jpl-au/mdfiles/internal/service"
)

// Options configures a list operation.
type Options struct {
	Long bool // Long format with size, time and title
}

// Result contains the outcome of a list operation.
type Result struct {
	Listing *files.Listing
}

// Count returns the number of entries listed.
func (r Result) Count() int {
	if r.Listing == nil {
		return 0
	}
	return len(r.Listing.Items)
}

// Run lists the directory rel and writes formatted output to w. Skipped
// entries are written to errw.
func Run(ctx context.Context, w, errw io.Writer, svc service.Service, rel string, opts Options) (Result, error) {
	var result Result

	l, err := svc.List(ctx, rel)
	if err != nil {
		return result, err
	}
	result.Listing = l

	if opts.Long {
		err = format.Long(w, l.Items)
	} else {
		err = format.List(w, l.Items)
	}
	if err != nil {
		return result, err
	}
	return result, format.Skipped(errw, l.Skipped)
}
