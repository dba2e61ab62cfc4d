package pug

import (
	"context"
	"os"

	"github.com/turtacn/pubchem-go/pkg/errors"
)

// Download executes req and writes the raw response bytes verbatim to
// path.  The destination is not overwritten unless overwrite is true; a
// conflict is reported as an ErrCodeFileExists error, distinct from the
// HTTP error family.
//
// Any output format the service supports may be requested (XML, ASNT/B,
// JSON, SDF, CSV, PNG, TXT); the payload is not decoded.
func (c *Client) Download(ctx context.Context, req Request, path string, overwrite bool) error {
	body, err := c.Get(ctx, req)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return errors.FileExists(path)
		}
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write download")
	}
	return nil
}
