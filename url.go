package dispatch

import (
	"strings"

	"github.com/pkg/errors"

	dispatch_uri "github.com/jacksonzamorano/dispatch/dispatch-uri"
)

// URLBasename checks that path is a data-access URL and returns the name of
// the dataset it points at: the last path component without its extension.
//
// Examples:
//   - "https://host/thredds/dodsC/air.mon.nc#mode=dap2" → "air.mon"
//   - "file:///tmp/.nc" → ".nc" (a leading dot is not an extension)
//   - "file:///tmp/" → ""
//
// A path that does not parse as a URL is a wrapped ErrMalformed.
func URLBasename(path string) (string, error) {
	uri, err := dispatch_uri.Parse(path)
	if err != nil {
		return "", errors.Wrapf(ErrMalformed, "not a url: %v", err)
	}
	base := uri.Path()
	if slash := strings.LastIndexByte(base, '/'); slash >= 0 {
		base = base[slash+1:]
	}
	if dot := strings.LastIndexByte(base, '.'); dot > 0 {
		base = base[:dot]
	}
	return base, nil
}
