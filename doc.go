// Package dispatch provides the string handling a data-access client needs
// before it can open a dataset URL: reading the "mode" annotations carried in
// a URL fragment, splitting and joining slash or comma delimited paths, and
// escaping path strings that contain protocol-significant characters.
//
// Key Features:
//   - Mode lists: "https://host/x.nc#mode=bytes,dap4" answers TestMode(uri, "DAP4")
//   - Strict tokenizer: one leading delimiter is an anchor, any other empty
//     segment is rejected with ErrMalformed
//   - Joiner that is the left inverse of the tokenizer for '/' paths
//   - Backslash escaping for `\ / . @`, XML entity escaping, and removal of
//     shell-inserted backslashes before '#'
//
// Every function is pure: inputs are never retained, results are freshly
// allocated, and nothing is shared between calls.
//
// Example usage:
//
//	if dispatch.TestPathMode("https://host/x.nc#mode=bytes", "bytes") {
//	    // open with byte-range reads
//	}
//
//	segments, err := dispatch.Split("/group/subgroup/var", '/')
//	path, err := dispatch.Join(segments)
package dispatch
