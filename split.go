package dispatch

import "strings"

// SplitDelim breaks source into segments at every occurrence of delim and
// appends them, in order, to segments.
//
// The scanner handles one special case before the main loop: a single
// leading delimiter is an anchor and is skipped. After that, every run of
// bytes between delimiters (or up to the end of the string) must be
// non-empty.
//
// Parameters:
//   - source: String to split (e.g., "/a/b" or "bytes,dap4")
//   - delim: Separator byte
//   - segments: Destination the segments are appended to
//
// Returns:
//   - error: ErrInvalidArgument if segments is nil, a wrapped ErrMalformed
//     if two delimiters are adjacent or the string ends with a delimiter
//
// Examples:
//   - "/a/b", '/' → ["a", "b"]
//   - "bytes,dap4", ',' → ["bytes", "dap4"]
//   - "", ',' → [] (no error)
//   - "a,,b", ',' → ErrMalformed
//
// When an error is returned, segments found before the malformed run have
// already been appended; callers should discard them.
func SplitDelim(source string, delim byte, segments *[]string) error {
	if segments == nil {
		return invalidArgumentError("SplitDelim", "segments")
	}
	if len(source) == 0 {
		return nil
	}
	start := 0
	if source[0] == delim {
		start = 1
	}
	for start < len(source) {
		end := strings.IndexByte(source[start:], delim)
		if end < 0 {
			end = len(source)
		} else {
			end += start
		}
		if end == start {
			return malformedError(source, start)
		}
		*segments = append(*segments, source[start:end])
		if end == len(source) {
			break
		}
		start = end + 1
		if start == len(source) {
			return malformedError(source, start)
		}
	}
	return nil
}

// Split is SplitDelim into a fresh slice. The result is never nil on
// success and always nil on failure.
func Split(source string, delim byte) ([]string, error) {
	segments := []string{}
	if err := SplitDelim(source, delim, &segments); err != nil {
		return nil, err
	}
	return segments, nil
}

// Join concatenates segments into a '/'-separated path. Each segment is
// preceded by a separator unless it already begins with one, and an empty
// list is the root path "/".
//
// A nil slice is ErrInvalidArgument; an empty, non-nil slice is not.
//
// Examples:
//   - ["a", "b"] → "/a/b"
//   - ["/a", "b"] → "/a/b"
//   - [] → "/"
func Join(segments []string) (string, error) {
	if segments == nil {
		return "", invalidArgumentError("Join", "segments")
	}
	if len(segments) == 0 {
		return "/", nil
	}
	var buf strings.Builder
	for _, seg := range segments {
		if !strings.HasPrefix(seg, "/") {
			buf.WriteByte('/')
		}
		buf.WriteString(seg)
	}
	return buf.String(), nil
}
