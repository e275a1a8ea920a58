package dispatch

import (
	dispatch_uri "github.com/jacksonzamorano/dispatch/dispatch-uri"
	"golang.org/x/text/cases"
)

// ModeFragmentKey is the fragment parameter holding a URL's mode list,
// as in "https://host/data.nc#mode=bytes,dap4".
const ModeFragmentKey = "mode"

// ModeTag is one entry of a mode list. Tags compare case-insensitively.
type ModeTag string

// Equal reports whether two tags match under full Unicode case folding,
// so "ss" and "ß" are equal.
func (tag ModeTag) Equal(other string) bool {
	fold := cases.Fold()
	return fold.String(string(tag)) == fold.String(other)
}

// ModeList is a mode string split at its commas, in source order.
// Duplicates are kept.
type ModeList []ModeTag

// Contains scans the list in order for tag, ignoring case.
func (list ModeList) Contains(tag string) bool {
	fold := cases.Fold()
	want := fold.String(tag)
	for _, mode := range list {
		if fold.String(string(mode)) == want {
			return true
		}
	}
	return false
}

// Strings returns the tags as plain strings.
func (list ModeList) Strings() []string {
	res := make([]string, len(list))
	for i, mode := range list {
		res[i] = string(mode)
	}
	return res
}

// GetModeList splits a comma-separated mode string into its tags.
//
// An empty mode string gives an empty, non-nil list. Any error from the
// tokenizer is returned unchanged, e.g. ErrMalformed for "bytes,,dap4".
//
// Examples:
//   - "bytes,dap4" → ["bytes", "dap4"]
//   - "" → []
func GetModeList(modeString string) (ModeList, error) {
	modes := ModeList{}
	if modeString == "" {
		return modes, nil
	}
	segments := []string{}
	if err := SplitDelim(modeString, ',', &segments); err != nil {
		return nil, err
	}
	for _, seg := range segments {
		modes = append(modes, ModeTag(seg))
	}
	return modes, nil
}

// TestMode reports whether tag appears in the mode list of uri.
//
// This is a query that never fails: a missing uri, a missing mode
// parameter and a malformed mode list all answer false.
func TestMode(uri *dispatch_uri.URI, tag string) bool {
	if uri == nil {
		return false
	}
	modeString, ok := uri.FragmentLookup(ModeFragmentKey)
	if !ok {
		return false
	}
	found, err := modeListContains(modeString, tag)
	return modeAnswer(uri.String(), found, err)
}

// TestPathMode parses path as a URL and runs TestMode on it. A path that is
// not a URL answers false.
func TestPathMode(path string, tag string) bool {
	uri, err := dispatch_uri.Parse(path)
	if err != nil {
		return modeAnswer(path, false, err)
	}
	return TestMode(uri, tag)
}

func modeListContains(modeString string, tag string) (bool, error) {
	modes, err := GetModeList(modeString)
	if err != nil {
		return false, err
	}
	return modes.Contains(tag), nil
}

// modeAnswer collapses a fallible lookup into the boolean answer of the
// mode queries. Every failure, whatever its Status, is false.
func modeAnswer(source string, found bool, err error) bool {
	if err != nil {
		log.V(1).Info("mode lookup failed", "source", source, "status", StatusOf(err).String(), "error", err.Error())
		return false
	}
	return found
}
