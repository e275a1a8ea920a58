package dispatch_uri

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

var (
	ErrEmpty           = errors.New("empty uri")
	ErrNoScheme        = errors.New("uri has no scheme")
	ErrUnclosedBracket = errors.New("unclosed bracket parameter")
)

// Param is one key[=value] item from a fragment or bracket prefix.
type Param struct {
	Key   string
	Value string
}

type URI struct {
	Raw      string
	Prefix   []Param
	Fragment []Param
	url      *url.URL
	params   map[string]string
}

// Parse reads raw as a data-access URL of the form
//
//	[key=value][key]scheme://host/path?query#key=value&key
//
// The fragment is cut off before the rest is handed to net/url, so a bad
// percent-escape in one fragment value does not reject the whole URL.
// The bracket prefix is optional. Inputs without a scheme, and inputs whose
// scheme is a single letter (a Windows drive), are plain paths and fail.
func Parse(raw string) (*URI, error) {
	if raw == "" {
		return nil, ErrEmpty
	}
	uri := &URI{Raw: raw}
	rest := raw
	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, errors.Wrapf(ErrUnclosedBracket, "parsing %q", raw)
		}
		uri.Prefix = append(uri.Prefix, parseParams(rest[1:end])...)
		rest = rest[end+1:]
	}
	fragment := ""
	if hash := strings.IndexByte(rest, '#'); hash >= 0 {
		rest, fragment = rest[:hash], rest[hash+1:]
	}
	u, err := url.Parse(rest)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", raw)
	}
	if len(u.Scheme) < 2 {
		return nil, errors.Wrapf(ErrNoScheme, "parsing %q", raw)
	}
	uri.url = u
	uri.Fragment = parseParams(fragment)

	fold := cases.Fold()
	uri.params = make(map[string]string)
	for _, list := range [][]Param{uri.Fragment, uri.Prefix} {
		for _, p := range list {
			key := fold.String(p.Key)
			if _, ok := uri.params[key]; !ok {
				uri.params[key] = p.Value
			}
		}
	}
	return uri, nil
}

// parseParams splits an '&'-separated list of key[=value] items. Keys and
// values are percent-decoded; an item that fails to decode is kept raw.
func parseParams(s string) []Param {
	params := []Param{}
	itemStart := 0
	for itemStart < len(s) {
		itemEnd := itemStart
		for itemEnd < len(s) && s[itemEnd] != '&' {
			itemEnd++
		}
		item := s[itemStart:itemEnd]
		itemStart = itemEnd + 1
		if item == "" {
			continue
		}
		key, value := item, ""
		if eq := strings.IndexByte(item, '='); eq >= 0 {
			key, value = item[:eq], item[eq+1:]
		}
		if key == "" {
			continue
		}
		params = append(params, Param{Key: unescape(key), Value: unescape(value)})
	}
	return params
}

func unescape(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}

func foldKey(key string) string {
	return cases.Fold().String(key)
}

// FragmentLookup returns the value of a fragment (or bracket prefix)
// parameter. Keys match case-insensitively and the fragment wins over the
// prefix when both carry the key.
func (uri *URI) FragmentLookup(key string) (string, bool) {
	val, ok := uri.params[foldKey(key)]
	return val, ok
}

// FragmentMap returns a copy of all parameters, keyed by case-folded key.
func (uri *URI) FragmentMap() map[string]string {
	res := make(map[string]string, len(uri.params))
	for k, v := range uri.params {
		res[k] = v
	}
	return res
}

// FragmentKeys lists parameter keys in the order they appear, fragment first.
func (uri *URI) FragmentKeys() []string {
	keys := []string{}
	for _, list := range [][]Param{uri.Fragment, uri.Prefix} {
		for _, p := range list {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

func (uri *URI) Scheme() string {
	return uri.url.Scheme
}

func (uri *URI) Host() string {
	return uri.url.Host
}

func (uri *URI) Path() string {
	return uri.url.Path
}

func (uri *URI) Query() string {
	return uri.url.RawQuery
}

func (uri *URI) String() string {
	return uri.Raw
}
