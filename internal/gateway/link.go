package gateway

import "strings"

// NextLink returns the URL of the rel="next" entry of the response's Link header.
// The URL is returned as-is; it already carries any query parameters the server wants.
func NextLink(resp *Response) (string, bool) {
	if resp == nil {
		return "", false
	}
	header, ok := resp.Header["Link"]
	if !ok {
		return "", false
	}

	for _, entry := range strings.Split(header, ",") {
		segments := strings.Split(entry, ";")
		target := strings.TrimSpace(segments[0])
		if len(target) < 2 || target[0] != '<' || target[len(target)-1] != '>' {
			continue
		}
		for _, param := range segments[1:] {
			key, value, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || strings.TrimSpace(key) != "rel" {
				continue
			}
			// rel may hold several space-separated relation types.
			for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(value), `"`)) {
				if rel == "next" {
					return target[1 : len(target)-1], true
				}
			}
		}
	}
	return "", false
}
