package github

import "strings"

// parseLinks maps each rel of an RFC 8288 Link header to its target URL.
// Entries without an angle-bracketed target are skipped.
func parseLinks(header string) map[string]string {
	links := make(map[string]string)
	for _, entry := range strings.Split(header, ",") {
		target, params, ok := strings.Cut(strings.TrimSpace(entry), ";")
		target = strings.TrimSpace(target)
		if !ok || !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		target = target[1 : len(target)-1]

		for _, param := range strings.Split(params, ";") {
			name, value, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || !strings.EqualFold(strings.TrimSpace(name), "rel") {
				continue
			}
			// A rel may list several space separated types.
			for _, rel := range strings.Fields(strings.Trim(value, `"`)) {
				if _, seen := links[rel]; !seen {
					links[rel] = target
				}
			}
		}
	}
	return links
}

// ParseNextLink returns the rel="next" URL of a Link header, or "" on the
// last page.
func ParseNextLink(header string) string {
	if header == "" {
		return ""
	}
	return parseLinks(header)["next"]
}
