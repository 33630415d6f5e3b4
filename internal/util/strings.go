package util

import "strings"

// FirstNonEmpty returns the first non-empty string (after trimming).
func FirstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// TitleFromSlug turns "where_do_i_go_from_here" into "Where Do I Go From Here".
func TitleFromSlug(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return s
	}
	var out []rune
	capNext := true
	for _, r := range strings.Join(strings.Fields(s), " ") {
		if capNext && r >= 'a' && r <= 'z' {
			out = append(out, r-('a'-'A'))
			capNext = false
			continue
		}
		out = append(out, r)
		capNext = r == ' ' || r == '-'
	}
	return string(out)
}
