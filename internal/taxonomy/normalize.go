package taxonomy

import (
	"path"
	"strings"

	"github.com/mesh-intelligence/desksort/pkg/types"
)

// NormalizePath folds p and converts Windows separators to "/".
func NormalizePath(p string) string {
	return strings.ReplaceAll(types.Fold(p), `\`, "/")
}

// IsURL reports whether the normalized target p carries a URI scheme. A
// single-letter scheme is a drive letter, not a URL.
func IsURL(p string) bool {
	scheme, _, ok := strings.Cut(p, ":")
	if !ok || len(scheme) < 2 {
		return false
	}
	for i, r := range scheme {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// StripScheme returns the normalized URL without its scheme and leading
// slashes ("https://www.youtube.com/x" becomes "www.youtube.com/x").
func StripScheme(p string) string {
	if _, rest, ok := strings.Cut(p, "://"); ok {
		return rest
	}
	if _, rest, ok := strings.Cut(p, ":"); ok {
		return strings.TrimLeft(rest, "/")
	}
	return p
}

// Base returns the last element of the normalized path p.
func Base(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Extension returns the extension of the last element of the normalized path
// p, including the dot. URLs have no extension.
func Extension(p string) string {
	if p == "" || IsURL(p) {
		return ""
	}
	return path.Ext(Base(p))
}

// Stem returns the base name of p without its extension.
func Stem(p string) string {
	base := Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ContainsAny reports whether s contains any of the fragments.
func ContainsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// HasAnyPrefix reports whether s starts with any of the prefixes.
func HasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// MatchesToken reports whether name matches token. Tokens longer than three
// runes match as substrings; shorter tokens only match the whole name, so
// fragments like "gta" do not fire inside unrelated words.
func MatchesToken(name, token string) bool {
	if name == "" || token == "" {
		return false
	}
	if len([]rune(token)) > 3 {
		return strings.Contains(name, token)
	}
	return name == token
}

// SiteCategory returns the category of the first known site whose fragment
// occurs in the scheme-less URL.
func SiteCategory(url string) (types.Category, bool) {
	rest := StripScheme(url)
	for _, s := range KnownSites {
		if strings.Contains(rest, s.Fragment) {
			return s.Category, true
		}
	}
	return "", false
}
