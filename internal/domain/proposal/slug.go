package proposal

import (
	"regexp"
	"strings"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NormalizeSlug apara espaços e valida o formato URL-safe.
// A unicidade em si é verificada no repositório (match exato).
func NormalizeSlug(raw string) (string, error) {
	slug := strings.TrimSpace(raw)
	if slug == "" {
		return "", httperr.ErrBusiness("slug_required")
	}
	if !slugPattern.MatchString(slug) {
		return "", httperr.ErrBusiness("invalid_slug")
	}
	return slug, nil
}
