package validators

import (
	"net/http"
	"strings"
)

// QueryTerm reads a trimmed search term from the query string.
func QueryTerm(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
