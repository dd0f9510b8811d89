package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const (
	Scheme     = "sqlite://"
	memoryDSN  = ":memory:"
	MemoryDSN  = Scheme + memoryDSN
	queryDelim = "?"
)

// connectionPragmas run on every pooled connection, so foreign keys and the
// busy timeout hold no matter which connection serves a statement.
var connectionPragmas = []string{
	"busy_timeout(30000)",
	"journal_mode(WAL)",
	"foreign_keys(1)",
}

// parseDSN maps a sqlite://<path>[?query] DSN onto the file name the driver
// expects. Relative paths stay relative to the working directory.
func parseDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, Scheme) {
		return "", fmt.Errorf("invalid sqlite DSN scheme, expected %s", Scheme)
	}

	rest := strings.TrimPrefix(dsn, Scheme)
	if rest == memoryDSN {
		return memoryDSN, nil
	}

	path, query, hasQuery := strings.Cut(rest, queryDelim)
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}
	path = unescaped
	if path == "" {
		return "", fmt.Errorf("sqlite DSN has no database path")
	}

	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	if hasQuery {
		return path + queryDelim + query, nil
	}
	return path, nil
}

// withPragmas appends the connection pragmas to a driver file name as
// _pragma query parameters.
func withPragmas(path string) string {
	params := make([]string, 0, len(connectionPragmas))
	for _, pragma := range connectionPragmas {
		params = append(params, "_pragma="+url.QueryEscape(pragma))
	}
	sep := queryDelim
	if strings.Contains(path, queryDelim) {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}
