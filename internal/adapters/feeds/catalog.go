package feeds

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/example/ticketmart/internal/ports/secondary"
)

// Catalog locates feed exports under a single exports directory by glob
// pattern. Export filenames embed their timestamp, so the lexicographically
// greatest match is the newest file.
type Catalog struct {
	dir                 string
	interactionsPattern string
	linksPattern        string
	sysidsPattern       string
}

// NewCatalog creates a catalog over dir with one glob pattern per feed.
func NewCatalog(dir, interactionsPattern, linksPattern, sysidsPattern string) *Catalog {
	return &Catalog{
		dir:                 dir,
		interactionsPattern: interactionsPattern,
		linksPattern:        linksPattern,
		sysidsPattern:       sysidsPattern,
	}
}

// LatestInteractions locates the newest interactions CSV export.
func (c *Catalog) LatestInteractions() (string, error) {
	return c.latest(c.interactionsPattern)
}

// LatestLinks locates the newest link CSV export.
func (c *Catalog) LatestLinks() (string, error) {
	return c.latest(c.linksPattern)
}

// LatestSysIDs locates the newest sys_id JSON export.
func (c *Catalog) LatestSysIDs() (string, error) {
	return c.latest(c.sysidsPattern)
}

func (c *Catalog) latest(pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(c.dir, pattern))
	if err != nil {
		return "", fmt.Errorf("failed to glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", nil
	}

	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// Ensure Catalog implements the interface.
var _ secondary.FeedCatalog = (*Catalog)(nil)
