package secondary

import "github.com/example/ticketmart/internal/models"

// FeedCatalog defines the secondary port for locating feed exports on disk.
// Each method returns the newest matching file, or "" when the feed has no
// export at all.
type FeedCatalog interface {
	// LatestInteractions locates the newest interactions CSV export.
	LatestInteractions() (string, error)

	// LatestLinks locates the newest interaction-incident link CSV export.
	LatestLinks() (string, error)

	// LatestSysIDs locates the newest sys_id JSON export.
	LatestSysIDs() (string, error)
}

// FeedReader defines the secondary port for decoding feed exports into raw
// row structs. Readers decode and nothing more; all normalization happens
// downstream.
type FeedReader interface {
	// ReadInteractions decodes an interactions CSV export.
	ReadInteractions(path string) ([]models.InteractionRow, error)

	// ReadLinks decodes a link CSV export.
	ReadLinks(path string) ([]models.LinkRow, error)

	// ReadSysIDs decodes a sys_id JSON export in any of its shapes: a bare
	// array, a "records" wrapper object, or a single record.
	ReadSysIDs(path string) ([]models.SysIDRecord, error)
}
