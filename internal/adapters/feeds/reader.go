package feeds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// Reader decodes feed exports into raw row structs. Values pass through
// exactly as exported; normalization happens downstream.
type Reader struct{}

// NewReader creates a feed reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadInteractions decodes an interactions CSV export.
func (r *Reader) ReadInteractions(path string) ([]models.InteractionRow, error) {
	cr, closeFile, err := openCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open interactions feed: %w", err)
	}
	defer closeFile()

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read interactions header: %w", err)
	}
	idx := headerIndex(header)

	var rows []models.InteractionRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read interactions row: %w", err)
		}

		rows = append(rows, models.InteractionRow{
			Number:           field(rec, idx, "number"),
			ShortDescription: field(rec, idx, "short_description"),
			Type:             field(rec, idx, "type"),
			WorkNotes:        field(rec, idx, "work_notes"),
			State:            field(rec, idx, "state"),
			Location:         field(rec, idx, "location"),
			OpenedFor:        field(rec, idx, "opened_for"),
			AssignedTo:       field(rec, idx, "assigned_to"),
			OpenedAt:         field(rec, idx, "opened_at"),
			UpdatedAt:        field(rec, idx, "sys_updated_on"),
		})
	}

	return rows, nil
}

// ReadLinks decodes an interaction-incident link CSV export.
func (r *Reader) ReadLinks(path string) ([]models.LinkRow, error) {
	cr, closeFile, err := openCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open links feed: %w", err)
	}
	defer closeFile()

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read links header: %w", err)
	}
	idx := headerIndex(header)

	var rows []models.LinkRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read links row: %w", err)
		}

		rows = append(rows, models.LinkRow{
			Interaction: field(rec, idx, "interaction"),
			Task:        field(rec, idx, "task"),
			CreatedBy:   field(rec, idx, "sys_created_by"),
			CreatedOn:   field(rec, idx, "sys_created_on"),
		})
	}

	return rows, nil
}

// ReadSysIDs decodes a sys_id JSON export. Exports arrive in three shapes:
// a bare array of records, a {"records": [...]} wrapper, or a single record
// object.
func (r *Reader) ReadSysIDs(path string) ([]models.SysIDRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sys_id feed: %w", err)
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("sys_id feed %s is empty", path)
	}

	switch data[0] {
	case '[':
		var records []models.SysIDRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode sys_id feed: %w", err)
		}
		return records, nil

	case '{':
		var wrapper struct {
			Records *[]models.SysIDRecord `json:"records"`
		}
		if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Records != nil {
			return *wrapper.Records, nil
		}

		var single models.SysIDRecord
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to decode sys_id feed: %w", err)
		}
		return []models.SysIDRecord{single}, nil

	default:
		return nil, fmt.Errorf("failed to decode sys_id feed: unexpected leading byte %q", data[0])
	}
}

// Ensure Reader implements the interface.
var _ secondary.FeedReader = (*Reader)(nil)
