// Package export turns a checklist snapshot into its two artifacts: the raw
// state backup document and the filtered report.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/tailscale/hujson"
)

// ErrInvalidSnapshot is returned when an imported document cannot be used.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var snapshotValidate = validator.New()

// SnapshotDocument is the full-state backup. Field names are stable.
type SnapshotDocument struct {
	WebsiteName    string         `json:"websiteName"`
	Timestamp      string         `json:"timestamp" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CompletedRules []string       `json:"completedRules" validate:"required,dive,required"`
	ActiveLevels   []domain.Level `json:"activeLevels" validate:"required,dive,oneof=A AA AAA"`
	ActiveRoles    []domain.Role  `json:"activeRoles" validate:"required,dive,oneof=Design Develop Content"`
}

// ToSnapshotDocument dumps st as of now. Completed ids are included whether
// or not they are currently visible. Lists are in canonical order.
func ToSnapshotDocument(st domain.ProgressState, now time.Time) SnapshotDocument {
	return SnapshotDocument{
		WebsiteName:    st.Label,
		Timestamp:      now.UTC().Format(TimestampLayout),
		CompletedRules: st.CompletedList(),
		ActiveLevels:   st.LevelList(),
		ActiveRoles:    st.RoleList(),
	}
}

// Encode renders the document as indented JSON with a trailing newline.
func (d SnapshotDocument) Encode() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(out, '\n'), nil
}

// Validate checks field presence and enum membership.
func (d *SnapshotDocument) Validate() error {
	return snapshotValidate.Struct(d)
}

// ParseSnapshot reads a snapshot document. Comments and trailing commas are
// accepted. Every problem is wrapped in ErrInvalidSnapshot.
func ParseSnapshot(data []byte) (SnapshotDocument, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return SnapshotDocument{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	var doc SnapshotDocument
	if err := json.Unmarshal(standardized, &doc); err != nil {
		return SnapshotDocument{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if err := doc.Validate(); err != nil {
		return SnapshotDocument{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return doc, nil
}

// RestoreInput maps the document back onto store state. Duplicates collapse.
func (d SnapshotDocument) RestoreInput() store.RestoreInput {
	return store.RestoreInput{
		Label:        d.WebsiteName,
		CompletedIDs: dedupe(d.CompletedRules),
		ActiveLevels: dedupe(d.ActiveLevels),
		ActiveRoles:  dedupe(d.ActiveRoles),
	}
}

func dedupe[T comparable](in []T) []T {
	seen := make(map[T]bool, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
