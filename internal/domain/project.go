package domain

import (
	"fmt"
	"strings"
	"time"
)

type Project struct {
	ID        string
	Name      string
	Color     string
	Order     int
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a project must carry before it is persisted.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if p.Order < 0 {
		return fmt.Errorf("project order must be >= 0, got %d", p.Order)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// IsMigrationTarget reports whether sessions of another project may be moved here.
func (p *Project) IsMigrationTarget(deletingID string) bool {
	return p.ID != deletingID && !p.Archived
}
