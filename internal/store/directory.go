/**
 * @description
 * Read-only institution directory. The table is injected at construction
 * (from configuration in production, from literals in tests) rather than
 * hard-coded, so connectivity states can vary per deployment.
 */
package store

import "github.com/trustmark/designation-service/internal/domain"

// Directory is an injected read-only mapping of institution id to its
// display name, connectivity and API version.
type Directory struct {
	institutions []domain.Institution
	index        map[string]domain.Institution
}

// NewDirectory builds a directory from the given reference table.
func NewDirectory(institutions []domain.Institution) *Directory {
	d := &Directory{
		institutions: make([]domain.Institution, len(institutions)),
		index:        make(map[string]domain.Institution, len(institutions)),
	}
	copy(d.institutions, institutions)
	for _, inst := range d.institutions {
		d.index[inst.ID] = inst
	}
	return d
}

// Lookup resolves an institution id. Unknown ids fall back to a
// disconnected placeholder using the id itself as display name.
func (d *Directory) Lookup(institutionID string) domain.Institution {
	if inst, ok := d.index[institutionID]; ok {
		return inst
	}
	return domain.Institution{ID: institutionID, Name: institutionID, Connected: false}
}

// All returns the directory contents in their configured order.
func (d *Directory) All() []domain.Institution {
	out := make([]domain.Institution, len(d.institutions))
	copy(out, d.institutions)
	return out
}
