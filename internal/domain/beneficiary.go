/**
 * @description
 * This file defines the core domain model for a Beneficiary. A beneficiary
 * is a person or entity designated to receive a share of a financial account,
 * partitioned into either the primary or the contingent group of its account.
 *
 * @notes
 * - The SSN is a synthetic masked placeholder (`***-**-NNNN`); it is never
 *   derived from a real identifier.
 * - `IsPrimary` places a beneficiary in exactly one of the two groups.
 */
package domain

import (
	"fmt"
	"math/rand"
)

// Relationship classifies how a beneficiary relates to the account owner.
type Relationship string

const (
	RelationshipSpouse        Relationship = "Spouse"
	RelationshipChild         Relationship = "Child"
	RelationshipParent        Relationship = "Parent"
	RelationshipSibling       Relationship = "Sibling"
	RelationshipOtherRelative Relationship = "Other Relative"
	RelationshipTrust         Relationship = "Trust"
	RelationshipCharity       Relationship = "Charity"
	RelationshipOther         Relationship = "Other"
)

// Relationships lists every supported relationship type.
var Relationships = []Relationship{
	RelationshipSpouse,
	RelationshipChild,
	RelationshipParent,
	RelationshipSibling,
	RelationshipOtherRelative,
	RelationshipTrust,
	RelationshipCharity,
	RelationshipOther,
}

// Valid reports whether the relationship is one of the supported types.
func (r Relationship) Valid() bool {
	for _, known := range Relationships {
		if r == known {
			return true
		}
	}
	return false
}

// Beneficiary represents a designated recipient of an account share.
type Beneficiary struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Relationship Relationship `json:"relationship"`
	Percentage   Percent      `json:"percentage"`
	SSN          string       `json:"ssn"`
	IsPrimary    bool         `json:"is_primary"`
}

// NewMaskedSSN generates a synthetic masked identifier in the form
// `***-**-NNNN`. The suffix is random; no real SSN is ever stored.
func NewMaskedSSN() string {
	return fmt.Sprintf("***-**-%04d", 1000+rand.Intn(9000))
}
