/**
 * @description
 * Pure allocation rules over a beneficiary collection. These functions
 * compute per-group percentage totals and decide submission eligibility;
 * they never mutate their input and have no dependencies beyond the domain
 * models.
 *
 * @notes
 * - Eligibility requires the primary group to total exactly 100%. The
 *   contingent group is optional, but once any contingent beneficiary
 *   exists the group as a whole must also total exactly 100%. Both
 *   overshoot and undershoot fail.
 * - Totals are computed in basis points, so equality against 100% is exact.
 */
package allocation

import "github.com/trustmark/designation-service/internal/domain"

// Total sums every beneficiary share regardless of group. Display aggregate
// only; eligibility is decided per group.
func Total(beneficiaries []domain.Beneficiary) domain.Percent {
	var sum domain.Percent
	for _, b := range beneficiaries {
		sum += b.Percentage
	}
	return sum
}

// Primary returns the primary-group beneficiaries in their original order.
func Primary(beneficiaries []domain.Beneficiary) []domain.Beneficiary {
	var out []domain.Beneficiary
	for _, b := range beneficiaries {
		if b.IsPrimary {
			out = append(out, b)
		}
	}
	return out
}

// Contingent returns the contingent-group beneficiaries in their original order.
func Contingent(beneficiaries []domain.Beneficiary) []domain.Beneficiary {
	var out []domain.Beneficiary
	for _, b := range beneficiaries {
		if !b.IsPrimary {
			out = append(out, b)
		}
	}
	return out
}

// PrimaryTotal sums the shares of the primary group.
func PrimaryTotal(beneficiaries []domain.Beneficiary) domain.Percent {
	var sum domain.Percent
	for _, b := range beneficiaries {
		if b.IsPrimary {
			sum += b.Percentage
		}
	}
	return sum
}

// ContingentTotal sums the shares of the contingent group.
func ContingentTotal(beneficiaries []domain.Beneficiary) domain.Percent {
	var sum domain.Percent
	for _, b := range beneficiaries {
		if !b.IsPrimary {
			sum += b.Percentage
		}
	}
	return sum
}

// CanSubmit reports whether the account's designations may be submitted:
// the primary group totals exactly 100%, and the contingent group is either
// empty or also totals exactly 100%.
func CanSubmit(account *domain.Account) bool {
	if PrimaryTotal(account.Beneficiaries) != domain.FullAllocation {
		return false
	}
	contingent := Contingent(account.Beneficiaries)
	if len(contingent) == 0 {
		return true
	}
	return ContingentTotal(account.Beneficiaries) == domain.FullAllocation
}
