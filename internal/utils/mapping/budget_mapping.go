package mapping

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
)

// ToModelBudgetTarget converts a domain BudgetTarget to a model BudgetTarget
func ToModelBudgetTarget(d domain.BudgetTarget) models.BudgetTarget {
	return models.BudgetTarget{
		BudgetID:      d.BudgetID,
		StreamID:      d.StreamID,
		Year:          d.Year,
		AnnualAmount:  d.AnnualAmount,
		MonthlyTarget: d.MonthlyTarget,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetTarget converts a model BudgetTarget to a domain BudgetTarget
func ToDomainBudgetTarget(m models.BudgetTarget) domain.BudgetTarget {
	return domain.BudgetTarget{
		BudgetID:      m.BudgetID,
		StreamID:      m.StreamID,
		Year:          m.Year,
		AnnualAmount:  m.AnnualAmount,
		MonthlyTarget: m.MonthlyTarget,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetTargetSlice converts a slice of model BudgetTargets to a slice of domain BudgetTargets
func ToDomainBudgetTargetSlice(ms []models.BudgetTarget) []domain.BudgetTarget {
	ds := make([]domain.BudgetTarget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetTarget(m)
	}
	return ds
}
