// Package property wires the properties page.
package property

import (
	"log/slog"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/service/record"
)

type Service = record.Controller[domain.Property, Form]

// Descriptor lists properties filtered by type.
func Descriptor() record.Descriptor[domain.Property] {
	facets := make([]string, 0, len(domain.PropertyTypes))
	for _, t := range domain.PropertyTypes {
		facets = append(facets, t.String())
	}
	return record.Descriptor[domain.Property]{
		Kind:   domain.EntityKindProperty,
		Facets: facets,
		Describe: func(p domain.Property) map[string]any {
			return map[string]any{"title": p.Title}
		},
	}
}

func NewService(
	logger *slog.Logger,
	store record.Store[domain.Property],
	activity record.ActivityLog,
	tx record.TxManager,
) *Service {
	return record.NewController[domain.Property, Form](logger, Descriptor(), store, activity, tx)
}
