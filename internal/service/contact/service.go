// Package contact wires the leads page: contact forms over the generic
// record controller.
package contact

import (
	"log/slog"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/service/record"
)

// Service manages the caller's contacts.
type Service = record.Controller[domain.Contact, Form]

// Descriptor lists contacts filtered by status.
func Descriptor() record.Descriptor[domain.Contact] {
	facets := make([]string, 0, len(domain.ContactStatuses))
	for _, s := range domain.ContactStatuses {
		facets = append(facets, s.String())
	}
	return record.Descriptor[domain.Contact]{
		Kind:   domain.EntityKindContact,
		Facets: facets,
		Describe: func(c domain.Contact) map[string]any {
			return map[string]any{"name": c.FullName}
		},
	}
}

func NewService(
	logger *slog.Logger,
	store record.Store[domain.Contact],
	activity record.ActivityLog,
	tx record.TxManager,
) *Service {
	return record.NewController[domain.Contact, Form](logger, Descriptor(), store, activity, tx)
}
