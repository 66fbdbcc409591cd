// Package task wires the tasks page and the done toggle.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/service/record"
)

// Service manages the caller's tasks.
type Service struct {
	*record.Controller[domain.Task, Form]
}

// Descriptor lists tasks filtered by status.
func Descriptor() record.Descriptor[domain.Task] {
	facets := make([]string, 0, len(domain.TaskStatuses))
	for _, s := range domain.TaskStatuses {
		facets = append(facets, s.String())
	}
	return record.Descriptor[domain.Task]{
		Kind:   domain.EntityKindTask,
		Facets: facets,
		Describe: func(t domain.Task) map[string]any {
			return map[string]any{"title": t.Title}
		},
	}
}

func NewService(
	logger *slog.Logger,
	store record.Store[domain.Task],
	activity record.ActivityLog,
	tx record.TxManager,
) *Service {
	return &Service{
		Controller: record.NewController[domain.Task, Form](logger, Descriptor(), store, activity, tx),
	}
}

// ToggleDone marks an open task done and a done task pending.
func (s *Service) ToggleDone(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	return s.Modify(ctx, id, func(current domain.Task) (record.Change, error) {
		next := domain.TaskStatusDone
		if current.IsDone() {
			next = domain.TaskStatusPending
		}
		return record.Change{
			Values: map[string]any{"status": next.String()},
			Action: domain.ActivityStatusChanged,
			Metadata: map[string]any{
				"from": current.Status.String(),
				"to":   next.String(),
			},
		}, nil
	})
}
