// Package insight builds the dashboard and analytics views from grouped
// counts over the caller's records.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

const unknownSource = "Unknown"

type counter interface {
	Count(ctx context.Context, f domain.RecordFilter) (int, error)
	CountBy(ctx context.Context, column string) (map[string]int, error)
}

type activityFeed interface {
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// Stat is one dashboard card.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Dashboard is the overview page.
type Dashboard struct {
	Stats  []Stat            `json:"stats"`
	Recent []domain.Activity `json:"recent_activities"`
}

// Bucket is one slice of a chart.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Analytics is the charts page.
type Analytics struct {
	LeadsByStatus      []Bucket `json:"leads_by_status"`
	LeadsBySource      []Bucket `json:"leads_by_source"`
	PropertiesByStatus []Bucket `json:"properties_by_status"`
	TasksByPriority    []Bucket `json:"tasks_by_priority"`
}

type Service struct {
	log        *slog.Logger
	contacts   counter
	properties counter
	tasks      counter
	activity   activityFeed
}

func NewService(logger *slog.Logger, contacts, properties, tasks counter, activity activityFeed) *Service {
	return &Service{
		log:        logger.With("service", "insight"),
		contacts:   contacts,
		properties: properties,
		tasks:      tasks,
		activity:   activity,
	}
}

// Dashboard counts leads, listings, pending tasks and won deals, and
// returns the most recent activity. The queries run concurrently and the
// first failure cancels the rest.
func (s *Service) Dashboard(ctx context.Context, recent int) (*Dashboard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		leads, listings, pending, won int
		activities                    []domain.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		leads, err = s.contacts.Count(gctx, domain.RecordFilter{})
		return err
	})
	g.Go(func() (err error) {
		listings, err = s.properties.Count(gctx, domain.RecordFilter{})
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.tasks.Count(gctx, domain.RecordFilter{Facet: domain.TaskStatusPending.String()})
		return err
	})
	g.Go(func() (err error) {
		won, err = s.contacts.Count(gctx, domain.RecordFilter{Facet: domain.ContactStatusWon.String()})
		return err
	})
	g.Go(func() (err error) {
		activities, err = s.activity.Recent(gctx, recent)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("insight.Dashboard: %w", err)
	}

	return &Dashboard{
		Stats: []Stat{
			{Label: "Total Leads", Value: leads},
			{Label: "Active Listings", Value: listings},
			{Label: "Pending Tasks", Value: pending},
			{Label: "Deals Won", Value: won},
		},
		Recent: activities,
	}, nil
}

// Analytics groups the caller's records for the charts page. Buckets with
// no rows are omitted.
func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	var byStatus, bySource, propStatus, taskPriority map[string]int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byStatus, err = s.contacts.CountBy(gctx, "status")
		return err
	})
	g.Go(func() (err error) {
		bySource, err = s.contacts.CountBy(gctx, "source")
		return err
	})
	g.Go(func() (err error) {
		propStatus, err = s.properties.CountBy(gctx, "status")
		return err
	})
	g.Go(func() (err error) {
		taskPriority, err = s.tasks.CountBy(gctx, "priority")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("insight.Analytics: %w", err)
	}

	return &Analytics{
		LeadsByStatus:      ordered(byStatus, names(domain.ContactStatuses), nil),
		LeadsBySource:      sources(bySource),
		PropertiesByStatus: ordered(propStatus, names(domain.PropertyStatuses), spaced),
		TasksByPriority:    ordered(taskPriority, names(domain.TaskPriorities), nil),
	}, nil
}

func names[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ordered emits non-empty buckets in enum order.
func ordered(counts map[string]int, order []string, label func(string) string) []Bucket {
	out := make([]Bucket, 0, len(order))
	for _, key := range order {
		n := counts[key]
		if n == 0 {
			continue
		}
		name := key
		if label != nil {
			name = label(key)
		}
		out = append(out, Bucket{Name: name, Value: n})
	}
	return out
}

// sources merges blank sources into "Unknown" and sorts by count, largest first.
func sources(counts map[string]int) []Bucket {
	merged := make(map[string]int, len(counts))
	for key, n := range counts {
		name := strings.TrimSpace(key)
		if name == "" {
			name = unknownSource
		}
		merged[name] += n
	}

	out := make([]Bucket, 0, len(merged))
	for name, n := range merged {
		out = append(out, Bucket{Name: name, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func spaced(status string) string {
	return strings.Replace(status, "_", " ", 1)
}
