package seeder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// fixtureID derives a stable id for the n-th fixture of a collection, so
// re-running the seeder overwrites rows instead of duplicating them.
func fixtureID(owner uuid.UUID, collection string, n int) uuid.UUID {
	return uuid.NewSHA1(owner, []byte(fmt.Sprintf("%s/%d", collection, n)))
}

func ptr[T any](v T) *T { return &v }

type contactFixture struct {
	name, email, phone, company, status, source string
}

var contactFixtures = []contactFixture{
	{"Ahmed Khan", "ahmed@realty.com", "+92-300-1234567", "Khan Realty", "qualified", "referral"},
	{"Sara Malik", "sara@homes.pk", "+92-321-9876543", "Malik Homes", "new", "website"},
	{"John Smith", "john@example.com", "+1-555-0101", "Smith Corp", "won", "cold_call"},
	{"Emily Chen", "emily@invest.co", "+1-555-0202", "Chen Investments", "negotiation", "referral"},
	{"Omar Farooq", "omar@build.pk", "+92-333-4445556", "Farooq Builders", "contacted", "website"},
	{"Lisa Park", "lisa@homes.com", "+1-555-0303", "Park Living", "lost", "social_media"},
	{"David Brown", "david@prop.co", "+1-555-0404", "Brown Properties", "new", "referral"},
	{"Fatima Zahra", "fatima@estate.pk", "+92-345-6667778", "Zahra Estate", "qualified", "website"},
}

func contactRows(owner uuid.UUID) []map[string]any {
	rows := make([]map[string]any, len(contactFixtures))
	for i, c := range contactFixtures {
		rows[i] = map[string]any{
			"id":        fixtureID(owner, "contact", i),
			"full_name": c.name,
			"email":     c.email,
			"phone":     c.phone,
			"company":   c.company,
			"status":    c.status,
			"source":    c.source,
		}
	}
	return rows
}

// contactRef points at a seeded contact by fixture index; -1 leaves the
// link empty.
func contactRef(owner uuid.UUID, n int) *uuid.UUID {
	if n < 0 {
		return nil
	}
	return ptr(fixtureID(owner, "contact", n))
}

type propertyFixture struct {
	title, address, kind, status string
	price                        float64
	bedrooms                     *int
	bathrooms                    int
	area                         float64
	contact                      int
}

var propertyFixtures = []propertyFixture{
	{"Luxury Villa DHA Phase 6", "Street 12, DHA Phase 6, Lahore", "residential", "available", 45000000, ptr(5), 4, 4500, 0},
	{"Commercial Plaza Gulberg", "Main Boulevard, Gulberg III, Lahore", "commercial", "under_contract", 120000000, nil, 4, 12000, 1},
	{"3-Bed Apartment Bahria Town", "Sector C, Bahria Town, Lahore", "residential", "available", 15000000, ptr(3), 2, 1800, 3},
	{"Rental Flat Johar Town", "Block G1, Johar Town, Lahore", "rental", "rented", 75000, ptr(2), 1, 1100, 4},
	{"Farmhouse Bedian Road", "Bedian Road, Lahore", "residential", "available", 85000000, ptr(7), 6, 10000, -1},
	{"Shop DHA Phase 5", "Commercial Area, DHA Phase 5", "commercial", "sold", 25000000, nil, 1, 800, 2},
}

func propertyRows(owner uuid.UUID) []map[string]any {
	rows := make([]map[string]any, len(propertyFixtures))
	for i, p := range propertyFixtures {
		rows[i] = map[string]any{
			"id":            fixtureID(owner, "property", i),
			"title":         p.title,
			"address":       p.address,
			"property_type": p.kind,
			"status":        p.status,
			"price":         p.price,
			"bedrooms":      p.bedrooms,
			"bathrooms":     p.bathrooms,
			"area_sqft":     p.area,
			"contact_id":    contactRef(owner, p.contact),
		}
	}
	return rows
}

type taskFixture struct {
	title, description string
	due                time.Duration
	priority, status   string
	contact            int
}

var taskFixtures = []taskFixture{
	{"Follow up with Ahmed Khan", "Discuss DHA villa pricing", day, "high", "pending", 0},
	{"Schedule site visit - Bahria Town", "Emily wants to see the apartment", 2 * day, "medium", "in_progress", 3},
	{"Prepare rental agreement", "Johar Town flat lease docs", 3 * day, "low", "pending", -1},
	{"Call David Brown", "New lead - interested in residential", -day, "high", "pending", 6},
	{"Update property photos", "Get new photos for DHA listings", 5 * day, "medium", "pending", -1},
	{"Close Gulberg Plaza deal", "Final negotiation with Sara", day, "high", "in_progress", 1},
}

// taskRows schedules due dates relative to now, so one task is always
// overdue right after seeding.
func taskRows(owner uuid.UUID, now time.Time) []map[string]any {
	rows := make([]map[string]any, len(taskFixtures))
	for i, t := range taskFixtures {
		rows[i] = map[string]any{
			"id":          fixtureID(owner, "task", i),
			"title":       t.title,
			"description": t.description,
			"due_date":    now.Add(t.due),
			"priority":    t.priority,
			"status":      t.status,
			"contact_id":  contactRef(owner, t.contact),
		}
	}
	return rows
}

type activityFixture struct {
	action, entity string
	metadata       map[string]any
}

var activityFixtures = []activityFixture{
	{"created", "contact", map[string]any{"name": "Ahmed Khan"}},
	{"updated", "property", map[string]any{"title": "Luxury Villa DHA Phase 6"}},
	{"created", "task", map[string]any{"title": "Follow up with Ahmed Khan"}},
	{"status_changed", "contact", map[string]any{"name": "John Smith", "from": "negotiation", "to": "won"}},
	{"created", "property", map[string]any{"title": "Farmhouse Bedian Road"}},
}

func activityRows(owner uuid.UUID) []map[string]any {
	rows := make([]map[string]any, len(activityFixtures))
	for i, a := range activityFixtures {
		rows[i] = map[string]any{
			"id":          fixtureID(owner, "activity", i),
			"action":      a.action,
			"entity_type": a.entity,
			"metadata":    a.metadata,
		}
	}
	return rows
}
