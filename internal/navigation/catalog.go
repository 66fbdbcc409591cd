// Package navigation holds the static destination catalog, the role to
// destination registry and the guard that enforces it.
package navigation

import "strings"

// DestinationID identifies a routable page.
type DestinationID string

const (
	Dashboard   DestinationID = "dashboard"
	Leads       DestinationID = "leads"
	Properties  DestinationID = "properties"
	Tasks       DestinationID = "tasks"
	Analytics   DestinationID = "analytics"
	Contracts   DestinationID = "contracts"
	BuyRequests DestinationID = "buyRequests"
	Invoices    DestinationID = "invoices"
	Shipments   DestinationID = "shipments"
	Referrals   DestinationID = "referrals"
	Settings    DestinationID = "settings"
)

// Icon names the glyph rendered next to a destination.
type Icon string

const (
	IconLayoutDashboard Icon = "LayoutDashboard"
	IconUsers           Icon = "Users"
	IconHome            Icon = "Home"
	IconCheckSquare     Icon = "CheckSquare"
	IconBarChart        Icon = "BarChart3"
	IconFileText        Icon = "FileText"
	IconShoppingBag     Icon = "ShoppingBag"
	IconTruck           Icon = "Truck"
	IconLink            Icon = "Link2"
	IconSettings        Icon = "Settings"
)

// AuthPath is the only page reachable without a session.
const AuthPath = "/auth"

// Destination is a page a role may be allowed to reach.
type Destination struct {
	ID    DestinationID
	Title string
	Path  string
	Icon  Icon
}

// catalog is ordered by declaration; lookups go through byID and Lookup.
var catalog = []Destination{
	{ID: Dashboard, Title: "Dashboard", Path: "/dashboard", Icon: IconLayoutDashboard},
	{ID: Leads, Title: "Leads & Contacts", Path: "/leads", Icon: IconUsers},
	{ID: Properties, Title: "Properties", Path: "/properties", Icon: IconHome},
	{ID: Tasks, Title: "Tasks", Path: "/tasks", Icon: IconCheckSquare},
	{ID: Analytics, Title: "Analytics", Path: "/analytics", Icon: IconBarChart},
	{ID: Contracts, Title: "Contracts", Path: "/contracts", Icon: IconFileText},
	{ID: BuyRequests, Title: "Buy Requests", Path: "/buy-requests", Icon: IconShoppingBag},
	{ID: Invoices, Title: "Invoices", Path: "/invoices", Icon: IconFileText},
	{ID: Shipments, Title: "Shipments", Path: "/shipments", Icon: IconTruck},
	{ID: Referrals, Title: "Referrals", Path: "/referrals", Icon: IconLink},
	{ID: Settings, Title: "Settings", Path: "/settings", Icon: IconSettings},
}

var byID = func() map[DestinationID]Destination {
	m := make(map[DestinationID]Destination, len(catalog))
	for _, d := range catalog {
		m[d.ID] = d
	}
	return m
}()

// Catalog returns every destination in catalog order.
func Catalog() []Destination {
	out := make([]Destination, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the destination with the given id.
func Get(id DestinationID) (Destination, bool) {
	d, ok := byID[id]
	return d, ok
}

// Lookup maps a request path to its destination. A path matches a
// destination when it equals the destination path or is nested under it,
// so "/leads/9f1c..." resolves to Leads.
func Lookup(path string) (Destination, bool) {
	path = normalizePath(path)
	for _, d := range catalog {
		if path == d.Path || strings.HasPrefix(path, d.Path+"/") {
			return d, true
		}
	}
	return Destination{}, false
}

// IsAuthPath reports whether path is the auth page or nested under it.
func IsAuthPath(path string) bool {
	path = normalizePath(path)
	return path == AuthPath || strings.HasPrefix(path, AuthPath+"/")
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
