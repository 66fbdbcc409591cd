package navigation

import "github.com/heartmarshall/realty-crm/internal/domain"

// FallbackRole is used for sessions whose role is absent, unrecognized or
// could not be resolved.
const FallbackRole = domain.RoleClient

// roleNav maps each role to its ordered destinations. Dashboard is always
// first; it is the redirect target for unauthorized navigation.
var roleNav = map[domain.Role][]DestinationID{
	domain.RoleAdmin:      {Dashboard, Leads, Properties, Tasks, Analytics, Contracts, Invoices, Settings},
	domain.RoleBroker:     {Dashboard, Properties, Leads, Contracts, Tasks, Analytics},
	domain.RoleClient:     {Dashboard, Properties, BuyRequests, Invoices, Tasks},
	domain.RoleSalesAgent: {Dashboard, Leads, Properties, Tasks, Analytics},
	domain.RoleSupplier:   {Dashboard, Properties, Invoices, Shipments},
	domain.RoleAffiliate:  {Dashboard, Referrals, Analytics},
	domain.RoleAgent:      {Dashboard, Leads, Properties, Tasks, Analytics},
	domain.RoleUser:       {Dashboard, Properties, Tasks},
}

// EffectiveRole returns the role whose mapping applies to r.
func EffectiveRole(r domain.Role) domain.Role {
	if _, ok := roleNav[r]; ok {
		return r
	}
	return FallbackRole
}

// Resolve returns the ordered destinations visible to role. Absent and
// unrecognized roles get the FallbackRole mapping. The returned slice is a
// fresh copy.
func Resolve(role domain.Role) []Destination {
	ids := roleNav[EffectiveRole(role)]
	out := make([]Destination, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

// Home returns the first destination of role's mapping.
func Home(role domain.Role) Destination {
	return byID[roleNav[EffectiveRole(role)][0]]
}

// IsAuthorized reports whether path belongs to a destination in
// Resolve(role). Paths outside the catalog are never authorized.
func IsAuthorized(role domain.Role, path string) bool {
	d, ok := Lookup(path)
	if !ok {
		return false
	}
	return allows(EffectiveRole(role), d.ID)
}

func allows(role domain.Role, id DestinationID) bool {
	for _, candidate := range roleNav[role] {
		if candidate == id {
			return true
		}
	}
	return false
}
