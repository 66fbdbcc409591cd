package domain

// Role is the account role resolved for a session. The set is closed;
// values outside it are treated as absent by the navigation registry.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleBroker     Role = "broker"
	RoleClient     Role = "client"
	RoleSalesAgent Role = "sales_agent"
	RoleSupplier   Role = "supplier"
	RoleAffiliate  Role = "affiliate"
	RoleAgent      Role = "agent" // legacy
	RoleUser       Role = "user"  // legacy
)

// AllRoles lists every defined role in declaration order.
var AllRoles = []Role{
	RoleAdmin, RoleBroker, RoleClient, RoleSalesAgent,
	RoleSupplier, RoleAffiliate, RoleAgent, RoleUser,
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBroker, RoleClient, RoleSalesAgent,
		RoleSupplier, RoleAffiliate, RoleAgent, RoleUser:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Label returns the human-readable role name shown next to the sidebar.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleBroker:
		return "Broker"
	case RoleClient:
		return "Client"
	case RoleSalesAgent:
		return "Sales Agent"
	case RoleSupplier:
		return "Supplier"
	case RoleAffiliate:
		return "Affiliate"
	case RoleAgent:
		return "Agent"
	case RoleUser:
		return "User"
	}
	return ""
}

// ParseRole converts a stored or submitted value into a Role.
// The second return value is false for anything outside the closed set.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if !r.IsValid() {
		return "", false
	}
	return r, true
}

// ContactStatus tracks a lead through the sales pipeline.
type ContactStatus string

const (
	ContactStatusNew         ContactStatus = "new"
	ContactStatusContacted   ContactStatus = "contacted"
	ContactStatusQualified   ContactStatus = "qualified"
	ContactStatusNegotiation ContactStatus = "negotiation"
	ContactStatusWon         ContactStatus = "won"
	ContactStatusLost        ContactStatus = "lost"
)

var ContactStatuses = []ContactStatus{
	ContactStatusNew, ContactStatusContacted, ContactStatusQualified,
	ContactStatusNegotiation, ContactStatusWon, ContactStatusLost,
}

func (s ContactStatus) String() string { return string(s) }

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusQualified,
		ContactStatusNegotiation, ContactStatusWon, ContactStatusLost:
		return true
	}
	return false
}

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeRental      PropertyType = "rental"
)

var PropertyTypes = []PropertyType{
	PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeRental,
}

func (t PropertyType) String() string { return string(t) }

func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeRental:
		return true
	}
	return false
}

// PropertyStatus is the market state of a listing.
type PropertyStatus string

const (
	PropertyStatusAvailable     PropertyStatus = "available"
	PropertyStatusUnderContract PropertyStatus = "under_contract"
	PropertyStatusSold          PropertyStatus = "sold"
	PropertyStatusRented        PropertyStatus = "rented"
)

var PropertyStatuses = []PropertyStatus{
	PropertyStatusAvailable, PropertyStatusUnderContract,
	PropertyStatusSold, PropertyStatusRented,
}

func (s PropertyStatus) String() string { return string(s) }

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusUnderContract,
		PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}

// TaskPriority orders follow-up work.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

var TaskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusDone}

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// EntityKind names the record collections that write to the activity feed.
type EntityKind string

const (
	EntityKindContact  EntityKind = "contact"
	EntityKindProperty EntityKind = "property"
	EntityKindTask     EntityKind = "task"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindContact, EntityKindProperty, EntityKindTask:
		return true
	}
	return false
}

// ActivityAction is the verb recorded in the activity feed.
type ActivityAction string

const (
	ActivityCreated       ActivityAction = "created"
	ActivityUpdated       ActivityAction = "updated"
	ActivityDeleted       ActivityAction = "deleted"
	ActivityStatusChanged ActivityAction = "status_changed"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityCreated, ActivityUpdated, ActivityDeleted, ActivityStatusChanged:
		return true
	}
	return false
}
