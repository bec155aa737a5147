package domain

// ServiceKind identifies a capability offered through the services manager.
type ServiceKind string

const (
	// ChatServiceKind is the identity-attributes capability (prefix and suffix per participant).
	ChatServiceKind       ServiceKind = "chat"
	PermissionServiceKind ServiceKind = "permission"
	EconomyServiceKind    ServiceKind = "economy"
)

// ServicePriority orders providers of the same kind. Higher wins.
type ServicePriority int

const (
	PriorityLowest ServicePriority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityHighest
)

var priorityNames = map[string]ServicePriority{
	"lowest":  PriorityLowest,
	"low":     PriorityLow,
	"normal":  PriorityNormal,
	"high":    PriorityHigh,
	"highest": PriorityHighest,
}

// ParsePriority maps a config name to a priority, defaulting to normal.
func ParsePriority(name string) ServicePriority {
	if p, ok := priorityNames[name]; ok {
		return p
	}
	return PriorityNormal
}
