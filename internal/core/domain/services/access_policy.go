package services

// Role classifies an identity against the two static allow-lists.
type Role int

const (
	// RoleNone marks an identity on neither allow-list. Such identities
	// receive a fixed denial and reach no other code path.
	RoleNone Role = iota

	// RoleAdministrator marks an identity with full rights:
	// create, list, view, delete, export.
	RoleAdministrator

	// RoleOperator marks a workshop identity with read and
	// status-cycle rights only.
	RoleOperator
)

// String returns the short name of the role, used in logs.
func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "administrator"
	case RoleOperator:
		return "operator"
	default:
		return "none"
	}
}

// AccessPolicy is a domain service that resolves command access from the two
// static identity allow-lists. Membership is fixed at construction: the
// lists come from configuration and there is no add/remove interface.
//
// An identity present on both lists resolves as an administrator.
//
// Example usage:
//
//	policy := services.NewAccessPolicy([]int64{380617987}, []int64{222222222})
//	if !policy.IsAdministrator(userID) {
//	    // refuse the intake flow
//	}
type AccessPolicy struct {
	admins    map[int64]struct{}
	operators map[int64]struct{}
}

// NewAccessPolicy creates an AccessPolicy from explicit allow-lists.
// Nil or empty lists are valid and simply admit nobody to that role.
func NewAccessPolicy(adminIDs, operatorIDs []int64) *AccessPolicy {
	policy := &AccessPolicy{
		admins:    make(map[int64]struct{}, len(adminIDs)),
		operators: make(map[int64]struct{}, len(operatorIDs)),
	}
	for _, id := range adminIDs {
		policy.admins[id] = struct{}{}
	}
	for _, id := range operatorIDs {
		policy.operators[id] = struct{}{}
	}
	return policy
}

// IsAdministrator reports whether the identity is on the administrator allow-list.
func (p *AccessPolicy) IsAdministrator(id int64) bool {
	_, ok := p.admins[id]
	return ok
}

// IsOperator reports whether the identity is on the operator allow-list.
func (p *AccessPolicy) IsOperator(id int64) bool {
	_, ok := p.operators[id]
	return ok
}

// RoleOf resolves the identity's role, preferring administrator when the
// identity appears on both lists.
func (p *AccessPolicy) RoleOf(id int64) Role {
	if p.IsAdministrator(id) {
		return RoleAdministrator
	}
	if p.IsOperator(id) {
		return RoleOperator
	}
	return RoleNone
}
