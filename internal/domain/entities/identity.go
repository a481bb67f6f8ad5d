package entities

import (
	"strings"
	"time"
)

// Role is the account role of an Identity.
type Role string

const (
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// SubscriptionStatus is shared by identities (subscription access) and payment
// requests (ledger status).
//
// Domain notes:
//   - ACTIVE is the terminal approved state for SUBSCRIPTION requests.
//   - APPROVED is the terminal approved state for ORDER requests.
//   - REJECTED is the terminal declined state for both kinds.
type SubscriptionStatus string

const (
	SubscriptionStatusNone     SubscriptionStatus = "NONE"
	SubscriptionStatusPending  SubscriptionStatus = "PENDING"
	SubscriptionStatusActive   SubscriptionStatus = "ACTIVE"
	SubscriptionStatusRejected SubscriptionStatus = "REJECTED"
	SubscriptionStatusApproved SubscriptionStatus = "APPROVED"
)

// IsTerminal reports whether no further ledger transition is defined from s.
func (s SubscriptionStatus) IsTerminal() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusApproved, SubscriptionStatusRejected:
		return true
	}
	return false
}

// IsApproval reports whether s is one of the two approved terminal states.
func (s SubscriptionStatus) IsApproval() bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusApproved
}

// Identity is a user account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email_key-index): email_key (lowercased email)
//
// PurchasedProductIDs behaves as a set: it only grows through approved ORDER
// requests. SubscriptionSeq is the decision sequence of the last subscription
// grant and orders concurrent grants.
type Identity struct {
	ID                  string             `json:"id"`
	Email               string             `json:"email"`
	Name                string             `json:"name"`
	Role                Role               `json:"role"`
	SubscriptionStatus  SubscriptionStatus `json:"subscription_status"`
	PurchasedProductIDs []string           `json:"purchased_product_ids"`
	AvatarURL           string             `json:"avatar_url,omitempty"`
	JoinedAt            *time.Time         `json:"joined_at,omitempty"`
	PasswordHash        string             `json:"-"`
	SubscriptionSeq     int64              `json:"-"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// EmailKey normalizes an email address for case-insensitive lookups.
func EmailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasPremiumAccess reports whether the identity may use subscription features.
func (i Identity) HasPremiumAccess() bool {
	return i.Role == RoleAdmin || i.SubscriptionStatus == SubscriptionStatusActive
}

// UnionProductIDs returns the set union of current and added, keeping the
// order of first appearance.
func UnionProductIDs(current, added []string) []string {
	seen := make(map[string]struct{}, len(current)+len(added))
	out := make([]string, 0, len(current)+len(added))
	for _, list := range [][]string{current, added} {
		for _, id := range list {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
