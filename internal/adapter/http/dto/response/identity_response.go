package response

import (
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase"
	"time"
)

type IdentityResponse struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Role                string     `json:"role"`
	SubscriptionStatus  string     `json:"subscription_status"`
	PurchasedProductIDs []string   `json:"purchased_product_ids"`
	AvatarURL           string     `json:"avatar_url,omitempty"`
	JoinedAt            *time.Time `json:"joined_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func FromIdentity(i entities.Identity) IdentityResponse {
	owned := i.PurchasedProductIDs
	if owned == nil {
		owned = []string{}
	}
	return IdentityResponse{
		ID:                  i.ID,
		Email:               i.Email,
		Name:                i.Name,
		Role:                string(i.Role),
		SubscriptionStatus:  string(i.SubscriptionStatus),
		PurchasedProductIDs: owned,
		AvatarURL:           i.AvatarURL,
		JoinedAt:            i.JoinedAt,
		CreatedAt:           i.CreatedAt,
	}
}

func FromIdentities(list []entities.Identity) []IdentityResponse {
	out := make([]IdentityResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromIdentity(i))
	}
	return out
}

// ProfileResponse adds the subscription status the owner should see, which
// is PENDING while a subscription payment is under review.
type ProfileResponse struct {
	IdentityResponse
	EffectiveSubscriptionStatus string `json:"effective_subscription_status"`
}

func FromProfile(p usecase.Profile) ProfileResponse {
	return ProfileResponse{
		IdentityResponse:            FromIdentity(p.Identity),
		EffectiveSubscriptionStatus: string(p.EffectiveSubscription),
	}
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  IdentityResponse `json:"user"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{Token: r.Token, User: FromIdentity(r.Identity)}
}
