package usecase

import (
	"context"
	"errors"
	"fmt"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidIdentityID  = errors.New("invalid identity id")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrReservedEmail      = errors.New("email is reserved")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLength = 8

// SignUpInput is the self-service registration payload.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdate carries optional profile changes; empty fields are left as is.
type ProfileUpdate struct {
	Name        string
	Email       string
	NewPassword string
}

// AuthResult is returned by sign up and login.
type AuthResult struct {
	Identity entities.Identity
	Token    string
}

// Profile is the identity as seen by its owner. EffectiveSubscription reports
// PENDING while a subscription payment awaits a decision.
type Profile struct {
	Identity              entities.Identity
	EffectiveSubscription entities.SubscriptionStatus
}

// IIdentityUseCase exposes account operations.

type IIdentityUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	GetByID(ctx context.Context, id string) (entities.Identity, error)
	GetProfile(ctx context.Context, id string) (Profile, error)
	UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (entities.Identity, error)
	List(ctx context.Context) ([]entities.Identity, error)
}

type IdentityUseCase struct {
	repo       interfaces.IIdentityRepository
	requests   interfaces.IPaymentRequestRepository
	hasher     interfaces.IPasswordHasher
	tokens     interfaces.ITokenIssuer
	notifier   interfaces.INotifier
	metrics    interfaces.IWorkflowMetrics
	adminEmail string
	now        func() time.Time
}

var _ IIdentityUseCase = (*IdentityUseCase)(nil)

func NewIdentityUseCase(
	repo interfaces.IIdentityRepository,
	requests interfaces.IPaymentRequestRepository,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenIssuer,
	notifier interfaces.INotifier,
	metrics interfaces.IWorkflowMetrics,
	adminEmail string,
) *IdentityUseCase {
	return &IdentityUseCase{
		repo:       repo,
		requests:   requests,
		hasher:     hasher,
		tokens:     tokens,
		notifier:   notifier,
		metrics:    metricsOrNoop(metrics),
		adminEmail: entities.EmailKey(adminEmail),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *IdentityUseCase) SignUp(ctx context.Context, in SignUpInput) (AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return AuthResult{}, ErrInvalidName
	}
	if !validEmail(email) {
		return AuthResult{}, ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return AuthResult{}, ErrInvalidPassword
	}
	if u.adminEmail != "" && entities.EmailKey(email) == u.adminEmail {
		log.Printf("[identity][usecase] signup rejected for reserved email")
		return AuthResult{}, ErrReservedEmail
	}

	// Enforce: 1 identity per email.
	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return AuthResult{}, err
	} else if existing.ID != "" {
		return AuthResult{}, ErrEmailTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := u.now()
	identity := entities.Identity{
		ID:                  uuid.NewString(),
		Email:               email,
		Name:                name,
		Role:                entities.RoleTeacher,
		SubscriptionStatus:  entities.SubscriptionStatusNone,
		PurchasedProductIDs: []string{},
		JoinedAt:            &now,
		PasswordHash:        hash,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	created, err := u.repo.Create(ctx, identity)
	if err != nil {
		log.Printf("[identity][usecase] create failed err=%v", err)
		if errors.Is(err, interfaces.ErrDuplicateEmail) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, err
	}
	log.Printf("[identity][usecase] signup success user_id=%s", created.ID)

	if u.notifier != nil {
		if err := u.notifier.NotifyWelcome(context.WithoutCancel(ctx), created); err != nil {
			log.Printf("[identity][notify] welcome failed user_id=%s err=%v", created.ID, err)
			u.metrics.NotificationFailed("welcome")
		}
	}

	token, err := u.tokens.Issue(created)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{Identity: created, Token: token}, nil
}

func (u *IdentityUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	identity, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if identity.ID == "" || identity.PasswordHash == "" || !u.hasher.Compare(identity.PasswordHash, password) {
		log.Printf("[identity][usecase] login rejected")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(identity)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	log.Printf("[identity][usecase] login success user_id=%s role=%s", identity.ID, identity.Role)
	return AuthResult{Identity: identity, Token: token}, nil
}

func (u *IdentityUseCase) GetByID(ctx context.Context, id string) (entities.Identity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Identity{}, ErrInvalidIdentityID
	}
	identity, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Identity{}, err
	}
	if identity.ID == "" {
		return entities.Identity{}, ErrIdentityNotFound
	}
	return identity, nil
}

func (u *IdentityUseCase) GetProfile(ctx context.Context, id string) (Profile, error) {
	identity, err := u.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	effective := identity.SubscriptionStatus
	if effective != entities.SubscriptionStatusActive && u.requests != nil {
		mine, err := u.requests.ListByUserID(ctx, identity.ID)
		if err != nil {
			return Profile{}, err
		}
		for _, r := range mine {
			if r.Kind == entities.PaymentKindSubscription && r.Status == entities.SubscriptionStatusPending {
				effective = entities.SubscriptionStatusPending
				break
			}
		}
	}
	return Profile{Identity: identity, EffectiveSubscription: effective}, nil
}

// UpdateProfile edits name, email and password. Role, subscription and owned
// products are not editable here.
func (u *IdentityUseCase) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (entities.Identity, error) {
	identity, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Identity{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		identity.Name = name
	}
	if email := strings.TrimSpace(in.Email); email != "" && entities.EmailKey(email) != entities.EmailKey(identity.Email) {
		if !validEmail(email) {
			return entities.Identity{}, ErrInvalidEmail
		}
		if identity.Role != entities.RoleAdmin && u.adminEmail != "" && entities.EmailKey(email) == u.adminEmail {
			return entities.Identity{}, ErrReservedEmail
		}
		if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
			return entities.Identity{}, err
		} else if existing.ID != "" && existing.ID != identity.ID {
			return entities.Identity{}, ErrEmailTaken
		}
		identity.Email = email
	}
	if in.NewPassword != "" {
		if len(in.NewPassword) < minPasswordLength {
			return entities.Identity{}, ErrInvalidPassword
		}
		hash, err := u.hasher.Hash(in.NewPassword)
		if err != nil {
			return entities.Identity{}, fmt.Errorf("hash password: %w", err)
		}
		identity.PasswordHash = hash
	}
	identity.UpdatedAt = u.now()

	updated, err := u.repo.Upsert(ctx, identity)
	if err != nil {
		log.Printf("[identity][usecase] profile update failed user_id=%s err=%v", identity.ID, err)
		if errors.Is(err, interfaces.ErrDuplicateEmail) {
			return entities.Identity{}, ErrEmailTaken
		}
		return entities.Identity{}, err
	}
	log.Printf("[identity][usecase] profile updated user_id=%s", updated.ID)
	return updated, nil
}

func (u *IdentityUseCase) List(ctx context.Context) ([]entities.Identity, error) {
	return u.repo.List(ctx)
}

// EnsureAdmin guarantees the reserved administrator account exists with role
// ADMIN. It runs once at process start; callers treat an error as fatal.
func (u *IdentityUseCase) EnsureAdmin(ctx context.Context, email, name, password string) (entities.Identity, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return entities.Identity{}, ErrInvalidEmail
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("lookup admin: %w", err)
	}
	now := u.now()

	if existing.ID != "" {
		if existing.Role == entities.RoleAdmin && existing.PasswordHash != "" {
			log.Printf("[identity][bootstrap] admin present user_id=%s", existing.ID)
			return existing, nil
		}
		existing.Role = entities.RoleAdmin
		if existing.PasswordHash == "" {
			if len(password) < minPasswordLength {
				return entities.Identity{}, ErrInvalidPassword
			}
			hash, err := u.hasher.Hash(password)
			if err != nil {
				return entities.Identity{}, fmt.Errorf("hash admin password: %w", err)
			}
			existing.PasswordHash = hash
		}
		existing.UpdatedAt = now
		repaired, err := u.repo.Upsert(ctx, existing)
		if err != nil {
			return entities.Identity{}, fmt.Errorf("repair admin: %w", err)
		}
		log.Printf("[identity][bootstrap] admin repaired user_id=%s", repaired.ID)
		return repaired, nil
	}

	if len(password) < minPasswordLength {
		return entities.Identity{}, ErrInvalidPassword
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("hash admin password: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}
	admin := entities.Identity{
		ID:                  uuid.NewString(),
		Email:               email,
		Name:                strings.TrimSpace(name),
		Role:                entities.RoleAdmin,
		SubscriptionStatus:  entities.SubscriptionStatusActive,
		PurchasedProductIDs: []string{},
		JoinedAt:            &now,
		PasswordHash:        hash,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	created, err := u.repo.Create(ctx, admin)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("create admin: %w", err)
	}
	log.Printf("[identity][bootstrap] admin created user_id=%s", created.ID)
	return created, nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
