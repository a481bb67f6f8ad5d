package usecase

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

const (
	defaultProductImageURL = "https://picsum.photos/400/300"
	defaultProductFileURL  = "#"
)

// ProductInput is the administrator payload for a new catalog entry.
type ProductInput struct {
	Title        string
	Description  string
	Price        int64
	Category     string
	ImageURL     string
	FileURL      string
	ResourceType entities.ResourceType
}

// IProductUseCase manages the catalog and the per-user digital library.

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Library(ctx context.Context, userID string) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo       interfaces.IProductRepository
	identities interfaces.IIdentityRepository
	notifier   interfaces.INotifier
	metrics    interfaces.IWorkflowMetrics
	now        func() time.Time
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(
	repo interfaces.IProductRepository,
	identities interfaces.IIdentityRepository,
	notifier interfaces.INotifier,
	metrics interfaces.IWorkflowMetrics,
) *ProductUseCase {
	return &ProductUseCase{
		repo:       repo,
		identities: identities,
		notifier:   notifier,
		metrics:    metricsOrNoop(metrics),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	p, err := u.buildProduct(in)
	if err != nil {
		return entities.Product{}, err
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[catalog][usecase] create failed title=%q err=%v", p.Title, err)
		return entities.Product{}, err
	}
	log.Printf("[catalog][usecase] product created product_id=%s price=%d", created.ID, created.Price)

	u.alert(ctx, created)
	return created, nil
}

func (u *ProductUseCase) buildProduct(in ProductInput) (entities.Product, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.Price < 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	rt := in.ResourceType
	if rt == "" {
		rt = entities.ResourceTypePDF
	}
	if !rt.Valid() {
		return entities.Product{}, ErrInvalidProduct
	}
	image := strings.TrimSpace(in.ImageURL)
	if image == "" {
		image = defaultProductImageURL
	}
	file := strings.TrimSpace(in.FileURL)
	if file == "" {
		file = defaultProductFileURL
	}
	return entities.Product{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		Category:     strings.TrimSpace(in.Category),
		ImageURL:     image,
		FileURL:      file,
		ResourceType: rt,
		CreatedAt:    u.now(),
	}, nil
}

// alert tells every non-admin user about a new product. Failures are logged only.
func (u *ProductUseCase) alert(ctx context.Context, p entities.Product) {
	if u.notifier == nil || u.identities == nil {
		return
	}
	all, err := u.identities.List(ctx)
	if err != nil {
		log.Printf("[catalog][notify] failed listing recipients product_id=%s err=%v", p.ID, err)
		u.metrics.NotificationFailed("product_alert")
		return
	}
	recipients := make([]entities.Identity, 0, len(all))
	for _, i := range all {
		if i.Role != entities.RoleAdmin {
			recipients = append(recipients, i)
		}
	}
	if len(recipients) == 0 {
		return
	}
	if err := u.notifier.NotifyProductAlert(context.WithoutCancel(ctx), p, recipients); err != nil {
		log.Printf("[catalog][notify] product alert failed product_id=%s err=%v", p.ID, err)
		u.metrics.NotificationFailed("product_alert")
	}
}

// Delete removes a product from the catalog. Users who bought it keep the id.
func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[catalog][usecase] delete failed product_id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	log.Printf("[catalog][usecase] product deleted product_id=%s", id)
	return nil
}

// List returns the catalog, newest first.
func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Library joins the user's owned product ids with the current catalog.
// Products removed from the catalog are skipped; ownership is unaffected.
func (u *ProductUseCase) Library(ctx context.Context, userID string) ([]entities.Product, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidIdentityID
	}
	identity, err := u.identities.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if identity.ID == "" {
		return nil, ErrIdentityNotFound
	}

	out := make([]entities.Product, 0, len(identity.PurchasedProductIDs))
	for _, id := range identity.PurchasedProductIDs {
		p, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			log.Printf("[catalog][usecase] owned product missing from catalog user_id=%s product_id=%s", userID, id)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// SeedIfEmpty stores the starter catalog when no product exists yet.
func (u *ProductUseCase) SeedIfEmpty(ctx context.Context) (int, error) {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	base := u.now()
	seeded := 0
	for i, p := range StarterCatalog() {
		// keep the starter order when listing newest first
		p.CreatedAt = base.Add(-time.Duration(i) * time.Second)
		if _, err := u.repo.Create(ctx, p); err != nil {
			return seeded, err
		}
		seeded++
	}
	log.Printf("[catalog][seed] starter catalog stored count=%d", seeded)
	return seeded, nil
}

// StarterCatalog is the initial set of resources offered by the store.
func StarterCatalog() []entities.Product {
	return []entities.Product{
		{
			ID:           "1",
			Title:        "Grade 6 National Assessment Prep Kit",
			Description:  "Comprehensive guide covering Mathematics, English, Science, and Social Studies for NGSA preparation.",
			Price:        5000,
			Category:     "Exam Prep",
			ImageURL:     "https://picsum.photos/400/300?random=1",
			FileURL:      defaultProductFileURL,
			ResourceType: entities.ResourceTypePDF,
		},
		{
			ID:           "2",
			Title:        "Renewed Literacy Curriculum Guide (Grade 1-2)",
			Description:  "Official style guide and lesson structures for early childhood literacy.",
			Price:        2500,
			Category:     "Curriculum Guides",
			ImageURL:     "https://picsum.photos/400/300?random=2",
			FileURL:      defaultProductFileURL,
			ResourceType: entities.ResourceTypePDF,
		},
		{
			ID:           "3",
			Title:        "Interactive Science Worksheets - Grade 4",
			Description:  "Printable worksheets focusing on local flora and fauna of Guyana.",
			Price:        1500,
			Category:     "Worksheets",
			ImageURL:     "https://picsum.photos/400/300?random=3",
			FileURL:      defaultProductFileURL,
			ResourceType: entities.ResourceTypePDF,
		},
		{
			ID:           "4",
			Title:        "CSEC Social Studies Pocket Guide",
			Description:  "Quick revision notes for Caribbean secondary education students.",
			Price:        3000,
			Category:     "Secondary",
			ImageURL:     "https://picsum.photos/400/300?random=4",
			FileURL:      defaultProductFileURL,
			ResourceType: entities.ResourceTypePDF,
		},
	}
}
