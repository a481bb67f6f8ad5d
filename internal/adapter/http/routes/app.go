package routes

import (
	"context"
	"guytogo/internal/adapter/http/handlers"
	"guytogo/internal/adapter/persistence/memory"
	"guytogo/internal/adapter/persistence/repository"
	"guytogo/internal/infrastructure/ai"
	"guytogo/internal/infrastructure/config"
	"guytogo/internal/infrastructure/database"
	"guytogo/internal/infrastructure/notification"
	"guytogo/internal/infrastructure/payments"
	"guytogo/internal/infrastructure/security"
	"guytogo/internal/infrastructure/sequence"
	"guytogo/internal/usecase"
	"guytogo/internal/usecase/interfaces"
	"log"
	"time"
)

// app holds the wired use cases and handlers behind the router.
type app struct {
	cfg      *config.Config
	tokens   *security.TokenManager
	notifier *notification.AsyncNotifier

	identityUseCase usecase.IIdentityUseCase

	identityHandler       *handlers.IdentityHandler
	productHandler        *handlers.ProductHandler
	paymentRequestHandler *handlers.PaymentRequestHandler
	decisionHandler       *handlers.DecisionHandler
	lessonPlanHandler     *handlers.LessonPlanHandler
}

func newApp(ctx context.Context, cfg *config.Config, m interfaces.IWorkflowMetrics) (*app, error) {
	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := security.NewTokenManager(cfg.JWTSecret, cfg.JWTTokenTTL)
	if err != nil {
		return nil, err
	}
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	notifier := notification.NewAsyncNotifier(
		notification.NewEmailNotifier(notification.LogOutbox{}, cfg.PublicBaseURL),
		m,
		cfg.NotifierTimeout,
	)

	identityUseCase := usecase.NewIdentityUseCase(repos.Identities(), repos.PaymentRequests(), hasher, tokens, notifier, m, cfg.AdminEmail)
	productUseCase := usecase.NewProductUseCase(repos.Products(), repos.Identities(), notifier, m)
	paymentRequestUseCase := usecase.NewPaymentRequestUseCase(repos.PaymentRequests(), repos.Identities(), repos.Products(), buildGateway(cfg), m, cfg.SubscriptionPrice)
	entitlementUseCase := usecase.NewEntitlementUseCase(repos.PaymentRequests(), repos.Identities(), buildSequencer(cfg), notifier, m)
	lessonPlanUseCase := usecase.NewLessonPlanUseCase(repos.LessonPlans(), repos.Identities(), buildGenerator(cfg), m)

	if _, err := identityUseCase.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.Printf("[app][wiring] ensure admin failed email=%s err=%v", cfg.AdminEmail, err)
		return nil, err
	}
	if cfg.SeedCatalog {
		n, err := productUseCase.SeedIfEmpty(ctx)
		if err != nil {
			log.Printf("[app][wiring] catalog seed failed err=%v", err)
			return nil, err
		}
		log.Printf("[app][wiring] catalog seeded count=%d", n)
	}

	return &app{
		cfg:                   cfg,
		tokens:                tokens,
		notifier:              notifier,
		identityUseCase:       identityUseCase,
		identityHandler:       handlers.NewIdentityHandler(identityUseCase),
		productHandler:        handlers.NewProductHandler(productUseCase),
		paymentRequestHandler: handlers.NewPaymentRequestHandler(paymentRequestUseCase),
		decisionHandler:       handlers.NewDecisionHandler(entitlementUseCase),
		lessonPlanHandler:     handlers.NewLessonPlanHandler(lessonPlanUseCase),
	}, nil
}

// close drains pending notifications.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.notifier.Wait(ctx); err != nil {
		log.Printf("[app][shutdown] notifications still pending err=%v", err)
	}
}

func buildRepositories(ctx context.Context, cfg *config.Config) (interfaces.IRepositoryManager, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Printf("[app][wiring] storage driver=memory")
		return memory.NewStore(), nil
	}

	ddb := database.ConnectDynamoDB()
	if cfg.CreateDynamoDBTables {
		if err := database.EnsureTables(ctx, ddb, database.StorefrontTables()); err != nil {
			return nil, err
		}
	}
	log.Printf("[app][wiring] storage driver=dynamodb")
	return repository.NewDynamoRepositoryManager(ddb), nil
}

func buildSequencer(cfg *config.Config) interfaces.IDecisionSequencer {
	if cfg.RedisURL == "" {
		return sequence.NewMemorySequencer()
	}
	s, err := sequence.NewRedisSequencerFromURL(cfg.RedisURL, cfg.DecisionSeqKey)
	if err != nil {
		log.Printf("[app][wiring] redis sequencer unavailable, using in-process counter err=%v", err)
		return sequence.NewMemorySequencer()
	}
	return s
}

func buildGateway(cfg *config.Config) interfaces.IPaymentGateway {
	g, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return g
}

func buildGenerator(cfg *config.Config) interfaces.ILessonPlanGenerator {
	g, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("[app][wiring] lesson planner disabled err=%v", err)
		return nil
	}
	return g
}
