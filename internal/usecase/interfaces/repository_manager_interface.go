package interfaces

// IRepositoryManager hands out the repositories of one storage driver.

type IRepositoryManager interface {
	Identities() IIdentityRepository
	Products() IProductRepository
	PaymentRequests() IPaymentRequestRepository
	LessonPlans() ILessonPlanRepository
}
