package repository

import (
	"guytogo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoRepositoryManager groups the DynamoDB repositories behind one client.
type DynamoRepositoryManager struct {
	identities      *IdentityDynamoRepository
	products        *ProductDynamoRepository
	paymentRequests *PaymentRequestDynamoRepository
	lessonPlans     *LessonPlanDynamoRepository
}

var _ interfaces.IRepositoryManager = (*DynamoRepositoryManager)(nil)

func NewDynamoRepositoryManager(ddb *dynamodb.Client) *DynamoRepositoryManager {
	return &DynamoRepositoryManager{
		identities:      NewIdentityDynamoRepository(ddb),
		products:        NewProductDynamoRepository(ddb),
		paymentRequests: NewPaymentRequestDynamoRepository(ddb),
		lessonPlans:     NewLessonPlanDynamoRepository(ddb),
	}
}

func (m *DynamoRepositoryManager) Identities() interfaces.IIdentityRepository {
	return m.identities
}

func (m *DynamoRepositoryManager) Products() interfaces.IProductRepository {
	return m.products
}

func (m *DynamoRepositoryManager) PaymentRequests() interfaces.IPaymentRequestRepository {
	return m.paymentRequests
}

func (m *DynamoRepositoryManager) LessonPlans() interfaces.ILessonPlanRepository {
	return m.lessonPlans
}
