package repository

import (
	"context"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	Description  string `dynamodbav:"description"`
	Price        int64  `dynamodbav:"price"`
	Category     string `dynamodbav:"category"`
	ImageURL     string `dynamodbav:"image_url"`
	FileURL      string `dynamodbav:"file_url"`
	ResourceType string `dynamodbav:"resource_type"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ProductDynamoRepository persists the catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	items, err := scanAll[productItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductItem(it))
	}
	return out, nil
}

// Delete reports whether a product was removed.
func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Category:     p.Category,
		ImageURL:     p.ImageURL,
		FileURL:      p.FileURL,
		ResourceType: string(p.ResourceType),
		CreatedAt:    formatTime(p.CreatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:           it.ID,
		Title:        it.Title,
		Description:  it.Description,
		Price:        it.Price,
		Category:     it.Category,
		ImageURL:     it.ImageURL,
		FileURL:      it.FileURL,
		ResourceType: entities.ResourceType(it.ResourceType),
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
