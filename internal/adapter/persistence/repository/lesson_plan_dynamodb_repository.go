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

const (
	defaultLessonPlansTableName = "lesson_plans"
	lessonPlansUserIDIndex      = "user_id-index"
)

type lessonPlanItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Subject     string `dynamodbav:"subject"`
	Grade       string `dynamodbav:"grade"`
	Topic       string `dynamodbav:"topic"`
	Duration    string `dynamodbav:"duration"`
	Content     string `dynamodbav:"content"`
	GeneratedAt string `dynamodbav:"generated_at"`
}

// LessonPlanDynamoRepository persists generated lesson plans.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type LessonPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILessonPlanRepository = (*LessonPlanDynamoRepository)(nil)

func NewLessonPlanDynamoRepository(ddb *dynamodb.Client) *LessonPlanDynamoRepository {
	return &LessonPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LESSON_PLANS_TABLE", defaultLessonPlansTableName),
	}
}

func (r *LessonPlanDynamoRepository) Create(ctx context.Context, p entities.LessonPlan) (entities.LessonPlan, error) {
	av, err := attributevalue.MarshalMap(toLessonPlanItem(p))
	if err != nil {
		return entities.LessonPlan{}, err
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
		return entities.LessonPlan{}, err
	}
	return p, nil
}

func (r *LessonPlanDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.LessonPlan, error) {
	items, err := queryIndex[lessonPlanItem](ctx, r.ddb, r.tableName, lessonPlansUserIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LessonPlan, 0, len(items))
	for _, it := range items {
		out = append(out, fromLessonPlanItem(it))
	}
	return out, nil
}

func (r *LessonPlanDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toLessonPlanItem(p entities.LessonPlan) lessonPlanItem {
	return lessonPlanItem{
		ID:          p.ID,
		UserID:      p.UserID,
		Subject:     p.Subject,
		Grade:       p.Grade,
		Topic:       p.Topic,
		Duration:    p.Duration,
		Content:     p.Content,
		GeneratedAt: formatTime(p.GeneratedAt),
	}
}

func fromLessonPlanItem(it lessonPlanItem) entities.LessonPlan {
	return entities.LessonPlan{
		ID:          it.ID,
		UserID:      it.UserID,
		Subject:     it.Subject,
		Grade:       it.Grade,
		Topic:       it.Topic,
		Duration:    it.Duration,
		Content:     it.Content,
		GeneratedAt: parseTime(it.GeneratedAt),
	}
}
