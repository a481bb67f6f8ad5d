package repository

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultIdentitiesTableName = "identities"
	identitiesEmailKeyIndex    = "email_key-index"
	emailClaimPrefix           = "email#"
)

// emailClaimItem reserves an email key for one identity. Claims live in the
// identities table under id "email#<key>" and carry no email_key, so they stay
// out of the GSI.
type emailClaimItem struct {
	ID      string `dynamodbav:"id"`
	OwnerID string `dynamodbav:"owner_id"`
}

type identityItem struct {
	ID                  string   `dynamodbav:"id"`
	Email               string   `dynamodbav:"email"`
	EmailKey            string   `dynamodbav:"email_key"`
	Name                string   `dynamodbav:"name"`
	Role                string   `dynamodbav:"role"`
	SubscriptionStatus  string   `dynamodbav:"subscription_status"`
	SubscriptionSeq     int64    `dynamodbav:"subscription_seq"`
	PurchasedProductIDs []string `dynamodbav:"purchased_product_ids,stringset,omitempty"`
	AvatarURL           string   `dynamodbav:"avatar_url,omitempty"`
	JoinedAt            string   `dynamodbav:"joined_at,omitempty"`
	PasswordHash        string   `dynamodbav:"password_hash,omitempty"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
}

// IdentityDynamoRepository persists Identity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email_key-index (PK: email_key)
//
// purchased_product_ids is a string set so grants can use ADD (atomic union).
// subscription_seq orders concurrent subscription grants.
// Email uniqueness is held by claim items written in the same transaction as
// the identity.

type IdentityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIdentityRepository = (*IdentityDynamoRepository)(nil)

func NewIdentityDynamoRepository(ddb *dynamodb.Client) *IdentityDynamoRepository {
	return &IdentityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("IDENTITIES_TABLE", defaultIdentitiesTableName),
	}
}

func (r *IdentityDynamoRepository) Create(ctx context.Context, i entities.Identity) (entities.Identity, error) {
	av, err := attributevalue.MarshalMap(toIdentityItem(i))
	if err != nil {
		return entities.Identity{}, err
	}
	claim, err := r.claimEmail(i.Email, i.ID)
	if err != nil {
		return entities.Identity{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: claim},
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
		},
	})
	if err != nil {
		return entities.Identity{}, emailClaimError(err)
	}
	return i, nil
}

func (r *IdentityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Identity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Identity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Identity{}, nil
	}

	var it identityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Identity{}, err
	}
	return fromIdentityItem(it), nil
}

func (r *IdentityDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Identity, error) {
	items, err := queryIndex[identityItem](ctx, r.ddb, r.tableName, identitiesEmailKeyIndex, "email_key", entities.EmailKey(email))
	if err != nil {
		return entities.Identity{}, err
	}
	if len(items) == 0 {
		return entities.Identity{}, nil
	}
	if len(items) > 1 {
		log.Printf("[identity][repository] duplicate email_key count=%d", len(items))
	}
	return fromIdentityItem(items[0]), nil
}

// Upsert writes the profile fields of i, creating the record when missing.
// Entitlements are never taken away: owned product ids are merged into the
// stored set and the subscription fields are only written when absent.
// A new or changed email is claimed, and the previous claim released, in the
// same transaction as the update.
func (r *IdentityDynamoRepository) Upsert(ctx context.Context, i entities.Identity) (entities.Identity, error) {
	cur, err := r.GetByID(ctx, i.ID)
	if err != nil {
		return entities.Identity{}, err
	}
	expr, names, vals := upsertExpression(toIdentityItem(i))

	if cur.ID != "" && entities.EmailKey(cur.Email) == entities.EmailKey(i.Email) {
		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(r.tableName),
			Key:                       idKey(i.ID),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: vals,
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			return entities.Identity{}, err
		}
		return identityFromAttributes(out.Attributes)
	}

	claim, err := r.claimEmail(i.Email, i.ID)
	if err != nil {
		return entities.Identity{}, err
	}
	items := []types.TransactWriteItem{
		{Put: claim},
		{Update: &types.Update{
			TableName:                 aws.String(r.tableName),
			Key:                       idKey(i.ID),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: vals,
		}},
	}
	if cur.ID != "" {
		items = append(items, types.TransactWriteItem{Delete: r.releaseEmail(cur.Email, i.ID)})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.Identity{}, emailClaimError(err)
	}
	return r.GetByID(ctx, i.ID)
}

func upsertExpression(it identityItem) (string, map[string]string, map[string]types.AttributeValue) {
	expr := "SET #email = :email, #email_key = :email_key, #name = :name, #role = :role, " +
		"#avatar_url = :avatar_url, #password_hash = :password_hash, #updated_at = :updated_at, " +
		"#created_at = if_not_exists(#created_at, :created_at), " +
		"#joined_at = if_not_exists(#joined_at, :joined_at), " +
		"#subscription_status = if_not_exists(#subscription_status, :subscription_status), " +
		"#subscription_seq = if_not_exists(#subscription_seq, :subscription_seq)"
	names := map[string]string{
		"#email":               "email",
		"#email_key":           "email_key",
		"#name":                "name",
		"#role":                "role",
		"#avatar_url":          "avatar_url",
		"#password_hash":       "password_hash",
		"#updated_at":          "updated_at",
		"#created_at":          "created_at",
		"#joined_at":           "joined_at",
		"#subscription_status": "subscription_status",
		"#subscription_seq":    "subscription_seq",
	}
	vals := map[string]types.AttributeValue{
		":email":               &types.AttributeValueMemberS{Value: it.Email},
		":email_key":           &types.AttributeValueMemberS{Value: it.EmailKey},
		":name":                &types.AttributeValueMemberS{Value: it.Name},
		":role":                &types.AttributeValueMemberS{Value: it.Role},
		":avatar_url":          &types.AttributeValueMemberS{Value: it.AvatarURL},
		":password_hash":       &types.AttributeValueMemberS{Value: it.PasswordHash},
		":updated_at":          &types.AttributeValueMemberS{Value: it.UpdatedAt},
		":created_at":          &types.AttributeValueMemberS{Value: it.CreatedAt},
		":joined_at":           &types.AttributeValueMemberS{Value: it.JoinedAt},
		":subscription_status": &types.AttributeValueMemberS{Value: it.SubscriptionStatus},
		":subscription_seq":    &types.AttributeValueMemberN{Value: strconv.FormatInt(it.SubscriptionSeq, 10)},
	}
	if len(it.PurchasedProductIDs) > 0 {
		expr += " ADD #pids :pids"
		names["#pids"] = "purchased_product_ids"
		vals[":pids"] = &types.AttributeValueMemberSS{Value: it.PurchasedProductIDs}
	}
	return expr, names, vals
}

func emailClaimID(email string) string {
	return emailClaimPrefix + entities.EmailKey(email)
}

// claimEmail succeeds when the email is free or already held by ownerID.
func (r *IdentityDynamoRepository) claimEmail(email, ownerID string) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(emailClaimItem{ID: emailClaimID(email), OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	}, nil
}

func (r *IdentityDynamoRepository) releaseEmail(email, ownerID string) *types.Delete {
	return &types.Delete{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(emailClaimID(email)),
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	}
}

// emailClaimError maps a failed claim (always the first transaction item) to
// ErrDuplicateEmail.
func emailClaimError(err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) && len(tce.CancellationReasons) > 0 &&
		aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed" {
		return interfaces.ErrDuplicateEmail
	}
	return err
}

func (r *IdentityDynamoRepository) List(ctx context.Context) ([]entities.Identity, error) {
	items, err := scanAll[identityItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Identity, 0, len(items))
	for _, it := range items {
		if strings.HasPrefix(it.ID, emailClaimPrefix) {
			continue
		}
		out = append(out, fromIdentityItem(it))
	}
	return out, nil
}

// GrantSubscription sets the subscription status when seq is newer than the
// stored decision sequence. A stale grant leaves the record untouched and
// returns it as stored.
func (r *IdentityDynamoRepository) GrantSubscription(ctx context.Context, id string, status entities.SubscriptionStatus, seq int64) (entities.Identity, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#seq) OR #seq < :seq)"),
		UpdateExpression:    aws.String("SET #status = :status, #seq = :seq, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#seq":        "subscription_seq",
			"#status":     "subscription_status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seq":        &types.AttributeValueMemberN{Value: strconv.FormatInt(seq, 10)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Identity{}, nil
			}
			log.Printf("[identity][repository] stale subscription grant ignored user_id=%s seq=%d", id, seq)
			return identityFromAttributes(cfe.Item)
		}
		return entities.Identity{}, err
	}
	return identityFromAttributes(out.Attributes)
}

// GrantProducts adds productIDs to the owned set with a single ADD.
func (r *IdentityDynamoRepository) GrantProducts(ctx context.Context, id string, productIDs []string) (entities.Identity, error) {
	ids := entities.UnionProductIDs(nil, productIDs)
	if len(ids) == 0 {
		return r.GetByID(ctx, id)
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #pids :pids SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#pids":       "purchased_product_ids",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pids":       &types.AttributeValueMemberSS{Value: ids},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Identity{}, nil
		}
		return entities.Identity{}, err
	}
	return identityFromAttributes(out.Attributes)
}

func identityFromAttributes(av map[string]types.AttributeValue) (entities.Identity, error) {
	if len(av) == 0 {
		return entities.Identity{}, nil
	}
	var it identityItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Identity{}, err
	}
	return fromIdentityItem(it), nil
}

func toIdentityItem(i entities.Identity) identityItem {
	it := identityItem{
		ID:                  i.ID,
		Email:               i.Email,
		EmailKey:            entities.EmailKey(i.Email),
		Name:                i.Name,
		Role:                string(i.Role),
		SubscriptionStatus:  string(i.SubscriptionStatus),
		SubscriptionSeq:     i.SubscriptionSeq,
		PurchasedProductIDs: entities.UnionProductIDs(nil, i.PurchasedProductIDs),
		AvatarURL:           i.AvatarURL,
		PasswordHash:        i.PasswordHash,
		CreatedAt:           formatTime(i.CreatedAt),
		UpdatedAt:           formatTime(i.UpdatedAt),
	}
	if it.SubscriptionStatus == "" {
		it.SubscriptionStatus = string(entities.SubscriptionStatusNone)
	}
	// An empty set marshals to NULL, and ADD cannot extend a NULL attribute.
	if len(it.PurchasedProductIDs) == 0 {
		it.PurchasedProductIDs = nil
	}
	if i.JoinedAt != nil {
		it.JoinedAt = formatTime(*i.JoinedAt)
	}
	return it
}

func fromIdentityItem(it identityItem) entities.Identity {
	i := entities.Identity{
		ID:                  it.ID,
		Email:               it.Email,
		Name:                it.Name,
		Role:                entities.Role(it.Role),
		SubscriptionStatus:  entities.SubscriptionStatus(it.SubscriptionStatus),
		SubscriptionSeq:     it.SubscriptionSeq,
		PurchasedProductIDs: it.PurchasedProductIDs,
		AvatarURL:           it.AvatarURL,
		PasswordHash:        it.PasswordHash,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if i.PurchasedProductIDs == nil {
		i.PurchasedProductIDs = []string{}
	}
	if i.SubscriptionStatus == "" {
		i.SubscriptionStatus = entities.SubscriptionStatusNone
	}
	if it.JoinedAt != "" {
		joined := parseTime(it.JoinedAt)
		i.JoinedAt = &joined
	}
	return i
}
