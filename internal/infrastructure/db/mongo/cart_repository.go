package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

const cartCollection = "cart_items"

type CartItemRepository struct {
	coll *mongo.Collection
}

func NewCartItemRepository(db *mongo.Database) *CartItemRepository {
	return &CartItemRepository{coll: db.Collection(cartCollection)}
}

type cartItemDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AccountID string             `bson:"account_id"`
	ProductID string             `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
}

func (d cartItemDoc) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:        d.ID.Hex(),
		AccountID: d.AccountID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
	}
}

func (r *CartItemRepository) Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := cartItemDoc{AccountID: item.AccountID, ProductID: item.ProductID, Quantity: item.Quantity}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CartItemRepository) Update(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}
	doc := cartItemDoc{ID: oid, AccountID: item.AccountID, ProductID: item.ProductID, Quantity: item.Quantity}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCartItemNotFound
	}
	return doc.toDomain(), nil
}

func (r *CartItemRepository) FindByID(ctx context.Context, id string) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}
	var doc cartItemDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CartItemRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("count cart items: %w", err)
	}
	return n > 0, nil
}

func (r *CartItemRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCartItemNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartItemRepository) List(ctx context.Context) ([]*domain.CartItem, error) {
	return r.find(ctx, bson.M{})
}

func (r *CartItemRepository) FindByAccount(ctx context.Context, accountID string) ([]*domain.CartItem, error) {
	return r.find(ctx, bson.M{"account_id": accountID})
}

func (r *CartItemRepository) find(ctx context.Context, filter bson.M) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.CartItem
	for cur.Next(ctx) {
		var doc cartItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}
	return items, nil
}
