package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

const productCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

type productDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	BatchCode     string             `bson:"batch_code"`
	Description   string             `bson:"description"`
	ChemCode      string             `bson:"chem_code"`
	ExpDate       time.Time          `bson:"exp_date"`
	ElabDate      time.Time          `bson:"elab_date"`
	Cost          int                `bson:"cost"`
	Stock         int                `bson:"stock"`
	CriticalStock int                `bson:"critical_stock"`
	Supplier      string             `bson:"supplier"`
	CategoryID    string             `bson:"category_id"`
	Image         string             `bson:"image"`
	Active        bool               `bson:"active"`
	Featured      bool               `bson:"featured"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func toProductDoc(p *domain.Product) (productDoc, error) {
	doc := productDoc{
		Name:          p.Name,
		BatchCode:     p.BatchCode,
		Description:   p.Description,
		ChemCode:      p.ChemCode,
		ExpDate:       p.ExpDate,
		ElabDate:      p.ElabDate,
		Cost:          p.Cost,
		Stock:         p.Stock,
		CriticalStock: p.CriticalStock,
		Supplier:      p.Supplier,
		CategoryID:    p.CategoryID,
		Image:         p.Image,
		Active:        p.Active,
		Featured:      p.Featured,
		CreatedAt:     p.CreatedAt,
	}
	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return productDoc{}, domain.ErrProductNotFound
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		BatchCode:     d.BatchCode,
		Description:   d.Description,
		ChemCode:      d.ChemCode,
		ExpDate:       d.ExpDate,
		ElabDate:      d.ElabDate,
		Cost:          d.Cost,
		Stock:         d.Stock,
		CriticalStock: d.CriticalStock,
		Supplier:      d.Supplier,
		CategoryID:    d.CategoryID,
		Image:         d.Image,
		Active:        d.Active,
		Featured:      d.Featured,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toProductDoc(product)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toProductDoc(product)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	return n > 0, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindFeatured(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"featured": true})
}

func (r *ProductRepository) SearchByName(ctx context.Context, fragment string) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"name": nameRegex(fragment)})
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"category_id": categoryID})
}

func (r *ProductRepository) FindStockBelow(ctx context.Context, threshold int) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"stock": bson.M{"$lt": threshold}})
}

func (r *ProductRepository) FindByActive(ctx context.Context, active bool) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"active": active})
}

func (r *ProductRepository) SearchByNameAndCategory(ctx context.Context, fragment, categoryID string) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"name": nameRegex(fragment), "category_id": categoryID})
}

func (r *ProductRepository) SearchByNameAndActive(ctx context.Context, fragment string, active bool) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"name": nameRegex(fragment), "active": active})
}

func nameRegex(fragment string) bson.M {
	return bson.M{"$regex": primitive.Regex{Pattern: regexEscape(fragment), Options: "i"}}
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	var products []*domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// EnsureIndexes creates the lookup indexes used by the catalog queries.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
