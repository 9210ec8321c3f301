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

const blogCollection = "blog_posts"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogCollection)}
}

type blogPostDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Title   string             `bson:"title"`
	Body    string             `bson:"body"`
	Summary string             `bson:"summary"`
	Author  string             `bson:"author"`
	Image   string             `bson:"image"`
}

func (d blogPostDoc) toDomain() *domain.BlogPost {
	return &domain.BlogPost{
		ID:      d.ID.Hex(),
		Title:   d.Title,
		Body:    d.Body,
		Summary: d.Summary,
		Author:  d.Author,
		Image:   d.Image,
	}
}

func (r *BlogRepository) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := blogPostDoc{Title: post.Title, Body: post.Body, Summary: post.Summary, Author: post.Author, Image: post.Image}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog post: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BlogRepository) Update(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return nil, domain.ErrBlogPostNotFound
	}
	doc := blogPostDoc{ID: oid, Title: post.Title, Body: post.Body, Summary: post.Summary, Author: post.Author, Image: post.Image}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBlogPostNotFound
	}
	return doc.toDomain(), nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogPostNotFound
	}
	var doc blogPostDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BlogRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("count blog posts: %w", err)
	}
	return n > 0, nil
}

func (r *BlogRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlogPostNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogPostNotFound
	}
	return nil
}

func (r *BlogRepository) List(ctx context.Context) ([]*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find blog posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []*domain.BlogPost
	for cur.Next(ctx) {
		var doc blogPostDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode blog post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}
	return posts, nil
}
