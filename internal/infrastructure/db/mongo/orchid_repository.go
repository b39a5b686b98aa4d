package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

const orchidsCollection = "orchids"

// OrchidRepository implements ports.OrchidRepository on MongoDB. Comments
// are embedded documents mutated only through the aggregate's conditional
// push.
type OrchidRepository struct {
	col *mongo.Collection
}

func NewOrchidRepository(db *mongo.Database) *OrchidRepository {
	return &OrchidRepository{col: db.Collection(orchidsCollection)}
}

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Text      string             `bson:"text"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type orchidDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	IsNatural  bool               `bson:"is_natural"`
	Origin     string             `bson:"origin"`
	Slug       string             `bson:"slug"`
	CategoryID primitive.ObjectID `bson:"category_id"`
	Comments   []commentDoc       `bson:"comments"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d orchidDoc) toDomain() *domain.Orchid {
	comments := make([]domain.Comment, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, domain.Comment{
			ID:        c.ID.Hex(),
			Text:      c.Text,
			AuthorID:  c.AuthorID.Hex(),
			CreatedAt: c.CreatedAt,
		})
	}
	return &domain.Orchid{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Image:      d.Image,
		IsNatural:  d.IsNatural,
		Origin:     d.Origin,
		Slug:       d.Slug,
		CategoryID: d.CategoryID.Hex(),
		Comments:   comments,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *OrchidRepository) Create(ctx context.Context, orchid *domain.Orchid) (*domain.Orchid, error) {
	categoryOID, err := primitive.ObjectIDFromHex(orchid.CategoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := orchidDoc{
		Name:       orchid.Name,
		Image:      orchid.Image,
		IsNatural:  orchid.IsNatural,
		Origin:     orchid.Origin,
		Slug:       orchid.Slug,
		CategoryID: categoryOID,
		Comments:   []commentDoc{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrOrchidExists
		}
		return nil, fmt.Errorf("insert orchid: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OrchidRepository) FindByID(ctx context.Context, id string) (*domain.Orchid, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrchidNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *OrchidRepository) FindBySlug(ctx context.Context, slug string) (*domain.Orchid, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *OrchidRepository) findOne(ctx context.Context, filter bson.M) (*domain.Orchid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orchidDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrchidNotFound
		}
		return nil, fmt.Errorf("find orchid: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrchidRepository) FindAll(ctx context.Context) ([]*domain.Orchid, error) {
	return r.findMany(ctx, bson.M{})
}

// SearchBySlug is a literal substring match on the slug field.
func (r *OrchidRepository) SearchBySlug(ctx context.Context, fragment string) ([]*domain.Orchid, error) {
	return r.findMany(ctx, bson.M{"slug": bson.M{"$regex": primitive.Regex{Pattern: fragment}}})
}

func (r *OrchidRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Orchid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orchids: %w", err)
	}
	defer cur.Close(ctx)

	var orchids []*domain.Orchid
	for cur.Next(ctx) {
		var doc orchidDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode orchid: %w", err)
		}
		orchids = append(orchids, doc.toDomain())
	}
	return orchids, cur.Err()
}

// Update replaces the orchid's catalog fields. The embedded comment list is
// deliberately left untouched; it only changes through PushCommentIfFirst.
func (r *OrchidRepository) Update(ctx context.Context, orchid *domain.Orchid) (*domain.Orchid, error) {
	oid, err := primitive.ObjectIDFromHex(orchid.ID)
	if err != nil {
		return nil, domain.ErrOrchidNotFound
	}
	categoryOID, err := primitive.ObjectIDFromHex(orchid.CategoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        orchid.Name,
		"image":       orchid.Image,
		"is_natural":  orchid.IsNatural,
		"origin":      orchid.Origin,
		"slug":        orchid.Slug,
		"category_id": categoryOID,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orchidDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrchidNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrOrchidExists
		}
		return nil, fmt.Errorf("update orchid: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrchidRepository) Delete(ctx context.Context, id string) (*domain.Orchid, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrchidNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orchidDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrchidNotFound
		}
		return nil, fmt.Errorf("delete orchid: %w", err)
	}
	return doc.toDomain(), nil
}

// PushCommentIfFirst appends the comment in one conditional update: the
// filter matches only when no embedded comment carries the same author, so
// concurrent first comments from one author cannot both land. It fills in
// the comment's generated id on success.
func (r *OrchidRepository) PushCommentIfFirst(ctx context.Context, orchidID string, comment *domain.Comment) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(orchidID)
	if err != nil {
		return false, domain.ErrOrchidNotFound
	}
	authorOID, err := primitive.ObjectIDFromHex(comment.AuthorID)
	if err != nil {
		return false, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := commentDoc{
		ID:        primitive.NewObjectID(),
		Text:      comment.Text,
		AuthorID:  authorOID,
		CreatedAt: comment.CreatedAt,
	}

	filter := bson.M{
		"_id":                oid,
		"comments.author_id": bson.M{"$ne": authorOID},
	}
	update := bson.M{"$push": bson.M{"comments": doc}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("push comment: %w", err)
	}
	if res.ModifiedCount == 0 {
		return false, nil
	}

	comment.ID = doc.ID.Hex()
	return true, nil
}

// EnsureIndexes creates the unique orchid name index and the slug lookup
// index.
func (r *OrchidRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
