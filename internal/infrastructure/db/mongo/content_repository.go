package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// ContentRepository implements ports.Repository[T] over one collection.
// Documents use string ids holding an ObjectID hex.
type ContentRepository[T any] struct {
	coll *mongo.Collection
	id   func(*T) *string
}

func newContentRepository[T any](db *mongo.Database, name string, id func(*T) *string) *ContentRepository[T] {
	return &ContentRepository[T]{coll: db.Collection(name), id: id}
}

func NewBlogRepository(db *mongo.Database) ports.BlogRepository {
	return newContentRepository(db, blogsCollection, func(b *domain.Blog) *string { return &b.ID })
}

func NewProductRepository(db *mongo.Database) ports.ProductRepository {
	return newContentRepository(db, productsCollection, func(p *domain.Product) *string { return &p.ID })
}

func NewCertificateRepository(db *mongo.Database) ports.CertificateRepository {
	return newContentRepository(db, certificatesCollection, func(c *domain.Certificate) *string { return &c.ID })
}

func NewGalleryRepository(db *mongo.Database) ports.GalleryRepository {
	return newContentRepository(db, galleryCollection, func(g *domain.GalleryItem) *string { return &g.ID })
}

func NewInquiryRepository(db *mongo.Database) ports.InquiryRepository {
	return newContentRepository(db, inquiriesCollection, func(i *domain.Inquiry) *string { return &i.ID })
}

func NewTestimonialRepository(db *mongo.Database) ports.TestimonialRepository {
	return newContentRepository(db, testimonialsCollection, func(t *domain.Testimonial) *string { return &t.ID })
}

func (r *ContentRepository[T]) List(ctx context.Context, q ports.ListQuery) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	for k, v := range q.Match {
		filter[k] = v
	}
	opts := options.Find()
	if q.NewestFirst {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return out, nil
}

func (r *ContentRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ContentRepository[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

// Insert assigns a fresh id when doc has none.
func (r *ContentRepository[T]) Insert(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if id := r.id(doc); *id == "" {
		*id = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *ContentRepository[T]) Replace(ctx context.Context, id string, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	*r.id(doc) = id
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("replace %s: %w", r.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContentRepository[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PageRepository adds slug lookup.
type PageRepository struct {
	*ContentRepository[domain.Page]
}

func NewPageRepository(db *mongo.Database) *PageRepository {
	return &PageRepository{newContentRepository(db, pagesCollection, func(p *domain.Page) *string { return &p.ID })}
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// settingsID is the fixed id of the singleton settings document.
const settingsID = "site"

type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Settings
	if err := r.coll.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &s, nil
}

// Save upserts the singleton.
func (r *SettingsRepository) Save(ctx context.Context, s *domain.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s.ID = settingsID
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsID}, s, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
