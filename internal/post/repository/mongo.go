package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressmark/pressmark/internal/apperr"
	"github.com/pressmark/pressmark/internal/post"
	"github.com/pressmark/pressmark/pkg/logger"
)

// MongoRepo implements Repository on a MongoDB collection. Posts are keyed by
// ObjectID (_id) and carry a __v write-version counter bumped on every update.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// index backing the listing sort (createdAt desc, _id desc tie-break)
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}
	if _, err := col.Indexes().CreateOne(context.Background(), idxModel); err != nil {
		logger.Warnf("Failed to create listing index on %s: %v", col.Name(), err)
	}
	return &MongoRepo{col: col}
}

func listFilter(q post.ListQuery) bson.M {
	filter := bson.M{}
	if q.Filter != "" {
		filter["status"] = q.Filter
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{bson.M{"title": re}, bson.M{"status": re}}
	}
	return filter
}

func (m *MongoRepo) List(ctx context.Context, q post.ListQuery) ([]*post.Post, int64, error) {
	const op = "post.List"
	page := q.Page
	if page < 1 {
		page = 1
	}
	filter := listFilter(q)

	total, err := m.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Unavailable, op, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page-1) * post.PageSize).
		SetLimit(post.PageSize)
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Unavailable, op, err)
	}
	defer cur.Close(ctx)

	out := []*post.Post{}
	for cur.Next(ctx) {
		var p post.Post
		if err := cur.Decode(&p); err != nil {
			return nil, 0, apperr.Wrap(apperr.Unavailable, op, err)
		}
		out = append(out, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, apperr.Wrap(apperr.Unavailable, op, err)
	}
	return out, total, nil
}

func (m *MongoRepo) GetByID(ctx context.Context, id string) (*post.Post, error) {
	const op = "post.GetByID"
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Invalid(op, "id", "invalid post id")
	}
	var p post.Post
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.NotFound, op, "post not found")
		}
		return nil, apperr.Wrap(apperr.Unavailable, op, err)
	}
	return &p, nil
}

func (m *MongoRepo) Create(ctx context.Context, in post.Input) (*post.Post, error) {
	const op = "post.Create"
	now := time.Now().UTC()
	p := &post.Post{
		Title:          in.Title,
		Excerpt:        in.Excerpt,
		Content:        in.Content,
		FeaturedImage:  in.FeaturedImage,
		Category:       in.Category,
		Tags:           in.Tags,
		ReadTime:       in.ReadTime,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, op, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (m *MongoRepo) Update(ctx context.Context, id string, in post.Input) (*post.Post, error) {
	const op = "post.Update"
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Invalid(op, "id", "invalid post id")
	}
	set := bson.M{
		"title":          in.Title,
		"excerpt":        in.Excerpt,
		"content":        in.Content,
		"featuredImage":  in.FeaturedImage,
		"category":       in.Category,
		"tags":           in.Tags,
		"readTime":       in.ReadTime,
		"seoTitle":       in.SEOTitle,
		"seoDescription": in.SEODescription,
		"status":         in.Status,
		"updatedAt":      time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated post.Post
	err = m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid},
		bson.M{"$set": set, "$inc": bson.M{"__v": 1}}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.NotFound, op, "post not found")
		}
		return nil, apperr.Wrap(apperr.Unavailable, op, err)
	}
	return &updated, nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	const op = "post.Delete"
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Invalid(op, "id", "invalid post id")
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, op, err)
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, op, "post not found")
	}
	return nil
}
