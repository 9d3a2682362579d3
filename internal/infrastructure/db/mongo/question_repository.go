package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

const questionsCollection = "questions"

type QuestionRepository struct {
	coll *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{coll: db.Collection(questionsCollection)}
}

type questionDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Text       string             `bson:"text"`
	Category   string             `bson:"category"`
	Difficulty string             `bson:"difficulty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d questionDoc) toDomain() *domain.Question {
	return &domain.Question{
		ID:         d.ID.Hex(),
		Text:       d.Text,
		Category:   domain.QuestionCategory(d.Category),
		Difficulty: domain.QuestionDifficulty(d.Difficulty),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func filterToBson(f ports.QuestionFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = string(f.Category)
	}
	if f.Difficulty != "" {
		filter["difficulty"] = string(f.Difficulty)
	}
	return filter
}

func (r *QuestionRepository) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	doc := questionDoc{
		Text:       q.Text,
		Category:   string(q.Category),
		Difficulty: string(q.Difficulty),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}

	created := *q
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	var doc questionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *QuestionRepository) Find(ctx context.Context, filter ports.QuestionFilter) ([]domain.Question, error) {
	cur, err := r.coll.Find(ctx, filterToBson(filter))
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	return r.drain(ctx, cur)
}

// Search matches questions whose text contains the keyword, case-insensitive.
func (r *QuestionRepository) Search(ctx context.Context, keyword string) ([]domain.Question, error) {
	filter := bson.M{"text": bson.M{
		"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return r.drain(ctx, cur)
}

// FindRandom samples up to limit matching questions server-side with $sample.
// Selection is unordered; repeated calls may return different subsets.
func (r *QuestionRepository) FindRandom(ctx context.Context, filter ports.QuestionFilter, limit int) ([]domain.Question, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filterToBson(filter)}},
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: limit}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample questions: %w", err)
	}
	return r.drain(ctx, cur)
}

func (r *QuestionRepository) List(ctx context.Context, page, size int) ([]domain.Question, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}

	items, err := r.drain(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *QuestionRepository) Update(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(q.ID)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	update := bson.M{"$set": bson.M{
		"text":       q.Text,
		"category":   string(q.Category),
		"difficulty": string(q.Difficulty),
		"updated_at": q.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrQuestionNotFound
	}
	return q, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// EnsureIndexes creates the filter indexes used by category/difficulty lookups.
func (r *QuestionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "difficulty", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *QuestionRepository) drain(ctx context.Context, cur *mongo.Cursor) ([]domain.Question, error) {
	defer cur.Close(ctx)

	var questions []domain.Question
	for cur.Next(ctx) {
		var doc questionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode question: %w", err)
		}
		questions = append(questions, *doc.toDomain())
	}
	return questions, cur.Err()
}
