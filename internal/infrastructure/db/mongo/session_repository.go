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

	"github.com/interviewsim/interview-api/internal/core/domain"
)

const sessionsCollection = "interview_sessions"

type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type sessionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username"`
	StartTime time.Time          `bson:"start_time"`
	EndTime   *time.Time         `bson:"end_time,omitempty"`
	Status    string             `bson:"status"`
}

func (d sessionDoc) toDomain() *domain.InterviewSession {
	return &domain.InterviewSession{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Username:  d.Username,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Status:    domain.SessionStatus(d.Status),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.InterviewSession) (*domain.InterviewSession, error) {
	doc := sessionDoc{
		UserID:    s.UserID,
		Username:  s.Username,
		StartTime: s.StartTime,
		Status:    string(s.Status),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// The partial unique index on (user_id, status=IN_PROGRESS) rejects a
		// second active session, including concurrent starts.
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrActiveSessionExists
		}
		return nil, fmt.Errorf("insert session: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.InterviewSession, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	var doc sessionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SessionRepository) FindByUserID(ctx context.Context, userID string) ([]domain.InterviewSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find user sessions: %w", err)
	}
	return r.drain(ctx, cur)
}

func (r *SessionRepository) List(ctx context.Context, page, size int) ([]domain.InterviewSession, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: -1}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}

	items, err := r.drain(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Finish atomically transitions an IN_PROGRESS session to a terminal status.
// The status filter makes concurrent end/cancel calls race-safe: only one
// update matches; the loser resolves to not-found vs not-in-progress below.
func (r *SessionRepository) Finish(ctx context.Context, id string, status domain.SessionStatus, endTime time.Time) (*domain.InterviewSession, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	filter := bson.M{"_id": oid, "status": string(domain.StatusInProgress)}
	update := bson.M{"$set": bson.M{"status": string(status), "end_time": endTime}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc sessionDoc
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if _, findErr := r.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrSessionNotInProgress
		}
		return nil, fmt.Errorf("finish session: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the partial unique index enforcing the
// single-active-session invariant plus the user lookup index.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_active_session").
				SetPartialFilterExpression(bson.D{
					{Key: "status", Value: string(domain.StatusInProgress)},
				}),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_time", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SessionRepository) drain(ctx context.Context, cur *mongo.Cursor) ([]domain.InterviewSession, error) {
	defer cur.Close(ctx)

	var sessions []domain.InterviewSession
	for cur.Next(ctx) {
		var doc sessionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, *doc.toDomain())
	}
	return sessions, cur.Err()
}
