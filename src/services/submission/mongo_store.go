package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/review"
)

// MongoStore keeps submissions in the "submissions" collection with the
// activity log embedded.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Insert(ctx context.Context, sub *models.FormSubmission) error {
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	res, err := s.coll.InsertOne(ctx, sub)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id primitive.ObjectID) (*models.FormSubmission, error) {
	var sub models.FormSubmission
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *MongoStore) ListByForm(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) ([]models.FormSubmission, int64, error) {
	filter := bson.M{"formId": formID}
	if params.Status != "" {
		filter["status"] = params.Status
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortDir := -1
	if params.Order == "asc" {
		sortDir = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: sortDir}, {Key: "_id", Value: sortDir}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	subs := []models.FormSubmission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (s *MongoStore) UpdateResponses(ctx context.Context, id primitive.ObjectID, responses map[string]interface{}, score *models.Score, version, revision int64) error {
	set := bson.M{
		"responses": responses,
		"updatedAt": time.Now().UTC(),
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"revision": 1},
	}
	if score != nil {
		set["score"] = score
	} else {
		update["$unset"] = bson.M{"score": ""}
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id, "version": version, "revision": revision}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return s.missOrConflict(ctx, id, version, revision)
	}
	return nil
}

// SaveTransition is a compare-and-set on version and revision: the update only
// matches the document the reviewer read, so two concurrent reviews cannot both
// land and a review cannot stamp a score computed from older responses.
func (s *MongoStore) SaveTransition(ctx context.Context, next *models.FormSubmission, entry models.ReviewActivity, expectedVersion int64) error {
	set := bson.M{
		"status":    next.Status,
		"version":   next.Version,
		"updatedAt": next.UpdatedAt,
	}
	unset := bson.M{}
	if next.ApprovalType != nil {
		set["approvalType"] = *next.ApprovalType
	} else {
		unset["approvalType"] = ""
	}
	if next.Score != nil {
		set["score.reviewedBy"] = next.Score.ReviewedBy
		set["score.reviewedAt"] = next.Score.ReviewedAt
		set["score.reviewComments"] = next.Score.ReviewComments
	}

	update := bson.M{
		"$set":  set,
		"$push": bson.M{"activityLog": entry},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	filter := bson.M{"_id": next.ID, "version": expectedVersion, "revision": next.Revision}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return s.missOrConflict(ctx, next.ID, expectedVersion, next.Revision)
	}
	return nil
}

func (s *MongoStore) missOrConflict(ctx context.Context, id primitive.ObjectID, version, revision int64) error {
	var current struct {
		Version  int64 `bson:"version"`
		Revision int64 `bson:"revision"`
	}
	opts := options.FindOne().SetProjection(bson.M{"version": 1, "revision": 1})
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&current); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSubmissionNotFound
		}
		return err
	}
	return fmt.Errorf("%w: expected version %d revision %d, current version %d revision %d",
		review.ErrConcurrencyConflict, version, revision, current.Version, current.Revision)
}
