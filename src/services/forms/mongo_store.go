package forms

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-FormReview/src/models"
)

// MongoStore keeps forms in the "forms" collection, fields embedded.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Create(ctx context.Context, form *models.Form) error {
	now := time.Now().UTC()
	form.ID = primitive.NewObjectID()
	form.CreatedAt = now
	form.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, form)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&form); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// UpdateFieldWeight sets the weight of one scoring-enabled field in place.
func (s *MongoStore) UpdateFieldWeight(ctx context.Context, id primitive.ObjectID, fieldID string, weight int) error {
	filter := bson.M{
		"_id": id,
		"fields": bson.M{"$elemMatch": bson.M{
			"id":              fieldID,
			"scoring.enabled": true,
		}},
	}
	update := bson.M{"$set": bson.M{
		"fields.$.scoring.weightMultiplier": weight,
		"updatedAt":                         time.Now().UTC(),
	}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		n, err := s.coll.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrFormNotFound
		}
		return ErrFieldNotFound
	}
	return nil
}
