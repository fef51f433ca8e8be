package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB only dials once
	connectErr error

	FormCollection       *mongo.Collection
	SubmissionCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and wires the collections used by the services.
func ConnectMongoDB(uri, dbName string) error {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if connectErr != nil {
			log.Println("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			log.Println("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(dbName)
		FormCollection = db.Collection("forms")
		SubmissionCollection = db.Collection("submissions")

		if connectErr = ensureIndexes(ctx); connectErr != nil {
			log.Println("❌ MongoDB index creation failed:", connectErr)
			return
		}
		log.Printf("✅ MongoDB connected successfully (db=%s)", dbName)
	})

	return connectErr
}

// ensureIndexes creates the indexes the submission queries rely on.
func ensureIndexes(ctx context.Context) error {
	_, err := SubmissionCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "formId", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Disconnect closes the MongoDB client.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
