package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// Users and Quotes are the stores the handlers go through. ConnectMongoDB
// wires the Mongo-backed implementations; tests swap in stubs.
var Users UserStore
var Quotes QuoteStore

// extractDBName parses the database name from the URI, defaulting to "quizz-api"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "quizz-api"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "quizz-api"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	Users = &mongoUserStore{collection: MongoDatabase.Collection("users")}
	Quotes = &mongoQuoteStore{collection: MongoDatabase.Collection("quotes")}
	return nil
}
