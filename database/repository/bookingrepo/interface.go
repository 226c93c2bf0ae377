package bookingrepo

import (
	"context"
	"log"
	"time"

	"handyhub/database"
	"handyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository defines data access for the booking ledger.
type BookingRepository interface {
	// InsertOnce inserts the booking unless one already exists for its
	// session key, in which case the existing booking is returned. This
	// makes final submission idempotent on retry.
	InsertOnce(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, clientID, id string) (*models.Booking, error)
	ListByClient(ctx context.Context, clientID, status string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("handyhub")
	coll := db.Collection("bookings")

	// The unique session_key index makes insert-once a server-side
	// guarantee even across concurrent retries.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "session_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("failed to ensure bookings session_key index: %v", err)
	}

	return &mongoBookingRepo{coll: coll}
}
