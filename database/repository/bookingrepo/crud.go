package bookingrepo

import (
	"context"
	"errors"
	"time"

	"handyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the query.
var ErrNotFound = errors.New("booking not found")

// InsertOnce inserts a new ledger record keyed by the submission's session
// key. A retry with the same key returns the originally created booking.
func (r *mongoBookingRepo) InsertOnce(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	var existing models.Booking
	err := r.coll.FindOne(ctx, bson.M{"session_key": booking.SessionKey}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		// The unique session_key index means a concurrent retry may win the
		// insert; its booking is the one to return.
		if mongo.IsDuplicateKeyError(err) {
			if ferr := r.coll.FindOne(ctx, bson.M{"session_key": booking.SessionKey}).Decode(&existing); ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &booking, nil
}

// GetByID returns a booking by its ledger id, scoped to the owning client.
func (r *mongoBookingRepo) GetByID(ctx context.Context, clientID, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id, "client_id": clientID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ListByClient fetches a client's bookings, newest first, optionally
// filtered by status.
func (r *mongoBookingRepo) ListByClient(ctx context.Context, clientID, status string) ([]models.Booking, error) {
	filter := bson.M{"client_id": clientID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus sets a booking's ledger status.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
