package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingserrors "flexspace/internal/bookings/errors"
	"flexspace/pkg/config"
	mongotx "flexspace/pkg/db/mongo"
	"flexspace/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RecurringCollectionName = "Recurring_bookings"
)

type mongoRecurringBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

type RecurringBookingRepository interface {
	Create(ctx context.Context, rb *model.RecurringBooking) error
	FindByID(ctx context.Context, id string) (*model.RecurringBooking, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.RecurringBooking, error)
	Update(ctx context.Context, id string, rb *model.RecurringBooking) (*mongo.UpdateResult, error)
	FindActiveByRoomCoveringDate(ctx context.Context, roomID string, date time.Time) ([]*model.RecurringBooking, error)
	FindByRoom(ctx context.Context, roomID string, limit int, offset int64) ([]*model.RecurringBooking, error)
	CountByRoom(ctx context.Context, roomID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoRecurringBookingRepository(cfg *config.Config) RecurringBookingRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoRecurringBookingRepository{
		cfg:        cfg,
		collection: db.Collection(RecurringCollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo.Client),
	}
}

func (r *mongoRecurringBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoRecurringBookingRepository) Create(ctx context.Context, rb *model.RecurringBooking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	rb.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, rb)
	if err != nil {
		return fmt.Errorf("failed to create recurring booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rb.ID = oid.Hex()
	}
	return nil
}

func (r *mongoRecurringBookingRepository) FindByID(ctx context.Context, id string) (*model.RecurringBooking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	var rb model.RecurringBooking
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&rb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring booking: %w", err)
	}

	return &rb, nil
}

func (r *mongoRecurringBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.RecurringBooking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var rbs []*model.RecurringBooking
	if err = cursor.All(ctx, &rbs); err != nil {
		return nil, fmt.Errorf("failed to decode recurring bookings: %w", err)
	}

	return rbs, nil
}

// Update only touches contact details and status. The date range,
// weekdays, pattern and persisted revenue figures are immutable once
// the booking is sold.
func (r *mongoRecurringBookingRepository) Update(ctx context.Context, id string, rb *model.RecurringBooking) (*mongo.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"customer_name":  rb.CustomerName,
			"customer_email": rb.CustomerEmail,
			"customer_phone": rb.CustomerPhone,
			"status":         rb.Status,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update recurring booking: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, bookingserrors.ErrNotFound
	}

	return result, nil
}

// FindActiveByRoomCoveringDate loads the non-cancelled recurring
// bookings of a room whose date range contains the given date. The
// weekday and slot checks happen in the availability package.
func (r *mongoRecurringBookingRepository) FindActiveByRoomCoveringDate(ctx context.Context, roomID string, date time.Time) ([]*model.RecurringBooking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"room_id":    roomID,
		"status":     bson.M{"$ne": model.Cancelled},
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring bookings for room and date: %w", err)
	}
	defer cursor.Close(ctx)

	var rbs []*model.RecurringBooking
	if err = cursor.All(ctx, &rbs); err != nil {
		return nil, fmt.Errorf("failed to decode recurring bookings: %w", err)
	}

	return rbs, nil
}

func (r *mongoRecurringBookingRepository) FindByRoom(ctx context.Context, roomID string, limit int, offset int64) ([]*model.RecurringBooking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "start_date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var rbs []*model.RecurringBooking
	if err = cursor.All(ctx, &rbs); err != nil {
		return nil, fmt.Errorf("failed to decode recurring bookings: %w", err)
	}

	return rbs, nil
}

func (r *mongoRecurringBookingRepository) CountByRoom(ctx context.Context, roomID string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return 0, fmt.Errorf("failed to count recurring bookings by room: %w", err)
	}
	return count, nil
}

func (r *mongoRecurringBookingRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count recurring bookings: %w", err)
	}

	return count, nil
}

func (r *mongoRecurringBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
