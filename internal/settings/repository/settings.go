package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	settingserrors "flexspace/internal/settings/errors"
	"flexspace/pkg/config"
	mongotx "flexspace/pkg/db/mongo"
	"flexspace/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Settings"
)

type mongoSettingsRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

// SettingsRepository persists the single per-site configuration
// document. There is exactly one document per database; Upsert
// creates it on first write.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Upsert(ctx context.Context, settings *model.SiteSettings) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoSettingsRepository(cfg *config.Config) SettingsRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoSettingsRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo.Client),
	}
}

func (r *mongoSettingsRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
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

func (r *mongoSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var settings model.SiteSettings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, settingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	return &settings, nil
}

func (r *mongoSettingsRepository) Upsert(ctx context.Context, settings *model.SiteSettings) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	settings.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	update := bson.M{
		"$set": bson.M{
			"site_name":            settings.SiteName,
			"open_days":            settings.OpenDays,
			"morning_start":        settings.MorningStart,
			"morning_end":          settings.MorningEnd,
			"afternoon_start":      settings.AfternoonStart,
			"afternoon_end":        settings.AfternoonEnd,
			"night_start":          settings.NightStart,
			"night_end":            settings.NightEnd,
			"time_zone":            settings.TimeZone,
			"currency":             settings.Currency,
			"max_discount_percent": settings.MaxDiscountPercent,
			"updated_at":           settings.UpdatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert site settings: %w", err)
	}

	return nil
}

func (r *mongoSettingsRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
