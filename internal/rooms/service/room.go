package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	roomserrors "flexspace/internal/rooms/errors"
	"flexspace/internal/rooms/repository"
	"flexspace/internal/rooms/validator"
	"flexspace/pkg/config"
	apperrors "flexspace/pkg/errors"
	"flexspace/pkg/locale"
	"flexspace/pkg/model"
	"flexspace/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

type RoomService interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Room, int64, error)
	Update(ctx context.Context, id string, updates *model.RoomUpdate) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, minCapacity int, amenities []string, limit int, offset int64) ([]*model.Room, int64, error)
}

type roomService struct {
	repo      repository.RoomRepository
	validator *validator.RoomValidator
	cfg       *config.Config
}

func NewRoomService(
	repo repository.RoomRepository,
	validator *validator.RoomValidator,
	cfg *config.Config,
) RoomService {
	return &roomService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *roomService) Create(ctx context.Context, room *model.Room) error {
	s.sanitize(room)
	s.applyDefaults(room)

	if err := s.validate(room); err != nil {
		return err
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		existing, err := s.repo.FindByName(sessCtx, room.Name)
		if err != nil && !errors.Is(err, roomserrors.ErrNotFound) {
			return apperrors.Internal("Failed to check for duplicate room name", err)
		}
		if existing != nil {
			return apperrors.Conflict(fmt.Sprintf(
				"A room named %q already exists (id: %s)", existing.Name, existing.ID,
			))
		}

		if err := s.repo.Create(sessCtx, room); err != nil {
			if errors.Is(err, roomserrors.ErrDuplicateName) {
				return apperrors.Conflict(fmt.Sprintf("A room named %q already exists", room.Name))
			}
			return apperrors.Internal("Failed to create room", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create room", "name", room.Name, "error", err)
		return err
	}

	if country := locale.InferCountryFromPhone(room.ContactPhone); country != nil {
		s.cfg.Log.Debug("Room contact region detected", "room_id", room.ID, "country", country.Code)
	}

	s.cfg.Log.Info("Room created successfully",
		"id", room.ID,
		"name", room.Name,
		"floor", room.Floor,
		"capacity", room.Capacity,
	)
	return nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		if errors.Is(err, roomserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid room ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}

	return room, nil
}

func (s *roomService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Room, int64, error) {
	var count int64
	var rooms []*model.Room
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count rooms", "error", errCount)
			errCount = apperrors.Internal("Failed to count rooms", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		rooms, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list rooms", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve rooms", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return rooms, count, nil
}

func (s *roomService) Update(ctx context.Context, id string, updates *model.RoomUpdate) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Room update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeRoomUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return err
	}

	nameChanged := updates.Name != "" && merged.Name != existing.Name

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if nameChanged {
			other, err := s.repo.FindByName(sessCtx, merged.Name)
			if err != nil && !errors.Is(err, roomserrors.ErrNotFound) {
				return apperrors.Internal("Failed to check for duplicate room name", err)
			}
			if other != nil && other.ID != id {
				return apperrors.Conflict(fmt.Sprintf(
					"A room named %q already exists (id: %s)", other.Name, other.ID,
				))
			}
		}

		if _, err := s.repo.Update(sessCtx, id, merged); err != nil {
			if errors.Is(err, roomserrors.ErrDuplicateName) {
				return apperrors.Conflict(fmt.Sprintf("A room named %q already exists", merged.Name))
			}
			return apperrors.Internal("Failed to update room", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update room", "id", id, "error", err)
		return err
	}

	s.cfg.Log.Info("Room updated successfully", "id", id)
	return nil
}

func (s *roomService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Room ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Room", id)
		}
		if errors.Is(err, roomserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid room ID format")
		}
		return apperrors.Internal("Failed to delete room", err)
	}

	s.cfg.Log.Info("Room deleted successfully", "id", id)
	return nil
}

func (s *roomService) Search(ctx context.Context, minCapacity int, amenities []string, limit int, offset int64) ([]*model.Room, int64, error) {
	if minCapacity < 0 {
		return nil, 0, apperrors.InvalidInput("min_capacity cannot be negative")
	}
	amenities = sanitizer.NormalizeAmenities(amenities)

	var count int64
	var rooms []*model.Room
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountSearch(ctx, minCapacity, amenities)
		if err != nil {
			s.cfg.Log.Error("Failed to count rooms by search", "error", err)
			errCount = apperrors.Internal("Failed to count rooms", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		rooms, err = s.repo.Search(ctx, minCapacity, amenities, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to search rooms", "min_capacity", minCapacity, "error", err)
			errFind = apperrors.Internal("Failed to search rooms", err)
		}
	}()

	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return rooms, count, nil
}

// --- Helpers ---

func (s *roomService) sanitize(room *model.Room) {
	room.Name = sanitizer.NormalizeName(room.Name)
	room.Amenities = sanitizer.NormalizeAmenities(room.Amenities)
	room.ContactPhone = sanitizer.NormalizePhone(room.ContactPhone)
}

// applyDefaults activates new rooms. Deactivation is an explicit admin
// action, never a side effect of creation.
func (s *roomService) applyDefaults(room *model.Room) {
	if room.ID == "" {
		room.Active = true
	}
}

func (s *roomService) mergeRoomUpdates(existing *model.Room, updates *model.RoomUpdate) *model.Room {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Floor != nil {
		merged.Floor = *updates.Floor
	}
	if updates.Capacity != nil {
		merged.Capacity = *updates.Capacity
	}
	if updates.Amenities != nil {
		merged.Amenities = *updates.Amenities
	}
	if updates.MorningPriceCents != nil {
		merged.MorningPriceCents = *updates.MorningPriceCents
	}
	if updates.AfternoonPriceCents != nil {
		merged.AfternoonPriceCents = *updates.AfternoonPriceCents
	}
	if updates.NightPriceCents != nil {
		merged.NightPriceCents = *updates.NightPriceCents
	}
	if updates.ContactPhone != "" {
		merged.ContactPhone = updates.ContactPhone
	}
	if updates.Active != nil {
		merged.Active = *updates.Active
	}

	return &merged
}

func (s *roomService) validate(room *model.Room) error {
	if err := s.validator.Validate(room); err != nil {
		s.cfg.Log.Warn("Room validation failed", "error", err)
		return apperrors.Validation("Room validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}
