package service

import (
	"context"
	"testing"
	"time"

	roomserrors "flexspace/internal/rooms/errors"
	"flexspace/internal/rooms/repository"
	"flexspace/internal/rooms/validator"
	"flexspace/pkg/config"
	mongotx "flexspace/pkg/db/mongo"
	apperrors "flexspace/pkg/errors"
	"flexspace/pkg/logger"
	"flexspace/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const testRoomID = "507f1f77bcf86cd799439011"

type mockRoomRepository struct {
	createFunc      func(ctx context.Context, room *model.Room) error
	findByIDFunc    func(ctx context.Context, id string) (*model.Room, error)
	findByNameFunc  func(ctx context.Context, name string) (*model.Room, error)
	findAllFunc     func(ctx context.Context, limit int, offset int64) ([]*model.Room, error)
	updateFunc      func(ctx context.Context, id string, room *model.Room) (*mongo.UpdateResult, error)
	deleteFunc      func(ctx context.Context, id string) error
	searchFunc      func(ctx context.Context, minCapacity int, amenities []string, limit int, offset int64) ([]*model.Room, error)
	countSearchFunc func(ctx context.Context, minCapacity int, amenities []string) (int64, error)
	countFunc       func(ctx context.Context) (int64, error)
}

func (m *mockRoomRepository) Create(ctx context.Context, room *model.Room) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, room)
	}
	room.ID = testRoomID
	return nil
}

func (m *mockRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.Room{ID: id, Name: "Tulip Room", Capacity: 8, MorningPriceCents: 10000, AfternoonPriceCents: 12000, NightPriceCents: 8000, Active: true}, nil
}

func (m *mockRoomRepository) FindByName(ctx context.Context, name string) (*model.Room, error) {
	if m.findByNameFunc != nil {
		return m.findByNameFunc(ctx, name)
	}
	return nil, roomserrors.ErrNotFound
}

func (m *mockRoomRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Room, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Room{}, nil
}

func (m *mockRoomRepository) Update(ctx context.Context, id string, room *model.Room) (*mongo.UpdateResult, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, room)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (m *mockRoomRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRoomRepository) Search(ctx context.Context, minCapacity int, amenities []string, limit int, offset int64) ([]*model.Room, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, minCapacity, amenities, limit, offset)
	}
	return []*model.Room{}, nil
}

func (m *mockRoomRepository) CountSearch(ctx context.Context, minCapacity int, amenities []string) (int64, error) {
	if m.countSearchFunc != nil {
		return m.countSearchFunc(ctx, minCapacity, amenities)
	}
	return 0, nil
}

func (m *mockRoomRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockRoomRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

func newTestService(repo repository.RoomRepository) RoomService {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.TEXT,
		Service: "test",
	})
	cfg := &config.Config{
		Log:          log,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return NewRoomService(repo, validator.NewRoomValidator(log), cfg)
}

func validRoom() *model.Room {
	return &model.Room{
		Name:                "  tulip room ",
		Floor:               2,
		Capacity:            8,
		Amenities:           []string{" Projector", "whiteboard "},
		MorningPriceCents:   10000,
		AfternoonPriceCents: 12000,
		NightPriceCents:     8000,
		ContactPhone:        "+31612345678",
	}
}

func TestCreateRoom_SanitizesAndDefaults(t *testing.T) {
	var created *model.Room
	repo := &mockRoomRepository{
		createFunc: func(ctx context.Context, room *model.Room) error {
			created = room
			room.ID = testRoomID
			return nil
		},
	}
	svc := newTestService(repo)

	room := validRoom()
	if err := svc.Create(context.Background(), room); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created == nil {
		t.Fatal("repository Create was not called")
	}
	if created.Name != "tulip room" {
		t.Errorf("name = %q, want trimmed %q", created.Name, "tulip room")
	}
	if !created.Active {
		t.Error("new rooms must default to active")
	}
	if len(created.Amenities) != 2 || created.Amenities[0] != "projector" {
		t.Errorf("amenities not normalized: %v", created.Amenities)
	}
}

func TestCreateRoom_DuplicateName(t *testing.T) {
	repo := &mockRoomRepository{
		findByNameFunc: func(ctx context.Context, name string) (*model.Room, error) {
			return &model.Room{ID: "507f1f77bcf86cd799439099", Name: name}, nil
		},
	}
	svc := newTestService(repo)

	err := svc.Create(context.Background(), validRoom())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("code = %q, want conflict", apperrors.AsAppError(err).Code)
	}
}

func TestCreateRoom_ValidationFailure(t *testing.T) {
	svc := newTestService(&mockRoomRepository{})

	room := validRoom()
	room.Capacity = 0

	err := svc.Create(context.Background(), room)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Errorf("code = %q, want validation", apperrors.AsAppError(err).Code)
	}
}

func TestGetRoomByID_NotFound(t *testing.T) {
	repo := &mockRoomRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			return nil, roomserrors.ErrNotFound
		},
	}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), testRoomID)
	if err == nil {
		t.Fatal("expected not found error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("code = %q, want not found", apperrors.AsAppError(err).Code)
	}
}

func TestGetAllRooms_ReturnsCount(t *testing.T) {
	repo := &mockRoomRepository{
		countFunc: func(ctx context.Context) (int64, error) { return 7, nil },
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Room, error) {
			return []*model.Room{{ID: testRoomID}}, nil
		},
	}
	svc := newTestService(repo)

	rooms, count, err := svc.GetAll(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if count != 7 {
		t.Errorf("count = %d, want 7", count)
	}
	if len(rooms) != 1 {
		t.Errorf("rooms = %d, want 1", len(rooms))
	}
}

func TestUpdateRoom_MergesFields(t *testing.T) {
	var updated *model.Room
	repo := &mockRoomRepository{
		updateFunc: func(ctx context.Context, id string, room *model.Room) (*mongo.UpdateResult, error) {
			updated = room
			return &mongo.UpdateResult{MatchedCount: 1}, nil
		},
	}
	svc := newTestService(repo)

	capacity := 12
	err := svc.Update(context.Background(), testRoomID, &model.RoomUpdate{Capacity: &capacity})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated == nil {
		t.Fatal("repository Update was not called")
	}
	if updated.Capacity != 12 {
		t.Errorf("capacity = %d, want 12", updated.Capacity)
	}
	if updated.Name != "Tulip Room" {
		t.Errorf("name = %q, untouched fields must survive the merge", updated.Name)
	}
}

func TestUpdateRoom_RenameToExistingName(t *testing.T) {
	repo := &mockRoomRepository{
		findByNameFunc: func(ctx context.Context, name string) (*model.Room, error) {
			return &model.Room{ID: "507f1f77bcf86cd799439099", Name: name}, nil
		},
	}
	svc := newTestService(repo)

	err := svc.Update(context.Background(), testRoomID, &model.RoomUpdate{Name: "Rose Room"})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("code = %q, want conflict", apperrors.AsAppError(err).Code)
	}
}

func TestSearchRooms_NormalizesAmenities(t *testing.T) {
	var gotAmenities []string
	repo := &mockRoomRepository{
		searchFunc: func(ctx context.Context, minCapacity int, amenities []string, limit int, offset int64) ([]*model.Room, error) {
			gotAmenities = amenities
			return []*model.Room{}, nil
		},
	}
	svc := newTestService(repo)

	_, _, err := svc.Search(context.Background(), 4, []string{" Projector ", "WIFI"}, 10, 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(gotAmenities) != 2 || gotAmenities[0] != "projector" || gotAmenities[1] != "wifi" {
		t.Errorf("amenities = %v, want lowercased trimmed", gotAmenities)
	}
}

func TestSearchRooms_NegativeCapacity(t *testing.T) {
	svc := newTestService(&mockRoomRepository{})

	_, _, err := svc.Search(context.Background(), -1, nil, 10, 0)
	if err == nil {
		t.Fatal("expected invalid input error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %q, want invalid input", apperrors.AsAppError(err).Code)
	}
}

func TestDeleteRoom_NotFound(t *testing.T) {
	repo := &mockRoomRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return roomserrors.ErrNotFound
		},
	}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), testRoomID)
	if err == nil {
		t.Fatal("expected not found error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("code = %q, want not found", apperrors.AsAppError(err).Code)
	}
}
