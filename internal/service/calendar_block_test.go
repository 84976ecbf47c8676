package service_test

import (
	"testing"
	"time"

	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/mocks"
	"dispatch-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CalendarBlockServiceTestSuite defines the test suite for CalendarBlockService
type CalendarBlockServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockCalendarBlockRepositoryInterface
	mockWorkerRepo *mocks.MockWorkerRepositoryInterface
	blockService   *service.CalendarBlockService
	validator      *validator.Validate
	workerID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CalendarBlockServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCalendarBlockRepositoryInterface(suite.ctrl)
	suite.mockWorkerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.blockService = service.NewCalendarBlockService(suite.mockRepo,
		suite.mockWorkerRepo, suite.validator)
	suite.workerID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *CalendarBlockServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateBlock tests successful calendar block creation with defaults
func (suite *CalendarBlockServiceTestSuite) TestCreateBlock() {
	req := &service.CreateCalendarBlockRequest{
		WorkerID:  suite.workerID,
		Title:     "Equipment check",
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	worker := &models.Worker{BaseModel: models.BaseModel{ID: suite.workerID}}

	suite.mockWorkerRepo.EXPECT().
		GetByID(suite.workerID).
		Return(worker, nil).
		Times(1)

	var created *models.CalendarBlock
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(block *models.CalendarBlock) error {
			block.ID = uuid.New()
			block.CreatedAt = time.Now()
			block.UpdatedAt = time.Now()
			created = block
			return nil
		}).
		Times(1)

	response, err := suite.blockService.Create(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Equipment check", response.Title)
	assert.Equal(suite.T(), "meeting", response.BlockType, "block type defaults to meeting")
	assert.Equal(suite.T(), "public", response.Visibility, "visibility defaults to public")
	assert.True(suite.T(), response.BlocksAvailability, "blocks default to consuming availability")
	assert.Equal(suite.T(), "meeting", created.Name)
}

// TestCreateBlockWithRecurrence tests creating a recurring block
func (suite *CalendarBlockServiceTestSuite) TestCreateBlockWithRecurrence() {
	blocksAvailability := false
	req := &service.CreateCalendarBlockRequest{
		WorkerID:           suite.workerID,
		Title:              "Weekly standup",
		BlockType:          "meeting",
		StartTime:          time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:            time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC),
		RecurrenceRule:     "FREQ=WEEKLY;BYDAY=MO",
		Visibility:         "private",
		BlocksAvailability: &blocksAvailability,
	}

	worker := &models.Worker{BaseModel: models.BaseModel{ID: suite.workerID}}

	suite.mockWorkerRepo.EXPECT().
		GetByID(suite.workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.blockService.Create(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "FREQ=WEEKLY;BYDAY=MO", response.RecurrenceRule)
	assert.Equal(suite.T(), "private", response.Visibility)
	assert.False(suite.T(), response.BlocksAvailability)
}

// TestCreateBlockInvalidRecurrenceRule tests rejecting a malformed rule
func (suite *CalendarBlockServiceTestSuite) TestCreateBlockInvalidRecurrenceRule() {
	req := &service.CreateCalendarBlockRequest{
		WorkerID:       suite.workerID,
		Title:          "Weekly standup",
		StartTime:      time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC),
		RecurrenceRule: "FREQ=FORTNIGHTLYISH",
	}

	response, err := suite.blockService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "recurrence_rule")
}

// TestCreateBlockInvalidTimeRange tests rejecting an end before the start
func (suite *CalendarBlockServiceTestSuite) TestCreateBlockInvalidTimeRange() {
	req := &service.CreateCalendarBlockRequest{
		WorkerID:  suite.workerID,
		Title:     "Equipment check",
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	response, err := suite.blockService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
	assert.Nil(suite.T(), response)
}

// TestCreateBlockWorkerNotFound tests creating a block for a missing worker
func (suite *CalendarBlockServiceTestSuite) TestCreateBlockWorkerNotFound() {
	req := &service.CreateCalendarBlockRequest{
		WorkerID:  suite.workerID,
		Title:     "Equipment check",
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	suite.mockWorkerRepo.EXPECT().
		GetByID(suite.workerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.blockService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetBlockByID tests retrieving a calendar block by ID
func (suite *CalendarBlockServiceTestSuite) TestGetBlockByID() {
	blockID := uuid.New()
	block := &models.CalendarBlock{
		BaseModel: models.BaseModel{ID: blockID, Title: "Equipment check"},
		WorkerID:  suite.workerID,
		BlockType: models.BlockTypeMaintenance,
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	suite.mockRepo.EXPECT().
		GetByID(blockID).
		Return(block, nil).
		Times(1)

	response, err := suite.blockService.GetByID(blockID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), blockID, response.ID)
	assert.Equal(suite.T(), "maintenance", response.BlockType)
	assert.Equal(suite.T(), "2026-03-02T09:00:00Z", response.StartTime)
}

// TestGetBlockByIDNotFound tests retrieving a missing calendar block
func (suite *CalendarBlockServiceTestSuite) TestGetBlockByIDNotFound() {
	blockID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(blockID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.blockService.GetByID(blockID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCalendarBlockNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetBlocksByWorker tests listing blocks for a worker with pagination
func (suite *CalendarBlockServiceTestSuite) TestGetBlocksByWorker() {
	blocks := []models.CalendarBlock{
		{BaseModel: models.BaseModel{ID: uuid.New(), Title: "Equipment check"}, WorkerID: suite.workerID},
		{BaseModel: models.BaseModel{ID: uuid.New(), Title: "Safety training"}, WorkerID: suite.workerID},
	}

	suite.mockRepo.EXPECT().
		GetByWorkerID(suite.workerID, 20, 0).
		Return(blocks, int64(2), nil).
		Times(1)

	response, err := suite.blockService.GetByWorker(suite.workerID, 1, 20)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Len(suite.T(), response.Blocks, 2)
}

// TestUpdateBlock tests a partial update
func (suite *CalendarBlockServiceTestSuite) TestUpdateBlock() {
	blockID := uuid.New()
	block := &models.CalendarBlock{
		BaseModel:          models.BaseModel{ID: blockID, Name: "meeting", Title: "Equipment check"},
		WorkerID:           suite.workerID,
		BlockType:          models.BlockTypeMeeting,
		StartTime:          time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:            time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Visibility:         models.BlockVisibilityPublic,
		BlocksAvailability: true,
	}

	blockType := "training"
	endTime := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	req := &service.UpdateCalendarBlockRequest{
		BlockType: &blockType,
		EndTime:   &endTime,
	}

	suite.mockRepo.EXPECT().
		GetByID(blockID).
		Return(block, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(block).
		Return(nil).
		Times(1)

	response, err := suite.blockService.Update(blockID, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "training", response.BlockType)
	assert.Equal(suite.T(), "2026-03-02T11:00:00Z", response.EndTime)
	assert.Equal(suite.T(), "Equipment check", response.Title, "untouched fields keep their value")
	assert.Equal(suite.T(), "training", block.Name, "name column follows the block type")
}

// TestUpdateBlockInvalidTimeRange tests that an update cannot invert the
// time range
func (suite *CalendarBlockServiceTestSuite) TestUpdateBlockInvalidTimeRange() {
	blockID := uuid.New()
	block := &models.CalendarBlock{
		BaseModel: models.BaseModel{ID: blockID},
		WorkerID:  suite.workerID,
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	endTime := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	req := &service.UpdateCalendarBlockRequest{EndTime: &endTime}

	suite.mockRepo.EXPECT().
		GetByID(blockID).
		Return(block, nil).
		Times(1)

	response, err := suite.blockService.Update(blockID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
	assert.Nil(suite.T(), response)
}

// TestUpdateBlockNotFound tests updating a missing calendar block
func (suite *CalendarBlockServiceTestSuite) TestUpdateBlockNotFound() {
	blockID := uuid.New()
	req := &service.UpdateCalendarBlockRequest{}

	suite.mockRepo.EXPECT().
		GetByID(blockID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.blockService.Update(blockID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCalendarBlockNotFound)
	assert.Nil(suite.T(), response)
}

// TestDeleteBlock tests deleting a calendar block
func (suite *CalendarBlockServiceTestSuite) TestDeleteBlock() {
	blockID := uuid.New()
	block := &models.CalendarBlock{BaseModel: models.BaseModel{ID: blockID}}

	suite.mockRepo.EXPECT().
		GetByID(blockID).
		Return(block, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Delete(blockID).
		Return(nil).
		Times(1)

	err := suite.blockService.Delete(blockID)

	assert.NoError(suite.T(), err)
}

// TestDeleteBlockNotFound tests deleting a missing calendar block
func (suite *CalendarBlockServiceTestSuite) TestDeleteBlockNotFound() {
	blockID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(blockID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.blockService.Delete(blockID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCalendarBlockNotFound)
}

// TestCalendarBlockServiceTestSuite runs the test suite
func TestCalendarBlockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarBlockServiceTestSuite))
}
