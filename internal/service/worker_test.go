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

// WorkerServiceTestSuite defines the test suite for WorkerService
type WorkerServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockWorkerRepositoryInterface
	workerService *service.WorkerService
	validator     *validator.Validate
	orgID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.workerService = service.NewWorkerService(suite.mockRepo, suite.validator)
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *WorkerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateWorker tests successful worker creation
func (suite *WorkerServiceTestSuite) TestCreateWorker() {
	adminID := "100001"
	req := &service.CreateWorkerRequest{
		OrganizationID:  suite.orgID,
		FirstName:       "Dana",
		LastName:        "Reyes",
		Email:           "Dana.Reyes@example.com",
		PhoneNumber:     "+15550100",
		ExternalAdminID: &adminID,
	}

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByExternalAdminID(adminID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	var created *models.Worker
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(worker *models.Worker) error {
			worker.ID = uuid.New()
			worker.CreatedAt = time.Now()
			worker.UpdatedAt = time.Now()
			created = worker
			return nil
		}).
		Times(1)

	response, err := suite.workerService.CreateWorker(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana Reyes", response.FullName)
	assert.Equal(suite.T(), suite.orgID, response.OrganizationID)
	require.NotNil(suite.T(), response.ExternalAdminID)
	assert.Equal(suite.T(), "100001", *response.ExternalAdminID)
	assert.True(suite.T(), response.IsActive, "workers default to active")
	assert.Equal(suite.T(), "dana.reyes", created.Name, "handle derives from the email local part")
	assert.Equal(suite.T(), "Dana Reyes", created.Title)
}

// TestCreateWorkerValidationError tests validation failures on create
func (suite *WorkerServiceTestSuite) TestCreateWorkerValidationError() {
	req := &service.CreateWorkerRequest{
		OrganizationID: suite.orgID,
		FirstName:      "Dana",
		LastName:       "Reyes",
		Email:          "not-an-email",
	}

	response, err := suite.workerService.CreateWorker(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateWorkerDuplicateEmail tests creating with a taken email
func (suite *WorkerServiceTestSuite) TestCreateWorkerDuplicateEmail() {
	req := &service.CreateWorkerRequest{
		OrganizationID: suite.orgID,
		FirstName:      "Dana",
		LastName:       "Reyes",
		Email:          "dana.reyes@example.com",
	}

	existing := &models.Worker{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "dana.reyes@example.com",
	}

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(existing, nil).
		Times(1)

	response, err := suite.workerService.CreateWorker(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerExists)
	assert.Nil(suite.T(), response)
}

// TestCreateWorkerMappingTaken tests creating with an admin mapping another
// worker already holds
func (suite *WorkerServiceTestSuite) TestCreateWorkerMappingTaken() {
	adminID := "100001"
	req := &service.CreateWorkerRequest{
		OrganizationID:  suite.orgID,
		FirstName:       "Dana",
		LastName:        "Reyes",
		Email:           "dana.reyes@example.com",
		ExternalAdminID: &adminID,
	}

	holder := &models.Worker{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		ExternalAdminID: &adminID,
	}

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByExternalAdminID(adminID).
		Return(holder, nil).
		Times(1)

	response, err := suite.workerService.CreateWorker(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminMappingTaken)
	assert.Nil(suite.T(), response)
}

// TestGetWorkerByID tests retrieving a worker by ID
func (suite *WorkerServiceTestSuite) TestGetWorkerByID() {
	workerID := uuid.New()
	worker := &models.Worker{
		BaseModel:      models.BaseModel{ID: workerID},
		OrganizationID: suite.orgID,
		FirstName:      "Dana",
		LastName:       "Reyes",
		Email:          "dana.reyes@example.com",
		IsActive:       true,
	}

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	response, err := suite.workerService.GetWorkerByID(workerID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), workerID, response.ID)
	assert.Equal(suite.T(), "Dana Reyes", response.FullName)
}

// TestGetWorkerByIDNotFound tests retrieving a missing worker
func (suite *WorkerServiceTestSuite) TestGetWorkerByIDNotFound() {
	workerID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.workerService.GetWorkerByID(workerID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetWorkersByOrganization tests listing workers for an organization
func (suite *WorkerServiceTestSuite) TestGetWorkersByOrganization() {
	workers := []models.Worker{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, FirstName: "Dana", LastName: "Reyes"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, FirstName: "Omar", LastName: "Haddad"},
	}

	suite.mockRepo.EXPECT().
		GetByOrganizationID(suite.orgID, 20, 0).
		Return(workers, int64(2), nil).
		Times(1)

	responses, total, err := suite.workerService.GetWorkersByOrganization(suite.orgID, 20, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "Omar Haddad", responses[1].FullName)
}

// TestGetMappedWorkers tests listing the workers that carry an admin mapping
func (suite *WorkerServiceTestSuite) TestGetMappedWorkers() {
	adminID := "100001"
	workers := []models.Worker{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, FirstName: "Dana", LastName: "Reyes", ExternalAdminID: &adminID},
	}

	suite.mockRepo.EXPECT().
		GetMappedByOrganization(suite.orgID).
		Return(workers, nil).
		Times(1)

	responses, err := suite.workerService.GetMappedWorkers(suite.orgID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), responses, 1)
	require.NotNil(suite.T(), responses[0].ExternalAdminID)
	assert.Equal(suite.T(), "100001", *responses[0].ExternalAdminID)
}

// TestUpdateWorker tests a partial update
func (suite *WorkerServiceTestSuite) TestUpdateWorker() {
	workerID := uuid.New()
	worker := &models.Worker{
		BaseModel:      models.BaseModel{ID: workerID, Title: "Dana Reyes"},
		OrganizationID: suite.orgID,
		FirstName:      "Dana",
		LastName:       "Reyes",
		Email:          "dana.reyes@example.com",
		IsActive:       true,
	}

	phone := "+15550199"
	lastName := "Reyes-Ortiz"
	req := &service.UpdateWorkerRequest{
		PhoneNumber: &phone,
		LastName:    &lastName,
	}

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(worker).
		Return(nil).
		Times(1)

	response, err := suite.workerService.UpdateWorker(workerID, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "+15550199", response.PhoneNumber)
	assert.Equal(suite.T(), "Dana Reyes-Ortiz", response.FullName)
	assert.Equal(suite.T(), "dana.reyes@example.com", response.Email, "untouched fields keep their value")
	assert.Equal(suite.T(), "Dana Reyes-Ortiz", worker.Title, "display name follows the renamed worker")
}

// TestUpdateWorkerEmailConflict tests changing the email to one another
// worker already uses
func (suite *WorkerServiceTestSuite) TestUpdateWorkerEmailConflict() {
	workerID := uuid.New()
	worker := &models.Worker{
		BaseModel: models.BaseModel{ID: workerID},
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana.reyes@example.com",
	}

	email := "omar.haddad@example.com"
	req := &service.UpdateWorkerRequest{Email: &email}

	other := &models.Worker{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     email,
	}

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByEmail(email).
		Return(other, nil).
		Times(1)

	response, err := suite.workerService.UpdateWorker(workerID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerExists)
	assert.Nil(suite.T(), response)
}

// TestUpdateWorkerNotFound tests updating a missing worker
func (suite *WorkerServiceTestSuite) TestUpdateWorkerNotFound() {
	workerID := uuid.New()
	req := &service.UpdateWorkerRequest{}

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.workerService.UpdateWorker(workerID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerNotFound)
	assert.Nil(suite.T(), response)
}

// TestSetExternalAdminID tests linking a worker to a platform administrator
func (suite *WorkerServiceTestSuite) TestSetExternalAdminID() {
	workerID := uuid.New()
	worker := &models.Worker{
		BaseModel: models.BaseModel{ID: workerID},
		FirstName: "Dana",
		LastName:  "Reyes",
	}

	adminID := "  100001  "
	trimmed := "100001"

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByExternalAdminID(trimmed).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		SetExternalAdminID(workerID, &trimmed).
		Return(nil).
		Times(1)

	response, err := suite.workerService.SetExternalAdminID(workerID, &adminID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), response.ExternalAdminID)
	assert.Equal(suite.T(), "100001", *response.ExternalAdminID, "surrounding whitespace is trimmed")
}

// TestSetExternalAdminIDAlreadyHeld tests that re-linking the mapping the
// same worker already holds succeeds
func (suite *WorkerServiceTestSuite) TestSetExternalAdminIDAlreadyHeld() {
	workerID := uuid.New()
	adminID := "100001"
	worker := &models.Worker{
		BaseModel:       models.BaseModel{ID: workerID},
		ExternalAdminID: &adminID,
	}

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByExternalAdminID(adminID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		SetExternalAdminID(workerID, &adminID).
		Return(nil).
		Times(1)

	response, err := suite.workerService.SetExternalAdminID(workerID, &adminID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), response.ExternalAdminID)
	assert.Equal(suite.T(), "100001", *response.ExternalAdminID)
}

// TestSetExternalAdminIDTaken tests linking a mapping a different worker
// already holds
func (suite *WorkerServiceTestSuite) TestSetExternalAdminIDTaken() {
	workerID := uuid.New()
	adminID := "100001"
	worker := &models.Worker{BaseModel: models.BaseModel{ID: workerID}}
	holder := &models.Worker{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		ExternalAdminID: &adminID,
	}

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByExternalAdminID(adminID).
		Return(holder, nil).
		Times(1)

	response, err := suite.workerService.SetExternalAdminID(workerID, &adminID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminMappingTaken)
	assert.Nil(suite.T(), response)
}

// TestSetExternalAdminIDClears tests that a nil or blank admin ID clears
// the mapping
func (suite *WorkerServiceTestSuite) TestSetExternalAdminIDClears() {
	workerID := uuid.New()
	adminID := "100001"
	worker := &models.Worker{
		BaseModel:       models.BaseModel{ID: workerID},
		ExternalAdminID: &adminID,
	}

	blank := "   "

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		SetExternalAdminID(workerID, gomock.Nil()).
		Return(nil).
		Times(1)

	response, err := suite.workerService.SetExternalAdminID(workerID, &blank)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.ExternalAdminID, "a blank admin ID clears the mapping")
}

// TestDeleteWorker tests deleting a worker
func (suite *WorkerServiceTestSuite) TestDeleteWorker() {
	workerID := uuid.New()
	worker := &models.Worker{BaseModel: models.BaseModel{ID: workerID}}

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(worker, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Delete(workerID).
		Return(nil).
		Times(1)

	err := suite.workerService.DeleteWorker(workerID)

	assert.NoError(suite.T(), err)
}

// TestDeleteWorkerNotFound tests deleting a missing worker
func (suite *WorkerServiceTestSuite) TestDeleteWorkerNotFound() {
	workerID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(workerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.workerService.DeleteWorker(workerID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerNotFound)
}

// TestWorkerServiceTestSuite runs the test suite
func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}
