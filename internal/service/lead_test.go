package service_test

import (
	"errors"
	"testing"
	"time"

	"admissions-crm-backend/internal/database/models"
	apperrors "admissions-crm-backend/internal/errors"
	"admissions-crm-backend/internal/mocks"
	"admissions-crm-backend/internal/repository"
	"admissions-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LeadServiceTestSuite defines the test suite for LeadService
type LeadServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	leadRepo   *mocks.MockLeadRepositoryInterface
	agentRepo  *mocks.MockAgentRepositoryInterface
	assignment *mocks.MockAssignmentFinder
	svc        *service.LeadService
}

// SetupTest sets up the test suite
func (suite *LeadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.leadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.agentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.assignment = mocks.NewMockAssignmentFinder(suite.ctrl)
	suite.svc = service.NewLeadService(suite.leadRepo, suite.agentRepo, suite.assignment, "IN")
}

// TearDownTest cleans up after each test
func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validRequest() *service.CreateLeadRequest {
	return &service.CreateLeadRequest{
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		Phone:         "9999999999",
		AdmissionYear: "2024",
		SourceWebsite: "test",
	}
}

func existingLead(phone, year, source string) models.Lead {
	lead := models.Lead{
		Phone:           phone,
		NormalizedPhone: phone,
		AdmissionYear:   year,
		SourceWebsite:   source,
		Status:          models.LeadStatusNew,
		Source:          models.LeadSourceWebsite,
	}
	lead.ID = uuid.New()
	return lead
}

func (suite *LeadServiceTestSuite) TestCreateLeadExternalAssignsWinner() {
	agentID := uuid.New()
	winner := &service.CandidateAgent{RoleName: models.RoleNameAdmissionExecutive}
	winner.ID = agentID

	suite.leadRepo.EXPECT().FindByNormalizedPhone(gomock.Any()).Return(nil, nil)
	suite.assignment.EXPECT().FindBestAgent().Return(winner)
	suite.leadRepo.EXPECT().
		CreateWithAssignment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(lead *models.Lead, id *uuid.UUID, _ time.Time) error {
			suite.Require().NotNil(id)
			suite.Equal(agentID, *id)
			suite.Equal(models.LeadSourceWebsite, lead.Source)
			suite.Equal(models.LeadStatusNew, lead.Status)
			suite.NotEmpty(lead.NormalizedPhone)
			lead.ID = uuid.New()
			return nil
		})

	result, err := suite.svc.CreateLead(validRequest(), false, nil)
	suite.Require().NoError(err)
	suite.False(result.IsDuplicate)
	suite.Require().NotNil(result.Lead)
	suite.Equal("2024", result.Lead.AdmissionYear)
}

func (suite *LeadServiceTestSuite) TestCreateLeadDuplicateShortCircuits() {
	// A matching lead on (phone, year, source) must return the existing
	// record without touching assignment or persistence.
	existing := existingLead("9999999999", "2024", "test")
	suite.leadRepo.EXPECT().
		FindByNormalizedPhone(gomock.Any()).
		Return([]models.Lead{existing}, nil)

	result, err := suite.svc.CreateLead(validRequest(), false, nil)
	suite.Require().NoError(err)
	suite.True(result.IsDuplicate)
	suite.Equal(existing.ID, result.Lead.ID)
}

func (suite *LeadServiceTestSuite) TestCreateLeadSamePhoneDifferentYearIsNotDuplicate() {
	other := existingLead("9999999999", "2025", "test")
	suite.leadRepo.EXPECT().
		FindByNormalizedPhone(gomock.Any()).
		Return([]models.Lead{other}, nil)
	suite.assignment.EXPECT().FindBestAgent().Return(nil)
	suite.leadRepo.EXPECT().
		CreateWithAssignment(gomock.Any(), nil, gomock.Any()).
		Return(nil)

	result, err := suite.svc.CreateLead(validRequest(), false, nil)
	suite.Require().NoError(err)
	suite.False(result.IsDuplicate)
}

func (suite *LeadServiceTestSuite) TestCreateLeadExternalUnassignedWhenNoWinner() {
	suite.leadRepo.EXPECT().FindByNormalizedPhone(gomock.Any()).Return(nil, nil)
	suite.assignment.EXPECT().FindBestAgent().Return(nil)
	suite.leadRepo.EXPECT().
		CreateWithAssignment(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(lead *models.Lead, _ *uuid.UUID, _ time.Time) error {
			suite.Nil(lead.AssignedTo)
			return nil
		})

	result, err := suite.svc.CreateLead(validRequest(), false, nil)
	suite.Require().NoError(err)
	suite.False(result.IsDuplicate)
	suite.Nil(result.Lead.AssignedTo)
}

func (suite *LeadServiceTestSuite) TestCreateLeadInternalSkipsDuplicateCheck() {
	// No FindByNormalizedPhone expectation: staff entry goes straight to
	// assignment even when a matching lead exists.
	creatorID := uuid.New()
	winner := &service.CandidateAgent{RoleName: models.RoleNameAdmissionManager}
	winner.ID = uuid.New()

	suite.assignment.EXPECT().FindBestAgent().Return(winner)
	suite.leadRepo.EXPECT().
		CreateWithAssignment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(lead *models.Lead, id *uuid.UUID, _ time.Time) error {
			suite.Equal(models.LeadSourceStaff, lead.Source)
			suite.Require().NotNil(id)
			suite.Equal(winner.ID, *id)
			return nil
		})

	result, err := suite.svc.CreateLead(validRequest(), true, &creatorID)
	suite.Require().NoError(err)
	suite.False(result.IsDuplicate)
}

func (suite *LeadServiceTestSuite) TestCreateLeadInternalFallsBackToCreator() {
	creatorID := uuid.New()

	suite.assignment.EXPECT().FindBestAgent().Return(nil)
	suite.leadRepo.EXPECT().
		CreateWithAssignment(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(lead *models.Lead, id *uuid.UUID, _ time.Time) error {
			// Creator assignment bypasses the counter increment, so the
			// transactional agent id stays nil.
			suite.Require().NotNil(lead.AssignedTo)
			suite.Equal(creatorID, *lead.AssignedTo)
			return nil
		})

	result, err := suite.svc.CreateLead(validRequest(), true, &creatorID)
	suite.Require().NoError(err)
	suite.Require().NotNil(result.Lead.AssignedTo)
	suite.Equal(creatorID, *result.Lead.AssignedTo)
}

func (suite *LeadServiceTestSuite) TestCreateLeadDuplicateFallbackScan() {
	existing := existingLead("9999999999", "2024", "test")

	suite.leadRepo.EXPECT().
		FindByNormalizedPhone(gomock.Any()).
		Return(nil, errors.New("index unavailable"))
	suite.leadRepo.EXPECT().
		ScanByDedupKey(gomock.Any(), "2024", "test").
		Return(&existing, nil)

	result, err := suite.svc.CreateLead(validRequest(), false, nil)
	suite.Require().NoError(err)
	suite.True(result.IsDuplicate)
	suite.Equal(existing.ID, result.Lead.ID)
}

func (suite *LeadServiceTestSuite) TestCreateLeadDuplicateCheckHardFailure() {
	suite.leadRepo.EXPECT().
		FindByNormalizedPhone(gomock.Any()).
		Return(nil, errors.New("index unavailable"))
	suite.leadRepo.EXPECT().
		ScanByDedupKey(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	result, err := suite.svc.CreateLead(validRequest(), false, nil)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateCheckFailed)
	suite.Nil(result)
}

func (suite *LeadServiceTestSuite) TestCreateLeadValidation() {
	testCases := []struct {
		name    string
		mutate  func(*service.CreateLeadRequest)
		wantErr bool
	}{
		{"Valid", func(r *service.CreateLeadRequest) {}, false},
		{"Missing phone", func(r *service.CreateLeadRequest) { r.Phone = "" }, true},
		{"Missing admission year", func(r *service.CreateLeadRequest) { r.AdmissionYear = "" }, true},
		{"Missing source website", func(r *service.CreateLeadRequest) { r.SourceWebsite = "" }, true},
		{"Bad email", func(r *service.CreateLeadRequest) { r.Email = "not-an-email" }, true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := validRequest()
			tc.mutate(req)

			if !tc.wantErr {
				suite.leadRepo.EXPECT().FindByNormalizedPhone(gomock.Any()).Return(nil, nil)
				suite.assignment.EXPECT().FindBestAgent().Return(nil)
				suite.leadRepo.EXPECT().CreateWithAssignment(gomock.Any(), nil, gomock.Any()).Return(nil)
			}

			_, err := suite.svc.CreateLead(req, false, nil)
			if tc.wantErr {
				suite.Error(err)
				suite.True(apperrors.IsValidation(err))
			} else {
				suite.NoError(err)
			}
		})
	}
}

func (suite *LeadServiceTestSuite) TestBulkCreateLeadsRoundRobin() {
	agents := []models.Agent{
		makeAgent("second", 3, 1, nil),
		makeAgent("first", 1, 1, nil),
		makeAgent("third", 5, 1, nil),
	}
	// The service reorders the pool in place, so pin the ids by workload
	// before handing it over.
	first, second, third := agents[1].ID, agents[0].ID, agents[2].ID
	suite.assignment.EXPECT().CandidatePool().Return(agents)
	suite.leadRepo.EXPECT().FindByNormalizedPhone(gomock.Any()).Return(nil, nil).Times(5)

	reqs := make([]service.CreateLeadRequest, 5)
	for i := range reqs {
		reqs[i] = *validRequest()
		reqs[i].Phone = "98765000" + string(rune('0'+i)) + "9"
	}

	var created []*models.Lead
	suite.leadRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(leads []*models.Lead) error {
			created = leads
			return nil
		})

	// 5 leads over 3 agents: first gets 2, second gets 2, third gets 1.
	incremented := make(map[uuid.UUID]int)
	suite.agentRepo.EXPECT().
		IncrementActiveLeads(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, delta int, _ time.Time) error {
			incremented[id] = delta
			return nil
		}).
		Times(3)

	result, err := suite.svc.BulkCreateLeads(reqs, nil)
	suite.Require().NoError(err)
	suite.Equal(5, result.Created)
	suite.Equal(0, result.Skipped)
	suite.Equal(5, result.Assigned)
	suite.Require().Len(created, 5)

	// Pool is ordered by workload, so round-robin walks first, second,
	// third, first, second.
	expected := []uuid.UUID{first, second, third, first, second}
	for i, lead := range created {
		suite.Require().NotNil(lead.AssignedTo, "lead %d unassigned", i)
		suite.Equal(expected[i], *lead.AssignedTo, "lead %d", i)
		suite.Equal(models.LeadSourceBulk, lead.Source)
	}

	suite.Equal(2, incremented[first])
	suite.Equal(2, incremented[second])
	suite.Equal(1, incremented[third])
}

func (suite *LeadServiceTestSuite) TestBulkCreateLeadsEmptyBatch() {
	_, err := suite.svc.BulkCreateLeads(nil, nil)
	suite.ErrorIs(err, apperrors.ErrEmptyBulkBatch)
}

func (suite *LeadServiceTestSuite) TestBulkCreateLeadsSkipsInvalidAndInBatchDuplicates() {
	suite.assignment.EXPECT().CandidatePool().Return(nil)
	// The repeat is caught in memory before the stored-lead lookup, so only
	// the first valid row reaches the repository.
	suite.leadRepo.EXPECT().FindByNormalizedPhone(gomock.Any()).Return(nil, nil)

	valid := *validRequest()
	invalid := *validRequest()
	invalid.Phone = ""
	repeat := *validRequest()

	suite.leadRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(leads []*models.Lead) error {
			suite.Len(leads, 1)
			suite.Nil(leads[0].AssignedTo)
			return nil
		})

	result, err := suite.svc.BulkCreateLeads([]service.CreateLeadRequest{valid, invalid, repeat}, nil)
	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal(2, result.Skipped)
	suite.Equal(0, result.Assigned)
}

func (suite *LeadServiceTestSuite) TestBulkCreateLeadsSkipsStoredDuplicates() {
	// A batch row matching a lead already on file must be skipped, not
	// re-created. Both rows share a phone, so the lookup returns the stored
	// lead for each; only the row with the matching admission year is a
	// duplicate.
	existing := existingLead("9999999999", "2024", "test")
	suite.assignment.EXPECT().CandidatePool().Return(nil)
	suite.leadRepo.EXPECT().
		FindByNormalizedPhone(gomock.Any()).
		Return([]models.Lead{existing}, nil).
		Times(2)

	duplicate := *validRequest()
	fresh := *validRequest()
	fresh.AdmissionYear = "2025"

	suite.leadRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(leads []*models.Lead) error {
			suite.Require().Len(leads, 1)
			suite.Equal("2025", leads[0].AdmissionYear)
			return nil
		})

	result, err := suite.svc.BulkCreateLeads([]service.CreateLeadRequest{duplicate, fresh}, nil)
	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal(1, result.Skipped)
}

func (suite *LeadServiceTestSuite) TestBulkCreateLeadsDuplicateCheckHardFailure() {
	suite.assignment.EXPECT().CandidatePool().Return(nil)
	suite.leadRepo.EXPECT().
		FindByNormalizedPhone(gomock.Any()).
		Return(nil, errors.New("index unavailable"))
	suite.leadRepo.EXPECT().
		ScanByDedupKey(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	result, err := suite.svc.BulkCreateLeads([]service.CreateLeadRequest{*validRequest()}, nil)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateCheckFailed)
	suite.Nil(result)
}

func (suite *LeadServiceTestSuite) TestBulkCreateLeadsCounterFailureTolerated() {
	agent := makeAgent("only", 0, 1, nil)
	suite.assignment.EXPECT().CandidatePool().Return([]models.Agent{agent})
	suite.leadRepo.EXPECT().FindByNormalizedPhone(gomock.Any()).Return(nil, nil)
	suite.leadRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)
	suite.agentRepo.EXPECT().
		IncrementActiveLeads(agent.ID, 1, gomock.Any()).
		Return(errors.New("agent vanished"))

	result, err := suite.svc.BulkCreateLeads([]service.CreateLeadRequest{*validRequest()}, nil)
	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal(1, result.Assigned)
}

func (suite *LeadServiceTestSuite) TestGetLeadNotFound() {
	id := uuid.New()
	suite.leadRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetLead(id)
	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
}

func (suite *LeadServiceTestSuite) TestListLeadsPaginationValidation() {
	_, err := suite.svc.ListLeads(repository.LeadFilter{}, 0, 20)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)

	_, err = suite.svc.ListLeads(repository.LeadFilter{}, 1, 0)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)

	_, err = suite.svc.ListLeads(repository.LeadFilter{}, 1, 101)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

func (suite *LeadServiceTestSuite) TestListLeadsInvalidStatus() {
	_, err := suite.svc.ListLeads(repository.LeadFilter{Status: "archived"}, 1, 20)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *LeadServiceTestSuite) TestListLeads() {
	lead := existingLead("9999999999", "2024", "test")
	suite.leadRepo.EXPECT().
		List(repository.LeadFilter{Status: "new"}, 20, 0).
		Return([]models.Lead{lead}, int64(1), nil)

	result, err := suite.svc.ListLeads(repository.LeadFilter{Status: "new"}, 1, 20)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.TotalCount)
	suite.Len(result.Leads, 1)
}

// TestLeadServiceTestSuite runs the test suite
func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
