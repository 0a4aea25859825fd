package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"admissions-crm-backend/internal/api/handlers"
	"admissions-crm-backend/internal/auth"
	apperrors "admissions-crm-backend/internal/errors"
	"admissions-crm-backend/internal/mocks"
	"admissions-crm-backend/internal/repository"
	"admissions-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LeadHandlerTestSuite defines the test suite for LeadHandler
type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeadServiceInterface
	router      *gin.Engine
	agentID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	suite.agentID = uuid.New()

	handler := handlers.NewLeadHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/api/public/leads", handler.CreateLeadPublic)

	// Authenticated group with a stub identity instead of real JWT parsing
	v1 := suite.router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		c.Set(auth.ContextKeyAgentID, suite.agentID.String())
		c.Next()
	})
	v1.POST("/leads", handler.CreateLead)
	v1.POST("/leads/bulk", handler.BulkCreateLeads)
	v1.GET("/leads", handler.ListLeads)
	v1.GET("/leads/:id", handler.GetLead)
}

// TearDownTest cleans up after each test
func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadHandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func sampleRequest() service.CreateLeadRequest {
	return service.CreateLeadRequest{
		FullName:      "Asha Verma",
		Phone:         "9999000001",
		AdmissionYear: "2024",
		SourceWebsite: "test",
	}
}

func (suite *LeadHandlerTestSuite) TestCreateLeadPublicNewLead() {
	leadID := uuid.New()
	suite.mockService.EXPECT().
		CreateLead(gomock.Any(), false, nil).
		Return(&service.CreateLeadResult{
			IsDuplicate: false,
			Lead:        &service.LeadResponse{ID: leadID, Phone: "9999000001"},
		}, nil)

	recorder := suite.postJSON("/api/public/leads", sampleRequest())
	suite.Equal(http.StatusCreated, recorder.Code)

	var result service.CreateLeadResult
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &result))
	suite.False(result.IsDuplicate)
	suite.Equal(leadID, result.Lead.ID)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadPublicDuplicateReturns200() {
	suite.mockService.EXPECT().
		CreateLead(gomock.Any(), false, nil).
		Return(&service.CreateLeadResult{
			IsDuplicate: true,
			Lead:        &service.LeadResponse{ID: uuid.New()},
		}, nil)

	recorder := suite.postJSON("/api/public/leads", sampleRequest())
	suite.Equal(http.StatusOK, recorder.Code)

	var result service.CreateLeadResult
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &result))
	suite.True(result.IsDuplicate)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadPublicValidationError() {
	suite.mockService.EXPECT().
		CreateLead(gomock.Any(), false, nil).
		Return(nil, apperrors.NewValidationError("Phone", "failed on required"))

	recorder := suite.postJSON("/api/public/leads", service.CreateLeadRequest{})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadPublicMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/public/leads", bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadInternalPassesCreator() {
	suite.mockService.EXPECT().
		CreateLead(gomock.Any(), true, gomock.Any()).
		DoAndReturn(func(_ *service.CreateLeadRequest, _ bool, creatorID *uuid.UUID) (*service.CreateLeadResult, error) {
			suite.Require().NotNil(creatorID)
			suite.Equal(suite.agentID, *creatorID)
			return &service.CreateLeadResult{Lead: &service.LeadResponse{ID: uuid.New()}}, nil
		})

	recorder := suite.postJSON("/api/v1/leads", sampleRequest())
	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestBulkCreateLeads() {
	suite.mockService.EXPECT().
		BulkCreateLeads(gomock.Len(2), gomock.Any()).
		Return(&service.BulkCreateResult{Created: 2, Assigned: 2}, nil)

	recorder := suite.postJSON("/api/v1/leads/bulk", []service.CreateLeadRequest{sampleRequest(), sampleRequest()})
	suite.Equal(http.StatusCreated, recorder.Code)

	var result service.BulkCreateResult
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &result))
	suite.Equal(2, result.Created)
}

func (suite *LeadHandlerTestSuite) TestBulkCreateLeadsEmptyBatch() {
	suite.mockService.EXPECT().
		BulkCreateLeads(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrEmptyBulkBatch)

	recorder := suite.postJSON("/api/v1/leads/bulk", []service.CreateLeadRequest{})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLead() {
	leadID := uuid.New()
	suite.mockService.EXPECT().
		GetLead(leadID).
		Return(&service.LeadResponse{ID: leadID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/"+leadID.String(), nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLeadNotFound() {
	leadID := uuid.New()
	suite.mockService.EXPECT().
		GetLead(leadID).
		Return(nil, apperrors.ErrLeadNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/"+leadID.String(), nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLeadInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/not-a-uuid", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestListLeadsWithFilters() {
	agentID := uuid.New()
	suite.mockService.EXPECT().
		ListLeads(gomock.Any(), 2, 10).
		DoAndReturn(func(filter repository.LeadFilter, _, _ int) (*service.LeadListResponse, error) {
			suite.Require().NotNil(filter.AssignedTo)
			suite.Equal(agentID, *filter.AssignedTo)
			suite.Equal("new", filter.Status)
			return &service.LeadListResponse{Page: 2, Limit: 10}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/leads?page=2&limit=10&status=new&assigned_to="+agentID.String(), nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestListLeadsInvalidAssignedTo() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads?assigned_to=bogus", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadPublicInternalError() {
	suite.mockService.EXPECT().
		CreateLead(gomock.Any(), false, nil).
		Return(nil, errors.New("database down"))

	recorder := suite.postJSON("/api/public/leads", sampleRequest())
	suite.Equal(http.StatusInternalServerError, recorder.Code)
}

// TestLeadHandlerTestSuite runs the test suite
func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
