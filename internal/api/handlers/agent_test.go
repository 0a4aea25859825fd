package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"admissions-crm-backend/internal/api/handlers"
	apperrors "admissions-crm-backend/internal/errors"
	"admissions-crm-backend/internal/mocks"
	"admissions-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AgentHandlerTestSuite defines the test suite for AgentHandler
type AgentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAgentServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *AgentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAgentServiceInterface(suite.ctrl)

	handler := handlers.NewAgentHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/agents", handler.CreateAgent)
	suite.router.GET("/agents", handler.ListAgents)
	suite.router.GET("/agents/:id", handler.GetAgent)
	suite.router.PUT("/agents/:id/availability", handler.SetAvailability)
}

// TearDownTest cleans up after each test
func (suite *AgentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AgentHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *AgentHandlerTestSuite) TestCreateAgent() {
	roleID := uuid.New()
	suite.mockService.EXPECT().
		CreateAgent(gomock.Any()).
		Return(&service.AgentResponse{ID: uuid.New(), FullName: "Ravi Kumar", RoleID: roleID}, nil)

	recorder := suite.request(http.MethodPost, "/agents", service.CreateAgentRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		RoleID:   roleID,
	})
	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *AgentHandlerTestSuite) TestCreateAgentDuplicateEmail() {
	suite.mockService.EXPECT().
		CreateAgent(gomock.Any()).
		Return(nil, apperrors.ErrAgentExists)

	recorder := suite.request(http.MethodPost, "/agents", service.CreateAgentRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		RoleID:   uuid.New(),
	})
	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *AgentHandlerTestSuite) TestSetAvailability() {
	agentID := uuid.New()
	suite.mockService.EXPECT().
		SetAvailability(agentID, false).
		Return(&service.AgentResponse{ID: agentID, IsAvailable: false}, nil)

	off := false
	recorder := suite.request(http.MethodPut, "/agents/"+agentID.String()+"/availability",
		handlers.SetAvailabilityRequest{IsAvailable: &off})
	suite.Equal(http.StatusOK, recorder.Code)

	var resp service.AgentResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.False(resp.IsAvailable)
}

func (suite *AgentHandlerTestSuite) TestSetAvailabilityMissingBody() {
	agentID := uuid.New()
	recorder := suite.request(http.MethodPut, "/agents/"+agentID.String()+"/availability", map[string]string{})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *AgentHandlerTestSuite) TestSetAvailabilityUnknownAgent() {
	agentID := uuid.New()
	suite.mockService.EXPECT().
		SetAvailability(agentID, true).
		Return(nil, apperrors.ErrAgentNotFound)

	on := true
	recorder := suite.request(http.MethodPut, "/agents/"+agentID.String()+"/availability",
		handlers.SetAvailabilityRequest{IsAvailable: &on})
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *AgentHandlerTestSuite) TestGetAgentInvalidID() {
	recorder := suite.request(http.MethodGet, "/agents/not-a-uuid", nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *AgentHandlerTestSuite) TestListAgents() {
	suite.mockService.EXPECT().
		ListAgents(1, 20).
		Return(&service.AgentListResponse{TotalCount: 0, Page: 1, Limit: 20}, nil)

	recorder := suite.request(http.MethodGet, "/agents", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

// TestAgentHandlerTestSuite runs the test suite
func TestAgentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AgentHandlerTestSuite))
}
