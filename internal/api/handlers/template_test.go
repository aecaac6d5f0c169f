package handlers

import (
	"errors"
	"net/http"
	"testing"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/mocks"
	"valuation-backend/internal/service"
	"valuation-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TemplateHandlerTestSuite defines the test suite for TemplateHandler
type TemplateHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTemplateServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *TemplateHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTemplateServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := NewTemplateHandler(suite.mockService)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.GET("/banks", handler.ListBanks)
		v1.GET("/templates/:bankCode/:propertyType", handler.GetAggregatedTemplate)
		v1.GET("/templates/:bankCode/:propertyType/custom-fields", handler.GetCustomTemplateFields)
		v1.GET("/document-types", handler.ListDocumentTypes)
	}
}

func (suite *TemplateHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TemplateHandlerTestSuite) TestGetAggregatedTemplate() {
	suite.mockService.EXPECT().
		GetAggregatedTemplate(gomock.Any(), "SBI", "land").
		Return(&service.AggregatedTemplateResponse{
			Bank:          service.BankInfo{BankCode: "SBI", BankName: "State Bank of India"},
			DocumentTypes: []models.DocumentType{{DocumentID: "doc1"}},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/templates/SBI/land", nil)

	var response service.AggregatedTemplateResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "SBI", response.Bank.BankCode)
	assert.Len(suite.T(), response.DocumentTypes, 1)
}

func (suite *TemplateHandlerTestSuite) TestGetAggregatedTemplateErrors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown bank", apperrors.ErrBankNotFound, http.StatusNotFound, apperrors.CodeNotFound},
		{"no template for property type", apperrors.ErrTemplateNotFound, http.StatusNotFound, apperrors.CodeNotFound},
		{"conflicting sources", &apperrors.AggregationError{FieldID: "plot_area", Message: "appears twice"}, http.StatusInternalServerError, apperrors.CodeAggregationError},
		{"store failure", errors.New("timeout"), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.EXPECT().GetAggregatedTemplate(gomock.Any(), "SBI", "land").Return(nil, tt.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/templates/SBI/land", nil)

			testutils.AssertErrorResponse(suite.T(), recorder, tt.wantStatus, tt.wantCode)
		})
	}
}

func (suite *TemplateHandlerTestSuite) TestGetCustomTemplateFields() {
	suite.mockService.EXPECT().
		GetCustomTemplateFields(gomock.Any(), "SBI", "land").
		Return(&service.CustomTemplateFieldsResponse{BankCode: "SBI", PropertyType: "land", TemplateCode: "SBI_LAND"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/templates/SBI/land/custom-fields", nil)

	var response service.CustomTemplateFieldsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "SBI_LAND", response.TemplateCode)
}

func (suite *TemplateHandlerTestSuite) TestListBanks() {
	suite.mockService.EXPECT().ListBanks(gomock.Any()).Return([]service.BankSummary{{BankCode: "SBI"}, {BankCode: "HDFC"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/banks", nil)

	var body struct {
		Banks []service.BankSummary `json:"banks"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Len(suite.T(), body.Banks, 2)
}

func (suite *TemplateHandlerTestSuite) TestListDocumentTypes() {
	suite.mockService.EXPECT().ListDocumentTypes(gomock.Any()).Return([]models.DocumentType{{DocumentID: "doc1"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/document-types", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "doc1")
}

func TestTemplateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateHandlerTestSuite))
}
