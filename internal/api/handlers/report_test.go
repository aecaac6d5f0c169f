package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/mocks"
	"valuation-backend/internal/service"
	"valuation-backend/internal/tenant"
	"valuation-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportFixture struct {
	http     *testutils.HTTPTestSuite
	reports  *mocks.MockReportServiceInterface
	perms    *mocks.MockPermissionServiceInterface
	oc       *tenant.OrganizationContext
	handle   *tenant.Handle
	basePath string
}

func newReportFixture(t *testing.T) *reportFixture {
	ctrl := gomock.NewController(t)
	orgID := uuid.New()
	f := &reportFixture{
		http:     testutils.SetupHTTPTest(),
		reports:  mocks.NewMockReportServiceInterface(ctrl),
		perms:    mocks.NewMockPermissionServiceInterface(ctrl),
		oc:       &tenant.OrganizationContext{OrganizationID: orgID, OrgShortName: "acme", UserID: "user-1", Roles: []string{"employee"}},
		handle:   &tenant.Handle{OrganizationID: orgID, ShortName: "acme"},
		basePath: "/api/v1/orgs/acme/reports",
	}

	reports := NewReportHandler(f.reports)
	group := f.http.Router.Group("/api/v1/orgs/:org/reports", withTenant(f.oc, f.handle))
	group.GET("", reports.List)
	group.POST("", reports.Create)
	group.GET("/:id", reports.Get)

	f.http.Router.GET("/api/v1/me/permissions", withTenant(f.oc, f.handle), NewPermissionHandler(f.perms).GetMyPermissions)
	return f
}

func TestReportHandlerCreate(t *testing.T) {
	f := newReportFixture(t)
	f.reports.EXPECT().
		Create(gomock.Any(), f.handle, f.oc, gomock.Any()).
		Return(&models.Report{ReferenceNumber: "ACME-000001", Status: models.ReportStatusDraft}, nil)

	recorder := f.http.MakeRequest(http.MethodPost, f.basePath, map[string]interface{}{
		"bankCode":     "SBI",
		"propertyType": "land",
	})

	var report models.Report
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &report)
	assert.Equal(t, "ACME-000001", report.ReferenceNumber)
}

func TestReportHandlerCreateDenied(t *testing.T) {
	f := newReportFixture(t)
	f.reports.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrPermissionDenied)

	recorder := f.http.MakeRequest(http.MethodPost, f.basePath, map[string]interface{}{"bankCode": "SBI", "propertyType": "land"})

	testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodePermissionDenied)
}

func TestReportHandlerGet(t *testing.T) {
	f := newReportFixture(t)
	id := uuid.New()
	f.reports.EXPECT().Get(gomock.Any(), f.handle, f.oc, id).Return(nil, apperrors.ErrReportNotFound)

	recorder := f.http.MakeRequest(http.MethodGet, fmt.Sprintf("%s/%s", f.basePath, id), nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.CodeNotFound)
}

func TestReportHandlerList(t *testing.T) {
	f := newReportFixture(t)
	f.reports.EXPECT().
		List(gomock.Any(), f.handle, f.oc, 2, 50).
		Return(&service.ReportListResponse{Reports: []models.Report{}, Total: 51, Page: 2, PageSize: 50}, nil)

	recorder := f.http.MakeRequest(http.MethodGet, f.basePath+"?page=2&page_size=50", nil)

	var resp service.ReportListResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, int64(51), resp.Total)
}

func TestPermissionHandlerGetMyPermissions(t *testing.T) {
	f := newReportFixture(t)
	subject := service.Subject{UserID: "user-1", Role: models.RoleEmployee}
	f.perms.EXPECT().SubjectFor(gomock.Any(), f.handle, f.oc).Return(subject, nil)
	f.perms.EXPECT().GetEffectivePermissions(gomock.Any(), subject).Return(models.Capabilities{
		models.ResourceReports: {models.ActionView: true, models.ActionCreate: true},
	}, nil)

	recorder := f.http.MakeRequest(http.MethodGet, "/api/v1/me/permissions", nil)

	var resp EffectivePermissionsResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, models.RoleEmployee, resp.Role)
	assert.Equal(t, "acme", resp.Organization)
	require.Contains(t, resp.Permissions, models.ResourceReports)
	assert.True(t, resp.Permissions.Allows(models.ResourceReports, models.ActionCreate))
	assert.False(t, resp.Permissions.Allows(models.ResourceReports, models.ActionDelete))
}

func TestPermissionHandlerMissingTemplate(t *testing.T) {
	f := newReportFixture(t)
	subject := service.Subject{UserID: "user-1", Role: models.RoleEmployee}
	f.perms.EXPECT().SubjectFor(gomock.Any(), f.handle, f.oc).Return(subject, nil)
	f.perms.EXPECT().GetEffectivePermissions(gomock.Any(), subject).Return(nil, apperrors.ErrPermissionTemplateNotFound)

	recorder := f.http.MakeRequest(http.MethodGet, "/api/v1/me/permissions", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.CodeNotFound)
}

func TestPermissionHandlerRequireGatesRoute(t *testing.T) {
	f := newReportFixture(t)
	gate := NewPermissionHandler(f.perms).Require(models.ResourceOrganizations, models.ActionView)
	reached := false
	f.http.Router.GET("/api/v1/admin/organizations", withTenant(f.oc, f.handle), gate, func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	f.perms.EXPECT().
		Require(gomock.Any(), f.handle, f.oc, models.ResourceOrganizations, models.ActionView).
		Return(apperrors.ErrPermissionDenied)
	recorder := f.http.MakeRequest(http.MethodGet, "/api/v1/admin/organizations", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodePermissionDenied)
	assert.False(t, reached)

	f.perms.EXPECT().
		Require(gomock.Any(), f.handle, f.oc, models.ResourceOrganizations, models.ActionView).
		Return(nil)
	recorder = f.http.MakeRequest(http.MethodGet, "/api/v1/admin/organizations", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, reached)
}

func TestPermissionHandlerRequireNeedsTenant(t *testing.T) {
	f := newReportFixture(t)
	f.http.Router.GET("/unbound", NewPermissionHandler(f.perms).Require(models.ResourceOrganizations, models.ActionView), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := f.http.MakeRequest(http.MethodGet, "/unbound", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
