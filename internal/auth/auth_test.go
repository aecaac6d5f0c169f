package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/mocks"
	"valuation-backend/internal/tenant"
	"valuation-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-signing-key"

func testOrgContext() *tenant.OrganizationContext {
	return &tenant.OrganizationContext{
		OrganizationID: uuid.New(),
		OrgShortName:   "acme",
		UserID:         "user-1",
		Roles:          []string{"manager"},
	}
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService("", time.Hour)
	assert.Error(t, err)

	svc, err := NewAuthService(testSecret, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.ttl)
}

func TestJWTRoundTrip(t *testing.T) {
	svc, err := NewAuthService(testSecret, time.Minute)
	require.NoError(t, err)
	oc := testOrgContext()

	token, err := svc.GenerateJWT(oc)
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)

	got, err := claims.OrganizationContext()
	require.NoError(t, err)
	assert.Equal(t, oc.OrganizationID, got.OrganizationID)
	assert.Equal(t, oc.OrgShortName, got.OrgShortName)
	assert.Equal(t, oc.Roles, got.Roles)
}

func TestValidateJWTRejects(t *testing.T) {
	svc, err := NewAuthService(testSecret, time.Minute)
	require.NoError(t, err)
	oc := testOrgContext()

	sign := func(method jwt.SigningMethod, key interface{}, claims *AuthClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	base := func() *AuthClaims {
		return &AuthClaims{
			OrganizationID: oc.OrganizationID.String(),
			OrgShortName:   oc.OrgShortName,
			Roles:          oc.Roles,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   oc.UserID,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
	}

	expired := base()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	foreignIssuer := base()
	foreignIssuer.Issuer = "someone-else"

	noExpiry := base()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("other-key"), base())},
		{"expired", sign(jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"foreign issuer", sign(jwt.SigningMethodHS256, []byte(testSecret), foreignIssuer)},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, base())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateJWT(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestClaimsOrganizationContext(t *testing.T) {
	claims := &AuthClaims{OrgShortName: "acme", OrganizationID: "not-a-uuid"}
	claims.Subject = "user-1"
	_, err := claims.OrganizationContext()
	assert.Error(t, err)

	claims = &AuthClaims{OrganizationID: uuid.NewString()}
	claims.Subject = "user-1"
	_, err = claims.OrganizationContext()
	assert.Error(t, err)

	claims = &AuthClaims{OrganizationID: uuid.NewString(), OrgShortName: "acme"}
	_, err = claims.OrganizationContext()
	assert.Error(t, err)
}

type middlewareFixture struct {
	http     *testutils.HTTPTestSuite
	resolver *mocks.MockTenantDirectory
	service  *AuthService
}

func newMiddlewareFixture(t *testing.T) *middlewareFixture {
	ctrl := gomock.NewController(t)
	svc, err := NewAuthService(testSecret, time.Minute)
	require.NoError(t, err)

	f := &middlewareFixture{
		http:     testutils.SetupHTTPTest(),
		resolver: mocks.NewMockTenantDirectory(ctrl),
		service:  svc,
	}
	mw := NewAuthMiddleware(svc, f.resolver)

	echo := func(c *gin.Context) {
		oc, _ := GetOrganizationContext(c)
		h, _ := GetTenantHandle(c)
		fromRequest, _ := tenant.FromContext(c.Request.Context())
		userID, _ := GetUserID(c)
		resp := gin.H{"org": oc.OrgShortName, "user": userID, "requestCtx": fromRequest == oc}
		if h != nil {
			resp["db"] = h.DatabaseName
		}
		c.JSON(http.StatusOK, resp)
	}

	api := f.http.Router.Group("/api", mw.RequireAuth())
	api.GET("/me", mw.RequireOrganization(), echo)
	api.GET("/orgs/:org/things", mw.RequireOrganization(), echo)
	return f
}

func (f *middlewareFixture) token(t *testing.T, oc *tenant.OrganizationContext) string {
	token, err := f.service.GenerateJWT(oc)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	f := newMiddlewareFixture(t)

	recorder := f.http.MakeRequest(http.MethodGet, "/api/me", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, apperrors.CodePermissionDenied)

	recorder = f.http.MakeRequestWithHeaders(http.MethodGet, "/api/me", nil, map[string]string{"Authorization": "Token abc"})
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, apperrors.CodePermissionDenied)

	recorder = f.http.MakeAuthorizedRequest(http.MethodGet, "/api/me", "broken", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, apperrors.CodePermissionDenied)
}

func TestRequireOrganization(t *testing.T) {
	oc := testOrgContext()
	handle := &tenant.Handle{OrganizationID: oc.OrganizationID, ShortName: "acme", DatabaseName: "valuation_org_acme"}

	t.Run("own organization", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any(), "acme").Return(handle, nil)

		var body map[string]interface{}
		recorder := f.http.MakeAuthorizedRequest(http.MethodGet, "/api/orgs/acme/things", f.token(t, oc), nil)
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "acme", body["org"])
		assert.Equal(t, "user-1", body["user"])
		assert.Equal(t, "valuation_org_acme", body["db"])
		assert.Equal(t, true, body["requestCtx"])
	})

	t.Run("token organization when path has none", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any(), "acme").Return(handle, nil)

		recorder := f.http.MakeAuthorizedRequest(http.MethodGet, "/api/me", f.token(t, oc), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("other organization", func(t *testing.T) {
		f := newMiddlewareFixture(t)

		recorder := f.http.MakeAuthorizedRequest(http.MethodGet, "/api/orgs/globex/things", f.token(t, oc), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodeOrganizationMismatch)
	})

	t.Run("short name now bound to another organization", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		recreated := &tenant.Handle{OrganizationID: uuid.New(), ShortName: "acme", DatabaseName: "valuation_org_acme"}
		f.resolver.EXPECT().Resolve(gomock.Any(), "acme").Return(recreated, nil)

		recorder := f.http.MakeAuthorizedRequest(http.MethodGet, "/api/orgs/acme/things", f.token(t, oc), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodeOrganizationMismatch)

		f.resolver.EXPECT().Resolve(gomock.Any(), "acme").Return(recreated, nil)
		recorder = f.http.MakeAuthorizedRequest(http.MethodGet, "/api/me", f.token(t, oc), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodeOrganizationMismatch)
	})

	t.Run("deactivated organization", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any(), "acme").Return(nil, apperrors.ErrOrganizationNotFound)

		recorder := f.http.MakeAuthorizedRequest(http.MethodGet, "/api/orgs/acme/things", f.token(t, oc), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.CodeNotFound)
	})

	t.Run("protected database", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any(), "acme").Return(nil, apperrors.ErrProtectedDatabase)

		recorder := f.http.MakeAuthorizedRequest(http.MethodGet, "/api/orgs/acme/things", f.token(t, oc), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodePermissionDenied)
	})

	t.Run("resolver failure", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any(), "acme").Return(nil, context.DeadlineExceeded)

		recorder := f.http.MakeAuthorizedRequest(http.MethodGet, "/api/orgs/acme/things", f.token(t, oc), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, apperrors.CodeInternal)
	})
}

func TestValidateTokenHandler(t *testing.T) {
	svc, err := NewAuthService(testSecret, time.Minute)
	require.NoError(t, err)
	h := testutils.SetupHTTPTest()
	h.Router.POST("/validate", NewAuthHandler(svc).ValidateToken)

	token, err := svc.GenerateJWT(testOrgContext())
	require.NoError(t, err)

	var resp AuthValidateResponse
	recorder := h.MakeAuthorizedRequest(http.MethodPost, "/validate", token, nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.True(t, resp.Valid)
	assert.Equal(t, "acme", resp.Organization.OrgShortName)

	recorder = h.MakeAuthorizedRequest(http.MethodPost, "/validate", "nope", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, apperrors.CodePermissionDenied)
}
