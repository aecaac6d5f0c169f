package service_test

import (
	"context"
	"errors"
	"testing"

	"valuation-backend/internal/database/models"
	"valuation-backend/internal/mocks"
	"valuation-backend/internal/service"
	"valuation-backend/internal/tenant"
	"valuation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestActivityLoggerWritesEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	stores := mocks.NewMockTenantStoreFactory(ctrl)
	logs := mocks.NewMockActivityLogRepositoryInterface(ctrl)
	h := &tenant.Handle{OrganizationID: uuid.New(), ShortName: "acme", DB: testutils.OfflineDB(t)}

	stores.EXPECT().ActivityLogs(h.DB).Return(logs)
	logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, entry *models.ActivityLog) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		assert.Equal(t, "acme", entry.OrgShortName)
		assert.Equal(t, "custom_template", entry.EntityType)
		assert.Equal(t, "SBI", entry.Metadata["bankCode"])
		return nil
	})

	logger := service.NewActivityLogger(stores)
	logger.Log(h, service.ActivityEntry{
		UserID:       "user-1",
		OrgShortName: "acme",
		Action:       "Created custom template Std",
		ActionType:   "create",
		EntityType:   "custom_template",
		EntityID:     uuid.NewString(),
		Metadata:     map[string]interface{}{"bankCode": "SBI"},
	})
	logger.Wait()
}

func TestActivityLoggerSwallowsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	stores := mocks.NewMockTenantStoreFactory(ctrl)
	logs := mocks.NewMockActivityLogRepositoryInterface(ctrl)
	h := &tenant.Handle{ShortName: "acme", DB: testutils.OfflineDB(t)}

	stores.EXPECT().ActivityLogs(h.DB).Return(logs)
	logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("relation does not exist"))

	logger := service.NewActivityLogger(stores)
	assert.NotPanics(t, func() {
		logger.Log(h, service.ActivityEntry{OrgShortName: "acme", ActionType: "delete"})
		logger.Wait()
	})
}

func TestActivityLoggerIgnoresMissingHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	stores := mocks.NewMockTenantStoreFactory(ctrl)

	logger := service.NewActivityLogger(stores)
	logger.Log(nil, service.ActivityEntry{ActionType: "create"})
	logger.Wait()
}
