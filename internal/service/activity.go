package service

import (
	"context"
	"sync"
	"time"

	"valuation-backend/internal/database/models"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/tenant"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const activityWriteTimeout = 5 * time.Second

// ActivityEntry describes one mutating action
type ActivityEntry struct {
	UserID       string
	OrgShortName string
	Action       string
	ActionType   string
	EntityType   string
	EntityID     string
	Metadata     map[string]interface{}
}

// ActivityLogger appends entries to the tenant activity log in the background.
// Write failures are logged and dropped.
type ActivityLogger struct {
	stores repository.TenantStoreFactory
	wg     sync.WaitGroup
}

// NewActivityLogger creates a new activity logger
func NewActivityLogger(stores repository.TenantStoreFactory) *ActivityLogger {
	return &ActivityLogger{stores: stores}
}

// Log schedules the write and returns immediately
func (l *ActivityLogger) Log(h *tenant.Handle, entry ActivityEntry) {
	if h == nil || h.DB == nil {
		return
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("Activity log write panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), activityWriteTimeout)
		defer cancel()

		record := &models.ActivityLog{
			UserID:       entry.UserID,
			OrgShortName: entry.OrgShortName,
			Action:       entry.Action,
			ActionType:   entry.ActionType,
			EntityType:   entry.EntityType,
			EntityID:     entry.EntityID,
			Metadata:     datatypes.JSONMap(entry.Metadata),
		}
		if err := l.stores.ActivityLogs(h.DB).Create(ctx, record); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"org":         entry.OrgShortName,
				"action_type": entry.ActionType,
				"entity_type": entry.EntityType,
				"entity_id":   entry.EntityID,
			}).Warn("Failed to write activity log")
		}
	}()
}

// Wait blocks until every scheduled write has finished
func (l *ActivityLogger) Wait() {
	l.wg.Wait()
}
