package tenant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"valuation-backend/internal/database"
	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var shortNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{1,39}$`)

// Handle is a resolved tenant: the organization identity plus its dedicated database
type Handle struct {
	OrganizationID uuid.UUID
	ShortName      string
	DatabaseName   string
	DB             *gorm.DB
}

// OrganizationLookup finds organization records in the admin database
type OrganizationLookup interface {
	GetByShortName(ctx context.Context, shortName string) (*models.Organization, error)
}

// Opener opens pooled connections to tenant databases
type Opener interface {
	Open(dbName string) (*gorm.DB, error)
}

// ProtectedSet is the immutable set of database names no organization may bind to
type ProtectedSet struct {
	names map[string]struct{}
}

// NewProtectedSet builds the set; names are compared case-insensitively
func NewProtectedSet(names []string) ProtectedSet {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	return ProtectedSet{names: set}
}

// Contains reports whether name is protected
func (p ProtectedSet) Contains(name string) bool {
	_, ok := p.names[strings.ToLower(name)]
	return ok
}

type handleMap map[string]*Handle

// DefaultCloseGrace is how long an invalidated handle's pool stays open for callers still holding it
const DefaultCloseGrace = 30 * time.Second

// Directory maps organization short names to tenant handles. Reads go through an
// atomically swapped map; writers copy it under mu.
type Directory struct {
	orgs      OrganizationLookup
	opener    Opener
	protected ProtectedSet
	prefix    string

	mu         sync.Mutex
	cache      atomic.Pointer[handleMap]
	closeGrace time.Duration
	retired    map[*Handle]*time.Timer
}

// NewDirectory creates a directory binding organizations to "<prefix><shortName>" databases
func NewDirectory(orgs OrganizationLookup, opener Opener, protected ProtectedSet, prefix string) *Directory {
	d := &Directory{
		orgs:       orgs,
		opener:     opener,
		protected:  protected,
		prefix:     prefix,
		closeGrace: DefaultCloseGrace,
		retired:    make(map[*Handle]*time.Timer),
	}
	empty := handleMap{}
	d.cache.Store(&empty)
	return d
}

// SetCloseGrace changes the delay before an invalidated pool is closed. Zero closes at once.
func (d *Directory) SetCloseGrace(grace time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeGrace = grace
}

// ValidateShortName checks the organization short name format
func ValidateShortName(shortName string) error {
	if !shortNamePattern.MatchString(shortName) {
		return apperrors.ErrInvalidShortName
	}
	return nil
}

// DatabaseNameFor returns the tenant database name for a short name
func (d *Directory) DatabaseNameFor(shortName string) string {
	return d.prefix + shortName
}

// CheckBindable rejects database names an organization must never use
func (d *Directory) CheckBindable(dbName string) error {
	if d.protected.Contains(dbName) {
		return apperrors.ErrProtectedDatabase
	}
	if err := database.ValidateDatabaseName(dbName); err != nil {
		return apperrors.NewValidationError("databaseName", err.Error())
	}
	return nil
}

// IsProtected reports whether dbName belongs to the protected set
func (d *Directory) IsProtected(dbName string) bool {
	return d.protected.Contains(dbName)
}

// Resolve returns the handle of an active organization, opening its database on first use
func (d *Directory) Resolve(ctx context.Context, shortName string) (*Handle, error) {
	if h, ok := (*d.cache.Load())[shortName]; ok {
		return h, nil
	}

	org, err := d.orgs.GetByShortName(ctx, shortName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("lookup organization %s: %w", shortName, err)
	}
	if !org.IsActive {
		return nil, apperrors.ErrOrganizationNotFound
	}
	if d.protected.Contains(org.DatabaseName) {
		logrus.WithFields(logrus.Fields{"org": shortName, "database": org.DatabaseName}).
			Error("Organization is bound to a protected database")
		return nil, apperrors.ErrProtectedDatabase
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.cache.Load()
	if h, ok := (*current)[shortName]; ok {
		return h, nil
	}

	db, err := d.opener.Open(org.DatabaseName)
	if err != nil {
		return nil, err
	}
	h := &Handle{
		OrganizationID: org.ID,
		ShortName:      org.ShortName,
		DatabaseName:   org.DatabaseName,
		DB:             db,
	}

	next := make(handleMap, len(*current)+1)
	for k, v := range *current {
		next[k] = v
	}
	next[shortName] = h
	d.cache.Store(&next)

	return h, nil
}

// Invalidate drops the cached handle of an organization. Its pool is closed once the
// close grace has passed, so requests already holding the handle can finish.
func (d *Directory) Invalidate(shortName string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.cache.Load()
	h, ok := (*current)[shortName]
	if !ok {
		return
	}

	next := make(handleMap, len(*current))
	for k, v := range *current {
		if k != shortName {
			next[k] = v
		}
	}
	d.cache.Store(&next)

	if d.closeGrace <= 0 {
		closePool(h)
		return
	}
	d.retired[h] = time.AfterFunc(d.closeGrace, func() {
		d.mu.Lock()
		_, pending := d.retired[h]
		delete(d.retired, h)
		d.mu.Unlock()
		if pending {
			closePool(h)
		}
	})
}

func closePool(h *Handle) {
	if err := database.Close(h.DB); err != nil {
		logrus.WithError(err).WithField("org", h.ShortName).Warn("Failed to close tenant pool")
	}
}

// Len returns the number of cached handles
func (d *Directory) Len() int {
	return len(*d.cache.Load())
}

// Close releases every cached tenant pool and any invalidated pool still in its grace period
func (d *Directory) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, h := range *d.cache.Load() {
		closePool(h)
	}
	for h, timer := range d.retired {
		timer.Stop()
		closePool(h)
	}
	d.retired = make(map[*Handle]*time.Timer)
	empty := handleMap{}
	d.cache.Store(&empty)
}
