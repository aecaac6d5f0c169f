package tenant

import (
	"context"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"

	"github.com/google/uuid"
)

// OrganizationContext is the authenticated caller: who they are and which organization they act for
type OrganizationContext struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	OrgShortName   string    `json:"org_short_name"`
	UserID         string    `json:"user_id"`
	Roles          []string  `json:"roles"`
}

// PrimaryRole returns the highest-privilege role held by the caller
func (oc *OrganizationContext) PrimaryRole() models.Role {
	return models.PrimaryRole(oc.Roles)
}

// Authorize checks that the organization addressed by the request is the caller's own
func Authorize(oc *OrganizationContext, orgShortName string) error {
	if oc == nil || oc.OrgShortName == "" {
		return apperrors.ErrMissingOrganizationCtx
	}
	if oc.OrgShortName != orgShortName {
		return apperrors.ErrOrganizationMismatch
	}
	return nil
}

// AuthorizeHandle checks that a resolved tenant belongs to the caller's organization.
// Short names can be reused after a hard delete, so the ids must match as well.
func AuthorizeHandle(oc *OrganizationContext, h *Handle) error {
	if oc == nil || oc.OrganizationID == uuid.Nil {
		return apperrors.ErrMissingOrganizationCtx
	}
	if h == nil || h.OrganizationID != oc.OrganizationID || h.ShortName != oc.OrgShortName {
		return apperrors.ErrOrganizationMismatch
	}
	return nil
}

type ctxKey struct{}

// WithOrganizationContext stores oc on ctx
func WithOrganizationContext(ctx context.Context, oc *OrganizationContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, oc)
}

// FromContext returns the organization context stored on ctx
func FromContext(ctx context.Context) (*OrganizationContext, bool) {
	oc, ok := ctx.Value(ctxKey{}).(*OrganizationContext)
	return oc, ok && oc != nil
}
