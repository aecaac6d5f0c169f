package service

import (
	"errors"
	"fmt"

	apperrors "valuation-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError turns validator output into the first failing field as a ValidationError
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("request", err.Error())
}

// normalizePagination clamps page and page size to sane bounds
func normalizePagination(page, pageSize int) (limit, offset, normalizedPage int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize, page
}
