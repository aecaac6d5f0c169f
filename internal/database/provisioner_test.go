package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDatabaseName(t *testing.T) {
	valid := []string{"valuation_org_acme", "a", "org_2024"}
	for _, name := range valid {
		assert.NoError(t, ValidateDatabaseName(name), name)
	}

	invalid := []string{"", "Acme", "1org", `org"; DROP DATABASE x; --`, "org-name", "org name"}
	for _, name := range invalid {
		assert.Error(t, ValidateDatabaseName(name), name)
	}
}
