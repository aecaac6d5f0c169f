package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"valuation-backend/internal/config"
	"valuation-backend/internal/database"
	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/service"
	"valuation-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML files under scripts/data
type BankData struct {
	BankCode  string               `yaml:"bankCode"`
	BankName  string               `yaml:"bankName"`
	IsActive  *bool                `yaml:"isActive,omitempty"`
	Templates []models.TemplateRef `yaml:"templates"`
	Branches  []models.Branch      `yaml:"branches"`
}

type TemplateStructureData struct {
	TemplateCode string       `yaml:"templateCode"`
	Version      int          `yaml:"version"`
	Tabs         []models.Tab `yaml:"tabs"`
}

type CommonFieldData struct {
	models.Field `yaml:",inline"`
	IsActive     *bool `yaml:"isActive,omitempty"`
}

type DocumentTypeData struct {
	DocumentID              string   `yaml:"documentId"`
	Name                    string   `yaml:"name"`
	Description             string   `yaml:"description"`
	IsRequired              bool     `yaml:"isRequired"`
	AcceptedFormats         []string `yaml:"acceptedFormats"`
	MaxFileSizeMB           int      `yaml:"maxFileSizeMB"`
	AllowMultiple           bool     `yaml:"allowMultiple"`
	ApplicablePropertyTypes []string `yaml:"applicablePropertyTypes"`
	ApplicableBanks         []string `yaml:"applicableBanks"`
	SortOrder               int      `yaml:"sortOrder"`
	IsActive                *bool    `yaml:"isActive,omitempty"`
}

type OrganizationData struct {
	ShortName    string `yaml:"shortName"`
	FullName     string `yaml:"fullName"`
	ContactEmail string `yaml:"contactEmail"`
	IsSystem     bool   `yaml:"isSystem"`
}

// File structures
type BanksFile struct {
	Banks []BankData `yaml:"banks"`
}

type TemplateStructuresFile struct {
	TemplateStructures []TemplateStructureData `yaml:"templateStructures"`
}

type CommonFieldsFile struct {
	CommonFields []CommonFieldData `yaml:"commonFields"`
}

type DocumentTypesFile struct {
	DocumentTypes []DocumentTypeData `yaml:"documentTypes"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	ctx := context.Background()
	if err := loadCatalogs(ctx, db, dataDir); err != nil {
		log.Fatalf("Failed to load catalogs: %v", err)
	}
	if err := loadOrganizations(ctx, db, cfg, dataDir); err != nil {
		log.Fatalf("Failed to load organizations: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// readYAMLFiles decodes every *.yaml file whose path contains marker
func readYAMLFiles[T any](dataDir, marker string) ([]T, error) {
	var files []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), marker) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		files = append(files, file)
		return nil
	})

	return files, err
}

func activeOr(flag *bool) bool {
	return flag == nil || *flag
}

// upsert inserts rows or refreshes the existing row with the same natural key
func upsert[T any](ctx context.Context, db *gorm.DB, key string, rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: key}}, UpdateAll: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func loadCatalogs(ctx context.Context, db *gorm.DB, dataDir string) error {
	bankFiles, err := readYAMLFiles[BanksFile](dataDir, "banks")
	if err != nil {
		return fmt.Errorf("failed to read banks: %w", err)
	}
	var banks []models.Bank
	for _, f := range bankFiles {
		for _, b := range f.Banks {
			banks = append(banks, models.Bank{
				BankCode:  b.BankCode,
				BankName:  b.BankName,
				IsActive:  activeOr(b.IsActive),
				Templates: datatypes.NewJSONSlice(b.Templates),
				Branches:  datatypes.NewJSONSlice(b.Branches),
			})
		}
	}
	n, err := upsert(ctx, db, "bank_code", banks)
	if err != nil {
		return fmt.Errorf("failed to store banks: %w", err)
	}
	log.Printf("🏦 Banks: %d written", n)

	structureFiles, err := readYAMLFiles[TemplateStructuresFile](dataDir, "template_structures")
	if err != nil {
		return fmt.Errorf("failed to read template structures: %w", err)
	}
	var structures []models.TemplateStructure
	for _, f := range structureFiles {
		for _, s := range f.TemplateStructures {
			version := s.Version
			if version == 0 {
				version = 1
			}
			structures = append(structures, models.TemplateStructure{
				TemplateCode: s.TemplateCode,
				Version:      version,
				Tabs:         datatypes.NewJSONType(s.Tabs),
			})
		}
	}
	n, err = upsert(ctx, db, "template_code", structures)
	if err != nil {
		return fmt.Errorf("failed to store template structures: %w", err)
	}
	log.Printf("🧩 Template structures: %d written", n)

	fieldFiles, err := readYAMLFiles[CommonFieldsFile](dataDir, "common_fields")
	if err != nil {
		return fmt.Errorf("failed to read common fields: %w", err)
	}
	var fields []models.CommonField
	for _, f := range fieldFiles {
		for _, cf := range f.CommonFields {
			fields = append(fields, models.CommonField{
				FieldID:       cf.FieldID,
				TechnicalName: cf.TechnicalName,
				UIDisplayName: cf.UIDisplayName,
				FieldType:     cf.FieldType,
				FieldGroup:    cf.FieldGroup,
				IsRequired:    cf.IsRequired,
				Placeholder:   cf.Placeholder,
				HelpText:      cf.HelpText,
				SortOrder:     cf.SortOrder,
				IsActive:      activeOr(cf.IsActive),
				Options:       datatypes.NewJSONSlice(cf.Options),
				SubFields:     datatypes.NewJSONSlice(cf.SubFields),
			})
		}
	}
	n, err = upsert(ctx, db, "field_id", fields)
	if err != nil {
		return fmt.Errorf("failed to store common fields: %w", err)
	}
	log.Printf("📝 Common fields: %d written", n)

	docFiles, err := readYAMLFiles[DocumentTypesFile](dataDir, "document_types")
	if err != nil {
		return fmt.Errorf("failed to read document types: %w", err)
	}
	var docs []models.DocumentType
	for _, f := range docFiles {
		for _, d := range f.DocumentTypes {
			docs = append(docs, models.DocumentType{
				DocumentID:              d.DocumentID,
				Name:                    d.Name,
				Description:             d.Description,
				IsRequired:              d.IsRequired,
				AcceptedFormats:         datatypes.NewJSONSlice(d.AcceptedFormats),
				MaxFileSizeMB:           d.MaxFileSizeMB,
				AllowMultiple:           d.AllowMultiple,
				ApplicablePropertyTypes: datatypes.NewJSONSlice(d.ApplicablePropertyTypes),
				ApplicableBanks:         datatypes.NewJSONSlice(d.ApplicableBanks),
				IsActive:                activeOr(d.IsActive),
				SortOrder:               d.SortOrder,
			})
		}
	}
	n, err = upsert(ctx, db, "document_id", docs)
	if err != nil {
		return fmt.Errorf("failed to store document types: %w", err)
	}
	log.Printf("📎 Document types: %d written", n)

	seeded, err := repository.NewPermissionTemplateRepository(db).SeedDefaults(ctx, models.DefaultPermissionTemplates())
	if err != nil {
		return fmt.Errorf("failed to seed permission templates: %w", err)
	}
	log.Printf("🔐 Permission templates: %d created", seeded)
	return nil
}

// loadOrganizations creates missing organizations through the lifecycle service so
// each one gets its own provisioned database.
func loadOrganizations(ctx context.Context, db *gorm.DB, cfg *config.Config, dataDir string) error {
	orgFiles, err := readYAMLFiles[OrganizationsFile](dataDir, "organizations")
	if err != nil {
		return fmt.Errorf("failed to read organizations: %w", err)
	}

	orgRepo := repository.NewOrganizationRepository(db)
	provisioner := database.NewProvisioner(db, cfg.TenantDatabaseURL, &database.Options{LogLevel: logger.Silent})
	directory := tenant.NewDirectory(orgRepo, provisioner, tenant.NewProtectedSet(cfg.ProtectedDatabaseSet()), cfg.TenantDBPrefix)
	defer directory.Close()
	orgService := service.NewOrganizationService(orgRepo, directory, provisioner, validator.New())

	created, total := 0, 0
	for _, f := range orgFiles {
		for _, o := range f.Organizations {
			total++
			_, err := orgService.Create(ctx, &service.CreateOrganizationRequest{
				ShortName:    o.ShortName,
				FullName:     o.FullName,
				ContactEmail: o.ContactEmail,
				IsSystem:     o.IsSystem,
			}, "seed")
			if errors.Is(err, apperrors.ErrOrganizationExists) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to create organization %s: %w", o.ShortName, err)
			}
			created++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", created, total)
	return nil
}
