package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"valuation-backend/internal/config"
	"valuation-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// Shared, process-wide resources
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
	sharedHostPort string
)

const (
	testUser     = "testuser"
	testPassword = "testpass"
	testAdminDB  = "testdb"
)

// BaseTestSuite holds the admin database connection shared by integration suites
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite initializes (once) the shared Postgres container and returns a per-suite wrapper.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer tears down Docker resources when the whole test run ends.
func CleanupSharedContainer() {
	log.Println("Starting Docker container cleanup...")
	if sharedDB != nil {
		_ = database.Close(sharedDB)
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
		sharedResource = nil
		sharedPool = nil
		sharedDB = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only cleans tables; the container outlives individual suites.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the admin catalog tables if they exist
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	truncate(s.DB, []string{
		"permission_templates",
		"document_types",
		"common_form_fields",
		"template_structures",
		"banks",
		"organizations",
	})
}

// NewProvisioner returns a provisioner creating tenant databases in the shared container
func (s *BaseTestSuite) NewProvisioner() *database.Provisioner {
	return database.NewProvisioner(s.DB, s.Config.TenantDatabaseURL, nil)
}

// CreateTenantDB provisions a throwaway tenant database and drops it when the test ends
func (s *BaseTestSuite) CreateTenantDB(t *testing.T, dbName string) *gorm.DB {
	t.Helper()
	p := s.NewProvisioner()
	ctx := context.Background()

	_ = p.Drop(ctx, dbName)
	if err := p.Create(ctx, dbName); err != nil {
		t.Fatalf("provision tenant database %s: %v", dbName, err)
	}
	db, err := p.Open(dbName)
	if err != nil {
		t.Fatalf("open tenant database %s: %v", dbName, err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
		_ = p.Drop(ctx, dbName)
	})
	return db
}

func truncate(db *gorm.DB, tables []string) {
	m := db.Migrator()
	db.Exec(`SET session_replication_role = replica;`)
	for _, t := range tables {
		if m.HasTable(t) {
			db.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
	db.Exec(`SET session_replication_role = DEFAULT;`)
}

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=" + testPassword,
			"POSTGRES_USER=" + testUser,
			"POSTGRES_DB=" + testAdminDB,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource
	sharedHostPort = resource.GetPort("5432/tcp")

	sharedConfig = &config.Config{
		Environment:      "test",
		Port:             "8080",
		LogLevel:         "debug",
		DatabaseHost:     "127.0.0.1",
		DatabasePort:     sharedHostPort,
		DatabaseUser:     testUser,
		DatabasePassword: testPassword,
		DatabaseName:     testAdminDB,
		DatabaseSSLMode:  "disable",
		TenantDBPrefix:   "valuation_org_",
		JWTSecret:        "test-secret",
	}
	sharedConfig.DatabaseURL = sharedConfig.TenantDatabaseURL(testAdminDB)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx",
			fmt.Sprintf("host=127.0.0.1 port=%s user=%s password=%s dbname=%s sslmode=disable", sharedHostPort, testUser, testPassword, testAdminDB),
		)
		if err != nil {
			return err
		}
		defer std.Close()

		deadline := time.Now().Add(15 * time.Second)
		for {
			if err := std.Ping(); err == nil {
				break
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("postgres not ready to accept connections")
			}
			time.Sleep(250 * time.Millisecond)
		}

		gdb, err := database.Initialize(sharedConfig.DatabaseURL, nil)
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	log.Printf("Shared Postgres ready on %s", sharedHostPort)
	return nil
}
