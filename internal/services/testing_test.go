// internal/services/testing_test.go
package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agntslab/marketplace-backend/internal/models"
	"github.com/agntslab/marketplace-backend/internal/payments"
)

// newTestDB opens an isolated in-memory database with the full schema. The
// pool is pinned to a single connection so the memory database survives for
// the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Agent{},
		&models.Purchase{},
		&models.Review{},
		&models.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	email := id + "@example.com"
	user := &models.User{
		ID:    id,
		Email: &email,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

type testAgentOptions struct {
	Name        string
	Description string
	Price       string
	IsFree      bool
	IsActive    bool
	CategoryID  *uint
	Model       string
	Runtime     string
	Integration string
	DownloadURL string
	CreatedAt   time.Time
}

func createTestAgent(t *testing.T, db *gorm.DB, vendorID string, opts testAgentOptions) *models.Agent {
	t.Helper()

	price := decimal.Zero
	if opts.Price != "" {
		var err error
		price, err = decimal.NewFromString(opts.Price)
		if err != nil {
			t.Fatalf("bad test price %q: %v", opts.Price, err)
		}
	}

	if opts.Name == "" {
		opts.Name = "Test Agent"
	}
	if opts.Description == "" {
		opts.Description = "A test agent"
	}
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = time.Now()
	}

	agent := &models.Agent{
		Name:        opts.Name,
		Description: opts.Description,
		Price:       price,
		IsFree:      opts.IsFree,
		CategoryID:  opts.CategoryID,
		VendorID:    vendorID,
		Model:       opts.Model,
		Runtime:     opts.Runtime,
		Integration: opts.Integration,
		DownloadURL: opts.DownloadURL,
		Rating:      decimal.Zero,
		IsActive:    opts.IsActive,
		CreatedAt:   opts.CreatedAt,
	}
	if err := db.Create(agent).Error; err != nil {
		t.Fatalf("failed to create test agent: %v", err)
	}
	return agent
}

// fakeGateway records the last intent request and returns canned responses.
type fakeGateway struct {
	fail         bool
	lastAmount   int64
	lastCurrency string
	lastMetadata map[string]string
	references   []string
}

func (g *fakeGateway) CreateIntent(amountMinorUnits int64, currency string, metadata map[string]string) (*payments.Intent, error) {
	if g.fail {
		return nil, payments.ErrGatewayUnavailable
	}

	g.lastAmount = amountMinorUnits
	g.lastCurrency = currency
	g.lastMetadata = metadata

	reference := "pi_test_" + currency
	g.references = append(g.references, reference)

	return &payments.Intent{
		Reference:    reference,
		ClientSecret: reference + "_secret",
	}, nil
}

func (g *fakeGateway) VerifyEvent(payload []byte, signature string) (*payments.Event, error) {
	return nil, payments.ErrInvalidSignature
}
