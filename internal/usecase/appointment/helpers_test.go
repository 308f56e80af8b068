package appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mariananails/salon-booking/internal/audit"
	dbpkg "github.com/mariananails/salon-booking/internal/db"
	domain "github.com/mariananails/salon-booking/internal/domain/appointment"
	"github.com/mariananails/salon-booking/internal/infra/repository"
	"github.com/mariananails/salon-booking/internal/logging"
	"github.com/mariananails/salon-booking/internal/models"
	"github.com/mariananails/salon-booking/internal/timezone"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func newRepo(t *testing.T, db *gorm.DB) *repository.AppointmentGormRepository {
	t.Helper()
	return repository.NewAppointmentGormRepository(db)
}

func newDispatcher(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db), logging.Default())
}

func seedService(t *testing.T, db *gorm.DB, price string) *models.Service {
	t.Helper()

	svc := &models.Service{
		Name:        "Manicuría clásica",
		Description: "Corte, limado y esmaltado",
		DurationMin: 60,
		Price:       decimal.RequireFromString(price),
		Active:      true,
	}
	require.NoError(t, db.Create(svc).Error)
	return svc
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	u := &models.User{
		Name:         "Caro",
		LastName:     "Pérez",
		Email:        fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano()),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// racingRepo simulates two submissions reading the same free-slot snapshot:
// the advisory check never sees a taken slot, so only the unique index can
// arbitrate.
type racingRepo struct {
	domain.Repository
}

func (r *racingRepo) TakenSlots(ctx context.Context, date string) ([]string, error) {
	return nil, nil
}

func futureDate(days int) string {
	return timezone.Today().AddDate(0, 0, days).Format(timezone.DateLayout)
}
