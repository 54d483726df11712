//go:build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amaliagrey/blog-platform/internal/database"
	"github.com/amaliagrey/blog-platform/internal/models"
)

// Verifies the schema and its unique constraints behave the same on
// the server-backed driver as on the default sqlite store.
func TestPostgresMigrationAndConstraints(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("blog"),
		tcpostgres.WithUsername("blog"),
		tcpostgres.WithPassword("blog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	user := models.User{Email: "a@x.com", Name: "Ada", PasswordHash: "h"}
	require.NoError(t, db.Create(&user).Error)

	dup := models.User{Email: "a@x.com", Name: "Eve", PasswordHash: "h"}
	assert.ErrorIs(t, db.Create(&dup).Error, gorm.ErrDuplicatedKey)

	post := models.Post{Title: "Hello", Date: "April 05, 2024", Body: "b", AuthorID: user.ID}
	require.NoError(t, db.Create(&post).Error)
	assert.ErrorIs(t, db.Create(&models.Post{
		Title: "Hello", Date: "April 06, 2024", Body: "c", AuthorID: user.ID,
	}).Error, gorm.ErrDuplicatedKey)
}
