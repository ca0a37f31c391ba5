package repositories

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.sqlite")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Message{}, &models.Admin{}))
	return db
}

func seedMessages(t *testing.T, db *gorm.DB, count int) {
	t.Helper()

	base := time.Now().Add(-time.Duration(count) * time.Minute)
	for i := 0; i < count; i++ {
		msg := models.Message{
			Name:      fmt.Sprintf("Sender %d", i+1),
			Email:     fmt.Sprintf("sender%d@example.com", i+1),
			Message:   "Hello, this is a test message.",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&msg).Error)
	}
}

func TestCreateAndListMessages(t *testing.T) {
	repo := NewMessageRepository(testDB(t))

	mobile := "9876543210"
	created, errors := repo.CreateMessage(&models.Message{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Mobile:  &mobile,
		Message: "Hello, this is a test message.",
	})
	require.Empty(t, errors)
	assert.NotZero(t, created.ID)

	response, errors := repo.GetMessagesWithPagination(1, 10)
	require.Empty(t, errors)
	require.Len(t, response.Messages, 1)

	got := response.Messages[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	require.NotNil(t, got.Mobile)
	assert.Equal(t, "9876543210", *got.Mobile)
	assert.False(t, got.ReadStatus)
}

func TestPaginationArithmetic(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)
	seedMessages(t, db, 25)

	response, errors := repo.GetMessagesWithPagination(3, 10)
	require.Empty(t, errors)

	assert.Len(t, response.Messages, 5)
	assert.Equal(t, 3, response.Pagination.CurrentPage)
	assert.Equal(t, 3, response.Pagination.TotalPages)
	assert.Equal(t, int64(25), response.Pagination.TotalMessages)
	assert.Equal(t, 10, response.Pagination.Limit)
}

func TestListMessagesNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)
	seedMessages(t, db, 3)

	response, errors := repo.GetMessagesWithPagination(1, 10)
	require.Empty(t, errors)
	require.Len(t, response.Messages, 3)

	assert.Equal(t, "Sender 3", response.Messages[0].Name)
	assert.Equal(t, "Sender 1", response.Messages[2].Name)
}

func TestListMessagesEmptyPage(t *testing.T) {
	repo := NewMessageRepository(testDB(t))

	response, errors := repo.GetMessagesWithPagination(1, 10)
	require.Empty(t, errors)
	assert.NotNil(t, response.Messages)
	assert.Empty(t, response.Messages)
	assert.Equal(t, 0, response.Pagination.TotalPages)
}

func TestMarkMessageAsRead(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)
	seedMessages(t, db, 1)

	var msg models.Message
	require.NoError(t, db.First(&msg).Error)

	require.Empty(t, repo.MarkMessageAsRead(msg.ID))

	var updated models.Message
	require.NoError(t, db.First(&updated, msg.ID).Error)
	assert.True(t, updated.ReadStatus)

	// Second call matches no unread row and reports not found
	errors := repo.MarkMessageAsRead(msg.ID)
	assert.Contains(t, errors, error(errs.ErrMessageNotFound))

	errors = repo.MarkMessageAsRead(9999)
	assert.Contains(t, errors, error(errs.ErrMessageNotFound))
}

func TestDeleteMessage(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)
	seedMessages(t, db, 2)

	var msg models.Message
	require.NoError(t, db.First(&msg).Error)

	require.Empty(t, repo.DeleteMessage(msg.ID))

	response, errors := repo.GetMessagesWithPagination(1, 10)
	require.Empty(t, errors)
	assert.Len(t, response.Messages, 1)
	for _, m := range response.Messages {
		assert.NotEqual(t, msg.ID, m.ID)
	}

	// Gone for good: repeated delete and mark-as-read both 404
	assert.Contains(t, repo.DeleteMessage(msg.ID), error(errs.ErrMessageNotFound))
	assert.Contains(t, repo.MarkMessageAsRead(msg.ID), error(errs.ErrMessageNotFound))
}

func TestGetStats(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)

	now := time.Now()
	rows := []models.Message{
		{Name: "A", Email: "a@example.com", Message: "Hello, stats test one.", CreatedAt: now},
		{Name: "B", Email: "b@example.com", Message: "Hello, stats test two.", CreatedAt: now.Add(-3 * 24 * time.Hour), ReadStatus: true},
		{Name: "C", Email: "c@example.com", Message: "Hello, stats test three.", CreatedAt: now.Add(-10 * 24 * time.Hour)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	stats, errors := repo.GetStats()
	require.Empty(t, errors)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Unread)
	assert.Equal(t, int64(1), stats.Today)
	assert.Equal(t, int64(2), stats.ThisWeek)
}

func TestInsertAdminIfAbsentIsIdempotent(t *testing.T) {
	repo := NewAdminRepository(testDB(t))

	require.NoError(t, repo.InsertAdminIfAbsent("admin@example.com", "hash-one"))

	// A different configured password must never overwrite the
	// existing hash
	require.NoError(t, repo.InsertAdminIfAbsent("admin@example.com", "hash-two"))

	admin := repo.FindAdminByEmail("admin@example.com")
	require.NotNil(t, admin)
	assert.Equal(t, "hash-one", admin.PasswordHash)

	var count int64
	require.NoError(t, repo.db.Model(&models.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFindAdminByEmailMissing(t *testing.T) {
	repo := NewAdminRepository(testDB(t))
	assert.Nil(t, repo.FindAdminByEmail("nobody@example.com"))
}
