package repositories

import (
	"time"

	"gorm.io/gorm"

	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
	"portfolioBackend/internal/utils"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

func (mr *MessageRepository) CreateMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	result := mr.db.Create(message)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return message, nil
}

// GetMessagesWithPagination returns one page of messages, newest first,
// together with the total count. Both queries run in one transaction so
// the pagination metadata matches the page it describes.
func (mr *MessageRepository) GetMessagesWithPagination(page, limit int) (*models.MessageListResponse, []error) {
	var errors []error
	var messages []models.Message
	var total int64

	transactionErr := mr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, limit)).
			Order("created_at DESC").
			Find(&messages).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Message{}).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	if messages == nil {
		messages = []models.Message{}
	}

	return &models.MessageListResponse{
		Success:  true,
		Messages: messages,
		Pagination: models.Pagination{
			CurrentPage:   page,
			TotalPages:    utils.TotalPages(total, limit),
			TotalMessages: total,
			Limit:         limit,
		},
	}, nil
}

// MarkMessageAsRead flips read_status for an unread message. A message
// that is missing or already read affects zero rows and reports
// ErrMessageNotFound, matching the admin dashboard contract.
func (mr *MessageRepository) MarkMessageAsRead(id uint) []error {
	var errors []error
	result := mr.db.
		Model(&models.Message{}).
		Where("id = ? AND read_status = ?", id, false).
		Update("read_status", true)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrMessageNotFound)
		return errors
	}
	return nil
}

func (mr *MessageRepository) DeleteMessage(id uint) []error {
	var errors []error
	result := mr.db.Delete(&models.Message{}, id)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrMessageNotFound)
		return errors
	}
	return nil
}

// GetStats computes the dashboard counters. Any failed count fails the
// whole call rather than degrading silently to zero.
func (mr *MessageRepository) GetStats() (*models.Stats, []error) {
	var errors []error
	stats := &models.Stats{}

	now := time.Now()
	year, month, day := now.Date()
	todayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -7)

	transactionErr := mr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Message{}).
			Count(&stats.Total).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Message{}).
			Where("read_status = ?", false).
			Count(&stats.Unread).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Message{}).
			Where("created_at >= ?", todayStart).
			Count(&stats.Today).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Message{}).
			Where("created_at >= ?", weekStart).
			Count(&stats.ThisWeek).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	return stats, nil
}
