package services

import (
	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
	"portfolioBackend/internal/repositories"
	"portfolioBackend/internal/validators"
)

type MessageService struct {
	messageRepo *repositories.MessageRepository
}

func NewMessageService(messageRepo *repositories.MessageRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
	}
}

// SubmitMessage validates a contact form submission and stores it.
// Validation failures come back as the full list of field errors and
// nothing is written.
func (ms *MessageService) SubmitMessage(contactData *models.ContactRequestBody) (*models.Message, []error) {
	validationErrs := validators.ValidateContactRequest(contactData)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}

	message := &models.Message{
		Name:    contactData.Name,
		Email:   contactData.Email,
		Message: contactData.Message,
	}
	if contactData.Mobile != "" {
		mobile := contactData.Mobile
		message.Mobile = &mobile
	}

	return ms.messageRepo.CreateMessage(message)
}

func (ms *MessageService) GetMessagesWithPagination(page, limit int) (*models.MessageListResponse, []error) {
	var errors []error
	if page < 1 || limit < 1 {
		errors = append(errors, errs.ErrInvalidParams)
		return nil, errors
	}
	return ms.messageRepo.GetMessagesWithPagination(page, limit)
}

func (ms *MessageService) MarkMessageAsRead(id uint) []error {
	return ms.messageRepo.MarkMessageAsRead(id)
}

func (ms *MessageService) DeleteMessage(id uint) []error {
	return ms.messageRepo.DeleteMessage(id)
}

func (ms *MessageService) GetStats() (*models.Stats, []error) {
	return ms.messageRepo.GetStats()
}
