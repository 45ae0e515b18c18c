package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Each user may keep at most this many contacts of one type
const maxContactsPerType = 5

// ContactService manages a user's delivery contacts
type ContactService struct {
	contactRepo identity.ContactRepository
	logger      *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(contactRepo identity.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// AddContact creates a new delivery contact for a user
func (s *ContactService) AddContact(ctx context.Context, input AddContactInput) (*ContactInfo, error) {
	contact, err := identity.NewContact(input.UserID, input.Type, input.Value)
	if err != nil {
		return nil, err
	}

	count, err := s.contactRepo.CountByUserAndType(ctx, input.UserID, input.Type)
	if err != nil {
		s.logger.Error("Failed to count contacts", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add contact")
	}
	if count >= maxContactsPerType {
		return nil, shared.NewDomainError("CONTACT_LIMIT", "Too many contacts of this type")
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		s.logger.Error("Failed to save contact", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add contact")
	}

	info := newContactInfo(contact)
	return &info, nil
}

// ListContacts returns all contacts of a user
func (s *ContactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]ContactInfo, error) {
	contacts, err := s.contactRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list contacts", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list contacts")
	}

	infos := make([]ContactInfo, len(contacts))
	for i := range contacts {
		infos[i] = newContactInfo(&contacts[i])
	}
	return infos, nil
}

// DeleteContacts removes the given contacts if they belong to the user,
// returning how many were deleted
func (s *ContactService) DeleteContacts(ctx context.Context, input DeleteContactsInput) (int64, error) {
	if len(input.IDs) == 0 {
		return 0, shared.NewDomainError("INVALID_INPUT", "No contact IDs provided")
	}

	deleted, err := s.contactRepo.DeleteByIDsForUser(ctx, input.UserID, input.IDs)
	if err != nil {
		s.logger.Error("Failed to delete contacts", zap.Error(err))
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to delete contacts")
	}

	return deleted, nil
}
