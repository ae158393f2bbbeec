package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
)

// ContactService handles customer and supplier records
type ContactService struct {
	contactRepo partner.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo partner.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Create creates a new contact
func (s *ContactService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	contact, err := partner.NewContact(req.Name, partner.ContactType(req.Type))
	if err != nil {
		return nil, err
	}
	if req.Phone != "" || req.Email != "" || req.Address != "" {
		if err := contact.SetDetails(req.Phone, req.Email, req.Address); err != nil {
			return nil, err
		}
	}
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	response := ToContactResponse(contact)
	return &response, nil
}

// GetByID retrieves a contact
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToContactResponse(contact)
	return &response, nil
}

// List retrieves contacts with filtering and pagination
func (s *ContactService) List(ctx context.Context, filter ContactListFilter) ([]ContactResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	contacts, err := s.contactRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contactRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToContactResponses(contacts), total, nil
}

// Update updates a contact's details. Contact type is fixed at
// creation; a supplier does not become a customer by edit.
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req UpdateContactRequest) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := contact.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Phone != nil || req.Email != nil || req.Address != nil {
		phone := contact.Phone
		if req.Phone != nil {
			phone = *req.Phone
		}
		email := contact.Email
		if req.Email != nil {
			email = *req.Email
		}
		address := contact.Address
		if req.Address != nil {
			address = *req.Address
		}
		if err := contact.SetDetails(phone, email, address); err != nil {
			return nil, err
		}
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	response := ToContactResponse(contact)
	return &response, nil
}

// Delete removes a contact
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.contactRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.contactRepo.Delete(ctx, id)
}
