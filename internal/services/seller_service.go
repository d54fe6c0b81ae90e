package services

import (
	"strings"

	"bukuku/internal/domain"
	"bukuku/internal/repos"
	"bukuku/internal/validate"
)

// DefaultCommissionRate applies when registration omits a rate.
const DefaultCommissionRate = 10

// approveStatuses is deliberately narrower than the full seller state set:
// the storefront also submits 'rejected' and 'suspended', but the backend
// contract only ever accepted these two. Widening it is a product decision,
// not a bug fix.
var approveStatuses = map[string]bool{
	domain.SellerPending:  true,
	domain.SellerApproved: true,
}

type SellerService struct {
	Sellers *repos.SellerRepo
}

func NewSellerService(sellers *repos.SellerRepo) *SellerService {
	return &SellerService{Sellers: sellers}
}

type SellerRegistration struct {
	StoreName      string   `json:"store_name"`
	OwnerName      string   `json:"owner_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	CommissionRate *float64 `json:"commission_rate"`
}

// Register inserts a new seller in the 'pending' state and returns its id.
func (s *SellerService) Register(in SellerRegistration) (int64, error) {
	storeName := strings.TrimSpace(in.StoreName)
	ownerName := strings.TrimSpace(in.OwnerName)
	if storeName == "" || ownerName == "" || strings.TrimSpace(in.Email) == "" {
		return 0, invalid("missing required fields")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return 0, invalid("invalid email address")
	}
	rate := float64(DefaultCommissionRate)
	if in.CommissionRate != nil {
		rate = *in.CommissionRate
		if rate < 0 || rate > 100 {
			return 0, invalid("commission_rate must be between 0 and 100")
		}
	}
	return s.Sellers.Insert(storeName, ownerName, email,
		strings.TrimSpace(in.Phone), strings.TrimSpace(in.Address), rate)
}

func (s *SellerService) List() ([]domain.Seller, error) {
	return s.Sellers.List()
}

// SetStatus overwrites a seller's status. The current state is not consulted.
func (s *SellerService) SetStatus(id int64, status string) error {
	if id <= 0 || !approveStatuses[status] {
		return invalid("invalid id or status")
	}
	ok, err := s.Sellers.SetStatus(id, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSellerNotFound
	}
	return nil
}

// Delete removes a seller permanently. No soft-delete, no cascade.
func (s *SellerService) Delete(id int64) error {
	if id <= 0 {
		return invalid("invalid id")
	}
	ok, err := s.Sellers.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSellerNotFound
	}
	return nil
}
