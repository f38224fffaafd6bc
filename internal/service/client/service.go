package client

import (
	"context"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/client"
)

type ClientService interface {
	Create(ctx context.Context, req *client.CreateRequest) (*client.Response, error)
	Get(ctx context.Context, id string) (*client.Response, error)
	List(ctx context.Context) ([]client.Response, error)
	Update(ctx context.Context, req *client.UpdateRequest) (*client.Response, error)
	Deactivate(ctx context.Context, id string) error
}

type ClientServiceImpl struct {
	repo client.Repository
}

func NewClientService(repo client.Repository) ClientService {
	return &ClientServiceImpl{repo: repo}
}

// Create implements ClientService.
func (s *ClientServiceImpl) Create(ctx context.Context, req *client.CreateRequest) (*client.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.Create(ctx, client.Client{
		Name:                req.Name,
		ContactName:         req.ContactName,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		Address:             req.Address,
		ABN:                 req.ABN,
		OrderNumber:         req.OrderNumber,
		BillingRateHourly:   req.BillingRateHourly,
		BillingRateOvertime: req.BillingRateOvertime,
		BillingRateWeekend:  req.BillingRateWeekend,
		BillingRateNight:    req.BillingRateNight,
	})
	if err != nil {
		return nil, err
	}

	resp := client.ToResponse(c)
	return &resp, nil
}

// Get implements ClientService.
func (s *ClientServiceImpl) Get(ctx context.Context, id string) (*client.Response, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := client.ToResponse(c)
	return &resp, nil
}

// List implements ClientService.
func (s *ClientServiceImpl) List(ctx context.Context) ([]client.Response, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]client.Response, 0, len(clients))
	for _, c := range clients {
		result = append(result, client.ToResponse(c))
	}

	return result, nil
}

// Update implements ClientService.
func (s *ClientServiceImpl) Update(ctx context.Context, req *client.UpdateRequest) (*client.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.ContactName != nil {
		c.ContactName = req.ContactName
	}
	if req.ContactEmail != nil {
		c.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		c.ContactPhone = req.ContactPhone
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.ABN != nil {
		c.ABN = req.ABN
	}
	if req.OrderNumber != nil {
		c.OrderNumber = req.OrderNumber
	}
	if req.MYOBCustomerID != nil {
		c.MYOBCustomerID = req.MYOBCustomerID
	}
	if req.BillingRateHourly != nil {
		c.BillingRateHourly = req.BillingRateHourly
	}
	if req.BillingRateOvertime != nil {
		c.BillingRateOvertime = req.BillingRateOvertime
	}
	if req.BillingRateWeekend != nil {
		c.BillingRateWeekend = req.BillingRateWeekend
	}
	if req.BillingRateNight != nil {
		c.BillingRateNight = req.BillingRateNight
	}

	c, err = s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	resp := client.ToResponse(c)
	return &resp, nil
}

// Deactivate implements ClientService.
func (s *ClientServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
