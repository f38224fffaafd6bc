package worker

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
)

type WorkerService interface {
	Create(ctx context.Context, req *worker.CreateRequest) (*worker.Response, error)
	Get(ctx context.Context, id string) (*worker.Response, error)
	List(ctx context.Context) ([]worker.Response, error)
	Update(ctx context.Context, req *worker.UpdateRequest) (*worker.Response, error)
	Deactivate(ctx context.Context, id string) error
}

type WorkerServiceImpl struct {
	repo worker.Repository
}

func NewWorkerService(repo worker.Repository) WorkerService {
	return &WorkerServiceImpl{repo: repo}
}

// Create implements WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req *worker.CreateRequest) (*worker.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	w, err := s.repo.Create(ctx, worker.Worker{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		PasswordHash:    string(hash),
		Role:            worker.Role(req.Role),
		PayRateBase:     req.PayRateBase,
		PayRateOvertime: req.PayRateOvertime,
		PayRateWeekend:  req.PayRateWeekend,
		PayRateNight:    req.PayRateNight,
		WorkDays:        req.WorkDays,
	})
	if err != nil {
		return nil, err
	}

	resp := worker.ToResponse(w)
	return &resp, nil
}

// Get implements WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (*worker.Response, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := worker.ToResponse(w)
	return &resp, nil
}

// List implements WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.Response, error) {
	workers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]worker.Response, 0, len(workers))
	for _, w := range workers {
		result = append(result, worker.ToResponse(w))
	}

	return result, nil
}

// Update implements WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req *worker.UpdateRequest) (*worker.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		w.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		w.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		w.PhoneNumber = req.PhoneNumber
	}
	if req.PayRateBase != nil {
		w.PayRateBase = req.PayRateBase
	}
	if req.PayRateOvertime != nil {
		w.PayRateOvertime = req.PayRateOvertime
	}
	if req.PayRateWeekend != nil {
		w.PayRateWeekend = req.PayRateWeekend
	}
	if req.PayRateNight != nil {
		w.PayRateNight = req.PayRateNight
	}
	if req.WorkDays != nil {
		w.WorkDays = req.WorkDays
	}

	w, err = s.repo.Update(ctx, w)
	if err != nil {
		return nil, err
	}

	resp := worker.ToResponse(w)
	return &resp, nil
}

// Deactivate implements WorkerService.
func (s *WorkerServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
