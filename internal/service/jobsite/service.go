package jobsite

import (
	"context"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/jobsite"
)

type JobSiteService interface {
	Create(ctx context.Context, req *jobsite.CreateRequest) (*jobsite.Response, error)
	Get(ctx context.Context, id string) (*jobsite.Response, error)
	List(ctx context.Context) ([]jobsite.Response, error)
	Update(ctx context.Context, req *jobsite.UpdateRequest) (*jobsite.Response, error)
	Deactivate(ctx context.Context, id string) error
}

type JobSiteServiceImpl struct {
	repo jobsite.Repository
}

func NewJobSiteService(repo jobsite.Repository) JobSiteService {
	return &JobSiteServiceImpl{repo: repo}
}

// Create implements JobSiteService.
func (s *JobSiteServiceImpl) Create(ctx context.Context, req *jobsite.CreateRequest) (*jobsite.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	site, err := s.repo.Create(ctx, jobsite.JobSite{
		Name:           req.Name,
		ClientID:       req.ClientID,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		GeofenceRadius: req.GeofenceRadius,
	})
	if err != nil {
		return nil, err
	}

	resp := jobsite.ToResponse(site)
	return &resp, nil
}

// Get implements JobSiteService.
func (s *JobSiteServiceImpl) Get(ctx context.Context, id string) (*jobsite.Response, error) {
	site, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := jobsite.ToResponse(site)
	return &resp, nil
}

// List implements JobSiteService.
func (s *JobSiteServiceImpl) List(ctx context.Context) ([]jobsite.Response, error) {
	sites, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]jobsite.Response, 0, len(sites))
	for _, site := range sites {
		result = append(result, jobsite.ToResponse(site))
	}

	return result, nil
}

// Update implements JobSiteService.
func (s *JobSiteServiceImpl) Update(ctx context.Context, req *jobsite.UpdateRequest) (*jobsite.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	site, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.ClientID != nil {
		site.ClientID = req.ClientID
	}
	if req.Address != nil {
		site.Address = req.Address
	}
	if req.Latitude != nil {
		site.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		site.Longitude = req.Longitude
	}
	if req.GeofenceRadius != nil {
		site.GeofenceRadius = *req.GeofenceRadius
	}

	site, err = s.repo.Update(ctx, site)
	if err != nil {
		return nil, err
	}

	resp := jobsite.ToResponse(site)
	return &resp, nil
}

// Deactivate implements JobSiteService.
func (s *JobSiteServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
