package service

import (
	"hospital-registry-service/internal/models"
	"hospital-registry-service/internal/repository"
)

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
}

func NewHospitalService(hospitalRepo *repository.HospitalRepository) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
	}
}

// CreateHospital validates the record and appends it to the registry.
// The invariant icu_beds <= total_beds is checked before any mutation, so a
// rejected create leaves the collection unchanged. On success the assigned
// id is filled in on the passed record.
func (s *HospitalService) CreateHospital(hospital *models.Hospital) error {
	if hospital.ICUBeds > hospital.TotalBeds {
		return &models.ValidationError{Reason: "ICU beds cannot exceed total beds"}
	}

	s.hospitalRepo.Create(hospital)
	return nil
}

// ListHospitals returns the skip/limit page of records in insertion order.
func (s *HospitalService) ListHospitals(skip, limit int) []models.Hospital {
	return s.hospitalRepo.List(skip, limit)
}

// GetHospitalByID retrieves a hospital by id
func (s *HospitalService) GetHospitalByID(id int) (*models.Hospital, error) {
	return s.hospitalRepo.GetByID(id)
}
