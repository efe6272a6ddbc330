package repository

import (
	"sync"

	"hospital-registry-service/internal/models"
)

// HospitalRepository holds the ordered in-memory collection of hospital
// records. The registry owns the collection exclusively; records live for
// the lifetime of the process and are never removed.
type HospitalRepository struct {
	mu        sync.RWMutex
	hospitals []models.Hospital
	nextID    int
}

// NewHospitalRepo creates a repository seeded with the given records.
// The seed is copied so the caller cannot mutate the registry afterwards.
func NewHospitalRepo(seed []models.Hospital) *HospitalRepository {
	hospitals := make([]models.Hospital, len(seed))
	copy(hospitals, seed)

	return &HospitalRepository{
		hospitals: hospitals,
		nextID:    len(hospitals) + 1,
	}
}

// DefaultSeed returns the two example hospitals present at service start.
func DefaultSeed() []models.Hospital {
	return []models.Hospital{
		{
			ID:        1,
			Name:      "City General Hospital",
			Location:  "Delhi",
			TotalBeds: 250,
			ICUBeds:   50,
		},
		{
			ID:        2,
			Name:      "Metro Care Hospital",
			Location:  "Mumbai",
			TotalBeds: 180,
			ICUBeds:   30,
		},
	}
}

// Create assigns the next id to the hospital and appends it to the
// collection. The id counter stays equal to length+1 because no delete
// operation exists; keeping a separate counter avoids id collisions if one
// is ever added.
func (r *HospitalRepository) Create(hospital *models.Hospital) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hospital.ID = r.nextID
	r.nextID++
	r.hospitals = append(r.hospitals, *hospital)
}

// List returns the contiguous slice of records starting at offset skip,
// containing at most limit records, in insertion order. Out-of-range values
// are not an error: negative skip or limit are treated as zero, and a skip
// past the end of the collection yields an empty result.
func (r *HospitalRepository) List(skip, limit int) []models.Hospital {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(r.hospitals) {
		return []models.Hospital{}
	}

	end := skip + limit
	if end > len(r.hospitals) {
		end = len(r.hospitals)
	}

	out := make([]models.Hospital, end-skip)
	copy(out, r.hospitals[skip:end])
	return out
}

// GetByID returns the first record whose id matches, scanning in insertion
// order. A miss returns *models.NotFoundError carrying the requested id.
func (r *HospitalRepository) GetByID(id int) (*models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.hospitals {
		if r.hospitals[i].ID == id {
			hospital := r.hospitals[i]
			return &hospital, nil
		}
	}

	return nil, &models.NotFoundError{ID: id}
}

// Count returns the number of records in the collection.
func (r *HospitalRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.hospitals)
}

// Stats summarizes the registry contents in a single pass.
func (r *HospitalRepository) Stats() models.RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.RegistryStats{Hospitals: len(r.hospitals)}
	for i := range r.hospitals {
		stats.TotalBeds += r.hospitals[i].TotalBeds
		stats.ICUBeds += r.hospitals[i].ICUBeds
	}
	return stats
}
