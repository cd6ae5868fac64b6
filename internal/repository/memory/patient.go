package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type patientRepo struct {
	store *Store
}

func (r *patientRepo) Create(_ context.Context, patient *models.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := &r.store.state

	patient.ID = primitive.NewObjectID().Hex()
	st.patients[patient.ID] = clonePatient(*patient)
	st.track(patientKey(patient.ID))
	return nil
}

func (r *patientRepo) GetByID(_ context.Context, id string) (*models.Patient, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	patient, ok := r.store.state.patients[id]
	if !ok {
		return nil, fmt.Errorf("patient with id %s not found: %w", id, service.ErrNotFound)
	}
	out := clonePatient(patient)
	return &out, nil
}

// FindBestMatch - первый по порядку создания пациент, чьи имя и фамилия
// содержат переданные части без учета регистра
func (r *patientRepo) FindBestMatch(_ context.Context, firstName, lastName string) (*models.Patient, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	st := &r.store.state

	ids := make([]string, 0, len(st.patients))
	for id := range st.patients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return st.order[patientKey(ids[i])] < st.order[patientKey(ids[j])]
	})

	for _, id := range ids {
		p := st.patients[id]
		if containsFold(p.FirstName, firstName) && containsFold(p.LastName, lastName) {
			out := clonePatient(p)
			return &out, nil
		}
	}
	return nil, nil
}

func containsFold(value, part string) bool {
	if part == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(part))
}

func patientKey(id string) string { return "patient:" + id }
