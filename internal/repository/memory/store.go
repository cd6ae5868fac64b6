// Package memory - хранилище в памяти с теми же контрактами, что и Postgres.
// Транзакция держит блокировку всего хранилища и работает с копией состояния,
// которая заменяет основное состояние только при успешном завершении.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

type state struct {
	incidents   map[uuid.UUID]models.Incident
	sessions    map[string]uuid.UUID
	assignments map[uuid.UUID]models.Assignment
	rescuers    map[uuid.UUID]models.Rescuer
	patients    map[string]models.Patient
	dispatch    *models.DispatchState

	// порядок вставки, разрешает равенство временных меток при сортировке
	order map[string]uint64
	seq   uint64
}

func newState() state {
	return state{
		incidents:   map[uuid.UUID]models.Incident{},
		sessions:    map[string]uuid.UUID{},
		assignments: map[uuid.UUID]models.Assignment{},
		rescuers:    map[uuid.UUID]models.Rescuer{},
		patients:    map[string]models.Patient{},
		order:       map[string]uint64{},
	}
}

func (s state) clone() state {
	next := newState()
	for k, v := range s.incidents {
		next.incidents[k] = cloneIncident(v)
	}
	for k, v := range s.sessions {
		next.sessions[k] = v
	}
	for k, v := range s.assignments {
		next.assignments[k] = cloneAssignment(v)
	}
	for k, v := range s.rescuers {
		next.rescuers[k] = cloneRescuer(v)
	}
	for k, v := range s.patients {
		next.patients[k] = clonePatient(v)
	}
	for k, v := range s.order {
		next.order[k] = v
	}
	if s.dispatch != nil {
		d := cloneDispatchState(*s.dispatch)
		next.dispatch = &d
	}
	next.seq = s.seq
	return next
}

func (s *state) track(key string) {
	s.seq++
	s.order[key] = s.seq
}

// Store - хранилище в памяти. Используется при STORE_DRIVER=memory и в тестах.
type Store struct {
	mu    sync.RWMutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// RunInTx выполняет fn над копией состояния и фиксирует ее, только если fn не вернул ошибку
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx service.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &transaction{state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

func (s *Store) TxRunner() service.TxRunner { return s }
func (s *Store) Incidents() service.IncidentRepository { return &incidentRepo{store: s} }
func (s *Store) Assignments() service.AssignmentRepository { return &assignmentRepo{store: s} }
func (s *Store) Rescuers() service.RescuerRepository { return &rescuerRepo{store: s} }
func (s *Store) DispatchState() service.DispatchStateRepository { return &dispatchStateRepo{store: s} }
func (s *Store) Patients() service.PatientRepository { return &patientRepo{store: s} }

// newestFirst сортирует ключи по убыванию времени, при равенстве - по убыванию порядка вставки
func newestFirst[T any](st *state, items []T, key func(T) string, at func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		ai, aj := at(items[i]), at(items[j])
		if ai != aj {
			return ai > aj
		}
		return st.order[key(items[i])] > st.order[key(items[j])]
	})
}

func cloneIncident(in models.Incident) models.Incident {
	out := in
	if in.Coordinates != nil {
		c := *in.Coordinates
		out.Coordinates = &c
	}
	if in.PatientAge != nil {
		age := *in.PatientAge
		out.PatientAge = &age
	}
	return out
}

func cloneAssignment(in models.Assignment) models.Assignment {
	out := in
	if in.RescuerID != nil {
		id := *in.RescuerID
		out.RescuerID = &id
	}
	out.Times.Responded = cloneTime(in.Times.Responded)
	out.Times.Accepted = cloneTime(in.Times.Accepted)
	out.Times.Completed = cloneTime(in.Times.Completed)
	return out
}

func cloneTime(in *time.Time) *time.Time {
	if in == nil {
		return nil
	}
	t := *in
	return &t
}

func cloneRescuer(in models.Rescuer) models.Rescuer {
	out := in
	if in.CurrentLocation != nil {
		loc := *in.CurrentLocation
		out.CurrentLocation = &loc
	}
	if in.Stats.AvgResponseTimeMinutes != nil {
		avg := *in.Stats.AvgResponseTimeMinutes
		out.Stats.AvgResponseTimeMinutes = &avg
	}
	return out
}

func clonePatient(in models.Patient) models.Patient {
	out := in
	if in.Age != nil {
		age := *in.Age
		out.Age = &age
	}
	out.MedicalHistory = append([]string(nil), in.MedicalHistory...)
	out.Medications = append([]string(nil), in.Medications...)
	out.Allergies = append([]string(nil), in.Allergies...)
	return out
}

func cloneDispatchState(in models.DispatchState) models.DispatchState {
	out := in
	if in.ActiveDispatcherID != nil {
		id := *in.ActiveDispatcherID
		out.ActiveDispatcherID = &id
	}
	if in.ActiveIncidentID != nil {
		id := *in.ActiveIncidentID
		out.ActiveIncidentID = &id
	}
	return out
}
