package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users      map[int]*domain.User
	nextID     int
	countCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User), nextID: 1}
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username != nil && *u.Username == identifier {
			clone := *u
			return &clone, nil
		}
	}
	for _, u := range r.users {
		if u.Email == identifier {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (int, error) {
	id := r.nextID
	r.nextID++
	clone := *user
	clone.ID = id
	r.users[id] = &clone
	return id, nil
}

func (r *stubUserRepo) UpdateByID(_ context.Context, id int, user *domain.User) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	clone := *user
	clone.ID = id
	r.users[id] = &clone
	return 1, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id int) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

func (r *stubUserRepo) CountTotal(_ context.Context) (int64, error) {
	r.countCalls++
	return int64(len(r.users)), nil
}

type stubRoleRepo struct {
	roles map[int]domain.Role
}

// newStubRoleRepo seeds the well-known roles: Admin=1, User=2.
func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: map[int]domain.Role{
		1: {ID: 1, Name: domain.RoleAdmin},
		2: {ID: 2, Name: domain.RoleUser},
	}}
}

func (r *stubRoleRepo) ListAll(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubRoleRepo) GetByID(_ context.Context, id int) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &role, nil
}

func (r *stubRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return &role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) Insert(_ context.Context, role *domain.Role) (int, error) {
	id := len(r.roles) + 1
	r.roles[id] = domain.Role{ID: id, Name: role.Name}
	return id, nil
}

func (r *stubRoleRepo) UpdateByID(_ context.Context, id int, role *domain.Role) (int64, error) {
	if _, ok := r.roles[id]; !ok {
		return 0, nil
	}
	r.roles[id] = domain.Role{ID: id, Name: role.Name}
	return 1, nil
}

func (r *stubRoleRepo) DeleteByID(_ context.Context, id int) (int64, error) {
	if _, ok := r.roles[id]; !ok {
		return 0, nil
	}
	delete(r.roles, id)
	return 1, nil
}

type stubCountryRepo struct {
	countries map[int]domain.Country
}

func newStubCountryRepo(names ...string) *stubCountryRepo {
	r := &stubCountryRepo{countries: make(map[int]domain.Country)}
	for i, name := range names {
		r.countries[i+1] = domain.Country{ID: i + 1, Name: name}
	}
	return r
}

func (r *stubCountryRepo) ListAll(_ context.Context) ([]domain.Country, error) {
	out := make([]domain.Country, 0, len(r.countries))
	for _, c := range r.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCountryRepo) GetByID(_ context.Context, id int) (*domain.Country, error) {
	c, ok := r.countries[id]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	return &c, nil
}

func (r *stubCountryRepo) Insert(_ context.Context, country *domain.Country) (int, error) {
	id := len(r.countries) + 1
	r.countries[id] = domain.Country{ID: id, Name: country.Name}
	return id, nil
}

func (r *stubCountryRepo) UpdateByID(_ context.Context, id int, country *domain.Country) (int64, error) {
	if _, ok := r.countries[id]; !ok {
		return 0, nil
	}
	r.countries[id] = domain.Country{ID: id, Name: country.Name}
	return 1, nil
}

func (r *stubCountryRepo) DeleteByID(_ context.Context, id int) (int64, error) {
	if _, ok := r.countries[id]; !ok {
		return 0, nil
	}
	delete(r.countries, id)
	return 1, nil
}

type stubVacationRepo struct {
	vacations map[int]*domain.Vacation
	nextID    int
	// likes, when set, receives cascade deletes the way the real store does.
	likes      *stubLikeRepo
	bucketCall int
}

func newStubVacationRepo() *stubVacationRepo {
	return &stubVacationRepo{vacations: make(map[int]*domain.Vacation), nextID: 1}
}

func (r *stubVacationRepo) ListAll(_ context.Context) ([]domain.Vacation, error) {
	out := make([]domain.Vacation, 0, len(r.vacations))
	for _, v := range r.vacations {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *stubVacationRepo) GetByID(_ context.Context, id int) (*domain.Vacation, error) {
	v, ok := r.vacations[id]
	if !ok {
		return nil, domain.ErrVacationNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVacationRepo) Insert(_ context.Context, v *domain.Vacation) (int, error) {
	id := r.nextID
	r.nextID++
	clone := *v
	clone.ID = id
	r.vacations[id] = &clone
	return id, nil
}

func (r *stubVacationRepo) UpdateByID(_ context.Context, id int, update ports.VacationUpdate) (int64, error) {
	v, ok := r.vacations[id]
	if !ok {
		return 0, nil
	}
	changed := false
	if update.CountryID != nil {
		v.CountryID = *update.CountryID
		changed = true
	}
	if update.Description != nil {
		v.Description = *update.Description
		changed = true
	}
	if update.StartDate != nil {
		v.StartDate = *update.StartDate
		changed = true
	}
	if update.EndDate != nil {
		v.EndDate = *update.EndDate
		changed = true
	}
	if update.Price != nil {
		v.Price = *update.Price
		changed = true
	}
	if update.ImageName != nil {
		if *update.ImageName == "" {
			v.ImageName = nil
		} else {
			name := *update.ImageName
			v.ImageName = &name
		}
		changed = true
	}
	if !changed {
		return 0, nil
	}
	return 1, nil
}

func (r *stubVacationRepo) DeleteByID(_ context.Context, id int) (int64, error) {
	if _, ok := r.vacations[id]; !ok {
		return 0, nil
	}
	delete(r.vacations, id)
	if r.likes != nil {
		r.likes.removeByVacation(id)
	}
	return 1, nil
}

func (r *stubVacationRepo) CountByDateBucket(_ context.Context) (ports.DateBucketCounts, error) {
	r.bucketCall++
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var counts ports.DateBucketCounts
	for _, v := range r.vacations {
		switch {
		case v.EndDate.Before(today):
			counts.Past++
		case v.StartDate.After(today):
			counts.Future++
		default:
			counts.Ongoing++
		}
	}
	return counts, nil
}

type stubLikeRepo struct {
	pairs        map[[2]int]bool
	distribution []ports.DestinationLikes
	countCalls   int
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{pairs: make(map[[2]int]bool)}
}

func (r *stubLikeRepo) ListAll(_ context.Context) ([]domain.Like, error) {
	out := make([]domain.Like, 0, len(r.pairs))
	for pair := range r.pairs {
		out = append(out, domain.Like{UserID: pair[0], VacationID: pair[1]})
	}
	return out, nil
}

func (r *stubLikeRepo) GetByUserAndVacation(_ context.Context, userID, vacationID int) (*domain.Like, error) {
	if !r.pairs[[2]int{userID, vacationID}] {
		return nil, nil
	}
	return &domain.Like{UserID: userID, VacationID: vacationID}, nil
}

func (r *stubLikeRepo) Insert(_ context.Context, like *domain.Like) error {
	key := [2]int{like.UserID, like.VacationID}
	if r.pairs[key] {
		return fmt.Errorf("duplicate key (%d, %d)", like.UserID, like.VacationID)
	}
	r.pairs[key] = true
	return nil
}

func (r *stubLikeRepo) DeleteByUserAndVacation(_ context.Context, userID, vacationID int) (int64, error) {
	key := [2]int{userID, vacationID}
	if !r.pairs[key] {
		return 0, nil
	}
	delete(r.pairs, key)
	return 1, nil
}

func (r *stubLikeRepo) CountTotal(_ context.Context) (int64, error) {
	r.countCalls++
	return int64(len(r.pairs)), nil
}

func (r *stubLikeRepo) GetLikesCountByVacation(_ context.Context) (map[int]int64, error) {
	counts := make(map[int]int64)
	for pair := range r.pairs {
		counts[pair[1]]++
	}
	return counts, nil
}

func (r *stubLikeRepo) GetLikesDistribution(_ context.Context) ([]ports.DestinationLikes, error) {
	return r.distribution, nil
}

func (r *stubLikeRepo) removeByVacation(vacationID int) {
	for pair := range r.pairs {
		if pair[1] == vacationID {
			delete(r.pairs, pair)
		}
	}
}

type stubSessionStore struct {
	sessions map[string]ports.Session
	nextID   int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]ports.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, session ports.Session) (string, error) {
	s.nextID++
	token := fmt.Sprintf("token-%d", s.nextID)
	s.sessions[token] = session
	return token, nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*ports.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}
