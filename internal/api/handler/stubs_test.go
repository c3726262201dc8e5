package handler

import (
	"context"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// Function-field stubs so each test wires only what it needs.

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.UserView, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.UserView, error)
	likeFn     func(ctx context.Context, userID, vacationID int) error
	unlikeFn   func(ctx context.Context, userID, vacationID int) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*ports.UserView, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*ports.UserView, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) LikeVacation(ctx context.Context, userID, vacationID int) error {
	return s.likeFn(ctx, userID, vacationID)
}

func (s *stubUserService) UnlikeVacation(ctx context.Context, userID, vacationID int) error {
	return s.unlikeFn(ctx, userID, vacationID)
}

type stubVacationService struct {
	listFn   func(ctx context.Context) ([]domain.Vacation, error)
	getFn    func(ctx context.Context, id int) (*domain.Vacation, error)
	addFn    func(ctx context.Context, input ports.AddVacationInput) (*domain.Vacation, error)
	updateFn func(ctx context.Context, id int, input ports.UpdateVacationInput) (*domain.Vacation, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubVacationService) List(ctx context.Context) ([]domain.Vacation, error) {
	return s.listFn(ctx)
}

func (s *stubVacationService) Get(ctx context.Context, id int) (*domain.Vacation, error) {
	return s.getFn(ctx, id)
}

func (s *stubVacationService) Add(ctx context.Context, input ports.AddVacationInput) (*domain.Vacation, error) {
	return s.addFn(ctx, input)
}

func (s *stubVacationService) Update(ctx context.Context, id int, input ports.UpdateVacationInput) (*domain.Vacation, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubVacationService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

type stubAuthService struct {
	loginFn  func(ctx context.Context, identifier, password string) (string, *ports.UserView, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (string, *ports.UserView, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) IsAuthenticated(ctx context.Context, token string) bool { return false }

func (s *stubAuthService) IsAdmin(ctx context.Context, userID int) bool { return false }

type stubStatisticsService struct {
	vacationStatsFn     func(ctx context.Context, token string) (*ports.VacationStats, error)
	totalUsersFn        func(ctx context.Context, token string) (int64, error)
	totalLikesFn        func(ctx context.Context, token string) (int64, error)
	likesDistributionFn func(ctx context.Context, token string) ([]ports.DestinationLikes, error)
}

func (s *stubStatisticsService) VacationStats(ctx context.Context, token string) (*ports.VacationStats, error) {
	return s.vacationStatsFn(ctx, token)
}

func (s *stubStatisticsService) TotalUsers(ctx context.Context, token string) (int64, error) {
	return s.totalUsersFn(ctx, token)
}

func (s *stubStatisticsService) TotalLikes(ctx context.Context, token string) (int64, error) {
	return s.totalLikesFn(ctx, token)
}

func (s *stubStatisticsService) LikesDistribution(ctx context.Context, token string) ([]ports.DestinationLikes, error) {
	return s.likesDistributionFn(ctx, token)
}

// stubRoleRepo serves the fixed Admin/User pair.
type stubRoleRepo struct{}

func (s *stubRoleRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	return []domain.Role{{ID: 1, Name: domain.RoleAdmin}, {ID: 2, Name: domain.RoleUser}}, nil
}

func (s *stubRoleRepo) GetByID(ctx context.Context, id int) (*domain.Role, error) {
	switch id {
	case 1:
		return &domain.Role{ID: 1, Name: domain.RoleAdmin}, nil
	case 2:
		return &domain.Role{ID: 2, Name: domain.RoleUser}, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleRepo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	switch name {
	case domain.RoleAdmin:
		return &domain.Role{ID: 1, Name: domain.RoleAdmin}, nil
	case domain.RoleUser:
		return &domain.Role{ID: 2, Name: domain.RoleUser}, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleRepo) Insert(ctx context.Context, role *domain.Role) (int, error) { return 0, nil }

func (s *stubRoleRepo) UpdateByID(ctx context.Context, id int, role *domain.Role) (int64, error) {
	return 0, nil
}

func (s *stubRoleRepo) DeleteByID(ctx context.Context, id int) (int64, error) { return 0, nil }

// stubLikeRepo serves a fixed per-vacation count map.
type stubLikeRepo struct {
	counts map[int]int64
}

func (s *stubLikeRepo) ListAll(ctx context.Context) ([]domain.Like, error) { return nil, nil }

func (s *stubLikeRepo) GetByUserAndVacation(ctx context.Context, userID, vacationID int) (*domain.Like, error) {
	return nil, nil
}

func (s *stubLikeRepo) Insert(ctx context.Context, like *domain.Like) error { return nil }

func (s *stubLikeRepo) DeleteByUserAndVacation(ctx context.Context, userID, vacationID int) (int64, error) {
	return 0, nil
}

func (s *stubLikeRepo) CountTotal(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubLikeRepo) GetLikesCountByVacation(ctx context.Context) (map[int]int64, error) {
	return s.counts, nil
}

func (s *stubLikeRepo) GetLikesDistribution(ctx context.Context) ([]ports.DestinationLikes, error) {
	return nil, nil
}
