package promotions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/internal/service/promotions/models"
	"github.com/mundoinsolito/manicura/pkg/ptr"
)

type fakePromotionRepo struct {
	promotions []*domain.Promotion
	created    []*domain.Promotion
}

func (f *fakePromotionRepo) Create(_ context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	created := *p
	created.ID = "promo-1"
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakePromotionRepo) GetByID(_ context.Context, id string) (*domain.Promotion, error) {
	for _, p := range f.promotions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePromotionRepo) List(_ context.Context, onlyActive bool) ([]*domain.Promotion, error) {
	if !onlyActive {
		return f.promotions, nil
	}
	active := make([]*domain.Promotion, 0, len(f.promotions))
	for _, p := range f.promotions {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakePromotionRepo) Update(_ context.Context, _ string, _ *domain.Promotion) error {
	return nil
}

func (f *fakePromotionRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(value string) time.Time {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestListCurrent_FiltersByValidityWindow(t *testing.T) {
	repo := &fakePromotionRepo{
		promotions: []*domain.Promotion{
			{ID: "current", Title: "Junio especial", ValidFrom: date("2025-06-01"), ValidUntil: date("2025-06-30"), IsActive: true},
			{ID: "expired", Title: "Mayo", ValidFrom: date("2025-05-01"), ValidUntil: date("2025-05-31"), IsActive: true},
			{ID: "future", Title: "Julio", ValidFrom: date("2025-07-01"), ValidUntil: date("2025-07-31"), IsActive: true},
		},
	}
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: date("2025-06-15")}

	result, err := svc.ListCurrent(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Promotions, 1)
	assert.Equal(t, "current", result.Promotions[0].ID)
}

func TestListCurrent_SkipsInactive(t *testing.T) {
	repo := &fakePromotionRepo{
		promotions: []*domain.Promotion{
			{ID: "off", Title: "Pausada", ValidFrom: date("2025-06-01"), ValidUntil: date("2025-06-30"), IsActive: false},
		},
	}
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: date("2025-06-15")}

	result, err := svc.ListCurrent(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Promotions)
}

func TestCreate_RejectsInvertedWindow(t *testing.T) {
	svc := NewService(&fakePromotionRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.SavePromotionRequest{
		Title:      "Invertida",
		ValidFrom:  "2025-06-30",
		ValidUntil: "2025-06-01",
	})

	assert.ErrorIs(t, err, ErrInvalidValidityWindow)
}

func TestCreate_RejectsDiscountOverHundredPercent(t *testing.T) {
	svc := NewService(&fakePromotionRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.SavePromotionRequest{
		Title:           "Demasiado",
		DiscountPercent: ptr.Ptr(150.0),
		ValidFrom:       "2025-06-01",
		ValidUntil:      "2025-06-30",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
