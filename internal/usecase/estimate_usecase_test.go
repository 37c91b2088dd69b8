package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/domain/pricing"
	"moving_pricing/internal/usecase/interfaces"
	mock_interfaces "moving_pricing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var calculatedAt = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func testEstimator() *pricing.Estimator {
	return pricing.NewEstimator(
		pricing.WithClock(func() time.Time { return calculatedAt }),
		pricing.WithIDGenerator(func() string { return "est-1" }),
	)
}

func testCatalog() *entities.RuleCatalog {
	return &entities.RuleCatalog{
		RulesVersion:  "uc-2026.10",
		MinimumCharge: map[entities.ServiceType]float64{entities.ServiceLocal: 150},
		PricingRules: []entities.PricingRule{
			{
				ID: "local-labor", Name: "Local hourly labor", Priority: 10, Active: true,
				Actions: []entities.Action{{Type: entities.ActionAddPerUnit, Amount: 60, Target: entities.CategoryBaseLabor, Unit: "crewHours"}},
			},
		},
	}
}

func validInput() entities.EstimateInput {
	return entities.EstimateInput{
		CustomerID:        " cust-1 ",
		Service:           entities.ServiceLocal,
		MoveDate:          time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC),
		Pickup:            entities.Location{Address: "1 Main St"},
		Delivery:          entities.Location{Address: "9 Elm St"},
		TotalWeight:       3000,
		TotalVolume:       400,
		Distance:          10,
		EstimatedDuration: 4,
		CrewSize:          2,
	}
}

type estimateMocks struct {
	repo     *mock_interfaces.MockIEstimateRepository
	catalogs *mock_interfaces.MockICatalogProvider
	audit    *mock_interfaces.MockIAuditPublisher
	metrics  *mock_interfaces.MockIEstimateMetrics
}

func newEstimateUseCase(t *testing.T) (*EstimateUseCase, estimateMocks) {
	ctrl := gomock.NewController(t)
	m := estimateMocks{
		repo:     mock_interfaces.NewMockIEstimateRepository(ctrl),
		catalogs: mock_interfaces.NewMockICatalogProvider(ctrl),
		audit:    mock_interfaces.NewMockIAuditPublisher(ctrl),
		metrics:  mock_interfaces.NewMockIEstimateMetrics(ctrl),
	}
	return NewEstimateUseCase(m.repo, m.catalogs, testEstimator(), m.audit, m.metrics, nil), m
}

func TestEstimateUseCase_CalculateEstimate(t *testing.T) {
	t.Run("invalid actor id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CalculateEstimate(context.Background(), validInput(), "   ")
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("no active catalog", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(nil, errors.New("empty store"))
		m.metrics.EXPECT().ObserveCalculation(entities.ServiceLocal, interfaces.OutcomeError, gomock.Any())

		_, err := uc.CalculateEstimate(context.Background(), validInput(), "agent-1")
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
	})

	t.Run("invalid input is rejected without persisting", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(testCatalog(), nil)
		m.metrics.EXPECT().ObserveCalculation(entities.ServiceLocal, interfaces.OutcomeRejected, gomock.Any())

		in := validInput()
		in.Distance = 120
		_, err := uc.CalculateEstimate(context.Background(), in, "agent-1")
		var verr *pricing.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("catalog defect", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		c := testCatalog()
		c.PricingRules[0].Actions[0].Target = "tips"
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(c, nil)
		m.metrics.EXPECT().ObserveCalculation(entities.ServiceLocal, interfaces.OutcomeConfigError, gomock.Any())

		_, err := uc.CalculateEstimate(context.Background(), validInput(), "agent-1")
		var cerr *pricing.ConfigurationError
		if !errors.As(err, &cerr) || cerr.RuleID != "local-labor" {
			t.Fatalf("expected ConfigurationError for local-labor, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(testCatalog(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.EstimateRecord{}, errors.New("db"))
		m.metrics.EXPECT().ObserveCalculation(entities.ServiceLocal, interfaces.OutcomeError, gomock.Any())

		_, err := uc.CalculateEstimate(context.Background(), validInput(), "agent-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(testCatalog(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimateRecord{})).DoAndReturn(
			func(_ context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) {
				if e.ID != "est-1" || e.CustomerID != "cust-1" || e.Status != entities.QuoteStatusDraft {
					t.Fatalf("unexpected record: %+v", e)
				}
				if e.FinalPrice != 480 || e.RulesVersion != "uc-2026.10" || e.Service != entities.ServiceLocal {
					t.Fatalf("unexpected pricing fields: %+v", e)
				}
				if e.ResultHash == "" || e.ResultHash != e.Result.Metadata.ResultHash || e.InputHash != e.Result.Metadata.InputHash {
					t.Fatalf("expected hashes copied from result")
				}
				if !e.CreatedAt.Equal(calculatedAt) || !e.UpdatedAt.Equal(calculatedAt) {
					t.Fatalf("expected timestamps from calculation")
				}
				return e, nil
			},
		)
		m.audit.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(entities.AuditEvent{})).DoAndReturn(
			func(_ context.Context, ev entities.AuditEvent) error {
				if ev.EstimateID != "est-1" || ev.CalculatedBy != "agent-1" || ev.FinalPrice != 480 {
					t.Fatalf("unexpected audit event: %+v", ev)
				}
				return nil
			},
		)
		m.metrics.EXPECT().ObserveCalculation(entities.ServiceLocal, interfaces.OutcomeCompleted, gomock.Any())

		res, err := uc.CalculateEstimate(context.Background(), validInput(), " agent-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Result.Metadata.CalculatedBy != "agent-1" {
			t.Fatalf("expected trimmed actor, got %q", res.Result.Metadata.CalculatedBy)
		}
	})

	t.Run("audit failure does not fail the estimate", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(testCatalog(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) { return e, nil },
		)
		m.audit.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		m.metrics.EXPECT().ObserveAuditFailure()
		m.metrics.EXPECT().ObserveCalculation(entities.ServiceLocal, interfaces.OutcomeCompleted, gomock.Any())

		res, err := uc.CalculateEstimate(context.Background(), validInput(), "agent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "est-1" {
			t.Fatalf("expected stored estimate, got %+v", res)
		}
	})
}

func TestEstimateUseCase_ValidateInput(t *testing.T) {
	uc := NewEstimateUseCase(nil, nil, nil, nil, nil, nil)

	out := uc.ValidateInput(context.Background(), validInput())
	if !out.Valid {
		t.Fatalf("expected valid outcome, got %v", out.Errors)
	}

	in := validInput()
	in.CrewSize = 0
	out = uc.ValidateInput(context.Background(), in)
	if out.Valid || len(out.Errors) == 0 {
		t.Fatalf("expected invalid outcome")
	}
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateRecord{}, errors.New("db"))
		_, err := uc.GetByID(context.Background(), "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateRecord{}, nil)
		_, err := uc.GetByID(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateRecord{ID: "est-1"}, nil)
		res, err := uc.GetByID(context.Background(), " est-1 ")
		if err != nil || res.ID != "est-1" {
			t.Fatalf("unexpected result %+v, %v", res, err)
		}
	})
}

func TestEstimateUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "", entities.QuoteStatusSent)
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", "archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateRecord{}, nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", entities.QuoteStatusSent)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateRecord{ID: "est-1", Status: entities.QuoteStatusAccepted}, nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", entities.QuoteStatusSent)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("concurrent change", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateRecord{ID: "est-1", Status: entities.QuoteStatusSent}, nil)
		m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.QuoteStatusSent, entities.QuoteStatusViewed).Return(entities.EstimateRecord{}, nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", entities.QuoteStatusViewed)
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateRecord{ID: "est-1", Status: entities.QuoteStatusDraft}, nil)
		m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.QuoteStatusDraft, entities.QuoteStatusSent).
			Return(entities.EstimateRecord{ID: "est-1", Status: entities.QuoteStatusSent}, nil)

		res, err := uc.UpdateStatus(context.Background(), "est-1", entities.QuoteStatusSent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusSent {
			t.Fatalf("expected sent, got %s", res.Status)
		}
	})
}

func TestEstimateUseCase_ActiveCatalog(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(testCatalog(), nil)
		s, err := uc.ActiveCatalog(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.RulesVersion != "uc-2026.10" || s.PricingRules != 1 || s.MinimumCharge[entities.ServiceLocal] != 150 {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.catalogs.EXPECT().ActiveCatalog(gomock.Any()).Return(nil, errors.New("empty"))
		if _, err := uc.ActiveCatalog(context.Background()); !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
	})
}
