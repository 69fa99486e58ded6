package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	"github.com/SscSPs/global_finance_path/internal/core/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstrumentService_CreateInstrument_StampsCountry(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInstrumentRepository)
	svc := services.NewInstrumentService(repo)

	req := dto.CreateInstrumentRequest{
		Category:    domain.CategoryEquity,
		Name:        "Index Funds",
		Description: "Passive funds",
		Features:    []string{"Low cost"},
		RiskLevel:   domain.RiskMedium,
	}

	repo.On("SaveInstrument", ctx, mock.MatchedBy(func(i domain.FinancialInstrument) bool {
		return i.CountryCode == "IN" && i.Name == req.Name && i.ID == "" && len(i.Features) == 1
	})).Return(&domain.FinancialInstrument{ID: "gen-1", CountryCode: "IN", Name: req.Name}, nil).Once()

	instrument, err := svc.CreateInstrument(ctx, "IN", req)

	require.NoError(t, err)
	assert.Equal(t, "gen-1", instrument.ID)
	assert.Equal(t, "IN", instrument.CountryCode)
	repo.AssertExpectations(t)
}

func TestInstrumentService_CreateInstrument_DoesNotAliasRequest(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInstrumentRepository)
	svc := services.NewInstrumentService(repo)

	features := []string{"a"}
	var saved domain.FinancialInstrument
	repo.On("SaveInstrument", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.FinancialInstrument)
	}).Return(&domain.FinancialInstrument{ID: "x"}, nil).Once()

	_, err := svc.CreateInstrument(ctx, "IN", dto.CreateInstrumentRequest{Name: "n", Features: features})
	require.NoError(t, err)

	features[0] = "mutated"
	assert.Equal(t, []string{"a"}, saved.Features)
}

func TestInstrumentService_ListInstrumentsByCountry(t *testing.T) {
	ctx := context.Background()

	t.Run("nil becomes empty", func(t *testing.T) {
		repo := new(MockInstrumentRepository)
		repo.On("ListInstrumentsByCountry", ctx, "ZZ").Return(nil, nil).Once()

		instruments, err := services.NewInstrumentService(repo).ListInstrumentsByCountry(ctx, "ZZ")

		require.NoError(t, err)
		assert.NotNil(t, instruments)
		assert.Empty(t, instruments)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := new(MockInstrumentRepository)
		repoErr := errors.New("boom")
		repo.On("ListInstrumentsByCountry", ctx, "IN").Return(nil, repoErr).Once()

		_, err := services.NewInstrumentService(repo).ListInstrumentsByCountry(ctx, "IN")

		require.Error(t, err)
		assert.ErrorIs(t, err, repoErr)
		assert.Contains(t, err.Error(), "failed to list instruments")
	})
}

func TestTaxService_CreateRegulation_KeepsAbsentLists(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRegulationRepository)
	svc := services.NewTaxService(repo)

	req := dto.CreateTaxRegulationRequest{
		TaxSlabs:   []dto.TaxSlabDTO{{Range: "0 - 10", Rate: "0%", Amount: "0"}},
		OtherTaxes: []dto.OtherTaxDTO{},
	}

	repo.On("SaveRegulation", ctx, mock.MatchedBy(func(r domain.TaxRegulation) bool {
		return r.CountryCode == "DE" &&
			r.Regime == nil &&
			len(r.TaxSlabs) == 1 &&
			r.Deductions == nil &&
			r.OtherTaxes != nil && len(r.OtherTaxes) == 0
	})).Return(&domain.TaxRegulation{ID: "r1", CountryCode: "DE"}, nil).Once()

	regulation, err := svc.CreateRegulation(ctx, "DE", req)

	require.NoError(t, err)
	assert.Equal(t, "r1", regulation.ID)
	repo.AssertExpectations(t)
}

func TestTaxService_CreateRegulation_Error(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRegulationRepository)
	repoErr := errors.New("boom")
	repo.On("SaveRegulation", ctx, mock.Anything).Return(nil, repoErr).Once()

	regulation, err := services.NewTaxService(repo).CreateRegulation(ctx, "DE", dto.CreateTaxRegulationRequest{})

	require.Error(t, err)
	assert.Nil(t, regulation)
	assert.ErrorIs(t, err, repoErr)
}
