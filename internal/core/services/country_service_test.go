package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/global_finance_path/internal/apperrors"
	"github.com/SscSPs/global_finance_path/internal/core/domain"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/core/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CountryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCountryRepository
	service  portssvc.CountrySvcFacade
}

func (suite *CountryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCountryRepository)
	suite.service = services.NewCountryService(suite.mockRepo)
}

func (suite *CountryServiceTestSuite) TestCreateCountry_Success() {
	ctx := context.Background()
	req := dto.CreateCountryRequest{Code: "FR", Name: "France", Currency: "EUR", CurrencySymbol: "€"}
	expected := &domain.Country{Code: "FR", Name: "France", Currency: "EUR", CurrencySymbol: "€"}

	suite.mockRepo.On("SaveCountry", ctx, *expected).Return(expected, nil).Once()

	country, err := suite.service.CreateCountry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(expected, country)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestCreateCountry_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("store unavailable")

	suite.mockRepo.On("SaveCountry", ctx, mock.AnythingOfType("domain.Country")).Return(nil, repoErr).Once()

	country, err := suite.service.CreateCountry(ctx, dto.CreateCountryRequest{Code: "FR"})

	suite.Require().Error(err)
	suite.Nil(country)
	suite.ErrorIs(err, repoErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestGetCountryByCode_Success() {
	ctx := context.Background()
	expected := &domain.Country{Code: "IN", Name: "India", Currency: "INR", CurrencySymbol: "₹"}

	suite.mockRepo.On("FindCountryByCode", ctx, "IN").Return(expected, nil).Once()

	country, err := suite.service.GetCountryByCode(ctx, "IN")

	suite.Require().NoError(err)
	suite.Equal(expected, country)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestGetCountryByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCountryByCode", ctx, "ZZ").
		Return(nil, fmt.Errorf("country %q: %w", "ZZ", apperrors.ErrNotFound)).Once()

	country, err := suite.service.GetCountryByCode(ctx, "ZZ")

	suite.Require().Error(err)
	suite.Nil(country)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestGetCountryByCode_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("boom")

	suite.mockRepo.On("FindCountryByCode", ctx, "IN").Return(nil, repoErr).Once()

	_, err := suite.service.GetCountryByCode(ctx, "IN")

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CountryServiceTestSuite) TestListCountries_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCountries", ctx).Return(nil, nil).Once()

	countries, err := suite.service.ListCountries(ctx)

	suite.Require().NoError(err)
	suite.NotNil(countries)
	suite.Empty(countries)
}

func (suite *CountryServiceTestSuite) TestListCountries_Error() {
	ctx := context.Background()
	repoErr := errors.New("boom")

	suite.mockRepo.On("ListCountries", ctx).Return(nil, repoErr).Once()

	countries, err := suite.service.ListCountries(ctx)

	suite.Require().Error(err)
	suite.Nil(countries)
	suite.ErrorIs(err, repoErr)
}

func TestCountryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CountryServiceTestSuite))
}
