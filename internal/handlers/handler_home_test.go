package handlers_test

import (
	"net/http"
	"strings"
)

func (suite *HandlersTestSuite) TestHome_DefaultsToIndiaInstruments() {
	w := suite.do(http.MethodGet, "/", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	body := w.Body.String()
	suite.Contains(body, "Global Finance Path - India")
	suite.Contains(body, "Mutual Funds")
	suite.Contains(body, "Recommendations")
	suite.NotContains(body, "Public Provident Fund (PPF)")
}

func (suite *HandlersTestSuite) TestHome_SavingsSection() {
	w := suite.do(http.MethodGet, "/?country=US&section=savings", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	body := w.Body.String()
	suite.Contains(body, "401(k) Plans")
	suite.Contains(body, "IRA (Individual Retirement Account)")
	suite.NotContains(body, "US Treasury Bonds")
}

func (suite *HandlersTestSuite) TestHome_UnknownCountryFallsBack() {
	w := suite.do(http.MethodGet, "/?country=ZZ", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Global Finance Path - India")
}

func (suite *HandlersTestSuite) TestHome_UnknownSectionRendersInstruments() {
	w := suite.do(http.MethodGet, "/?country=IN&section=bogus", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Financial Instruments</h2>")
}

func (suite *HandlersTestSuite) TestHome_SearchReplacesSectionData() {
	w := suite.do(http.MethodGet, "/?country=IN&section=savings&search=ppf", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	body := w.Body.String()
	suite.Contains(body, "Public Provident Fund (PPF)")
	suite.NotContains(body, "Sukanya Samriddhi Account")
	suite.Equal(1, strings.Count(body, "<h3>Public Provident Fund (PPF)</h3>"))
}

func (suite *HandlersTestSuite) TestHome_NoRecommendationsForGermany() {
	w := suite.do(http.MethodGet, "/?country=DE", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), `id="recommendations"`)
}
