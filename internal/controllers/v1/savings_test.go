package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/weekly-envelope/backend/internal/controllers/v1"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
	"github.com/weekly-envelope/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsSavings() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/savings", "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

// envelopeCreatedOn creates an envelope whose creation day lies in the
// past so that it participates in past weeks' savings.
func (suite *TestSuiteStandard) envelopeCreatedOn(title string, budget int64, rollover bool, createdOn types.Date) models.Envelope {
	return suite.createTestEnvelope(models.Envelope{
		DefaultModel: models.DefaultModel{
			Timestamps: models.Timestamps{
				CreatedAt: time.Time(createdOn),
			},
		},
		Title:        title,
		WeeklyBudget: budget,
		Rollover:     rollover,
	})
}

func (suite *TestSuiteStandard) TestSavingsGet() {
	envelope := suite.envelopeCreatedOn("Groceries", 10000, false, types.NewDate(2026, 1, 1))

	suite.createTestTransaction(models.Transaction{EnvelopeID: envelope.ID, Amount: 6000, Date: types.NewDate(2026, 1, 26)})
	suite.createTestTransaction(models.Transaction{EnvelopeID: envelope.ID, Amount: 2000, Date: types.NewDate(2026, 2, 3)})
	// Spending in the in-progress week must not count
	suite.createTestTransaction(models.Transaction{EnvelopeID: envelope.ID, Amount: 9999, Date: types.NewDate(2026, 2, 9)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings?from=2026-01-25&until=2026-02-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(int64(12000), response.Data.TotalCents)
	suite.Assert().Len(response.Data.Weeks, 2)

	suite.Assert().Equal("Wk 5", response.Data.Weeks[0].Label)
	suite.Assert().Equal(int64(4000), response.Data.Weeks[0].Savings)
	suite.Assert().Equal(int64(4000), response.Data.Weeks[0].Cumulative)

	suite.Assert().Equal("Wk 6", response.Data.Weeks[1].Label)
	suite.Assert().Equal(int64(8000), response.Data.Weeks[1].Savings)
	suite.Assert().Equal(int64(12000), response.Data.Weeks[1].Cumulative)
}

func (suite *TestSuiteStandard) TestSavingsGetExcludesRollover() {
	suite.envelopeCreatedOn("Groceries", 10000, false, types.NewDate(2026, 1, 1))
	suite.envelopeCreatedOn("Vacation", 20000, true, types.NewDate(2026, 1, 1))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings?from=2026-02-01&until=2026-02-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The untouched vacation envelope rolls over instead of counting
	suite.Assert().Len(response.Data.Weeks, 1)
	suite.Assert().Equal(int64(10000), response.Data.Weeks[0].Savings)
	suite.Assert().Equal(int64(10000), response.Data.TotalCents)
}

func (suite *TestSuiteStandard) TestSavingsGetNoCompletedWeeks() {
	suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The envelope was created this week, so no week has completed yet
	suite.Assert().Equal(int64(0), response.Data.TotalCents)
	suite.Assert().NotNil(response.Data.Weeks)
	suite.Assert().Len(response.Data.Weeks, 0)
}

func (suite *TestSuiteStandard) TestSavingsGetInvalidDates() {
	tests := []string{
		"from=yesterday",
		"until=tomorrow",
		"from=2026-1-1",
	}

	for _, query := range tests {
		suite.Run(query, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings?"+query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}
