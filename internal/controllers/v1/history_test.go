package v1_test

import (
	"net/http"

	v1 "github.com/weekly-envelope/backend/internal/controllers/v1"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
	"github.com/weekly-envelope/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsHistory() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/history", "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHistoryGet() {
	groceries := suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})
	fun := suite.createTestEnvelope(models.Envelope{Title: "Fun", WeeklyBudget: 5000})

	suite.createTestTransaction(models.Transaction{EnvelopeID: groceries.ID, Amount: 3000, Date: types.NewDate(2026, 1, 26)})
	suite.createTestTransaction(models.Transaction{EnvelopeID: fun.ID, Amount: 2000, Date: types.NewDate(2026, 1, 27)})
	suite.createTestTransaction(models.Transaction{EnvelopeID: groceries.ID, Amount: 4000, Date: types.NewDate(2026, 2, 9)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history?from=2026-01-01&to=2026-02-28", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HistoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)

	// Newest week first
	suite.Assert().True(response.Data[0].WeekStart.Equal(types.NewDate(2026, 2, 8)))
	suite.Assert().Equal(int64(4000), response.Data[0].Total)

	suite.Assert().True(response.Data[1].WeekStart.Equal(types.NewDate(2026, 1, 25)))
	suite.Assert().Equal(int64(5000), response.Data[1].Total)
	suite.Assert().Equal(int64(3000), response.Data[1].Cells[groceries.ID])
	suite.Assert().Equal(int64(2000), response.Data[1].Cells[fun.ID])
}

func (suite *TestSuiteStandard) TestHistoryGetEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history?from=2026-01-01&to=2026-02-28", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HistoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().NotNil(response.Data)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestHistoryGetFromRequired() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestHistoryGetInvalidDates() {
	tests := []string{
		"from=yesterday",
		"from=2026-01-01&to=tomorrow",
	}

	for _, query := range tests {
		suite.Run(query, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history?"+query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}
