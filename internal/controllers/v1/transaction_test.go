package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/weekly-envelope/backend/internal/controllers/v1"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
	"github.com/weekly-envelope/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{
		EnvelopeID: suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000}).ID,
		Amount:     1000,
	})

	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1/transactions", "GET, POST"},
		{fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		suite.Run(tt.path, func() {
			r := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	envelope := suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})

	body := fmt.Sprintf(`{"envelopeId": "%s", "amountCents": 1050, "date": "2026-02-10", "merchant": "Costco"}`, envelope.ID)
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(envelope.ID, response.Data.EnvelopeID)
	suite.Assert().Equal(int64(1050), response.Data.Amount)
	suite.Assert().Equal("Costco", response.Data.Merchant)
	suite.Assert().True(response.Data.Date.Equal(types.NewDate(2026, 2, 10)))
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	envelope := suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"missing envelope", `{"amountCents": 1050, "date": "2026-02-10"}`},
		{"invalid envelope ID", `{"envelopeId": "not-a-uuid", "amountCents": 1050, "date": "2026-02-10"}`},
		{"zero amount", fmt.Sprintf(`{"envelopeId": "%s", "amountCents": 0, "date": "2026-02-10"}`, envelope.ID)},
		{"fractional cents", fmt.Sprintf(`{"envelopeId": "%s", "amountCents": 10.5, "date": "2026-02-10"}`, envelope.ID)},
		{"missing date", fmt.Sprintf(`{"envelopeId": "%s", "amountCents": 1050}`, envelope.ID)},
		{"invalid date", fmt.Sprintf(`{"envelopeId": "%s", "amountCents": 1050, "date": "02/10/2026"}`, envelope.ID)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreateUnknownEnvelope() {
	body := `{"envelopeId": "65392deb-5e92-4268-b114-297faad6cdce", "amountCents": 1050, "date": "2026-02-10"}`

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	groceries := suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})
	fun := suite.createTestEnvelope(models.Envelope{Title: "Fun", WeeklyBudget: 5000})

	suite.createTestTransaction(models.Transaction{EnvelopeID: groceries.ID, Amount: 100, Date: types.NewDate(2026, 2, 9), Merchant: "Costco"})
	suite.createTestTransaction(models.Transaction{EnvelopeID: groceries.ID, Amount: 200, Date: types.NewDate(2026, 2, 10), Merchant: "Costco Gas"})
	suite.createTestTransaction(models.Transaction{EnvelopeID: fun.ID, Amount: 300, Date: types.NewDate(2026, 2, 11), Merchant: "Cinema"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"no filter", "", 3},
		{"by envelope", fmt.Sprintf("envelope=%s", groceries.ID), 2},
		{"by date range", "from=2026-02-10&to=2026-02-11", 2},
		{"by merchant glob", "merchant=Costco*", 2},
		{"by merchant exact", "merchant=Cinema", 1},
		{"combined", fmt.Sprintf("envelope=%s&merchant=*Gas", groceries.ID), 1},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetNewestFirst() {
	envelope := suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})

	suite.createTestTransaction(models.Transaction{EnvelopeID: envelope.ID, Amount: 100, Date: types.NewDate(2026, 2, 9)})
	suite.createTestTransaction(models.Transaction{EnvelopeID: envelope.ID, Amount: 200, Date: types.NewDate(2026, 2, 11)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Assert().Equal(int64(200), response.Data[0].Amount)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	envelope := suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})
	transaction := suite.createTestTransaction(models.Transaction{EnvelopeID: envelope.ID, Amount: 1000, Date: types.NewDate(2026, 2, 10)})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), `{"amountCents": 1500}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(int64(1500), response.Data.Amount)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	envelope := suite.createTestEnvelope(models.Envelope{Title: "Groceries", WeeklyBudget: 10000})
	transaction := suite.createTestTransaction(models.Transaction{EnvelopeID: envelope.ID, Amount: 1000, Date: types.NewDate(2026, 2, 10)})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
