package v1_test

import (
	"net/http"

	v1 "github.com/gessotrack/backend/pkg/controllers/v1"
	"github.com/gessotrack/backend/test"
)

func (suite *TestSuiteStandard) TestGet() {
	r := suite.request(http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Response{
		Links: v1.Links{
			Projects:  baseURL + "/v1/projects",
			Materials: baseURL + "/v1/materials",
		},
	}, response)
}

func (suite *TestSuiteStandard) TestOptions() {
	r := suite.request(http.MethodOptions, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
