package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/stretchr/testify/suite"

	"github.com/Vaibhavmishra08/urlshortner/internal/adapter/repository/memory"
	"github.com/Vaibhavmishra08/urlshortner/internal/usecase"
)

// APITestSuite drives the full stack: real registry, real use case, real
// router, over a live httptest server.
type APITestSuite struct {
	suite.Suite
	server *httptest.Server
	e      *httpexpect.Expect
}

func (suite *APITestSuite) SetupSubTest() {
	logger := httplog.NewLogger("", httplog.Options{Writer: io.Discard})
	registry := memory.NewRegistry()
	uc := usecase.New(registry)

	suite.server = httptest.NewServer(NewRouter(logger, uc, testBaseURL))
	suite.T().Cleanup(func() {
		suite.server.Close()
	})

	suite.e = httpexpect.Default(suite.T(), suite.server.URL)
}

func (suite *APITestSuite) shorten(destination string) *httpexpect.Object {
	return suite.e.POST("/api/v1/shorten").
		WithJSON(map[string]string{"destination": destination}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()
}

func (suite *APITestSuite) TestShortenAssignsSequentialAliases() {
	suite.Run("aliases 1, 2, 3", func() {
		suite.shorten("https://a.com").HasValue("alias", "1")
		suite.shorten("https://b.com").HasValue("alias", "2")
		suite.shorten("https://c.com").HasValue("alias", "3")
	})
}

func (suite *APITestSuite) TestShortenNormalizesDestination() {
	suite.Run("bare host gets https prefix", func() {
		resp := suite.shorten("example.com")

		resp.HasValue("destination", "https://example.com")
		resp.HasValue("short_url", testBaseURL+"/1")
	})

	suite.Run("invalid destination rejected", func() {
		resp := suite.e.POST("/api/v1/shorten").
			WithJSON(map[string]string{"destination": "not a url"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "destination")
	})
}

func (suite *APITestSuite) TestResolveCountsVisits() {
	suite.Run("visit counts accumulate", func() {
		alias := suite.shorten("https://example.com").
			Value("alias").String().Raw()

		for want := 1; want <= 3; want++ {
			suite.e.GET("/api/v1/shorten/" + alias).
				Expect().
				Status(http.StatusOK).
				JSON().Object().
				HasValue("visit_count", want)
		}
	})

	suite.Run("unknown alias leaves stats untouched", func() {
		suite.shorten("https://example.com")

		suite.e.GET("/api/v1/shorten/missing").
			Expect().
			Status(http.StatusNotFound)

		resp := suite.e.GET("/api/v1/stats").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("total_aliases", 1)
		resp.HasValue("total_visits", 0)
	})
}

func (suite *APITestSuite) TestRedirectCountsVisit() {
	suite.Run("redirect then resolve", func() {
		alias := suite.shorten("https://example.com").
			Value("alias").String().Raw()

		suite.e.GET("/" + alias).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusTemporaryRedirect).
			Header("Location").IsEqual("https://example.com")

		suite.e.GET("/api/v1/shorten/" + alias).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("visit_count", 2)
	})
}

func (suite *APITestSuite) TestListSortsByRecency() {
	suite.Run("most recent first", func() {
		suite.shorten("https://a.com")
		suite.shorten("https://b.com")
		suite.shorten("https://c.com")

		resp := suite.e.GET("/api/v1/shorten").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("count", 3)

		links := resp.Value("links").Array()
		links.Value(0).Object().HasValue("destination", "https://c.com")
		links.Value(1).Object().HasValue("destination", "https://b.com")
		links.Value(2).Object().HasValue("destination", "https://a.com")
	})
}

func (suite *APITestSuite) TestStatsAggregates() {
	suite.Run("three aliases, five visits", func() {
		first := suite.shorten("https://a.com").Value("alias").String().Raw()
		second := suite.shorten("https://b.com").Value("alias").String().Raw()
		suite.shorten("https://c.com")

		for i := 0; i < 3; i++ {
			suite.e.GET("/api/v1/shorten/" + first).
				Expect().
				Status(http.StatusOK)
		}
		for i := 0; i < 2; i++ {
			suite.e.GET("/api/v1/shorten/" + second).
				Expect().
				Status(http.StatusOK)
		}

		resp := suite.e.GET("/api/v1/stats").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("total_aliases", 3)
		resp.HasValue("total_visits", 5)
	})
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
