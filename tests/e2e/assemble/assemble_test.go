//go:build e2e

package assemble_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"order-assembly/internal/domain/credential"
	"order-assembly/internal/handler"
	"order-assembly/internal/handler/api"
	"order-assembly/internal/handler/middleware"
	"order-assembly/internal/infra/catalog"
	"order-assembly/internal/infra/queue"
	"order-assembly/internal/pkg/clock"
	"order-assembly/internal/pkg/config"
	"order-assembly/internal/usecase/commands"
	"order-assembly/tests/common/builder"
	httptesthelper "order-assembly/tests/common/httptest"
	"order-assembly/tests/common/testutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const validAPIKey = "test-key-123"

// recordingSQS stands in for the queue transport; flip failing to simulate an
// unreachable queue.
type recordingSQS struct {
	failing bool
	sent    []*sqs.SendMessageInput
}

func (s *recordingSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if s.failing {
		return nil, fmt.Errorf("dial tcp: connection refused")
	}
	s.sent = append(s.sent, params)
	return &sqs.SendMessageOutput{MessageId: aws.String(fmt.Sprintf("sqs-msg-%d", len(s.sent)))}, nil
}

type AssembleE2ETestSuite struct {
	suite.Suite
	router        *gin.Engine
	catalogServer *httptest.Server
	sqsStub       *recordingSQS
}

func (s *AssembleE2ETestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.catalogServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sku := strings.TrimPrefix(r.URL.Path, "/catalog/sku/")
		if strings.HasPrefix(sku, "INVALID") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"sku":%q,"name":"Product %s","unit_price_cents":1250}`, sku, sku)
	}))

	cfg := config.NewTestConfig()
	cfg.Catalog.BaseURL = s.catalogServer.URL
	s.sqsStub = &recordingSQS{}

	creds, err := credential.ParseTable([]byte(cfg.Auth.APIKeys))
	require.NoError(s.T(), err)
	registry := credential.NewRegistry(creds)

	clk := clock.NewRealClock()
	pipeline := commands.NewOrderCommands(
		catalog.NewClient(cfg.Catalog),
		queue.NewPublisher(s.sqsStub, cfg.Queue),
		clk,
	)

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, clk, api.NewOrderHandler(pipeline), middleware.NewAuthMiddleware(registry, clk))
}

func (s *AssembleE2ETestSuite) TearDownTest() {
	s.catalogServer.Close()
}

func TestAssembleE2ESuite(t *testing.T) {
	suite.Run(t, new(AssembleE2ETestSuite))
}

func (s *AssembleE2ETestSuite) TestHealth() {
	rec := httptesthelper.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")

	var body map[string]string
	httptesthelper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("healthy", body["status"])
	s.Equal("order-assembly-service", body["service"])
	s.Equal("test", body["version"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	s.NoError(err)
}

func (s *AssembleE2ETestSuite) TestAssembleSuccess() {
	reqBody := builder.NewOrderBuilder().BuildRequestDTO()

	rec := httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", reqBody, validAPIKey)

	var body map[string]any
	httptesthelper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(true, body["success"])
	s.Equal("O1", body["order_id"])
	s.Equal("sqs-msg-1", body["sqs_message_id"])

	assemblyID, ok := body["assembly_id"].(string)
	s.Require().True(ok)
	_, err := uuid.Parse(assemblyID)
	s.NoError(err, "assembly_id must be a textual UUID")

	s.Require().Len(s.sqsStub.sent, 1)
	s.Contains(*s.sqsStub.sent[0].MessageBody, assemblyID)
	s.Equal("O1", *s.sqsStub.sent[0].MessageAttributes["order_id"].StringValue)
}

func (s *AssembleE2ETestSuite) TestIdenticalRequestsGetFreshAssemblyIDs() {
	reqBody := builder.NewOrderBuilder().BuildRequestDTO()

	first := httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", reqBody, validAPIKey)
	second := httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", reqBody, validAPIKey)

	var firstBody, secondBody map[string]any
	httptesthelper.AssertSuccessResponse(s.T(), first, http.StatusOK, &firstBody)
	httptesthelper.AssertSuccessResponse(s.T(), second, http.StatusOK, &secondBody)

	s.NotEqual(firstBody["assembly_id"], secondBody["assembly_id"])
	s.Len(s.sqsStub.sent, 2)
}

func (s *AssembleE2ETestSuite) TestValidationFailure() {
	reqBody := testutil.DtoMap(s.T(),
		builder.NewOrderBuilder().BuildRequestDTO(),
		testutil.Field("items", []any{}),
	)

	rec := httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", reqBody, validAPIKey)
	body := httptesthelper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	details := httptesthelper.DetailsAsStrings(s.T(), body)
	s.Equal([]string{"items is required and must be a non-empty array"}, details)
	s.Empty(s.sqsStub.sent)
}

func (s *AssembleE2ETestSuite) TestEnrichmentFailure() {
	reqBody := builder.NewOrderBuilder().
		WithItems([]string{"SKU100", "INVALID_SKU"}, []int{2, 1}).
		BuildRequestDTO()

	rec := httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", reqBody, validAPIKey)
	body := httptesthelper.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to enrich item with SKU INVALID_SKU")
	s.NotEmpty(body.Details)
	s.Empty(s.sqsStub.sent, "nothing may be published when enrichment fails")
}

func (s *AssembleE2ETestSuite) TestPublishFailure() {
	s.sqsStub.failing = true
	reqBody := builder.NewOrderBuilder().BuildRequestDTO()

	rec := httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", reqBody, validAPIKey)
	body := httptesthelper.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Failed to publish order to queue")
	s.NotEmpty(body.Details)
}

func (s *AssembleE2ETestSuite) TestAuthPrecedesValidation() {
	invalidBody := testutil.DtoMap(s.T(),
		builder.NewOrderBuilder().BuildRequestDTO(),
		testutil.Field("order_id", ""),
		testutil.Field("items", []any{}),
	)

	rec := httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", invalidBody, "")
	httptesthelper.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "API key required")

	rec = httptesthelper.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", invalidBody, "nope")
	httptesthelper.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid API key")
}

func (s *AssembleE2ETestSuite) TestAPIKeyHeaderNameIsCaseInsensitive() {
	payload, err := json.Marshal(builder.NewOrderBuilder().BuildRequestDTO())
	s.Require().NoError(err)

	for _, headerName := range []string{"x-api-key", "X-Api-Key", "X-API-KEY"} {
		s.Run(headerName, func() {
			req := httptest.NewRequest(http.MethodPost, "/orders/assemble", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(headerName, validAPIKey)

			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, req)
			assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func (s *AssembleE2ETestSuite) TestMalformedBody() {
	rec := httptesthelper.PerformRawRequest(s.T(), s.router, http.MethodPost, "/orders/assemble", `{"order_id": "O1",`, validAPIKey)
	httptesthelper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Malformed request body")
}
