package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/handlers"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtSecret  string
	userID     string
	items      *MockItemService
	ledger     *MockLedgerService
	adjustment *MockAdjustmentService
	counts     *MockCountService
	tagging    *MockTaggingService
	sequence   *MockSequenceService
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.items = new(MockItemService)
	suite.ledger = new(MockLedgerService)
	suite.adjustment = new(MockAdjustmentService)
	suite.counts = new(MockCountService)
	suite.tagging = new(MockTaggingService)
	suite.sequence = new(MockSequenceService)

	// Use the actual AuthMiddleware
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterItemRoutes(v1, suite.items)
	handlers.RegisterLedgerRoutes(v1, suite.ledger)
	handlers.RegisterTaggingRoutes(v1, suite.tagging)
	handlers.RegisterAdjustmentRoutes(v1, suite.adjustment)
	handlers.RegisterCountRoutes(v1, suite.counts, suite.adjustment)
	handlers.RegisterSequenceRoutes(v1, suite.sequence)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.items.AssertExpectations(suite.T())
	suite.ledger.AssertExpectations(suite.T())
	suite.adjustment.AssertExpectations(suite.T())
	suite.counts.AssertExpectations(suite.T())
	suite.tagging.AssertExpectations(suite.T())
	suite.sequence.AssertExpectations(suite.T())
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "inventory-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// serve sends an authenticated request. body is JSON-encoded unless nil.
func (suite *HandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), "Failed to unmarshal response body")
}

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/items", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.items.AssertNotCalled(suite.T(), "ListItems")
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
