//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"eventtix/internal/handler/api"
	resdto "eventtix/internal/handler/dto/response"
	"eventtix/internal/usecase/commands"
	"eventtix/tests/common/builder"
	"eventtix/tests/common/httptest"
	commandsmock "eventtix/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	// Setup routes
	s.router.POST("/events/:id/checkout", authMiddleware, s.handler.Checkout)
	s.router.POST("/events/:id/finalize", authMiddleware, s.handler.Finalize)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckout() {
	b := builder.NewBookingBuilder()
	url := "/events/" + b.EventID.String() + "/checkout"
	reqBody := b.BuildCheckoutRequestDTO()

	intent := &commands.PaymentIntent{
		ID:           "pi_test_123",
		ClientSecret: "pi_test_123_secret_abc",
	}

	s.Run("success: returns 200 OK with PaymentIntentResponse", func() {
		s.mockCommands.EXPECT().CreatePaymentIntent(gomock.Any(), b.ReservationID, gomock.Any()).
			Return(intent, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PaymentIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(intent.ID, response.PaymentIntentID)
		s.Equal(intent.ClientSecret, response.ClientSecret)
	})

	s.Run("error: 400 Bad Request for invalid event UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events/invalid-uuid/checkout", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: 400 Bad Request for missing reservationId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "reservation not owned",
				commandsError:  commands.ErrNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "another user",
			},
			{
				name:           "reservation expired",
				commandsError:  commands.ErrReservationExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "expired",
			},
			{
				name:           "no payment due",
				commandsError:  commands.ErrNoPaymentDue,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "no amount due",
			},
			{
				name:           "invalid state",
				commandsError:  commands.ErrInvalidState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreatePaymentIntent(gomock.Any(), b.ReservationID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestFinalize
// ================================================================================

func (s *BookingHandlerTestSuite) TestFinalize() {
	b := builder.NewBookingBuilder()
	url := "/events/" + b.EventID.String() + "/finalize"
	reqBody := b.BuildFinalizeRequestDTO(nil)
	returnView := b.BuildViewQuery()

	s.Run("success: returns 201 Created for a fresh booking", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.FinalizeResult{Booking: returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Quantity, response.Quantity)
		s.Equal("registered", response.Status)
	})

	s.Run("success: returns 200 OK on idempotent replay", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.FinalizeResult{Booking: returnView, Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("success: forwards the payment reference", func() {
		ref := "pi_test_123"
		body := b.BuildFinalizeRequestDTO(&ref)

		s.mockCommands.EXPECT().
			Finalize(gomock.Any(), commands.FinalizeInput{ReservationID: b.ReservationID, PaymentRef: &ref}, gomock.Any()).
			Return(&commands.FinalizeResult{Booking: returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request for invalid event UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events/invalid-uuid/finalize", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "reservation not owned",
				commandsError:  commands.ErrNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "another user",
			},
			{
				name:           "reservation expired",
				commandsError:  commands.ErrReservationExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "expired",
			},
			{
				name:           "payment required",
				commandsError:  commands.ErrPaymentRequired,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment confirmation required",
			},
			{
				name:           "payment not verified",
				commandsError:  commands.ErrPaymentNotVerified,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "could not be verified",
			},
			{
				name:           "already registered",
				commandsError:  commands.ErrAlreadyRegistered,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already has a booking",
			},
			{
				name:           "invalid state",
				commandsError:  commands.ErrInvalidState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
