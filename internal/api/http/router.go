// Package http exposes the storefront and back-office APIs as a JSON
// HTTP surface. Storefront routes are public; everything under
// /api/admin (except login) requires the demo session token.
package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/security"
	"rentalhq-backend/internal/service"
)

// Services bundles everything the router serves.
type Services struct {
	Data      service.DataService
	Catalog   service.CatalogService
	Cart      service.CartService
	Checkout  service.CheckoutService
	Booking   service.BookingService
	Customer  service.CustomerService
	Payment   service.PaymentService
	Review    service.ReviewService
	Inquiry   service.InquiryService
	Auth      service.AuthService
	Recommend service.RecommendationService
	Tokens    security.TokenManager
}

func NewRouter(svcs Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	public := publicHandler{svcs: svcs}
	cart := cartHandler{svcs: svcs}
	admin := adminHandler{svcs: svcs}

	api := r.PathPrefix("/api").Subrouter()

	// Storefront
	api.HandleFunc("/generators", public.listGenerators).Methods(http.MethodGet)
	api.HandleFunc("/generators/{id}", public.getGenerator).Methods(http.MethodGet)
	api.HandleFunc("/reviews", public.listReviews).Methods(http.MethodGet)
	api.HandleFunc("/reviews", public.addReview).Methods(http.MethodPost)
	api.HandleFunc("/inquiries", public.addInquiry).Methods(http.MethodPost)
	api.HandleFunc("/recommend", public.recommend).Methods(http.MethodPost)

	api.HandleFunc("/cart", cart.get).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", cart.add).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{generatorId}", cart.updateQuantity).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{generatorId}", cart.remove).Methods(http.MethodDelete)
	api.HandleFunc("/cart/total", cart.total).Methods(http.MethodGet)
	api.HandleFunc("/checkout/otp", cart.requestOTP).Methods(http.MethodPost)
	api.HandleFunc("/checkout", cart.checkout).Methods(http.MethodPost)

	// Back office
	api.HandleFunc("/admin/login", admin.login).Methods(http.MethodPost)

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(adminAuth(svcs.Tokens))
	protected.HandleFunc("/data", admin.allData).Methods(http.MethodGet)
	protected.HandleFunc("/generators", admin.addGenerator).Methods(http.MethodPost)
	protected.HandleFunc("/generators/{id}", admin.updateGenerator).Methods(http.MethodPut)
	protected.HandleFunc("/bookings", admin.listBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", admin.createManualBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/status", admin.updateBookingStatus).Methods(http.MethodPut)
	protected.HandleFunc("/payments", admin.listPayments).Methods(http.MethodGet)
	protected.HandleFunc("/payments", admin.recordPayment).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id}/status", admin.updatePaymentStatus).Methods(http.MethodPut)
	protected.HandleFunc("/customers", admin.listCustomers).Methods(http.MethodGet)
	protected.HandleFunc("/customers", admin.addCustomer).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{id}", admin.updateCustomer).Methods(http.MethodPut)
	protected.HandleFunc("/inquiries", admin.listInquiries).Methods(http.MethodGet)
	protected.HandleFunc("/inquiries/{id}/status", admin.updateInquiryStatus).Methods(http.MethodPut)

	return r
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// adminAuth guards back-office routes with the demo session token.
func adminAuth(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, security.ErrInvalidToken)
				return
			}
			if _, err := tokens.ValidateToken(token); err != nil {
				writeError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
