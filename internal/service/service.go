package service

import (
	"context"
	"time"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/storage"
)

// DataService mirrors the storefront's data context: one call returning
// every collection, re-fetched by the client after each mutation.
type DataService interface {
	All(ctx context.Context) (*storage.Document, error)
}

type CatalogService interface {
	ListGenerators(ctx context.Context) ([]domain.Generator, error)
	GetGenerator(ctx context.Context, id string) (*domain.Generator, error)
	AddGenerator(ctx context.Context, gen *domain.Generator) error
	UpdateGenerator(ctx context.Context, id string, update GeneratorUpdate) (*domain.Generator, error)
}

// GeneratorUpdate holds the fields an admin may change on a generator.
// Nil fields are left untouched.
type GeneratorUpdate struct {
	Name          *string
	Capacity      *int32
	PricePerDay   *int32
	PricePerMonth *int32
	ImageURL      *string
	FuelType      *domain.FuelType
	Featured      *bool
	Description   *string
	Units         *[]domain.GeneratorUnit
}

type ManualBookingInput struct {
	CustomerID  string
	GeneratorID string
	Quantity    int32
	StartDate   time.Time
	EndDate     time.Time
}

type BookingService interface {
	CreateManualBooking(ctx context.Context, input ManualBookingInput) (*domain.Booking, error)
	// UpdateBookingStatus applies the lifecycle cascade. Repeating the
	// booking's current status is a no-op.
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

type CartService interface {
	Items(ctx context.Context, sessionID string) []domain.CartLine
	// AddToCart stages one more unit of the model, failing with
	// ErrOutOfStock when no further unit is available.
	AddToCart(ctx context.Context, sessionID, generatorID string) error
	// UpdateQuantity sets the staged quantity outright. Zero or below
	// removes the line; exceeding availability fails with ErrOutOfStock
	// and leaves the cart untouched.
	UpdateQuantity(ctx context.Context, sessionID, generatorID string, quantity int32) error
	RemoveFromCart(ctx context.Context, sessionID, generatorID string)
	Clear(ctx context.Context, sessionID string)
	Count(ctx context.Context, sessionID string) int32
	AvailableUnits(ctx context.Context, generatorID string) (int32, error)
	TotalCost(ctx context.Context, sessionID string, start, end time.Time) (int32, error)
}

type CheckoutInput struct {
	SessionID string
	Name      string
	Phone     string
	Address   string
	StartDate time.Time
	EndDate   time.Time
	OTPToken  string
	OTPCode   string
}

type CheckoutService interface {
	// RequestOTP issues a confirmation code for the phone number and
	// returns the token to confirm it with. Delivery is simulated.
	RequestOTP(ctx context.Context, phone string) (string, error)
	// Checkout verifies the OTP, resolves the customer by phone (creating
	// an Online customer when the number is new), snapshots first-N
	// available units per cart line into a single Pending booking and
	// clears the cart. Unit statuses are not changed here; that happens
	// at admin approval.
	Checkout(ctx context.Context, input CheckoutInput) (*domain.Booking, error)
}

type CustomerService interface {
	AddCustomer(ctx context.Context, name, phone, address string, ctype domain.CustomerType) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, update CustomerUpdate) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerUpdate holds the admin-editable customer fields. TotalBookings
// is deliberately absent; the counter is owned by booking creation.
type CustomerUpdate struct {
	Name    *string
	Phone   *string
	Address *string
	Type    *domain.CustomerType
}

type PaymentService interface {
	RecordPayment(ctx context.Context, bookingID string, amount int32, method string, status domain.PaymentStatus) (*domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

type ReviewService interface {
	AddReview(ctx context.Context, customerName string, rating int32, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type InquiryService interface {
	AddInquiry(ctx context.Context, customerName, customerPhone, generatorID string) (*domain.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context) ([]domain.Inquiry, error)
}

type AuthService interface {
	// Login checks the demo back-office credential and returns a session
	// token. Not a security boundary.
	Login(ctx context.Context, email, password string) (string, error)
}

type RecommendationInput struct {
	UseCase    string
	PowerNeeds int32
	Budget     string
}

type RecommendationResult struct {
	Generator *domain.Generator
	Reasoning string
}

type RecommendationService interface {
	// Recommend asks the completion service for the best catalog match.
	// Generator is nil when nothing fits; Reasoning explains either way.
	Recommend(ctx context.Context, input RecommendationInput) (*RecommendationResult, error)
}

// OTPProvider issues and validates checkout confirmation codes.
type OTPProvider interface {
	SendOTP(ctx context.Context, phone string) (string, error)
	ValidateOTP(ctx context.Context, token, code string) error
}
