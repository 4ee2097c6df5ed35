package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/service"
	"rentalhq-backend/internal/utils"
)

type adminHandler struct {
	svcs Services
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *adminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	token, err := h.svcs.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// allData serves the whole collection set in one response; the admin UI
// re-fetches it after every mutation instead of patching local state.
func (h *adminHandler) allData(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svcs.Data.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

type generatorRequest struct {
	Name          *string                 `json:"name"`
	Capacity      *int32                  `json:"capacity"`
	PricePerDay   *int32                  `json:"pricePerDay"`
	PricePerMonth *int32                  `json:"pricePerMonth"`
	ImageURL      *string                 `json:"imageUrl"`
	FuelType      *domain.FuelType        `json:"fuelType"`
	Featured      *bool                   `json:"featured"`
	Description   *string                 `json:"description"`
	Units         *[]domain.GeneratorUnit `json:"units"`
}

func (h *adminHandler) addGenerator(w http.ResponseWriter, r *http.Request) {
	var req generatorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	gen := domain.Generator{}
	if req.Name != nil {
		gen.Name = *req.Name
	}
	if req.Capacity != nil {
		gen.Capacity = *req.Capacity
	}
	if req.PricePerDay != nil {
		gen.PricePerDay = *req.PricePerDay
	}
	if req.PricePerMonth != nil {
		gen.PricePerMonth = *req.PricePerMonth
	}
	if req.ImageURL != nil {
		gen.ImageURL = *req.ImageURL
	}
	if req.FuelType != nil {
		gen.FuelType = *req.FuelType
	}
	if req.Description != nil {
		gen.Description = *req.Description
	}
	if req.Units != nil {
		gen.Units = *req.Units
	}

	if err := h.svcs.Catalog.AddGenerator(r.Context(), &gen); err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusCreated, gen)
}

func (h *adminHandler) updateGenerator(w http.ResponseWriter, r *http.Request) {
	var req generatorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	gen, err := h.svcs.Catalog.UpdateGenerator(r.Context(), mux.Vars(r)["id"], service.GeneratorUpdate{
		Name:          req.Name,
		Capacity:      req.Capacity,
		PricePerDay:   req.PricePerDay,
		PricePerMonth: req.PricePerMonth,
		ImageURL:      req.ImageURL,
		FuelType:      req.FuelType,
		Featured:      req.Featured,
		Description:   req.Description,
		Units:         req.Units,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusOK, gen)
}

func (h *adminHandler) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svcs.Booking.ListBookings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

type manualBookingRequest struct {
	CustomerID  string `json:"customerId"`
	GeneratorID string `json:"generatorId"`
	Quantity    int32  `json:"quantity"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (h *adminHandler) createManualBooking(w http.ResponseWriter, r *http.Request) {
	var req manualBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, wrapValidation(err))
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, wrapValidation(err))
		return
	}

	booking, err := h.svcs.Booking.CreateManualBooking(r.Context(), service.ManualBookingInput{
		CustomerID:  req.CustomerID,
		GeneratorID: req.GeneratorID,
		Quantity:    req.Quantity,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusCreated, booking)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *adminHandler) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.svcs.Booking.UpdateBookingStatus(r.Context(), mux.Vars(r)["id"], domain.BookingStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusOK, booking)
}

func (h *adminHandler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svcs.Payment.ListPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

type recordPaymentRequest struct {
	BookingID string `json:"bookingId"`
	Amount    int32  `json:"amount"`
	Method    string `json:"method"`
	Status    string `json:"status"`
}

func (h *adminHandler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	payment, err := h.svcs.Payment.RecordPayment(r.Context(), req.BookingID, req.Amount, req.Method, domain.PaymentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusCreated, payment)
}

func (h *adminHandler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	payment, err := h.svcs.Payment.UpdatePaymentStatus(r.Context(), mux.Vars(r)["id"], domain.PaymentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusOK, payment)
}

func (h *adminHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svcs.Customer.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

type customerRequest struct {
	Name    *string              `json:"name"`
	Phone   *string              `json:"phone"`
	Address *string              `json:"address"`
	Type    *domain.CustomerType `json:"type"`
}

func (h *adminHandler) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var name, phone, address string
	ctype := domain.CustomerTypeOffline
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Address != nil {
		address = *req.Address
	}
	if req.Type != nil {
		ctype = *req.Type
	}

	customer, err := h.svcs.Customer.AddCustomer(r.Context(), name, phone, address, ctype)
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusCreated, customer)
}

func (h *adminHandler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	customer, err := h.svcs.Customer.UpdateCustomer(r.Context(), mux.Vars(r)["id"], service.CustomerUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Type:    req.Type,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusOK, customer)
}

func (h *adminHandler) listInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.svcs.Inquiry.ListInquiries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inquiries)
}

func (h *adminHandler) updateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	inquiry, err := h.svcs.Inquiry.UpdateInquiryStatus(r.Context(), mux.Vars(r)["id"], domain.InquiryStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusOK, inquiry)
}
