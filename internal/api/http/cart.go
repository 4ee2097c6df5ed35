package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/service"
	"rentalhq-backend/internal/utils"
)

// sessionHeader carries the cart session id. The server issues one on the
// first cart request and echoes it back; the storefront client keeps
// sending it for the life of the browsing session.
const sessionHeader = "X-Cart-Session"

type cartHandler struct {
	svcs Services
}

func (h *cartHandler) session(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(sessionHeader, id)
	return id
}

type cartLineView struct {
	Generator *domain.Generator `json:"generator"`
	Quantity  int32             `json:"quantity"`
}

type cartView struct {
	Items []cartLineView `json:"items"`
	Count int32          `json:"count"`
}

func (h *cartHandler) view(w http.ResponseWriter, r *http.Request, sessionID string) {
	lines := h.svcs.Cart.Items(r.Context(), sessionID)
	items := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		gen, err := h.svcs.Catalog.GetGenerator(r.Context(), line.GeneratorID)
		if err != nil {
			continue
		}
		items = append(items, cartLineView{Generator: gen, Quantity: line.Quantity})
	}
	writeJSON(w, http.StatusOK, cartView{Items: items, Count: h.svcs.Cart.Count(r.Context(), sessionID)})
}

func (h *cartHandler) get(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, h.session(w, r))
}

type addToCartRequest struct {
	GeneratorID string `json:"generatorId"`
}

func (h *cartHandler) add(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)
	var req addToCartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svcs.Cart.AddToCart(r.Context(), sessionID, req.GeneratorID); err != nil {
		writeError(w, err)
		return
	}
	h.view(w, r, sessionID)
}

type updateQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *cartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)
	var req updateQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svcs.Cart.UpdateQuantity(r.Context(), sessionID, mux.Vars(r)["generatorId"], req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.view(w, r, sessionID)
}

func (h *cartHandler) remove(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)
	h.svcs.Cart.RemoveFromCart(r.Context(), sessionID, mux.Vars(r)["generatorId"])
	h.view(w, r, sessionID)
}

type cartTotalResponse struct {
	RentalDays int32 `json:"rentalDays"`
	TotalCost  int32 `json:"totalCost"`
}

func (h *cartHandler) total(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)
	start, err := utils.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, wrapValidation(err))
		return
	}
	end, err := utils.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, wrapValidation(err))
		return
	}

	days, err := utils.RentalDays(start, end)
	if err != nil {
		writeError(w, wrapValidation(err))
		return
	}
	total, err := h.svcs.Cart.TotalCost(r.Context(), sessionID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartTotalResponse{RentalDays: days, TotalCost: total})
}

type requestOTPRequest struct {
	Phone string `json:"phone"`
}

type requestOTPResponse struct {
	Token string `json:"token"`
}

func (h *cartHandler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req requestOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}
	token, err := h.svcs.Checkout.RequestOTP(r.Context(), req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requestOTPResponse{Token: token})
}

type checkoutRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	OTPToken  string `json:"otpToken"`
	OTPCode   string `json:"otpCode"`
}

func (h *cartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)
	var req checkoutRequest
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

	booking, err := h.svcs.Checkout.Checkout(r.Context(), service.CheckoutInput{
		SessionID: sessionID,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		StartDate: start,
		EndDate:   end,
		OTPToken:  req.OTPToken,
		OTPCode:   req.OTPCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusCreated, booking)
}
