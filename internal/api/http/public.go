package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/service"
)

type publicHandler struct {
	svcs Services
}

func (h *publicHandler) listGenerators(w http.ResponseWriter, r *http.Request) {
	generators, err := h.svcs.Catalog.ListGenerators(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generators)
}

func (h *publicHandler) getGenerator(w http.ResponseWriter, r *http.Request) {
	gen, err := h.svcs.Catalog.GetGenerator(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen)
}

func (h *publicHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svcs.Review.ListReviews(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

type addReviewRequest struct {
	CustomerName string `json:"customerName"`
	Rating       int32  `json:"rating"`
	Comment      string `json:"comment"`
}

func (h *publicHandler) addReview(w http.ResponseWriter, r *http.Request) {
	var req addReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	review, err := h.svcs.Review.AddReview(r.Context(), req.CustomerName, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusCreated, review)
}

type addInquiryRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	GeneratorID   string `json:"generatorId"`
}

func (h *publicHandler) addInquiry(w http.ResponseWriter, r *http.Request) {
	var req addInquiryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	inquiry, err := h.svcs.Inquiry.AddInquiry(r.Context(), req.CustomerName, req.CustomerPhone, req.GeneratorID)
	if err != nil {
		writeError(w, err)
		return
	}
	respondWith(w, r, h.svcs.Data, http.StatusCreated, inquiry)
}

type recommendRequest struct {
	UseCase    string `json:"useCase"`
	PowerNeeds int32  `json:"powerNeeds"`
	Budget     string `json:"budget"`
}

type recommendResponse struct {
	Generator *domain.Generator `json:"generator,omitempty"`
	Reasoning string            `json:"reasoning"`
}

func (h *publicHandler) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := h.svcs.Recommend.Recommend(r.Context(), service.RecommendationInput{
		UseCase:    req.UseCase,
		PowerNeeds: req.PowerNeeds,
		Budget:     req.Budget,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendResponse{Generator: result.Generator, Reasoning: result.Reasoning})
}
