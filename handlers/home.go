// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/models"
)

const greeting = "Hi! Tell me about the habits you want to keep"

type HomeHandler struct {
	quotes QuoteSource
}

func NewHomeHandler(quotes QuoteSource) *HomeHandler {
	return &HomeHandler{quotes: quotes}
}

// Home handles GET /
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HomeResponse{
		Message: greeting,
		Quote:   h.quotes.Next(),
	})
}

// NextQuote handles GET /quotes/next
func (h *HomeHandler) NextQuote(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.QuoteResponse{Quote: h.quotes.Next()})
}
