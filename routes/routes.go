// Package routes holds the gin handlers. Route registration happens in
// main.go; each handler lives on a Server carrying its dependencies.
package routes

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"privacypage-api/doctemplates"
	"privacypage-api/entitlement"
	"privacypage-api/generate"
	"privacypage-api/helpers"
	"privacypage-api/models"
	"privacypage-api/payments"
	"privacypage-api/pricing"
)

// Server carries the service dependencies into the gin handlers.
type Server struct {
	Prices        *pricing.Resolver
	Generator     *generate.Orchestrator
	Orders        *payments.OrderService
	Verifier      *payments.Verifier
	Entitlements  *entitlement.Service
	AllowedOrigin string
}

// SetCORS sets the origin and header CORS response headers. The per-route
// allowed methods are set next to each route registration.
func (s *Server) SetCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", s.AllowedOrigin)
	c.Header("Access-Control-Allow-Headers", "Content-Type, X-Timezone")
}

// Preflight answers a CORS OPTIONS request for a route accepting the given
// methods.
func (s *Server) Preflight(methods string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.SetCORS(c)
		c.Header(helpers.AccessControlAllowMethods, methods)
		helpers.Simple200OK(c)
	}
}

// Ping answers the health check.
func (s *Server) Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}

// Pricing quotes localized prices for the visitor. The timezone comes from
// the X-Timezone header or tz query param, the language from Accept-Language.
func (s *Server) Pricing(c *gin.Context) {
	s.SetCORS(c)
	tz := c.Query("tz")
	if tz == "" {
		tz = c.GetHeader("X-Timezone")
	}
	quote := s.Prices.Quote(tz, primaryLanguage(c.GetHeader("Accept-Language")))
	c.JSON(200, quote)
}

// primaryLanguage extracts the first tag of an Accept-Language header.
func primaryLanguage(header string) string {
	lang := strings.Split(header, ",")[0]
	lang = strings.Split(lang, ";")[0]
	return strings.TrimSpace(lang)
}

// Generate returns a handler producing the given document type. The request
// body is a flat object of wizard field answers.
func (s *Server) Generate(docType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.SetCORS(c)
		var fields map[string]string
		if err := c.ShouldBindJSON(&fields); err != nil {
			helpers.JSONError(c, 400, "Invalid request body")
			return
		}
		doc, err := s.Generator.Generate(c.Request.Context(), models.DocumentRequest{
			DocType: docType,
			Fields:  fields,
		})
		if err != nil {
			log.Printf("generation failed for %v: %v", docType, err.Error())
			helpers.JSONError(c, 500, "Failed to generate document")
			return
		}
		c.JSON(200, models.GenerateResponse{Policy: doc.Markdown})
	}
}

// CreateOrder validates the purchase against the price table and registers a
// gateway order.
func (s *Server) CreateOrder(c *gin.Context) {
	s.SetCORS(c)
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.JSONError(c, 400, "Invalid request body")
		return
	}

	resp, err := s.Orders.CreateOrder(c.Request.Context(), req)
	switch err {
	case nil:
		c.JSON(200, resp)
	case payments.ErrInvalidDocType:
		helpers.JSONError(c, 400, "Invalid document type")
	case pricing.ErrUnsupportedCurrency:
		helpers.JSONError(c, 400, "Unsupported currency")
	case payments.ErrInvalidAmount:
		helpers.JSONError(c, 400, "Invalid amount")
	case payments.ErrNotConfigured:
		helpers.JSONError(c, 500, "Payment not configured")
	default:
		log.Printf("create-order failed for %v/%v: %v", req.DocType, req.Currency, err.Error())
		helpers.JSONError(c, 500, "Failed to create order")
	}
}

// VerifyPayment checks the gateway signature and issues a license key.
func (s *Server) VerifyPayment(c *gin.Context) {
	s.SetCORS(c)
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.JSONError(c, 400, "Invalid request body")
		return
	}

	resp := s.Verifier.Verify(c.Request.Context(), req)
	if !resp.Verified {
		c.JSON(400, resp)
		return
	}
	c.JSON(200, resp)
}

// RestoreLicense looks up past purchases by license key or email.
func (s *Server) RestoreLicense(c *gin.Context) {
	s.SetCORS(c)
	var req models.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.JSONError(c, 400, "Invalid request body")
		return
	}
	if req.LicenseKey == "" && req.Email == "" {
		helpers.JSONError(c, 400, "License key or email is required")
		return
	}

	resp, err := s.Entitlements.Restore(c.Request.Context(), req)
	if err != nil {
		log.Printf("license restore failed: %v", err.Error())
		helpers.JSONError(c, 500, "Failed to restore purchases")
		return
	}
	if !resp.Found {
		c.JSON(404, models.RestoreResponse{Found: false, Error: "No purchase found"})
		return
	}
	c.JSON(200, resp)
}

// WizardConfig serves the intake step configuration for a document type.
func (s *Server) WizardConfig(c *gin.Context) {
	s.SetCORS(c)
	c.JSON(200, doctemplates.WizardConfigFor(c.Param("docType")))
}
