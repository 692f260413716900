package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"privacypage-api/config"
	"privacypage-api/entitlement"
	"privacypage-api/generate"
	"privacypage-api/helpers"
	"privacypage-api/ledger"
	"privacypage-api/models"
	"privacypage-api/payments"
	"privacypage-api/pricing"
	"privacypage-api/routes"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err.Error())
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err.Error())
	}

	store, err := ledger.NewPostgresStore(context.Background(), conf.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open purchase ledger: %v", err.Error())
	}
	defer store.Close()

	var providers []generate.Provider
	if conf.OpenRouterAPIKey != "" {
		providers = append(providers, generate.NewOpenRouterProvider(conf.OpenRouterAPIKey))
	}
	if conf.AnthropicAPIKey != "" {
		providers = append(providers, generate.NewAnthropicProvider(conf.AnthropicAPIKey))
	}
	if len(providers) == 0 {
		log.Printf("no generation providers configured, documents come from templates")
	}

	prices := pricing.NewResolver(conf.PricingOverrides)
	s := &routes.Server{
		Prices:        prices,
		Generator:     generate.NewOrchestrator(providers...),
		Orders:        payments.NewOrderService(payments.NewRazorpayGateway(conf.RazorpayKeyID, conf.RazorpayKeySecret), prices),
		Verifier:      payments.NewVerifier(conf.RazorpayKeySecret, conf.LicenseKeyPrefix, store),
		Entitlements:  entitlement.NewService(store),
		AllowedOrigin: conf.AllowedOrigin,
	}

	// start up the api server
	r := gin.Default()
	r.GET("/ping", s.Ping)

	generatePaths := map[string]string{
		models.DocTypePrivacy:    "/api/generate",
		models.DocTypeTos:        "/api/generate/tos",
		models.DocTypeEula:       "/api/generate/eula",
		models.DocTypeCookie:     "/api/generate/cookie",
		models.DocTypeDisclaimer: "/api/generate/disclaimer",
	}
	for docType, path := range generatePaths {
		r.OPTIONS(path, s.Preflight(helpers.CORSMethodsOptPost))
		r.POST(path, s.Generate(docType))
	}

	r.OPTIONS("/api/pricing", s.Preflight(helpers.CORSMethodsOptGet))
	r.GET("/api/pricing", s.Pricing)

	r.OPTIONS("/api/payment/create-order", s.Preflight(helpers.CORSMethodsOptPost))
	r.POST("/api/payment/create-order", s.CreateOrder)

	r.OPTIONS("/api/payment/verify", s.Preflight(helpers.CORSMethodsOptPost))
	r.POST("/api/payment/verify", s.VerifyPayment)

	r.OPTIONS("/api/license/verify", s.Preflight(helpers.CORSMethodsOptPost))
	r.POST("/api/license/verify", s.RestoreLicense)

	r.OPTIONS("/api/wizard/:docType", s.Preflight(helpers.CORSMethodsOptGet))
	r.GET("/api/wizard/:docType", s.WizardConfig)

	err = r.Run(fmt.Sprintf("%v:%v", conf.BindAddr, conf.BindPort))
	if err != nil {
		log.Fatalf("error running gin: %v", err.Error())
	}
}
