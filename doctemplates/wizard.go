package doctemplates

import "privacypage-api/models"

// WizardStep is one question of a document's intake flow.
type WizardStep struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
}

// WizardConfig describes the intake flow for one document type. Clients
// render these steps and post the answers keyed by step id.
type WizardConfig struct {
	Type        string       `json:"type"`
	DisplayName string       `json:"displayName"`
	Description string       `json:"description"`
	Steps       []WizardStep `json:"steps"`
}

// WizardConfigFor returns the intake config for the type, falling back to the
// privacy policy config for anything unknown.
func WizardConfigFor(docType string) WizardConfig {
	if cfg, ok := wizardConfigs[docType]; ok {
		return cfg
	}
	return wizardConfigs[models.DocTypePrivacy]
}

var wizardConfigs = map[string]WizardConfig{
	models.DocTypePrivacy: {
		Type:        models.DocTypePrivacy,
		DisplayName: "Privacy Policy",
		Description: "GDPR & CCPA compliant privacy policy for your app or website",
		Steps: []WizardStep{
			{ID: "appName", Label: "What's your app/website name?", Placeholder: "e.g. MyApp", Type: "text"},
			{ID: "platform", Label: "What platform is it on?", Type: "select",
				Options: []string{"iOS", "Android", "Both (iOS & Android)", "Web App", "All Platforms"}},
			{ID: "companyInfo", Label: "Company name & contact email", Placeholder: "e.g. Acme Inc., privacy@acme.com", Type: "text"},
			{ID: "dataCollected", Label: "What data do you collect?", Type: "multiselect",
				Options: []string{
					"Name & Email", "Phone Number", "Location Data", "Photos / Camera",
					"Device Info", "Usage Analytics", "Payment Info", "Health Data",
					"No Personal Data",
				}},
			{ID: "thirdParties", Label: "Third-party services used?", Type: "multiselect",
				Options: []string{
					"Google Analytics / Firebase", "Facebook SDK", "AdMob / Ads",
					"Stripe / Payments", "Sentry / Crashlytics", "Mixpanel / Amplitude",
					"Push Notifications", "None",
				}},
			{ID: "childrenData", Label: "Is it directed at children under 13?", Type: "select",
				Options: []string{"No", "Yes", "Partially (some content for children)"}},
		},
	},
	models.DocTypeTos: {
		Type:        models.DocTypeTos,
		DisplayName: "Terms of Service",
		Description: "Legal agreement between you and your users",
		Steps: []WizardStep{
			{ID: "serviceName", Label: "What's your app/service name?", Placeholder: "e.g. MyApp", Type: "text"},
			{ID: "companyInfo", Label: "Company name & contact email", Placeholder: "e.g. Acme Inc., legal@acme.com", Type: "text"},
			{ID: "platform", Label: "What platform?", Type: "select",
				Options: []string{"Web App", "Mobile App (iOS/Android)", "Both", "SaaS Platform"}},
			{ID: "keyPolicies", Label: "Key policies for your service", Type: "multiselect",
				Options: []string{
					"Refunds allowed", "No refunds", "User-generated content",
					"Account termination rights", "Subscription auto-renewal",
					"Free trial terms", "Intellectual property protection",
				}},
			{ID: "jurisdiction", Label: "Governing law jurisdiction", Placeholder: "e.g. California, USA or London, UK", Type: "text"},
		},
	},
	models.DocTypeEula: {
		Type:        models.DocTypeEula,
		DisplayName: "EULA",
		Description: "End-User License Agreement for your software",
		Steps: []WizardStep{
			{ID: "appName", Label: "App name & company name", Placeholder: "e.g. MyApp by Acme Inc.", Type: "text"},
			{ID: "platform", Label: "What platform?", Type: "select",
				Options: []string{"iOS", "Android", "Desktop (Windows/Mac)", "Web", "All Platforms"}},
			{ID: "licenseType", Label: "License type", Type: "select",
				Options: []string{"Free", "Paid (one-time)", "Freemium", "Subscription"}},
			{ID: "restrictions", Label: "Usage restrictions", Type: "multiselect",
				Options: []string{
					"No reverse engineering", "No redistribution", "No modifications",
					"No commercial use (free apps)", "No resale", "Single user license",
				}},
		},
	},
	models.DocTypeCookie: {
		Type:        models.DocTypeCookie,
		DisplayName: "Cookie Policy",
		Description: "Explain what cookies your website uses",
		Steps: []WizardStep{
			{ID: "websiteName", Label: "Website/app name & URL", Placeholder: "e.g. MyApp, https://myapp.com", Type: "text"},
			{ID: "cookieTypes", Label: "Cookie types used", Type: "multiselect",
				Options: []string{
					"Essential cookies", "Analytics cookies", "Advertising cookies",
					"Functional cookies", "Performance cookies", "Social media cookies",
				}},
			{ID: "thirdPartyServices", Label: "Third-party cookie services", Type: "multiselect",
				Options: []string{
					"Google Analytics", "Google Ads", "Facebook Pixel", "Twitter/X tracking",
					"LinkedIn Insight", "Hotjar", "Stripe", "None",
				}},
			{ID: "contactEmail", Label: "Contact email", Placeholder: "e.g. privacy@myapp.com", Type: "text"},
		},
	},
	models.DocTypeDisclaimer: {
		Type:        models.DocTypeDisclaimer,
		DisplayName: "Disclaimer",
		Description: "Limit liability and set expectations for your content",
		Steps: []WizardStep{
			{ID: "websiteName", Label: "Website/app name & company name", Placeholder: "e.g. MyApp by Acme Inc.", Type: "text"},
			{ID: "disclaimerType", Label: "Disclaimer type", Type: "select",
				Options: []string{
					disclaimerGeneral, disclaimerMedical, disclaimerFinancial,
					disclaimerFitness, disclaimerLegal, disclaimerAffiliate,
				}},
			{ID: "externalLinks", Label: "Do you link to external sites?", Type: "select",
				Options: []string{"Yes", "No"}},
			{ID: "contactEmail", Label: "Contact email", Placeholder: "e.g. info@myapp.com", Type: "text"},
		},
	},
}
