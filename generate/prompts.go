package generate

import (
	"fmt"

	"privacypage-api/models"
)

// systemPrompts tune each provider call to the document type being drafted.
var systemPrompts = map[string]string{
	models.DocTypePrivacy:    "You are a legal document generator specializing in privacy policies for mobile and web applications. Generate professional, comprehensive, and legally-compliant privacy policies.",
	models.DocTypeTos:        "You are a legal document generator specializing in Terms of Service agreements for digital products and services.",
	models.DocTypeEula:       "You are a legal document generator specializing in End-User License Agreements for software applications.",
	models.DocTypeCookie:     "You are a legal document generator specializing in Cookie Policies for websites and web applications.",
	models.DocTypeDisclaimer: "You are a legal document generator specializing in Disclaimers for websites, apps, and digital content.",
}

// buildPrompt renders the provider-agnostic prompt for a request: the user's
// structured answers, today's date, and the structural contract (required
// heading, section list, minimum length) the completion must satisfy.
func buildPrompt(req models.DocumentRequest, date string) (system, prompt string) {
	system = systemPrompts[req.DocType]
	switch req.DocType {
	case models.DocTypeTos:
		prompt = fmt.Sprintf(`Generate a professional, legally-compliant Terms of Service (ToS) agreement. Output ONLY the Terms of Service text in Markdown format.

Service Details:
- Service Name: %v
- Company Info: %v
- Platform: %v
- Key Policies: %v
- Jurisdiction: %v

Requirements:
1. Start with "# Terms of Service for [Service Name]"
2. Include effective date (today: %v)
3. Include these sections:
   - Acceptance of Terms
   - Description of Service
   - User Accounts and Registration
   - User Responsibilities and Conduct
   - Intellectual Property Rights
   - Payment Terms (if applicable based on key policies)
   - Refund Policy (based on key policies)
   - Content and User-Generated Content (if applicable)
   - Account Termination and Suspension
   - Disclaimers and Limitations of Liability
   - Indemnification
   - Governing Law and Dispute Resolution
   - Changes to Terms
   - Contact Information
4. Be specific about the policies mentioned in key policies
5. Use clear, legally sound language
6. Be comprehensive (at least 60 lines)`,
			req.Field("serviceName", "Service"),
			req.Field("companyInfo", "Company"),
			req.Field("platform", "Web App"),
			req.Field("keyPolicies", "Standard policies"),
			req.Field("jurisdiction", "USA"),
			date)

	case models.DocTypeEula:
		prompt = fmt.Sprintf(`Generate a professional, legally-compliant End-User License Agreement (EULA). Output ONLY the EULA text in Markdown format.

App Details:
- App/Company: %v
- Platform: %v
- License Type: %v
- Restrictions: %v

Requirements:
1. Start with "# End-User License Agreement (EULA) for [App Name]"
2. Include effective date (today: %v)
3. Include these sections:
   - Grant of License
   - License Restrictions
   - Intellectual Property Rights
   - User Responsibilities
   - Installation and Use
   - Updates and Maintenance
   - Termination
   - Warranty Disclaimers
   - Limitation of Liability
   - Governing Law
   - Entire Agreement
   - Contact Information
4. Be specific about license type (%v) and restrictions
5. Use clear, legally binding language
6. Be comprehensive (at least 50 lines)`,
			req.Field("appName", "App"),
			req.Field("platform", "All Platforms"),
			req.Field("licenseType", "Paid"),
			req.Field("restrictions", "Standard restrictions"),
			date,
			req.Field("licenseType", "Paid"))

	case models.DocTypeCookie:
		prompt = fmt.Sprintf(`Generate a professional, legally-compliant Cookie Policy. Output ONLY the Cookie Policy text in Markdown format.

Website Details:
- Website Name & URL: %v
- Cookie Types: %v
- Third-Party Services: %v
- Contact Email: %v

Requirements:
1. Start with "# Cookie Policy for [Website Name]"
2. Include effective date (today: %v)
3. Include these sections:
   - What Are Cookies
   - How We Use Cookies
   - Types of Cookies We Use (specific to the cookie types mentioned)
   - Third-Party Cookies (specific to services mentioned)
   - Managing Your Cookie Preferences
   - Browser Controls
   - Updates to This Policy
   - Contact Us
4. Be specific about the cookie types and third-party services
5. Include EU Cookie Law (GDPR) compliance information
6. Explain how to opt-out and manage cookies
7. Be comprehensive but readable (at least 40 lines)`,
			req.Field("websiteName", "Website"),
			req.Field("cookieTypes", "Essential cookies"),
			req.Field("thirdPartyServices", "None"),
			req.Field("contactEmail", "contact@website.com"),
			date)

	case models.DocTypeDisclaimer:
		prompt = fmt.Sprintf(`Generate a professional, legally-sound Disclaimer. Output ONLY the Disclaimer text in Markdown format.

Website/App Details:
- Name & Company: %v
- Disclaimer Type: %v
- External Links: %v
- Contact Email: %v

Requirements:
1. Start with "# Disclaimer for [Website/App Name]"
2. Include effective date (today: %v)
3. Include these sections based on disclaimer type:
   - General Information
   - No Warranties (applicable to all)
   - Limitation of Liability
   - Type-specific disclaimers (medical, financial, legal, etc.)
   - External Links Disclaimer (if applicable)
   - Fair Use Notice (if relevant)
   - Errors and Omissions
   - Contact Information
4. Be specific to the disclaimer type: %v
5. Use legally protective language
6. Be comprehensive (at least 40 lines)`,
			req.Field("websiteName", "Website"),
			req.Field("disclaimerType", "General"),
			req.Field("externalLinks", "No"),
			req.Field("contactEmail", "contact@website.com"),
			date,
			req.Field("disclaimerType", "General"))

	default: // privacy
		prompt = fmt.Sprintf(`Generate a professional, legally-compliant privacy policy for the following app. Output ONLY the privacy policy text in Markdown format. Make it thorough, professional, and specific to this app's data practices.

App Details:
- App Name: %v
- Platform: %v
- Company/Developer: %v
- Contact Email: %v
- Data Collected: %v
- Third-Party Services: %v
- Children Under 13: %v

Requirements:
1. Start with "# Privacy Policy for [App Name]"
2. Include effective date (today: %v)
3. Include these sections:
   - Information We Collect
   - How We Use Your Information
   - Data Sharing and Third Parties
   - Data Security
   - Your Rights (GDPR section for EU users)
   - California Privacy Rights (CCPA)
   - Children's Privacy (COPPA if applicable)
   - Data Retention
   - Changes to This Policy
   - Contact Us
4. Be specific about the data types and third-party services mentioned
5. Use clear, readable language
6. Make it App Store / Play Store compliant
7. Include specific rights under GDPR (access, rectification, erasure, portability, restriction, objection)
8. Be at least 50 lines long for completeness`,
			req.Field("appName", "App"),
			req.Field("platform", "Mobile"),
			req.Field("companyInfo", "Developer"),
			req.Field("contactEmail", "N/A"),
			req.Field("dataCollected", "General usage data"),
			req.Field("thirdParties", "None"),
			req.Field("childrenData", "No"),
			date)
	}
	return system, prompt
}
