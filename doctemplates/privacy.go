package doctemplates

import "fmt"

func privacyCompany(d doc) (string, string) {
	return splitPair(d.field("companyInfo", ""))
}

var privacySections = []section{
	always(func(d doc) string {
		app := d.field("appName", "App")
		company, _ := privacyCompany(d)
		if company == "" {
			company = "The developer"
		}
		return fmt.Sprintf(`# Privacy Policy for %v

**Effective Date:** %v

%v ("we," "us," or "our") operates %v (the "App"). This page informs you of our policies regarding the collection, use, and disclosure of personal data when you use our App.`, app, d.date, company, app)
	}),

	always(func(d doc) string {
		collected := d.req.Selected("dataCollected")
		if len(collected) == 0 {
			collected = []string{"General usage data"}
		}
		return "## Information We Collect\n\nWe collect the following types of information:\n" + bulletList(collected)
	}),

	always(fixed(`## How We Use Your Information

We use collected data to:
- Provide and maintain our App
- Improve user experience
- Send important notices and updates
- Analyze usage patterns`)),

	always(func(d doc) string {
		services := d.req.Selected("thirdParties")
		if len(services) == 0 {
			services = []string{"None"}
		}
		return `## Third-Party Services

Our App uses the following third-party services:
` + bulletList(services) + `

Each third-party service has its own Privacy Policy. We encourage you to review them.`
	}),

	always(fixed(`## Data Security

We value your trust and strive to use commercially acceptable means of protecting your personal data. However, no method of electronic transmission or storage is 100% secure.`)),

	always(fixed(`## Your Rights (GDPR)

If you are in the European Economic Area, you have rights including:
- Right to access your personal data
- Right to rectification
- Right to erasure
- Right to data portability
- Right to restrict processing
- Right to object to processing`)),

	always(fixed(`## California Privacy Rights (CCPA)

California residents have the right to:
- Know what personal data is collected
- Request deletion of personal data
- Opt out of data sales (we do not sell data)`)),

	always(func(d doc) string {
		body := "Our App is not directed at children under 13. We do not knowingly collect data from children."
		if d.field("childrenData", "No") == "Yes" {
			body = "Our App is directed at children under 13. We comply with COPPA requirements."
		}
		return "## Children's Privacy\n\n" + body
	}),

	always(fixed(`## Data Retention

We retain personal data only for as long as necessary to provide the App and fulfill the purposes described in this policy. When data is no longer needed, it is deleted or anonymized.`)),

	always(func(d doc) string {
		_, email := privacyCompany(d)
		if email == "" {
			email = "N/A"
		}
		return fmt.Sprintf(`## Contact Us

For privacy inquiries, contact us at: %v`, email)
	}),

	always(fixed(`## Changes to This Policy

We may update this Privacy Policy from time to time. We will notify you of changes by posting the new policy on this page.`)),
}
