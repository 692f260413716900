package doctemplates

import (
	"fmt"
	"strings"
)

// Usage-restriction options of the EULA wizard.
const (
	eulaNoReverseEngineering = "No reverse engineering"
	eulaNoRedistribution     = "No redistribution"
	eulaNoModifications      = "No modifications"
	eulaNoCommercialUse      = "No commercial use (free apps)"
	eulaNoResale             = "No resale"
	eulaSingleUser           = "Single user license"
)

// License-type choices of the EULA wizard.
const (
	eulaLicenseFree         = "Free"
	eulaLicensePaid         = "Paid (one-time)"
	eulaLicenseSubscription = "Subscription"
)

// eulaParties splits the "MyApp by Acme Inc." field into app and company.
func eulaParties(d doc) (string, string) {
	raw := d.field("appName", "App")
	parts := strings.SplitN(raw, " by ", 2)
	app := strings.TrimSpace(parts[0])
	company := ""
	if len(parts) == 2 {
		company = strings.TrimSpace(parts[1])
	}
	return app, company
}

func eulaCompanyOr(d doc, fallback string) string {
	_, company := eulaParties(d)
	if company == "" {
		return fallback
	}
	return company
}

var eulaSections = []section{
	always(func(d doc) string {
		app, _ := eulaParties(d)
		company := eulaCompanyOr(d, "the developer")
		return fmt.Sprintf(`# End-User License Agreement (EULA) for %v

**Effective Date:** %v

This End-User License Agreement ("Agreement") is between you and %v ("Licensor") regarding your use of %v (the "Application").

By installing, accessing, or using the Application, you agree to be bound by this Agreement.`, app, d.date, company, app)
	}),

	always(func(d doc) string {
		company := eulaCompanyOr(d, "The Licensor")
		grant := "limited, non-exclusive, non-transferable"
		scope := "Use the Application in accordance with this Agreement"
		switch d.field("licenseType", "") {
		case eulaLicenseFree:
			grant = "free, non-exclusive, non-transferable"
			scope = "Use the Application for personal, non-commercial purposes"
		case eulaLicenseSubscription:
			grant = "subscription-based, non-exclusive, non-transferable"
			scope = "Continue use for the duration of your active subscription"
		}
		out := fmt.Sprintf(`## 1. Grant of License

%v grants you a %v license to:
- Install and use the Application on authorized devices
- Access the Application's features and functionality
- %v`, company, grant, scope)
		if d.has("restrictions", eulaSingleUser) {
			out += "\n\nThis license is for a single user only and may not be shared."
		}
		return out
	}),

	always(func(d doc) string {
		var items []string
		if d.has("restrictions", eulaNoReverseEngineering) {
			items = append(items, "Reverse engineer, decompile, or disassemble the Application")
		}
		if d.has("restrictions", eulaNoRedistribution) {
			items = append(items, "Redistribute, sell, rent, lease, or lend the Application")
		}
		if d.has("restrictions", eulaNoModifications) {
			items = append(items, "Modify, adapt, or create derivative works of the Application")
		}
		if d.has("restrictions", eulaNoCommercialUse) {
			items = append(items, "Use the Application for commercial purposes")
		}
		if d.has("restrictions", eulaNoResale) {
			items = append(items, "Resell or transfer your license to another party")
		}
		items = append(items,
			"Remove or alter any copyright, trademark, or proprietary notices",
			"Use the Application for any illegal purpose",
			"Bypass any license validation or copy protection mechanisms",
			"Share your account credentials with others",
		)
		return "## 2. License Restrictions\n\nYou agree NOT to:\n" + bulletList(items)
	}),

	always(func(d doc) string {
		company := eulaCompanyOr(d, "the Licensor")
		return fmt.Sprintf(`## 3. Intellectual Property Rights

The Application and all intellectual property rights therein are owned by %v and are protected by copyright, trademark, patent, and other intellectual property laws.

This license does not grant you any ownership rights to the Application. All rights not expressly granted are reserved.`, company)
	}),

	always(fixed(`## 4. User Responsibilities

You are responsible for:
- Maintaining compatible hardware and operating systems
- Ensuring your use complies with applicable laws
- Maintaining the security of your account and credentials
- Any activities conducted under your account`)),

	always(func(d doc) string {
		blocks := []string{fmt.Sprintf(`## 5. Installation and Use

The Application is designed for %v. You may install it on devices you own or control in accordance with this license.`, d.field("platform", "multiple platforms"))}
		switch d.field("licenseType", "") {
		case eulaLicenseSubscription:
			blocks = append(blocks, `### Subscription Terms

Your subscription automatically renews until cancelled. You may cancel at any time. Access continues until the end of your current billing period.`)
		case eulaLicensePaid:
			blocks = append(blocks, `### License Activation

Your license is perpetual but may require activation. Keep your license key secure and do not share it.`)
		}
		return joinParagraphs(blocks)
	}),

	always(func(d doc) string {
		company := eulaCompanyOr(d, "The Licensor")
		return fmt.Sprintf(`## 6. Updates and Maintenance

%v may provide updates, patches, or new versions of the Application. Updates may be automatic or require your consent.

We are not obligated to provide support or maintenance, but may do so at our discretion.`, company)
	}),

	always(func(d doc) string {
		blocks := []string{`## 7. Termination

This Agreement is effective until terminated.

**Termination by You:** You may terminate by uninstalling the Application and destroying all copies.

**Termination by Licensor:** We may terminate your license if you breach this Agreement.`}
		if d.field("licenseType", "") == eulaLicenseSubscription {
			blocks = append(blocks, "Subscriptions terminate automatically if payment fails or you cancel.")
		}
		blocks = append(blocks, `Upon termination:
- You must cease all use of the Application
- Uninstall and delete all copies
- Your license rights immediately cease`)
		return joinParagraphs(blocks)
	}),

	always(func(d doc) string {
		company := strings.ToUpper(eulaCompanyOr(d, "THE LICENSOR"))
		return fmt.Sprintf(`## 8. Warranty Disclaimers

THE APPLICATION IS PROVIDED "AS IS" WITHOUT WARRANTIES OF ANY KIND, EXPRESS OR IMPLIED.

%v DISCLAIMS ALL WARRANTIES INCLUDING:
- MERCHANTABILITY
- FITNESS FOR A PARTICULAR PURPOSE
- NON-INFRINGEMENT
- ACCURACY OR RELIABILITY

We do not warrant that:
- The Application will be error-free or uninterrupted
- Defects will be corrected
- The Application is free from viruses or harmful components`, company)
	}),

	always(func(d doc) string {
		company := strings.ToUpper(eulaCompanyOr(d, "THE LICENSOR"))
		blocks := []string{fmt.Sprintf(`## 9. Limitation of Liability

TO THE MAXIMUM EXTENT PERMITTED BY LAW, %v SHALL NOT BE LIABLE FOR:
- Any indirect, incidental, special, or consequential damages
- Loss of profits, data, or business opportunities
- Damages arising from your use or inability to use the Application`, company)}
		switch d.field("licenseType", "") {
		case eulaLicensePaid:
			blocks = append(blocks, "Our total liability shall not exceed the amount you paid for the Application.")
		case eulaLicenseSubscription:
			blocks = append(blocks, "Our total liability shall not exceed the amount paid in the 12 months prior to the claim.")
		}
		blocks = append(blocks, "Some jurisdictions do not allow limitation of liability for personal injury or certain damages, so this may not apply to you.")
		return joinParagraphs(blocks)
	}),

	always(func(d doc) string {
		company := eulaCompanyOr(d, "the Licensor")
		return fmt.Sprintf(`## 10. Indemnification

You agree to indemnify and hold harmless %v from claims, damages, or expenses arising from:
- Your use of the Application
- Your breach of this Agreement
- Your violation of any law or rights of third parties`, company)
	}),

	always(func(d doc) string {
		platform := d.field("platform", "")
		law := "the applicable jurisdiction"
		switch {
		case strings.Contains(platform, "iOS"):
			law = "California, USA (App Store compliance)"
		case strings.Contains(platform, "Android"):
			law = "the jurisdiction of the developer"
		}
		blocks := []string{fmt.Sprintf(`## 11. Governing Law

This Agreement is governed by the laws of %v, without regard to conflict of law principles.`, law)}
		if strings.Contains(platform, "iOS") {
			blocks = append(blocks, "**iOS App Store Compliance:** This Application is licensed, not sold. Your rights are subject to Apple's standard EULA terms.")
		}
		if strings.Contains(platform, "Android") {
			blocks = append(blocks, "**Google Play Compliance:** Your use is also subject to Google Play's Terms of Service.")
		}
		return joinParagraphs(blocks)
	}),

	always(func(d doc) string {
		company := eulaCompanyOr(d, "the Licensor")
		return fmt.Sprintf(`## 12. Entire Agreement

This Agreement constitutes the entire agreement between you and %v regarding the Application and supersedes all prior agreements.

Changes to this Agreement must be in writing and signed by both parties.`, company)
	}),

	always(fixed(`## 13. Export Compliance

You agree to comply with all export and import laws and regulations. You may not export or re-export the Application except as authorized by law.`)),

	always(fixed(`## 14. Severability

If any provision of this Agreement is found unenforceable, the remaining provisions continue in full force and effect.`)),

	always(func(d doc) string {
		return fmt.Sprintf(`## 15. Contact Information

For questions about this EULA, contact:
%v

---

**Acknowledgment:** By using the Application, you acknowledge that you have read this Agreement, understand it, and agree to be bound by its terms.

Last Updated: %v`, d.field("appName", "Developer"), d.date)
	}),
}
