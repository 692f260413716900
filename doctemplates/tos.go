package doctemplates

import "fmt"

// Key-policy options of the terms wizard.
const (
	tosRefundsAllowed   = "Refunds allowed"
	tosNoRefunds        = "No refunds"
	tosUserContent      = "User-generated content"
	tosTerminationRight = "Account termination rights"
	tosAutoRenewal      = "Subscription auto-renewal"
	tosFreeTrial        = "Free trial terms"
)

func tosCompany(d doc) (string, string) {
	return splitPair(d.field("companyInfo", "Company"))
}

func tosHasPaymentTerms(d doc) bool {
	return d.has("keyPolicies", tosRefundsAllowed) ||
		d.has("keyPolicies", tosNoRefunds) ||
		d.has("keyPolicies", tosAutoRenewal) ||
		d.has("keyPolicies", tosFreeTrial)
}

var tosSections = []section{
	always(func(d doc) string {
		service := d.field("serviceName", "Service")
		company, _ := tosCompany(d)
		return fmt.Sprintf(`# Terms of Service for %v

**Effective Date:** %v

These Terms of Service ("Terms") govern your use of %v (the "Service") operated by %v ("we," "us," or "our").`, service, d.date, service, company)
	}),

	always(fixed(`## 1. Acceptance of Terms

By accessing or using our Service, you agree to be bound by these Terms. If you do not agree, please do not use the Service.`)),

	always(func(d doc) string {
		return fmt.Sprintf(`## 2. Description of Service

%v is a %v that provides digital products and services to its users. We reserve the right to modify, suspend, or discontinue any aspect of the Service at any time.`, d.field("serviceName", "The Service"), d.field("platform", "digital service"))
	}),

	always(fixed(`## 3. User Accounts and Registration

You may need to create an account to access certain features. You are responsible for:
- Maintaining the confidentiality of your account credentials
- All activities that occur under your account
- Providing accurate and up-to-date information`)),

	always(fixed(`## 4. User Responsibilities and Conduct

You agree NOT to:
- Violate any laws or regulations
- Infringe on intellectual property rights
- Upload malicious code or viruses
- Harass, abuse, or harm other users
- Attempt to gain unauthorized access to the Service
- Use the Service for any illegal or unauthorized purpose`)),

	selected("keyPolicies", tosUserContent, fixed(`## 5. User-Generated Content

You retain ownership of content you submit. By posting content, you grant us a worldwide, non-exclusive, royalty-free license to use, display, and distribute your content in connection with the Service.

You are solely responsible for your content and must not post content that:
- Is illegal, defamatory, or offensive
- Infringes on intellectual property rights
- Contains viruses or malicious code
- Violates these Terms

We reserve the right to remove any content that violates these Terms.`)),

	always(func(d doc) string {
		company, _ := tosCompany(d)
		return fmt.Sprintf(`## 6. Intellectual Property Rights

All content, features, and functionality of the Service are owned by %v and are protected by copyright, trademark, and other intellectual property laws.

You may not:
- Copy, modify, or distribute our content without permission
- Use our trademarks or branding without authorization
- Reverse engineer or decompile the Service`, company)
	}),

	{
		when: tosHasPaymentTerms,
		render: func(d doc) string {
			blocks := []string{"## 7. Payment Terms"}
			if d.has("keyPolicies", tosAutoRenewal) {
				blocks = append(blocks, "Subscriptions automatically renew unless cancelled before the renewal date. You will be charged at the beginning of each billing period.")
			}
			if d.has("keyPolicies", tosRefundsAllowed) {
				_, email := tosCompany(d)
				if email == "" {
					email = "support@service.com"
				}
				blocks = append(blocks, fmt.Sprintf(`### Refund Policy

We offer refunds within 30 days of purchase under certain conditions. Contact us at %v to request a refund.`, email))
			}
			if d.has("keyPolicies", tosNoRefunds) {
				blocks = append(blocks, "All sales are final. We do not offer refunds except where required by law.")
			}
			if d.has("keyPolicies", tosFreeTrial) {
				blocks = append(blocks, "Free trials are available for new users only. Your payment method will be charged when the trial ends unless you cancel.")
			}
			return joinParagraphs(blocks)
		},
	},

	always(func(d doc) string {
		body := `Either party may terminate this agreement at any time. We may suspend or terminate accounts that violate these Terms.`
		if d.has("keyPolicies", tosTerminationRight) {
			body = `We reserve the right to suspend or terminate your account if you:
- Violate these Terms
- Engage in fraudulent activity
- Cause harm to other users or the Service

You may terminate your account at any time by contacting us.`
		}
		return "## 8. Account Termination and Suspension\n\n" + body
	}),

	always(fixed(`## 9. Disclaimers and Limitations of Liability

THE SERVICE IS PROVIDED "AS IS" WITHOUT WARRANTIES OF ANY KIND. WE DISCLAIM ALL WARRANTIES, EXPRESS OR IMPLIED, INCLUDING MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE.

TO THE MAXIMUM EXTENT PERMITTED BY LAW, WE SHALL NOT BE LIABLE FOR ANY INDIRECT, INCIDENTAL, SPECIAL, OR CONSEQUENTIAL DAMAGES ARISING FROM YOUR USE OF THE SERVICE.`)),

	always(func(d doc) string {
		company, _ := tosCompany(d)
		return fmt.Sprintf(`## 10. Indemnification

You agree to indemnify and hold harmless %v from any claims, damages, losses, or expenses arising from:
- Your use of the Service
- Your violation of these Terms
- Your violation of any rights of another party`, company)
	}),

	always(func(d doc) string {
		jurisdiction := d.field("jurisdiction", "the United States")
		return fmt.Sprintf(`## 11. Governing Law and Dispute Resolution

These Terms are governed by the laws of %v.

Any disputes will be resolved through binding arbitration in %v, except where prohibited by law.`, jurisdiction, jurisdiction)
	}),

	always(fixed(`## 12. Changes to Terms

We reserve the right to modify these Terms at any time. We will notify users of material changes by email or through the Service. Continued use after changes constitutes acceptance of the new Terms.`)),

	always(func(d doc) string {
		return fmt.Sprintf(`## 13. Contact Information

For questions about these Terms, contact us at:
%v

---

Last Updated: %v`, d.field("companyInfo", "Company, contact@company.com"), d.date)
	}),
}
