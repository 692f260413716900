package doctemplates

import (
	"fmt"
	"strings"
)

// Cookie type options of the wizard, in the canonical section order.
const (
	cookieEssential   = "Essential cookies"
	cookieAnalytics   = "Analytics cookies"
	cookieAdvertising = "Advertising cookies"
	cookieFunctional  = "Functional cookies"
	cookiePerformance = "Performance cookies"
	cookieSocial      = "Social media cookies"
)

func cookieSiteName(d doc) (string, string) {
	return splitPair(d.field("websiteName", "Our Website"))
}

var cookieSections = []section{
	always(func(d doc) string {
		name, url := cookieSiteName(d)
		intro := fmt.Sprintf("This Cookie Policy explains how %v uses cookies and similar tracking technologies.", name)
		if url != "" {
			intro = fmt.Sprintf("This Cookie Policy explains how %v (%v) uses cookies and similar tracking technologies.", name, url)
		}
		return fmt.Sprintf(`# Cookie Policy for %v

**Effective Date:** %v

%v`, name, d.date, intro)
	}),

	always(fixed(`## What Are Cookies?

Cookies are small text files stored on your device when you visit a website. They help websites remember your preferences, analyze traffic, and improve functionality.

Cookies can be:
- **First-party cookies:** Set by our website
- **Third-party cookies:** Set by external services we use
- **Session cookies:** Deleted when you close your browser
- **Persistent cookies:** Remain on your device for a set period`)),

	always(func(d doc) string {
		uses := []string{
			"Ensure the website functions properly",
			"Remember your preferences and settings",
			"Analyze how visitors use our site",
			"Improve our services and user experience",
		}
		if d.has("cookieTypes", cookieAdvertising) {
			uses = append(uses, "Deliver relevant advertisements")
		}
		if d.has("cookieTypes", cookieSocial) {
			uses = append(uses, "Enable social media features and sharing")
		}
		return "## How We Use Cookies\n\nWe use cookies to:\n" + bulletList(uses)
	}),

	{
		when: func(d doc) bool {
			for _, t := range []string{cookieEssential, cookieAnalytics, cookieFunctional, cookieAdvertising, cookiePerformance, cookieSocial} {
				if d.has("cookieTypes", t) {
					return true
				}
			}
			return false
		},
		render: fixed("## Types of Cookies We Use"),
	},

	selected("cookieTypes", cookieEssential, fixed(`### 1. Essential Cookies (Strictly Necessary)

These cookies are required for the website to function and cannot be disabled.

**Purpose:**
- Enable core functionality (login, security, session management)
- Remember items in your shopping cart
- Maintain security and prevent fraud

**Legal Basis:** Legitimate interest (necessary for the service)`)),

	selected("cookieTypes", cookieAnalytics, fixed(`### 2. Analytics and Performance Cookies

These cookies help us understand how visitors interact with our website.

**Purpose:**
- Track page views and traffic sources
- Measure website performance
- Identify popular content
- Understand user behavior patterns

**Examples:** Google Analytics, Mixpanel, Amplitude

**Legal Basis:** Consent (you can opt-out)`)),

	selected("cookieTypes", cookieFunctional, fixed(`### 3. Functional Cookies

These cookies enable enhanced functionality and personalization.

**Purpose:**
- Remember your preferences (language, region)
- Enable live chat and support features
- Customize content based on your interests

**Legal Basis:** Consent (you can opt-out)`)),

	selected("cookieTypes", cookieAdvertising, fixed(`### 4. Advertising and Targeting Cookies

These cookies are used to deliver relevant ads and measure campaign effectiveness.

**Purpose:**
- Show personalized advertisements
- Limit ad frequency
- Measure ad performance
- Track conversions

**Examples:** Google Ads, Facebook Pixel

**Legal Basis:** Consent (required under GDPR)`)),

	selected("cookieTypes", cookiePerformance, fixed(`### 5. Performance Cookies

These cookies collect information about how you use our website to improve performance.

**Purpose:**
- Monitor loading times
- Track errors and crashes
- Optimize user experience
- Test new features

**Legal Basis:** Consent (you can opt-out)`)),

	selected("cookieTypes", cookieSocial, fixed(`### 6. Social Media Cookies

These cookies enable social media features and track social sharing.

**Purpose:**
- Share content on social platforms
- Display social media feeds
- Track social engagement

**Examples:** Facebook, Twitter/X, LinkedIn

**Legal Basis:** Consent (required for tracking)`)),

	{
		when: func(d doc) bool { return len(cookieServiceList(d)) > 0 },
		render: func(d doc) string {
			paras := make([]string, 0, 8)
			for _, svc := range cookieServiceList(d) {
				paras = append(paras, serviceParagraph(svc))
			}
			return `## Third-Party Cookies

We use the following third-party services that may set cookies:

` + strings.Join(paras, "\n") + `

Each third-party service has its own privacy policy and cookie practices. We encourage you to review them.`
		},
	},

	always(fixed(`## Managing Your Cookie Preferences

You have the right to accept or reject cookies (except essential cookies required for the website to function).

### Cookie Consent Banner

When you first visit our website, you'll see a cookie consent banner. You can:
- Accept all cookies
- Reject non-essential cookies
- Customize your preferences

You can change your preferences at any time by clicking the "Cookie Settings" link in our footer.

### Browser Controls

You can also manage cookies through your browser settings:

**Chrome:** Settings > Privacy and Security > Cookies and other site data
**Firefox:** Settings > Privacy & Security > Cookies and Site Data
**Safari:** Preferences > Privacy > Manage Website Data
**Edge:** Settings > Cookies and site permissions

**Note:** Blocking all cookies may affect website functionality and your user experience.

### Opt-Out Links

For specific services:
- **Google Analytics:** [Opt-out Browser Add-on](https://tools.google.com/dlpage/gaoptout)
- **Google Ads:** [Ad Settings](https://adssettings.google.com/)
- **Facebook:** [Ad Preferences](https://www.facebook.com/ads/preferences/)
- **Network Advertising Initiative:** [Opt-out Tool](https://optout.networkadvertising.org/)
- **Digital Advertising Alliance:** [WebChoices Tool](https://optout.aboutads.info/)`)),

	always(fixed(`## Your Rights (GDPR)

If you are in the European Union, you have additional rights:
- Right to access information about cookies we use
- Right to withdraw consent at any time
- Right to object to processing for direct marketing
- Right to lodge a complaint with your data protection authority`)),

	always(fixed(`## Do Not Track Signals

Some browsers have "Do Not Track" features. Currently, there is no industry standard for responding to DNT signals. We may not respond to DNT headers, but you can manage cookies as described above.`)),

	always(fixed(`## Mobile Devices

Our website may use mobile device identifiers for analytics and advertising. You can reset your advertising ID or limit ad tracking in your device settings:
- **iOS:** Settings > Privacy > Advertising > Limit Ad Tracking
- **Android:** Settings > Google > Ads > Opt out of Ads Personalization`)),

	always(func(d doc) string {
		return fmt.Sprintf(`## Updates to This Policy

We may update this Cookie Policy from time to time to reflect changes in technology, legislation, or our practices.

Last updated: %v

We will notify you of significant changes by posting a notice on our website or by email.`, d.date)
	}),

	always(func(d doc) string {
		_, url := cookieSiteName(d)
		out := fmt.Sprintf(`## Contact Us

If you have questions about our use of cookies, contact us at:

**Email:** %v`, d.field("contactEmail", "privacy@website.com"))
		if url != "" {
			out += fmt.Sprintf("\n**Website:** %v", url)
		}
		return out
	}),

	{
		when: func(d doc) bool { return len(cookieSummaryRows(d)) > 0 },
		render: func(d doc) string {
			rows := cookieSummaryRows(d)
			return `---

**Cookie Table Summary**

| Cookie Type | Purpose | Duration | Third Party |
|------------|---------|----------|------------|
` + strings.Join(rows, "\n") + `

For a detailed list of specific cookies, please see our [cookie declaration].`
		},
	},
}

// cookieServiceList returns the selected third-party services, minus the
// explicit "None" choice.
func cookieServiceList(d doc) []string {
	var out []string
	for _, s := range d.req.Selected("thirdPartyServices") {
		if s != "None" {
			out = append(out, s)
		}
	}
	return out
}

var cookieServiceDescriptions = map[string]string{
	"Google Analytics":   "**Google Analytics:** Web analytics service that tracks and reports website traffic. [Opt-out](https://tools.google.com/dlpage/gaoptout)",
	"Google Ads":         "**Google Ads:** Advertising platform for displaying targeted ads. [Ad Settings](https://adssettings.google.com/)",
	"Facebook Pixel":     "**Facebook Pixel:** Tracking tool for measuring ad effectiveness and audience targeting. [Privacy Settings](https://www.facebook.com/privacy/explanation)",
	"Twitter/X tracking": "**Twitter/X:** Social media tracking for engagement and advertising. [Privacy Center](https://twitter.com/en/privacy)",
	"LinkedIn Insight":   "**LinkedIn Insight Tag:** Professional network analytics and advertising. [Ad Settings](https://www.linkedin.com/psettings/advertising)",
	"Hotjar":             "**Hotjar:** Behavior analytics and user feedback tool. [Opt-out](https://www.hotjar.com/policies/do-not-track/)",
	"Stripe":             "**Stripe:** Payment processing service (essential for transactions). [Privacy Policy](https://stripe.com/privacy)",
}

// serviceParagraph maps a service name to its canned description; unknown
// services get a generic one-liner naming the service.
func serviceParagraph(service string) string {
	if desc, ok := cookieServiceDescriptions[service]; ok {
		return desc
	}
	return fmt.Sprintf("**%v:** Third-party service used on our website.", service)
}

// cookieSummaryRows builds the conditional rows of the closing summary
// table, in canonical order.
func cookieSummaryRows(d doc) []string {
	var rows []string
	if d.has("cookieTypes", cookieEssential) {
		rows = append(rows, "| Essential | Website functionality | Session/Persistent | No |")
	}
	if d.has("cookieTypes", cookieAnalytics) {
		rows = append(rows, "| Analytics | Usage tracking | Persistent | Yes |")
	}
	if d.has("cookieTypes", cookieAdvertising) {
		rows = append(rows, "| Advertising | Targeted ads | Persistent | Yes |")
	}
	if d.has("cookieTypes", cookieFunctional) {
		rows = append(rows, "| Functional | Personalization | Persistent | Sometimes |")
	}
	if d.has("cookieTypes", cookieSocial) {
		rows = append(rows, "| Social Media | Social features | Persistent | Yes |")
	}
	return rows
}
