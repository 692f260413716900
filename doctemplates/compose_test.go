package doctemplates

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privacypage-api/models"
)

const testDate = "2026-08-31"

func cookieRequest(fields map[string]string) models.DocumentRequest {
	return models.DocumentRequest{DocType: models.DocTypeCookie, Fields: fields}
}

func TestComposeDeterminism(t *testing.T) {
	req := models.DocumentRequest{
		DocType: models.DocTypeTos,
		Fields: map[string]string{
			"serviceName": "MyApp",
			"companyInfo": "Acme Inc., legal@acme.com",
			"platform":    "SaaS Platform",
			"keyPolicies": "Refunds allowed, User-generated content, Subscription auto-renewal",
		},
	}

	first, err := Compose(req, testDate)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Compose(req, testDate)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComposeUnknownDocType(t *testing.T) {
	_, err := Compose(models.DocumentRequest{DocType: "poem"}, testDate)
	assert.Error(t, err)
}

func TestComposeEveryTypeHasTopHeading(t *testing.T) {
	headings := map[string]string{
		models.DocTypePrivacy:    "# Privacy Policy for",
		models.DocTypeTos:        "# Terms of Service for",
		models.DocTypeEula:       "# End-User License Agreement",
		models.DocTypeCookie:     "# Cookie Policy for",
		models.DocTypeDisclaimer: "# Disclaimer for",
	}
	for docType, heading := range headings {
		out, err := Compose(models.DocumentRequest{DocType: docType, Fields: map[string]string{}}, testDate)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, heading), "%v starts with %q, got %q", docType, heading, out[:40])
		assert.Contains(t, out, testDate)
	}
}

// No heading line may sit directly above another heading or the end of the
// document; omitted sections must take their headings with them.
func TestComposeNoEmptyHeadings(t *testing.T) {
	reqs := []models.DocumentRequest{
		{DocType: models.DocTypeCookie, Fields: map[string]string{"thirdPartyServices": "None"}},
		{DocType: models.DocTypeTos, Fields: map[string]string{}},
		{DocType: models.DocTypeEula, Fields: map[string]string{}},
		{DocType: models.DocTypePrivacy, Fields: map[string]string{}},
		{DocType: models.DocTypeDisclaimer, Fields: map[string]string{}},
		cookieRequest(map[string]string{"cookieTypes": "Essential cookies"}),
	}
	heading := regexp.MustCompile(`^#{1,3} `)

	for _, req := range reqs {
		out, err := Compose(req, testDate)
		require.NoError(t, err)
		lines := strings.Split(out, "\n")
		for i, line := range lines {
			if !heading.MatchString(line) {
				continue
			}
			// scan forward for a non-blank line before the next heading
			body := false
			for j := i + 1; j < len(lines); j++ {
				if heading.MatchString(lines[j]) {
					break
				}
				if strings.TrimSpace(lines[j]) != "" {
					body = true
					break
				}
			}
			assert.True(t, body, "%v: heading %q has no body", req.DocType, line)
		}
	}
}

func TestCookieSectionInclusion(t *testing.T) {
	types := []struct {
		option  string
		heading string
	}{
		{cookieEssential, "### 1. Essential Cookies"},
		{cookieAnalytics, "### 2. Analytics and Performance Cookies"},
		{cookieFunctional, "### 3. Functional Cookies"},
		{cookieAdvertising, "### 4. Advertising and Targeting Cookies"},
		{cookiePerformance, "### 5. Performance Cookies"},
		{cookieSocial, "### 6. Social Media Cookies"},
	}

	// one option at a time: exactly that subsection appears
	for _, sel := range types {
		out, err := Compose(cookieRequest(map[string]string{"cookieTypes": sel.option}), testDate)
		require.NoError(t, err)
		assert.Contains(t, out, "## Types of Cookies We Use")
		for _, other := range types {
			if other.option == sel.option {
				assert.Contains(t, out, other.heading)
			} else {
				assert.NotContains(t, out, other.heading)
			}
		}
	}

	// no options: the parent heading disappears too
	out, err := Compose(cookieRequest(map[string]string{}), testDate)
	require.NoError(t, err)
	assert.NotContains(t, out, "## Types of Cookies We Use")
	assert.NotContains(t, out, "**Cookie Table Summary**")
}

func TestCookieSectionOrderIsCanonical(t *testing.T) {
	// selection order does not change section order
	out1, err := Compose(cookieRequest(map[string]string{
		"cookieTypes": "Essential cookies, Social media cookies",
	}), testDate)
	require.NoError(t, err)
	out2, err := Compose(cookieRequest(map[string]string{
		"cookieTypes": "Social media cookies, Essential cookies",
	}), testDate)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
	assert.Less(t, strings.Index(out1, "### 1. Essential Cookies"), strings.Index(out1, "### 6. Social Media Cookies"))
}

func TestCookieConcreteScenario(t *testing.T) {
	out, err := Compose(cookieRequest(map[string]string{
		"cookieTypes":        "Essential cookies, Analytics cookies",
		"thirdPartyServices": "Google Analytics, Stripe",
		"contactEmail":       "a@b.com",
		"websiteName":        "Acme, https://acme.io",
	}), testDate)
	require.NoError(t, err)

	assert.Contains(t, out, "# Cookie Policy for Acme\n")
	assert.Contains(t, out, "### 1. Essential Cookies")
	assert.Contains(t, out, "### 2. Analytics and Performance Cookies")
	assert.NotContains(t, out, "Advertising and Targeting")
	assert.Contains(t, out, "**Google Analytics:**")
	assert.Contains(t, out, "[Opt-out](https://tools.google.com/dlpage/gaoptout)")
	assert.Contains(t, out, "**Stripe:**")
	assert.Contains(t, out, "[Privacy Policy](https://stripe.com/privacy)")
	assert.Contains(t, out, "**Email:** a@b.com")
	assert.Contains(t, out, "**Website:** https://acme.io")

	// summary table has exactly the two selected rows
	assert.Contains(t, out, "| Essential | Website functionality | Session/Persistent | No |")
	assert.Contains(t, out, "| Analytics | Usage tracking | Persistent | Yes |")
	dataRows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| ") && !strings.HasPrefix(line, "| Cookie Type") {
			dataRows++
		}
	}
	assert.Equal(t, 2, dataRows)
}

func TestCookieNoneServiceIsFiltered(t *testing.T) {
	out, err := Compose(cookieRequest(map[string]string{
		"thirdPartyServices": "None",
		"cookieTypes":        "Essential cookies",
	}), testDate)
	require.NoError(t, err)
	assert.NotContains(t, out, "## Third-Party Cookies")
}

func TestCookieUnknownServiceGetsGenericLine(t *testing.T) {
	out, err := Compose(cookieRequest(map[string]string{
		"thirdPartyServices": "Matomo",
	}), testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "**Matomo:** Third-party service used on our website.")
}

func TestTosPaymentTermsTriggers(t *testing.T) {
	base := map[string]string{
		"serviceName": "MyApp",
		"companyInfo": "Acme Inc., legal@acme.com",
	}

	out, err := Compose(models.DocumentRequest{DocType: models.DocTypeTos, Fields: base}, testDate)
	require.NoError(t, err)
	assert.NotContains(t, out, "## 7. Payment Terms")
	assert.NotContains(t, out, "## 5. User-Generated Content")

	withPayments := map[string]string{
		"serviceName": "MyApp",
		"companyInfo": "Acme Inc., legal@acme.com",
		"keyPolicies": "Refunds allowed, Subscription auto-renewal, User-generated content",
	}
	out, err = Compose(models.DocumentRequest{DocType: models.DocTypeTos, Fields: withPayments}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "## 7. Payment Terms")
	assert.Contains(t, out, "### Refund Policy")
	assert.Contains(t, out, "legal@acme.com to request a refund")
	assert.Contains(t, out, "Subscriptions automatically renew")
	assert.Contains(t, out, "## 5. User-Generated Content")
	assert.NotContains(t, out, "All sales are final")
}

func TestDisclaimerTypeSwapsBody(t *testing.T) {
	fields := map[string]string{
		"websiteName":    "FitBlog by Acme Inc.",
		"disclaimerType": disclaimerMedical,
		"contactEmail":   "info@fitblog.com",
	}
	out, err := Compose(models.DocumentRequest{DocType: models.DocTypeDisclaimer, Fields: fields}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "## Medical Disclaimer")
	assert.NotContains(t, out, "## Financial Disclaimer")
	assert.Contains(t, out, "Healthcare providers for medical issues")

	// unknown type falls back to the general body
	fields["disclaimerType"] = "Astrology"
	out, err = Compose(models.DocumentRequest{DocType: models.DocTypeDisclaimer, Fields: fields}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "## General Information Disclaimer")
}

func TestDisclaimerExternalLinksTrigger(t *testing.T) {
	out, err := Compose(models.DocumentRequest{
		DocType: models.DocTypeDisclaimer,
		Fields:  map[string]string{"externalLinks": "Yes"},
	}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "## External Links Disclaimer")

	out, err = Compose(models.DocumentRequest{
		DocType: models.DocTypeDisclaimer,
		Fields:  map[string]string{"externalLinks": "No"},
	}, testDate)
	require.NoError(t, err)
	assert.NotContains(t, out, "## External Links Disclaimer")
}

func TestEulaLicenseTypeVariants(t *testing.T) {
	fields := map[string]string{
		"appName":     "MyApp by Acme Inc.",
		"platform":    "iOS",
		"licenseType": "Subscription",
	}
	out, err := Compose(models.DocumentRequest{DocType: models.DocTypeEula, Fields: fields}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "# End-User License Agreement (EULA) for MyApp")
	assert.Contains(t, out, "subscription-based, non-exclusive, non-transferable")
	assert.Contains(t, out, "### Subscription Terms")
	assert.Contains(t, out, "iOS App Store Compliance")
	assert.NotContains(t, out, "Google Play Compliance")

	fields["licenseType"] = "Paid (one-time)"
	fields["platform"] = "Android"
	out, err = Compose(models.DocumentRequest{DocType: models.DocTypeEula, Fields: fields}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "### License Activation")
	assert.Contains(t, out, "Google Play Compliance")
	assert.NotContains(t, out, "iOS App Store Compliance")
}

func TestEulaRestrictionBullets(t *testing.T) {
	out, err := Compose(models.DocumentRequest{
		DocType: models.DocTypeEula,
		Fields: map[string]string{
			"restrictions": "No reverse engineering, Single user license",
		},
	}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "- Reverse engineer, decompile, or disassemble the Application")
	assert.Contains(t, out, "This license is for a single user only")
	assert.NotContains(t, out, "- Redistribute, sell, rent, lease, or lend the Application")
}

func TestPrivacyChildrenVariant(t *testing.T) {
	fields := map[string]string{
		"appName":       "KidsApp",
		"companyInfo":   "Acme Inc., privacy@acme.com",
		"dataCollected": "Name & Email, Location Data",
		"childrenData":  "Yes",
	}
	out, err := Compose(models.DocumentRequest{DocType: models.DocTypePrivacy, Fields: fields}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "We comply with COPPA requirements")
	assert.Contains(t, out, "- Name & Email\n- Location Data")
	assert.Contains(t, out, "contact us at: privacy@acme.com")

	fields["childrenData"] = "No"
	out, err = Compose(models.DocumentRequest{DocType: models.DocTypePrivacy, Fields: fields}, testDate)
	require.NoError(t, err)
	assert.Contains(t, out, "not directed at children under 13")
}

func TestSplitPair(t *testing.T) {
	name, url := splitPair("Acme, https://acme.io")
	assert.Equal(t, "Acme", name)
	assert.Equal(t, "https://acme.io", url)

	name, extra := splitPair("Acme")
	assert.Equal(t, "Acme", name)
	assert.Equal(t, "", extra)
}

func TestWizardConfigFor(t *testing.T) {
	cfg := WizardConfigFor(models.DocTypeEula)
	assert.Equal(t, models.DocTypeEula, cfg.Type)
	require.NotEmpty(t, cfg.Steps)
	assert.Equal(t, "appName", cfg.Steps[0].ID)

	// unknown type serves the privacy config
	cfg = WizardConfigFor("poem")
	assert.Equal(t, models.DocTypePrivacy, cfg.Type)
}
