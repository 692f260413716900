package doctemplates

import (
	"fmt"
	"strings"
)

// Disclaimer type choices. Unlike the other documents, the body block is
// swapped wholesale by this single-select discriminator instead of
// accumulating sections.
const (
	disclaimerGeneral   = "General (informational content)"
	disclaimerMedical   = "Medical (health information)"
	disclaimerFinancial = "Financial (investment/trading)"
	disclaimerFitness   = "Fitness (workout/nutrition)"
	disclaimerLegal     = "Legal (legal information)"
	disclaimerAffiliate = "Affiliate (affiliate links/commissions)"
)

func disclaimerSiteName(d doc) string {
	name, _ := splitPair(d.field("websiteName", "Our Website"))
	return name
}

func disclaimerType(d doc) string {
	t := d.field("disclaimerType", disclaimerGeneral)
	if _, ok := disclaimerBodies[t]; !ok {
		return disclaimerGeneral
	}
	return t
}

// disclaimerBodies maps the discriminator to its type-specific block.
var disclaimerBodies = map[string]func(name string) string{
	disclaimerGeneral: func(name string) string {
		return fmt.Sprintf(`## General Information Disclaimer

The information provided on %v is for general informational purposes only. While we strive to keep the information accurate and up-to-date, we make no representations or warranties of any kind, express or implied, about the completeness, accuracy, reliability, suitability, or availability of the information, products, services, or related graphics contained on the website.

All information is provided "as is" without warranty of any kind.`, name)
	},
	disclaimerMedical: func(name string) string {
		return fmt.Sprintf(`## Medical Disclaimer

**IMPORTANT:** The information on %v is NOT intended as medical advice and should NOT replace consultation with qualified healthcare professionals.

**Key Points:**
- This content is for informational and educational purposes only
- It is NOT a substitute for professional medical advice, diagnosis, or treatment
- Always seek the advice of your physician or qualified health provider with any questions about a medical condition
- Never disregard professional medical advice or delay seeking it because of something you read here
- If you think you may have a medical emergency, call your doctor or 911 immediately

**No Doctor-Patient Relationship:** Use of this website does not create a doctor-patient relationship. We are not liable for any diagnosis or treatment based on information provided here.

**Individual Results May Vary:** Health outcomes and results mentioned are not guaranteed and may vary from person to person.`, name)
	},
	disclaimerFinancial: func(name string) string {
		return fmt.Sprintf(`## Financial Disclaimer

**INVESTMENT WARNING:** The information on %v is for educational purposes only and should NOT be considered financial, investment, or trading advice.

**Key Points:**
- We are NOT financial advisors, brokers, or investment professionals
- All content is for informational purposes and should not be relied upon for financial decisions
- Past performance is NOT indicative of future results
- Trading and investing carry risk of loss, including total loss of capital
- Cryptocurrency, forex, and stock trading are highly volatile and risky
- Always consult with a licensed financial advisor before making investment decisions
- We are not responsible for any financial losses incurred from using this information

**Regulatory Compliance:** This website does not provide personalized financial advice and is not registered with any financial regulatory authority.

**No Guarantees:** We make no guarantees about profits, returns, or investment success. All investments carry risk.`, name)
	},
	disclaimerFitness: func(name string) string {
		return fmt.Sprintf(`## Fitness & Health Disclaimer

**CONSULT A PHYSICIAN:** Before beginning any fitness, exercise, or nutrition program, consult with your physician, especially if you:
- Have any medical conditions
- Are taking medications
- Are pregnant or nursing
- Have any physical limitations

**Key Points:**
- The fitness and nutrition information on %v is for educational purposes only
- We are not medical professionals, certified trainers, or registered dietitians (unless explicitly stated)
- Exercise and diet changes carry risks, including injury
- Listen to your body and stop immediately if you experience pain, dizziness, or discomfort
- Individual results vary based on genetics, effort, diet, and other factors

**Assumption of Risk:** By using this information, you assume all risks of injury or health complications. We are not liable for any injuries or damages resulting from following our content.

**Results Not Guaranteed:** Testimonials and transformations shown are individual results and do not guarantee similar outcomes for others.`, name)
	},
	disclaimerLegal: func(name string) string {
		return fmt.Sprintf(`## Legal Disclaimer

**NOT LEGAL ADVICE:** The information on %v is NOT legal advice and should NOT be used as a substitute for consultation with a licensed attorney.

**Key Points:**
- Content is for general informational purposes only
- Laws vary by jurisdiction and change frequently
- We are not a law firm and do not provide attorney-client relationships
- No content should be relied upon for legal decisions
- Always consult a qualified attorney licensed in your jurisdiction for specific legal advice
- We make no representations about the accuracy or currentness of legal information

**No Attorney-Client Relationship:** Use of this website does not create an attorney-client relationship. Any information shared does not constitute legal representation.

**Jurisdictional Limitations:** Laws differ by state, country, and local jurisdiction. Information may not apply to your specific situation.`, name)
	},
	disclaimerAffiliate: func(name string) string {
		return fmt.Sprintf(`## Affiliate Disclosure

**AFFILIATE RELATIONSHIPS:** %v contains affiliate links. We may earn commissions when you purchase products or services through our links.

**Key Points:**
- We participate in affiliate programs (Amazon Associates, etc.)
- When you click affiliate links and make purchases, we may receive a commission at no extra cost to you
- Affiliate commissions help support this website and our content creation
- We only recommend products/services we genuinely believe in or have experience with
- Our opinions remain honest, unbiased, and independent
- Affiliate relationships do NOT influence our editorial content

**Your Purchase Price:** Using affiliate links does NOT increase the price you pay. Prices are identical whether you use our link or go directly to the seller.

**Transparency:** We believe in full transparency and want you to know about our affiliate relationships. This disclosure complies with FTC guidelines.`, name)
	},
}

var disclaimerSections = []section{
	always(func(d doc) string {
		name := disclaimerSiteName(d)
		return fmt.Sprintf(`# Disclaimer for %v

**Effective Date:** %v

This disclaimer governs your use of %v. By using this website, you accept this disclaimer in full.`, name, d.date, name)
	}),

	always(func(d doc) string {
		return disclaimerBodies[disclaimerType(d)](disclaimerSiteName(d))
	}),

	always(func(d doc) string {
		return fmt.Sprintf(`## No Warranties

TO THE FULLEST EXTENT PERMITTED BY LAW, %v DISCLAIM ALL WARRANTIES, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO:
- Warranties of merchantability
- Fitness for a particular purpose
- Non-infringement
- Accuracy, completeness, or currentness of information
- Uninterrupted or error-free operation

We do not warrant that:
- The website will always be available or accessible
- Information is accurate, complete, or up-to-date
- Defects will be corrected
- The website is free from viruses or harmful components`, strings.ToUpper(disclaimerSiteName(d)))
	}),

	always(func(d doc) string {
		return fmt.Sprintf(`## Limitation of Liability

IN NO EVENT SHALL %v BE LIABLE FOR:
- Any direct, indirect, incidental, special, or consequential damages
- Loss of profits, revenue, or data
- Business interruption
- Personal injury or property damage
- Any damages arising from your use of this website or reliance on its content

This limitation applies even if we have been advised of the possibility of such damages.

**Maximum Liability:** Our total liability to you for all claims shall not exceed $100 or the amount you paid us (if any), whichever is greater.`, strings.ToUpper(disclaimerSiteName(d)))
	}),

	always(fixed(`## Use At Your Own Risk

You acknowledge that:
- Your use of this website is at your sole risk
- You are responsible for any consequences of using the information provided
- You assume full responsibility for decisions made based on this content
- We are not responsible for any loss, injury, claim, liability, or damage resulting from use of this website`)),

	{
		when: func(d doc) bool { return d.field("externalLinks", "No") == "Yes" },
		render: fixed(`## External Links Disclaimer

This website may contain links to external websites not operated by us.

**We Are Not Responsible For:**
- Content on external websites
- Privacy practices of third-party sites
- Accuracy or legality of external content
- Any damages from visiting linked websites

External links are provided for convenience only and do not constitute endorsement. We have no control over the nature, content, or availability of external sites.

**Visit At Your Own Risk:** You visit third-party websites at your own risk. Review their terms and privacy policies before use.`),
	},

	always(fixed(`## Accuracy of Information

While we strive for accuracy, we cannot guarantee that all information is:
- Current and up-to-date
- Complete and comprehensive
- Free from errors or omissions
- Applicable to your specific situation

Information may change without notice. We reserve the right to modify, update, or remove content at any time without prior notice.`)),

	always(func(d doc) string {
		t := disclaimerType(d)
		var experts []string
		switch t {
		case disclaimerMedical:
			experts = append(experts, "Healthcare providers for medical issues")
		case disclaimerFinancial:
			experts = append(experts, "Financial advisors for investment decisions")
		case disclaimerLegal:
			experts = append(experts, "Attorneys for legal matters")
		case disclaimerFitness:
			experts = append(experts, "Doctors or certified trainers for fitness programs")
		}
		experts = append(experts, "Relevant experts in your field of concern")
		return `## Professional Consultation

The information on this website is NOT a substitute for professional advice. For matters requiring expertise, consult qualified professionals:
` + bulletList(experts)
	}),

	always(func(d doc) string {
		t := disclaimerType(d)
		body := "If we feature testimonials, they represent individual experiences and do not guarantee typical results. Your results may vary."
		if t == disclaimerAffiliate || t == disclaimerFitness {
			body = `Testimonials and reviews on this website:
- Reflect individual experiences and opinions
- Are not representative of typical results
- Do not guarantee similar outcomes for others
- May not be verified or independently confirmed

Results vary based on individual circumstances, effort, and other factors beyond our control.`
		}
		return "## Testimonials and Reviews\n\n" + body
	}),

	always(func(d doc) string {
		return fmt.Sprintf(`## Changes to This Disclaimer

We reserve the right to modify this disclaimer at any time. Changes take effect immediately upon posting to this website.

Your continued use after changes constitutes acceptance of the updated disclaimer.

**Last Updated:** %v`, d.date)
	}),

	always(fixed(`## Governing Law

This disclaimer is governed by the laws of [Jurisdiction] without regard to conflict of law principles. Any disputes shall be resolved in the courts of [Jurisdiction].`)),

	always(fixed(`## Severability

If any provision of this disclaimer is found invalid or unenforceable, the remaining provisions remain in full force and effect.`)),

	always(func(d doc) string {
		return fmt.Sprintf(`## Entire Agreement

This disclaimer, together with our Privacy Policy and Terms of Service, constitutes the entire agreement between you and %v regarding use of this website.`, disclaimerSiteName(d))
	}),

	always(func(d doc) string {
		return fmt.Sprintf(`## Contact Information

If you have questions about this disclaimer, contact us at:

**Email:** %v

---

**Acknowledgment:** By using this website, you acknowledge that you have read, understood, and agree to this disclaimer.`, d.field("contactEmail", "contact@website.com"))
	}),
}
