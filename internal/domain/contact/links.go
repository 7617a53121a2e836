package contact

import "net/url"

// BuildMailto builds a mailto link for the site's contact actions.
func BuildMailto(email, subject, body string) string {
	params := url.Values{}
	params.Set("subject", subject)
	if body != "" {
		params.Set("body", body)
	}
	return "mailto:" + email + "?" + params.Encode()
}

// BuildWhatsAppURL builds a wa.me link. Phone is E.164 without the leading
// "+"; when empty the link falls back to the contact picker variant.
func BuildWhatsAppURL(phone, message string) string {
	text := url.QueryEscape(message)
	if phone == "" {
		return "https://wa.me/?text=" + text
	}
	return "https://wa.me/" + phone + "?text=" + text
}
