package share

import (
	"net/url"
	"strings"
)

// MailtoLink builds a prefilled mail-composition link for the fallback
// path. Mail links cannot carry binary attachments, so only subject and
// body travel; the file itself goes out as a direct download.
func MailtoLink(subject, body string) string {
	return "mailto:?subject=" + mailtoEscape(subject) + "&body=" + mailtoEscape(body)
}

// mailtoEscape percent-encodes one header field. Form encoding does not
// apply in mailto URIs (RFC 6068): mail clients take "+" literally, so
// spaces must travel as %20.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
