package receipt

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link that shares a generated artifact
// with the given phone number. The artifactRef is whatever locally
// addressable reference the host assigned to the PDF (a URL or handle).
// Fire-and-forget: nothing here talks to the network.
func WhatsAppLink(artifact *Artifact, artifactRef, phoneNumber string) string {
	message := fmt.Sprintf("Mount Meru SoyCo Order Document\nID: %s\nDownload: %s",
		artifact.OrderID, artifactRef)

	return fmt.Sprintf("https://wa.me/%s?text=%s",
		sanitizePhone(phoneNumber), url.QueryEscape(message))
}

// sanitizePhone strips everything but digits so "+250 788-123-456" becomes
// the wa.me-accepted "250788123456".
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
