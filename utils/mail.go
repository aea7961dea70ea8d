package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// ErrMailUnconfigured means MAIL_KEY is absent. Purchase mail treats it as a
// logged skip; the contact relay surfaces it.
var ErrMailUnconfigured = errors.New("MAIL_KEY not configured")

type mailParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoPayload struct {
	Sender      mailParty   `json:"sender"`
	To          []mailParty `json:"to"`
	ReplyTo     *mailParty  `json:"replyTo,omitempty"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

func sendBrevo(payload brevoPayload) error {
	if Conf == nil || Conf.MailKey == "" {
		return ErrMailUnconfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", Conf.MailKey)
	req.Header.Set("content-type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		detail, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mail API returned %d: %s", res.StatusCode, string(detail))
	}
	return nil
}

// SendContactMail relays a contact-form submission to the listing agent.
func SendContactMail(fullNames, email, phoneNumber, message, agentEmail string) error {
	html := fmt.Sprintf(`<html><body><h1>%s</h1><h1>%s</h1><h1>%s</h1><br><p>%s</p></body></html>`,
		fullNames, email, phoneNumber, message)

	return sendBrevo(brevoPayload{
		Sender:      mailParty{Email: Conf.MailSender},
		To:          []mailParty{{Email: agentEmail}},
		ReplyTo:     &mailParty{Email: email},
		Subject:     "Property Inquiry",
		HTMLContent: html,
	})
}

// PurchaseMailInput carries everything the inquiry notification needs.
type PurchaseMailInput struct {
	BuyerName    string
	BuyerEmail   string
	BuyerPhone   string
	BuyerMessage string
	RealtorEmail string
	Title        string
	Price        float64
	Location     string
}

// SendPurchaseMail notifies the owning realtor of a purchase inquiry.
func SendPurchaseMail(in PurchaseMailInput) error {
	price := "Price not specified"
	if in.Price > 0 {
		price = fmt.Sprintf("$%.0f", in.Price)
	}

	messageSection := `<p style="color:#6b7280;font-style:italic;">No additional message provided.</p>`
	if strings.TrimSpace(in.BuyerMessage) != "" {
		messageSection = fmt.Sprintf(
			`<div><h3>Buyer's Message:</h3><p style="white-space:pre-wrap;">%s</p></div>`,
			in.BuyerMessage)
	}

	html := fmt.Sprintf(`<html><body>
<h1>New Property Purchase Request</h1>
<p>You have received a new purchase request for your property listing.</p>
<div>
  <h2>Property Details</h2>
  <div><b>Property:</b> %s</div>
  <div><b>Location:</b> %s</div>
  <div><b>Price:</b> %s</div>
</div>
<div>
  <h2>Buyer Information</h2>
  <div><b>Name:</b> %s</div>
  <div><b>Email:</b> <a href="mailto:%s">%s</a></div>
  <div><b>Phone:</b> <a href="tel:%s">%s</a></div>
</div>
%s
<p><b>Next Steps:</b> contact the buyer at their email or phone number to proceed.</p>
</body></html>`,
		in.Title, in.Location, price,
		in.BuyerName, in.BuyerEmail, in.BuyerEmail, in.BuyerPhone, in.BuyerPhone,
		messageSection)

	return sendBrevo(brevoPayload{
		Sender:      mailParty{Email: Conf.MailSender, Name: "Real Estate Platform"},
		To:          []mailParty{{Email: in.RealtorEmail}},
		ReplyTo:     &mailParty{Email: in.BuyerEmail, Name: in.BuyerName},
		Subject:     "New Purchase Request: " + in.Title,
		HTMLContent: html,
	})
}
