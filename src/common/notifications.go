package common

import (
	"fmt"
	"os"
	"strings"
	"tbs/src/cart"
	"tbs/src/lib"
	"tbs/src/models"
)

// SendOrderAcknowledgment mails the bank-transfer instructions with the order
// number as payment reference. Tickets themselves are sent by the back office
// once the transfer is confirmed.
func SendOrderAcknowledgment(order *models.Order, items []cart.LineItem) error {
	var lines strings.Builder
	for _, item := range items {
		fmt.Fprintf(&lines, "<li>%s (%s, %s): %d x %.2f €</li>",
			item.CategoryName, item.City, item.Venue, item.Quantity, item.Price)
	}
	body := fmt.Sprintf(`
	<p>Hello %s,</p>
	<p>We have received your order <strong>%s</strong>.</p>
	<ul>%s</ul>
	<p>Total: <strong>%.2f €</strong></p>
	<p>Please wire the total to:</p>
	<p>Account holder: %s<br/>IBAN: %s<br/>BIC: %s</p>
	<p>Use <strong>%s</strong> as the payment reference. Your tickets will be
	emailed within 24-48h once the transfer is confirmed.</p>
	`,
		order.CustomerName,
		order.OrderNumber,
		lines.String(),
		order.TotalAmount,
		os.Getenv("BANK_ACCOUNT_HOLDER"),
		os.Getenv("BANK_IBAN"),
		os.Getenv("BANK_BIC"),
		order.OrderNumber,
	)
	return lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("SMTP_FROM"),
		FromName: "noreply",
		To:       []string{order.CustomerEmail},
		Subject:  fmt.Sprintf("Order %s received", order.OrderNumber),
		Body:     body,
		Html:     true,
	})
}
