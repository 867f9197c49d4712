package utils

import (
	"fmt"
	"log"
	"os"

	"shopkart_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmationEmail sends the order summary over SMTP. Best
// effort: callers fire it in a goroutine and only log failures.
func SendOrderConfirmationEmail(to string, order models.Order) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@shopkart.example"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Order confirmation #%s", order.ID.String()))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending order confirmation to", to)
	return client.DialAndSend(msg)
}

func orderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f</td>
				<td>%.2f</td>
			</tr>`, item.Title, item.Qty, item.Price, item.Price*float64(item.Qty))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body>
	<h2>Thank you for your order, %s!</h2>
	<p>Your order <strong>%s</strong> has been placed and will be paid on delivery.</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Item</th><th>Qty</th><th>Unit price</th><th>Line total</th></tr>
		%s
	</table>
	<p>Items: %.2f<br>Shipping: %.2f<br>Tax: %.2f<br><strong>Total: %.2f</strong></p>
	<p>Shipping to: %s, %s %s, %s, %s — %s</p>
</body>
</html>`,
		order.ShippingAddress.FullName,
		order.ID.String(),
		itemsHTML,
		order.ItemsPrice, order.ShippingPrice, order.TaxPrice, order.TotalPrice,
		order.ShippingAddress.AddressLine1, order.ShippingAddress.City,
		order.ShippingAddress.Pincode, order.ShippingAddress.State,
		order.ShippingAddress.Country, order.ShippingAddress.Phone,
	)
}
