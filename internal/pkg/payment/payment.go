// Package payment maps provider failure codes to user-facing text for the
// payment failure page.
package payment

// FallbackMessage covers codes outside the known set.
const FallbackMessage = "An unexpected error occurred during payment processing."

var failureMessages = map[string]string{
	"card_declined":      "Your card was declined. Please check your card details or try a different payment method.",
	"insufficient_funds": "Your card has insufficient funds. Please try a different payment method.",
	"expired_card":       "Your card has expired. Please update your payment information.",
	"incorrect_cvc":      "The security code (CVC) you entered is incorrect.",
	"processing_error":   "There was an error processing your payment. Please try again.",
	"network_error":      "There was a network connection issue. Please check your internet and try again.",
}

// FailureMessage returns the display text for a provider error code.
func FailureMessage(code string) string {
	if msg, ok := failureMessages[code]; ok {
		return msg
	}
	return FallbackMessage
}
