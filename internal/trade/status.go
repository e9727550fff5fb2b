package trade

// Color names a semantic display color.
type Color string

const (
	ColorSuccess Color = "success"
	ColorError   Color = "error"
	ColorWarning Color = "warning"
	ColorInfo    Color = "info"
	ColorGray    Color = "gray"
)

// Label is a piece of status copy with its color.
type Label struct {
	Text  string
	Color Color
}

// HeaderStatus returns the short status shown next to the trade title.
func HeaderStatus(state string) Label {
	switch state {
	case StateAwaitingTransferIn:
		return Label{Text: "Pending", Color: ColorWarning}
	case StateProcessing, StateReviewing:
		return Label{Text: "Processing", Color: ColorInfo}
	case StateCompleted, StateCompletedTest:
		return Label{Text: "Completed", Color: ColorSuccess}
	case StateCancelled:
		return Label{Text: "Cancelled", Color: ColorError}
	case StateRejected:
		return Label{Text: "Rejected", Color: ColorError}
	case StateExpired:
		return Label{Text: "Expired", Color: ColorError}
	case StateRefunded:
		return Label{Text: "Refunded", Color: ColorGray}
	}
	return Label{Text: "Unknown", Color: ColorGray}
}

// BodyStatus returns the explanatory paragraph for a trade in state.
func BodyStatus(state string, isBuy bool) Label {
	switch state {
	case StateAwaitingTransferIn:
		if isBuy {
			return Label{Text: "We are waiting to receive your payment. Your bitcoin will be sent once the transfer arrives.", Color: ColorWarning}
		}
		return Label{Text: "We are waiting to receive your bitcoin. Your payout will be sent once the transaction confirms.", Color: ColorWarning}
	case StateProcessing, StateReviewing:
		if isBuy {
			return Label{Text: "Your purchase is being processed. This usually takes a few minutes.", Color: ColorInfo}
		}
		return Label{Text: "Your sale is being processed. The payout is on its way to your bank account.", Color: ColorInfo}
	case StateCompleted, StateCompletedTest:
		if isBuy {
			return Label{Text: "Your purchase is complete and the bitcoin has been sent to your wallet.", Color: ColorSuccess}
		}
		return Label{Text: "Your sale is complete and the funds have been sent to your bank account.", Color: ColorSuccess}
	case StateCancelled:
		return Label{Text: "This trade was cancelled. No funds were moved.", Color: ColorError}
	case StateRejected:
		return Label{Text: "This trade was rejected by our partner. Contact support for details.", Color: ColorError}
	case StateExpired:
		return Label{Text: "This trade expired before payment was received.", Color: ColorError}
	case StateRefunded:
		return Label{Text: "This trade was refunded to the original payment method.", Color: ColorGray}
	}
	return Label{Text: "The status of this trade is not available.", Color: ColorGray}
}
