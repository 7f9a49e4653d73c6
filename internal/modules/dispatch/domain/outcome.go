package domain

// Outcome is the result of delivering one post to the webhook
type Outcome struct {
	Status OutcomeStatus
	// Reason is set for OutcomeStatusSentTextOnly
	Reason TextOnlyReason
	// Err is set for OutcomeStatusFailed
	Err error
}

func Sent() Outcome {
	return Outcome{Status: OutcomeStatusSent}
}

func SentTextOnly(reason TextOnlyReason) Outcome {
	return Outcome{Status: OutcomeStatusSentTextOnly, Reason: reason}
}

func Failed(err error) Outcome {
	return Outcome{Status: OutcomeStatusFailed, Err: err}
}

// Delivered reports whether the webhook accepted the message in some form
func (o Outcome) Delivered() bool {
	return o.Status == OutcomeStatusSent || o.Status == OutcomeStatusSentTextOnly
}
