package models

// TransbankPayment is returned to the client when an enrollment needs a
// gateway leg; the client performs a full-page redirect to FullURL.
type TransbankPayment struct {
	Token   string `json:"token"`
	URL     string `json:"url"`
	FullURL string `json:"full_url"`
}

// TransbankCommitResult is the gateway's answer after the redirect-back leg
// (POST /transbank/callback with token_ws).
type TransbankCommitResult struct {
	BuyOrder     string `json:"buy_order"`
	SessionID    string `json:"session_id"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	ResponseCode int    `json:"response_code"`
}

// Authorized reports whether the gateway accepted the payment.
func (r TransbankCommitResult) Authorized() bool {
	return r.Status == "AUTHORIZED" && r.ResponseCode == 0
}
