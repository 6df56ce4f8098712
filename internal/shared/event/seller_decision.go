package event

const SellerDecisionDestination string = "seller_decision"
const SellerDecisionConsumerNotification string = "seller_decision_notification"

type SellerDecisionMessage struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	Approved  bool   `json:"approved"`
}
