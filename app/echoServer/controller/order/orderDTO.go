package order

type SubmitOrderReq struct {
	Phone      string `json:"phone" validate:"required"`
	SizeMB     int    `json:"size" validate:"required,gt=0"`
	Network    string `json:"network" validate:"required,oneof=mtn airteltigo"`
	WebhookURL string `json:"webhook_url" validate:"omitempty,startswith=https://"`
}
