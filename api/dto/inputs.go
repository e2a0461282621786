package dto

// MemberInput is the body of a member creation.
type MemberInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Membership string `json:"membership"`
}

// PaymentInput is the body of a payment creation.
// Status is optional and defaults to done.
type PaymentInput struct {
	MemberName     string `json:"memberName"`
	Amount         int64  `json:"amount"`
	PaymentMethod  string `json:"paymentMethod"`
	Status         string `json:"status"`
	MembershipType string `json:"membershipType"`
}

// AccessLogInput is the body of an access log creation.
type AccessLogInput struct {
	MemberName string  `json:"memberName"`
	AccessType string  `json:"accessType"`
	Status     string  `json:"status"`
	Device     string  `json:"device"`
	Reason     *string `json:"reason"`
}

// SeedQueryParams are the query parameters of the seed endpoint.
type SeedQueryParams struct {
	Idempotent bool `form:"idempotent"`
}
