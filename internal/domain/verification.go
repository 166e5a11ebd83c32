package domain

// VerificationCode is the single pending code for an email address.
// PK: email — a new request for the same email overwrites the old record,
// so at most one code per address is ever redeemable.
// ExpiresAt is a Unix timestamp used as DynamoDB TTL.
type VerificationCode struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}
