// Copyright (c) 2026 BVK Chaitanya

package api

const SecretsPath = "/secrets"

// SecretsRequest updates the broker passwords held by the server. Nil
// passwords are sent as JSON null and are not updated. When Save is true the
// server also persists the passwords.
type SecretsRequest struct {
	APIPassword   *string `json:"api_password"`
	OrderPassword *string `json:"order_password"`

	Save bool `json:"save"`
}

type SecretsResponse struct {
	OK bool `json:"ok"`

	Updated map[string]bool `json:"updated"`
	Saved   bool            `json:"saved"`
}
