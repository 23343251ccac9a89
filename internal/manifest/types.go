package manifest

// Risk levels a tool may declare
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Pricing models a tool may declare
const (
	PricingFree         = "free"
	PricingPerCall      = "per_call"
	PricingSubscription = "subscription"
)

// Manifest is a decoded, schema-valid capability manifest. Decode only
// after validation; the types here assume a conforming document.
type Manifest struct {
	ManifestVersion string       `json:"manifest_version"`
	Origin          string       `json:"origin"`
	UpdatedAt       string       `json:"updated_at"`
	Tools           []Tool       `json:"tools"`
	Auth            *Auth        `json:"auth,omitempty"`
	Attestation     *Attestation `json:"attestation,omitempty"`
}

// Tool is a single capability declared by a manifest
type Tool struct {
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	Version             string         `json:"version"`
	Tags                []string       `json:"tags"`
	RiskLevel           string         `json:"risk_level"`
	RequiresUserConfirm bool           `json:"requires_user_confirm"`
	InputSchema         map[string]any `json:"input_schema"`
	OutputSchema        map[string]any `json:"output_schema"`
	Pricing             *Pricing       `json:"pricing,omitempty"`
}

// Auth describes the login requirements for using the origin's tools
type Auth struct {
	RequiresLogin bool     `json:"requires_login"`
	OAuthScopes   []string `json:"oauth_scopes,omitempty"`
}

// Attestation carries the manifest's signature material. Shape only;
// cryptographic verification is out of scope for this tool.
type Attestation struct {
	Algo         string         `json:"algo"`
	PublicKeyJWK map[string]any `json:"public_key_jwk"`
	Signature    string         `json:"signature"`
	SignedFields []string       `json:"signed_fields"`
}

// Pricing describes how a tool is billed
type Pricing struct {
	Model    string   `json:"model"`
	PriceUSD *float64 `json:"price_usd,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// ToolNames returns the declared tool names in manifest order
func (m *Manifest) ToolNames() []string {
	names := make([]string, 0, len(m.Tools))
	for _, t := range m.Tools {
		names = append(names, t.Name)
	}
	return names
}
