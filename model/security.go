package model

// SecuritySchemeType is the closed set of "type" values the canonical
// traversal dispatches on.
type SecuritySchemeType string

const (
	SecuritySchemeTypeAPIKey        SecuritySchemeType = "apiKey"
	SecuritySchemeTypeHTTP          SecuritySchemeType = "http"
	SecuritySchemeTypeOAuth2        SecuritySchemeType = "oauth2"
	SecuritySchemeTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// SecurityScheme mirrors the OAS Security Scheme Object. Type dispatches
// which of VisitSecuritySchemeApiKey / VisitSecuritySchemeHttp /
// VisitSecuritySchemeOAuth2{Start,End} / VisitSecuritySchemeOpenIdConnect
// fires; OAuth2 additionally brackets a Flows visit before its per-flow
// leaves.
type SecurityScheme struct {
	Type             SecuritySchemeType
	Description      string
	Name             string
	In               ParameterLocation
	Scheme           string
	BearerFormat     string
	Flows            *OAuthFlows
	OpenIDConnectURL string
}

// OAuthFlows mirrors the OAS OAuth Flows Object. Each populated flow fires
// its own leaf script position inside the Flows Start/End bracket.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
}

// OAuthFlow mirrors the OAS OAuth Flow Object.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string
}
