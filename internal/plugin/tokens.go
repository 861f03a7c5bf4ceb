package plugin

// Placeholder tokens substituted by the masking plugins.
const (
	TagToken    = "<TAG>"
	URLToken    = "<URL>"
	EmailToken  = "<EMAIL>"
	NumberToken = "<NUM>"
)

// Tokens maps the short names used in declarative definitions to the
// placeholder tokens.
func Tokens() map[string]string {
	return map[string]string{
		"tag":    TagToken,
		"url":    URLToken,
		"email":  EmailToken,
		"number": NumberToken,
	}
}
