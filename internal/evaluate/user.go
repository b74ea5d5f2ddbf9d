package evaluate

// UserAttributes identifies the user an evaluation is performed for. Only
// user_id is required; everything else refines targeting. Attributes are
// forwarded to the backend and never stored locally.
type UserAttributes struct {
	UserID            string         `json:"user_id" jsonschema:"required" jsonschema_description:"User identifier"`
	Email             string         `json:"user_email,omitempty" jsonschema_description:"User email address"`
	Country           string         `json:"user_country,omitempty" jsonschema_description:"User country code"`
	IP                string         `json:"user_ip,omitempty" jsonschema_description:"User IP address"`
	UserAgent         string         `json:"user_agent,omitempty" jsonschema_description:"User agent string"`
	AppVersion        string         `json:"app_version,omitempty" jsonschema_description:"Application version"`
	Locale            string         `json:"locale,omitempty" jsonschema_description:"User locale"`
	Custom            map[string]any `json:"custom_attributes,omitempty" jsonschema_description:"Custom user attributes"`
	PrivateAttributes map[string]any `json:"private_attributes,omitempty" jsonschema_description:"Private user attributes (never forwarded to integrations)"`
}

// apiUser converts the attributes to the evaluation API's user object.
// The wire convention is camelCase with userID as the identifier field.
func (u UserAttributes) apiUser() map[string]any {
	user := map[string]any{
		"userID": u.UserID,
	}
	if u.Email != "" {
		user["email"] = u.Email
	}
	if u.Country != "" {
		user["country"] = u.Country
	}
	if u.IP != "" {
		user["ip"] = u.IP
	}
	if u.UserAgent != "" {
		user["userAgent"] = u.UserAgent
	}
	if u.AppVersion != "" {
		user["appVersion"] = u.AppVersion
	}
	if u.Locale != "" {
		user["locale"] = u.Locale
	}
	if len(u.Custom) > 0 {
		user["custom"] = u.Custom
	}
	if len(u.PrivateAttributes) > 0 {
		user["privateAttributes"] = u.PrivateAttributes
	}
	return user
}
