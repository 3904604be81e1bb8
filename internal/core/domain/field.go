package domain

// FormField is one named entry of a dynamic field set: a credential row or
// a bank-detail row. Type is a rendering hint ("text", "email", "password",
// "number"), Name labels the field, Value is the user input.
type FormField struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Country couples a marketplace country with its currency metadata.
// USDRate is the amount of local currency one US dollar buys.
type Country struct {
	Name         string
	Region       string // ISO 3166-1 alpha-2
	CurrencyCode string // ISO 4217
	USDRate      float64
}
