package models

// Translations is the UI string table for one language.
type Translations struct {
	Language string            `json:"language"`
	Strings  map[string]string `json:"strings"`
}
