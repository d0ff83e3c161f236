package model

// Command represents one editor command as parsed from user input.
type Command struct {
	Scope     string
	Operation string
	Args      []string
}
