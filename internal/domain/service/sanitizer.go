package service

// Sanitizer strips markup from user-submitted text before it is stored.
type Sanitizer interface {
	Sanitize(text string) string
}
