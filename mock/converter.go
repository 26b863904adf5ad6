package mock

import "github.com/kiosque/kiosque"

var _ kiosque.Converter = (*Converter)(nil)

// Converter is a mock implementation of kiosque.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
