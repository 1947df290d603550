package parsers

// Parser turns the raw bytes of one format into a parsed value.
type Parser interface {
	Name() string
	// Detect reports whether data looks like this parser's format.
	Detect(data []byte) bool
	Parse(data []byte) (any, error)
}

// Registered lists the parsers Detect tries, in order.
var Registered = []Parser{NewX12Parser()}

// Detect returns the first registered parser accepting data.
func Detect(data []byte) (Parser, bool) {
	for _, p := range Registered {
		if p.Detect(data) {
			return p, true
		}
	}
	return nil, false
}

var _ Parser = (*X12Parser)(nil)
