package hashpath

// Location is the parsed form of a hash path.
type Location struct {
	Route string            `json:"route"`
	Args  map[string]string `json:"args"`
}

// ParseLocation parses path into a Location.
func ParseLocation(path string) Location {
	route, args := Parse(path)
	return Location{Route: route, Args: args}
}

// Arg returns the value of the named argument and whether it was present.
func (l Location) Arg(name string) (string, bool) {
	v, ok := l.Args[name]
	return v, ok
}

// String formats the location back into a hash path.
func (l Location) String() string {
	return Format(l.Route, l.Args)
}
