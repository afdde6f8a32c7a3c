package option

type SmartsheetGetSheetOption interface {
	Apply(*SmartsheetGetSheet)
}

type smartsheetGetSheetOptionFunc func(*SmartsheetGetSheet)

func (f smartsheetGetSheetOptionFunc) Apply(o *SmartsheetGetSheet) {
	f(o)
}

// WithSmartsheetGetSheetInclude adds include flags to the request, e.g.
// "ownerInfo" or "source". Flags are joined into a single comma separated
// include query parameter.
func WithSmartsheetGetSheetInclude(includes ...string) SmartsheetGetSheetOption {
	return smartsheetGetSheetOptionFunc(func(o *SmartsheetGetSheet) {
		o.Includes = append(o.Includes, includes...)
	})
}

type SmartsheetGetSheet struct {
	Includes []string
}
