package metrics

// Shape defines how the result of a metric is produced
type Shape int

const (
	// ShapeCount returns the scalar produced by Query
	ShapeCount Shape = iota
	// ShapeTrend returns the (date, count) rows produced by Query
	ShapeTrend
	// ShapeRatio returns Query / Denominator as a percentage string
	ShapeRatio
	// ShapeStatic returns Static without touching the source
	ShapeStatic
	// ShapeCatalog returns the summaries of the metrics listed in CatalogKeys
	ShapeCatalog
)

// String returns the human-readable shape name
func (s Shape) String() string {
	switch s {
	case ShapeCount:
		return "count"
	case ShapeTrend:
		return "trend"
	case ShapeRatio:
		return "ratio"
	case ShapeStatic:
		return "static"
	case ShapeCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// Definition describes a single reporting endpoint
type Definition struct {
	Key         string
	Label       string
	Description string
	// Summary is the short meaning listed by catalog metrics
	Summary string
	Shape   Shape
	Query   string
	// Windows bind the query placeholders, in order
	Windows []Window

	DenominatorQuery   string
	DenominatorWindows []Window

	Static      any
	CatalogKeys []string
}

// TouchesSource returns true if evaluating the definition needs the relational source
func (d Definition) TouchesSource() bool {
	switch d.Shape {
	case ShapeCount, ShapeTrend, ShapeRatio:
		return true
	default:
		return false
	}
}
