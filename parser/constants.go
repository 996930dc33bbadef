package parser

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed as a cookie
	ParamInCookie = "cookie"
)

// Locations lists the four parameter locations OAS 3.x recognizes, in
// the order request parts are checked.
var Locations = []string{ParamInQuery, ParamInHeader, ParamInCookie, ParamInPath}

// KnownLocation reports whether in names one of the four recognized
// parameter locations.
func KnownLocation(in string) bool {
	switch in {
	case ParamInQuery, ParamInHeader, ParamInPath, ParamInCookie:
		return true
	}
	return false
}
