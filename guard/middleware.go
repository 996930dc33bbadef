package guard

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Middleware adapts the checker to a standard net/http chain. The
// request's parts are extracted, checked, and on success the next
// handler runs. On failure the checker's ErrorHandler answers; the
// default writes status 400 with the ValidationError as a JSON body.
//
//	mux.Handle("POST /pets", checker.Middleware(createPetHandler))
//
// Body extraction decodes JSON content only; other content types reach
// Check with a nil body. Cookies come from the standard library's cookie
// parser, so the no-cookie-parser failure mode cannot occur through this
// adapter.
func (c *RouteChecker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := c.extract(r)
		if verr := c.Check(req); verr != nil {
			c.rejected(w, r, verr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *RouteChecker) rejected(w http.ResponseWriter, r *http.Request, verr *ValidationError) {
	if c.ErrorHandler != nil {
		c.ErrorHandler(w, r, verr)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(verr)
}

// extract pulls the five request parts out of an *http.Request.
func (c *RouteChecker) extract(r *http.Request) *Request {
	req := &Request{
		Query:   map[string]any{},
		Headers: map[string]any{},
		Params:  map[string]any{},
		Cookies: map[string]any{},
	}

	for name, values := range r.URL.Query() {
		if len(values) == 1 {
			req.Query[name] = values[0]
		} else {
			arr := make([]any, len(values))
			for i, v := range values {
				arr[i] = v
			}
			req.Query[name] = arr
		}
	}

	for name, values := range r.Header {
		if len(values) > 0 {
			req.Headers[name] = values[0]
		}
	}
	if c.header != nil {
		// header names match case-insensitively; surface each declared
		// spelling so the schema finds it
		for name := range c.header.props {
			if v := r.Header.Get(name); v != "" {
				req.Headers[name] = v
			}
		}
	}

	for _, cookie := range r.Cookies() {
		req.Cookies[cookie.Name] = cookie.Value
	}

	if params := matchTemplate(c.path, r.URL.Path); params != nil {
		req.Params = params
	}

	if r.Body != nil && strings.Contains(r.Header.Get("Content-Type"), "json") {
		var body any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			req.Body = body
		}
	}

	return req
}

// matchTemplate extracts path parameter values by aligning the concrete
// URL path with the route's path key segment by segment. Returns nil
// when the shapes differ; required path parameters then fail in Check.
func matchTemplate(template, path string) map[string]any {
	tsegs := strings.Split(strings.Trim(template, "/"), "/")
	psegs := strings.Split(strings.Trim(path, "/"), "/")
	if len(tsegs) != len(psegs) {
		return nil
	}
	params := map[string]any{}
	for i, tseg := range tsegs {
		if strings.HasPrefix(tseg, "{") && strings.HasSuffix(tseg, "}") {
			params[strings.Trim(tseg, "{}")] = psegs[i]
			continue
		}
		if tseg != psegs[i] {
			return nil
		}
	}
	return params
}
