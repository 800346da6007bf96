// httpclient/methods.go
package httpclient

import "net/http"

/* Ref: https://www.rfc-editor.org/rfc/rfc7231#section-8.1.3

+---------+------+------------+
| Method  | Safe | Idempotent |
+---------+------+------------+
| DELETE  | no   | yes        |
| GET     | yes  | yes        |
| PATCH   | no   | no         |
| POST    | no   | no         |
| PUT     | no   | yes        |
+---------+------+------------+
*/

// supportedMethods maps the methods DoRequest accepts to whether they are idempotent.
var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPost:   false,
	http.MethodPatch:  false,
}

// IsSupportedHTTPMethod reports whether DoRequest accepts method.
func IsSupportedHTTPMethod(method string) bool {
	_, ok := supportedMethods[method]
	return ok
}

// IsIdempotentHTTPMethod checks if the given HTTP method is idempotent.
func IsIdempotentHTTPMethod(method string) bool {
	return supportedMethods[method]
}
