package middleware

import "net/http"

const (
	EduCookieName = "is_edu"

	NotEduPath       = "/not-edu"
	StudentLoginPath = "/student/login"
)

// EduGate keeps the student area to verified .edu visitors. A visitor known
// not to be .edu goes to NotEduPath; an unknown one is sent to log in.
func EduGate(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := ""
			if c, err := r.Cookie(EduCookieName); err == nil {
				value = c.Value
			}
			switch value {
			case "true":
				next.ServeHTTP(w, r)
			case "false":
				http.Redirect(w, r, NotEduPath, http.StatusSeeOther)
			default:
				http.Redirect(w, r, StudentLoginPath, http.StatusSeeOther)
			}
		})
	}
}
