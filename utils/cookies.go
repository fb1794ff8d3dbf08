package utils

import "github.com/gin-gonic/gin"

// GinJar adapts the request/response cookies of one gin request to the
// services.CookieJar interface.
type GinJar struct {
	C *gin.Context
}

func NewGinJar(c *gin.Context) *GinJar { return &GinJar{C: c} }

func (j *GinJar) Get(name string) (string, bool) {
	v, err := j.C.Cookie(name)
	if err != nil {
		return "", false
	}
	return v, true
}

func (j *GinJar) Set(name, value string, maxAge int) {
	j.C.SetCookie(name, value, maxAge, "/", "", false, true)
}

func (j *GinJar) Delete(name string) {
	j.C.SetCookie(name, "", -1, "/", "", false, true)
}
