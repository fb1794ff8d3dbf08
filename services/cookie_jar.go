package services

// CookieJar abstracts the browser cookie of the current request so the
// cookie-backed stores can be exercised without HTTP. The gin adapter lives
// in utils; tests use MemoryJar.
type CookieJar interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAge int)
	Delete(name string)
}

// MemoryJar is an in-process CookieJar for tests and the migrator's
// post-merge cookie clearing.
type MemoryJar struct {
	values map[string]string
}

func NewMemoryJar() *MemoryJar {
	return &MemoryJar{values: make(map[string]string)}
}

func (j *MemoryJar) Get(name string) (string, bool) {
	v, ok := j.values[name]
	return v, ok
}

func (j *MemoryJar) Set(name, value string, maxAge int) {
	if maxAge < 0 {
		delete(j.values, name)
		return
	}
	j.values[name] = value
}

func (j *MemoryJar) Delete(name string) {
	delete(j.values, name)
}
