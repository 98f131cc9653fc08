package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfiles(t *testing.T) {
	want := map[string]Profile{
		"darwin":  {Major: 4, Minor: 1, GLSL: "#version 150", ForwardCompatible: true},
		"linux":   {Major: 4, Minor: 3, GLSL: "#version 150"},
		"windows": {Major: 3, Minor: 3, GLSL: "#version 130"},
	}
	assert.Equal(t, want, Profiles())
	for goos, p := range want {
		assert.Equal(t, p, ProfileFor(goos), goos)
	}
}

func TestProfileFallback(t *testing.T) {
	assert.Equal(t, ProfileFor("linux"), ProfileFor("freebsd"))
	assert.Equal(t, ProfileFor(runtime.GOOS), Current())
}

func TestProfilesIsACopy(t *testing.T) {
	p := Profiles()
	p["linux"] = Profile{}
	assert.Equal(t, 4, ProfileFor("linux").Major)
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, KeyF, Letter('f'))
	assert.Equal(t, KeyF, Letter('F'))
	assert.Equal(t, KeyZ, Letter('z'))
	assert.Equal(t, KeyUnknown, Letter('1'))
	assert.Equal(t, KeyF11, Function(11))
	assert.Equal(t, KeyUnknown, Function(13))
	assert.Less(t, int(KeyCount), 512)
}
