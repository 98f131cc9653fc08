package platform

import "runtime"

// Profile is the GL context version and matching GLSL header requested on
// one operating system.
type Profile struct {
	Major, Minor      int
	GLSL              string
	ForwardCompatible bool
}

var profiles = map[string]Profile{
	// forward-compatible flag is required on macOS
	"darwin":  {Major: 4, Minor: 1, GLSL: "#version 150", ForwardCompatible: true},
	"linux":   {Major: 4, Minor: 3, GLSL: "#version 150"},
	"windows": {Major: 3, Minor: 3, GLSL: "#version 130"},
}

// Profiles returns a copy of the per-OS table.
func Profiles() map[string]Profile {
	out := make(map[string]Profile, len(profiles))
	for k, v := range profiles {
		out[k] = v
	}
	return out
}

// ProfileFor returns the entry for goos. Unlisted unix-likes get the linux
// entry.
func ProfileFor(goos string) Profile {
	if p, ok := profiles[goos]; ok {
		return p
	}
	return profiles["linux"]
}

// Current is the profile for the OS this binary was built for.
func Current() Profile {
	return ProfileFor(runtime.GOOS)
}
