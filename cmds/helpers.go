package cmds

// Var defines name taking one argument stored in the returned pointer,
// and name+"." resetting it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(first(desc)))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name setting the flag and "!"+name clearing it.
func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(first(desc)))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines name appending its argument each time it occurs.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(first(desc)))
	return &value
}

func first(strs []string) string {
	if len(strs) > 0 {
		return strs[0]
	}
	return ""
}
