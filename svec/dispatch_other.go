//go:build !amd64 && !arm64

package svec

func init() {
	// Other architectures report scalar; math.FMA still rounds once.
	setScalarMode()
}
