//go:build arm64

package svec

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
	} else {
		currentLevel = DispatchScalar
	}
	// FMLA is part of base ASIMD.
	hasFMA = cpu.ARM64.HasASIMD
}
