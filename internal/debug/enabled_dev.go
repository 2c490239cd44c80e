//go:build assertions

package debug

const buildAssertions = true
