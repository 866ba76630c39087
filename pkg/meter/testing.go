package meter

// Testing provides utility functions for testing with this package.
// Do not use it for non-testing purposes!
type Testing struct{}

// PatchGlobal replaces the process-wide composite registry with a
// replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func (Testing) PatchGlobal(replacement *Composite) func() {
	Global() // ensure initialization happened
	origValue := global
	global = replacement
	return func() {
		if global != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		global = origValue
	}
}
