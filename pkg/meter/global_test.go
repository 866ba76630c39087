package meter

import (
	"sync"
	"testing"

	. "github.com/onsi/gomega"
	"gotest.tools/v3/assert"

	"github.com/meterkit/meterkit/pkg/utils"
)

func Test_Global_ReturnsSameInstance(t *testing.T) {
	// no parallel: accessing global state

	assert.Assert(t, Global() == Global())
}

func Test_AddToGlobal_Deduplicates(t *testing.T) {
	// no parallel: patching global state
	t.Cleanup(Testing{}.PatchGlobal(NewComposite("globalForTest")))

	// SETUP
	registry := New(WithName("registry1"))

	// EXERCISE
	addedFirst := AddToGlobal(registry)
	addedSecond := AddToGlobal(registry)

	// VERIFY
	assert.Assert(t, addedFirst)
	assert.Assert(t, !addedSecond)
	assert.Equal(t, len(Global().Children()), 1)
}

func Test_AddToGlobal_GlobalItselfIsRefused(t *testing.T) {
	// no parallel: patching global state
	t.Cleanup(Testing{}.PatchGlobal(NewComposite("globalForTest")))

	// EXERCISE
	added := AddToGlobal(Global())

	// VERIFY
	assert.Assert(t, !added)
	assert.Equal(t, len(Global().Children()), 0)
}

func Test_AddToGlobal_ConcurrentAdds(t *testing.T) {
	// no parallel: patching global state
	t.Cleanup(Testing{}.PatchGlobal(NewComposite("globalForTest")))

	// SETUP
	const count = 20
	registries := make([]Registry, count)
	for i := range registries {
		suffix, err := utils.RandomAlphaNumString(8)
		assert.NilError(t, err)
		registries[i] = New(WithName("registry-" + suffix))
	}

	// EXERCISE
	var waitGroup sync.WaitGroup
	for _, registry := range registries {
		registry := registry
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			AddToGlobal(registry)
		}()
	}
	waitGroup.Wait()

	// VERIFY
	assert.Equal(t, len(Global().Children()), count)
}

func Test_Testing_PatchGlobal_Reverts(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	origGlobal := Global()
	replacement := NewComposite("globalForTest")

	// EXERCISE
	revert := Testing{}.PatchGlobal(replacement)

	// VERIFY
	assert.Assert(t, Global() == replacement)
	revert()
	assert.Assert(t, Global() == origGlobal)
}

func Test_Testing_PatchGlobal_RevertInWrongOrderPanics(t *testing.T) {
	// no parallel: patching global state
	g := NewGomegaWithT(t)

	// SETUP
	revert1 := Testing{}.PatchGlobal(NewComposite("globalForTest1"))
	revert2 := Testing{}.PatchGlobal(NewComposite("globalForTest2"))

	// EXERCISE + VERIFY
	g.Expect(func() { revert1() }).To(Panic())

	revert2()
	revert1()
}
