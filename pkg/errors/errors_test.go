package errors

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"gotest.tools/v3/assert"
)

func Test_ErrorMessage(t *testing.T) {
	err := Errorf(fmt.Errorf("%s", "unknown"), "%s", "bla")
	assert.Equal(t, "bla: unknown", err.Error())
}

func Test_ErrorMessage_NilCause(t *testing.T) {
	err := Errorf(nil, "%s", "bla")
	assert.Equal(t, "bla", err.Error())
}

func Test_Error_IsAlreadyRegistered(t *testing.T) {
	// SETUP
	reg := prometheus.NewPedanticRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foo_total",
		Help: "help",
	})
	assert.NilError(t, reg.Register(counter))
	cause := reg.Register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foo_total",
		Help: "help",
	}))
	assert.Assert(t, cause != nil)

	// EXERCISE
	err := Errorf(cause, "%s", "binding failed")

	// VERIFY
	assert.Assert(t, err.IsAlreadyRegistered())
	assert.Equal(t, fmt.Sprintf("binding failed: %s", cause.Error()), err.Error())
}

func Test_Error_IsAlreadyRegistered_OtherCause(t *testing.T) {
	err := Errorf(fmt.Errorf("%s", "unknown"), "%s", "bla")
	assert.Assert(t, !err.IsAlreadyRegistered())
}
