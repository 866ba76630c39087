package meter

//go:generate mockgen -package=mocks -destination=mocks/mocks.go github.com/meterkit/meterkit/pkg/meter Customizer,Binder

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	pkgerrors "github.com/pkg/errors"
	klog "k8s.io/klog/v2"

	"github.com/meterkit/meterkit/pkg/errors"
)

// Configure prepares a newly created registry for use. It applies all
// customizers, then binds all binders, then optionally adds the
// registry to the global composite registry.
//
// Composite registries are skipped entirely: a composite merely fans
// out to its children, which are expected to be configured individually
// by whoever created them.
//
// Customizers run before binders because customizers may add common
// tags or alter the metric name prefix that bound metrics must carry.
// Within each group the application order is unspecified.
//
// A failing or panicking customizer or binder does not prevent the
// remaining ones from being applied. The failure is logged together
// with the identity of the extension and the registry. Configure never
// returns an error to the caller.
//
// Configure is meant to be called exactly once per registry, right
// after its creation. Calling it twice on the same registry applies
// customizers and binders twice, but does not add the registry to the
// global registry twice. It is safe to configure different registries
// concurrently; the global composite registry is internally
// synchronized.
func Configure(ctx context.Context, registry Registry, customizers []Customizer, binders []Binder, addToGlobal bool) {
	logger := klog.FromContext(ctx).WithValues("registry", registry.Name())

	if _, isComposite := registry.(*Composite); isComposite {
		logger.V(3).Info("Skipping configuration of composite registry")
		return
	}

	for _, customizer := range customizers {
		err := applyExtension(func() error {
			return customizer.Customize(registry)
		})
		if err != nil {
			err = errors.Classify(err, errors.PhaseCustomize)
			logExtensionFailure(logger, err, "Registry customizer failed",
				"customizer", extensionID(customizer))
		}
	}

	for _, binder := range binders {
		err := applyExtension(func() error {
			return binder.BindTo(registry)
		})
		if err != nil {
			err = errors.Classify(err, errors.PhaseBind)
			logExtensionFailure(logger, err, "Metric binder failed",
				"binder", extensionID(binder))
		}
	}

	if addToGlobal {
		if added := AddToGlobal(registry); added {
			logger.V(2).Info("Registry added to global registry")
		}
	}
}

// applyExtension runs fn and converts a panic into an error so that a
// misbehaving extension cannot crash the configuring goroutine.
func applyExtension(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = pkgerrors.Errorf("panic: %v", v)
		}
	}()
	return fn()
}

// Named is implemented by customizers and binders that identify
// themselves in log output. Extensions without it are identified by
// their Go type.
type Named interface {
	Name() string
}

func extensionID(extension interface{}) string {
	if named, ok := extension.(Named); ok {
		return fmt.Sprintf("%s (%T)", named.Name(), extension)
	}
	return fmt.Sprintf("%T", extension)
}

func logExtensionFailure(logger logr.Logger, err error, message string, kvs ...interface{}) {
	kvs = append(kvs, "phase", errors.GetPhase(err))
	if errors.IsRecoverable(err) {
		kvs = append(kvs, "cause", err.Error())
		logger.V(1).Info(message+" recoverably", kvs...)
		return
	}
	logger.Error(err, message, kvs...)
}
